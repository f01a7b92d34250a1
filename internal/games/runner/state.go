package runner

// Phase is the game's state machine position.
//
//	NotStarted -> Running -> GameOver -> (restart) Running
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseRunning
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not-started"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// ScoreSink receives the literal score after every change.
type ScoreSink interface {
	SetScore(score int)
}

// Snapshot is a read-only copy of everything the render step needs.
type Snapshot struct {
	Frame     int
	Score     int
	Phase     Phase
	Paused    bool
	Player    Player
	Obstacles []Obstacle
	Constants PhysicsConstants
}
