package runner

import "github.com/vovakirdan/ninja-runner/internal/config"

// PhysicsConstants are the absolute sizes and speeds for one viewport size.
// They are derived, never persisted, and recomputed on every resize.
type PhysicsConstants struct {
	ViewportW float64
	ViewportH float64
	Compact   bool

	GroundY float64 // Top of the standing player at rest
	FloorY  float64 // Drawn ground line: GroundY + NormalHeight

	PlayerX      float64
	PlayerWidth  float64
	NormalHeight float64
	DuckedHeight float64

	Gravity       float64 // Added to vertical velocity each airborne tick
	JumpImpulse   float64 // Negative (upward) initial velocity
	MaxFallSpeed  float64 // Downward velocity cap
	ObstacleSpeed float64 // Leftward obstacle movement per tick

	ObstacleWidth        float64
	GroundObstacleHeight float64
	ElevatedHeight       float64
	MinClearance         float64 // Floor to elevated obstacle bottom
	MaxClearance         float64

	MinGap int // Spawn gap bounds in frames, [MinGap, MaxGap)
	MaxGap int
}

// DeriveConstants computes PhysicsConstants for a viewport of w x h cells.
// It is pure: the same inputs always give the same constants.
func DeriveConstants(w, h int, compact bool, cfg config.RunnerConfig) PhysicsConstants {
	width := float64(max(w, 0))
	height := float64(max(h, 0))
	aspect := cfg.Viewport.CellAspect

	normal := height * cfg.Viewport.PlayerHeight
	floor := height - height*cfg.Viewport.GroundMargin
	minGap, maxGap := cfg.Gaps(compact)

	return PhysicsConstants{
		ViewportW: width,
		ViewportH: height,
		Compact:   compact,

		GroundY: floor - normal,
		FloorY:  floor,

		PlayerX:      width * cfg.Viewport.PlayerX,
		PlayerWidth:  normal * cfg.Player.WidthRatio * aspect,
		NormalHeight: normal,
		DuckedHeight: normal * cfg.Player.DuckedRatio,

		Gravity:       normal * cfg.Physics.Gravity,
		JumpImpulse:   -normal * cfg.Physics.JumpImpulse * (1 + cfg.Viewport.PlayerX*cfg.Physics.JumpXBonus),
		MaxFallSpeed:  normal * cfg.Physics.MaxFallSpeed,
		ObstacleSpeed: width * cfg.Physics.ObstacleSpeed,

		ObstacleWidth:        normal * cfg.Obstacles.WidthRatio * aspect,
		GroundObstacleHeight: normal * cfg.Obstacles.GroundHeight,
		ElevatedHeight:       normal * cfg.Obstacles.ElevatedHeight,
		MinClearance:         normal * cfg.Obstacles.MinClearance,
		MaxClearance:         normal * cfg.Obstacles.MaxClearance,

		MinGap: minGap,
		MaxGap: maxGap,
	}
}
