// Package runner implements a ninja endless runner.
// The player jumps over ground obstacles and ducks under flying ones while
// obstacles scroll in from the right; every obstacle that leaves the screen
// scores a point.
package runner

import (
	"github.com/vovakirdan/ninja-runner/internal/assets"
	"github.com/vovakirdan/ninja-runner/internal/config"
	"github.com/vovakirdan/ninja-runner/internal/core"
)

// Options configures a new game.
type Options struct {
	Config     config.RunnerConfig
	FormFactor config.FormFactor
	Debug      bool // Draw player and obstacle state in the corner
}

// Game implements the runner logic. All state is owned by the Game value and
// only touched from Step, Reset and Resize, which the driver calls from a
// single goroutine.
type Game struct {
	cfg       config.RunnerConfig
	opts      Options
	runtime   core.RuntimeConfig
	consts    PhysicsConstants
	player    Player
	obstacles *ObstacleManager
	gesture   Gesture
	sprites   assets.Sprites
	sink      ScoreSink

	phase  Phase
	paused bool
	frame  int // Ticks since Reset; restarts do not rewind it
	score  int
}

// New creates a new runner. Reset must be called before the first Step.
func New(opts Options) *Game {
	if opts.FormFactor == "" {
		opts.FormFactor = config.FormFactorAuto
	}
	return &Game{
		cfg:     opts.Config,
		opts:    opts,
		gesture: NewGesture(opts.Config.Input.HoldThreshold),
	}
}

// ID returns the identifier used for score storage.
func (g *Game) ID() string {
	return "runner"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Ninja Runner"
}

// SetSprites installs the sprites used by Render.
func (g *Game) SetSprites(s assets.Sprites) {
	g.sprites = s
}

// SetScoreSink installs the display target for score changes.
func (g *Game) SetScoreSink(s ScoreSink) {
	g.sink = s
}

// Reset initializes the game for a viewport and seed. Depending on the start
// policy the game either runs at once or waits for the first input.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.consts = g.derive(runtime.ScreenW, runtime.ScreenH)

	if g.obstacles == nil {
		g.obstacles = NewObstacleManager(runtime.Seed, g.cfg.Obstacles)
	} else {
		g.obstacles.Reset(runtime.Seed)
	}

	g.player.Reset(g.consts)
	g.gesture.Cancel()
	g.paused = false
	g.frame = 0
	g.setScore(0)

	g.phase = PhaseRunning
	if g.cfg.Policy.Start == config.StartOnInput {
		g.phase = PhaseNotStarted
	}
}

// Resize recomputes every size-derived constant for a new viewport without
// ending the run.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.consts = g.derive(w, h)
	g.player.ApplyConstants(g.consts)
}

func (g *Game) derive(w, h int) PhysicsConstants {
	compact := g.cfg.IsCompact(g.opts.FormFactor, w)
	return DeriveConstants(w, h, compact, g.cfg)
}

// restart clears the run after a game over (or a collision under the auto
// restart policy).
func (g *Game) restart() {
	g.obstacles.Clear(g.frame)
	g.player.Reset(g.consts)
	g.gesture.Cancel()
	g.paused = false
	g.setScore(0)
	g.phase = PhaseRunning
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	switch g.phase {
	case PhaseNotStarted:
		if startRequested(in) {
			g.gesture.Cancel()
			g.phase = PhaseRunning
		}
		return core.StepResult{State: g.State()}

	case PhaseGameOver:
		if startRequested(in) || in.Has(core.ActionRestart) {
			g.restart()
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
		// Pointer events are not applied while paused, so a release can
		// go missing. Drop the press and stand up on either side.
		g.gesture.Cancel()
		g.player.StandUp()
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.frame++
	g.applyInput(in)

	g.player.Update(g.consts)

	g.obstacles.TrySpawn(g.frame, g.consts)
	g.obstacles.Advance(g.consts)
	culled := g.obstacles.Cull()
	for range culled {
		g.setScore(g.score + 1)
	}

	result := core.StepResult{Culled: culled}
	if Collisions(g.player, g.obstacles.Obstacles(), g.cfg.Collision.Inset) > 0 {
		result.Collided = true
		if g.cfg.Policy.Restart == config.RestartAuto {
			g.restart()
		} else {
			g.phase = PhaseGameOver
		}
	}

	result.State = g.State()
	return result
}

// applyInput turns keys and pointer gestures into player actions.
func (g *Game) applyInput(in core.InputFrame) {
	for _, ev := range in.Pointer {
		switch ev.Kind {
		case core.PointerPress:
			g.gesture.Press(ev.At)
		case core.PointerRelease:
			if g.gesture.Release(ev.At) == GestureTap {
				g.player.Jump(g.consts)
			}
			if !g.player.Jumping {
				g.player.StandUp()
			}
		}
	}
	// The hold fires once; in the air Duck refuses it and it is not retried.
	if !in.Now.IsZero() && g.gesture.HoldStarted(in.Now) {
		g.player.Duck()
	}

	if in.Has(core.ActionJump) {
		g.player.Jump(g.consts)
	}
	if in.Has(core.ActionDuck) {
		g.player.Duck()
	}
	if in.Has(core.ActionDuckRelease) {
		g.player.StandUp()
	}
}

// startRequested reports input that starts or restarts a run: a jump key or
// a pointer press.
func startRequested(in core.InputFrame) bool {
	if in.Has(core.ActionJump) {
		return true
	}
	for _, ev := range in.Pointer {
		if ev.Kind == core.PointerPress {
			return true
		}
	}
	return false
}

func (g *Game) setScore(score int) {
	g.score = score
	if g.sink != nil {
		g.sink.SetScore(score)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Started:  g.phase != PhaseNotStarted,
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.paused,
	}
}

// Phase returns the state machine position.
func (g *Game) Phase() Phase {
	return g.phase
}

// Constants returns the constants for the current viewport.
func (g *Game) Constants() PhysicsConstants {
	return g.consts
}

// Snapshot copies the state the render step needs.
func (g *Game) Snapshot() Snapshot {
	var obstacles []Obstacle
	if g.obstacles != nil {
		obstacles = append([]Obstacle(nil), g.obstacles.Obstacles()...)
	}
	return Snapshot{
		Frame:     g.frame,
		Score:     g.score,
		Phase:     g.phase,
		Paused:    g.paused,
		Player:    g.player,
		Obstacles: obstacles,
		Constants: g.consts,
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	Render(dst, g.Snapshot(), g.sprites, g.opts.Debug)
}
