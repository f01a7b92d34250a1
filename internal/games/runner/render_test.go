package runner

import (
	"context"
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/ninja-runner/internal/assets"
	"github.com/vovakirdan/ninja-runner/internal/core"
)

func renderTestGame(t *testing.T, debug bool) (*Game, *core.Screen) {
	t.Helper()
	sp, err := assets.Load(context.Background(), assets.Embedded())
	if err != nil {
		t.Fatalf("load sprites: %v", err)
	}
	g := newTestGame(t, nil)
	g.opts.Debug = debug
	g.SetSprites(sp)
	return g, core.NewScreen(80, 24)
}

func TestRenderGroundAndPlayer(t *testing.T) {
	g, screen := renderTestGame(t, false)

	g.Render(screen)

	floor := int(math.Round(g.Constants().FloorY))
	cell := screen.GetCell(0, floor)
	if cell.Rune != GroundChar || cell.Color != core.ColorGray {
		t.Errorf("floor cell = %q/%v, expected ground line", cell.Rune, cell.Color)
	}

	r := g.Snapshot().Player.Box().Rect()
	drawn := 0
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			if c := screen.GetCell(x, y); c.Rune != ' ' && c.Color == core.ColorGreen {
				drawn++
			}
		}
	}
	if drawn == 0 {
		t.Error("player sprite not drawn")
	}
}

func TestRenderMessages(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(g *Game)
		expected string
	}{
		{"game over", func(g *Game) { g.phase = PhaseGameOver }, "GAME OVER"},
		{"not started", func(g *Game) { g.phase = PhaseNotStarted }, "NINJA RUNNER"},
		{"paused", func(g *Game) { g.paused = true }, "PAUSED"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, screen := renderTestGame(t, false)
			tc.setup(g)

			g.Render(screen)

			if !strings.Contains(screen.String(), tc.expected) {
				t.Errorf("screen should contain %q:\n%s", tc.expected, screen.String())
			}
		})
	}
}

func TestRenderDebugOverlay(t *testing.T) {
	g, screen := renderTestGame(t, true)

	g.Render(screen)

	if !strings.Contains(screen.Row(0), "Ninja:") {
		t.Errorf("debug overlay missing, row 0 = %q", screen.Row(0))
	}
	if !strings.Contains(screen.String(), "Obstacles: 0") {
		t.Error("debug overlay should list the obstacle count")
	}
}

func TestRenderDoesNotMutateGame(t *testing.T) {
	g, screen := renderTestGame(t, true)
	for i := 0; i < 150; i++ {
		g.Step(core.NewInputFrame())
	}
	before := g.Snapshot()

	g.Render(screen)

	if after := g.Snapshot(); after.Frame != before.Frame || len(after.Obstacles) != len(before.Obstacles) || after.Player != before.Player {
		t.Error("render changed game state")
	}
}
