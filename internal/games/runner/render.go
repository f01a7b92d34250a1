package runner

import (
	"fmt"
	"math"

	"github.com/vovakirdan/ninja-runner/internal/assets"
	"github.com/vovakirdan/ninja-runner/internal/core"
)

// Visual characters and timing for rendering
const (
	GroundChar     = '═'
	FallbackChar   = '█'
	AnimationSpeed = 8 // Ticks per running frame
)

// Render draws a snapshot. It reads the snapshot only; the simulation is
// never touched from here.
func Render(dst *core.Screen, s Snapshot, sp assets.Sprites, debug bool) {
	dst.Clear()

	floor := int(math.Round(s.Constants.FloorY))
	dst.DrawHLine(0, floor, dst.Width(), GroundChar, core.ColorGray)

	for _, o := range s.Obstacles {
		if o.Kind == KindElevated {
			drawSprite(dst, o.Box(), sp.Elevated, core.ColorCyan)
		} else {
			drawSprite(dst, o.Box(), sp.Ground, core.ColorRed)
		}
	}

	frame := (s.Frame / AnimationSpeed) % 2
	drawSprite(dst, s.Player.Box(), sp.Run[frame], core.ColorGreen)

	if debug {
		drawDebug(dst, s)
	}

	switch {
	case s.Phase == PhaseNotStarted:
		drawCenteredMessage(dst, "NINJA RUNNER", "Press Space or click to start")
	case s.Phase == PhaseGameOver:
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R or click to restart", s.Score))
	case s.Paused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// drawSprite scales a sprite into a box with nearest-neighbor sampling.
// Spaces in the sprite are transparent.
func drawSprite(dst *core.Screen, b core.Box, sp assets.Sprite, c core.Color) {
	r := b.Rect()
	if r.W == 0 || r.H == 0 {
		return
	}
	for dy := 0; dy < r.H; dy++ {
		v := (float64(dy) + 0.5) / float64(r.H)
		for dx := 0; dx < r.W; dx++ {
			ch := FallbackChar
			if sp.Width() > 0 {
				ch = sp.Sample((float64(dx)+0.5)/float64(r.W), v)
			}
			if ch == ' ' {
				continue
			}
			dst.SetColored(r.X+dx, r.Y+dy, ch, c)
		}
	}
}

func drawDebug(dst *core.Screen, s Snapshot) {
	p := s.Player
	lines := []string{
		fmt.Sprintf("Ninja: %d,%d", int(math.Round(p.X)), int(math.Round(p.Y))),
		fmt.Sprintf("Jumping: %t", p.Jumping),
		fmt.Sprintf("Ducking: %t", p.Ducking),
		fmt.Sprintf("Obstacles: %d", len(s.Obstacles)),
	}
	for i, line := range lines {
		dst.DrawTextColored(1, i, line, core.ColorYellow)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	titleLen := len([]rune(title))
	subtitleLen := len([]rune(subtitle))

	boxW := core.Max(titleLen, subtitleLen) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2
	box := core.NewRect(boxX, boxY, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextColored(boxX+(boxW-titleLen)/2, boxY+1, title, core.ColorBrightWhite)
	dst.DrawText(boxX+(boxW-subtitleLen)/2, boxY+3, subtitle)
}
