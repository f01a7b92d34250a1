package runner

import "time"

// GestureResult is what a completed press-and-release meant.
type GestureResult int

const (
	GestureNone    GestureResult = iota // Release without a matching press
	GestureTap                          // Released before the hold threshold: jump
	GestureHoldEnd                      // Released after the threshold: stop ducking
)

// Gesture tells a tap from a hold using timestamps only. The press time is
// recorded; the tick asks HoldStarted, and the release classifies the gesture.
type Gesture struct {
	threshold time.Duration
	pressed   bool
	pressedAt time.Time
	fired     bool // HoldStarted already reported this press
}

// NewGesture creates a tracker with the given tap/hold threshold.
func NewGesture(threshold time.Duration) Gesture {
	return Gesture{threshold: threshold}
}

// Press records the start of a gesture.
func (g *Gesture) Press(at time.Time) {
	g.pressed = true
	g.pressedAt = at
	g.fired = false
}

// Release ends the gesture and classifies it.
func (g *Gesture) Release(at time.Time) GestureResult {
	if !g.pressed {
		return GestureNone
	}
	g.pressed = false
	if at.Sub(g.pressedAt) < g.threshold {
		return GestureTap
	}
	return GestureHoldEnd
}

// Holding reports whether a press has lasted at least the threshold by now.
func (g *Gesture) Holding(now time.Time) bool {
	return g.pressed && now.Sub(g.pressedAt) >= g.threshold
}

// HoldStarted reports true exactly once per press, on the first call at or
// past the threshold. Later calls for the same press return false.
func (g *Gesture) HoldStarted(now time.Time) bool {
	if g.fired || !g.Holding(now) {
		return false
	}
	g.fired = true
	return true
}

// Cancel forgets an in-flight press so its release is ignored.
func (g *Gesture) Cancel() {
	g.pressed = false
}
