package runner

import "github.com/vovakirdan/ninja-runner/internal/core"

// Player is the runner sprite's kinematic state.
//
// Y is the top of the standing-height box. A ducked player keeps Y at the
// ground and shrinks Height; Box places the shorter box so its feet stay on
// the floor. Y never goes below GroundY.
type Player struct {
	X, Y         float64
	Width        float64
	NormalHeight float64
	DuckedHeight float64
	Height       float64 // Current height: NormalHeight or DuckedHeight
	VelocityY    float64

	Jumping bool
	Ducking bool
	CanJump bool // False exactly while airborne
}

// ApplyConstants resizes the player for new viewport constants and puts it
// back on the ground.
func (p *Player) ApplyConstants(c PhysicsConstants) {
	p.X = c.PlayerX
	p.Width = c.PlayerWidth
	p.NormalHeight = c.NormalHeight
	p.DuckedHeight = c.DuckedHeight
	p.Height = c.NormalHeight
	if p.Ducking {
		p.Height = c.DuckedHeight
	}
	p.land(c)
}

// Reset returns the player to a grounded, standing, neutral state.
func (p *Player) Reset(c PhysicsConstants) {
	p.ApplyConstants(c)
	p.Ducking = false
	p.Height = p.NormalHeight
}

// Update advances the player by one tick. There is no delta time: one call
// is one tick.
func (p *Player) Update(c PhysicsConstants) {
	if !p.Jumping {
		return
	}

	p.VelocityY += c.Gravity
	// Only the downward speed is capped.
	p.VelocityY = min(p.VelocityY, c.MaxFallSpeed)
	p.Y += p.VelocityY

	if p.Y > c.GroundY {
		p.land(c)
	}
}

// Jump launches the player if it is on the ground. Jumping cancels a duck.
func (p *Player) Jump(c PhysicsConstants) bool {
	if p.Jumping || !p.CanJump {
		return false
	}
	p.VelocityY = c.JumpImpulse
	p.Jumping = true
	p.CanJump = false
	p.Ducking = false
	p.Height = p.NormalHeight
	return true
}

// Duck crouches the player. It is rejected while airborne.
func (p *Player) Duck() bool {
	if p.Jumping {
		return false
	}
	p.Ducking = true
	p.Height = p.DuckedHeight
	return true
}

// StandUp ends a duck.
func (p *Player) StandUp() {
	if !p.Ducking {
		return
	}
	p.Ducking = false
	p.Height = p.NormalHeight
}

// Box returns the player's bounding box in world units.
func (p Player) Box() core.Box {
	top := p.Y + p.NormalHeight - p.Height
	return core.NewBox(p.X, top, p.Width, p.Height)
}

func (p *Player) land(c PhysicsConstants) {
	p.Y = c.GroundY
	p.VelocityY = 0
	p.Jumping = false
	p.CanJump = true
}
