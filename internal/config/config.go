// Package config provides YAML-based tuning for the runner.
//
// Sizes and speeds are fractions of the viewport (or of the player's standing
// height) so the game plays the same at any terminal size. Absolute values are
// derived from these fractions whenever the viewport changes.
package config

import (
	"errors"
	"fmt"
	"time"
)

// RunnerConfig contains all tuning for the runner.
type RunnerConfig struct {
	Viewport  ViewportConfig  `yaml:"viewport"`
	Player    PlayerConfig    `yaml:"player"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Obstacles ObstacleConfig  `yaml:"obstacles"`
	Collision CollisionConfig `yaml:"collision"`
	Input     InputConfig     `yaml:"input"`
	Policy    PolicyConfig    `yaml:"policy"`
}

// ViewportConfig places the ground line and the player inside the viewport.
type ViewportConfig struct {
	GroundMargin float64 `yaml:"ground_margin"` // Floor line sits at H - H*GroundMargin
	PlayerHeight float64 `yaml:"player_height"` // Standing height as a fraction of H
	PlayerX      float64 `yaml:"player_x"`      // Player left edge as a fraction of W
	CellAspect   float64 `yaml:"cell_aspect"`   // Horizontal stretch for non-square cells
	CompactWidth int     `yaml:"compact_width"` // Widths below this count as compact
}

// PlayerConfig sizes the player relative to its standing height.
type PlayerConfig struct {
	WidthRatio  float64 `yaml:"width_ratio"`
	DuckedRatio float64 `yaml:"ducked_ratio"`
}

// PhysicsConfig holds per-tick physics factors.
type PhysicsConfig struct {
	Gravity       float64 `yaml:"gravity"`        // * standing height
	JumpImpulse   float64 `yaml:"jump_impulse"`   // * standing height, applied upward
	JumpXBonus    float64 `yaml:"jump_x_bonus"`   // Impulse grows by PlayerX * bonus
	MaxFallSpeed  float64 `yaml:"max_fall_speed"` // * standing height
	ObstacleSpeed float64 `yaml:"obstacle_speed"` // * viewport width
}

// ObstacleConfig controls spawning and sizing of obstacles.
type ObstacleConfig struct {
	ElevatedThreshold float64 `yaml:"elevated_threshold"` // Draws above this spawn elevated
	WidthRatio        float64 `yaml:"width_ratio"`
	GroundHeight      float64 `yaml:"ground_height"`
	ElevatedHeight    float64 `yaml:"elevated_height"`
	MinClearance      float64 `yaml:"min_clearance"` // Floor to elevated bottom, * standing height
	MaxClearance      float64 `yaml:"max_clearance"`
	FirstSpawnFrame   int     `yaml:"first_spawn_frame"`
	MinGap            int     `yaml:"min_gap"` // Frames between spawns
	MaxGap            int     `yaml:"max_gap"`
	CompactMinGap     int     `yaml:"compact_min_gap"`
	CompactMaxGap     int     `yaml:"compact_max_gap"`
}

// CollisionConfig controls hitbox forgiveness.
type CollisionConfig struct {
	Inset float64 `yaml:"inset"`
}

// InputConfig holds gesture timing.
type InputConfig struct {
	HoldThreshold    time.Duration `yaml:"hold_threshold"`     // Press shorter than this is a tap
	DuckReleaseAfter time.Duration `yaml:"duck_release_after"` // Key repeat silence that ends a duck
}

// StartMode decides whether a fresh game waits for input.
type StartMode string

// RestartMode decides what happens after a collision.
type RestartMode string

const (
	StartImmediate StartMode = "immediate"
	StartOnInput   StartMode = "on_input"

	RestartManual RestartMode = "manual"
	RestartAuto   RestartMode = "auto"
)

// PolicyConfig selects the state machine variant.
type PolicyConfig struct {
	Start   StartMode   `yaml:"start"`
	Restart RestartMode `yaml:"restart"`
}

// FormFactor selects desktop or compact spawn density.
type FormFactor string

const (
	FormFactorAuto    FormFactor = "auto"
	FormFactorDesktop FormFactor = "desktop"
	FormFactorCompact FormFactor = "compact"
)

// ParseFormFactor parses a --form-factor flag value. Empty means auto.
func ParseFormFactor(s string) (FormFactor, error) {
	switch FormFactor(s) {
	case "", FormFactorAuto:
		return FormFactorAuto, nil
	case FormFactorDesktop, FormFactorCompact:
		return FormFactor(s), nil
	}
	return "", fmt.Errorf("config: unknown form factor %q (want auto, desktop or compact)", s)
}

// IsCompact resolves the form factor for a viewport width.
func (c RunnerConfig) IsCompact(ff FormFactor, width int) bool {
	switch ff {
	case FormFactorCompact:
		return true
	case FormFactorDesktop:
		return false
	}
	return width < c.Viewport.CompactWidth
}

// Gaps returns the spawn gap bounds in frames for the form factor.
func (c RunnerConfig) Gaps(compact bool) (minGap, maxGap int) {
	if compact {
		return c.Obstacles.CompactMinGap, c.Obstacles.CompactMaxGap
	}
	return c.Obstacles.MinGap, c.Obstacles.MaxGap
}

// Validate reports every nonsensical value in the config.
func (c RunnerConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	positive("viewport.player_height", c.Viewport.PlayerHeight)
	positive("viewport.cell_aspect", c.Viewport.CellAspect)
	positive("player.width_ratio", c.Player.WidthRatio)
	positive("player.ducked_ratio", c.Player.DuckedRatio)
	positive("physics.gravity", c.Physics.Gravity)
	positive("physics.jump_impulse", c.Physics.JumpImpulse)
	positive("physics.max_fall_speed", c.Physics.MaxFallSpeed)
	positive("physics.obstacle_speed", c.Physics.ObstacleSpeed)
	positive("obstacles.width_ratio", c.Obstacles.WidthRatio)
	positive("obstacles.ground_height", c.Obstacles.GroundHeight)
	positive("obstacles.elevated_height", c.Obstacles.ElevatedHeight)

	if c.Player.DuckedRatio > 1 {
		errs = append(errs, fmt.Errorf("player.ducked_ratio must be <= 1, got %v", c.Player.DuckedRatio))
	}
	if c.Collision.Inset < 0 || c.Collision.Inset >= 0.5 {
		errs = append(errs, fmt.Errorf("collision.inset must be in [0, 0.5), got %v", c.Collision.Inset))
	}
	if c.Obstacles.ElevatedThreshold < 0 || c.Obstacles.ElevatedThreshold > 1 {
		errs = append(errs, fmt.Errorf("obstacles.elevated_threshold must be in [0, 1], got %v", c.Obstacles.ElevatedThreshold))
	}
	if c.Obstacles.MinClearance > c.Obstacles.MaxClearance {
		errs = append(errs, errors.New("obstacles.min_clearance must not exceed max_clearance"))
	}
	if c.Obstacles.MinGap < 1 || c.Obstacles.MaxGap <= c.Obstacles.MinGap {
		errs = append(errs, fmt.Errorf("obstacles gap [%d, %d) is invalid", c.Obstacles.MinGap, c.Obstacles.MaxGap))
	}
	if c.Obstacles.CompactMinGap < 1 || c.Obstacles.CompactMaxGap <= c.Obstacles.CompactMinGap {
		errs = append(errs, fmt.Errorf("obstacles compact gap [%d, %d) is invalid", c.Obstacles.CompactMinGap, c.Obstacles.CompactMaxGap))
	}
	if c.Input.HoldThreshold <= 0 {
		errs = append(errs, fmt.Errorf("input.hold_threshold must be positive, got %v", c.Input.HoldThreshold))
	}
	switch c.Policy.Start {
	case StartImmediate, StartOnInput:
	default:
		errs = append(errs, fmt.Errorf("policy.start %q is unknown", c.Policy.Start))
	}
	switch c.Policy.Restart {
	case RestartManual, RestartAuto:
	default:
		errs = append(errs, fmt.Errorf("policy.restart %q is unknown", c.Policy.Restart))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
