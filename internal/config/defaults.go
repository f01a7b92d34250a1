package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the built-in tuning. It mirrors
// defaults/runner.yaml and is used when the embedded file cannot be parsed.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Viewport: ViewportConfig{
			GroundMargin: 0.15,
			PlayerHeight: 0.2,
			PlayerX:      0.2,
			CellAspect:   2.0,
			CompactWidth: 60,
		},
		Player: PlayerConfig{
			WidthRatio:  0.8,
			DuckedRatio: 0.5,
		},
		Physics: PhysicsConfig{
			Gravity:       0.025,
			JumpImpulse:   0.25,
			JumpXBonus:    0.1,
			MaxFallSpeed:  0.2,
			ObstacleSpeed: 0.006,
		},
		Obstacles: ObstacleConfig{
			ElevatedThreshold: 0.7,
			WidthRatio:        0.8,
			GroundHeight:      0.8,
			ElevatedHeight:    0.6,
			MinClearance:      0.4,
			MaxClearance:      0.65,
			FirstSpawnFrame:   100,
			MinGap:            50,
			MaxGap:            130,
			CompactMinGap:     40,
			CompactMaxGap:     100,
		},
		Collision: CollisionConfig{
			Inset: 0.2,
		},
		Input: InputConfig{
			HoldThreshold:    200 * time.Millisecond,
			DuckReleaseAfter: 600 * time.Millisecond,
		},
		Policy: PolicyConfig{
			Start:   StartImmediate,
			Restart: RestartManual,
		},
	}
}

// DefaultYAML returns the embedded default config file.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
