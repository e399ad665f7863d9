package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in simulation constants.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Physics: FlappyPhysics{
			JumpVelocity:         -10.5,
			Acceleration:         1.5,
			TerminalDisplacement: 16,
			AscentBoost:          2,
		},
		Bird: FlappyBird{
			StartX:         230,
			StartY:         350,
			MaxTilt:        25,
			MinTilt:        -90,
			TiltRate:       20,
			DiveThreshold:  50,
			WingLockTilt:   -80,
			AnimationTicks: 5,
		},
		Obstacles: FlappyObstacles{
			Velocity: 5,
			GapSize:  200,
			MinGapY:  50,
			MaxGapY:  450,
			InitialX: 600,
			SpawnX:   700,
		},
		World: FlappyWorld{
			Width:       500,
			Height:      800,
			FloorY:      730,
			GroundWidth: 672,
			FrameRate:   30,
		},
		Fitness: FitnessConfig{
			PerFrame:       0.1,
			PerPipe:        5,
			FailurePenalty: 1,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 50,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML, e.g. for `flappy config`.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
