// Package config provides YAML-based configuration loading, validation and
// difficulty management for the flappy simulation.
package config

import (
	"errors"
	"fmt"
)

// FlappyConfig contains all tunable constants of the simulation.
type FlappyConfig struct {
	Physics    FlappyPhysics    `yaml:"physics"`
	Bird       FlappyBird       `yaml:"bird"`
	Obstacles  FlappyObstacles  `yaml:"obstacles"`
	World      FlappyWorld      `yaml:"world"`
	Fitness    FitnessConfig    `yaml:"fitness"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FlappyPhysics defines the bird's kinematic model.
// Displacement per frame is jump_velocity*t + acceleration*t^2.
type FlappyPhysics struct {
	JumpVelocity         float64 `yaml:"jump_velocity"`         // Velocity set by a jump (negative = up)
	Acceleration         float64 `yaml:"acceleration"`          // Quadratic term of the displacement
	TerminalDisplacement float64 `yaml:"terminal_displacement"` // Max downward move per frame
	AscentBoost          float64 `yaml:"ascent_boost"`          // Extra upward move while rising
}

// FlappyBird defines the bird's start position, tilt and animation.
type FlappyBird struct {
	StartX         float64 `yaml:"start_x"`
	StartY         float64 `yaml:"start_y"`
	MaxTilt        float64 `yaml:"max_tilt"`        // Nose-up limit, degrees
	MinTilt        float64 `yaml:"min_tilt"`        // Nose-down limit, degrees
	TiltRate       float64 `yaml:"tilt_rate"`       // Degrees per frame while diving
	DiveThreshold  float64 `yaml:"dive_threshold"`  // Fall below launch height before diving
	WingLockTilt   float64 `yaml:"wing_lock_tilt"`  // At or below this tilt wings stop flapping
	AnimationTicks int     `yaml:"animation_ticks"` // Frames each flap image is held
}

// FlappyObstacles defines pipe parameters.
type FlappyObstacles struct {
	Velocity float64 `yaml:"velocity"`  // Scroll speed in pixels per frame
	GapSize  float64 `yaml:"gap_size"`  // Vertical opening between the pieces
	MinGapY  int     `yaml:"min_gap_y"` // Lower bound (inclusive) of the gap top
	MaxGapY  int     `yaml:"max_gap_y"` // Upper bound (exclusive) of the gap top
	InitialX float64 `yaml:"initial_x"` // X of the first pipe of an episode
	SpawnX   float64 `yaml:"spawn_x"`   // X of every later pipe
}

// FlappyWorld defines the playfield.
type FlappyWorld struct {
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	FloorY      float64 `yaml:"floor_y"`
	GroundWidth float64 `yaml:"ground_width"` // Width of one ground segment
	FrameRate   int     `yaml:"frame_rate"`
}

// FitnessConfig shapes the scalar handed to external controllers.
type FitnessConfig struct {
	PerFrame       float64 `yaml:"per_frame"`
	PerPipe        float64 `yaml:"per_pipe"`
	FailurePenalty float64 `yaml:"failure_penalty"` // Subtracted on collision or floor breach
}

// Validate rejects configurations the simulation cannot run with.
func (c FlappyConfig) Validate() error {
	var errs []error

	if c.World.FrameRate <= 0 {
		errs = append(errs, fmt.Errorf("world.frame_rate must be positive, got %d", c.World.FrameRate))
	}
	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world size must be positive, got %dx%d", c.World.Width, c.World.Height))
	}
	if c.World.GroundWidth < float64(c.World.Width) {
		errs = append(errs, fmt.Errorf("world.ground_width %.0f cannot tile width %d", c.World.GroundWidth, c.World.Width))
	}
	if c.World.FloorY <= 0 {
		errs = append(errs, fmt.Errorf("world.floor_y must be positive, got %.1f", c.World.FloorY))
	}
	if c.Obstacles.GapSize <= 0 {
		errs = append(errs, fmt.Errorf("obstacles.gap_size must be positive, got %.1f", c.Obstacles.GapSize))
	}
	if c.Obstacles.Velocity <= 0 {
		errs = append(errs, fmt.Errorf("obstacles.velocity must be positive, got %.1f", c.Obstacles.Velocity))
	}
	if c.Obstacles.MaxGapY <= c.Obstacles.MinGapY {
		errs = append(errs, fmt.Errorf("obstacles gap range [%d, %d) is empty", c.Obstacles.MinGapY, c.Obstacles.MaxGapY))
	}
	if c.Physics.TerminalDisplacement <= 0 {
		errs = append(errs, fmt.Errorf("physics.terminal_displacement must be positive, got %.1f", c.Physics.TerminalDisplacement))
	}
	if c.Bird.MinTilt > c.Bird.MaxTilt {
		errs = append(errs, fmt.Errorf("bird tilt range [%.0f, %.0f] is inverted", c.Bird.MinTilt, c.Bird.MaxTilt))
	}
	if c.Bird.AnimationTicks <= 0 {
		errs = append(errs, fmt.Errorf("bird.animation_ticks must be positive, got %d", c.Bird.AnimationTicks))
	}
	if c.Difficulty.InitialLevel < 0 || c.Difficulty.InitialLevel > 1 {
		errs = append(errs, fmt.Errorf("difficulty.initial_level must be in [0, 1], got %.2f", c.Difficulty.InitialLevel))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid flappy config: %w", errors.Join(errs...))
	}
	return nil
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/frames at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
// Only the scroll speed scales; the pipe gap stays fixed for an episode.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to the speed factor at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string onto a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
