package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg := DefaultFlappyConfig()
	embedded := FlappyConfig{}
	if err := yaml.Unmarshal(DefaultYAML(), &embedded); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if embedded != cfg {
		t.Errorf("embedded defaults differ from DefaultFlappyConfig:\n%+v\n%+v", embedded, cfg)
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultFlappyConfig().Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*FlappyConfig)
		want   string
	}{
		{"zero frame rate", func(c *FlappyConfig) { c.World.FrameRate = 0 }, "frame_rate"},
		{"negative gap", func(c *FlappyConfig) { c.Obstacles.GapSize = -10 }, "gap_size"},
		{"empty gap range", func(c *FlappyConfig) { c.Obstacles.MaxGapY = c.Obstacles.MinGapY }, "gap range"},
		{"narrow ground", func(c *FlappyConfig) { c.World.GroundWidth = 100 }, "ground_width"},
		{"still pipes", func(c *FlappyConfig) { c.Obstacles.Velocity = 0 }, "velocity"},
		{"inverted tilt", func(c *FlappyConfig) { c.Bird.MinTilt = 30 }, "tilt range"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultFlappyConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q should mention %q", err, tc.want)
			}
		})
	}
}

func TestLoadFlappyCustomPathOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flappy.yaml")
	data := []byte("obstacles:\n  gap_size: 240\nworld:\n  frame_rate: 60\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFlappy(path)
	if err != nil {
		t.Fatalf("LoadFlappy() failed: %v", err)
	}
	if cfg.Obstacles.GapSize != 240 {
		t.Errorf("GapSize = %.0f, expected 240", cfg.Obstacles.GapSize)
	}
	if cfg.World.FrameRate != 60 {
		t.Errorf("FrameRate = %d, expected 60", cfg.World.FrameRate)
	}
	// Untouched keys keep their defaults
	if cfg.Obstacles.Velocity != 5 {
		t.Errorf("Velocity = %.0f, expected default 5", cfg.Obstacles.Velocity)
	}
}

func TestLoadFlappyRejectsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flappy.yaml")
	if err := os.WriteFile(path, []byte("world:\n  frame_rate: -1\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFlappy(path); err == nil {
		t.Error("LoadFlappy() should reject a non-positive frame rate")
	}
}

func TestLoadFlappyMissingFile(t *testing.T) {
	if _, err := LoadFlappy(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("LoadFlappy() should fail for a missing custom path")
	}
}

func TestApplyFlappyPreset(t *testing.T) {
	cfg := DefaultFlappyConfig()

	ApplyFlappyPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset gave %+v", cfg.Difficulty)
	}

	ApplyFlappyPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	if ParsePreset("bogus") != "" || ParsePreset("easy") != DifficultyEasy {
		t.Error("ParsePreset returned unexpected values")
	}
}
