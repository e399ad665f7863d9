package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

var flagCheck bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in configuration as YAML. Save it to
~/.flappy/configs/flappy.yaml or pass it with --config to customize.

With --check, the configuration selected by --config is loaded and
validated instead.

Examples:
  flappy config > ~/.flappy/configs/flappy.yaml
  flappy config --check --config ./my-flappy.yaml`,
	Run: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagCheck, "check", false, "Validate the selected config instead of printing defaults")
}

func runConfig(_ *cobra.Command, _ []string) {
	if !flagCheck {
		fmt.Print(string(config.DefaultYAML()))
		return
	}

	cfg, err := flappy.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("config ok: gap %.0f px, scroll %.0f px/frame, %d fps\n",
		cfg.Obstacles.GapSize, cfg.Obstacles.Velocity, cfg.World.FrameRate)
}
