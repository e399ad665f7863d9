// flappy runs the flappy bird simulation in the terminal.
//
// Usage:
//
//	flappy list              - List playable variants
//	flappy play [game]       - Play (default: flappy)
//	flappy eval              - Evaluate controllers over many seeded episodes
//	flappy scores [game]     - Show high scores and recent episodes
//	flappy board             - Browse scores and episodes interactively
//	flappy serve             - Start SSH server for remote play
//	flappy config            - Print the default configuration
//
// Global flags:
//
//	--fps <rate>          - Override the tick rate (default: world.frame_rate)
//	--seed <value>        - Set RNG seed for reproducible episodes
//	--db <path>           - Set database path (default: ~/.flappy/scores.db)
//	--config <path>       - Custom game config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy Bird in your terminal, for humans and controllers",
	Long: `flappy is a deterministic flappy bird simulation with a terminal
front end, an SSH server and a batch evaluator for automated controllers.

Available commands:
  list     - Show playable variants
  play     - Play a variant directly
  eval     - Evaluate controllers concurrently
  scores   - View high scores and episode history
  board    - Interactive scoreboard
  serve    - Start SSH server for remote play
  config   - Print the default configuration

Examples:
  flappy play
  flappy play flappy_auto
  flappy eval --episodes 20 --weights ./climber.yaml
  flappy serve --ssh :2222
  flappy scores flappy`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		flappy.SetConfigPath(flagConfig)
		flappy.SetDifficultyPreset(flagDifficulty)
	},
}

// tickRateOverride returns --fps when the user set it, else 0 so the game
// config's world.frame_rate applies.
func tickRateOverride(cmd *cobra.Command) int {
	if f := cmd.Flag("fps"); f != nil && f.Changed {
		return flagFPS
	}
	return 0
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = world.frame_rate from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.flappy/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
