package main

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/registry"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagEpisodeLimit int
	flagRunID        string
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores and recent episodes",
	Long: `Display the top 10 high scores for a variant (default: flappy),
followed by that variant's recent episodes and a breakdown of how they
ended. With --run, list the episodes of one evaluation run instead.

Examples:
  flappy scores
  flappy scores flappy_auto --episodes 25
  flappy scores --run 2f6c1d7e-...`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagEpisodeLimit, "episodes", 10, "Number of recent episodes to show")
	scoresCmd.Flags().StringVar(&flagRunID, "run", "", "Show the episodes of one run ID")
}

// controllerFor names the controller whose episodes belong to a variant.
func controllerFor(game registry.Game) string {
	if c, ok := game.(interface{ Controller() string }); ok {
		return c.Controller()
	}
	return game.ID()
}

func runScores(_ *cobra.Command, args []string) {
	var game registry.Game
	if flagRunID == "" {
		gameID := "flappy"
		if len(args) > 0 {
			gameID = args[0]
		}
		g, err := registry.Create(gameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
			fmt.Fprintln(os.Stderr, "Run 'flappy list' to see available variants.")
			os.Exit(1)
		}
		game = g
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if game == nil {
		if err := printRun(os.Stdout, store, flagRunID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	if err := printScores(os.Stdout, store, game); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}
	if err := printEpisodes(os.Stdout, store, controllerFor(game), flagEpisodeLimit); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving episodes: %v\n", err)
	}
}

func printScores(w io.Writer, store *storage.Store, game registry.Game) error {
	scores, err := store.TopScores(game.ID(), 10)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "High Scores - %s\n\n", game.Title())

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintf(w, "Play 'flappy play %s' to set the first high score!\n", game.ID())
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Fprintf(w, "  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Fprintf(w, "  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}
	if stats, statsErr := store.GetGameStats(game.ID()); statsErr == nil {
		fmt.Fprintf(w, "\nBest: %d  Games: %d  Average: %.1f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	}
	return nil
}

// printEpisodes lists a controller's recent episodes and how all of its
// episodes ended.
func printEpisodes(w io.Writer, store *storage.Store, controller string, limit int) error {
	episodes, err := store.RecentEpisodes(controller, limit)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "\nRecent Episodes - %s\n\n", controller)
	if len(episodes) == 0 {
		fmt.Fprintln(w, "No episodes recorded yet.")
		return nil
	}
	writeEpisodeTable(w, episodes)

	counts, err := store.CauseCounts(controller)
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Endings")
	for _, cause := range []flappy.Cause{flappy.CauseCollision, flappy.CauseFloor, flappy.CauseQuit, flappy.CauseNone} {
		fmt.Fprintf(w, "  %-18s  %d\n", cause, counts[string(cause)])
	}
	return nil
}

// printRun lists every episode of one run with a per-controller tally.
func printRun(w io.Writer, store *storage.Store, runID string) error {
	episodes, err := store.RunEpisodes(runID)
	if err != nil {
		return err
	}
	if len(episodes) == 0 {
		return fmt.Errorf("no episodes recorded for run %q", runID)
	}

	fmt.Fprintf(w, "Run %s\n\n", runID)
	writeEpisodeTable(w, episodes)

	type tally struct{ episodes, failures, best int }
	var order []string
	tallies := make(map[string]*tally)
	for _, e := range episodes {
		t, ok := tallies[e.Controller]
		if !ok {
			t = &tally{}
			tallies[e.Controller] = t
			order = append(order, e.Controller)
		}
		t.episodes++
		t.best = max(t.best, e.Score)
		if flappy.Cause(e.Cause).Failure() {
			t.failures++
		}
	}
	slices.Sort(order)

	fmt.Fprintln(w)
	for _, name := range order {
		t := tallies[name]
		fmt.Fprintf(w, "  %-12s  episodes %d  failures %d  best %d\n", name, t.episodes, t.failures, t.best)
	}
	return nil
}

func writeEpisodeTable(w io.Writer, episodes []storage.EpisodeRecord) {
	fmt.Fprintf(w, "  %-12s  %-6s  %-7s  %-18s  %-9s  %s\n", "Controller", "Score", "Frames", "Cause", "Fitness", "Date")
	fmt.Fprintf(w, "  %-12s  %-6s  %-7s  %-18s  %-9s  %s\n", "----------", "-----", "------", "-----", "-------", "----")
	for _, e := range episodes {
		fmt.Fprintf(w, "  %-12s  %-6d  %-7d  %-18s  %-9.1f  %s\n",
			e.Controller, e.Score, e.Frames, e.Cause, e.Fitness, e.CreatedAt.Format("2006-01-02 15:04"))
	}
}
