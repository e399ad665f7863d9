package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/agent"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagEpisodes    int
	flagMaxFrames   int
	flagWorkers     int
	flagControllers []string
	flagWeights     []string
	flagNoStore     bool
	flagVerbose     bool
)

var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Evaluate controllers over many seeded episodes",
	Long: `Run every selected controller for --episodes episodes, unpaced and in
parallel. Episode i of every controller uses seed --seed + i, so all
controllers face the same pipe layouts. Each finished episode is stored in
the episode log under one run ID.

Built-in controllers:
  autopilot  - Jump when the bird sinks below the gap center
  perceptron - Single neuron with the default gap-follower weights
  idle       - Never jumps

Weight files (YAML) add perceptron candidates:
  name: climber
  weights: [0, 0.01, -0.01]
  bias: 0.1143
  threshold: 0.5

Examples:
  flappy eval
  flappy eval --episodes 50 --max-frames 3000 --seed 7
  flappy eval --controllers idle --weights ./climber.yaml -v`,
	Run: runEval,
}

func init() {
	evalCmd.Flags().IntVarP(&flagEpisodes, "episodes", "n", 10, "Episodes per controller")
	evalCmd.Flags().IntVar(&flagMaxFrames, "max-frames", 3000, "Frame cap per episode (0 = until failure)")
	evalCmd.Flags().IntVar(&flagWorkers, "workers", 0, "Concurrent episodes (0 = GOMAXPROCS)")
	evalCmd.Flags().StringSliceVar(&flagControllers, "controllers",
		[]string{agent.NameAutopilot, agent.NamePerceptron}, "Built-in controllers to evaluate")
	evalCmd.Flags().StringSliceVar(&flagWeights, "weights", nil, "Perceptron weight files to evaluate")
	evalCmd.Flags().BoolVar(&flagNoStore, "no-store", false, "Do not write episodes to the database")
	evalCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log every episode")
}

func runEval(_ *cobra.Command, _ []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "flappy-eval",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	cfg, err := flappy.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	candidates, err := agent.Candidates(flagControllers, flagWeights)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	runID := uuid.NewString()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("evaluation started",
		"run", runID,
		"controllers", len(candidates),
		"episodes", flagEpisodes,
		"seed", seed,
	)
	start := time.Now()

	outcomes, evalErr := agent.Evaluate(ctx, cfg, candidates, agent.EvalOptions{
		Seed:      seed,
		Episodes:  flagEpisodes,
		MaxFrames: flagMaxFrames,
		Workers:   flagWorkers,
	})
	if evalErr != nil {
		logger.Warn("evaluation interrupted, results are partial", "error", evalErr)
	}
	outcomes = finished(outcomes)

	for _, o := range outcomes {
		logger.Debug("episode",
			"controller", o.Candidate,
			"seed", o.Seed,
			"score", o.Result.Score,
			"frames", o.Result.Frames,
			"cause", o.Result.Cause,
			"fitness", o.Result.Fitness,
		)
	}

	for _, s := range agent.Summarize(outcomes) {
		logger.Info("summary",
			"controller", s.Candidate,
			"episodes", s.Episodes,
			"best", s.BestScore,
			"mean_score", fmt.Sprintf("%.2f", s.MeanScore),
			"mean_fitness", fmt.Sprintf("%.2f", s.MeanFitness),
			"collisions", s.Failures[flappy.CauseCollision],
			"floor_breaches", s.Failures[flappy.CauseFloor],
		)
	}
	logger.Info("evaluation finished", "run", runID, "elapsed", time.Since(start).Round(time.Millisecond))

	if flagNoStore {
		return
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Error("could not open episode database", "error", err)
		return
	}
	defer store.Close()

	recs := agent.EpisodeRecords(runID, outcomes)
	if err := store.SaveEpisodes(recs); err != nil {
		logger.Error("could not store episodes", "error", err)
		return
	}
	logger.Info("episodes stored", "run", runID, "count", len(recs), "inspect", "flappy scores --run "+runID)
}

// finished drops the slots of episodes that never started.
func finished(outcomes []agent.Outcome) []agent.Outcome {
	out := outcomes[:0:0]
	for _, o := range outcomes {
		if o.Candidate != "" {
			out = append(out, o)
		}
	}
	return out
}
