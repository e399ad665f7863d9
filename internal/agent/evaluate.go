package agent

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// Candidate is a named controller factory. New is called once per episode
// so that no controller state is shared between goroutines.
type Candidate struct {
	Name string
	New  func() flappy.Controller
}

// EvalOptions configures Evaluate.
type EvalOptions struct {
	Seed      int64 // Episode i of a candidate uses Seed+i
	Episodes  int   // Episodes per candidate, at least 1
	MaxFrames int   // Frame cap per episode; 0 means no limit
	Workers   int   // Concurrent episodes; 0 means GOMAXPROCS
}

// Outcome is one finished episode of a candidate.
type Outcome struct {
	Candidate string
	Seed      int64
	Result    flappy.Result
}

// Evaluate runs every candidate for opts.Episodes episodes, unpaced and in
// parallel. Outcomes are ordered by candidate, then by seed. Cancelling ctx
// ends the running episodes with CauseQuit and returns ctx's error.
func Evaluate(ctx context.Context, cfg config.FlappyConfig, candidates []Candidate, opts EvalOptions) ([]Outcome, error) {
	if opts.Episodes <= 0 {
		opts.Episodes = 1
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}
	for _, c := range candidates {
		if c.New == nil {
			return nil, fmt.Errorf("agent: candidate %q has no controller factory", c.Name)
		}
	}

	outcomes := make([]Outcome, len(candidates)*opts.Episodes)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)

	for ci, c := range candidates {
		for ep := range opts.Episodes {
			idx := ci*opts.Episodes + ep
			seed := opts.Seed + int64(ep)
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				e := flappy.NewEpisode(cfg, seed)
				res := e.Run(ctx, c.New(), flappy.RunOptions{Unpaced: true, MaxFrames: opts.MaxFrames})
				outcomes[idx] = Outcome{Candidate: c.Name, Seed: seed, Result: res}
				return ctx.Err()
			})
		}
	}

	if err := g.Wait(); err != nil {
		return outcomes, err
	}
	return outcomes, nil
}

// Summary aggregates the outcomes of one candidate.
type Summary struct {
	Candidate   string
	Episodes    int
	BestScore   int
	MeanScore   float64
	MeanFitness float64
	Failures    map[flappy.Cause]int
}

// Summarize groups outcomes by candidate, preserving first-seen order.
func Summarize(outcomes []Outcome) []Summary {
	var order []string
	byName := make(map[string]*Summary)

	for _, o := range outcomes {
		s, ok := byName[o.Candidate]
		if !ok {
			s = &Summary{Candidate: o.Candidate, Failures: make(map[flappy.Cause]int)}
			byName[o.Candidate] = s
			order = append(order, o.Candidate)
		}
		s.Episodes++
		s.MeanScore += float64(o.Result.Score)
		s.MeanFitness += o.Result.Fitness
		if o.Result.Score > s.BestScore {
			s.BestScore = o.Result.Score
		}
		if o.Result.Cause.Failure() {
			s.Failures[o.Result.Cause]++
		}
	}

	result := make([]Summary, 0, len(order))
	for _, name := range order {
		s := byName[name]
		s.MeanScore /= float64(s.Episodes)
		s.MeanFitness /= float64(s.Episodes)
		result = append(result, *s)
	}
	return result
}
