package agent

import (
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// Built-in controller names accepted by Candidates.
const (
	NameAutopilot  = "autopilot"
	NamePerceptron = "perceptron"
	NameIdle       = "idle"
)

// Candidates builds the candidate list for an evaluation from built-in
// controller names and perceptron weight files. Each weight file becomes a
// candidate named after its `name` field.
func Candidates(names []string, weightFiles []string) ([]Candidate, error) {
	var out []Candidate
	seen := make(map[string]bool)

	add := func(c Candidate) error {
		if seen[c.Name] {
			return fmt.Errorf("agent: duplicate candidate %q", c.Name)
		}
		seen[c.Name] = true
		out = append(out, c)
		return nil
	}

	for _, name := range names {
		var c Candidate
		switch name {
		case NameAutopilot:
			c = Candidate{Name: name, New: func() flappy.Controller { return flappy.NewAutopilot() }}
		case NamePerceptron:
			c = Candidate{Name: name, New: func() flappy.Controller { return NewPerceptron(DefaultWeights()) }}
		case NameIdle:
			c = Candidate{Name: name, New: func() flappy.Controller { return nil }}
		default:
			return nil, fmt.Errorf("agent: unknown controller %q", name)
		}
		if err := add(c); err != nil {
			return nil, err
		}
	}

	for _, path := range weightFiles {
		w, err := LoadWeights(path)
		if err != nil {
			return nil, err
		}
		if err := add(Candidate{Name: w.Name, New: func() flappy.Controller { return NewPerceptron(w) }}); err != nil {
			return nil, err
		}
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("agent: no controllers to evaluate")
	}
	return out, nil
}

// EpisodeRecords converts outcomes into rows for the episode history.
func EpisodeRecords(runID string, outcomes []Outcome) []storage.EpisodeRecord {
	recs := make([]storage.EpisodeRecord, len(outcomes))
	for i, o := range outcomes {
		recs[i] = storage.EpisodeRecord{
			RunID:      runID,
			Controller: o.Candidate,
			Seed:       o.Seed,
			Score:      o.Result.Score,
			Frames:     o.Result.Frames,
			Cause:      string(o.Result.Cause),
			Fitness:    o.Result.Fitness,
		}
	}
	return recs
}
