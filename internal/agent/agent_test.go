package agent

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

func TestPerceptronDecide(t *testing.T) {
	p := NewPerceptron(DefaultWeights())

	tests := []struct {
		name string
		obs  flappy.Observation
		want flappy.Decision
	}{
		{"above the gap", flappy.Observation{BirdY: 100, GapTop: 200, GapBottom: 400}, flappy.DecisionNone},
		{"upper half", flappy.Observation{BirdY: 250, GapTop: 200, GapBottom: 400}, flappy.DecisionNone},
		{"just above threshold", flappy.Observation{BirdY: 321.5, GapTop: 200, GapBottom: 400}, flappy.DecisionNone},
		{"at threshold", flappy.Observation{BirdY: 322, GapTop: 200, GapBottom: 400}, flappy.DecisionJump},
		{"below the gap", flappy.Observation{BirdY: 450, GapTop: 200, GapBottom: 400}, flappy.DecisionJump},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Decide(tt.obs); got != tt.want {
				t.Errorf("Decide() = %v, want %v (activation %.4f)", got, tt.want, p.Activate(tt.obs))
			}
		})
	}
}

func TestPerceptronMatchesAutopilot(t *testing.T) {
	p := NewPerceptron(DefaultWeights())
	a := flappy.NewAutopilot()

	for top := 50.0; top < 450; top += 37 {
		for y := -50.0; y < 730; y += 0.5 {
			obs := flappy.Observation{BirdY: y, GapTop: top, GapBottom: top + 200}
			if p.Decide(obs) != a.Decide(obs) {
				t.Fatalf("y=%v top=%v: perceptron %v, autopilot %v", y, top, p.Decide(obs), a.Decide(obs))
			}
		}
	}
}

func TestLoadWeights(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "w.yaml")
	data := []byte("name: lazy\nweights: [0, 0, 0]\nbias: -1\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	w, err := LoadWeights(path)
	if err != nil {
		t.Fatalf("LoadWeights() failed: %v", err)
	}
	if w.Name != "lazy" || w.Bias != -1 || w.Inputs != [3]float64{} {
		t.Errorf("unexpected weights %+v", w)
	}
	if w.Threshold != 0.5 {
		t.Errorf("Threshold = %v, want default 0.5", w.Threshold)
	}
}

func TestLoadWeightsErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadWeights(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("threshold: 2\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := LoadWeights(bad); err == nil {
		t.Error("expected error for threshold outside (-1, 1)")
	}
}

func TestEvaluate(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	candidates := []Candidate{
		{Name: "perceptron", New: func() flappy.Controller { return NewPerceptron(DefaultWeights()) }},
		{Name: "idle", New: func() flappy.Controller { return NewPerceptron(Weights{Threshold: 0.5}) }},
	}

	outcomes, err := Evaluate(context.Background(), cfg, candidates, EvalOptions{
		Seed:      10,
		Episodes:  3,
		MaxFrames: 600,
		Workers:   4,
	})
	if err != nil {
		t.Fatalf("Evaluate() failed: %v", err)
	}
	if len(outcomes) != 6 {
		t.Fatalf("got %d outcomes, want 6", len(outcomes))
	}

	for i, o := range outcomes {
		wantName := candidates[i/3].Name
		wantSeed := int64(10 + i%3)
		if o.Candidate != wantName || o.Seed != wantSeed {
			t.Errorf("outcome %d = %s/%d, want %s/%d", i, o.Candidate, o.Seed, wantName, wantSeed)
		}
	}

	for _, o := range outcomes[:3] {
		if o.Result.Cause != flappy.CauseNone || o.Result.Frames != 600 {
			t.Errorf("perceptron seed %d: %+v", o.Seed, o.Result)
		}
	}
	for _, o := range outcomes[3:] {
		if o.Result.Cause != flappy.CauseFloor || o.Result.Frames != 23 {
			t.Errorf("idle seed %d: %+v", o.Seed, o.Result)
		}
	}

	sums := Summarize(outcomes)
	if len(sums) != 2 || sums[0].Candidate != "perceptron" {
		t.Fatalf("unexpected summaries %+v", sums)
	}
	if sums[1].Failures[flappy.CauseFloor] != 3 {
		t.Errorf("idle failures = %v", sums[1].Failures)
	}
	if sums[0].MeanFitness <= sums[1].MeanFitness {
		t.Errorf("perceptron fitness %.2f should beat idle %.2f", sums[0].MeanFitness, sums[1].MeanFitness)
	}
}

func TestEvaluateMatchesSequentialRun(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	candidates := []Candidate{
		{Name: "auto", New: func() flappy.Controller { return flappy.NewAutopilot() }},
	}

	outcomes, err := Evaluate(context.Background(), cfg, candidates, EvalOptions{Seed: 3, Episodes: 4, MaxFrames: 300})
	if err != nil {
		t.Fatalf("Evaluate() failed: %v", err)
	}

	for _, o := range outcomes {
		e := flappy.NewEpisode(cfg, o.Seed)
		want := e.Run(context.Background(), flappy.NewAutopilot(), flappy.RunOptions{Unpaced: true, MaxFrames: 300})
		if o.Result != want {
			t.Errorf("seed %d: parallel %+v, sequential %+v", o.Seed, o.Result, want)
		}
	}
}

func TestEvaluateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	candidates := []Candidate{
		{Name: "auto", New: func() flappy.Controller { return flappy.NewAutopilot() }},
	}
	if _, err := Evaluate(ctx, config.DefaultFlappyConfig(), candidates, EvalOptions{}); err == nil {
		t.Error("expected context error")
	}
}

func TestEvaluateRejectsNilFactory(t *testing.T) {
	_, err := Evaluate(context.Background(), config.DefaultFlappyConfig(), []Candidate{{Name: "broken"}}, EvalOptions{})
	if err == nil {
		t.Error("expected error for candidate without factory")
	}
}
