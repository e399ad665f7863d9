// Package agent provides automated controllers for the flappy simulation
// and a batch evaluator that scores them over independent episodes.
package agent

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// Weights parameterize a single-neuron policy over three inputs:
// bird y, distance to the gap top and distance to the gap bottom.
type Weights struct {
	Name      string     `yaml:"name"`
	Inputs    [3]float64 `yaml:"weights"`
	Bias      float64    `yaml:"bias"`
	Threshold float64    `yaml:"threshold"` // Jump when tanh output exceeds this
}

// DefaultWeights jumps once the bird sinks into the lower part of the gap.
// Inside the gap the two distances differ by 2y - top - bottom, so the
// neuron fires when that exceeds 43.5.
func DefaultWeights() Weights {
	return Weights{
		Name:      "gap-follower",
		Inputs:    [3]float64{0, 0.01, -0.01},
		Bias:      0.1143,
		Threshold: 0.5,
	}
}

// LoadWeights reads weights from a YAML file. Missing keys keep the
// defaults.
func LoadWeights(path string) (Weights, error) {
	w := DefaultWeights()
	data, err := os.ReadFile(path)
	if err != nil {
		return w, fmt.Errorf("agent: failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &w); err != nil {
		return w, fmt.Errorf("agent: failed to parse %s: %w", path, err)
	}
	if w.Threshold <= -1 || w.Threshold >= 1 {
		return w, fmt.Errorf("agent: threshold %.2f outside tanh range (-1, 1)", w.Threshold)
	}
	return w, nil
}

// Perceptron is a flappy.Controller driven by Weights.
type Perceptron struct {
	w    Weights
	last flappy.Result
}

// NewPerceptron creates a controller with the given weights.
func NewPerceptron(w Weights) *Perceptron {
	return &Perceptron{w: w}
}

// Activate returns the neuron output for an observation.
func (p *Perceptron) Activate(obs flappy.Observation) float64 {
	in := [3]float64{
		obs.BirdY,
		math.Abs(obs.BirdY - obs.GapTop),
		math.Abs(obs.BirdY - obs.GapBottom),
	}
	sum := p.w.Bias
	for i, v := range in {
		sum += p.w.Inputs[i] * v
	}
	return math.Tanh(sum)
}

// Decide implements flappy.Controller.
func (p *Perceptron) Decide(obs flappy.Observation) flappy.Decision {
	if p.Activate(obs) > p.w.Threshold {
		return flappy.DecisionJump
	}
	return flappy.DecisionNone
}

// Report implements flappy.Controller.
func (p *Perceptron) Report(res flappy.Result) {
	p.last = res
}

// Last returns the result of the most recent episode.
func (p *Perceptron) Last() flappy.Result {
	return p.last
}

// Name returns the weight set's name.
func (p *Perceptron) Name() string {
	return p.w.Name
}
