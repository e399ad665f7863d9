package flappy

import "math"

// PipeState is the render view of one pipe.
type PipeState struct {
	X       float64
	TopY    float64 // Origin of the top piece
	BottomY float64 // Origin of the bottom piece
	Passed  bool
}

// Snapshot is a copy of everything a renderer needs for one frame.
// It holds no references into the episode.
type Snapshot struct {
	Frame     int
	Score     int
	Cause     Cause
	Done      bool
	BirdX     float64
	BirdY     float64
	BirdTilt  float64
	BirdFrame int
	Pipes     []PipeState
	GroundX1  float64
	GroundX2  float64
	GroundY   float64
}

// Snapshot returns the current state of the episode.
func (e *Episode) Snapshot() Snapshot {
	pipes := make([]PipeState, 0, len(e.pipes.Pipes()))
	for _, p := range e.pipes.Pipes() {
		pipes = append(pipes, PipeState{
			X:       p.X,
			TopY:    p.Top,
			BottomY: p.Bottom,
			Passed:  p.Passed,
		})
	}

	return Snapshot{
		Frame:     e.frames,
		Score:     e.score,
		Cause:     e.cause,
		Done:      e.done,
		BirdX:     e.bird.X,
		BirdY:     e.bird.Y,
		BirdTilt:  e.bird.Tilt,
		BirdFrame: e.bird.Frame(),
		Pipes:     pipes,
		GroundX1:  e.ground.X1,
		GroundX2:  e.ground.X2,
		GroundY:   e.ground.Y,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (s *Snapshot) Hash() uint64 {
	h := uint64(s.Frame)           //#nosec G115 -- hash computation
	h = h*31 + uint64(s.Score)     //#nosec G115 -- hash computation
	h = h*31 + uint64(s.BirdFrame) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(s.BirdY)
	h = h*31 + math.Float64bits(s.BirdTilt)
	h = h*31 + math.Float64bits(s.GroundX1)
	h = h*31 + math.Float64bits(s.GroundX2)

	for _, p := range s.Pipes {
		h = h*31 + math.Float64bits(p.X)
		h = h*31 + math.Float64bits(p.TopY)
		h = h*31 + math.Float64bits(p.BottomY)
	}

	for _, c := range s.Cause {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}

	return h
}
