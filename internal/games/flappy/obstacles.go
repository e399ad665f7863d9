package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// Pipe is a pair of pieces with a vertical gap between them.
type Pipe struct {
	X      float64 // Left edge
	Height float64 // Y of the gap top (lower edge of the top piece)
	Top    float64 // Y of the top piece's image origin
	Bottom float64 // Y of the bottom piece's image origin (gap bottom)
	Passed bool    // Whether the bird has passed this pipe
}

// NewPipe creates a pipe at x with a random gap height in [MinGapY, MaxGapY).
func NewPipe(x float64, rng *rand.Rand, cfg config.FlappyObstacles) Pipe {
	h := float64(cfg.MinGapY + rng.Intn(cfg.MaxGapY-cfg.MinGapY))
	return Pipe{
		X:      x,
		Height: h,
		Top:    h - PipeHeight,
		Bottom: h + cfg.GapSize,
	}
}

// Advance scrolls the pipe left.
func (p *Pipe) Advance(velocity float64) {
	p.X -= velocity
}

// Gap returns the opening between the two pieces.
func (p Pipe) Gap() float64 {
	return p.Bottom - (p.Top + PipeHeight)
}

// Right returns the x of the trailing edge.
func (p Pipe) Right() float64 {
	return p.X + PipeWidth
}

// Silhouettes returns the top and bottom pieces for collision testing.
func (p Pipe) Silhouettes() [2]Silhouette {
	return [2]Silhouette{
		{Mask: pipeTopMask, X: p.X, Y: p.Top},
		{Mask: pipeBottomMask, X: p.X, Y: p.Bottom},
	}
}

// Collides reports whether the bird overlaps either piece.
func (p Pipe) Collides(b Silhouette) bool {
	for _, s := range p.Silhouettes() {
		if Collide(b, s) {
			return true
		}
	}
	return false
}

// PipeField owns the pipes of an episode, ordered by spawn time.
type PipeField struct {
	pipes []Pipe
	rng   *rand.Rand
	cfg   config.FlappyObstacles
}

// NewPipeField creates a field holding the first pipe of an episode.
func NewPipeField(seed int64, cfg config.FlappyObstacles) *PipeField {
	f := &PipeField{
		pipes: make([]Pipe, 0, 4),
		cfg:   cfg,
	}
	f.Reset(seed)
	return f
}

// Reconfigure replaces the obstacle parameters. They apply from the next
// Reset; pipes already on the field keep their geometry.
func (f *PipeField) Reconfigure(cfg config.FlappyObstacles) {
	f.cfg = cfg
}

// Reset clears all pipes, reseeds the RNG and places the first pipe.
func (f *PipeField) Reset(seed int64) {
	f.rng = rand.New(rand.NewSource(seed))
	f.pipes = append(f.pipes[:0], NewPipe(f.cfg.InitialX, f.rng, f.cfg))
}

// Step scrolls every pipe, flags pipes whose left edge went past agentX,
// drops pipes that left the playfield and spawns at most one new pipe.
// Returns the number of pipes passed this frame.
func (f *PipeField) Step(agentX, velocity float64) int {
	passed := 0

	for i := range f.pipes {
		f.pipes[i].Advance(velocity)
		if !f.pipes[i].Passed && f.pipes[i].X < agentX {
			f.pipes[i].Passed = true
			passed++
		}
	}

	kept := f.pipes[:0]
	for _, p := range f.pipes {
		if p.Right() >= 0 {
			kept = append(kept, p)
		}
	}
	f.pipes = kept

	if passed > 0 {
		f.pipes = append(f.pipes, NewPipe(f.cfg.SpawnX, f.rng, f.cfg))
	}

	return passed
}

// Collides reports whether the silhouette overlaps any live pipe.
func (f *PipeField) Collides(b Silhouette) bool {
	for _, p := range f.pipes {
		if p.Collides(b) {
			return true
		}
	}
	return false
}

// Next returns the first pipe whose trailing edge is still right of agentX.
func (f *PipeField) Next(agentX float64) (Pipe, bool) {
	for _, p := range f.pipes {
		if p.Right() > agentX {
			return p, true
		}
	}
	return Pipe{}, false
}

// Pipes returns the live pipes. The slice must not be modified.
func (f *PipeField) Pipes() []Pipe {
	return f.pipes
}
