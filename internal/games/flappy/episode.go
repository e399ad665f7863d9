package flappy

import (
	"context"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// Cause is why an episode ended.
type Cause string

const (
	CauseNone      Cause = "none"
	CauseCollision Cause = "obstacle-collision"
	CauseFloor     Cause = "floor-breach"
	CauseQuit      Cause = "quit-requested"
)

// Failure reports whether the cause counts against the agent.
func (c Cause) Failure() bool {
	return c == CauseCollision || c == CauseFloor
}

// Decision is a controller's choice for one frame.
type Decision uint8

const (
	DecisionNone Decision = iota // No-op, also used when a controller has nothing to say
	DecisionJump
)

// Observation is what a controller sees before deciding on a frame.
type Observation struct {
	Frame        int
	BirdY        float64
	Velocity     float64 // Velocity set by the last jump
	Displacement float64 // Move applied in the previous frame
	PipeDistance float64 // Next pipe's left edge minus the bird's x
	GapTop       float64
	GapBottom    float64
}

// Result is the outcome of a finished episode.
type Result struct {
	Score   int
	Frames  int
	Cause   Cause
	Fitness float64
}

// Controller supplies per-frame decisions and receives the final result.
type Controller interface {
	Decide(obs Observation) Decision
	Report(res Result)
}

// Renderer consumes one snapshot per simulated frame.
type Renderer interface {
	Draw(s Snapshot)
}

// Episode owns every entity of one run from spawn to termination.
// Episodes share nothing, so independent episodes may run in parallel.
type Episode struct {
	cfg        config.FlappyConfig
	difficulty *config.DifficultyManager

	bird   *Bird
	pipes  *PipeField
	ground *Ground

	seed     int64
	score    int
	frames   int
	velocity float64
	cause    Cause
	done     bool
}

// NewEpisode creates an episode ready to step.
func NewEpisode(cfg config.FlappyConfig, seed int64) *Episode {
	e := &Episode{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}
	e.Reset(seed)
	return e
}

// Reconfigure swaps the configuration of every entity. It takes effect
// from the next Reset.
func (e *Episode) Reconfigure(cfg config.FlappyConfig) {
	e.cfg = cfg
	e.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	e.pipes.Reconfigure(cfg.Obstacles)
}

// Seed returns the seed the current episode was started with.
func (e *Episode) Seed() int64 {
	return e.seed
}

// Reset starts a fresh episode with the given seed.
func (e *Episode) Reset(seed int64) {
	e.seed = seed
	e.bird = NewBird(e.cfg.Physics, e.cfg.Bird)
	if e.pipes == nil {
		e.pipes = NewPipeField(seed, e.cfg.Obstacles)
	} else {
		e.pipes.Reset(seed)
	}
	e.ground = NewGround(e.cfg.World.FloorY, e.cfg.World.GroundWidth)
	e.score = 0
	e.frames = 0
	e.velocity = e.cfg.Obstacles.Velocity
	e.cause = CauseNone
	e.done = false
}

// Step simulates one frame with the given decision and reports whether the
// episode is still running. Stepping a finished episode does nothing.
func (e *Episode) Step(d Decision) bool {
	if e.done {
		return false
	}

	if d == DecisionJump {
		e.bird.Jump()
	}
	e.bird.Advance()

	e.velocity = e.difficulty.Speed(e.cfg.Obstacles.Velocity, e.score, e.frames)
	e.score += e.pipes.Step(e.bird.X, e.velocity)
	e.ground.Advance(e.velocity)
	e.frames++

	switch {
	case e.pipes.Collides(e.bird.Silhouette()):
		e.terminate(CauseCollision)
	case e.bird.Bottom() > e.cfg.World.FloorY:
		e.terminate(CauseFloor)
	}

	return !e.done
}

// Quit ends a running episode with CauseQuit.
func (e *Episode) Quit() {
	if !e.done {
		e.terminate(CauseQuit)
	}
}

func (e *Episode) terminate(c Cause) {
	e.cause = c
	e.done = true
}

// Done reports whether the episode has terminated.
func (e *Episode) Done() bool {
	return e.done
}

// Score returns the number of pipes passed so far.
func (e *Episode) Score() int {
	return e.score
}

// Frames returns the number of simulated frames.
func (e *Episode) Frames() int {
	return e.frames
}

// Cause returns the terminal cause, CauseNone while running.
func (e *Episode) Cause() Cause {
	return e.cause
}

// Bird exposes the agent for rendering.
func (e *Episode) Bird() *Bird {
	return e.bird
}

// Observe returns the controller's view of the current frame.
func (e *Episode) Observe() Observation {
	obs := Observation{
		Frame:        e.frames,
		BirdY:        e.bird.Y,
		Velocity:     e.bird.Vel,
		Displacement: e.bird.LastMove(),
		PipeDistance: float64(e.cfg.World.Width),
		GapTop:       0,
		GapBottom:    e.cfg.World.FloorY,
	}
	if p, ok := e.pipes.Next(e.bird.X); ok {
		obs.PipeDistance = p.X - e.bird.X
		obs.GapTop = p.Height
		obs.GapBottom = p.Bottom
	}
	return obs
}

// Fitness scores survival time and pipes passed, minus a penalty on failure.
func (e *Episode) Fitness() float64 {
	f := float64(e.frames)*e.cfg.Fitness.PerFrame + float64(e.score)*e.cfg.Fitness.PerPipe
	if e.cause.Failure() {
		f -= e.cfg.Fitness.FailurePenalty
	}
	return f
}

// Result summarizes the episode so far.
func (e *Episode) Result() Result {
	return Result{
		Score:   e.score,
		Frames:  e.frames,
		Cause:   e.cause,
		Fitness: e.Fitness(),
	}
}

// RunOptions configures Run.
type RunOptions struct {
	Renderer  Renderer // Optional
	Unpaced   bool     // Step as fast as possible instead of at the frame rate
	MaxFrames int      // Stop with CauseNone after this many frames; 0 means no limit
}

// Run drives the episode with ctrl until it terminates, the frame limit is
// reached or ctx is cancelled. Cancellation is observed between frames and
// ends the episode with CauseQuit. The result is reported to ctrl and
// returned. A nil controller never jumps.
func (e *Episode) Run(ctx context.Context, ctrl Controller, opts RunOptions) Result {
	var tick <-chan time.Time
	if !opts.Unpaced {
		ticker := time.NewTicker(time.Second / time.Duration(e.cfg.World.FrameRate))
		defer ticker.Stop()
		tick = ticker.C
	}

	if opts.Renderer != nil {
		opts.Renderer.Draw(e.Snapshot())
	}

	for !e.done {
		if opts.MaxFrames > 0 && e.frames >= opts.MaxFrames {
			break
		}

		if tick != nil {
			select {
			case <-ctx.Done():
				e.Quit()
				continue
			case <-tick:
			}
		} else if ctx.Err() != nil {
			e.Quit()
			continue
		}

		d := DecisionNone
		if ctrl != nil {
			d = ctrl.Decide(e.Observe())
		}
		e.Step(d)

		if opts.Renderer != nil {
			opts.Renderer.Draw(e.Snapshot())
		}
	}

	res := e.Result()
	if ctrl != nil {
		ctrl.Report(res)
	}
	return res
}
