package flappy

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

func TestNewPipeGap(t *testing.T) {
	cfg := config.DefaultFlappyConfig().Obstacles
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 500; i++ {
		p := NewPipe(cfg.SpawnX, rng, cfg)
		if p.Height < float64(cfg.MinGapY) || p.Height >= float64(cfg.MaxGapY) {
			t.Fatalf("height %v out of [%d, %d)", p.Height, cfg.MinGapY, cfg.MaxGapY)
		}
		if p.Gap() != cfg.GapSize {
			t.Fatalf("Gap() = %v, want %v", p.Gap(), cfg.GapSize)
		}
		if p.Top+PipeHeight != p.Height {
			t.Fatalf("top piece should end at the gap top: %v != %v", p.Top+PipeHeight, p.Height)
		}
	}
}

func TestPipeGapInvariantOverLifetime(t *testing.T) {
	cfg := config.DefaultFlappyConfig().Obstacles
	p := NewPipe(cfg.InitialX, rand.New(rand.NewSource(3)), cfg)

	for p.Right() >= 0 {
		p.Advance(cfg.Velocity)
		if p.Gap() != cfg.GapSize {
			t.Fatalf("at x=%v Gap() = %v, want %v", p.X, p.Gap(), cfg.GapSize)
		}
	}
}

func TestPipeFieldSpawnAndCull(t *testing.T) {
	cfg := config.DefaultFlappyConfig().Obstacles
	f := NewPipeField(42, cfg)

	if len(f.Pipes()) != 1 || f.Pipes()[0].X != cfg.InitialX {
		t.Fatalf("expected one pipe at %v, got %+v", cfg.InitialX, f.Pipes())
	}

	// 600 -> 225 takes 75 frames.
	for i := 1; i < 75; i++ {
		if n := f.Step(230, cfg.Velocity); n != 0 {
			t.Fatalf("frame %d: passed %d pipes too early", i, n)
		}
	}
	if n := f.Step(230, cfg.Velocity); n != 1 {
		t.Fatalf("frame 75: passed = %d, want 1", n)
	}
	pipes := f.Pipes()
	if len(pipes) != 2 {
		t.Fatalf("expected a spawn, got %d pipes", len(pipes))
	}
	if !pipes[0].Passed || pipes[1].Passed {
		t.Errorf("only the old pipe should be passed: %+v", pipes)
	}
	if pipes[1].X != cfg.SpawnX {
		t.Errorf("spawned at %v, want %v", pipes[1].X, cfg.SpawnX)
	}

	// The passed pipe leaves once its trailing edge is off screen.
	for f.Pipes()[0].Passed && f.Pipes()[0].Right() >= cfg.Velocity {
		f.Step(230, cfg.Velocity)
	}
	f.Step(230, cfg.Velocity)
	if got := f.Pipes()[0]; got.Passed {
		t.Errorf("culled pipe still first: %+v", got)
	}
}

func TestPipeFieldKeepsOrder(t *testing.T) {
	cfg := config.DefaultFlappyConfig().Obstacles
	f := NewPipeField(9, cfg)

	for i := 0; i < 3000; i++ {
		if n := f.Step(230, cfg.Velocity); n > 1 {
			t.Fatalf("frame %d: %d pipes passed in one frame", i, n)
		}
		pipes := f.Pipes()
		unpassed := 0
		for j := range pipes {
			if j > 0 && pipes[j].X <= pipes[j-1].X {
				t.Fatalf("frame %d: pipes out of order: %+v", i, pipes)
			}
			if pipes[j].Right() < 0 {
				t.Fatalf("frame %d: pipe off screen not culled: %+v", i, pipes[j])
			}
			if !pipes[j].Passed {
				unpassed++
			}
		}
		if unpassed != 1 {
			t.Fatalf("frame %d: %d pending pipes, want 1", i, unpassed)
		}
	}
}

func TestPipeFieldResetIsDeterministic(t *testing.T) {
	cfg := config.DefaultFlappyConfig().Obstacles
	a := NewPipeField(5, cfg)
	b := NewPipeField(1, cfg)
	b.Reset(5)

	for i := 0; i < 500; i++ {
		a.Step(230, cfg.Velocity)
		b.Step(230, cfg.Velocity)
	}

	pa, pb := a.Pipes(), b.Pipes()
	if len(pa) != len(pb) {
		t.Fatalf("length mismatch: %d vs %d", len(pa), len(pb))
	}
	for i := range pa {
		if pa[i] != pb[i] {
			t.Errorf("pipe %d: %+v vs %+v", i, pa[i], pb[i])
		}
	}
}

func TestPipeFieldNext(t *testing.T) {
	cfg := config.DefaultFlappyConfig().Obstacles
	f := NewPipeField(11, cfg)

	p, ok := f.Next(230)
	if !ok || p.X != cfg.InitialX {
		t.Fatalf("Next() = %+v, %v", p, ok)
	}

	// Still the first pipe while it overlaps the bird.
	for range 80 {
		f.Step(230, cfg.Velocity)
	}
	p, _ = f.Next(230)
	if p.X != cfg.InitialX-80*cfg.Velocity {
		t.Errorf("Next() = %+v, want the first pipe", p)
	}

	// Once its trailing edge is behind the bird the spawned pipe is next.
	for range 20 {
		f.Step(230, cfg.Velocity)
	}
	p, _ = f.Next(230)
	if p.Passed {
		t.Errorf("Next() = %+v, want the pending pipe", p)
	}
}

func TestCollide(t *testing.T) {
	bird := birdMask(0, 0)

	tests := []struct {
		name string
		a, b Silhouette
		want bool
	}{
		{
			name: "bird inside bottom piece",
			a:    Silhouette{Mask: bird, X: 10, Y: 100},
			b:    Silhouette{Mask: pipeBottomMask, X: 0, Y: 80},
			want: true,
		},
		{
			name: "bird in the gap",
			a:    Silhouette{Mask: bird, X: 10, Y: 100},
			b:    Silhouette{Mask: pipeBottomMask, X: 0, Y: 200},
			want: false,
		},
		{
			name: "far apart",
			a:    Silhouette{Mask: bird, X: 0, Y: 0},
			b:    Silhouette{Mask: pipeTopMask, X: 500, Y: 500},
			want: false,
		},
		{
			name: "boxes touch only at transparent corners",
			a:    Silhouette{Mask: bird, X: 0, Y: 0},
			b:    Silhouette{Mask: pipeBottomMask, X: 66, Y: 46},
			want: false,
		},
		{
			name: "bird nose in the rim",
			a:    Silhouette{Mask: bird, X: 0, Y: 0},
			b:    Silhouette{Mask: pipeBottomMask, X: 60, Y: 20},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Collide(tt.a, tt.b); got != tt.want {
				t.Errorf("Collide() = %v, want %v", got, tt.want)
			}
			if got := Collide(tt.b, tt.a); got != tt.want {
				t.Errorf("Collide() reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPipeCollidesWithRotatedBird(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	b := NewBird(cfg.Physics, cfg.Bird)
	b.Tilt = -90

	// Turned on end the body is 60 tall and pokes 6 below the unrotated box.
	p := Pipe{X: b.X, Top: b.Y - 500 - PipeHeight, Bottom: b.Y + BirdHeight + 2}
	if !p.Collides(b.Silhouette()) {
		t.Error("diving bird should hit a pipe just below its unrotated box")
	}

	b.Tilt = 0
	if p.Collides(b.Silhouette()) {
		t.Error("level bird should clear the same pipe")
	}
}
