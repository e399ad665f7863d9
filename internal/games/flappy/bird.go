// Package flappy implements a Flappy Bird simulation: a bird with a fixed
// kinematic model flies through a stream of gapped pipes above a scrolling
// ground. Collisions are tested on pixel masks, not bounding boxes.
package flappy

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// Displacement returns how far the bird moves in the frame that is t frames
// after its last jump, given the velocity v set by that jump. Downward moves
// are capped at the terminal displacement; upward moves get an extra boost.
func Displacement(p config.FlappyPhysics, v float64, t int) float64 {
	ft := float64(t)
	d := v*ft + p.Acceleration*ft*ft
	if d >= p.TerminalDisplacement {
		d = p.TerminalDisplacement
	}
	if d < 0 {
		d -= p.AscentBoost
	}
	return d
}

// Bird is the player-controlled agent. X never changes.
type Bird struct {
	X, Y float64
	Vel  float64 // Velocity set by the last jump (negative = up)
	Tilt float64 // Degrees, positive = nose up

	ticks     int     // Frames since the last jump
	height    float64 // Y at the last jump, reference for diving
	lastMove  float64 // Displacement applied in the last frame
	animCount int
	frame     int // Flap image index

	phys config.FlappyPhysics
	cfg  config.FlappyBird
}

// NewBird creates a bird at the configured start position.
func NewBird(phys config.FlappyPhysics, cfg config.FlappyBird) *Bird {
	return &Bird{
		X:      cfg.StartX,
		Y:      cfg.StartY,
		height: cfg.StartY,
		phys:   phys,
		cfg:    cfg,
	}
}

// Jump gives the bird an upward impulse. It may be called while airborne.
func (b *Bird) Jump() {
	b.Vel = b.phys.JumpVelocity
	b.ticks = 0
	b.height = b.Y
}

// Advance moves the bird by one frame and updates tilt and animation.
func (b *Bird) Advance() {
	b.ticks++
	d := Displacement(b.phys, b.Vel, b.ticks)
	b.Y += d
	b.lastMove = d

	if d < 0 || b.Y < b.height+b.cfg.DiveThreshold {
		if b.Tilt < b.cfg.MaxTilt {
			b.Tilt = b.cfg.MaxTilt
		}
	} else if b.Tilt > b.cfg.MinTilt {
		b.Tilt = math.Max(b.Tilt-b.cfg.TiltRate, b.cfg.MinTilt)
	}

	b.animate()
}

// animate cycles the flap images 0,1,2,1 holding each for AnimationTicks
// frames. A steep dive locks the wings in the middle image and parks the
// counter so the next climb resumes mid-cycle.
func (b *Bird) animate() {
	n := b.cfg.AnimationTicks
	b.animCount++

	switch {
	case b.animCount < n:
		b.frame = 0
	case b.animCount < n*2:
		b.frame = 1
	case b.animCount < n*3:
		b.frame = 2
	case b.animCount < n*4:
		b.frame = 1
	default:
		b.frame = 0
		b.animCount = 0
	}

	if b.Tilt <= b.cfg.WingLockTilt {
		b.frame = 1
		b.animCount = n * 2
	}
}

// Frame returns the current flap image index.
func (b *Bird) Frame() int {
	return b.frame
}

// LastMove returns the displacement applied in the last frame.
func (b *Bird) LastMove() float64 {
	return b.lastMove
}

// Bottom returns the y of the lower edge of the (unrotated) bird image.
func (b *Bird) Bottom() float64 {
	return b.Y + BirdHeight
}

// Silhouette returns the rotated flap image placed so that its center
// matches the center of the unrotated image at (X, Y).
func (b *Bird) Silhouette() Silhouette {
	m := birdMask(b.frame, b.Tilt)
	cx := b.X + BirdWidth/2.0
	cy := b.Y + BirdHeight/2.0
	return Silhouette{
		Mask: m,
		X:    cx - float64(m.Width())/2,
		Y:    cy - float64(m.Height())/2,
	}
}
