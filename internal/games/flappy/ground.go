package flappy

import "math"

// Ground is two equal segments scrolling left. A segment that leaves the
// playfield is moved right behind the other one.
type Ground struct {
	Y      float64
	X1, X2 float64
	Width  float64
}

// NewGround creates ground at height y made of segments of the given width.
func NewGround(y, width float64) *Ground {
	return &Ground{
		Y:     y,
		X1:    0,
		X2:    width,
		Width: width,
	}
}

// Advance scrolls both segments by velocity.
func (g *Ground) Advance(velocity float64) {
	g.X1 -= velocity
	g.X2 -= velocity

	if g.X1+g.Width < 0 {
		g.X1 = g.X2 + g.Width
	}
	if g.X2+g.Width < 0 {
		g.X2 = g.X1 + g.Width
	}
}

// Covers reports whether the segments together cover [from, to] without a hole.
func (g *Ground) Covers(from, to float64) bool {
	lo, hi := math.Min(g.X1, g.X2), math.Max(g.X1, g.X2)
	if lo <= from && lo+g.Width >= to {
		return true
	}
	if hi <= from && hi+g.Width >= to {
		return true
	}
	return lo <= from && hi <= lo+g.Width && hi+g.Width >= to
}
