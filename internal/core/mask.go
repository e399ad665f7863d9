package core

import "math"

// Mask is a binary occupancy grid describing the opaque pixels of a sprite.
// Pixel (0, 0) is the top-left corner of the sprite's bounding image.
type Mask struct {
	w, h int
	bits []bool
}

// NewMask creates an empty mask of the given size.
func NewMask(w, h int) *Mask {
	w = Max(w, 0)
	h = Max(h, 0)
	return &Mask{w: w, h: h, bits: make([]bool, w*h)}
}

// NewMaskFunc creates a mask whose pixel (x, y) is set when fn returns true.
func NewMaskFunc(w, h int, fn func(x, y int) bool) *Mask {
	m := NewMask(w, h)
	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			m.bits[y*m.w+x] = fn(x, y)
		}
	}
	return m
}

// Width returns the mask width in pixels.
func (m *Mask) Width() int { return m.w }

// Height returns the mask height in pixels.
func (m *Mask) Height() int { return m.h }

// Bounds returns the mask rectangle anchored at the origin.
func (m *Mask) Bounds() Rect { return NewRect(0, 0, m.w, m.h) }

// Set marks or clears a pixel. Out-of-bounds coordinates are ignored.
func (m *Mask) Set(x, y int, v bool) {
	if x < 0 || x >= m.w || y < 0 || y >= m.h {
		return
	}
	m.bits[y*m.w+x] = v
}

// At reports whether the pixel is occupied. Out of bounds is empty.
func (m *Mask) At(x, y int) bool {
	if x < 0 || x >= m.w || y < 0 || y >= m.h {
		return false
	}
	return m.bits[y*m.w+x]
}

// Count returns the number of occupied pixels.
func (m *Mask) Count() int {
	n := 0
	for _, b := range m.bits {
		if b {
			n++
		}
	}
	return n
}

// Overlap reports whether any occupied pixel of other, placed with its
// origin at (dx, dy) relative to this mask's origin, coincides with an
// occupied pixel of this mask. Only the intersection of the two bounding
// boxes is scanned.
func (m *Mask) Overlap(other *Mask, dx, dy int) bool {
	if m == nil || other == nil {
		return false
	}
	area := m.Bounds().Intersect(NewRect(dx, dy, other.w, other.h))
	if area.Empty() {
		return false
	}
	for y := area.Y; y < area.Bottom(); y++ {
		row := y * m.w
		orow := (y - dy) * other.w
		for x := area.X; x < area.Right(); x++ {
			if m.bits[row+x] && other.bits[orow+x-dx] {
				return true
			}
		}
	}
	return false
}

// FlipVertical returns a copy mirrored top to bottom.
func (m *Mask) FlipVertical() *Mask {
	out := NewMask(m.w, m.h)
	for y := 0; y < m.h; y++ {
		copy(out.bits[(m.h-1-y)*m.w:(m.h-y)*m.w], m.bits[y*m.w:(y+1)*m.w])
	}
	return out
}

// Rotate returns the mask rotated counter-clockwise (as seen on screen,
// y pointing down) by deg degrees about its center. The result grows to
// hold the whole rotated image, like an image rotation would; its center
// coincides with the source center. Sampling is nearest-neighbour.
func (m *Mask) Rotate(deg float64) *Mask {
	if deg == 0 || m.w == 0 || m.h == 0 {
		return m.clone()
	}

	rad := deg * math.Pi / 180
	sin, cos := math.Sin(rad), math.Cos(rad)

	fw, fh := float64(m.w), float64(m.h)
	nw := int(math.Ceil(math.Abs(fw*cos) + math.Abs(fh*sin) - 1e-9))
	nh := int(math.Ceil(math.Abs(fw*sin) + math.Abs(fh*cos) - 1e-9))
	out := NewMask(nw, nh)

	scx, scy := fw/2, fh/2
	dcx, dcy := float64(nw)/2, float64(nh)/2
	for y := 0; y < nh; y++ {
		ny := float64(y) + 0.5 - dcy
		for x := 0; x < nw; x++ {
			nx := float64(x) + 0.5 - dcx
			// inverse of the screen-space counter-clockwise rotation
			sx := cos*nx - sin*ny + scx
			sy := sin*nx + cos*ny + scy
			if sx < 0 || sy < 0 {
				continue
			}
			if m.At(int(sx), int(sy)) {
				out.bits[y*nw+x] = true
			}
		}
	}
	return out
}

func (m *Mask) clone() *Mask {
	out := NewMask(m.w, m.h)
	copy(out.bits, m.bits)
	return out
}
