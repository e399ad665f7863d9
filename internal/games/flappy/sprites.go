package flappy

import (
	"math"
	"sync"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Sprite sizes in display pixels.
const (
	BirdWidth  = 68
	BirdHeight = 48
	PipeWidth  = 104
	PipeHeight = 640

	birdFrames    = 3
	pipeCapRows   = 40 // Rim at the open end of a pipe
	pipeBodyInset = 4  // Body is narrower than the rim on each side
)

// Silhouette is an occupancy mask placed at a position in the playfield.
type Silhouette struct {
	Mask *core.Mask
	X, Y float64
}

// Rect returns the silhouette's bounding box in whole pixels.
func (s Silhouette) Rect() core.Rect {
	return core.NewRect(core.Round(s.X), core.Round(s.Y), s.Mask.Width(), s.Mask.Height())
}

// Collide reports whether two silhouettes share an opaque pixel.
func Collide(a, b Silhouette) bool {
	if a.Mask == nil || b.Mask == nil {
		return false
	}
	ra, rb := a.Rect(), b.Rect()
	if !ra.Intersects(rb) {
		return false
	}
	return a.Mask.Overlap(b.Mask, rb.X-ra.X, rb.Y-ra.Y)
}

var (
	birdMasks      = buildBirdMasks()
	pipeBottomMask = buildPipeMask()
	pipeTopMask    = pipeBottomMask.FlipVertical()

	rotatedMu    sync.RWMutex
	rotatedBirds = make(map[rotationKey]*core.Mask)
)

type rotationKey struct {
	frame int
	tilt  float64
}

// buildBirdMasks draws the three flap images. The body is an ellipse with
// transparent margins; the wing leaves a notch that moves with the flap.
func buildBirdMasks() [birdFrames]*core.Mask {
	const (
		cx, cy = BirdWidth / 2.0, BirdHeight / 2.0
		rx, ry = 30.0, 20.0
	)
	notchRows := [birdFrames][2]int{{4, 7}, {0, 0}, {41, 44}}

	var masks [birdFrames]*core.Mask
	for f := range masks {
		rows := notchRows[f]
		masks[f] = core.NewMaskFunc(BirdWidth, BirdHeight, func(x, y int) bool {
			dx := (float64(x) + 0.5 - cx) / rx
			dy := (float64(y) + 0.5 - cy) / ry
			if dx*dx+dy*dy > 1 {
				return false
			}
			inWing := x >= 16 && x < 30 && y >= rows[0] && y < rows[1]
			return !inWing
		})
	}
	return masks
}

// buildPipeMask draws a bottom pipe: a full-width rim on top of a narrower body.
func buildPipeMask() *core.Mask {
	return core.NewMaskFunc(PipeWidth, PipeHeight, func(x, y int) bool {
		if y < pipeCapRows {
			return true
		}
		return x >= pipeBodyInset && x < PipeWidth-pipeBodyInset
	})
}

// birdMask returns the flap image for frame rotated by tilt degrees.
// Rotations are cached since tilt only takes a handful of values.
func birdMask(frame int, tilt float64) *core.Mask {
	frame = core.Clamp(frame, 0, birdFrames-1)
	if tilt == 0 {
		return birdMasks[frame]
	}
	key := rotationKey{frame: frame, tilt: math.Round(tilt*100) / 100}

	rotatedMu.RLock()
	m, ok := rotatedBirds[key]
	rotatedMu.RUnlock()
	if ok {
		return m
	}

	m = birdMasks[frame].Rotate(key.tilt)
	rotatedMu.Lock()
	rotatedBirds[key] = m
	rotatedMu.Unlock()
	return m
}
