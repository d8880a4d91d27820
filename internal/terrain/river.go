package terrain

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// riverNoiseScale is the frequency of the width-modulating noise.
const riverNoiseScale = 0.01

// Carver stamps a river channel into a layer.
type Carver struct {
	// Noise modulates the channel width along the path.
	Noise       Source
	WaterWidth  float32
	WaterDepth  float32
	WaterOffset float32
	// MaxSteps bounds the march. Zero derives a limit from the path length.
	MaxSteps int
}

// Carve walks a noisy path from a to b, lowering l with a divot at every step
// until the cursor is within one world unit of b. It returns the number of
// divots stamped.
func (c Carver) Carve(l *Layer, a, b mgl32.Vec2, rng *Random) (int, error) {
	if !(c.WaterWidth > 0) {
		return 0, fmt.Errorf("terrain: water width %v: %w", c.WaterWidth, ErrInvalidParameter)
	}
	total := b.Sub(a).Len()
	if total == 0 {
		return 0, fmt.Errorf("terrain: river %v -> %v: %w", a, b, ErrCoincidentEndpoints)
	}

	limit := c.MaxSteps
	if limit <= 0 {
		limit = 16*int(math.Ceil(float64(total))) + 1024
	}

	depth := (c.WaterDepth + c.WaterOffset) / c.WaterWidth
	if depth < 0 {
		return 0, fmt.Errorf("terrain: river depth %v: %w", depth, ErrInvalidParameter)
	}
	angle := rng.Float(-1, 1) / 2

	p := a
	dist := total
	steps := 0
	for dist > 1 {
		if steps >= limit {
			return steps, fmt.Errorf("terrain: river still %.1f from target after %d steps: %w", dist, steps, ErrPlacementExhausted)
		}

		adjust := float32(c.Noise.Noise2D(float64(p[0]*riverNoiseScale), float64(p[1]*riverNoiseScale)))
		width := c.WaterWidth * (adjust + 2) / 3
		c.Divot(l, p, width, depth)

		// Bend harder early, straighten on approach.
		angle = clamp(angle+rng.Float(-1, 1)/5, -2, 2)
		bend := dist / total * angle * 45

		dir := b.Sub(p).Normalize()
		p = p.Add(mgl32.Rotate2D(mgl32.DegToRad(bend)).Mul2x1(dir))
		dist = b.Sub(p).Len()
		steps++
	}
	return steps, nil
}

// Divot lowers every vertex within ceil(size/spacing) cells of xz by a
// raised-cosine falloff: full depth at xz, zero at distance size.
func (c Carver) Divot(l *Layer, xz mgl32.Vec2, size, depth float32) {
	if !(size > 0) {
		return
	}
	cx, cy, _ := l.cell(xz)
	reach := int(math.Ceil(float64(size / l.Spacing)))

	for x := max(cx-reach, 0); x < min(cx+reach, l.Width); x++ {
		for y := max(cy-reach, 0); y < min(cy+reach, l.Height); y++ {
			dist := clamp(l.WorldPosition(x, y).Sub(xz).Len(), 0, size)
			fac := (1 + float32(math.Cos(math.Pi*float64(dist/size)))) / 2
			l.Vertices[l.Index(x, y)][1] -= depth * fac
		}
	}
}
