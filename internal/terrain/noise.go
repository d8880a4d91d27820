package terrain

import (
	"fmt"
	"math"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// Noise backends selectable by name.
const (
	NoiseValue   = "value"
	NoisePerlin  = "perlin"
	NoiseSimplex = "simplex"
)

// Source is a 2D coherent noise function with output in [0,1].
// Implementations must be deterministic and safe for concurrent reads.
type Source interface {
	Noise2D(x, y float64) float64
}

// NewSource returns the noise backend registered under kind.
func NewSource(kind string, seed int64) (Source, error) {
	switch kind {
	case "", NoiseValue:
		return ValueNoise{Seed: seed}, nil
	case NoisePerlin:
		return NewPerlinNoise(seed), nil
	case NoiseSimplex:
		return NewSimplexNoise(seed), nil
	default:
		return nil, fmt.Errorf("terrain: unknown noise kind %q: %w", kind, ErrInvalidParameter)
	}
}

// ValueNoise is smooth value noise over an integer-hashed lattice.
type ValueNoise struct {
	Seed int64
}

// Noise2D implements Source.
func (n ValueNoise) Noise2D(x, y float64) float64 {
	x0 := math.Floor(x)
	y0 := math.Floor(y)

	fx := fade(x - x0)
	fy := fade(y - y0)

	ix, iy := int64(x0), int64(y0)
	v00 := latticeValue(ix, iy, n.Seed)
	v10 := latticeValue(ix+1, iy, n.Seed)
	v01 := latticeValue(ix, iy+1, n.Seed)
	v11 := latticeValue(ix+1, iy+1, n.Seed)

	i0 := lerp(v00, v10, fx)
	i1 := lerp(v01, v11, fx)
	return lerp(i0, i1, fy)
}

// hash2 is a SplitMix64-style integer hash, stable across runs for the same inputs.
func hash2(x, y, seed int64) uint64 {
	v := uint64(x)*0x9E3779B97F4A7C15 + uint64(y)*0x517CC1B727220A95 + uint64(seed)
	v += 0x9E3779B97F4A7C15
	v = (v ^ (v >> 30)) * 0xBF58476D1CE4E5B9
	v = (v ^ (v >> 27)) * 0x94D049BB133111EB
	return v ^ (v >> 31)
}

func latticeValue(x, y, seed int64) float64 {
	h := hash2(x, y, seed)
	return float64(h&0xFFFFFFFF) / float64(0xFFFFFFFF)
}

// PerlinNoise adapts aquilax/go-perlin (output roughly [-1,1]) to [0,1].
type PerlinNoise struct {
	p *perlin.Perlin
}

// NewPerlinNoise creates a three-octave Perlin source.
func NewPerlinNoise(seed int64) *PerlinNoise {
	return &PerlinNoise{p: perlin.NewPerlin(2, 2, 3, seed)}
}

// Noise2D implements Source.
func (n *PerlinNoise) Noise2D(x, y float64) float64 {
	return clamp((n.p.Noise2D(x, y)+1)/2, 0, 1)
}

// SimplexNoise wraps the normalized OpenSimplex generator.
type SimplexNoise struct {
	n opensimplex.Noise
}

func NewSimplexNoise(seed int64) *SimplexNoise {
	return &SimplexNoise{n: opensimplex.NewNormalized(seed)}
}

// Noise2D implements Source.
func (n *SimplexNoise) Noise2D(x, y float64) float64 {
	return clamp(n.n.Eval2(x, y), 0, 1)
}
