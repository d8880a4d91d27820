package terrain

import (
	"encoding/binary"
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"
)

// Random is the single seeded stream threaded through a generation pass.
// Every stochastic stage draws from it in a fixed order, so reordering calls
// changes everything downstream for a given seed.
type Random struct {
	r *rand.Rand
}

// NewRandom expands seed into a ChaCha8 key.
func NewRandom(seed int64) *Random {
	var key [32]byte
	s := uint64(seed)
	for i := 0; i < 4; i++ {
		s += 0x9E3779B97F4A7C15
		z := s
		z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
		z = (z ^ (z >> 27)) * 0x94D049BB133111EB
		z ^= z >> 31
		binary.LittleEndian.PutUint64(key[i*8:], z)
	}
	return &Random{r: rand.New(rand.NewChaCha8(key))}
}

// Float returns a value in [min, max).
func (r *Random) Float(min, max float32) float32 {
	return min + r.r.Float32()*(max-min)
}

// Int returns a value in [min, max). It returns min when the range is empty.
func (r *Random) Int(min, max int) int {
	if max <= min {
		return min
	}
	return min + r.r.IntN(max-min)
}

// IntN returns a value in [0, n), or 0 for n <= 0.
func (r *Random) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Int2 draws two independent integers in [min, max).
func (r *Random) Int2(min, max int) [2]int {
	x := r.Int(min, max)
	y := r.Int(min, max)
	return [2]int{x, y}
}

// Float2 draws a point in the axis-aligned box [min, max).
func (r *Random) Float2(min, max mgl32.Vec2) mgl32.Vec2 {
	x := r.Float(min[0], max[0])
	y := r.Float(min[1], max[1])
	return mgl32.Vec2{x, y}
}

// Direction returns a uniformly distributed unit vector.
func (r *Random) Direction() mgl32.Vec2 {
	a := float64(r.Float(0, 2*math.Pi))
	return mgl32.Vec2{float32(math.Cos(a)), float32(math.Sin(a))}
}
