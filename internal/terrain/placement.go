package terrain

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// KindMountain is the placement kind emitted by Placer.Mountains.
const KindMountain = "mountain"

// DefaultMaxAttempts bounds a decoration set when it does not set its own limit.
const DefaultMaxAttempts = 1_000_000

// Placement asks an external collaborator to instantiate an object.
type Placement struct {
	// Kind is "mountain" or the name of the decoration set.
	Kind string
	// Variant indexes the set's variant list; always 0 for mountains.
	Variant  int
	Position mgl32.Vec3
	// Rotation is applied on top of the object's authored rotation.
	Rotation mgl32.Quat
}

// Sink receives placements in emission order.
type Sink interface {
	Place(p Placement)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(p Placement)

// Place implements Sink.
func (f SinkFunc) Place(p Placement) { f(p) }

// Placements collects placements in order.
type Placements []Placement

// Place implements Sink.
func (ps *Placements) Place(p Placement) { *ps = append(*ps, p) }

// MountainRange places mountains in a band beyond the mansion, along the ship-to-mansion axis.
type MountainRange struct {
	Min, Max int
	Distance float32
	Range    float32
}

// DecorationSet describes one rejection-sampled scatter (trees, candy, ...).
type DecorationSet struct {
	Name     string
	Variants []string
	Octaves  Octaves
	Count    int
	// MaxAttempts bounds the sampling loop; zero means DefaultMaxAttempts.
	MaxAttempts int
}

// Placer performs deterministic-random feature placement over a pair of layers.
type Placer struct {
	Ground      *Layer
	Base        *Layer
	Field       Field
	WaterOffset float32
	Rand        *Random
	Sink        Sink
}

// Mountains draws a count in [r.Min, r.Max) and places each mountain at
// mansion + fwd*(Distance + U(-Range,Range)) + per*U(-Range,Range), snapped to
// the ground surface.
func (p *Placer) Mountains(ship, mansion mgl32.Vec2, r MountainRange) (int, error) {
	axis := mansion.Sub(ship)
	count := p.Rand.Int(r.Min, r.Max)
	if count == 0 {
		return 0, nil
	}
	if axis.Len() == 0 {
		return 0, fmt.Errorf("terrain: mountain axis %v -> %v: %w", ship, mansion, ErrCoincidentEndpoints)
	}

	fwd := axis.Normalize()
	per := mgl32.Vec2{-fwd[1], fwd[0]}

	for i := 0; i < count; i++ {
		along := r.Distance + p.Rand.Float(-r.Range, r.Range)
		across := p.Rand.Float(-r.Range, r.Range)
		pos := mansion.Add(fwd.Mul(along)).Add(per.Mul(across))

		ground, err := p.Ground.Sample(pos)
		if err != nil {
			return i, fmt.Errorf("terrain: mountain %d: %w", i, err)
		}
		p.Sink.Place(Placement{
			Kind:     KindMountain,
			Position: ground,
			Rotation: mgl32.QuatIdent(),
		})
	}
	return count, nil
}

// Decorations scatters set.Count objects over the grid interior. Candidates in
// the river (ground at or below base - WaterOffset) are rejected outright; the
// rest are accepted when U(-0.5, 0.5) exceeds the set's octave sample. It
// returns the number of candidates drawn.
func (p *Placer) Decorations(set DecorationSet) (int, error) {
	if set.Count <= 0 {
		return 0, nil
	}
	if len(set.Variants) == 0 {
		return 0, fmt.Errorf("terrain: decoration set %q: %w", set.Name, ErrNoVariants)
	}

	limit := set.MaxAttempts
	if limit <= 0 {
		limit = DefaultMaxAttempts
	}

	lo := p.Ground.WorldPosition(1, 1)
	hi := p.Ground.WorldPosition(p.Ground.Width-1, p.Ground.Height-1)

	placed, attempts := 0, 0
	for placed < set.Count {
		if attempts >= limit {
			return attempts, fmt.Errorf("terrain: decoration set %q placed %d of %d in %d attempts: %w",
				set.Name, placed, set.Count, attempts, ErrPlacementExhausted)
		}
		attempts++

		pos := p.Rand.Float2(lo, hi)
		ground, base, err := SamplePair(p.Ground, p.Base, pos)
		if errors.Is(err, ErrOutOfBounds) {
			continue
		}
		if err != nil {
			return attempts, fmt.Errorf("terrain: decoration set %q: %w", set.Name, err)
		}

		if ground[1] <= base[1]-p.WaterOffset {
			continue
		}

		if p.Rand.Float(-0.5, 0.5) > p.Field.Sample(set.Octaves, pos) {
			variant := p.Rand.IntN(len(set.Variants))
			p.Sink.Place(Placement{
				Kind:     set.Name,
				Variant:  variant,
				Position: ground,
				Rotation: mgl32.QuatIdent(),
			})
			placed++
		}
	}
	return attempts, nil
}
