package terrain

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func flatPair(t *testing.T, size int, groundY float32) (*Layer, *Layer) {
	t.Helper()
	base, err := NewLayer(size, size, 1)
	if err != nil {
		t.Fatalf("NewLayer: %v", err)
	}
	ground := base.Clone()
	for i := range ground.Vertices {
		ground.Vertices[i][1] = groundY
	}
	return ground, base
}

func TestMountainsBand(t *testing.T) {
	ground, base := flatPair(t, 64, 0)
	var out Placements
	p := &Placer{Ground: ground, Base: base, Rand: NewRandom(3), Sink: &out}

	n, err := p.Mountains(mgl32.Vec2{0, 0}, mgl32.Vec2{10, 0}, MountainRange{Min: 3, Max: 4, Distance: 5, Range: 2})
	if err != nil {
		t.Fatalf("Mountains: %v", err)
	}
	if n != 3 || len(out) != 3 {
		t.Fatalf("expected 3 mountains, got n=%d placements=%d", n, len(out))
	}
	for _, m := range out {
		if m.Kind != KindMountain || m.Variant != 0 {
			t.Errorf("unexpected placement %+v", m)
		}
		x, y, z := m.Position.Elem()
		if x < 13 || x > 17 || z < -2 || z > 2 {
			t.Errorf("mountain at %v outside the band beyond the mansion", m.Position)
		}
		if y != 0 {
			t.Errorf("mountain not on the flat ground: y=%f", y)
		}
		if m.Rotation != mgl32.QuatIdent() {
			t.Errorf("mountain rotation %v, want identity", m.Rotation)
		}
	}
}

func TestMountainsCoincident(t *testing.T) {
	ground, base := flatPair(t, 16, 0)
	var out Placements
	p := &Placer{Ground: ground, Base: base, Rand: NewRandom(1), Sink: &out}

	if _, err := p.Mountains(mgl32.Vec2{}, mgl32.Vec2{}, MountainRange{Min: 1, Max: 2}); !errors.Is(err, ErrCoincidentEndpoints) {
		t.Errorf("expected ErrCoincidentEndpoints, got %v", err)
	}
	if n, err := p.Mountains(mgl32.Vec2{}, mgl32.Vec2{}, MountainRange{}); err != nil || n != 0 {
		t.Errorf("empty range: n=%d err=%v", n, err)
	}
	if len(out) != 0 {
		t.Errorf("expected no placements, got %d", len(out))
	}
}

func TestDecorationsAvoidWater(t *testing.T) {
	base, _ := noisyLayer(t, 40, 40, 2)
	ground := base.Clone()
	if _, err := testCarver().Carve(ground, mgl32.Vec2{-30, -5}, mgl32.Vec2{30, 5}, NewRandom(4)); err != nil {
		t.Fatalf("Carve: %v", err)
	}

	var out Placements
	p := &Placer{
		Ground:      ground,
		Base:        base,
		Field:       Field{Source: ValueNoise{Seed: 9}, BaseScale: 1},
		WaterOffset: 1,
		Rand:        NewRandom(5),
		Sink:        &out,
	}
	set := DecorationSet{Name: "tree", Variants: []string{"pine", "oak"}, Count: 60}
	if _, err := p.Decorations(set); err != nil {
		t.Fatalf("Decorations: %v", err)
	}
	if len(out) != 60 {
		t.Fatalf("expected 60 placements, got %d", len(out))
	}

	lo := ground.WorldPosition(1, 1)
	hi := ground.WorldPosition(ground.Width-1, ground.Height-1)
	for _, d := range out {
		xz := mgl32.Vec2{d.Position.X(), d.Position.Z()}
		if xz[0] < lo[0]-1e-3 || xz[0] > hi[0] || xz[1] < lo[1]-1e-3 || xz[1] > hi[1] {
			t.Errorf("decoration at %v outside the interior", xz)
		}
		g, b, err := SamplePair(ground, base, xz)
		if err != nil {
			t.Fatalf("SamplePair(%v): %v", xz, err)
		}
		if g[1] <= b[1]-p.WaterOffset-1e-3 {
			t.Errorf("decoration at %v is submerged: ground %f base %f", xz, g[1], b[1])
		}
		if d.Kind != "tree" || d.Variant < 0 || d.Variant >= len(set.Variants) {
			t.Errorf("unexpected placement %+v", d)
		}
	}
}

func TestDecorationsDeterministic(t *testing.T) {
	run := func() Placements {
		ground, base := flatPair(t, 20, 0)
		var out Placements
		p := &Placer{Ground: ground, Base: base, Field: Field{Source: ValueNoise{}, BaseScale: 1}, WaterOffset: 1, Rand: NewRandom(11), Sink: &out}
		if _, err := p.Decorations(DecorationSet{Name: "candy", Variants: []string{"a", "b", "c"}, Count: 25}); err != nil {
			t.Fatalf("Decorations: %v", err)
		}
		return out
	}
	a, b := run(), run()
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("placement %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestDecorationsExhausted(t *testing.T) {
	// Every octave sample is 1, so U(-0.5, 0.5) never exceeds it.
	ground, base := flatPair(t, 16, 0)
	var out Placements
	p := &Placer{Ground: ground, Base: base, Field: Field{Source: constSource(1), BaseScale: 1}, WaterOffset: 1, Rand: NewRandom(1), Sink: &out}

	attempts, err := p.Decorations(DecorationSet{
		Name:        "tree",
		Variants:    []string{"pine"},
		Octaves:     Octaves{{Amplitude: 2}},
		Count:       1,
		MaxAttempts: 500,
	})
	if !errors.Is(err, ErrPlacementExhausted) {
		t.Fatalf("expected ErrPlacementExhausted, got %v", err)
	}
	if attempts != 500 {
		t.Errorf("expected 500 attempts, got %d", attempts)
	}
	if len(out) != 0 {
		t.Errorf("expected no placements, got %d", len(out))
	}
}

func TestDecorationsAllSubmerged(t *testing.T) {
	ground, base := flatPair(t, 16, -5)
	var out Placements
	p := &Placer{Ground: ground, Base: base, Field: Field{Source: ValueNoise{}, BaseScale: 1}, WaterOffset: 1, Rand: NewRandom(1), Sink: &out}

	_, err := p.Decorations(DecorationSet{Name: "tree", Variants: []string{"pine"}, Count: 3, MaxAttempts: 200})
	if !errors.Is(err, ErrPlacementExhausted) {
		t.Fatalf("expected ErrPlacementExhausted, got %v", err)
	}
	if len(out) != 0 {
		t.Errorf("expected no placements in water, got %d", len(out))
	}
}

func TestDecorationsEdgeCases(t *testing.T) {
	ground, base := flatPair(t, 16, 0)
	var out Placements
	p := &Placer{Ground: ground, Base: base, Field: Field{Source: ValueNoise{}}, Rand: NewRandom(1), Sink: &out}

	if n, err := p.Decorations(DecorationSet{Name: "tree", Count: 0}); err != nil || n != 0 {
		t.Errorf("zero count: n=%d err=%v", n, err)
	}
	if _, err := p.Decorations(DecorationSet{Name: "tree", Count: 4}); !errors.Is(err, ErrNoVariants) {
		t.Errorf("expected ErrNoVariants, got %v", err)
	}
}

func TestSinkFunc(t *testing.T) {
	var kinds []string
	sink := SinkFunc(func(p Placement) { kinds = append(kinds, p.Kind) })
	sink.Place(Placement{Kind: "a"})
	sink.Place(Placement{Kind: "b"})
	if len(kinds) != 2 || kinds[0] != "a" || kinds[1] != "b" {
		t.Errorf("SinkFunc recorded %v", kinds)
	}
}
