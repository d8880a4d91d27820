package terrain

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestFlatGrid(t *testing.T) {
	l, tris, err := NewHeightField(4, 4, 1, Field{Source: ValueNoise{}}, nil)
	if err != nil {
		t.Fatalf("NewHeightField: %v", err)
	}
	if len(l.Vertices) != 16 {
		t.Errorf("expected 16 vertices, got %d", len(l.Vertices))
	}
	if len(tris) != 18 {
		t.Errorf("expected 18 triangles, got %d", len(tris))
	}
	for i, v := range l.Vertices {
		if v.Y() != 0 {
			t.Errorf("vertex %d height %f, want 0", i, v.Y())
		}
	}
}

func TestWorldPositionCentering(t *testing.T) {
	cases := []struct {
		width, height, i, j int
		spacing             float32
		want                mgl32.Vec2
	}{
		{4, 4, 0, 0, 1, mgl32.Vec2{-2, -2}},
		{4, 4, 3, 2, 1, mgl32.Vec2{1, 0}},
		{5, 5, 0, 4, 2, mgl32.Vec2{-4, 4}},
		{10, 10, 5, 5, 5, mgl32.Vec2{0, 0}},
		{3, 7, 1, 0, 0.5, mgl32.Vec2{0, -1.5}},
	}
	for _, c := range cases {
		l, err := NewLayer(c.width, c.height, c.spacing)
		if err != nil {
			t.Fatalf("NewLayer: %v", err)
		}
		if got := l.WorldPosition(c.i, c.j); got != c.want {
			t.Errorf("%dx%d WorldPosition(%d,%d) = %v, want %v", c.width, c.height, c.i, c.j, got, c.want)
		}
	}
}

func TestTriangleWinding(t *testing.T) {
	tris := GridTriangles(3, 3)
	if tris[0] != (Triangle{0, 1, 3}) {
		t.Errorf("first triangle %v, want {0 1 3}", tris[0])
	}
	if tris[1] != (Triangle{4, 3, 1}) {
		t.Errorf("second triangle %v, want {4 3 1}", tris[1])
	}
}

func TestNonSquareIndices(t *testing.T) {
	l, tris, err := NewHeightField(3, 5, 1, Field{Source: ValueNoise{}}, nil)
	if err != nil {
		t.Fatalf("NewHeightField: %v", err)
	}
	if len(tris) != 2*2*4 {
		t.Errorf("expected 16 triangles, got %d", len(tris))
	}
	seen := make(map[mgl32.Vec3]bool)
	for _, v := range l.Vertices {
		if seen[v] {
			t.Fatalf("duplicate vertex position %v", v)
		}
		seen[v] = true
	}
	for _, tri := range tris {
		for _, idx := range tri {
			if idx < 0 || idx >= len(l.Vertices) {
				t.Fatalf("triangle %v index out of range", tri)
			}
		}
	}
}

func TestHeightFieldUsesOctaves(t *testing.T) {
	field := Field{Source: constSource(1), BaseScale: 1}
	l, _, err := NewHeightField(4, 4, 2, field, Octaves{{Amplitude: 3}})
	if err != nil {
		t.Fatalf("NewHeightField: %v", err)
	}
	for _, v := range l.Vertices {
		if v.Y() != 1.5 {
			t.Fatalf("vertex height %f, want 1.5", v.Y())
		}
	}
}

func TestInvalidGrid(t *testing.T) {
	field := Field{Source: ValueNoise{}}
	if _, _, err := NewHeightField(1, 4, 1, field, nil); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("width 1: expected ErrInvalidDimensions, got %v", err)
	}
	if _, _, err := NewHeightField(4, 0, 1, field, nil); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("height 0: expected ErrInvalidDimensions, got %v", err)
	}
	if _, _, err := NewHeightField(4, 4, 0, field, nil); !errors.Is(err, ErrInvalidSpacing) {
		t.Errorf("spacing 0: expected ErrInvalidSpacing, got %v", err)
	}
	if _, _, err := NewHeightField(4, 4, -1, field, nil); !errors.Is(err, ErrInvalidSpacing) {
		t.Errorf("spacing -1: expected ErrInvalidSpacing, got %v", err)
	}
}

func TestCloneIndependent(t *testing.T) {
	l, err := NewLayer(3, 3, 1)
	if err != nil {
		t.Fatalf("NewLayer: %v", err)
	}
	c := l.Clone()
	c.Vertices[4][1] = -7
	if l.Vertices[4][1] != 0 {
		t.Errorf("mutating the clone changed the original")
	}
}

func TestMeshIndices(t *testing.T) {
	m := Mesh{Triangles: []Triangle{{0, 1, 2}, {3, 2, 1}}}
	got := m.Indices()
	want := []uint32{0, 1, 2, 3, 2, 1}
	if len(got) != len(want) {
		t.Fatalf("got %d indices, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d = %d, want %d", i, got[i], want[i])
		}
	}
}

func BenchmarkNewHeightField(b *testing.B) {
	field := Field{Source: ValueNoise{Seed: 1}, BaseScale: 1}
	octs := Octaves{{Scale: mgl32.Vec2{0.1, 0.1}, Amplitude: 2}, {Scale: mgl32.Vec2{0.4, 0.4}, Amplitude: 0.5}}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = NewHeightField(128, 128, 2, field, octs)
	}
}
