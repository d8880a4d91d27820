package terrain

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func noisyLayer(t testing.TB, width, height int, spacing float32) (*Layer, []Triangle) {
	t.Helper()
	field := Field{Source: ValueNoise{Seed: 42}, BaseScale: 1}
	octs := Octaves{{Scale: mgl32.Vec2{0.1, 0.1}, Amplitude: 2}}
	l, tris, err := NewHeightField(width, height, spacing, field, octs)
	if err != nil {
		t.Fatalf("NewHeightField: %v", err)
	}
	return l, tris
}

func TestBarycentricKnownWeights(t *testing.T) {
	w, err := Barycentric(mgl32.Vec2{0, 0}, mgl32.Vec2{1, 0}, mgl32.Vec2{0, 1}, mgl32.Vec2{0.25, 0.25})
	if err != nil {
		t.Fatalf("Barycentric: %v", err)
	}
	want := mgl32.Vec3{0.5, 0.25, 0.25}
	if !w.ApproxEqualThreshold(want, 1e-6) {
		t.Errorf("weights %v, want %v", w, want)
	}
}

func TestBarycentricDegenerate(t *testing.T) {
	_, err := Barycentric(mgl32.Vec2{0, 0}, mgl32.Vec2{1, 1}, mgl32.Vec2{2, 2}, mgl32.Vec2{0.5, 0.5})
	if !errors.Is(err, ErrDegenerateTriangle) {
		t.Errorf("expected ErrDegenerateTriangle, got %v", err)
	}
}

func TestSampleAtVerticesExact(t *testing.T) {
	l, _ := noisyLayer(t, 10, 10, 5)
	for i := 0; i < l.Width-1; i++ {
		for j := 0; j < l.Height-1; j++ {
			got, err := l.Sample(l.WorldPosition(i, j))
			if err != nil {
				t.Fatalf("Sample(%d,%d): %v", i, j, err)
			}
			want := l.Vertices[l.Index(i, j)][1]
			if d := math.Abs(float64(got[1] - want)); d > 1e-4 {
				t.Errorf("vertex (%d,%d) sampled %f, want %f", i, j, got[1], want)
			}
		}
	}
}

func TestWeightsPartitionOfUnity(t *testing.T) {
	l, _ := noisyLayer(t, 16, 16, 3)
	lo := l.WorldPosition(0, 0)
	hi := l.WorldPosition(l.Width-2, l.Height-2)
	rng := rand.New(rand.NewSource(1))

	for n := 0; n < 500; n++ {
		xz := mgl32.Vec2{
			lo[0] + rng.Float32()*(hi[0]-lo[0]),
			lo[1] + rng.Float32()*(hi[1]-lo[1]),
		}
		_, w, err := l.Weights(xz)
		if err != nil {
			t.Fatalf("Weights(%v): %v", xz, err)
		}
		if s := w[0] + w[1] + w[2]; math.Abs(float64(s)-1) > 1e-5 {
			t.Errorf("weights at %v sum to %f", xz, s)
		}
	}
}

func TestSampleReproducesPlane(t *testing.T) {
	l, err := NewLayer(10, 10, 2)
	if err != nil {
		t.Fatalf("NewLayer: %v", err)
	}
	plane := func(x, z float32) float32 { return 0.5*x + 0.25*z + 1 }
	for i := range l.Vertices {
		v := l.Vertices[i]
		l.Vertices[i][1] = plane(v[0], v[2])
	}

	rng := rand.New(rand.NewSource(7))
	for n := 0; n < 200; n++ {
		xz := mgl32.Vec2{-10 + rng.Float32()*17.9, -10 + rng.Float32()*17.9}
		got, err := l.Sample(xz)
		if err != nil {
			t.Fatalf("Sample(%v): %v", xz, err)
		}
		if d := math.Abs(float64(got[1] - plane(xz[0], xz[1]))); d > 1e-3 {
			t.Errorf("plane at %v sampled %f, want %f", xz, got[1], plane(xz[0], xz[1]))
		}
	}
}

func TestLocateHalfSelection(t *testing.T) {
	l, err := NewLayer(4, 4, 1)
	if err != nil {
		t.Fatalf("NewLayer: %v", err)
	}
	cases := []struct {
		xz   mgl32.Vec2
		want Triangle
	}{
		// norm (0.2, 0.1): 0.3 <= 0.5
		{mgl32.Vec2{-1.8, -1.9}, Triangle{0, 4, 5}},
		// norm (1.2, 0.1)
		{mgl32.Vec2{-0.8, -1.9}, Triangle{4, 8, 5}},
		// norm (0.3, 0.4): 0.7 > 0.5
		{mgl32.Vec2{-1.7, -1.6}, Triangle{0, 4, 1}},
	}
	for _, c := range cases {
		got, err := l.Locate(c.xz)
		if err != nil {
			t.Fatalf("Locate(%v): %v", c.xz, err)
		}
		if got != c.want {
			t.Errorf("Locate(%v) = %v, want %v", c.xz, got, c.want)
		}
	}
}

func TestSampleOutOfBounds(t *testing.T) {
	l, _ := noisyLayer(t, 8, 8, 1)
	for _, xz := range []mgl32.Vec2{
		{100, 0},
		{0, -100},
		{-4.5, 0},
		l.WorldPosition(l.Width-1, l.Height-1),
	} {
		if _, err := l.Sample(xz); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Sample(%v): expected ErrOutOfBounds, got %v", xz, err)
		}
	}
}

func TestSamplePair(t *testing.T) {
	base, _ := noisyLayer(t, 8, 8, 1)
	ground := base.Clone()
	for i := range ground.Vertices {
		ground.Vertices[i][1] -= 3
	}

	g, b, err := SamplePair(ground, base, mgl32.Vec2{0.3, -1.2})
	if err != nil {
		t.Fatalf("SamplePair: %v", err)
	}
	if d := math.Abs(float64(b[1] - g[1] - 3)); d > 1e-4 {
		t.Errorf("base %f ground %f, expected difference 3", b[1], g[1])
	}

	small, _ := noisyLayer(t, 4, 4, 1)
	if _, _, err := SamplePair(small, base, mgl32.Vec2{}); !errors.Is(err, ErrLayerMismatch) {
		t.Errorf("expected ErrLayerMismatch, got %v", err)
	}
}

func BenchmarkSample(b *testing.B) {
	l, _ := noisyLayer(b, 128, 128, 2)
	xz := mgl32.Vec2{13.7, -41.2}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = l.Sample(xz)
	}
}
