package terrain

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const degenerateEps = 1e-12

// Barycentric returns the weights (wa, wb, wc) of v against triangle abc.
// The weights satisfy v = wa*a + wb*b + wc*c and sum to one.
func Barycentric(a, b, c, v mgl32.Vec2) (mgl32.Vec3, error) {
	vc := v.Sub(c)
	ac := a.Sub(c)

	det := float64((b[1]-c[1])*ac[0] + (c[0]-b[0])*ac[1])
	if math.Abs(det) < degenerateEps {
		return mgl32.Vec3{}, ErrDegenerateTriangle
	}

	wa := float32(float64((b[1]-c[1])*vc[0]+(c[0]-b[0])*vc[1]) / det)
	wb := float32(float64((c[1]-a[1])*vc[0]+(a[0]-c[0])*vc[1]) / det)
	return mgl32.Vec3{wa, wb, 1 - wa - wb}, nil
}

// Interpolate blends three per-vertex points of tri by weights w.
func Interpolate(points []mgl32.Vec3, tri Triangle, w mgl32.Vec3) mgl32.Vec3 {
	return points[tri[0]].Mul(w[0]).
		Add(points[tri[1]].Mul(w[1])).
		Add(points[tri[2]].Mul(w[2]))
}

// InterpolateScalar blends a per-vertex scalar attribute.
func InterpolateScalar(values []float32, tri Triangle, w mgl32.Vec3) float32 {
	return w[0]*values[tri[0]] + w[1]*values[tri[1]] + w[2]*values[tri[2]]
}

// cell maps a world position to its grid cell and picks the half of the quad.
// The half test norm.x + mod(norm.y, 1) > 0.5 is kept exactly as the terrain
// has always been sampled; it is not a diagonal test.
func (l *Layer) cell(xz mgl32.Vec2) (int, int, bool) {
	nx := float64(xz[0]/l.Spacing) + float64(l.Width/2)
	ny := float64(xz[1]/l.Spacing) + float64(l.Height/2)

	left := nx+math.Mod(ny, 1) > 0.5
	return int(math.Floor(nx)), int(math.Floor(ny)), left
}

// Locate returns the grid triangle used to sample xz.
func (l *Layer) Locate(xz mgl32.Vec2) (Triangle, error) {
	minx, miny, left := l.cell(xz)
	maxx, maxy := minx+1, miny+1

	if minx < 0 || miny < 0 || maxx >= l.Width || maxy >= l.Height {
		return Triangle{}, fmt.Errorf("terrain: cell (%d,%d) for %v: %w", minx, miny, xz, ErrOutOfBounds)
	}

	if left {
		return Triangle{l.Index(minx, miny), l.Index(maxx, miny), l.Index(minx, maxy)}, nil
	}
	return Triangle{l.Index(minx, miny), l.Index(maxx, miny), l.Index(maxx, maxy)}, nil
}

// Weights locates xz and solves its barycentric weights against the layer's
// (x, z) vertex projections.
func (l *Layer) Weights(xz mgl32.Vec2) (Triangle, mgl32.Vec3, error) {
	tri, err := l.Locate(xz)
	if err != nil {
		return Triangle{}, mgl32.Vec3{}, err
	}
	w, err := Barycentric(xzOf(l.Vertices[tri[0]]), xzOf(l.Vertices[tri[1]]), xzOf(l.Vertices[tri[2]]), xz)
	if err != nil {
		return Triangle{}, mgl32.Vec3{}, fmt.Errorf("terrain: sample %v: %w", xz, err)
	}
	return tri, w, nil
}

// Sample returns the interpolated surface point of l at xz.
func (l *Layer) Sample(xz mgl32.Vec2) (mgl32.Vec3, error) {
	tri, w, err := l.Weights(xz)
	if err != nil {
		return mgl32.Vec3{}, err
	}
	return Interpolate(l.Vertices, tri, w), nil
}

// SamplePair samples ground and base at the same position with one solve.
// Both layers must share topology.
func SamplePair(ground, base *Layer, xz mgl32.Vec2) (g, b mgl32.Vec3, err error) {
	if len(ground.Vertices) != len(base.Vertices) {
		return g, b, ErrLayerMismatch
	}
	tri, w, err := base.Weights(xz)
	if err != nil {
		return g, b, err
	}
	return Interpolate(ground.Vertices, tri, w), Interpolate(base.Vertices, tri, w), nil
}

func xzOf(v mgl32.Vec3) mgl32.Vec2 {
	return mgl32.Vec2{v[0], v[2]}
}
