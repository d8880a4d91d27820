package terrain

import (
	"fmt"
	"sort"

	"github.com/brentp/intintmap"
	"github.com/go-gl/mathgl/mgl32"
)

// Mesh is a vertex buffer with triangle index triples, ready for a renderer.
type Mesh struct {
	Vertices  []mgl32.Vec3
	Triangles []Triangle
	// Offset is the translation the renderer applies to the whole mesh.
	Offset mgl32.Vec3
}

// Indices flattens the triangle list into a single index buffer.
func (m Mesh) Indices() []uint32 {
	out := make([]uint32, 0, len(m.Triangles)*3)
	for _, t := range m.Triangles {
		out = append(out, uint32(t[0]), uint32(t[1]), uint32(t[2]))
	}
	return out
}

// Minimized is the base layer after pruning.
type Minimized struct {
	Vertices  []mgl32.Vec3
	Triangles []Triangle
	// Removed lists the dropped original indices in ascending order.
	Removed []int
}

// Minimize prunes base-layer vertices far from any submerged ground.
//
// A vertex is valid when base.y - waterOffset >= ground.y. An invalid vertex
// with no valid vertex among its 8 grid neighbours is removed; shoreline
// vertices survive so the water mesh still meets the exposed ground. Surviving
// vertices keep their relative order, triangles touching a removed vertex are
// dropped and the rest are re-indexed by subtracting the number of removed
// indices below each index.
func Minimize(base, ground *Layer, tris []Triangle, waterOffset float32) (Minimized, error) {
	n := len(base.Vertices)
	if len(ground.Vertices) != n || base.Width*base.Height != n {
		return Minimized{}, fmt.Errorf("terrain: minimize %d base vs %d ground vertices: %w", n, len(ground.Vertices), ErrLayerMismatch)
	}

	valid := func(i, j int) bool {
		if i < 0 || j < 0 || i >= base.Width || j >= base.Height {
			return false
		}
		idx := base.Index(i, j)
		return base.Vertices[idx][1]-waterOffset >= ground.Vertices[idx][1]
	}

	removedSet := intintmap.New(n/4+1, 0.6)
	removed := make([]int, 0, n/4)

	for i := 0; i < base.Width; i++ {
		for j := 0; j < base.Height; j++ {
			if valid(i, j) || hasValidNeighbour(i, j, valid) {
				continue
			}
			idx := base.Index(i, j)
			removedSet.Put(int64(idx), 1)
			removed = append(removed, idx)
		}
	}
	// Index is row-major, so the scan above already yields ascending order.
	isRemoved := func(idx int) bool {
		_, ok := removedSet.Get(int64(idx))
		return ok
	}

	vertices := make([]mgl32.Vec3, 0, n-len(removed))
	for i, v := range base.Vertices {
		if isRemoved(i) {
			continue
		}
		vertices = append(vertices, v)
	}

	adjust := func(idx int) int {
		return idx - sort.SearchInts(removed, idx)
	}

	out := make([]Triangle, 0, len(tris))
	for _, t := range tris {
		if isRemoved(t[0]) || isRemoved(t[1]) || isRemoved(t[2]) {
			continue
		}
		out = append(out, Triangle{adjust(t[0]), adjust(t[1]), adjust(t[2])})
	}

	return Minimized{Vertices: vertices, Triangles: out, Removed: removed}, nil
}

func hasValidNeighbour(i, j int, valid func(i, j int) bool) bool {
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if valid(i+dx, j+dy) {
				return true
			}
		}
	}
	return false
}
