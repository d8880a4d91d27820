package meshing

import (
	"github.com/go-gl/mathgl/mgl32"

	"lcos-worldgen/internal/terrain"
)

// VertexStride is number of float32 per vertex (pos.xyz + normal.xyz)
const VertexStride = 6

// Normals returns one smooth normal per vertex: the normalized sum of the
// face normals of every triangle touching it, weighted by triangle area.
// Vertices not referenced by any triangle get +Y.
func Normals(vertices []mgl32.Vec3, tris []terrain.Triangle) []mgl32.Vec3 {
	normals := make([]mgl32.Vec3, len(vertices))
	for _, t := range tris {
		p0, p1, p2 := vertices[t[0]], vertices[t[1]], vertices[t[2]]
		// Unnormalized cross product carries twice the area.
		n := p1.Sub(p0).Cross(p2.Sub(p0))
		normals[t[0]] = normals[t[0]].Add(n)
		normals[t[1]] = normals[t[1]].Add(n)
		normals[t[2]] = normals[t[2]].Add(n)
	}
	for i, n := range normals {
		if n.Len() == 0 {
			normals[i] = mgl32.Vec3{0, 1, 0}
			continue
		}
		normals[i] = n.Normalize()
	}
	return normals
}

// Interleave builds an indexed vertex stream (pos+normal interleaved) for m.
// Positions are translated by m.Offset.
func Interleave(m terrain.Mesh) ([]float32, []uint32) {
	normals := Normals(m.Vertices, m.Triangles)
	out := make([]float32, 0, len(m.Vertices)*VertexStride)
	for i, v := range m.Vertices {
		p := v.Add(m.Offset)
		n := normals[i]
		out = append(out, p[0], p[1], p[2], n[0], n[1], n[2])
	}
	return out, m.Indices()
}

// Flatten builds a non-indexed triangle list (pos+normal interleaved) with
// one flat normal per face, for glDrawArrays.
func Flatten(m terrain.Mesh) []float32 {
	out := make([]float32, 0, len(m.Triangles)*3*VertexStride)
	for _, t := range m.Triangles {
		p0 := m.Vertices[t[0]].Add(m.Offset)
		p1 := m.Vertices[t[1]].Add(m.Offset)
		p2 := m.Vertices[t[2]].Add(m.Offset)
		n := p1.Sub(p0).Cross(p2.Sub(p0))
		if n.Len() > 0 {
			n = n.Normalize()
		}
		for _, p := range [3]mgl32.Vec3{p0, p1, p2} {
			out = append(out, p[0], p[1], p[2], n[0], n[1], n[2])
		}
	}
	return out
}

// Bounds returns the axis-aligned bounding box of m including its offset.
func Bounds(m terrain.Mesh) (min, max mgl32.Vec3) {
	if len(m.Vertices) == 0 {
		return m.Offset, m.Offset
	}
	min, max = m.Vertices[0], m.Vertices[0]
	for _, v := range m.Vertices[1:] {
		for a := 0; a < 3; a++ {
			if v[a] < min[a] {
				min[a] = v[a]
			}
			if v[a] > max[a] {
				max[a] = v[a]
			}
		}
	}
	return min.Add(m.Offset), max.Add(m.Offset)
}
