package terrain

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Triangle is an index triple into a layer's vertex slice.
type Triangle [3]int

// Layer is a Width x Height grid of vertices laid out row-major over the
// first grid dimension. x and z are fixed by grid position; only y varies.
type Layer struct {
	Width    int
	Height   int
	Spacing  float32
	Vertices []mgl32.Vec3
}

// NewLayer creates a flat layer. It fails fast on invalid dimensions.
func NewLayer(width, height int, spacing float32) (*Layer, error) {
	if width < 2 || height < 2 {
		return nil, fmt.Errorf("terrain: %dx%d grid: %w", width, height, ErrInvalidDimensions)
	}
	if !(spacing > 0) {
		return nil, fmt.Errorf("terrain: spacing %v: %w", spacing, ErrInvalidSpacing)
	}

	l := &Layer{
		Width:    width,
		Height:   height,
		Spacing:  spacing,
		Vertices: make([]mgl32.Vec3, width*height),
	}
	for i := 0; i < width; i++ {
		for j := 0; j < height; j++ {
			p := l.WorldPosition(i, j)
			l.Vertices[l.Index(i, j)] = mgl32.Vec3{p[0], 0, p[1]}
		}
	}
	return l, nil
}

// NewHeightField builds a layer whose heights are the octave sum of field at
// every grid position, plus the grid's triangle list.
func NewHeightField(width, height int, spacing float32, field Field, octaves Octaves) (*Layer, []Triangle, error) {
	l, err := NewLayer(width, height, spacing)
	if err != nil {
		return nil, nil, err
	}
	for i := 0; i < width; i++ {
		for j := 0; j < height; j++ {
			pos := l.WorldPosition(i, j)
			l.Vertices[l.Index(i, j)][1] = field.Sample(octaves, pos)
		}
	}
	return l, GridTriangles(width, height), nil
}

// Index returns the flat vertex index of grid cell (i, j).
func (l *Layer) Index(i, j int) int {
	return i*l.Height + j
}

// WorldPosition returns the (x, z) world position of grid cell (i, j).
// The centering term uses integer division.
func (l *Layer) WorldPosition(i, j int) mgl32.Vec2 {
	ceni := i - l.Width/2
	cenj := j - l.Height/2
	return mgl32.Vec2{float32(ceni) * l.Spacing, float32(cenj) * l.Spacing}
}

// Clone returns a deep copy of l.
func (l *Layer) Clone() *Layer {
	c := *l
	c.Vertices = make([]mgl32.Vec3, len(l.Vertices))
	copy(c.Vertices, l.Vertices)
	return &c
}

// GridTriangles emits two triangles per quad cell, skipping the last row and
// column. The winding order is fixed; meshing relies on it for upward normals.
func GridTriangles(width, height int) []Triangle {
	if width < 2 || height < 2 {
		return nil
	}
	stride := height
	tris := make([]Triangle, 0, 2*(width-1)*(height-1))
	for i := 0; i < width-1; i++ {
		for j := 0; j < height-1; j++ {
			idx := i*stride + j
			tris = append(tris,
				Triangle{idx, idx + 1, idx + stride},
				Triangle{idx + stride + 1, idx + stride, idx + 1},
			)
		}
	}
	return tris
}
