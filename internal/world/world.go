package world

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"

	"lcos-worldgen/internal/profiling"
	"lcos-worldgen/internal/terrain"
)

// World is the result of one generation pass.
type World struct {
	Seed int64
	// ID is a name-based UUID derived from Digest, so equal worlds share an ID.
	ID     uuid.UUID
	Digest uint64

	// Width and Height are the grid dimensions of Ground.
	Width   int
	Height  int
	Spacing float32

	Ground terrain.Mesh
	// Water is the minimized base layer, drawn lowered by the water offset.
	Water terrain.Mesh

	Ship    mgl32.Vec3
	Mansion mgl32.Vec3

	Placements []terrain.Placement

	RiverSteps int
	// Pruned is the number of base vertices removed by minimization.
	Pruned  int
	Timings []profiling.Stage
}

// Count returns the number of placements of the given kind.
func (w *World) Count(kind string) int {
	n := 0
	for _, p := range w.Placements {
		if p.Kind == kind {
			n++
		}
	}
	return n
}
