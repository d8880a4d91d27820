package worldfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"

	"lcos-worldgen/internal/terrain"
	"lcos-worldgen/internal/world"
)

type Loader struct {
	dir   string
	cache map[string]*File
}

func NewLoader(dir string) *Loader {
	return &Loader{
		dir:   dir,
		cache: make(map[string]*File),
	}
}

// LoadWorld reads <dir>/<name>.json, caching the decoded file by name.
func (l *Loader) LoadWorld(name string) (*File, error) {
	if f, ok := l.cache[name]; ok {
		return f, nil
	}
	f, err := Read(filepath.Join(l.dir, name+".json"))
	if err != nil {
		return nil, err
	}
	l.cache[name] = f
	return f, nil
}

// Read decodes a world file.
func Read(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read world file: %w", err)
	}
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("could not unmarshal world json: %w", err)
	}
	if f.Version != Version {
		return nil, fmt.Errorf("world file version %d, want %d", f.Version, Version)
	}
	if err := f.Water.check(); err != nil {
		return nil, fmt.Errorf("water mesh: %w", err)
	}
	if err := f.Ground.check(); err != nil {
		return nil, fmt.Errorf("ground mesh: %w", err)
	}
	return &f, nil
}

// Write encodes f to path, creating parent directories as needed.
func Write(path string, f *File) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("could not create world directory: %w", err)
		}
	}
	data, err := json.Marshal(f)
	if err != nil {
		return fmt.Errorf("could not marshal world json: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("could not write world file: %w", err)
	}
	return nil
}

// FromWorld converts a generated world into its file form.
func FromWorld(w *world.World) *File {
	f := &File{
		Version:    Version,
		ID:         w.ID.String(),
		Seed:       w.Seed,
		Digest:     strconv.FormatUint(w.Digest, 16),
		Width:      w.Width,
		Height:     w.Height,
		Spacing:    w.Spacing,
		Ship:       w.Ship,
		Mansion:    w.Mansion,
		Ground:     fromMesh(w.Ground),
		Water:      fromMesh(w.Water),
		Placements: make([]Placement, 0, len(w.Placements)),
	}
	for _, p := range w.Placements {
		f.Placements = append(f.Placements, Placement{
			Kind:     p.Kind,
			Variant:  p.Variant,
			Position: p.Position,
			Rotation: [4]float32{p.Rotation.W, p.Rotation.V[0], p.Rotation.V[1], p.Rotation.V[2]},
		})
	}
	return f
}

// World rebuilds the generated world a file was written from. Timings and
// river bookkeeping are not stored and stay zero.
func (f *File) World() (*world.World, error) {
	id, err := uuid.Parse(f.ID)
	if err != nil {
		return nil, fmt.Errorf("world id %q: %w", f.ID, err)
	}
	digest, err := strconv.ParseUint(f.Digest, 16, 64)
	if err != nil {
		return nil, fmt.Errorf("world digest %q: %w", f.Digest, err)
	}
	return &world.World{
		Seed:       f.Seed,
		ID:         id,
		Digest:     digest,
		Width:      f.Width,
		Height:     f.Height,
		Spacing:    f.Spacing,
		Ground:     f.Ground.Mesh(),
		Water:      f.Water.Mesh(),
		Ship:       f.Ship,
		Mansion:    f.Mansion,
		Placements: f.TerrainPlacements(),
	}, nil
}

// Mesh converts a file mesh back into a terrain mesh.
func (m Mesh) Mesh() terrain.Mesh {
	out := terrain.Mesh{
		Vertices:  make([]mgl32.Vec3, len(m.Vertices)),
		Triangles: make([]terrain.Triangle, len(m.Triangles)),
		Offset:    m.Offset,
	}
	for i, v := range m.Vertices {
		out.Vertices[i] = v
	}
	for i, t := range m.Triangles {
		out.Triangles[i] = t
	}
	return out
}

// TerrainPlacements converts the placement list back into terrain placements.
func (f *File) TerrainPlacements() []terrain.Placement {
	out := make([]terrain.Placement, 0, len(f.Placements))
	for _, p := range f.Placements {
		out = append(out, terrain.Placement{
			Kind:     p.Kind,
			Variant:  p.Variant,
			Position: p.Position,
			Rotation: mgl32.Quat{W: p.Rotation[0], V: mgl32.Vec3{p.Rotation[1], p.Rotation[2], p.Rotation[3]}},
		})
	}
	return out
}

func fromMesh(m terrain.Mesh) Mesh {
	out := Mesh{
		Vertices:  make([][3]float32, len(m.Vertices)),
		Triangles: make([][3]int, len(m.Triangles)),
		Offset:    m.Offset,
	}
	for i, v := range m.Vertices {
		out.Vertices[i] = v
	}
	for i, t := range m.Triangles {
		out.Triangles[i] = t
	}
	return out
}

func (m Mesh) check() error {
	for i, t := range m.Triangles {
		for _, idx := range t {
			if idx < 0 || idx >= len(m.Vertices) {
				return fmt.Errorf("triangle %d references vertex %d of %d", i, idx, len(m.Vertices))
			}
		}
	}
	return nil
}
