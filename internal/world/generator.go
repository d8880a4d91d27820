package world

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"lcos-worldgen/internal/profiling"
	"lcos-worldgen/internal/terrain"
)

// Generator produces worlds from seeds. It holds only immutable settings, so
// one Generator may run Generate from several goroutines.
type Generator struct {
	conf Config

	noise     terrain.Source
	octaves   terrain.Octaves
	trees     terrain.DecorationSet
	candy     terrain.DecorationSet
	carver    terrain.Carver
	mountains terrain.MountainRange
}

// Generate runs one full pass for seed: ground, anchors, river, mountains,
// trees, candy, minimization. Every call starts from fresh state; any error
// aborts the pass and no partial world is returned.
func (g *Generator) Generate(seed int64) (*World, error) {
	s := g.conf.Settings
	log := g.conf.Log.With("seed", seed)
	rec := profiling.NewRecorder()
	rng := terrain.NewRandom(seed)

	w := &World{Seed: seed, Width: s.Width, Height: s.Height, Spacing: float32(s.Spacing)}
	fail := func(stage string, err error) (*World, error) {
		return nil, fmt.Errorf("world: generate seed %d: %s: %w", seed, stage, err)
	}

	stop := rec.Track("ground")
	field := terrain.Field{
		Source:    g.noise,
		BaseScale: float32(s.BaseNoiseScale),
		Offset:    rng.Int2(0, s.NoiseOffsetRange),
	}
	base, tris, err := terrain.NewHeightField(s.Width, s.Height, float32(s.Spacing), field, g.octaves)
	if err != nil {
		return fail("ground", err)
	}
	ground := base.Clone()
	stop()

	stop = rec.Track("anchors")
	ship := mgl32.Vec2{}
	mansion := rng.Direction().Mul(rng.Float(float32(s.MinTravel), float32(s.MaxTravel)))
	if w.Ship, err = ground.Sample(ship); err != nil {
		return fail("ship", err)
	}
	if w.Mansion, err = ground.Sample(mansion); err != nil {
		return fail("mansion", err)
	}
	stop()

	stop = rec.Track("river")
	if mansion == ship {
		log.Info("world: ship and mansion coincide, river skipped")
	} else if w.RiverSteps, err = g.carver.Carve(ground, ship, mansion, rng); err != nil {
		return fail("river", err)
	}
	stop()

	placements := terrain.Placements{}
	var sink terrain.Sink = &placements
	if g.conf.Sink != nil {
		sink = terrain.SinkFunc(func(p terrain.Placement) {
			placements.Place(p)
			g.conf.Sink.Place(p)
		})
	}
	placer := &terrain.Placer{
		Ground:      ground,
		Base:        base,
		Field:       field,
		WaterOffset: float32(s.WaterOffset),
		Rand:        rng,
		Sink:        sink,
	}

	stop = rec.Track("mountains")
	if _, err := placer.Mountains(ship, mansion, g.mountains); err != nil {
		return fail("mountains", err)
	}
	stop()

	for _, set := range []terrain.DecorationSet{g.trees, g.candy} {
		stop = rec.Track(set.Name)
		attempts, err := placer.Decorations(set)
		if err != nil {
			return fail(set.Name, err)
		}
		stop()
		log.Debug("world: decorations placed", "set", set.Name, "count", set.Count, "attempts", attempts)
	}

	stop = rec.Track("minimize")
	water, err := terrain.Minimize(base, ground, tris, float32(s.WaterOffset))
	if err != nil {
		return fail("minimize", err)
	}
	stop()

	w.Ground = terrain.Mesh{Vertices: ground.Vertices, Triangles: tris}
	w.Water = terrain.Mesh{
		Vertices:  water.Vertices,
		Triangles: water.Triangles,
		Offset:    mgl32.Vec3{0, -float32(s.WaterOffset), 0},
	}
	w.Pruned = len(water.Removed)
	w.Placements = placements
	w.Digest = Fingerprint(w)
	w.ID = NewID(w.Digest)
	w.Timings = rec.Stages()

	log.Debug("world: generated",
		"id", w.ID,
		"river_steps", w.RiverSteps,
		"placements", len(w.Placements),
		"water_vertices", len(w.Water.Vertices),
		"slowest", rec.TopN(3),
	)
	return w, nil
}

// Config returns the configuration the Generator was created with.
func (g *Generator) Config() Config {
	return g.conf
}
