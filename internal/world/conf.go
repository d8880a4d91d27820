package world

import (
	"fmt"
	"log/slog"

	"lcos-worldgen/internal/config"
	"lcos-worldgen/internal/terrain"
)

// Config contains options for creating a Generator.
type Config struct {
	// Log is the Logger to use for logging information. If nil, Log is set to
	// slog.Default(). Stage timings are only logged at debug level.
	Log *slog.Logger
	// Settings holds every generation input except the seed.
	Settings config.WorldGen
	// Sink, if non-nil, receives every placement as it is emitted, in
	// addition to World.Placements. It must be safe for concurrent use when
	// the Generator is shared by a Pool.
	Sink terrain.Sink
}

// New validates conf and creates a Generator from it.
func (conf Config) New() (*Generator, error) {
	if conf.Log == nil {
		conf.Log = slog.Default()
	}
	s := conf.Settings
	if err := s.Validate(); err != nil {
		return nil, err
	}
	noise, err := terrain.NewSource(s.Noise, s.NoiseSeed)
	if err != nil {
		return nil, fmt.Errorf("world: %w", err)
	}
	maxAttempts := s.MaxPlacementAttempts
	if maxAttempts == 0 {
		maxAttempts = terrain.DefaultMaxAttempts
	}

	return &Generator{
		conf:    conf,
		noise:   noise,
		octaves: octaves(s.Octaves),
		trees:   decorationSet(s.Trees, maxAttempts),
		candy:   decorationSet(s.Candy, maxAttempts),
		carver: terrain.Carver{
			Noise:       noise,
			WaterWidth:  float32(s.WaterWidth),
			WaterDepth:  float32(s.WaterDepth),
			WaterOffset: float32(s.WaterOffset),
			MaxSteps:    s.RiverMaxSteps,
		},
		mountains: terrain.MountainRange{
			Min:      s.Mountains.Min,
			Max:      s.Mountains.Max,
			Distance: float32(s.Mountains.Distance),
			Range:    float32(s.Mountains.Range),
		},
	}, nil
}

func octaves(in []config.Octave) terrain.Octaves {
	out := make(terrain.Octaves, 0, len(in))
	for _, o := range in {
		out = append(out, terrain.Octave{
			Scale:     [2]float32{float32(o.ScaleX), float32(o.ScaleY)},
			Offset:    [2]float32{float32(o.OffsetX), float32(o.OffsetY)},
			Amplitude: float32(o.Amplitude),
		})
	}
	return out
}

func decorationSet(d config.Decoration, maxAttempts int) terrain.DecorationSet {
	return terrain.DecorationSet{
		Name:        d.Name,
		Variants:    append([]string(nil), d.Variants...),
		Octaves:     octaves(d.Octaves),
		Count:       d.Count,
		MaxAttempts: maxAttempts,
	}
}
