package config

import (
	"fmt"

	"lcos-worldgen/internal/terrain"
)

// Octave is one noise layer as written in a config file.
type Octave struct {
	ScaleX    float64 `toml:"scale_x"`
	ScaleY    float64 `toml:"scale_y"`
	OffsetX   float64 `toml:"offset_x"`
	OffsetY   float64 `toml:"offset_y"`
	Amplitude float64 `toml:"amplitude"`
}

// Mountains holds the mountain range parameters.
type Mountains struct {
	Min      int     `toml:"min"`
	Max      int     `toml:"max"`
	Distance float64 `toml:"distance"`
	Range    float64 `toml:"range"`
}

// Decoration holds one scatter set (trees, candy).
type Decoration struct {
	Name     string   `toml:"name"`
	Variants []string `toml:"variants"`
	Count    int      `toml:"count"`
	Octaves  []Octave `toml:"octaves"`
}

// WorldGen holds every world generation input except the seed.
type WorldGen struct {
	Width          int     `toml:"width"`
	Height         int     `toml:"height"`
	Spacing        float64 `toml:"spacing"`
	BaseNoiseScale float64 `toml:"base_noise_scale"`

	Noise     string `toml:"noise"`
	NoiseSeed int64  `toml:"noise_seed"`
	// NoiseOffsetRange bounds the per-world integer noise offset.
	NoiseOffsetRange int      `toml:"noise_offset_range"`
	Octaves          []Octave `toml:"octaves"`

	MinTravel float64 `toml:"min_travel"`
	MaxTravel float64 `toml:"max_travel"`

	WaterOffset   float64 `toml:"water_offset"`
	WaterDepth    float64 `toml:"water_depth"`
	WaterWidth    float64 `toml:"water_width"`
	RiverMaxSteps int     `toml:"river_max_steps"`

	Mountains Mountains  `toml:"mountains"`
	Trees     Decoration `toml:"trees"`
	Candy     Decoration `toml:"candy"`

	MaxPlacementAttempts int `toml:"max_placement_attempts"`
}

// DefaultWorldGen returns a 128x128 island-sized world.
func DefaultWorldGen() WorldGen {
	return WorldGen{
		Width:          128,
		Height:         128,
		Spacing:        2,
		BaseNoiseScale: 0.05,

		Noise:            terrain.NoiseValue,
		NoiseOffsetRange: 10000,
		Octaves: []Octave{
			{ScaleX: 0.2, ScaleY: 0.2, Amplitude: 12},
			{ScaleX: 0.6, ScaleY: 0.6, Amplitude: 4},
			{ScaleX: 1.5, ScaleY: 1.5, Amplitude: 1},
		},

		MinTravel: 50,
		MaxTravel: 80,

		WaterOffset: 1,
		WaterDepth:  3,
		WaterWidth:  10,

		Mountains: Mountains{Min: 3, Max: 7, Distance: 20, Range: 12},
		Trees: Decoration{
			Name:     "tree",
			Variants: []string{"pine", "oak", "birch"},
			Count:    150,
			Octaves:  []Octave{{ScaleX: 1, ScaleY: 1, OffsetX: 100, OffsetY: 100, Amplitude: 1.5}},
		},
		Candy: Decoration{
			Name:     "candy",
			Variants: []string{"lollipop", "candycane"},
			Count:    40,
			Octaves:  []Octave{{ScaleX: 2, ScaleY: 2, OffsetX: -50, OffsetY: -50, Amplitude: 1.5}},
		},

		MaxPlacementAttempts: 200000,
	}
}

// Validate reports the first invalid setting.
func (w WorldGen) Validate() error {
	if w.Width < 2 || w.Height < 2 {
		return fmt.Errorf("config: world %dx%d: %w", w.Width, w.Height, terrain.ErrInvalidDimensions)
	}
	if !(w.Spacing > 0) {
		return fmt.Errorf("config: spacing %v: %w", w.Spacing, terrain.ErrInvalidSpacing)
	}
	switch w.Noise {
	case "", terrain.NoiseValue, terrain.NoisePerlin, terrain.NoiseSimplex:
	default:
		return fmt.Errorf("config: noise %q: %w", w.Noise, terrain.ErrInvalidParameter)
	}
	if w.NoiseOffsetRange < 0 {
		return invalid("noise_offset_range", w.NoiseOffsetRange)
	}
	if w.MinTravel < 0 || w.MaxTravel < w.MinTravel {
		return fmt.Errorf("config: travel range [%v, %v): %w", w.MinTravel, w.MaxTravel, terrain.ErrInvalidParameter)
	}
	if !(w.WaterWidth > 0) {
		return invalid("water_width", w.WaterWidth)
	}
	if w.WaterOffset < 0 {
		return invalid("water_offset", w.WaterOffset)
	}
	if w.WaterDepth+w.WaterOffset < 0 {
		return invalid("water_depth", w.WaterDepth)
	}
	if w.Mountains.Min < 0 || w.Mountains.Max < w.Mountains.Min {
		return fmt.Errorf("config: mountain count range [%d, %d): %w", w.Mountains.Min, w.Mountains.Max, terrain.ErrInvalidParameter)
	}
	if w.Mountains.Range < 0 {
		return invalid("mountains.range", w.Mountains.Range)
	}
	for _, d := range []Decoration{w.Trees, w.Candy} {
		if d.Count < 0 {
			return fmt.Errorf("config: %s count %d: %w", d.Name, d.Count, terrain.ErrInvalidParameter)
		}
		if d.Count > 0 && len(d.Variants) == 0 {
			return fmt.Errorf("config: %s: %w", d.Name, terrain.ErrNoVariants)
		}
	}
	if w.MaxPlacementAttempts < 0 {
		return invalid("max_placement_attempts", w.MaxPlacementAttempts)
	}
	return nil
}

func invalid(field string, v any) error {
	return fmt.Errorf("config: %s %v: %w", field, v, terrain.ErrInvalidParameter)
}
