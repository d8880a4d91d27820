package config

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"lcos-worldgen/internal/terrain"
)

func TestDefaultValid(t *testing.T) {
	if err := DefaultWorldGen().Validate(); err != nil {
		t.Fatalf("default world settings invalid: %v", err)
	}
}

func TestRoundTrip(t *testing.T) {
	want := Default()
	want.World.Noise = terrain.NoiseSimplex
	want.World.NoiseSeed = 77
	want.Preview.Wireframe = true

	encoded, err := Encode(want)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := Decode(encoded)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestDecodeOverrides(t *testing.T) {
	doc := []byte(`
[world]
width = 32
height = 24
spacing = 4.0
noise = "perlin"

[[world.octaves]]
scale_x = 0.5
scale_y = 0.25
amplitude = 3.0

[preview]
title = "island"
`)
	f, err := Decode(doc)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if f.World.Width != 32 || f.World.Height != 24 || f.World.Spacing != 4 {
		t.Errorf("grid not overridden: %dx%d spacing %v", f.World.Width, f.World.Height, f.World.Spacing)
	}
	if f.World.Noise != terrain.NoisePerlin {
		t.Errorf("noise = %q, want perlin", f.World.Noise)
	}
	if len(f.World.Octaves) != 1 || f.World.Octaves[0].ScaleY != 0.25 || f.World.Octaves[0].Amplitude != 3 {
		t.Errorf("octaves = %+v", f.World.Octaves)
	}
	if f.Preview.Title != "island" {
		t.Errorf("title = %q", f.Preview.Title)
	}
	if f.World.WaterWidth != DefaultWorldGen().WaterWidth {
		t.Errorf("water width lost its default: %v", f.World.WaterWidth)
	}
}

func TestDecodeInvalid(t *testing.T) {
	if _, err := Decode([]byte("[world]\nwidth = 1\n")); !errors.Is(err, terrain.ErrInvalidDimensions) {
		t.Errorf("expected ErrInvalidDimensions, got %v", err)
	}
	if _, err := Decode([]byte("[world\n")); err == nil {
		t.Errorf("expected a syntax error")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(w *WorldGen)
		want   error
	}{
		{"spacing", func(w *WorldGen) { w.Spacing = 0 }, terrain.ErrInvalidSpacing},
		{"height", func(w *WorldGen) { w.Height = 0 }, terrain.ErrInvalidDimensions},
		{"noise", func(w *WorldGen) { w.Noise = "worley" }, terrain.ErrInvalidParameter},
		{"travel", func(w *WorldGen) { w.MinTravel, w.MaxTravel = 10, 5 }, terrain.ErrInvalidParameter},
		{"water width", func(w *WorldGen) { w.WaterWidth = 0 }, terrain.ErrInvalidParameter},
		{"mountains", func(w *WorldGen) { w.Mountains.Min = 5; w.Mountains.Max = 2 }, terrain.ErrInvalidParameter},
		{"variants", func(w *WorldGen) { w.Trees.Variants = nil }, terrain.ErrNoVariants},
		{"count", func(w *WorldGen) { w.Candy.Count = -1 }, terrain.ErrInvalidParameter},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := DefaultWorldGen()
			c.mutate(&w)
			if err := w.Validate(); !errors.Is(err, c.want) {
				t.Errorf("expected %v, got %v", c.want, err)
			}
		})
	}

	w := DefaultWorldGen()
	w.Trees.Variants = nil
	w.Trees.Count = 0
	if err := w.Validate(); err != nil {
		t.Errorf("empty variants with zero count should be valid: %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	f, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(f, Default()) {
		t.Errorf("missing file should load defaults")
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "worldgen.toml")
	want := Default()
	want.World.Width = 64

	if err := Save(path, want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("loaded %+v, want %+v", got, want)
	}
}

func TestCameraDistanceClamp(t *testing.T) {
	defer SetCameraDistance(GetCameraDistance())

	SetCameraDistance(1)
	if d := GetCameraDistance(); d != 10 {
		t.Errorf("distance = %v, want 10", d)
	}
	SetCameraDistance(1e6)
	if d := GetCameraDistance(); d != 2000 {
		t.Errorf("distance = %v, want 2000", d)
	}
	SetCameraDistance(300)
	if d := GetCameraDistance(); d != 300 {
		t.Errorf("distance = %v, want 300", d)
	}
}
