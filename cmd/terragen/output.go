package main

import (
	"fmt"
	"os"
	"path/filepath"

	"lcos-worldgen/internal/graphics/heightmap"
	"lcos-worldgen/internal/terrain"
	"lcos-worldgen/internal/world"
	"lcos-worldgen/pkg/worldfile"
)

// summary is the one-line report printed per world.
func summary(w *world.World) string {
	return fmt.Sprintf("%s seed=%d digest=%016x ground=%d/%d water=%d/%d mountains=%d placements=%d river=%d",
		w.ID, w.Seed, w.Digest,
		len(w.Ground.Vertices), len(w.Ground.Triangles),
		len(w.Water.Vertices), len(w.Water.Triangles),
		w.Count(terrain.KindMountain), len(w.Placements), w.RiverSteps)
}

// outputPath returns path itself for a single world, or a per-seed file
// inside the directory path when writing several.
func outputPath(path string, seed int64, ext string, many bool) string {
	if !many {
		return path
	}
	return filepath.Join(path, fmt.Sprintf("world-%d%s", seed, ext))
}

func writeOutputs(w *world.World, opts options, many bool) error {
	if opts.out != "" {
		if err := worldfile.Write(outputPath(opts.out, w.Seed, ".json", many), worldfile.FromWorld(w)); err != nil {
			return err
		}
	}
	if opts.png != "" {
		if err := writePNG(outputPath(opts.png, w.Seed, ".png", many), w, opts.pngScale); err != nil {
			return err
		}
	}
	return nil
}

func writePNG(path string, w *world.World, scale int) error {
	g, err := heightmap.FromWorld(w)
	if err != nil {
		return err
	}
	img := heightmap.Render(g, heightmap.Options{Scale: scale, Caption: fmt.Sprintf("seed %d", w.Seed)})

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create png directory: %w", err)
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create png: %w", err)
	}
	if err := heightmap.Encode(file, img); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
