package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/xlab/closer"

	"lcos-worldgen/internal/config"
	"lcos-worldgen/internal/world"
)

type options struct {
	configPath string
	dumpConfig string
	seed       int64
	count      int
	out        string
	png        string
	pngScale   int
	workers    int
	verbose    bool
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "TOML config file (default: built-in settings)")
	flag.StringVar(&opts.dumpConfig, "dump-config", "", "write the effective config to this file and exit")
	flag.Int64Var(&opts.seed, "seed", 0, "random seed (0 = random)")
	flag.IntVar(&opts.count, "count", 1, "number of worlds, seeded seed, seed+1, ...")
	flag.StringVar(&opts.out, "out", "", "world JSON output (a directory when -count > 1)")
	flag.StringVar(&opts.png, "png", "", "heightmap PNG output (a directory when -count > 1)")
	flag.IntVar(&opts.pngScale, "png-scale", 4, "heightmap pixels per grid cell")
	flag.IntVar(&opts.workers, "workers", runtime.NumCPU(), "parallel generators when -count > 1")
	flag.BoolVar(&opts.verbose, "verbose", false, "log stage timings")
	flag.Parse()

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, cancel := context.WithCancel(context.Background())
	closer.Bind(cancel)

	closer.Checked(func() error {
		if err := run(ctx, log, opts); err != nil {
			log.Error("terragen failed", "err", err)
			return err
		}
		return nil
	}, false)
	closer.Close()
}

func run(ctx context.Context, log *slog.Logger, opts options) error {
	f := config.Default()
	if opts.configPath != "" {
		var err error
		if f, err = config.Load(opts.configPath); err != nil {
			return err
		}
	}
	if opts.dumpConfig != "" {
		return config.Save(opts.dumpConfig, f)
	}
	if opts.count < 1 {
		return fmt.Errorf("count %d: must be at least 1", opts.count)
	}
	if opts.seed == 0 {
		opts.seed = time.Now().UnixNano()
	}

	gen, err := world.Config{Log: log, Settings: f.World}.New()
	if err != nil {
		return err
	}

	seeds := make([]int64, opts.count)
	for i := range seeds {
		seeds[i] = opts.seed + int64(i)
	}
	log.Info("generating", "worlds", len(seeds), "first_seed", opts.seed, "size", fmt.Sprintf("%dx%d", f.World.Width, f.World.Height))

	var worlds []*world.World
	if len(seeds) == 1 {
		w, err := gen.Generate(seeds[0])
		if err != nil {
			return err
		}
		worlds = []*world.World{w}
	} else if worlds, err = world.GenerateAll(ctx, gen, seeds, opts.workers); err != nil {
		return err
	}

	for _, w := range worlds {
		fmt.Println(summary(w))
		if err := writeOutputs(w, opts, len(worlds) > 1); err != nil {
			return err
		}
	}
	return nil
}
