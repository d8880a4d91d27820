package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"lcos-worldgen/internal/config"
	"lcos-worldgen/internal/graphics"
	"lcos-worldgen/internal/input"
	"lcos-worldgen/internal/world"
	"lcos-worldgen/pkg/worldfile"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "TOML config file (default: built-in settings)")
	seed := flag.Int64("seed", 0, "random seed (0 = random)")
	worldPath := flag.String("world", "", "show a saved world JSON instead of generating")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if err := run(log, *configPath, *seed, *worldPath); err != nil {
		log.Error("preview failed", "err", err)
		os.Exit(1)
	}
}

func run(log *slog.Logger, configPath string, seed int64, worldPath string) error {
	f := config.Default()
	if configPath != "" {
		var err error
		if f, err = config.Load(configPath); err != nil {
			return err
		}
	}
	config.SetCameraDistance(f.Preview.Distance)

	gen, err := world.Config{Log: log, Settings: f.World}.New()
	if err != nil {
		return err
	}

	var current *world.World
	if worldPath != "" {
		file, err := worldfile.Read(worldPath)
		if err != nil {
			return err
		}
		if current, err = file.World(); err != nil {
			return err
		}
	} else {
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		if current, err = gen.Generate(seed); err != nil {
			return err
		}
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("init glfw: %w", err)
	}
	defer glfw.Terminate()

	window, err := setupWindow(f.Preview)
	if err != nil {
		return err
	}
	if err := gl.Init(); err != nil {
		return fmt.Errorf("init gl: %w", err)
	}

	r, err := graphics.NewTerrainRenderer()
	if err != nil {
		return err
	}
	defer r.Delete()
	r.Wireframe = f.Preview.Wireframe

	fbw, fbh := window.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbw), int32(fbh))
	camera := graphics.NewCamera(fbw, fbh, float32(f.Preview.FOV))

	show := func(w *world.World) {
		current = w
		r.Load(w)
		window.SetTitle(fmt.Sprintf("%s - seed %d - %s", f.Preview.Title, w.Seed, w.ID))
		log.Info("showing world", "seed", w.Seed, "id", w.ID, "placements", len(w.Placements))
	}
	show(current)

	im := input.NewInputManager()
	setupInputHandlers(window, im, camera)
	regenerate := func() {
		w, err := gen.Generate(time.Now().UnixNano())
		if err != nil {
			log.Error("regenerate failed", "err", err)
			return
		}
		show(w)
	}

	gl.ClearColor(0.55, 0.7, 0.9, 1)
	for !window.ShouldClose() {
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
		r.Render(camera)
		window.SwapBuffers()
		glfw.PollEvents()
		handleActions(window, im, camera, r, regenerate)
		im.PostUpdate()
	}
	return nil
}

func setupWindow(p config.Preview) (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	window, err := glfw.CreateWindow(p.Width, p.Height, p.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if p.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	return window, nil
}
