// Command demo renders a side-by-side parallax mapping comparison: plain
// offset parallax on the left, a selectable steep / enhanced / PBR variant
// on the right. The light and camera are mouse-driven; keyboard toggles
// individual shader features.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"parallax-demo/core"
	"parallax-demo/internal/opengl"
	"parallax-demo/perf"
	"parallax-demo/scene"
)

const (
	// targetFrameTime paces the render loop at roughly 60 frames per second.
	targetFrameTime = time.Second / 60

	// consoleStatsInterval is the frame count between console performance lines.
	consoleStatsInterval = 60

	// overlayHistory is how many recent frames the overlay chart shows.
	overlayHistory = 120
)

type options struct {
	width     int
	height    int
	diffuse   string
	normal    string
	heightMap string
	mesh      string
	vsync     bool
	msaa      int
	debug     bool
}

func parseOptions() options {
	var o options
	flag.IntVar(&o.width, "width", 1400, "initial window width")
	flag.IntVar(&o.height, "height", 700, "initial window height")
	flag.StringVar(&o.diffuse, "diffuse", "lion.bmp", "diffuse texture (BMP/PNG/JPEG)")
	flag.StringVar(&o.normal, "normal", "lion-normal.bmp", "tangent-space normal map")
	flag.StringVar(&o.heightMap, "height-map", "lion-bump.bmp", "height map")
	flag.StringVar(&o.mesh, "mesh", "", "optional glTF mesh replacing the built-in quad")
	flag.BoolVar(&o.vsync, "vsync", true, "enable vertical sync")
	flag.IntVar(&o.msaa, "msaa", 4, "multisample count (0 disables)")
	flag.BoolVar(&o.debug, "debug", false, "verbose logging")
	flag.Parse()
	return o
}

func newLogger(debug bool) *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	log, err := cfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger init: %v\n", err)
		os.Exit(1)
	}
	return log
}

func main() {
	opts := parseOptions()
	log := newLogger(opts.debug)
	defer log.Sync()

	if err := run(opts, log); err != nil {
		log.Error("fatal", zap.Error(err))
		os.Exit(1)
	}
}

func run(opts options, log *zap.Logger) error {
	cfg := core.DefaultWindowConfig()
	cfg.Width = opts.width
	cfg.Height = opts.height
	cfg.VSync = opts.vsync
	cfg.Samples = opts.msaa

	window, err := core.NewWindow(cfg)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer window.Destroy()

	renderer, err := opengl.NewRenderer(log)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}
	defer renderer.Destroy()

	renderer.SetSurface(loadSurface(opts, log))
	renderer.SetMarker(scene.NewLightMarker(0.5, 16, 16))

	session := scene.NewSession()
	session.SetLoaded(renderer.Loaded())

	textures, err := loadTextures(opts, log)
	if err != nil {
		return err
	}
	if err := renderer.SetTextures(textures, session.Features.AnisotropicFiltering); err != nil {
		return fmt.Errorf("upload textures: %w", err)
	}
	log.Info("session ready", zap.Stringer("shader", session.Selected))

	wireInput(window, session, log)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	printHelp()

	composer := opengl.NewComposer(renderer, log)
	sampler := perf.NewSampler(overlayHistory)

	last := time.Now()
	var frames uint64
	for !window.ShouldClose() {
		select {
		case sig := <-sigCh:
			log.Info("shutting down", zap.String("signal", sig.String()))
			window.RequestClose()
			continue
		default:
		}

		frameStart := time.Now()
		sampler.Record(frameStart.Sub(last).Seconds())
		last = frameStart

		window.PollEvents()
		session.Tick()

		width, height := window.GetFramebufferSize()
		var history []float64
		if session.Features.ShowPerformance {
			history = sampler.History()
		}
		composer.Compose(session, width, height, history)
		window.SwapBuffers()

		frames++
		if session.Features.ShowPerformance && frames%consoleStatsInterval == 0 {
			fmt.Println(sampler.Stats().String())
		}

		if !opts.vsync {
			if sleep := targetFrameTime - time.Since(frameStart); sleep > 0 {
				time.Sleep(sleep)
			}
		}
	}

	log.Info("exiting", zap.Uint64("frames", frames))
	return nil
}

// loadSurface returns the glTF override when requested, or the built-in quad.
func loadSurface(opts options, log *zap.Logger) *core.MeshData {
	if opts.mesh == "" {
		return scene.NewQuad()
	}
	mesh, err := scene.LoadSurface(opts.mesh)
	if err != nil {
		log.Warn("mesh load failed, using quad", zap.String("path", opts.mesh), zap.Error(err))
		return scene.NewQuad()
	}
	log.Info("surface loaded", zap.String("path", opts.mesh),
		zap.Int("vertices", len(mesh.Vertices)))
	return mesh
}

// loadTextures reads the three surface maps. A missing or undecodable file
// is a fatal startup error.
func loadTextures(opts options, log *zap.Logger) (opengl.SurfaceTextures, error) {
	var t opengl.SurfaceTextures
	for _, entry := range []struct {
		path string
		dst  **scene.Texture
	}{
		{opts.diffuse, &t.Diffuse},
		{opts.normal, &t.Normal},
		{opts.heightMap, &t.Height},
	} {
		tex, err := scene.LoadTexture(entry.path)
		if err != nil {
			return t, fmt.Errorf("load texture: %w", err)
		}
		log.Debug("texture loaded", zap.String("path", entry.path),
			zap.Int("width", tex.Width), zap.Int("height", tex.Height))
		*entry.dst = tex
	}
	return t, nil
}

func wireInput(window *core.Window, session *scene.Session, log *zap.Logger) {
	apply := func(action scene.Action) {
		switch action {
		case scene.ActionQuit:
			window.RequestClose()
		case scene.ActionToggleFullscreen:
			window.ToggleFullscreen()
		case scene.ActionToggleHelp:
			if session.Features.ShowHelp {
				printHelp()
			}
		}
	}

	window.SetCharCallback(func(ch rune) {
		apply(session.HandleKey(ch))
		log.Debug("key", zap.String("ch", string(ch)), zap.Stringer("shader", session.Selected))
	})
	window.SetSpecialKeyCallback(func(key core.SpecialKey) {
		apply(session.HandleSpecialKey(key))
	})
	window.SetMouseButtonCallback(func(button core.MouseButton, pressed bool, x, y float64) {
		session.MouseButton(button, pressed, x, y)
	})
	window.SetCursorPosCallback(func(x, y float64) {
		session.MouseMove(x, y)
	})
}

func printHelp() {
	fmt.Print(`Parallax mapping demo
  left drag    orbit camera          right drag   move light
  j/i/e/u      basic / steep / enhanced / pbr shader (right pane)
  p            parallax on/off       b  bump depth
  s            self shadowing        m  multisampling
  1-9, 0       advanced rendering toggles
  r/c/t/n/k    relief / cone step / tessellation / noise / caustics
  w/v/g/y      wireframe / normals / tangents / binormals
  space        auto rotate           Tab  performance overlay
  F1/F2        benchmark / recording mode
  f fullscreen   h help   q/Esc quit
`)
}
