// pathtracer renders a scene-description file into a PNG image using
// a CPU path tracer with next-event estimation, cosine-weighted
// indirect sampling and Russian-roulette termination.
//
// Usage:
//
//	pathtracer -scene scene.txt -out out.png [options]
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"pathtracer/display"
	"pathtracer/imageio"
	"pathtracer/integrator"
	"pathtracer/math"
	"pathtracer/render"
	"pathtracer/scene"
	"pathtracer/sceneio"
)

// Config collects every CLI-recognized option plus the scene/output
// paths that sit outside the renderer's own configuration struct.
type Config struct {
	ScenePath string
	OutPath   string
	ShowWindow bool

	Width, Height int
	FOVDegrees    float64

	NumThreads int
	DxCoef     int
	DyCoef     int

	Samples    int
	ShadowRays int
	Bounces    int

	RRMinP      float64
	RRMaxP      float64
	RRMulFactor float64

	Background scene.Background
}

// backgroundFlag adapts spec.md's "constant or gradient (down/up
// colors)" backgroundColor control to a single flag.Value: "r,g,b"
// selects a ConstantBackground, "r,g,b;r,g,b" (down;up) selects a
// GradientBackground.
type backgroundFlag struct {
	bg scene.Background
}

func (f *backgroundFlag) String() string {
	switch v := f.bg.(type) {
	case scene.ConstantBackground:
		return vec3String(v.Color)
	case scene.GradientBackground:
		return vec3String(v.Down) + ";" + vec3String(v.Up)
	default:
		return ""
	}
}

func (f *backgroundFlag) Set(s string) error {
	parts := strings.Split(s, ";")
	switch len(parts) {
	case 1:
		c, err := parseVec3(parts[0])
		if err != nil {
			return err
		}
		f.bg = scene.ConstantBackground{Color: c}
	case 2:
		down, err := parseVec3(parts[0])
		if err != nil {
			return err
		}
		up, err := parseVec3(parts[1])
		if err != nil {
			return err
		}
		f.bg = scene.GradientBackground{Down: down, Up: up}
	default:
		return fmt.Errorf("invalid background %q: want \"r,g,b\" or \"r,g,b;r,g,b\"", s)
	}
	return nil
}

func parseVec3(s string) (math.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return math.Vec3{}, fmt.Errorf("invalid color %q: want \"r,g,b\"", s)
	}
	var v [3]float32
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return math.Vec3{}, fmt.Errorf("invalid color %q: %w", s, err)
		}
		v[i] = float32(f)
	}
	return math.Vec3{X: v[0], Y: v[1], Z: v[2]}, nil
}

func vec3String(v math.Vec3) string {
	return fmt.Sprintf("%g,%g,%g", v.X, v.Y, v.Z)
}

func parseFlags(args []string) (Config, error) {
	fs := flag.NewFlagSet("pathtracer", flag.ContinueOnError)

	cfg := Config{}
	fs.StringVar(&cfg.ScenePath, "scene", "", "path to the scene-description file (required)")
	fs.StringVar(&cfg.OutPath, "out", "out.png", "path to write the rendered PNG")
	fs.BoolVar(&cfg.ShowWindow, "window", false, "show a live preview window while rendering")

	fs.IntVar(&cfg.Width, "width", 800, "image width in pixels")
	fs.IntVar(&cfg.Height, "height", 600, "image height in pixels")
	fs.Float64Var(&cfg.FOVDegrees, "fov", 60, "vertical field of view in degrees")

	fs.IntVar(&cfg.NumThreads, "threads", 8, "size of the worker pool")
	fs.IntVar(&cfg.DxCoef, "dx-coef", 8, "tile count across the image width")
	fs.IntVar(&cfg.DyCoef, "dy-coef", 8, "tile count across the image height")

	fs.IntVar(&cfg.Samples, "samples", 64, "number of progressive sample passes")
	fs.IntVar(&cfg.ShadowRays, "shadow-rays", 1, "shadow rays per emitter per hit")
	fs.IntVar(&cfg.Bounces, "bounces", 8, "maximum path length after the primary ray")

	rr := integrator.DefaultRussianRoulette()
	fs.Float64Var(&cfg.RRMinP, "rr-min", float64(rr.MinP), "Russian-roulette minimum survival probability")
	fs.Float64Var(&cfg.RRMaxP, "rr-max", float64(rr.MaxP), "Russian-roulette maximum survival probability")
	fs.Float64Var(&cfg.RRMulFactor, "rr-mul", float64(rr.MulFactor), "Russian-roulette throughput multiplier")

	bg := backgroundFlag{bg: scene.GradientBackground{
		Down: math.Vec3One,
		Up:   math.Vec3{X: 0.5, Y: 0.7, Z: 1.0},
	}}
	fs.Var(&bg, "background", `background color: "r,g,b" for a constant background, or "r,g,b;r,g,b" for a down;up gradient`)

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if cfg.ScenePath == "" {
		return Config{}, fmt.Errorf("missing required -scene flag")
	}
	cfg.Background = bg.bg
	return cfg, nil
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "pathtracer: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "pathtracer: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg Config) error {
	aspect := float32(cfg.Width) / float32(cfg.Height)
	scn, cam, err := sceneio.Load(cfg.ScenePath, aspect, float32(cfg.FOVDegrees), cfg.Background)
	if err != nil {
		return fmt.Errorf("loading scene: %w", err)
	}

	var preview *display.Window
	if cfg.ShowWindow {
		win, err := display.NewWindow(display.Config{Width: cfg.Width, Height: cfg.Height, Title: cfg.ScenePath})
		if err != nil {
			return fmt.Errorf("opening preview window: %w", err)
		}
		defer win.Close()
		preview = win
	}

	opts := render.Options{
		Width:      cfg.Width,
		Height:     cfg.Height,
		TileWidth:  max(1, cfg.Width/cfg.DxCoef),
		TileHeight: max(1, cfg.Height/cfg.DyCoef),
		NumWorkers: cfg.NumThreads,
		Samples:    cfg.Samples,
		Integrator: integrator.Options{
			Bounces:    cfg.Bounces,
			ShadowRays: cfg.ShadowRays,
			RussianRoulette: integrator.RussianRoulette{
				MinP:      float32(cfg.RRMinP),
				MaxP:      float32(cfg.RRMaxP),
				MulFactor: float32(cfg.RRMulFactor),
			},
		},
	}

	var result render.Result
	if preview != nil {
		result = render.Render(cam, scn, opts, preview)
	} else {
		result = render.Render(cam, scn, opts, nil)
	}

	if err := imageio.WritePNG(cfg.OutPath, result.Final); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
