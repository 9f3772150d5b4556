package main

import (
	_ "embed"
	"flag"
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	mgl "github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/thedaneeffect/ebiten-obj-playground/objload"
	"github.com/thedaneeffect/ebiten-obj-playground/primitive"
	"github.com/thedaneeffect/ebiten-obj-playground/render"
)

const (
	game_width  = 800
	game_height = 800
)

var (
	cpu_profile = flag.String("cpuprofile", "", "write cpu profile to `file`")
	mem_profile = flag.String("memprofile", "", "write memory profile to `file`")
	header      = flag.String("header", "abort", "what to do when the first line is not an OBJ header: abort or warn")
	strict      = flag.Bool("strict", false, "reject objects that mix lines and faces")
	skip_bad    = flag.Bool("skip-bad", false, "skip records with bad indices instead of failing")
	primitives  = flag.Bool("primitives", false, "also show the built-in triangle, box and circle")
	line_width  = flag.Float64("line-width", 2, "line width in pixels")
	verbose     = flag.Bool("verbose", false, "log debug output")
)

//go:embed sample.obj
var sample_obj []byte

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: objview [flags] [file.obj]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := run(); err != nil {
		slog.Error("objview", "err", err)
		os.Exit(1)
	}
}

func run() error {
	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	objload.SetLogger(logger)

	if *cpu_profile != "" {
		f, err := os.Create(*cpu_profile)
		if err != nil {
			return fmt.Errorf("could not create CPU profile: %w", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("could not start CPU profile: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	if *mem_profile != "" {
		defer func() {
			f, err := os.Create(*mem_profile)
			if err != nil {
				logger.Error("could not create memory profile", "err", err)
				return
			}
			defer f.Close()
			runtime.GC() // get up-to-date statistics
			if err := pprof.WriteHeapProfile(f); err != nil {
				logger.Error("could not write memory profile", "err", err)
			}
		}()
	}

	opts, err := parse_options()
	if err != nil {
		return err
	}

	geoms, err := load(flag.Arg(0), opts)
	if err != nil {
		return err
	}
	for _, d := range geoms.Diagnostics {
		logger.Debug("diagnostic", "line", d.Line, "kind", d.Kind, "text", d.Text)
	}
	logger.Info("loaded", "objects", geoms.Len(), "diagnostics", len(geoms.Diagnostics))

	device := render.NewDevice(
		render.NewViewport(0, 0, game_width, game_height),
		render.WithLineWidth(float32(*line_width)),
		render.WithLogger(logger),
	)
	if err := geoms.UploadAll(device); err != nil {
		return err
	}

	if *primitives {
		if err := upload_primitives(device); err != nil {
			return err
		}
	}

	game := &game{
		device: device,
		names:  device.Names(),
	}

	ebiten.SetWindowTitle("objview")
	ebiten.SetWindowSize(game_width, game_height)
	ebiten.SetVsyncEnabled(true)

	return ebiten.RunGame(game)
}

func parse_options() ([]objload.Option, error) {
	opts := []objload.Option{
		objload.WithStrict(*strict),
		objload.WithSkipBadRecords(*skip_bad),
	}
	switch *header {
	case "abort":
		opts = append(opts, objload.WithHeaderPolicy(objload.HeaderAbort))
	case "warn":
		opts = append(opts, objload.WithHeaderPolicy(objload.HeaderWarn))
	default:
		return nil, fmt.Errorf("-header must be abort or warn, got %q", *header)
	}
	return opts, nil
}

func load(path string, opts []objload.Option) (*objload.Collection, error) {
	if path == "" {
		slog.Info("no file given, showing the embedded sample")
		return objload.ParseBytes(sample_obj, opts...)
	}
	return objload.ParseFile(path, opts...)
}

// primitives sit along the top edge so they don't cover the loaded objects
func upload_primitives(device *render.Device) error {
	shapes := []struct {
		name   string
		mesh   *primitive.Mesh
		offset mgl.Vec2
	}{
		{"triangle", primitive.Triangle(), mgl.Vec2{-0.6, 0.7}},
		{"box", primitive.Box(), mgl.Vec2{0, 0.7}},
		{"circle", primitive.Circle(nil), mgl.Vec2{0.6, 0.7}},
	}
	for _, s := range shapes {
		if err := device.UploadPrimitive(s.name, s.mesh.Translated(s.offset)); err != nil {
			return err
		}
	}
	return nil
}

type game struct {
	device    *render.Device
	names     []string
	selected  int
	hover     string
	frametime time.Duration
	draw_err  error
}

func (g *game) Layout(outerWidth, outerHeight int) (int, int) {
	return game_width, game_height
}

func (g *game) Update() error {
	if g.draw_err != nil {
		return g.draw_err
	}

	if len(g.names) > 0 {
		if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			g.selected = (g.selected + 1) % len(g.names)
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
			g.selected = (g.selected + len(g.names) - 1) % len(g.names)
		}
	}

	cx, cy := ebiten.CursorPosition()
	g.hover = g.device.Pick(float32(cx), float32(cy))

	switch {
	case g.hover != "":
		g.device.SetHighlight(g.hover)
	case len(g.names) > 0:
		g.device.SetHighlight(g.names[g.selected])
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	defer func(t time.Time) {
		ft := time.Since(t)
		if g.frametime == 0 {
			g.frametime = ft
		} else {
			g.frametime += (ft - g.frametime) / 2
		}
	}(time.Now())

	screen.Fill(color.RGBA{40, 40, 48, 255})

	if err := g.device.Draw(screen); err != nil {
		g.draw_err = err
		return
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %.0f FPS: %.0f", ebiten.ActualTPS(), ebiten.ActualFPS()), 0, 0)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Ft: %v", g.frametime), 0, 14)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Objects: %d Triangles: %d", len(g.names), g.device.TriangleCount()), 0, 28)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Selected: %s", g.device.Highlight()), 0, 42)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Hover: %s", g.hover), 0, 56)
}
