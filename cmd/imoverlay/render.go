// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/urfave/cli"

	"imoverlay.org/app"
	"imoverlay.org/config"
	"imoverlay.org/f32"
	"imoverlay.org/imgui"
	"imoverlay.org/implot"
	"imoverlay.org/io/key"
	"imoverlay.org/overlay"
	"imoverlay.org/raster"
)

const frameTime = 16 * time.Millisecond

func loadConfig(ctx *cli.Context) (config.Config, error) {
	path := ctx.GlobalString("config")
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// demo is the user interface drawn by the render command.
type demo struct {
	ctx      *overlay.Context
	detached bool
	logText  bool
	input    string
	samples  []float32
}

func (d *demo) update(dt time.Duration) {
	defer d.ctx.Use().Restore()
	if d.logText && imgui.GetFrameCount() == 1 {
		if err := imgui.LogToFile(""); err != nil {
			logger.Warningf("text log: %v", err)
		}
	}
	d.samples = append(d.samples, float32(math.Sin(float64(len(d.samples))/4)))

	imgui.SetNextWindowPos(f32.Pt(20, 20), imgui.CondFirstUseEver)
	imgui.SetNextWindowSize(f32.Pt(360, 240), imgui.CondFirstUseEver)
	imgui.Begin("imoverlay")
	imgui.Text(fmt.Sprintf("frame %d, dt %v", imgui.GetFrameCount(), dt))
	if imgui.GetFrameCount() == 1 {
		imgui.SetKeyboardFocusHere()
	}
	imgui.InputText("name", &d.input)
	if d.ctx.Plot() != nil {
		implot.PlotLines("sin", d.samples)
	}
	imgui.End()

	if d.detached {
		vp := imgui.GetMainViewport()
		imgui.SetNextWindowPos(vp.Pos.Add(f32.Pt(vp.Size.X+40, 40)), imgui.CondAlways)
		imgui.BeginV("detached", imgui.WindowFlagsNoSavedSettings)
		imgui.Text("outside the primary display")
		imgui.End()
	}
}

func renderFrame(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	w, h := ctx.Int("width"), ctx.Int("height")
	if w <= 0 || h <= 0 {
		return errors.New("window size must be positive")
	}
	frames := ctx.Int("frames")
	if frames < 1 {
		return errors.New("at least one frame is required")
	}

	host := app.NewHost(app.DefaultDisplayMetrics())
	oc, err := overlay.NewContext(host, cfg)
	if err != nil {
		return err
	}
	ov := overlay.New(oc)
	oc.Release()
	defer ov.Close()
	win := host.NewWindow(ov, app.Title("imoverlay"), app.SizePx(image.Pt(w, h)))
	oc.BindMainViewport(win, ov)

	d := &demo{ctx: oc, detached: ctx.Bool("detached"), logText: ctx.Bool("log-text")}
	host.Update.Add(d.update)
	for _, c := range "imoverlay" {
		host.DispatchChar(key.CharEvent{Char: c})
	}
	// Windows paint the draw data of the previous frame.
	for i := 0; i <= frames; i++ {
		host.Tick(frameTime)
	}
	if d.logText {
		func() {
			defer oc.Use().Restore()
			imgui.LogFinish()
		}()
	}

	out := ctx.String("out")
	var r raster.Rasterizer
	for i, hw := range host.Windows() {
		name := out
		if i > 0 {
			ext := filepath.Ext(out)
			name = fmt.Sprintf("%s-%d%s", strings.TrimSuffix(out, ext), i, ext)
		}
		if err := rasterize(&r, hw, name); err != nil {
			return err
		}
		logger.Infof("window %q written to %s", hw.Config().Title, name)
	}
	return nil
}

func rasterize(r *raster.Rasterizer, w *app.Window, path string) error {
	b := w.Bounds()
	img := image.NewRGBA(image.Rectangle{Max: b.Size()})
	r.Frame(w.Ops(), b.Min, img)
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return f.Close()
}

func dumpAtlas(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	oc, err := overlay.NewContext(nil, cfg)
	if err != nil {
		return err
	}
	defer oc.Release()
	out := ctx.String("out")
	if err := oc.FontAtlas().Save(out); err != nil {
		return err
	}
	logger.Infof("font atlas %v written to %s", oc.FontAtlas().Size(), out)
	return nil
}
