// SPDX-License-Identifier: Unlicense OR MIT

package overlay

import (
	"errors"
	"fmt"
	"io/fs"

	"golang.org/x/exp/slices"

	"imoverlay.org/app"
	"imoverlay.org/config"
	"imoverlay.org/f32"
	"imoverlay.org/font/gofont"
	"imoverlay.org/font/opentype"
	"imoverlay.org/imgui"
	"imoverlay.org/implot"
	"imoverlay.org/internal/log"
	"imoverlay.org/io/system"
	"imoverlay.org/texture"
)

var logger = log.New("overlay")

// registry maps the raw imgui contexts to the live managed contexts.
var registry = make(map[*imgui.Context]*Context)

// Context is a managed imgui context shared by overlays. See the
// package documentation for the ownership rules.
type Context struct {
	host *app.Host
	gui  *imgui.Context
	plot *implot.Context

	iniFilename [pathBufferSize]byte
	logFilename [pathBufferSize]byte

	fontAtlas *texture.Texture

	refs      int
	destroyed bool
	handles   struct {
		begin, end, metrics app.Handle
	}
}

// Scope restores the current imgui and implot contexts saved by
// Context.Use.
type Scope struct {
	gui  *imgui.Context
	plot *implot.Context
}

// NewContext creates a context driven by the frames of host. A nil
// host leaves frames to the caller, through OnBeginFrame and
// OnEndFrame. The caller owns the single reference of the returned
// context.
func NewContext(host *app.Host, cfg config.Config) (*Context, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	face, err := loadFace(cfg.Font.Face)
	if err != nil {
		return nil, fmt.Errorf("overlay: loading font %q: %w", cfg.Font.Face, err)
	}
	atlas := imgui.NewFontAtlas(face, cfg.Font.Size)
	if err := atlas.Build(); err != nil {
		return nil, fmt.Errorf("overlay: %w", err)
	}
	tex, err := atlasTexture(atlas, cfg.AtlasCache)
	if err != nil {
		return nil, err
	}
	atlas.SetTexID(tex)

	c := &Context{host: host, fontAtlas: tex, refs: 1}
	scope := Scope{gui: imgui.CurrentContext(), plot: implot.CurrentContext()}
	c.gui = imgui.CreateContext(atlas)
	if cfg.Plot {
		c.plot = implot.CreateContext()
	}
	imgui.SetCurrentContext(c.gui)
	implot.SetCurrentContext(c.plot)
	if c.plot != nil {
		implot.SetImGuiContext(c.gui)
	}
	var truncated bool
	if c.iniFilename, truncated = ansiPath(cfg.IniFilename); truncated {
		logger.Warningf("ini file name truncated to %d bytes: %s", pathBufferSize-1, cfg.IniFilename)
	}
	if c.logFilename, truncated = ansiPath(cfg.LogFilename); truncated {
		logger.Warningf("log file name truncated to %d bytes: %s", pathBufferSize-1, cfg.LogFilename)
	}
	io := imgui.GetIO()
	io.IniFilename = cString(c.iniFilename[:])
	io.LogFilename = cString(c.logFilename[:])
	io.ConfigFlags |= imgui.ConfigFlagsViewportsEnable
	io.BackendFlags |= imgui.BackendFlagsRendererHasVtxOffset |
		imgui.BackendFlagsPlatformHasViewports |
		imgui.BackendFlagsRendererHasViewports
	io.BackendPlatformName = "imoverlay"
	io.BackendRendererName = "imoverlay"
	c.installPlatformCallbacks()
	scope.Restore()

	registry[c.gui] = c
	if host != nil {
		c.OnDisplayMetricsChanged(host.DisplayMetrics())
		c.handles.begin = host.BeginFrame.Add(c.OnBeginFrame)
		c.handles.end = host.EndFrame.Add(c.OnEndFrame)
		c.handles.metrics = host.DisplayMetricsChanged.Add(c.OnDisplayMetricsChanged)
	}
	logger.Infof("context created (font %s %.0fpx, atlas %v, plot %v)", cfg.Font.Face, cfg.Font.Size, tex.Size(), cfg.Plot)
	return c, nil
}

// ContextFor returns the live managed context wrapping raw, or nil.
func ContextFor(raw *imgui.Context) *Context {
	return registry[raw]
}

func loadFace(name string) (*opentype.Font, error) {
	if gofont.Has(name) {
		return gofont.Lookup(name)
	}
	return opentype.ParseFile(name)
}

// atlasTexture returns the texture for the atlas pixels, loaded from
// cache when it holds an image of the right size.
func atlasTexture(atlas *imgui.FontAtlas, cache string) (*texture.Texture, error) {
	const name = "imgui-font-atlas"
	if cache != "" {
		tex, err := texture.Load(name, cache)
		switch {
		case err == nil:
			if tex.Size().X == atlas.TexWidth && tex.Size().Y == atlas.TexHeight {
				logger.Debugf("font atlas loaded from %s", cache)
				atlas.ClearTexData()
				return tex, nil
			}
			logger.Warningf("font atlas cache %s has size %v, want %dx%d; rebuilding", cache, tex.Size(), atlas.TexWidth, atlas.TexHeight)
			tex.Release()
		case errors.Is(err, fs.ErrNotExist):
		default:
			return nil, fmt.Errorf("overlay: font atlas cache: %w", err)
		}
	}
	pix, err := atlas.TexDataAsRGBA32()
	if err != nil {
		return nil, fmt.Errorf("overlay: %w", err)
	}
	tex := texture.New(name, pix)
	atlas.ClearTexData()
	if cache != "" {
		if err := tex.Save(cache); err != nil {
			logger.Warningf("saving font atlas cache: %v", err)
		}
	}
	return tex, nil
}

// Acquire adds a reference to c.
func (c *Context) Acquire() *Context {
	if c.destroyed {
		panic("overlay: acquire of destroyed context")
	}
	c.refs++
	return c
}

// Release drops a reference to c. Releasing the last reference
// destroys the context: the host delegates are removed, the implot
// and imgui contexts are destroyed, and the font atlas texture is
// released.
func (c *Context) Release() {
	if c.destroyed {
		panic("overlay: release of destroyed context")
	}
	c.refs--
	if c.refs == 0 {
		c.destroy()
	}
}

// Refs returns the number of live references.
func (c *Context) Refs() int {
	return c.refs
}

// Destroyed reports whether the last reference was released.
func (c *Context) Destroyed() bool {
	return c.destroyed
}

func (c *Context) destroy() {
	c.destroyed = true
	if h := c.host; h != nil {
		h.BeginFrame.Remove(c.handles.begin)
		h.EndFrame.Remove(c.handles.end)
		h.DisplayMetricsChanged.Remove(c.handles.metrics)
	}
	prevGui, prevPlot := imgui.CurrentContext(), implot.CurrentContext()
	imgui.SetCurrentContext(c.gui)
	implot.SetCurrentContext(c.plot)
	imgui.DestroyPlatformWindows()
	if c.plot != nil {
		implot.DestroyContext(c.plot)
	}
	imgui.DestroyContext(c.gui)
	if prevGui != c.gui {
		imgui.SetCurrentContext(prevGui)
	}
	if prevPlot != c.plot {
		implot.SetCurrentContext(prevPlot)
	}
	c.fontAtlas.Release()
	delete(registry, c.gui)
	logger.Infof("context destroyed")
}

// Raw returns the imgui context.
func (c *Context) Raw() *imgui.Context {
	return c.gui
}

// Plot returns the implot context, or nil if plotting is disabled.
func (c *Context) Plot() *implot.Context {
	return c.plot
}

// FontAtlas returns the font atlas texture.
func (c *Context) FontAtlas() *texture.Texture {
	return c.fontAtlas
}

// Use makes c the current imgui and implot context until the returned
// Scope is restored.
func (c *Context) Use() Scope {
	if c.destroyed {
		panic("overlay: use of destroyed context")
	}
	s := Scope{gui: imgui.CurrentContext(), plot: implot.CurrentContext()}
	imgui.SetCurrentContext(c.gui)
	implot.SetCurrentContext(c.plot)
	return s
}

// Restore reinstates the contexts that were current when the scope
// was created.
func (s Scope) Restore() {
	imgui.SetCurrentContext(s.gui)
	implot.SetCurrentContext(s.plot)
}

// OnDisplayMetricsChanged moves the main viewport to the primary
// monitor and reports all monitors to imgui.
func (c *Context) OnDisplayMetricsChanged(m system.DisplayMetrics) {
	defer c.Use().Restore()
	primary := m.Primary()
	main := imgui.GetMainViewport()
	main.Pos = f32.FPt(primary.Bounds.Min)
	main.Size = f32.FPt(primary.Bounds.Size())
	main.WorkPos = f32.FPt(primary.WorkArea.Min)
	main.WorkSize = f32.FPt(primary.WorkArea.Size())
	main.DpiScale = primary.Metric.Scale()

	io := imgui.GetIO()
	io.DisplaySize = main.Size
	// Host windows are sized in pixels.
	io.DisplayFramebufferScale = f32.Pt(1, 1)
	main.FramebufferScale = io.DisplayFramebufferScale

	monitors := slices.Clone(m.Monitors)
	if len(monitors) == 0 {
		monitors = append(monitors, primary)
	}
	slices.SortStableFunc(monitors, func(a, b system.Monitor) int {
		switch {
		case a.Primary == b.Primary:
			return 0
		case a.Primary:
			return -1
		default:
			return 1
		}
	})
	pio := imgui.GetPlatformIO()
	pio.Monitors = pio.Monitors[:0]
	for _, mon := range monitors {
		pio.Monitors = append(pio.Monitors, imgui.PlatformMonitor{
			MainPos:  f32.FPt(mon.Bounds.Min),
			MainSize: f32.FPt(mon.Bounds.Size()),
			WorkPos:  f32.FPt(mon.WorkArea.Min),
			WorkSize: f32.FPt(mon.WorkArea.Size()),
			DpiScale: mon.Metric.Scale(),
		})
	}
	logger.Debugf("display metrics: primary %v, %d monitors", primary.Bounds, len(monitors))
}

// OnBeginFrame starts an imgui frame.
func (c *Context) OnBeginFrame() {
	defer c.Use().Restore()
	if c.host != nil {
		if dt := c.host.DeltaTime(); dt > 0 {
			imgui.GetIO().DeltaTime = float32(dt.Seconds())
		}
	}
	imgui.NewFrame()
}

// OnEndFrame renders the imgui frame, updates the platform windows and
// hands each viewport's draw data to its overlay.
func (c *Context) OnEndFrame() {
	defer c.Use().Restore()
	imgui.Render()
	imgui.UpdatePlatformWindows()
	for _, vp := range c.gui.Viewports() {
		if ov := GetOrCreate(vp).Overlay(); ov != nil {
			ov.SetDrawData(vp.DrawData)
		}
	}
}

// BindMainViewport associates the main viewport with win and ov.
func (c *Context) BindMainViewport(win *app.Window, ov *Overlay) {
	defer c.Use().Restore()
	vp := imgui.GetMainViewport()
	vp.PlatformHandle = win
	Bind(vp, win, ov)
}

func (c *Context) installPlatformCallbacks() {
	pio := imgui.GetPlatformIO()
	pio.CreateWindow = c.createWindow
	pio.DestroyWindow = c.destroyWindow
	pio.SetWindowPos = func(vp *imgui.Viewport, pos f32.Point) {
		if w := GetOrCreate(vp).Window(); w != nil {
			w.Option(app.Pos(pos.Round()))
		}
	}
	pio.GetWindowPos = func(vp *imgui.Viewport) f32.Point {
		if w := GetOrCreate(vp).Window(); w != nil {
			return f32.FPt(w.Config().Pos)
		}
		return vp.Pos
	}
	pio.SetWindowSize = func(vp *imgui.Viewport, size f32.Point) {
		if w := GetOrCreate(vp).Window(); w != nil {
			w.Option(app.SizePx(size.Round()))
		}
	}
	pio.GetWindowSize = func(vp *imgui.Viewport) f32.Point {
		if w := GetOrCreate(vp).Window(); w != nil {
			return f32.FPt(w.Config().Size)
		}
		return vp.Size
	}
}

// createWindow opens a host window with an overlay sharing c for a
// secondary viewport.
func (c *Context) createWindow(vp *imgui.Viewport) {
	if c.host == nil {
		return
	}
	ov := New(c)
	win := c.host.NewWindow(ov,
		app.Title(fmt.Sprintf("imgui viewport %#x", uint32(vp.ID))),
		app.Pos(vp.Pos.Round()),
		app.SizePx(vp.Size.Round()),
	)
	win.OnDestroy(ov.Close)
	vp.PlatformHandle = win
	Bind(vp, win, ov)
	logger.Debugf("window created for viewport %#x", uint32(vp.ID))
}

func (c *Context) destroyWindow(vp *imgui.Viewport) {
	d := GetOrCreate(vp)
	if w := d.Window(); w != nil {
		w.Destroy()
	}
	if ov := d.Overlay(); ov != nil {
		ov.Close()
	}
	*d = ViewportData{}
	vp.PlatformHandle = nil
}
