// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"image"
	"time"

	"golang.org/x/exp/slices"

	"imoverlay.org/internal/log"
	"imoverlay.org/io/key"
	"imoverlay.org/io/system"
	"imoverlay.org/unit"
)

var logger = log.New("app")

// Host drives frames for a set of windows.
type Host struct {
	// BeginFrame runs at the start of every frame.
	BeginFrame Delegates[func()]
	// Update runs after BeginFrame, before windows are painted.
	Update Delegates[func(dt time.Duration)]
	// EndFrame runs after all windows are painted.
	EndFrame Delegates[func()]
	// DisplayMetricsChanged runs when the display configuration
	// changes.
	DisplayMetricsChanged Delegates[func(m system.DisplayMetrics)]

	metrics   system.DisplayMetrics
	windows   []*Window
	focus     *Window
	deltaTime time.Duration
	frames    int
	inFrame   bool
}

// NewHost returns a host for displays described by m.
func NewHost(m system.DisplayMetrics) *Host {
	return &Host{metrics: m}
}

// DefaultDisplayMetrics describes a single 1920x1080 display at
// scale 1.
func DefaultDisplayMetrics() system.DisplayMetrics {
	size := image.Pt(1920, 1080)
	bounds := image.Rectangle{Max: size}
	return system.DisplayMetrics{
		PrimaryDisplaySize: size,
		PrimaryWorkArea:    bounds,
		VirtualDisplay:     bounds,
		Monitors: []system.Monitor{{
			Name:     "primary",
			Primary:  true,
			Bounds:   bounds,
			WorkArea: bounds,
			Metric:   unit.Metric{PxPerDp: 1},
		}},
		Metric: unit.Metric{PxPerDp: 1},
	}
}

// DisplayMetrics returns the current display configuration.
func (h *Host) DisplayMetrics() system.DisplayMetrics {
	return h.metrics
}

// SetDisplayMetrics updates the display configuration and notifies
// the DisplayMetricsChanged delegates.
func (h *Host) SetDisplayMetrics(m system.DisplayMetrics) {
	h.metrics = m
	h.DisplayMetricsChanged.each(func(f func(system.DisplayMetrics)) { f(m) })
}

// DeltaTime returns the duration passed to the current or last Tick.
func (h *Host) DeltaTime() time.Duration {
	return h.deltaTime
}

// Frames returns the number of completed frames.
func (h *Host) Frames() int {
	return h.frames
}

// Tick runs one frame.
func (h *Host) Tick(dt time.Duration) {
	if h.inFrame {
		panic("app: Tick called from a frame delegate")
	}
	h.inFrame = true
	defer func() { h.inFrame = false }()
	h.deltaTime = dt
	h.BeginFrame.each(func(f func()) { f() })
	h.Update.each(func(f func(time.Duration)) { f(dt) })
	for _, w := range slices.Clone(h.windows) {
		if !w.destroyed {
			w.Paint()
		}
	}
	h.EndFrame.each(func(f func()) { f() })
	h.frames++
}

// Windows returns the live windows in creation order.
func (h *Host) Windows() []*Window {
	return slices.Clone(h.windows)
}

// NewWindow creates a window showing content.
func (h *Host) NewWindow(content Widget, options ...Option) *Window {
	defaults := []Option{
		Size(800, 600),
		Title("imoverlay"),
	}
	w := &Window{host: h, content: content}
	w.cnf.apply(h.metrics.Metric, append(defaults, options...))
	h.windows = append(h.windows, w)
	if h.focus == nil {
		h.focus = w
	}
	logger.Debugf("window %q created at %v size %v", w.cnf.Title, w.cnf.Pos, w.cnf.Size)
	return w
}

// Focus gives keyboard focus to w.
func (h *Host) Focus(w *Window) {
	if w != nil && w.destroyed {
		return
	}
	h.focus = w
}

// Focused returns the window with keyboard focus, or nil.
func (h *Host) Focused() *Window {
	return h.focus
}

// DispatchChar delivers a character to the focused window.
func (h *Host) DispatchChar(ev key.CharEvent) key.Reply {
	if h.focus == nil {
		return key.Unhandled
	}
	return h.focus.DispatchChar(ev)
}

func (h *Host) remove(w *Window) {
	if i := slices.Index(h.windows, w); i >= 0 {
		h.windows = slices.Delete(h.windows, i, i+1)
	}
	if h.focus == w {
		h.focus = nil
		if len(h.windows) > 0 {
			h.focus = h.windows[0]
		}
	}
}
