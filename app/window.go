// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"image"

	"imoverlay.org/f32"
	"imoverlay.org/io/key"
	"imoverlay.org/layout"
	"imoverlay.org/op"
	"imoverlay.org/unit"
)

// Option configures a window.
type Option func(unit.Metric, *Config)

// Config describes a window.
type Config struct {
	Title string
	// Pos is the top left of the window in desktop pixels.
	Pos image.Point
	// Size is the window size in pixels.
	Size image.Point
}

// Window is a host window painting one content widget.
type Window struct {
	host    *Host
	cnf     Config
	content Widget
	ops     op.Ops
	layer   int

	destroyed bool
	onDestroy []func()
}

// Title sets the title of the window.
func Title(t string) Option {
	return func(_ unit.Metric, cnf *Config) {
		cnf.Title = t
	}
}

// Size sets the size of the window.
func Size(w, h unit.Dp) Option {
	if w <= 0 {
		panic("width must be larger than 0")
	}
	if h <= 0 {
		panic("height must be larger than 0")
	}
	return func(m unit.Metric, cnf *Config) {
		cnf.Size = image.Point{
			X: m.Dp(w),
			Y: m.Dp(h),
		}
	}
}

// SizePx sets the size of the window in pixels.
func SizePx(size image.Point) Option {
	return func(_ unit.Metric, cnf *Config) {
		cnf.Size = size
	}
}

// Pos sets the desktop position of the window in pixels.
func Pos(p image.Point) Option {
	return func(_ unit.Metric, cnf *Config) {
		cnf.Pos = p
	}
}

func (c *Config) apply(m unit.Metric, options []Option) {
	for _, o := range options {
		o(m, c)
	}
}

// Config returns the window configuration.
func (w *Window) Config() Config {
	return w.cnf
}

// Option applies options to the window.
func (w *Window) Option(opts ...Option) {
	w.cnf.apply(w.host.metrics.Metric, opts)
}

// Content returns the content widget.
func (w *Window) Content() Widget {
	return w.content
}

// SetContent replaces the content widget.
func (w *Window) SetContent(content Widget) {
	w.content = content
}

// Bounds returns the window rectangle in desktop pixels.
func (w *Window) Bounds() image.Rectangle {
	return image.Rectangle{Min: w.cnf.Pos, Max: w.cnf.Pos.Add(w.cnf.Size)}
}

// Ops returns the draw elements of the last paint.
func (w *Window) Ops() *op.Ops {
	return &w.ops
}

// Layer returns the layer returned by the content widget in the last
// paint.
func (w *Window) Layer() int {
	return w.layer
}

// Paint repaints the window. The content widget paints in desktop
// coordinates.
func (w *Window) Paint() *op.Ops {
	w.ops.Reset()
	w.layer = 0
	if w.destroyed || w.content == nil || !visibilityOf(w.content).IsVisible() {
		return &w.ops
	}
	pos, size := f32.FPt(w.cnf.Pos), f32.FPt(w.cnf.Size)
	gtx := layout.Context{
		Geometry: layout.Geometry{
			Transform: f32.Affine2D{}.Offset(pos),
			Size:      size,
		},
		CullingRect:   f32.Rectangle{Min: pos, Max: pos.Add(size)},
		Ops:           &w.ops,
		Style:         layout.DefaultStyle(),
		ParentEnabled: true,
	}
	w.layer = w.content.Paint(gtx)
	return &w.ops
}

// DispatchChar delivers a character to the content widget if it
// accepts keyboard focus.
func (w *Window) DispatchChar(ev key.CharEvent) key.Reply {
	if w.destroyed || w.content == nil || !w.content.SupportsKeyboardFocus() {
		return key.Unhandled
	}
	return w.content.OnKeyChar(ev)
}

// OnDestroy registers f to run when the window is destroyed.
func (w *Window) OnDestroy(f func()) {
	w.onDestroy = append(w.onDestroy, f)
}

// Destroy removes the window from its host. Destroy is idempotent.
func (w *Window) Destroy() {
	if w.destroyed {
		return
	}
	w.destroyed = true
	w.host.remove(w)
	w.ops.Reset()
	for _, f := range w.onDestroy {
		f()
	}
	w.onDestroy = nil
	logger.Debugf("window %q destroyed", w.cnf.Title)
}

// Destroyed reports whether Destroy was called.
func (w *Window) Destroyed() bool {
	return w.destroyed
}
