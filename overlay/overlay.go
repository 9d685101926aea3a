// SPDX-License-Identifier: Unlicense OR MIT

/*
Package overlay presents imgui output inside host windows.

A Context manages one imgui context (and optionally an implot
context) for a Host: it runs imgui.NewFrame when a host frame begins
and imgui.Render when it ends, then hands the draw data of every
viewport to the Overlay bound to it. An Overlay is an app.Widget that
paints the last draw data it received as custom geometry and forwards
typed characters to imgui.

Contexts are shared by reference counting. NewContext returns a
context with one reference owned by the caller; every Overlay holds
one more. The context is destroyed when the last reference is
released:

	ctx, err := overlay.NewContext(host, config.Default())
	if err != nil {
		return err
	}
	ov := overlay.New(ctx)
	ctx.Release()
	win := host.NewWindow(ov)
	ctx.BindMainViewport(win, ov)
	...
	ov.Close() // destroys the context

Code calling imgui directly must make the context current first:

	defer ctx.Use().Restore()
	imgui.Begin("Hello")
	...

Nothing in this package is safe for concurrent use.
*/
package overlay

import (
	"imoverlay.org/app"
	"imoverlay.org/config"
	"imoverlay.org/f32"
	"imoverlay.org/imgui"
	"imoverlay.org/io/key"
	"imoverlay.org/layout"
)

// Overlay is a widget painting imgui draw data.
type Overlay struct {
	ctx      *Context
	drawData DrawData
	closed   bool
}

// New returns an overlay sharing ctx. A nil ctx creates a default
// context not attached to any host, owned by the overlay.
func New(ctx *Context) *Overlay {
	if ctx == nil {
		c, err := NewContext(nil, config.Default())
		if err != nil {
			panic(err)
		}
		return &Overlay{ctx: c}
	}
	return &Overlay{ctx: ctx.Acquire()}
}

// Close releases the overlay's context reference. Close is
// idempotent.
func (o *Overlay) Close() {
	if o.closed {
		return
	}
	o.closed = true
	o.drawData = DrawData{}
	if !o.ctx.destroyed {
		o.ctx.Release()
	}
}

// Closed reports whether Close was called.
func (o *Overlay) Closed() bool {
	return o.closed
}

// Context returns the context of o.
func (o *Overlay) Context() *Context {
	return o.ctx
}

// SetDrawData replaces the draw data painted by o with a snapshot of
// src, taking over the buffers of src's draw lists.
func (o *Overlay) SetDrawData(src *imgui.DrawData) {
	o.drawData = NewDrawData(src)
}

// DrawData returns the snapshot painted by o.
func (o *Overlay) DrawData() *DrawData {
	return &o.drawData
}

// Paint implements app.Widget.
func (o *Overlay) Paint(gtx layout.Context) int {
	return o.drawData.Paint(gtx.Geometry.Transform, gtx.Ops, gtx.Layer)
}

// DesiredSize implements app.Widget. Overlays take whatever space
// their parent gives them.
func (o *Overlay) DesiredSize() f32.Point {
	return f32.Point{}
}

// SupportsKeyboardFocus implements app.Widget.
func (o *Overlay) SupportsKeyboardFocus() bool {
	return true
}

// Visibility returns app.HitTestInvisible: overlays are painted but
// never hit tested.
func (o *Overlay) Visibility() app.Visibility {
	return app.HitTestInvisible
}

// OnKeyChar queues the character in imgui as its single byte
// Windows-1252 code. Characters outside that code page are truncated
// to their low byte. The event is handled if imgui wants keyboard
// input.
func (o *Overlay) OnKeyChar(ev key.CharEvent) key.Reply {
	if o.closed {
		return key.Unhandled
	}
	defer o.ctx.Use().Restore()
	io := imgui.GetIO()
	io.AddInputCharacter(uint32(ansiChar(ev.Char)))
	if io.WantCaptureKeyboard {
		return key.Handled
	}
	return key.Unhandled
}
