// SPDX-License-Identifier: Unlicense OR MIT

// Package implot draws plots into imgui windows.
//
// Like imgui, implot keeps its state in a process-wide current
// context. A plot context is linked to the imgui context it draws
// with.
package implot

import (
	"imoverlay.org/f32"
	"imoverlay.org/imgui"
	"imoverlay.org/internal/log"
)

var logger = log.New("implot")

var current *Context

// Context holds plot state.
type Context struct {
	imgui *imgui.Context
	// Plot height used by PlotLines.
	Height float32
	plots  int
}

// CreateContext creates a plot context. The first context created
// becomes current.
func CreateContext() *Context {
	ctx := &Context{Height: 80}
	if current == nil {
		current = ctx
	}
	logger.Debugf("created context %p", ctx)
	return ctx
}

// DestroyContext destroys ctx, or the current context if ctx is nil.
func DestroyContext(ctx *Context) {
	if ctx == nil {
		ctx = current
	}
	if ctx == nil {
		return
	}
	if current == ctx {
		current = nil
	}
	ctx.imgui = nil
	logger.Debugf("destroyed context %p", ctx)
}

// CurrentContext returns the current plot context, or nil.
func CurrentContext() *Context {
	return current
}

// SetCurrentContext makes ctx current.
func SetCurrentContext(ctx *Context) {
	current = ctx
}

// SetImGuiContext links the current plot context to ctx.
func SetImGuiContext(ctx *imgui.Context) {
	mustCurrent().imgui = ctx
}

// ImGuiContext returns the imgui context linked to ctx.
func (ctx *Context) ImGuiContext() *imgui.Context {
	return ctx.imgui
}

// PlotCount returns the number of plots drawn with ctx.
func (ctx *Context) PlotCount() int {
	return ctx.plots
}

// PlotLines draws values as a line plot filling the available width
// of the current imgui window, scaled to the value range.
func PlotLines(label string, values []float32) {
	ctx := mustCurrent()
	if ctx.imgui != nil && imgui.CurrentContext() != ctx.imgui {
		panic("implot: current imgui context differs from the linked one")
	}
	style := imgui.GetStyle()
	pos := imgui.GetCursorScreenPos()
	avail := imgui.GetContentRegionAvail()
	size := f32.Pt(max(avail.X, 1), ctx.Height)
	l := imgui.GetWindowDrawList()
	l.AddRectFilled(pos, pos.Add(size), style.Colors[imgui.ColFrameBg])
	l.AddText(pos.Add(style.FramePadding), style.Colors[imgui.ColText], label)
	if len(values) >= 2 {
		lo, hi := values[0], values[0]
		for _, v := range values[1:] {
			lo, hi = min(lo, v), max(hi, v)
		}
		span := hi - lo
		if span == 0 {
			span = 1
		}
		step := size.X / float32(len(values)-1)
		pts := make([]f32.Point, len(values))
		for i, v := range values {
			y := (v - lo) / span
			pts[i] = f32.Pt(pos.X+float32(i)*step, pos.Y+size.Y-y*size.Y)
		}
		l.PushClipRect(pos, pos.Add(size), true)
		l.AddPolyline(pts, style.Colors[imgui.ColPlotLines], 1)
		l.PopClipRect()
	}
	imgui.Dummy(size)
	ctx.plots++
}

func mustCurrent() *Context {
	if current == nil {
		panic("implot: no current context")
	}
	return current
}
