// SPDX-License-Identifier: Unlicense OR MIT

// Package layout carries the arguments of the host paint pass.
package layout

import (
	"image/color"

	"imoverlay.org/f32"
	"imoverlay.org/op"
)

// Geometry locates a widget within its window.
type Geometry struct {
	// Transform maps widget-local coordinates to window coordinates.
	// It accumulates the transforms of every enclosing widget.
	Transform f32.Affine2D
	// Size is the local size allotted to the widget.
	Size f32.Point
}

// Style is the inherited widget style.
type Style struct {
	// Opacity multiplies the alpha of everything the widget draws.
	Opacity float32
	// Foreground is the inherited foreground color.
	Foreground color.NRGBA
}

// Context carries the state needed to paint a widget.
type Context struct {
	Geometry Geometry
	// CullingRect is the window-space area that may be visible.
	CullingRect f32.Rectangle
	// Ops receives the draw elements.
	Ops *op.Ops
	// Layer is the first layer the widget may draw to.
	Layer int
	Style Style
	// ParentEnabled reports whether the enclosing widget accepts input.
	ParentEnabled bool
}

// Bounds returns the window-space bounds of g.
func (g Geometry) Bounds() f32.Rectangle {
	return g.Transform.TransformRect(f32.Rectangle{Max: g.Size})
}

// Child returns the geometry of a child widget placed at offset with
// the given size.
func (g Geometry) Child(offset, size f32.Point) Geometry {
	return Geometry{
		Transform: g.Transform.Mul(f32.Affine2D{}.Offset(offset)),
		Size:      size,
	}
}

// DefaultStyle returns an opaque style with a white foreground.
func DefaultStyle() Style {
	return Style{
		Opacity:    1,
		Foreground: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	}
}
