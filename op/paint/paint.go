// SPDX-License-Identifier: Unlicense OR MIT

// Package paint provides brushes and the custom geometry operation
// widgets use to draw.
package paint

import (
	"encoding/binary"
	"image"
	"image/color"

	"imoverlay.org/f32"
	"imoverlay.org/internal/opconst"
	"imoverlay.org/op"
)

// Index is a vertex index of custom geometry.
type Index uint16

// MaxIndex is the largest representable Index.
const MaxIndex = 1<<16 - 1

// ImageType describes the pixel data a Brush samples.
type ImageType uint8

// DrawType describes how a Brush fills a primitive.
type DrawType uint8

const (
	// ImageNone is the image type of a brush without a resource.
	ImageNone ImageType = iota
	// ImageFullColor is for brushes sampling an RGBA resource.
	ImageFullColor
	// ImageLinear is for brushes sampling a linear color resource.
	ImageLinear
)

const (
	// DrawNone draws nothing from the brush resource.
	DrawNone DrawType = iota
	// DrawBox draws the resource as a nine-slice box.
	DrawBox
	// DrawBorder draws the resource as a nine-slice border.
	DrawBorder
	// DrawImage draws the resource as an image.
	DrawImage
)

// Resource is a texture a Brush samples from.
type Resource interface {
	// Size returns the dimensions of the texture in pixels.
	Size() image.Point
	// Image returns the texture pixels, or nil if the resource
	// has no pixels to sample.
	Image() image.Image
}

// Brush describes how drawn geometry is filled.
// The zero Brush has no resource and draws nothing from it.
type Brush struct {
	Resource  Resource
	ImageSize f32.Point
	ImageType ImageType
	DrawAs    DrawType
	// Tint multiplies the sampled resource. The zero value
	// means opaque white.
	Tint color.NRGBA
}

// Vertex is a vertex of custom geometry.
type Vertex struct {
	Position  f32.Point
	TexCoords f32.Point
	Color     color.NRGBA
}

// CustomVertsOp draws indexed triangles with the current clip zone.
type CustomVertsOp struct {
	// Layer orders the operation relative to operations in other
	// layers. Within a layer, later operations paint over earlier ones.
	Layer    int
	Brush    Brush
	Vertices []Vertex
	Indices  []Index
}

// NoImage returns a brush without a resource.
func NoImage() Brush {
	return Brush{}
}

// RenderingResource returns the resource the brush draws with, or nil
// if the brush draws nothing from its resource.
func (b Brush) RenderingResource() Resource {
	if b.DrawAs == DrawNone || b.ImageType == ImageNone {
		return nil
	}
	return b.Resource
}

func (c CustomVertsOp) Add(o *op.Ops) {
	data := o.Write(opconst.TypeCustomVertsLen, c.Brush, c.Vertices, c.Indices)
	data[0] = byte(opconst.TypeCustomVerts)
	bo := binary.LittleEndian
	bo.PutUint32(data[1:], uint32(int32(c.Layer)))
}
