// SPDX-License-Identifier: Unlicense OR MIT

package overlay

import (
	"fmt"
	"image/color"

	"imoverlay.org/f32"
	"imoverlay.org/imgui"
	"imoverlay.org/op"
	"imoverlay.org/op/clip"
	"imoverlay.org/op/paint"
	"imoverlay.org/texture"
)

// Paint adds the geometry of d to ops at layer and returns layer.
//
// Vertex positions are relative to d.DisplayPos; they are moved so
// that DisplayPos lands on the translation of t. Every draw command
// becomes one clip.Rect push, one paint.CustomVertsOp and one pop.
//
// The texture of a command is resolved to a brush: a
// *texture.Texture draws as a full color image while it is valid and
// as nothing after release; a *paint.Brush is used as is; nil and
// unknown handles draw without an image.
func (d *DrawData) Paint(t f32.Affine2D, ops *op.Ops, layer int) int {
	if !d.Valid {
		return layer
	}
	tr := f32.Affine2D{}.Offset(t.Translation().Sub(d.DisplayPos))
	var brush paint.Brush
	for i := range d.DrawLists {
		l := &d.DrawLists[i]
		verts := make([]paint.Vertex, len(l.VtxBuffer))
		for j, v := range l.VtxBuffer {
			verts[j] = paint.Vertex{
				Position:  tr.Transform(v.Pos),
				TexCoords: v.UV,
				Color:     convertColor(v.Col),
			}
		}
		indices := make([]paint.Index, len(l.IdxBuffer))
		for j, idx := range l.IdxBuffer {
			if idx > paint.MaxIndex {
				panic(fmt.Sprintf("overlay: vertex index %d out of range", idx))
			}
			indices[j] = paint.Index(idx)
		}
		for _, cmd := range l.CmdBuffer {
			resolveBrush(&brush, cmd.TextureID)
			stack := clip.Rect(tr.TransformRect(cmd.ClipRect)).Push(ops)
			paint.CustomVertsOp{
				Layer:    layer,
				Brush:    brush,
				Vertices: verts[cmd.VtxOffset:],
				Indices:  indices[cmd.IdxOffset : cmd.IdxOffset+cmd.ElemCount],
			}.Add(ops)
			stack.Pop()
		}
	}
	return layer
}

// resolveBrush updates b for drawing with the texture handle id.
func resolveBrush(b *paint.Brush, id imgui.TextureID) {
	switch tex := id.(type) {
	case *texture.Texture:
		if b.Resource == paint.Resource(tex) {
			return
		}
		if tex.IsValid() {
			*b = paint.Brush{
				Resource:  tex,
				ImageSize: f32.FPt(tex.Size()),
				ImageType: paint.ImageFullColor,
				DrawAs:    paint.DrawImage,
			}
		} else {
			*b = paint.Brush{Resource: tex}
		}
	case *paint.Brush:
		if tex == nil {
			*b = paint.NoImage()
			return
		}
		*b = *tex
	default:
		*b = paint.NoImage()
	}
}

// convertColor unpacks an imgui color. Both sides are
// non-premultiplied 8 bit per channel.
func convertColor(c uint32) color.NRGBA {
	r, g, b, a := imgui.UnpackColor(c)
	return color.NRGBA{R: r, G: g, B: b, A: a}
}
