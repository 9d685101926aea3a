// SPDX-License-Identifier: Unlicense OR MIT

/*
Package raster implements a software rasterizer for window draw
elements.

It executes the clip and custom geometry operations painted into a
window and composites the triangles into an RGBA image. Triangles are
shaded with their interpolated vertex colors, multiplied by the brush
resource when the brush has one. Textures are sampled with the nearest
texel.
*/
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/exp/slices"
	"golang.org/x/image/vector"

	"imoverlay.org/f32"
	"imoverlay.org/internal/ops"
	"imoverlay.org/op"
	"imoverlay.org/op/paint"
)

// Rasterizer draws ops lists into images. The zero Rasterizer is
// ready to use.
type Rasterizer struct {
	reader ops.Reader
	vr     vector.Rasterizer

	scratch struct {
		clips []f32.Rectangle
		draws []drawCall
		mask  *image.Alpha
	}
}

type drawCall struct {
	clip f32.Rectangle
	op   paint.CustomVertsOp
}

// Frame draws the elements of frame into frameBuf. origin is the
// position of frameBuf's top left pixel in the coordinate space of
// frame; for a host window that is its desktop position. Elements are
// drawn in layer order; elements of the same layer keep their order
// in frame.
func (r *Rasterizer) Frame(frame *op.Ops, origin image.Point, frameBuf *image.RGBA) {
	if frame == nil {
		return
	}
	d := &r.reader
	d.Reset(frame)

	clips := r.scratch.clips[:0]
	draws := r.scratch.draws[:0]
	defer func() {
		r.scratch.clips = clips
		for i := range draws {
			draws[i] = drawCall{}
		}
		r.scratch.draws = draws[:0]
	}()
	off := f32.FPt(origin).Mul(-1)
	// Nothing outside the frame buffer is visible.
	clip := f32.Rectangle{Max: f32.FPt(frameBuf.Bounds().Size())}.Add(f32.FPt(frameBuf.Bounds().Min))
	for encOp, ok := d.Decode(); ok; encOp, ok = d.Decode() {
		switch encOp.Type() {
		case ops.TypeClip:
			clips = append(clips, clip)
			clip = clip.Intersect(ops.DecodeClip(encOp.Data).Add(off))
		case ops.TypePopClip:
			clip = clips[len(clips)-1]
			clips = clips[:len(clips)-1]
		case ops.TypeCustomVerts:
			if clip.Empty() {
				break
			}
			draws = append(draws, drawCall{
				clip: clip,
				op:   ops.DecodeCustomVerts(encOp.Data, encOp.Refs),
			})
		}
	}
	slices.SortStableFunc(draws, func(a, b drawCall) int {
		return a.op.Layer - b.op.Layer
	})
	for _, dc := range draws {
		r.drawVerts(frameBuf, dc, off)
	}
}

func (r *Rasterizer) drawVerts(dst *image.RGBA, dc drawCall, off f32.Point) {
	bounds := pixelBounds(dc.clip).Intersect(dst.Bounds())
	if bounds.Empty() {
		return
	}
	sh := shader{brush: dc.op.Brush}
	if res := dc.op.Brush.RenderingResource(); res != nil {
		sh.tex = res.Image()
		sh.texSize = res.Size()
	}
	verts, idx := dc.op.Vertices, dc.op.Indices
	for i := 0; i+2 < len(idx); i += 3 {
		var tri [3]paint.Vertex
		for j := range tri {
			tri[j] = verts[idx[i+j]]
			tri[j].Position = tri[j].Position.Add(off)
		}
		r.drawTriangle(dst, bounds, &sh, tri)
	}
}

// drawTriangle rasterizes tri into the coverage mask and shades every
// covered pixel within bounds.
func (r *Rasterizer) drawTriangle(dst *image.RGBA, bounds image.Rectangle, sh *shader, tri [3]paint.Vertex) {
	a, b, c := tri[0].Position, tri[1].Position, tri[2].Position
	area := (b.X-a.X)*(c.Y-a.Y) - (c.X-a.X)*(b.Y-a.Y)
	if area == 0 {
		return
	}
	tb := f32.Rectangle{
		Min: f32.Pt(min(a.X, b.X, c.X), min(a.Y, b.Y, c.Y)),
		Max: f32.Pt(max(a.X, b.X, c.X), max(a.Y, b.Y, c.Y)),
	}
	box := pixelBounds(tb).Intersect(bounds)
	if box.Empty() {
		return
	}
	w, h := box.Dx(), box.Dy()
	r.vr.Reset(w, h)
	r.vr.DrawOp = draw.Src
	o := f32.FPt(box.Min)
	r.vr.MoveTo(a.X-o.X, a.Y-o.Y)
	r.vr.LineTo(b.X-o.X, b.Y-o.Y)
	r.vr.LineTo(c.X-o.X, c.Y-o.Y)
	r.vr.ClosePath()
	mask := r.mask(w, h)
	r.vr.Draw(mask, mask.Rect, image.Opaque, image.Point{})

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cov := mask.Pix[y*mask.Stride+x]
			if cov == 0 {
				continue
			}
			p := f32.Pt(o.X+float32(x)+.5, o.Y+float32(y)+.5)
			w0 := ((b.X-p.X)*(c.Y-p.Y) - (c.X-p.X)*(b.Y-p.Y)) / area
			w1 := ((c.X-p.X)*(a.Y-p.Y) - (a.X-p.X)*(c.Y-p.Y)) / area
			bary := clampBary(w0, w1, 1-w0-w1)
			src := sh.shade(tri, bary)
			blend(dst, box.Min.X+x, box.Min.Y+y, src, cov)
		}
	}
}

func (r *Rasterizer) mask(w, h int) *image.Alpha {
	m := r.scratch.mask
	if m == nil || cap(m.Pix) < w*h {
		m = image.NewAlpha(image.Rect(0, 0, w, h))
		r.scratch.mask = m
		return m
	}
	m.Pix = m.Pix[:w*h]
	m.Stride = w
	m.Rect = image.Rect(0, 0, w, h)
	return m
}

type shader struct {
	brush   paint.Brush
	tex     image.Image
	texSize image.Point
}

// shade returns the non-premultiplied color at the barycentric
// coordinates bary of tri, with channels in [0, 1].
func (s *shader) shade(tri [3]paint.Vertex, bary [3]float32) [4]float32 {
	var col [4]float32
	var uv f32.Point
	for i, v := range tri {
		col[0] += bary[i] * float32(v.Color.R)
		col[1] += bary[i] * float32(v.Color.G)
		col[2] += bary[i] * float32(v.Color.B)
		col[3] += bary[i] * float32(v.Color.A)
		uv = uv.Add(v.TexCoords.Mul(bary[i]))
	}
	for i := range col {
		col[i] /= 255
	}
	if s.tex == nil {
		return col
	}
	texel := s.sample(uv)
	tint := s.brush.Tint
	if tint == (color.NRGBA{}) {
		tint = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	}
	col[0] *= float32(texel.R) / 255 * float32(tint.R) / 255
	col[1] *= float32(texel.G) / 255 * float32(tint.G) / 255
	col[2] *= float32(texel.B) / 255 * float32(tint.B) / 255
	col[3] *= float32(texel.A) / 255 * float32(tint.A) / 255
	return col
}

func (s *shader) sample(uv f32.Point) color.NRGBA {
	b := s.tex.Bounds()
	x := clampInt(int(math.Floor(float64(uv.X*float32(s.texSize.X)))), 0, b.Dx()-1)
	y := clampInt(int(math.Floor(float64(uv.Y*float32(s.texSize.Y)))), 0, b.Dy()-1)
	if rgba, ok := s.tex.(*image.RGBA); ok {
		c := rgba.RGBAAt(b.Min.X+x, b.Min.Y+y)
		return color.NRGBAModel.Convert(c).(color.NRGBA)
	}
	return color.NRGBAModel.Convert(s.tex.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
}

// blend composites src over the pixel (x, y) of dst, scaled by the
// coverage cov.
func blend(dst *image.RGBA, x, y int, src [4]float32, cov uint8) {
	a := src[3] * float32(cov) / 255
	if a <= 0 {
		return
	}
	i := dst.PixOffset(x, y)
	px := dst.Pix[i : i+4 : i+4]
	for c := 0; c < 3; c++ {
		px[c] = uint8(src[c]*a*255 + float32(px[c])*(1-a) + .5)
	}
	px[3] = uint8(a*255 + float32(px[3])*(1-a) + .5)
}

// clampBary clamps barycentric coordinates of pixels partially
// covered by a triangle edge to the triangle.
func clampBary(w0, w1, w2 float32) [3]float32 {
	w := [3]float32{max(w0, 0), max(w1, 0), max(w2, 0)}
	sum := w[0] + w[1] + w[2]
	if sum == 0 {
		return [3]float32{1, 0, 0}
	}
	for i := range w {
		w[i] /= sum
	}
	return w
}

// pixelBounds returns the pixels touched by r.
func pixelBounds(r f32.Rectangle) image.Rectangle {
	return image.Rect(
		int(math.Floor(float64(r.Min.X))),
		int(math.Floor(float64(r.Min.Y))),
		int(math.Ceil(float64(r.Max.X))),
		int(math.Ceil(float64(r.Max.Y))),
	)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
