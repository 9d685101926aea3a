// SPDX-License-Identifier: Unlicense OR MIT

package raster

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"imoverlay.org/f32"
	"imoverlay.org/op"
	"imoverlay.org/op/clip"
	"imoverlay.org/op/paint"
	"imoverlay.org/texture"
)

var (
	red   = color.NRGBA{R: 0xff, A: 0xff}
	green = color.NRGBA{G: 0xff, A: 0xff}
	blue  = color.NRGBA{B: 0xff, A: 0xff}
	white = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// quad adds a rectangle with corners min and max and uniform color col.
func quad(o *op.Ops, layer int, brush paint.Brush, min, max f32.Point, col color.NRGBA) {
	paint.CustomVertsOp{
		Layer: layer,
		Brush: brush,
		Vertices: []paint.Vertex{
			{Position: min, TexCoords: f32.Pt(0, 0), Color: col},
			{Position: f32.Pt(max.X, min.Y), TexCoords: f32.Pt(1, 0), Color: col},
			{Position: max, TexCoords: f32.Pt(1, 1), Color: col},
			{Position: f32.Pt(min.X, max.Y), TexCoords: f32.Pt(0, 1), Color: col},
		},
		Indices: []paint.Index{0, 1, 2, 0, 2, 3},
	}.Add(o)
}

func assertPixel(t *testing.T, img *image.RGBA, x, y int, want color.NRGBA) {
	t.Helper()
	got := color.NRGBAModel.Convert(img.RGBAAt(x, y)).(color.NRGBA)
	const tolerance = 3
	have := [4]uint8{got.R, got.G, got.B, got.A}
	exp := [4]uint8{want.R, want.G, want.B, want.A}
	for i := range have {
		assert.InDelta(t, exp[i], have[i], tolerance, "pixel (%d,%d): have %v, want %v", x, y, got, want)
	}
}

func TestFrameClip(t *testing.T) {
	var o op.Ops
	stack := clip.Rect(f32.Rect(0, 0, 5, 10)).Push(&o)
	quad(&o, 0, paint.NoImage(), f32.Pt(0, 0), f32.Pt(10, 10), red)
	stack.Pop()
	quad(&o, 0, paint.NoImage(), f32.Pt(10, 0), f32.Pt(20, 10), green)

	img := image.NewRGBA(image.Rect(0, 0, 20, 10))
	var r Rasterizer
	r.Frame(&o, image.Point{}, img)
	assertPixel(t, img, 2, 6, red)
	assertPixel(t, img, 7, 6, color.NRGBA{})
	assertPixel(t, img, 15, 2, green)
}

func TestFrameLayers(t *testing.T) {
	var o op.Ops
	quad(&o, 1, paint.NoImage(), f32.Pt(0, 0), f32.Pt(10, 10), blue)
	quad(&o, 0, paint.NoImage(), f32.Pt(0, 0), f32.Pt(10, 10), green)
	quad(&o, 1, paint.NoImage(), f32.Pt(5, 0), f32.Pt(10, 10), red)

	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	var r Rasterizer
	r.Frame(&o, image.Point{}, img)
	assertPixel(t, img, 2, 6, blue)
	assertPixel(t, img, 7, 2, red)
}

func TestFrameOrigin(t *testing.T) {
	var o op.Ops
	quad(&o, 0, paint.NoImage(), f32.Pt(100, 200), f32.Pt(110, 210), red)

	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	var r Rasterizer
	r.Frame(&o, image.Pt(100, 200), img)
	assertPixel(t, img, 2, 6, red)
	assertPixel(t, img, 15, 15, color.NRGBA{})
}

func TestFrameBlend(t *testing.T) {
	var o op.Ops
	quad(&o, 0, paint.NoImage(), f32.Pt(0, 0), f32.Pt(10, 10), white)
	quad(&o, 0, paint.NoImage(), f32.Pt(0, 0), f32.Pt(10, 10), color.NRGBA{A: 0x80})

	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	var r Rasterizer
	r.Frame(&o, image.Point{}, img)
	assertPixel(t, img, 2, 6, color.NRGBA{R: 0x7f, G: 0x7f, B: 0x7f, A: 0xff})
}

func TestFrameTexture(t *testing.T) {
	pix := image.NewRGBA(image.Rect(0, 0, 2, 1))
	pix.SetRGBA(0, 0, color.RGBA{R: 0xff, A: 0xff})
	pix.SetRGBA(1, 0, color.RGBA{B: 0xff, A: 0xff})
	tex := texture.New("tex", pix)
	brush := paint.Brush{
		Resource:  tex,
		ImageSize: f32.Pt(2, 1),
		ImageType: paint.ImageFullColor,
		DrawAs:    paint.DrawImage,
	}

	var o op.Ops
	quad(&o, 0, brush, f32.Pt(0, 0), f32.Pt(10, 10), white)
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	var r Rasterizer
	r.Frame(&o, image.Point{}, img)
	assertPixel(t, img, 2, 6, red)
	assertPixel(t, img, 7, 2, blue)

	// A brush without a draw type ignores its resource.
	o.Reset()
	quad(&o, 0, paint.Brush{Resource: tex}, f32.Pt(0, 0), f32.Pt(10, 10), green)
	r.Frame(&o, image.Point{}, img)
	assertPixel(t, img, 2, 6, green)
	assertPixel(t, img, 7, 2, green)
}

func TestFrameNil(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	var r Rasterizer
	r.Frame(nil, image.Point{}, img)
	assertPixel(t, img, 1, 1, color.NRGBA{})
}
