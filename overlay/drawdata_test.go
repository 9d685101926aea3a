// SPDX-License-Identifier: Unlicense OR MIT

package overlay

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"imoverlay.org/f32"
	"imoverlay.org/imgui"
	"imoverlay.org/internal/ops"
	"imoverlay.org/op"
	"imoverlay.org/op/paint"
	"imoverlay.org/texture"
)

func TestNewDrawDataTakesBuffers(t *testing.T) {
	l := imgui.NewDrawList(nil)
	l.AddRectFilled(f32.Pt(0, 0), f32.Pt(10, 10), imgui.ColorU32(255, 0, 0, 255))
	l.AddRectFilled(f32.Pt(10, 0), f32.Pt(20, 10), imgui.ColorU32(0, 255, 0, 255))
	src := &imgui.DrawData{
		Valid:            true,
		TotalVtxCount:    len(l.VtxBuffer),
		TotalIdxCount:    len(l.IdxBuffer),
		CmdLists:         []*imgui.DrawList{l},
		DisplayPos:       f32.Pt(5, 6),
		DisplaySize:      f32.Pt(640, 480),
		FramebufferScale: f32.Pt(1, 1),
	}
	vtx := &l.VtxBuffer[0]

	d := NewDrawData(src)
	require.True(t, d.Valid)
	require.Len(t, d.DrawLists, 1)
	assert.Equal(t, 8, d.TotalVtxCount)
	assert.Equal(t, 12, d.TotalIdxCount)
	assert.Equal(t, f32.Pt(5, 6), d.DisplayPos)
	assert.Equal(t, f32.Pt(640, 480), d.DisplaySize)
	assert.Len(t, d.DrawLists[0].VtxBuffer, 8)
	assert.Same(t, vtx, &d.DrawLists[0].VtxBuffer[0], "vertices were copied")
	assert.Empty(t, l.VtxBuffer)
	assert.Empty(t, l.IdxBuffer)
	assert.Empty(t, l.CmdBuffer)

	// The emptied list is ready for the next frame.
	l.Reset(f32.Rect(0, 0, 100, 100))
	l.AddRectFilled(f32.Pt(0, 0), f32.Pt(1, 1), imgui.ColorU32(0, 0, 255, 255))
	assert.Len(t, l.VtxBuffer, 4)
	assert.Len(t, d.DrawLists[0].VtxBuffer, 8)
}

func TestDrawListsKeepOrder(t *testing.T) {
	src := &imgui.DrawData{Valid: true}
	var firsts []*imgui.DrawVert
	for i := 0; i < 3; i++ {
		l := imgui.NewDrawList(nil)
		x := float32(9 + i)
		l.AddRectFilled(f32.Pt(x, 9), f32.Pt(x+1, 10), imgui.ColorU32(uint8(i), 0, 0, 255))
		l.AddRectFilled(f32.Pt(x, 20), f32.Pt(x+1, 21), imgui.ColorU32(uint8(i), 0, 0, 255))
		src.CmdLists = append(src.CmdLists, l)
		src.TotalVtxCount += len(l.VtxBuffer)
		src.TotalIdxCount += len(l.IdxBuffer)
		firsts = append(firsts, &l.VtxBuffer[0])
	}

	d := NewDrawData(src)
	require.Len(t, d.DrawLists, 3)
	for i, l := range d.DrawLists {
		assert.Same(t, firsts[i], &l.VtxBuffer[0], "draw list %d", i)
		assert.Equal(t, f32.Pt(float32(9+i), 9), l.VtxBuffer[0].Pos)
	}

	var o op.Ops
	d.Paint(f32.Affine2D{}, &o, 0)
	var got []f32.Point
	for _, e := range decodeAll(t, &o) {
		if e.Type() == ops.TypeCustomVerts {
			cv := ops.DecodeCustomVerts(e.Data, e.Refs)
			got = append(got, cv.Vertices[0].Position)
			assert.Equal(t, uint8(len(got)-1), cv.Vertices[0].Color.R)
		}
	}
	assert.Equal(t, []f32.Point{f32.Pt(9, 9), f32.Pt(10, 9), f32.Pt(11, 9)}, got)
}

func TestNewDrawDataNil(t *testing.T) {
	d := NewDrawData(nil)
	assert.False(t, d.Valid)
	var o op.Ops
	assert.Equal(t, 3, d.Paint(f32.Affine2D{}, &o, 3))
	assert.Empty(t, o.Data())
}

func TestPaintInvalid(t *testing.T) {
	d := DrawData{DrawLists: []DrawList{testDrawList(nil)}}
	var o op.Ops
	d.Paint(f32.Affine2D{}, &o, 0)
	assert.Empty(t, o.Data())
}

func testDrawList(tex imgui.TextureID) DrawList {
	return DrawList{
		VtxBuffer: []imgui.DrawVert{
			{Pos: f32.Pt(10, 20), UV: f32.Pt(0, 0), Col: imgui.ColorU32(1, 2, 3, 4)},
			{Pos: f32.Pt(20, 20), UV: f32.Pt(1, 0), Col: imgui.ColorU32(255, 255, 255, 255)},
			{Pos: f32.Pt(20, 30), UV: f32.Pt(1, 1), Col: imgui.ColorU32(255, 255, 255, 255)},
			{Pos: f32.Pt(10, 30), UV: f32.Pt(0, 1), Col: imgui.ColorU32(255, 255, 255, 128)},
		},
		IdxBuffer: []imgui.DrawIdx{0, 1, 2, 0, 1, 2},
		CmdBuffer: []imgui.DrawCmd{
			{ClipRect: f32.Rect(10, 20, 30, 40), TextureID: tex, ElemCount: 3},
			{ClipRect: f32.Rect(10, 20, 15, 25), VtxOffset: 1, IdxOffset: 3, ElemCount: 3},
		},
	}
}

// decodeAll returns the ops of o.
func decodeAll(t *testing.T, o *op.Ops) []ops.EncodedOp {
	t.Helper()
	var r ops.Reader
	r.Reset(o)
	var all []ops.EncodedOp
	for {
		e, ok := r.Decode()
		if !ok {
			return all
		}
		all = append(all, e)
	}
}

func TestPaintCommands(t *testing.T) {
	tex := texture.New("t", image.NewRGBA(image.Rect(0, 0, 4, 2)))
	d := DrawData{
		Valid:      true,
		DisplayPos: f32.Pt(10, 20),
		DrawLists:  []DrawList{testDrawList(tex)},
	}
	var o op.Ops
	layer := d.Paint(f32.Affine2D{}.Offset(f32.Pt(100, 200)), &o, 5)
	assert.Equal(t, 5, layer)

	all := decodeAll(t, &o)
	require.Len(t, all, 6)
	types := make([]string, len(all))
	for i, e := range all {
		types[i] = e.Type().String()
	}
	assert.Equal(t, []string{"Clip", "CustomVerts", "PopClip", "Clip", "CustomVerts", "PopClip"}, types)

	assert.Equal(t, f32.Rect(100, 200, 120, 220), ops.DecodeClip(all[0].Data))
	assert.Equal(t, f32.Rect(100, 200, 105, 205), ops.DecodeClip(all[3].Data))

	first := ops.DecodeCustomVerts(all[1].Data, all[1].Refs)
	assert.Equal(t, 5, first.Layer)
	require.Len(t, first.Vertices, 4)
	assert.Equal(t, f32.Pt(100, 200), first.Vertices[0].Position)
	assert.Equal(t, f32.Pt(110, 210), first.Vertices[2].Position)
	assert.Equal(t, f32.Pt(1, 1), first.Vertices[2].TexCoords)
	assert.Equal(t, color.NRGBA{R: 1, G: 2, B: 3, A: 4}, first.Vertices[0].Color)
	assert.Equal(t, []paint.Index{0, 1, 2}, first.Indices)
	assert.Equal(t, paint.Brush{
		Resource:  tex,
		ImageSize: f32.Pt(4, 2),
		ImageType: paint.ImageFullColor,
		DrawAs:    paint.DrawImage,
	}, first.Brush)

	second := ops.DecodeCustomVerts(all[4].Data, all[4].Refs)
	require.Len(t, second.Vertices, 3)
	assert.Equal(t, f32.Pt(110, 200), second.Vertices[0].Position, "vertices start at VtxOffset")
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 128}, second.Vertices[2].Color)
	assert.Equal(t, []paint.Index{0, 1, 2}, second.Indices)
	assert.Equal(t, paint.NoImage(), second.Brush)
}

func TestPaintIndexOutOfRange(t *testing.T) {
	l := testDrawList(nil)
	l.IdxBuffer[4] = paint.MaxIndex + 1
	d := DrawData{Valid: true, DrawLists: []DrawList{l}}
	var o op.Ops
	assert.PanicsWithValue(t, "overlay: vertex index 65536 out of range", func() {
		d.Paint(f32.Affine2D{}, &o, 0)
	})
}

func TestResolveBrush(t *testing.T) {
	tex := texture.New("t", image.NewRGBA(image.Rect(0, 0, 8, 8)))

	var b paint.Brush
	resolveBrush(&b, tex)
	assert.Equal(t, paint.DrawImage, b.DrawAs)
	assert.Equal(t, f32.Pt(8, 8), b.ImageSize)

	// The same texture leaves the brush untouched.
	b.Tint = color.NRGBA{R: 9}
	resolveBrush(&b, tex)
	assert.Equal(t, color.NRGBA{R: 9}, b.Tint)

	released := texture.New("released", image.NewRGBA(image.Rect(0, 0, 8, 8)))
	released.Release()
	resolveBrush(&b, released)
	assert.Equal(t, paint.Brush{Resource: released}, b)
	assert.Nil(t, b.RenderingResource())

	custom := &paint.Brush{Resource: tex, ImageType: paint.ImageLinear, DrawAs: paint.DrawBox, Tint: color.NRGBA{A: 7}}
	resolveBrush(&b, custom)
	assert.Equal(t, *custom, b)
	custom.DrawAs = paint.DrawBorder
	assert.Equal(t, paint.DrawBox, b.DrawAs, "brush was not copied")

	resolveBrush(&b, (*paint.Brush)(nil))
	assert.Equal(t, paint.NoImage(), b)

	resolveBrush(&b, tex)
	resolveBrush(&b, "unknown")
	assert.Equal(t, paint.NoImage(), b)
	resolveBrush(&b, nil)
	assert.Equal(t, paint.NoImage(), b)
}
