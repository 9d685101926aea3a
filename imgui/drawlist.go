// SPDX-License-Identifier: Unlicense OR MIT

package imgui

import (
	"math"

	"imoverlay.org/f32"
)

// maxVtxPerCmd is the number of vertices addressable by 16-bit
// indices relative to a command's VtxOffset.
const maxVtxPerCmd = 1 << 16

// DrawList accumulates the geometry of one window for one frame.
//
// Geometry is batched into commands; a new command starts whenever
// the clip rectangle or texture changes, or when the vertices of the
// current command would overflow 16-bit indices.
type DrawList struct {
	CmdBuffer []DrawCmd
	IdxBuffer []DrawIdx
	VtxBuffer []DrawVert
	Flags     DrawListFlags

	atlas         *FontAtlas
	clipStack     []f32.Rectangle
	textureStack  []TextureID
	vtxOffset     uint32
	vtxCurrentIdx uint32
}

// NewDrawList returns an empty list drawing text with atlas.
func NewDrawList(atlas *FontAtlas) *DrawList {
	l := &DrawList{atlas: atlas}
	l.Reset(f32.Rect(-8192, -8192, 8192, 8192))
	return l
}

// Reset clears the list for a new frame with fullClip as the
// outermost clip rectangle.
func (l *DrawList) Reset(fullClip f32.Rectangle) {
	l.CmdBuffer = l.CmdBuffer[:0]
	l.IdxBuffer = l.IdxBuffer[:0]
	l.VtxBuffer = l.VtxBuffer[:0]
	l.Flags = DrawListFlagsAntiAliasedLines | DrawListFlagsAntiAliasedFill | DrawListFlagsAllowVtxOffset
	l.clipStack = append(l.clipStack[:0], fullClip)
	var tex TextureID
	if l.atlas != nil {
		tex = l.atlas.TexID
	}
	l.textureStack = append(l.textureStack[:0], tex)
	l.vtxOffset = 0
	l.vtxCurrentIdx = 0
	l.addDrawCmd()
}

// PushClipRect restricts subsequent drawing to the rectangle
// [min, max), intersected with the current clip rectangle when
// intersect is set.
func (l *DrawList) PushClipRect(min, max f32.Point, intersect bool) {
	r := f32.Rectangle{Min: min, Max: max}
	if intersect {
		r = r.Intersect(l.currentClip())
	}
	l.clipStack = append(l.clipStack, r)
	l.onChangedState()
}

// PopClipRect restores the clip rectangle in effect before the
// matching PushClipRect.
func (l *DrawList) PopClipRect() {
	if len(l.clipStack) <= 1 {
		panic("imgui: PopClipRect without PushClipRect")
	}
	l.clipStack = l.clipStack[:len(l.clipStack)-1]
	l.onChangedState()
}

// PushTextureID makes subsequent geometry sample tex. Texture handles
// must be comparable.
func (l *DrawList) PushTextureID(tex TextureID) {
	l.textureStack = append(l.textureStack, tex)
	l.onChangedState()
}

// PopTextureID restores the texture in effect before the matching
// PushTextureID.
func (l *DrawList) PopTextureID() {
	if len(l.textureStack) <= 1 {
		panic("imgui: PopTextureID without PushTextureID")
	}
	l.textureStack = l.textureStack[:len(l.textureStack)-1]
	l.onChangedState()
}

// ClipRect returns the current clip rectangle.
func (l *DrawList) ClipRect() f32.Rectangle {
	return l.currentClip()
}

// AddRectFilled adds a solid rectangle.
func (l *DrawList) AddRectFilled(min, max f32.Point, col uint32) {
	if col>>24 == 0 {
		return
	}
	uv := l.whiteUV()
	l.primReserve(6, 4)
	l.primRectUV(min, max, uv, uv, col)
}

// AddRect adds a rectangle outline of the given thickness, drawn
// inside [min, max).
func (l *DrawList) AddRect(min, max f32.Point, col uint32, thickness float32) {
	if col>>24 == 0 || thickness <= 0 {
		return
	}
	t := thickness
	l.AddRectFilled(min, f32.Pt(max.X, min.Y+t), col)
	l.AddRectFilled(f32.Pt(min.X, max.Y-t), max, col)
	l.AddRectFilled(f32.Pt(min.X, min.Y+t), f32.Pt(min.X+t, max.Y-t), col)
	l.AddRectFilled(f32.Pt(max.X-t, min.Y+t), f32.Pt(max.X, max.Y-t), col)
}

// AddTriangleFilled adds a solid triangle.
func (l *DrawList) AddTriangleFilled(a, b, c f32.Point, col uint32) {
	if col>>24 == 0 {
		return
	}
	uv := l.whiteUV()
	l.primReserve(3, 3)
	base := l.vtxCurrentIdx
	l.VtxBuffer = append(l.VtxBuffer,
		DrawVert{Pos: a, UV: uv, Col: col},
		DrawVert{Pos: b, UV: uv, Col: col},
		DrawVert{Pos: c, UV: uv, Col: col},
	)
	l.IdxBuffer = append(l.IdxBuffer, DrawIdx(base), DrawIdx(base+1), DrawIdx(base+2))
	l.vtxCurrentIdx += 3
}

// AddLine adds a line segment of the given thickness.
func (l *DrawList) AddLine(a, b f32.Point, col uint32, thickness float32) {
	if col>>24 == 0 {
		return
	}
	d := b.Sub(a)
	n := normalize(f32.Pt(-d.Y, d.X)).Mul(thickness * .5)
	uv := l.whiteUV()
	l.primReserve(6, 4)
	base := l.vtxCurrentIdx
	l.VtxBuffer = append(l.VtxBuffer,
		DrawVert{Pos: a.Add(n), UV: uv, Col: col},
		DrawVert{Pos: b.Add(n), UV: uv, Col: col},
		DrawVert{Pos: b.Sub(n), UV: uv, Col: col},
		DrawVert{Pos: a.Sub(n), UV: uv, Col: col},
	)
	l.appendQuadIndices(base)
	l.vtxCurrentIdx += 4
}

// AddPolyline adds connected line segments through points.
func (l *DrawList) AddPolyline(points []f32.Point, col uint32, thickness float32) {
	for i := 1; i < len(points); i++ {
		l.AddLine(points[i-1], points[i], col, thickness)
	}
}

// AddImage adds a rectangle sampling tex between uvMin and uvMax.
func (l *DrawList) AddImage(tex TextureID, min, max, uvMin, uvMax f32.Point, col uint32) {
	if col>>24 == 0 {
		return
	}
	pushed := tex != l.currentTexture()
	if pushed {
		l.PushTextureID(tex)
	}
	l.primReserve(6, 4)
	l.primRectUV(min, max, uvMin, uvMax, col)
	if pushed {
		l.PopTextureID()
	}
}

// AddText adds text with its top left corner at pos. Newlines start a
// new line.
func (l *DrawList) AddText(pos f32.Point, col uint32, text string) {
	if col>>24 == 0 || text == "" || l.atlas == nil {
		return
	}
	pen := pos
	for _, r := range text {
		if r == '\n' {
			pen = f32.Pt(pos.X, pen.Y+l.atlas.LineHeight)
			continue
		}
		g := l.atlas.Glyph(r)
		if g.Visible {
			l.primReserve(6, 4)
			l.primRectUV(
				pen.Add(f32.Pt(g.X0, g.Y0)), pen.Add(f32.Pt(g.X1, g.Y1)),
				f32.Pt(g.U0, g.V0), f32.Pt(g.U1, g.V1),
				col,
			)
		}
		pen.X += g.AdvanceX
	}
}

// finish drops trailing commands without elements.
func (l *DrawList) finish() {
	for len(l.CmdBuffer) > 0 && l.CmdBuffer[len(l.CmdBuffer)-1].ElemCount == 0 {
		l.CmdBuffer = l.CmdBuffer[:len(l.CmdBuffer)-1]
	}
}

func (l *DrawList) currentClip() f32.Rectangle {
	return l.clipStack[len(l.clipStack)-1]
}

func (l *DrawList) currentTexture() TextureID {
	return l.textureStack[len(l.textureStack)-1]
}

func (l *DrawList) whiteUV() f32.Point {
	if l.atlas == nil {
		return f32.Point{}
	}
	return l.atlas.TexUvWhitePixel
}

func (l *DrawList) addDrawCmd() {
	l.CmdBuffer = append(l.CmdBuffer, DrawCmd{
		ClipRect:  l.currentClip(),
		TextureID: l.currentTexture(),
		VtxOffset: l.vtxOffset,
		IdxOffset: uint32(len(l.IdxBuffer)),
	})
}

// onChangedState starts a new command if the current one already
// holds elements, or retargets it otherwise.
func (l *DrawList) onChangedState() {
	cmd := &l.CmdBuffer[len(l.CmdBuffer)-1]
	if cmd.ElemCount != 0 {
		if cmd.ClipRect == l.currentClip() && cmd.TextureID == l.currentTexture() {
			return
		}
		l.addDrawCmd()
		return
	}
	cmd.ClipRect = l.currentClip()
	cmd.TextureID = l.currentTexture()
}

// primReserve accounts idxCount indices to the current command,
// starting a new command with a fresh VtxOffset if vtxCount vertices
// would not be addressable.
func (l *DrawList) primReserve(idxCount, vtxCount int) {
	if l.vtxCurrentIdx+uint32(vtxCount) > maxVtxPerCmd {
		l.vtxOffset = uint32(len(l.VtxBuffer))
		l.vtxCurrentIdx = 0
		cmd := &l.CmdBuffer[len(l.CmdBuffer)-1]
		if cmd.ElemCount != 0 {
			l.addDrawCmd()
		} else {
			cmd.VtxOffset = l.vtxOffset
		}
	}
	l.CmdBuffer[len(l.CmdBuffer)-1].ElemCount += uint32(idxCount)
}

func (l *DrawList) primRectUV(a, c, uvA, uvC f32.Point, col uint32) {
	base := l.vtxCurrentIdx
	l.VtxBuffer = append(l.VtxBuffer,
		DrawVert{Pos: a, UV: uvA, Col: col},
		DrawVert{Pos: f32.Pt(c.X, a.Y), UV: f32.Pt(uvC.X, uvA.Y), Col: col},
		DrawVert{Pos: c, UV: uvC, Col: col},
		DrawVert{Pos: f32.Pt(a.X, c.Y), UV: f32.Pt(uvA.X, uvC.Y), Col: col},
	)
	l.appendQuadIndices(base)
	l.vtxCurrentIdx += 4
}

func (l *DrawList) appendQuadIndices(base uint32) {
	l.IdxBuffer = append(l.IdxBuffer,
		DrawIdx(base), DrawIdx(base+1), DrawIdx(base+2),
		DrawIdx(base), DrawIdx(base+2), DrawIdx(base+3),
	)
}

func normalize(p f32.Point) f32.Point {
	l := float32(math.Hypot(float64(p.X), float64(p.Y)))
	if l == 0 {
		return p
	}
	return p.Mul(1 / l)
}
