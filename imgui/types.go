// SPDX-License-Identifier: Unlicense OR MIT

package imgui

import (
	"hash/crc32"

	"imoverlay.org/f32"
)

// ID identifies windows, widgets and viewports. IDs are hashes of
// labels, seeded by the enclosing window.
type ID uint32

// TextureID is an opaque texture handle carried through draw commands
// to the renderer. The library never inspects it.
type TextureID interface{}

// DrawIdx is a vertex index. Indices of a command are relative to the
// command's VtxOffset, so they stay below 1<<16 even though the type
// is wider.
type DrawIdx uint32

// DrawVert is one vertex of the draw lists.
type DrawVert struct {
	Pos f32.Point
	UV  f32.Point
	// Col is a packed, non-premultiplied RGBA8 color with red in
	// the lowest byte.
	Col uint32
}

// DrawCmd draws ElemCount indices starting at IdxOffset, indexing
// vertices relative to VtxOffset, restricted to ClipRect and sampling
// TextureID.
type DrawCmd struct {
	ClipRect  f32.Rectangle
	TextureID TextureID
	VtxOffset uint32
	IdxOffset uint32
	ElemCount uint32
}

// DrawListFlags control how a DrawList tessellates.
type DrawListFlags uint32

const (
	DrawListFlagsNone             DrawListFlags = 0
	DrawListFlagsAntiAliasedLines DrawListFlags = 1 << 0
	DrawListFlagsAntiAliasedFill  DrawListFlags = 1 << 1
	DrawListFlagsAllowVtxOffset   DrawListFlags = 1 << 2
)

// ColorU32 packs a non-premultiplied color.
func ColorU32(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}

// UnpackColor splits a packed color into its channels.
func UnpackColor(c uint32) (r, g, b, a uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16), uint8(c >> 24)
}

func hashString(seed ID, s string) ID {
	h := crc32.Update(uint32(seed), crc32.IEEETable, []byte(s))
	if h == 0 {
		h = 1
	}
	return ID(h)
}
