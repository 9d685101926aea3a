// SPDX-License-Identifier: Unlicense OR MIT

package overlay

import (
	"imoverlay.org/f32"
	"imoverlay.org/imgui"
)

// DrawList is a snapshot of one imgui draw list, taken over from
// the library at the end of a frame.
type DrawList struct {
	VtxBuffer []imgui.DrawVert
	IdxBuffer []imgui.DrawIdx
	CmdBuffer []imgui.DrawCmd
	Flags     imgui.DrawListFlags
}

// DrawData is a snapshot of the draw data of one viewport. The zero
// DrawData is invalid and paints nothing.
type DrawData struct {
	Valid         bool
	TotalIdxCount int
	TotalVtxCount int
	// DrawLists are in paint order.
	DrawLists        []DrawList
	DisplayPos       f32.Point
	DisplaySize      f32.Point
	FramebufferScale f32.Point
}

// NewDrawList takes the buffers of src without copying them. src is
// left with empty buffers, ready to be refilled by the next frame.
func NewDrawList(src *imgui.DrawList) DrawList {
	l := DrawList{
		VtxBuffer: src.VtxBuffer,
		IdxBuffer: src.IdxBuffer,
		CmdBuffer: src.CmdBuffer,
		Flags:     src.Flags,
	}
	src.VtxBuffer, src.IdxBuffer, src.CmdBuffer = nil, nil, nil
	return l
}

// NewDrawData snapshots src, taking over the buffers of every draw
// list. A nil src results in an invalid snapshot.
func NewDrawData(src *imgui.DrawData) DrawData {
	if src == nil {
		return DrawData{}
	}
	d := DrawData{
		Valid:            src.Valid,
		TotalIdxCount:    src.TotalIdxCount,
		TotalVtxCount:    src.TotalVtxCount,
		DrawLists:        make([]DrawList, len(src.CmdLists)),
		DisplayPos:       src.DisplayPos,
		DisplaySize:      src.DisplaySize,
		FramebufferScale: src.FramebufferScale,
	}
	for i, l := range src.CmdLists {
		d.DrawLists[i] = NewDrawList(l)
	}
	return d
}
