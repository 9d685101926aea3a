// SPDX-License-Identifier: Unlicense OR MIT

package imgui

import (
	"imoverlay.org/f32"
)

// DrawData is everything needed to render one viewport for one frame.
type DrawData struct {
	// Valid is set by Render. Draw data from a frame that was never
	// rendered must not be used.
	Valid bool
	// TotalIdxCount and TotalVtxCount sum the buffer lengths of
	// CmdLists.
	TotalIdxCount int
	TotalVtxCount int
	// CmdLists are in back to front order.
	CmdLists []*DrawList
	// DisplayPos is the top left of the viewport in desktop
	// coordinates, and the origin of the vertex positions.
	DisplayPos       f32.Point
	DisplaySize      f32.Point
	FramebufferScale f32.Point
	OwnerViewport    *Viewport
}

// CmdListsCount returns len(d.CmdLists).
func (d *DrawData) CmdListsCount() int {
	return len(d.CmdLists)
}

// Clear resets d to its invalid zero state.
func (d *DrawData) Clear() {
	*d = DrawData{}
}

func (d *DrawData) addList(l *DrawList) {
	l.finish()
	if len(l.CmdBuffer) == 0 || len(l.VtxBuffer) == 0 {
		return
	}
	d.CmdLists = append(d.CmdLists, l)
	d.TotalVtxCount += len(l.VtxBuffer)
	d.TotalIdxCount += len(l.IdxBuffer)
}
