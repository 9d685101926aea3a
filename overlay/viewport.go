// SPDX-License-Identifier: Unlicense OR MIT

package overlay

import (
	"weak"

	"imoverlay.org/app"
	"imoverlay.org/imgui"
)

// ViewportData associates an imgui viewport with the host window and
// overlay presenting it. It refers to both weakly: once either is
// collected, destroyed or closed, the association is dropped on the
// next lookup.
type ViewportData struct {
	window  weak.Pointer[app.Window]
	overlay weak.Pointer[Overlay]
}

// GetOrCreate returns the association stored in vp, attaching a new
// empty one on first use.
func GetOrCreate(vp *imgui.Viewport) *ViewportData {
	if d, ok := vp.PlatformUserData.(*ViewportData); ok {
		d.prune()
		return d
	}
	d := new(ViewportData)
	vp.PlatformUserData = d
	return d
}

// Bind associates vp with win and ov.
func Bind(vp *imgui.Viewport, win *app.Window, ov *Overlay) *ViewportData {
	d := GetOrCreate(vp)
	d.Set(win, ov)
	return d
}

// Set replaces the window and overlay of d.
func (d *ViewportData) Set(win *app.Window, ov *Overlay) {
	d.window = weak.Make(win)
	d.overlay = weak.Make(ov)
}

// Window returns the associated window, or nil.
func (d *ViewportData) Window() *app.Window {
	w := d.window.Value()
	if w == nil || w.Destroyed() {
		return nil
	}
	return w
}

// Overlay returns the associated overlay, or nil.
func (d *ViewportData) Overlay() *Overlay {
	o := d.overlay.Value()
	if o == nil || o.closed {
		return nil
	}
	return o
}

// IsBound reports whether d refers to a live window and overlay.
func (d *ViewportData) IsBound() bool {
	return d.Window() != nil && d.Overlay() != nil
}

func (d *ViewportData) prune() {
	if !d.IsBound() {
		*d = ViewportData{}
	}
}
