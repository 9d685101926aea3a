// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"imoverlay.org/f32"
	"imoverlay.org/io/key"
	"imoverlay.org/layout"
)

// Widget is the content of a window.
type Widget interface {
	// Paint adds the widget's draw elements to gtx.Ops and returns
	// the highest layer it used.
	Paint(gtx layout.Context) int
	// DesiredSize returns the size the widget asks its parent for.
	DesiredSize() f32.Point
	// SupportsKeyboardFocus reports whether the widget can receive
	// characters.
	SupportsKeyboardFocus() bool
	// OnKeyChar handles a typed character.
	OnKeyChar(ev key.CharEvent) key.Reply
}

// Visibility controls whether a widget is painted and hit tested.
type Visibility uint8

const (
	// Visible widgets are painted and hit tested.
	Visible Visibility = iota
	// Collapsed widgets are neither painted nor take space.
	Collapsed
	// Hidden widgets take space but are not painted.
	Hidden
	// HitTestInvisible widgets and their children are painted but
	// never hit tested.
	HitTestInvisible
	// SelfHitTestInvisible widgets are painted and not hit tested,
	// but their children are.
	SelfHitTestInvisible
)

// IsVisible reports whether v is painted.
func (v Visibility) IsVisible() bool {
	return v != Collapsed && v != Hidden
}

// IsHitTestVisible reports whether v is hit tested.
func (v Visibility) IsHitTestVisible() bool {
	return v == Visible
}

func (v Visibility) String() string {
	switch v {
	case Visible:
		return "Visible"
	case Collapsed:
		return "Collapsed"
	case Hidden:
		return "Hidden"
	case HitTestInvisible:
		return "HitTestInvisible"
	case SelfHitTestInvisible:
		return "SelfHitTestInvisible"
	default:
		panic("invalid Visibility")
	}
}

func visibilityOf(w Widget) Visibility {
	if v, ok := w.(interface{ Visibility() Visibility }); ok {
		return v.Visibility()
	}
	return Visible
}
