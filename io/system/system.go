// SPDX-License-Identifier: Unlicense OR MIT

// Package system contains events usually handled at the top-level
// program level.
package system

import (
	"image"

	"imoverlay.org/unit"
)

// DisplayMetrics describes the displays attached to the host. It is
// delivered whenever the resolution, arrangement or DPI of a display
// changes.
type DisplayMetrics struct {
	// PrimaryDisplaySize is the size of the primary display in pixels.
	PrimaryDisplaySize image.Point
	// PrimaryWorkArea is the primary display area not covered by
	// system decoration such as task bars.
	PrimaryWorkArea image.Rectangle
	// VirtualDisplay is the bounding rectangle of all displays.
	VirtualDisplay image.Rectangle
	// Monitors lists the attached displays.
	Monitors []Monitor
	// Metric is the scale of the primary display.
	Metric unit.Metric
}

// Monitor describes one display.
type Monitor struct {
	Name     string
	Primary  bool
	Bounds   image.Rectangle
	WorkArea image.Rectangle
	Metric   unit.Metric
}

// Primary returns the primary monitor. If no monitor is flagged
// primary, one is synthesized from the primary display fields.
func (m DisplayMetrics) Primary() Monitor {
	for _, mon := range m.Monitors {
		if mon.Primary {
			return mon
		}
	}
	return Monitor{
		Primary:  true,
		Bounds:   image.Rectangle{Max: m.PrimaryDisplaySize},
		WorkArea: m.PrimaryWorkArea,
		Metric:   m.Metric,
	}
}

func (DisplayMetrics) ImplementsEvent() {}
