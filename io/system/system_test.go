// SPDX-License-Identifier: Unlicense OR MIT

package system

import (
	"image"
	"testing"

	"imoverlay.org/unit"
)

func TestPrimaryMonitor(t *testing.T) {
	m := DisplayMetrics{
		PrimaryDisplaySize: image.Pt(800, 600),
		PrimaryWorkArea:    image.Rect(0, 0, 800, 560),
		Metric:             unit.Metric{PxPerDp: 2},
	}
	p := m.Primary()
	if !p.Primary || p.Bounds != image.Rect(0, 0, 800, 600) || p.WorkArea != m.PrimaryWorkArea {
		t.Errorf("synthesized primary mismatch: %+v", p)
	}

	m.Monitors = []Monitor{
		{Name: "left", Bounds: image.Rect(-1920, 0, 0, 1080)},
		{Name: "main", Primary: true, Bounds: image.Rect(0, 0, 800, 600)},
	}
	if have := m.Primary().Name; have != "main" {
		t.Errorf("primary monitor: have %q, want %q", have, "main")
	}
}
