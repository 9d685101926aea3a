// SPDX-License-Identifier: Unlicense OR MIT

package unit_test

import (
	"testing"

	"imoverlay.org/unit"
)

func TestMetric_Dp(t *testing.T) {
	m := unit.Metric{PxPerDp: 1.5}
	if got := m.Dp(5); got != 8 {
		t.Errorf("Dp conversion mismatch: have %v, want 8", got)
	}
	var zero unit.Metric
	if got := zero.Dp(5); got != 5 {
		t.Errorf("zero metric Dp conversion mismatch: have %v, want 5", got)
	}
}

func TestMetric_Scale(t *testing.T) {
	var zero unit.Metric
	if zero.Scale() != 1 {
		t.Errorf("zero metric scale: have %v, want 1", zero.Scale())
	}
	m := unit.Metric{PxPerDp: 2}
	if m.Scale() != 2 {
		t.Errorf("scale: have %v, want 2", m.Scale())
	}
}
