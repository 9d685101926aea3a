// SPDX-License-Identifier: Unlicense OR MIT

/*

Package unit implements device independent units and values.

Device independent pixel, or dp, is the unit for sizes independent of
the underlying display device.

Pixels, or px, is the unit for display dependent pixels. Their size
vary between platforms and displays.

Display metrics notifications carry a Metric; the overlay derives the
DPI scale of each monitor from it.

*/
package unit

import "math"

// Metric converts Values to device-dependent pixels, px. The zero
// value represents a 1-to-1 scale from dp to pixels.
type Metric struct {
	// PxPerDp is the device-dependent pixels per dp.
	PxPerDp float32
}

// Dp represents device independent pixels. 1 dp will
// have the same apparent size across platforms and
// display resolutions.
type Dp float32

// Dp converts v to pixels, rounded to the nearest integer value.
func (c Metric) Dp(v Dp) int {
	return int(math.Round(float64(nonZero(c.PxPerDp)) * float64(v)))
}

// Scale returns the pixels per dp, defaulting to 1.
func (c Metric) Scale() float32 {
	return nonZero(c.PxPerDp)
}

func nonZero(v float32) float32 {
	if v == 0. {
		return 1
	}
	return v
}
