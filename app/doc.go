// SPDX-License-Identifier: Unlicense OR MIT

/*
Package app implements a headless host for widgets.

A Host owns a set of Windows and drives frames. Each call to Tick runs
the frame delegates in a fixed order:

	BeginFrame, Update, paint of every window, EndFrame

Painting a Window invokes its content Widget with a layout.Context
whose transform places the widget at the window's desktop position.
The resulting op.Ops is kept by the window until the next paint and
can be rasterized with package raster.

DisplayMetricsChanged delegates run whenever SetDisplayMetrics is
called.

Delegates are registered with Add, which returns a Handle for Remove.
Delegates may add or remove delegates while running; the change takes
effect with the next invocation.
*/
package app
