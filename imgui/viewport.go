// SPDX-License-Identifier: Unlicense OR MIT

package imgui

import (
	"imoverlay.org/f32"
)

// ViewportDefaultID identifies the main viewport.
const ViewportDefaultID ID = 0x11111111

// ViewportFlags describe a viewport.
type ViewportFlags uint32

const (
	ViewportFlagsNone ViewportFlags = 0
	// ViewportFlagsOwnedByApp marks the main viewport, whose platform
	// window belongs to the application.
	ViewportFlagsOwnedByApp ViewportFlags = 1 << 10
)

// Viewport is a platform window the library draws into.
type Viewport struct {
	ID    ID
	Flags ViewportFlags
	// Pos and Size are in desktop coordinates.
	Pos  f32.Point
	Size f32.Point
	// WorkPos and WorkSize exclude OS task bars.
	WorkPos          f32.Point
	WorkSize         f32.Point
	FramebufferScale f32.Point
	DpiScale         float32

	// DrawData is the output of the latest Render, or nil.
	DrawData *DrawData

	// PlatformUserData is free for the platform backend.
	PlatformUserData interface{}
	// PlatformHandle is the platform's window handle.
	PlatformHandle interface{}
	// PlatformWindowCreated is set once CreateWindow ran.
	PlatformWindowCreated bool
	// PlatformRequestMove and PlatformRequestResize are set when the
	// library moved or resized the viewport and the platform window
	// must follow.
	PlatformRequestMove   bool
	PlatformRequestResize bool

	lastFrameActive int
}

// Center returns the center of the viewport.
func (vp *Viewport) Center() f32.Point {
	return vp.Pos.Add(vp.Size.Mul(.5))
}

// Bounds returns the viewport rectangle in desktop coordinates.
func (vp *Viewport) Bounds() f32.Rectangle {
	return f32.Rectangle{Min: vp.Pos, Max: vp.Pos.Add(vp.Size)}
}

// PlatformMonitor describes a monitor to the library.
type PlatformMonitor struct {
	MainPos, MainSize f32.Point
	WorkPos, WorkSize f32.Point
	DpiScale          float32
}

// PlatformIO connects the library to the windowing platform. Callbacks
// left nil are skipped.
type PlatformIO struct {
	CreateWindow  func(vp *Viewport)
	DestroyWindow func(vp *Viewport)
	ShowWindow    func(vp *Viewport)
	SetWindowPos  func(vp *Viewport, pos f32.Point)
	GetWindowPos  func(vp *Viewport) f32.Point
	SetWindowSize func(vp *Viewport, size f32.Point)
	GetWindowSize func(vp *Viewport) f32.Point

	// Monitors lists the monitors, primary first.
	Monitors []PlatformMonitor
}

// GetMainViewport returns the viewport of the application window.
func GetMainViewport() *Viewport {
	return mustCurrent().viewports[0]
}

// Viewports returns the live viewports, main first.
func (ctx *Context) Viewports() []*Viewport {
	return ctx.viewports
}

// FindViewportByID returns the viewport with id, or nil.
func FindViewportByID(id ID) *Viewport {
	for _, vp := range mustCurrent().viewports {
		if vp.ID == id {
			return vp
		}
	}
	return nil
}

// FindViewportByPlatformHandle returns the viewport whose platform
// handle is h, or nil.
func FindViewportByPlatformHandle(h interface{}) *Viewport {
	for _, vp := range mustCurrent().viewports {
		if vp.PlatformHandle == h {
			return vp
		}
	}
	return nil
}

// viewportFor returns the viewport with id, creating it when absent.
func (ctx *Context) viewportFor(id ID, pos, size f32.Point) *Viewport {
	for _, vp := range ctx.viewports {
		if vp.ID == id {
			if vp.Pos != pos {
				vp.Pos, vp.PlatformRequestMove = pos, true
			}
			if vp.Size != size {
				vp.Size, vp.PlatformRequestResize = size, true
			}
			return vp
		}
	}
	main := ctx.viewports[0]
	vp := &Viewport{
		ID:               id,
		Pos:              pos,
		Size:             size,
		WorkPos:          pos,
		WorkSize:         size,
		FramebufferScale: main.FramebufferScale,
		DpiScale:         main.DpiScale,
	}
	ctx.viewports = append(ctx.viewports, vp)
	logger.Debugf("viewport %#x created", id)
	return vp
}

// UpdatePlatformWindows creates, moves, resizes and destroys platform
// windows to match the viewports of the last Render. It must follow
// Render in the same frame.
func UpdatePlatformWindows() {
	ctx := mustCurrent()
	if ctx.frameCountRendered != ctx.frameCount {
		panic("imgui: UpdatePlatformWindows called before Render")
	}
	if ctx.frameCountPlatform == ctx.frameCount {
		return
	}
	ctx.frameCountPlatform = ctx.frameCount
	if ctx.io.ConfigFlags&ConfigFlagsViewportsEnable == 0 {
		return
	}
	pio := &ctx.platformIO
	live := ctx.viewports[:1]
	for _, vp := range ctx.viewports[1:] {
		if vp.lastFrameActive < ctx.frameCount {
			destroyPlatformWindow(pio, vp)
			logger.Debugf("viewport %#x destroyed", vp.ID)
			continue
		}
		live = append(live, vp)
		if !vp.PlatformWindowCreated {
			if pio.CreateWindow != nil {
				pio.CreateWindow(vp)
			}
			if pio.SetWindowPos != nil {
				pio.SetWindowPos(vp, vp.Pos)
			}
			if pio.SetWindowSize != nil {
				pio.SetWindowSize(vp, vp.Size)
			}
			if pio.ShowWindow != nil {
				pio.ShowWindow(vp)
			}
			vp.PlatformWindowCreated = true
			vp.PlatformRequestMove, vp.PlatformRequestResize = false, false
			continue
		}
		if vp.PlatformRequestMove && pio.SetWindowPos != nil {
			pio.SetWindowPos(vp, vp.Pos)
		}
		if vp.PlatformRequestResize && pio.SetWindowSize != nil {
			pio.SetWindowSize(vp, vp.Size)
		}
		vp.PlatformRequestMove, vp.PlatformRequestResize = false, false
	}
	for i := len(live); i < len(ctx.viewports); i++ {
		ctx.viewports[i] = nil
	}
	ctx.viewports = live
}

// DestroyPlatformWindows destroys the platform windows of every
// secondary viewport.
func DestroyPlatformWindows() {
	ctx := mustCurrent()
	for _, vp := range ctx.viewports[1:] {
		destroyPlatformWindow(&ctx.platformIO, vp)
	}
}

func destroyPlatformWindow(pio *PlatformIO, vp *Viewport) {
	if vp.PlatformWindowCreated && pio.DestroyWindow != nil {
		pio.DestroyWindow(vp)
	}
	vp.PlatformWindowCreated = false
	vp.PlatformUserData = nil
	vp.PlatformHandle = nil
}
