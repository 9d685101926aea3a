// SPDX-License-Identifier: Unlicense OR MIT

package imgui

import (
	"errors"
	"io/fs"
)

// NewFrame starts a frame. Each NewFrame must be followed by Render
// (or EndFrame) before the next NewFrame.
func NewFrame() {
	ctx := mustCurrent()
	if ctx.withinFrame {
		panic("imgui: NewFrame called twice without EndFrame or Render")
	}
	if ctx.io.DeltaTime < 0 {
		panic("imgui: negative IO.DeltaTime")
	}
	atlas := ctx.io.Fonts
	if atlas.font != nil && !atlas.built {
		if err := atlas.Build(); err != nil {
			logger.Warningf("building font atlas: %v", err)
		}
	}
	if !ctx.settingsReady {
		ctx.settingsReady = true
		if name := ctx.io.IniFilename; name != "" {
			err := LoadIniSettingsFromDisk(name)
			if err != nil && !errors.Is(err, fs.ErrNotExist) {
				logger.Warningf("loading settings: %v", err)
			}
		}
	}

	ctx.frameCount++
	ctx.withinFrame = true

	main := ctx.viewports[0]
	main.Size = ctx.io.DisplaySize
	main.FramebufferScale = ctx.io.DisplayFramebufferScale
	main.lastFrameActive = ctx.frameCount

	if ctx.wantCaptureKeyboardNext != -1 {
		ctx.io.WantCaptureKeyboard = ctx.wantCaptureKeyboardNext == 1
		ctx.wantCaptureKeyboardNext = -1
	} else {
		ctx.io.WantCaptureKeyboard = ctx.activeID != 0
	}
	ctx.io.WantTextInput = ctx.activeID != 0
	ctx.activeIDAlive = 0
	ctx.windowStack = ctx.windowStack[:0]
}

// EndFrame finishes the frame without rendering. Render calls it
// implicitly.
func EndFrame() {
	ctx := mustCurrent()
	if !ctx.withinFrame {
		panic("imgui: EndFrame called without NewFrame")
	}
	if n := len(ctx.windowStack); n > 0 {
		panic("imgui: missing End for window " + ctx.windowStack[n-1].Name)
	}
	if ctx.activeID != 0 && ctx.activeIDAlive != ctx.activeID {
		// The focused widget was not submitted this frame.
		ctx.activeID = 0
	}
	ctx.focusRequest = false
	ctx.io.InputQueueCharacters = ctx.io.InputQueueCharacters[:0]
	ctx.withinFrame = false
	ctx.frameCountEnded = ctx.frameCount
}

// Render finishes the frame and fills the DrawData of every active
// viewport.
func Render() {
	ctx := mustCurrent()
	if ctx.frameCountEnded != ctx.frameCount {
		EndFrame()
	}
	ctx.frameCountRendered = ctx.frameCount
	for _, vp := range ctx.viewports {
		if vp.lastFrameActive != ctx.frameCount {
			vp.DrawData = nil
			continue
		}
		dd := &DrawData{
			Valid:            true,
			DisplayPos:       vp.Pos,
			DisplaySize:      vp.Size,
			FramebufferScale: vp.FramebufferScale,
			OwnerViewport:    vp,
		}
		for _, w := range ctx.windows {
			if w.lastFrameActive == ctx.frameCount && w.Viewport == vp {
				dd.addList(w.DrawList)
			}
		}
		vp.DrawData = dd
	}
}

// GetDrawData returns the draw data of the main viewport from the
// last Render, or nil.
func GetDrawData() *DrawData {
	ctx := mustCurrent()
	if ctx.frameCountRendered < 0 {
		return nil
	}
	return ctx.viewports[0].DrawData
}
