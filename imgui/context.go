// SPDX-License-Identifier: Unlicense OR MIT

/*
Package imgui is a small immediate-mode GUI library.

Programs describe their windows and widgets every frame between
NewFrame and Render. Render produces one DrawData per viewport: plain
vertex, index and command buffers for a renderer to draw.

Like its C++ namesake, the library keeps its state in a Context and
its functions operate on the process-wide current context, set with
SetCurrentContext. Calling any function without a current context
panics. The library is not safe for concurrent use.
*/
package imgui

import (
	"imoverlay.org/f32"
	"imoverlay.org/internal/log"
)

var logger = log.New("imgui")

// current is the context the package functions operate on.
var current *Context

// ConfigFlags toggle library features.
type ConfigFlags uint32

const (
	ConfigFlagsNone ConfigFlags = 0
	// ConfigFlagsViewportsEnable lets windows live in viewports other
	// than the main one.
	ConfigFlagsViewportsEnable ConfigFlags = 1 << 10
)

// BackendFlags describe renderer and platform capabilities.
type BackendFlags uint32

const (
	BackendFlagsNone BackendFlags = 0
	// BackendFlagsRendererHasVtxOffset is set by renderers that
	// honor DrawCmd.VtxOffset.
	BackendFlagsRendererHasVtxOffset BackendFlags = 1 << 3
	// BackendFlagsPlatformHasViewports is set by platforms that
	// create windows for secondary viewports.
	BackendFlagsPlatformHasViewports BackendFlags = 1 << 10
	// BackendFlagsRendererHasViewports is set by renderers that can
	// draw secondary viewports.
	BackendFlagsRendererHasViewports BackendFlags = 1 << 12
)

// IO is the interface between the library and the application.
type IO struct {
	ConfigFlags  ConfigFlags
	BackendFlags BackendFlags

	// DisplaySize is the size of the main viewport.
	DisplaySize f32.Point
	// DisplayFramebufferScale maps display to framebuffer pixels.
	DisplayFramebufferScale f32.Point
	// FontGlobalScale scales text.
	FontGlobalScale float32
	// DeltaTime is the time elapsed since the previous frame, in
	// seconds.
	DeltaTime float32

	// IniFilename is where window settings are persisted. Empty
	// disables persistence.
	IniFilename string
	// LogFilename receives text logged with LogToFile.
	LogFilename string

	Fonts *FontAtlas

	// WantCaptureKeyboard is set when the library wants keyboard
	// input, for example while a text field is focused.
	WantCaptureKeyboard bool
	// WantTextInput is set while a text field is focused.
	WantTextInput bool

	// InputQueueCharacters holds characters queued with
	// AddInputCharacter, consumed by text fields during the frame.
	InputQueueCharacters []rune

	// BackendPlatformName and BackendRendererName identify the
	// backends for diagnostics.
	BackendPlatformName string
	BackendRendererName string
}

// AddInputCharacter queues a character for text input. A zero
// character is ignored.
func (io *IO) AddInputCharacter(c uint32) {
	if c == 0 {
		return
	}
	io.InputQueueCharacters = append(io.InputQueueCharacters, rune(c))
}

// Style holds the colors and metrics of the built-in widgets.
type Style struct {
	WindowPadding f32.Point
	FramePadding  f32.Point
	ItemSpacing   f32.Point
	Colors        [ColCount]uint32
}

// Col indexes Style.Colors.
type Col int

const (
	ColText Col = iota
	ColWindowBg
	ColBorder
	ColFrameBg
	ColFrameBgActive
	ColTitleBg
	ColPlotLines
	ColCount
)

// DefaultStyle returns the dark style.
func DefaultStyle() Style {
	s := Style{
		WindowPadding: f32.Pt(8, 8),
		FramePadding:  f32.Pt(4, 3),
		ItemSpacing:   f32.Pt(8, 4),
	}
	s.Colors[ColText] = ColorU32(255, 255, 255, 255)
	s.Colors[ColWindowBg] = ColorU32(15, 15, 15, 240)
	s.Colors[ColBorder] = ColorU32(110, 110, 128, 128)
	s.Colors[ColFrameBg] = ColorU32(41, 74, 122, 138)
	s.Colors[ColFrameBgActive] = ColorU32(66, 150, 250, 171)
	s.Colors[ColTitleBg] = ColorU32(41, 74, 122, 255)
	s.Colors[ColPlotLines] = ColorU32(156, 156, 156, 255)
	return s
}

// Context holds all library state.
type Context struct {
	io         IO
	platformIO PlatformIO
	style      Style

	frameCount         int
	frameCountEnded    int
	frameCountRendered int
	frameCountPlatform int
	withinFrame        bool

	windows       []*Window
	windowsByID   map[ID]*Window
	windowStack   []*Window
	nextWindow    nextWindowData
	viewports     []*Viewport
	settings      map[string]windowSettings
	settingsReady bool

	activeID                ID
	activeIDAlive           ID
	focusRequest            bool
	wantCaptureKeyboardNext int
	log                     logState
}

// CreateContext creates a context using atlas for text, or a new
// default atlas when atlas is nil. The first context created becomes
// current.
func CreateContext(atlas *FontAtlas) *Context {
	if atlas == nil {
		atlas = &FontAtlas{}
	}
	ctx := &Context{
		style:                   DefaultStyle(),
		windowsByID:             make(map[ID]*Window),
		settings:                make(map[string]windowSettings),
		wantCaptureKeyboardNext: -1,
		frameCountEnded:         -1,
		frameCountRendered:      -1,
		frameCountPlatform:      -1,
	}
	ctx.io = IO{
		DisplayFramebufferScale: f32.Pt(1, 1),
		FontGlobalScale:         1,
		DeltaTime:               1. / 60,
		IniFilename:             "imgui.ini",
		LogFilename:             "imgui_log.txt",
		Fonts:                   atlas,
	}
	main := &Viewport{
		ID:                    ViewportDefaultID,
		Flags:                 ViewportFlagsOwnedByApp,
		FramebufferScale:      f32.Pt(1, 1),
		DpiScale:              1,
		PlatformWindowCreated: true,
	}
	ctx.viewports = []*Viewport{main}
	if current == nil {
		current = ctx
	}
	logger.Debugf("created context %p", ctx)
	return ctx
}

// DestroyContext saves the window settings, flushes the text log and
// destroys ctx. A nil ctx destroys the current context.
func DestroyContext(ctx *Context) {
	if ctx == nil {
		ctx = current
	}
	if ctx == nil || ctx.viewports == nil {
		return
	}
	prev := current
	current = ctx
	if ctx.log.enabled {
		LogFinish()
	}
	if ctx.io.IniFilename != "" && len(ctx.settings) > 0 {
		if err := SaveIniSettingsToDisk(ctx.io.IniFilename); err != nil {
			logger.Warningf("saving settings: %v", err)
		}
	}
	for _, vp := range ctx.viewports[1:] {
		destroyPlatformWindow(&ctx.platformIO, vp)
	}
	ctx.windows = nil
	ctx.windowsByID = nil
	ctx.viewports = nil
	if prev == ctx {
		current = nil
	} else {
		current = prev
	}
	logger.Debugf("destroyed context %p", ctx)
}

// CurrentContext returns the current context, or nil.
func CurrentContext() *Context {
	return current
}

// SetCurrentContext makes ctx current. A nil ctx clears the current
// context.
func SetCurrentContext(ctx *Context) {
	current = ctx
}

// IO returns the IO of ctx.
func (ctx *Context) IO() *IO {
	return &ctx.io
}

// PlatformIO returns the platform interface of ctx.
func (ctx *Context) PlatformIO() *PlatformIO {
	return &ctx.platformIO
}

// FrameCount returns the number of frames started with NewFrame.
func (ctx *Context) FrameCount() int {
	return ctx.frameCount
}

// GetIO returns the IO of the current context.
func GetIO() *IO {
	return &mustCurrent().io
}

// GetPlatformIO returns the platform interface of the current context.
func GetPlatformIO() *PlatformIO {
	return &mustCurrent().platformIO
}

// GetStyle returns the style of the current context.
func GetStyle() *Style {
	return &mustCurrent().style
}

// GetFrameCount returns the frame count of the current context.
func GetFrameCount() int {
	return mustCurrent().frameCount
}

func mustCurrent() *Context {
	if current == nil {
		panic("imgui: no current context")
	}
	return current
}
