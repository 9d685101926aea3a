// SPDX-License-Identifier: Unlicense OR MIT

package imgui

import (
	"strings"

	"imoverlay.org/f32"
)

// WindowFlags customize Begin.
type WindowFlags uint32

const (
	WindowFlagsNone            WindowFlags = 0
	WindowFlagsNoTitleBar      WindowFlags = 1 << 0
	WindowFlagsNoBackground    WindowFlags = 1 << 7
	WindowFlagsNoSavedSettings WindowFlags = 1 << 8
)

// Cond tells when a SetNextWindow* value applies.
type Cond int

const (
	CondNone Cond = 0
	// CondAlways applies the value every frame.
	CondAlways Cond = 1 << 0
	// CondOnce applies the value once per session.
	CondOnce Cond = 1 << 1
	// CondFirstUseEver applies the value if the window has no saved
	// settings.
	CondFirstUseEver Cond = 1 << 2
)

var (
	defaultWindowPos  = f32.Pt(60, 60)
	defaultWindowSize = f32.Pt(400, 300)
)

// Window is a window submitted with Begin.
type Window struct {
	Name     string
	ID       ID
	Flags    WindowFlags
	Pos      f32.Point
	Size     f32.Point
	Viewport *Viewport
	DrawList *DrawList

	lastFrameActive int
	appeared        map[Cond]bool
	cursor          f32.Point
	cursorStart     f32.Point
	cursorLineStart f32.Point
	lineHeight      float32
	contentMax      f32.Point
	itemMin         f32.Point
	itemMax         f32.Point
}

type nextWindowData struct {
	pos        f32.Point
	posCond    Cond
	size       f32.Point
	sizeCond   Cond
	viewportID ID
}

// SetNextWindowPos sets the position of the next window, in desktop
// coordinates.
func SetNextWindowPos(pos f32.Point, cond Cond) {
	ctx := mustCurrent()
	if cond == CondNone {
		cond = CondAlways
	}
	ctx.nextWindow.pos, ctx.nextWindow.posCond = pos, cond
}

// SetNextWindowSize sets the size of the next window.
func SetNextWindowSize(size f32.Point, cond Cond) {
	ctx := mustCurrent()
	if cond == CondNone {
		cond = CondAlways
	}
	ctx.nextWindow.size, ctx.nextWindow.sizeCond = size, cond
}

// SetNextWindowViewport places the next window in the viewport with
// id.
func SetNextWindowViewport(id ID) {
	mustCurrent().nextWindow.viewportID = id
}

// Begin starts a window. Every Begin must be matched by End. Begin
// can be called several times per frame for the same window to append
// to it.
func Begin(name string) bool {
	return BeginV(name, WindowFlagsNone)
}

// BeginV is Begin with flags.
func BeginV(name string, flags WindowFlags) bool {
	ctx := mustCurrent()
	if !ctx.withinFrame {
		panic("imgui: Begin called outside NewFrame/Render")
	}
	id := hashString(0, name)
	w, ok := ctx.windowsByID[id]
	if !ok {
		w = ctx.createWindow(name, id, flags)
	}
	next := ctx.nextWindow
	ctx.nextWindow = nextWindowData{}
	ctx.windowStack = append(ctx.windowStack, w)
	if w.lastFrameActive == ctx.frameCount {
		w.DrawList.PushClipRect(w.innerMin(), w.Pos.Add(w.Size), true)
		return true
	}
	w.lastFrameActive = ctx.frameCount
	w.Flags = flags
	if next.posCond != CondNone && w.applies(next.posCond) {
		w.Pos = next.pos
	}
	if next.sizeCond != CondNone && w.applies(next.sizeCond) {
		w.Size = next.size
	}
	// Once and FirstUseEver are spent by the first Begin, whichever
	// values used them.
	w.appeared[CondOnce] = true
	w.appeared[CondFirstUseEver] = true
	w.Viewport = ctx.resolveViewport(w, next.viewportID)
	w.Viewport.lastFrameActive = ctx.frameCount

	style := &ctx.style
	l := w.DrawList
	l.Reset(w.Viewport.Bounds())
	br := w.Pos.Add(w.Size)
	if flags&WindowFlagsNoBackground == 0 {
		l.AddRectFilled(w.Pos, br, style.Colors[ColWindowBg])
	}
	if flags&WindowFlagsNoTitleBar == 0 {
		title := f32.Pt(br.X, w.Pos.Y+w.titleBarHeight())
		l.AddRectFilled(w.Pos, title, style.Colors[ColTitleBg])
		l.AddText(w.Pos.Add(style.FramePadding), style.Colors[ColText], displayName(name))
	}
	if flags&WindowFlagsNoBackground == 0 {
		l.AddRect(w.Pos, br, style.Colors[ColBorder], 1)
	}
	l.PushClipRect(w.innerMin(), br, true)

	w.cursorStart = w.innerMin().Add(style.WindowPadding)
	w.cursor = w.cursorStart
	w.cursorLineStart = w.cursorStart
	w.contentMax = w.cursorStart
	w.lineHeight = 0
	return true
}

// End finishes the window started by the matching Begin.
func End() {
	ctx := mustCurrent()
	if len(ctx.windowStack) == 0 {
		panic("imgui: End called without Begin")
	}
	w := ctx.windowStack[len(ctx.windowStack)-1]
	ctx.windowStack = ctx.windowStack[:len(ctx.windowStack)-1]
	w.DrawList.PopClipRect()
	if w.Flags&WindowFlagsNoSavedSettings == 0 {
		ctx.settings[w.Name] = windowSettings{Name: w.Name, Pos: w.Pos, Size: w.Size}
	}
}

func (ctx *Context) createWindow(name string, id ID, flags WindowFlags) *Window {
	main := ctx.viewports[0]
	w := &Window{
		Name:     name,
		ID:       id,
		Flags:    flags,
		Pos:      main.Pos.Add(defaultWindowPos),
		Size:     defaultWindowSize,
		DrawList: NewDrawList(ctx.io.Fonts),
		appeared: make(map[Cond]bool),
	}
	if s, ok := ctx.settings[name]; ok && flags&WindowFlagsNoSavedSettings == 0 {
		w.Pos, w.Size = s.Pos, s.Size
		w.appeared[CondFirstUseEver] = true
	}
	ctx.windows = append(ctx.windows, w)
	ctx.windowsByID[id] = w
	logger.Debugf("window %q created", name)
	return w
}

// applies reports whether a value set with cond applies this frame.
func (w *Window) applies(cond Cond) bool {
	switch cond {
	case CondAlways:
		return true
	case CondOnce, CondFirstUseEver:
		return !w.appeared[cond]
	}
	return false
}

// resolveViewport picks the viewport of w: the requested one if it
// exists, a viewport of its own when w leaves the main viewport and
// viewports are enabled, the main viewport otherwise.
func (ctx *Context) resolveViewport(w *Window, requested ID) *Viewport {
	main := ctx.viewports[0]
	if requested != 0 {
		for _, vp := range ctx.viewports {
			if vp.ID == requested {
				return vp
			}
		}
	}
	if ctx.io.ConfigFlags&ConfigFlagsViewportsEnable == 0 || main.Bounds().Empty() {
		return main
	}
	r := f32.Rectangle{Min: w.Pos, Max: w.Pos.Add(w.Size)}
	if r.Intersect(main.Bounds()) == r {
		return main
	}
	return ctx.viewportFor(w.ID, w.Pos, w.Size)
}

func (w *Window) titleBarHeight() float32 {
	if w.Flags&WindowFlagsNoTitleBar != 0 {
		return 0
	}
	ctx := mustCurrent()
	return ctx.io.Fonts.LineHeight + 2*ctx.style.FramePadding.Y
}

func (w *Window) innerMin() f32.Point {
	return f32.Pt(w.Pos.X, w.Pos.Y+w.titleBarHeight())
}

// displayName strips the ID suffix starting at "##".
func displayName(label string) string {
	if i := strings.Index(label, "##"); i >= 0 {
		return label[:i]
	}
	return label
}

func currentWindow() *Window {
	ctx := mustCurrent()
	if len(ctx.windowStack) == 0 {
		panic("imgui: no current window, call Begin first")
	}
	return ctx.windowStack[len(ctx.windowStack)-1]
}

// itemAdd advances the layout cursor past an item of the given size.
func (w *Window) itemAdd(size f32.Point) {
	spacing := mustCurrent().style.ItemSpacing
	w.itemMin = w.cursor
	w.itemMax = w.cursor.Add(size)
	h := size.Y
	if w.lineHeight > h {
		h = w.lineHeight
	}
	w.contentMax.X = max(w.contentMax.X, w.itemMax.X)
	w.contentMax.Y = max(w.contentMax.Y, w.cursor.Y+h)
	w.cursorLineStart = f32.Pt(w.itemMax.X+spacing.X, w.cursor.Y)
	w.cursor = f32.Pt(w.cursorStart.X, w.cursor.Y+h+spacing.Y)
	w.lineHeight = 0
}

// GetWindowDrawList returns the draw list of the current window.
func GetWindowDrawList() *DrawList {
	return currentWindow().DrawList
}

// GetWindowPos returns the position of the current window.
func GetWindowPos() f32.Point {
	return currentWindow().Pos
}

// GetWindowSize returns the size of the current window.
func GetWindowSize() f32.Point {
	return currentWindow().Size
}

// GetWindowViewport returns the viewport of the current window.
func GetWindowViewport() *Viewport {
	return currentWindow().Viewport
}

// GetCursorScreenPos returns where the next item goes, in desktop
// coordinates.
func GetCursorScreenPos() f32.Point {
	return currentWindow().cursor
}

// SetCursorScreenPos moves the layout cursor.
func SetCursorScreenPos(pos f32.Point) {
	currentWindow().cursor = pos
}

// GetContentRegionAvail returns the space left between the cursor and
// the bottom right of the window content area.
func GetContentRegionAvail() f32.Point {
	w := currentWindow()
	pad := mustCurrent().style.WindowPadding
	br := w.Pos.Add(w.Size).Sub(pad)
	return f32.Pt(br.X-w.cursor.X, br.Y-w.cursor.Y)
}

// GetItemRectMin returns the top left of the last item.
func GetItemRectMin() f32.Point {
	return currentWindow().itemMin
}

// GetItemRectMax returns the bottom right of the last item.
func GetItemRectMax() f32.Point {
	return currentWindow().itemMax
}

// SameLine places the next item to the right of the last one.
func SameLine() {
	w := currentWindow()
	w.lineHeight = w.itemMax.Y - w.itemMin.Y
	w.cursor = w.cursorLineStart
}

// Dummy reserves space for an item drawn by the caller.
func Dummy(size f32.Point) {
	currentWindow().itemAdd(size)
}

// GetTextLineHeight returns the height of a line of text.
func GetTextLineHeight() float32 {
	return mustCurrent().io.Fonts.LineHeight
}

// CalcTextSize returns the size of text in the current font.
func CalcTextSize(text string) f32.Point {
	return mustCurrent().io.Fonts.CalcTextSize(text)
}

// Text adds a line of text. Text is also written to the text log while
// logging.
func Text(text string) {
	ctx := mustCurrent()
	w := currentWindow()
	w.DrawList.AddText(w.cursor, ctx.style.Colors[ColText], text)
	w.itemAdd(ctx.io.Fonts.CalcTextSize(text))
	if ctx.log.enabled {
		LogText(text + "\n")
	}
}

// SetKeyboardFocusHere gives keyboard focus to the next widget.
func SetKeyboardFocusHere() {
	currentWindow()
	mustCurrent().focusRequest = true
}

// SetNextFrameWantCaptureKeyboard overrides IO.WantCaptureKeyboard
// for the next frame.
func SetNextFrameWantCaptureKeyboard(want bool) {
	ctx := mustCurrent()
	if want {
		ctx.wantCaptureKeyboardNext = 1
	} else {
		ctx.wantCaptureKeyboardNext = 0
	}
}

// IsAnyItemActive reports whether a widget holds keyboard focus.
func IsAnyItemActive() bool {
	return mustCurrent().activeID != 0
}

// ClearActiveID drops keyboard focus.
func ClearActiveID() {
	ctx := mustCurrent()
	ctx.activeID = 0
	ctx.activeIDAlive = 0
}

// InputText edits *buf with the characters queued in IO while the
// field has keyboard focus. It reports whether *buf changed.
func InputText(label string, buf *string) bool {
	ctx := mustCurrent()
	w := currentWindow()
	id := hashString(w.ID, label)
	if ctx.focusRequest {
		ctx.focusRequest = false
		ctx.activeID = id
		logger.Debugf("focus %q", label)
	}
	style := &ctx.style
	atlas := ctx.io.Fonts
	active := ctx.activeID == id
	changed := false
	if active {
		ctx.activeIDAlive = id
		for _, c := range ctx.io.InputQueueCharacters {
			switch {
			case c == '\b':
				if s := []rune(*buf); len(s) > 0 {
					*buf = string(s[:len(s)-1])
					changed = true
				}
			case c == '\r' || c == '\n':
				ctx.activeID = 0
			case c >= ' ' && c != 0x7f:
				*buf += string(c)
				changed = true
			}
		}
		ctx.io.InputQueueCharacters = ctx.io.InputQueueCharacters[:0]
	}

	avail := GetContentRegionAvail()
	labelSize := atlas.CalcTextSize(displayName(label))
	frame := f32.Pt(max(avail.X-labelSize.X-style.ItemSpacing.X, 1), atlas.LineHeight+2*style.FramePadding.Y)
	pos := w.cursor
	bg := style.Colors[ColFrameBg]
	if active {
		bg = style.Colors[ColFrameBgActive]
	}
	w.DrawList.AddRectFilled(pos, pos.Add(frame), bg)
	w.DrawList.PushClipRect(pos, pos.Add(frame), true)
	w.DrawList.AddText(pos.Add(style.FramePadding), style.Colors[ColText], *buf)
	w.DrawList.PopClipRect()
	if labelSize.X > 0 {
		w.DrawList.AddText(f32.Pt(pos.X+frame.X+style.ItemSpacing.X, pos.Y+style.FramePadding.Y), style.Colors[ColText], displayName(label))
	}
	w.itemAdd(f32.Pt(frame.X+style.ItemSpacing.X+labelSize.X, frame.Y))
	return changed
}
