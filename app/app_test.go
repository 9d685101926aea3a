// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"image"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"imoverlay.org/f32"
	"imoverlay.org/io/key"
	"imoverlay.org/io/system"
	"imoverlay.org/layout"
	"imoverlay.org/unit"
)

type testWidget struct {
	gtx        layout.Context
	paints     int
	focusable  bool
	visibility Visibility
	chars      []rune
}

func (w *testWidget) Paint(gtx layout.Context) int {
	w.gtx = gtx
	w.paints++
	return gtx.Layer + 1
}

func (w *testWidget) DesiredSize() f32.Point { return f32.Point{} }

func (w *testWidget) SupportsKeyboardFocus() bool { return w.focusable }

func (w *testWidget) OnKeyChar(ev key.CharEvent) key.Reply {
	w.chars = append(w.chars, ev.Char)
	return key.Handled
}

func (w *testWidget) Visibility() Visibility { return w.visibility }

func TestTickOrder(t *testing.T) {
	h := NewHost(DefaultDisplayMetrics())
	content := &testWidget{}
	h.NewWindow(content)

	var events []string
	h.BeginFrame.Add(func() { events = append(events, "begin") })
	h.Update.Add(func(dt time.Duration) {
		assert.Equal(t, 16*time.Millisecond, dt)
		events = append(events, "update")
	})
	h.EndFrame.Add(func() {
		events = append(events, "end")
		assert.Equal(t, 1, content.paints)
	})

	h.Tick(16 * time.Millisecond)
	assert.Equal(t, []string{"begin", "update", "end"}, events)
	assert.Equal(t, 1, h.Frames())
	assert.Equal(t, 16*time.Millisecond, h.DeltaTime())
}

func TestDelegatesRemove(t *testing.T) {
	var d Delegates[func()]
	calls := 0
	h1 := d.Add(func() { calls++ })
	h2 := d.Add(func() { calls += 10 })
	assert.NotEqual(t, h1, h2)
	assert.True(t, d.Remove(h1))
	assert.False(t, d.Remove(h1))
	assert.Equal(t, 1, d.Len())
	d.each(func(f func()) { f() })
	assert.Equal(t, 10, calls)
}

func TestDelegateRemovesItself(t *testing.T) {
	h := NewHost(DefaultDisplayMetrics())
	calls := 0
	var handle Handle
	handle = h.BeginFrame.Add(func() {
		calls++
		h.BeginFrame.Remove(handle)
	})
	h.Tick(0)
	h.Tick(0)
	assert.Equal(t, 1, calls)
}

func TestNestedTickPanics(t *testing.T) {
	h := NewHost(DefaultDisplayMetrics())
	h.BeginFrame.Add(func() { h.Tick(0) })
	assert.PanicsWithValue(t, "app: Tick called from a frame delegate", func() { h.Tick(0) })
}

func TestSetDisplayMetrics(t *testing.T) {
	h := NewHost(system.DisplayMetrics{})
	var got system.DisplayMetrics
	h.DisplayMetricsChanged.Add(func(m system.DisplayMetrics) { got = m })
	m := DefaultDisplayMetrics()
	h.SetDisplayMetrics(m)
	assert.Equal(t, m.PrimaryDisplaySize, got.PrimaryDisplaySize)
	assert.Equal(t, m.PrimaryDisplaySize, h.DisplayMetrics().PrimaryDisplaySize)
}

func TestWindowPaintGeometry(t *testing.T) {
	h := NewHost(system.DisplayMetrics{Metric: unit.Metric{PxPerDp: 2}})
	content := &testWidget{}
	w := h.NewWindow(content, Pos(image.Pt(100, 50)), Size(200, 100), Title("test"))

	assert.Equal(t, image.Pt(400, 200), w.Config().Size)
	assert.Equal(t, image.Rect(100, 50, 500, 250), w.Bounds())

	ops := w.Paint()
	require.Same(t, w.Ops(), ops)
	gtx := content.gtx
	assert.Same(t, ops, gtx.Ops)
	assert.Equal(t, f32.Pt(100, 50), gtx.Geometry.Transform.Translation())
	assert.Equal(t, f32.Pt(400, 200), gtx.Geometry.Size)
	assert.Equal(t, f32.Rect(100, 50, 500, 250), gtx.CullingRect)
	assert.True(t, gtx.ParentEnabled)
	assert.Equal(t, 1, w.Layer())

	content.visibility = Hidden
	w.Paint()
	assert.Equal(t, 1, content.paints)
	content.visibility = HitTestInvisible
	w.Paint()
	assert.Equal(t, 2, content.paints)
}

func TestDispatchChar(t *testing.T) {
	h := NewHost(DefaultDisplayMetrics())
	first := &testWidget{}
	second := &testWidget{focusable: true}
	w1 := h.NewWindow(first)
	w2 := h.NewWindow(second)

	assert.Same(t, w1, h.Focused())
	assert.Equal(t, key.Unhandled, h.DispatchChar(key.CharEvent{Char: 'a'}))
	assert.Empty(t, first.chars)

	h.Focus(w2)
	assert.Equal(t, key.Handled, h.DispatchChar(key.CharEvent{Char: 'b'}))
	assert.Equal(t, []rune{'b'}, second.chars)

	destroyed := 0
	w2.OnDestroy(func() { destroyed++ })
	w2.Destroy()
	w2.Destroy()
	assert.Equal(t, 1, destroyed)
	assert.True(t, w2.Destroyed())
	assert.Same(t, w1, h.Focused())
	assert.Equal(t, []*Window{w1}, h.Windows())
	assert.Equal(t, key.Unhandled, w2.DispatchChar(key.CharEvent{Char: 'c'}))
}

func TestVisibility(t *testing.T) {
	assert.True(t, HitTestInvisible.IsVisible())
	assert.False(t, HitTestInvisible.IsHitTestVisible())
	assert.False(t, Collapsed.IsVisible())
	assert.Equal(t, "HitTestInvisible", HitTestInvisible.String())
}
