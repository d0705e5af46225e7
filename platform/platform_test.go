// SPDX-License-Identifier: Unlicense OR MIT

package platform

import (
	"errors"
	"image"
	"math"
	"testing"
	"time"

	"github.com/kataras/golog"

	"github.com/uibridge/uibridge/f32"
	"github.com/uibridge/uibridge/io/clipboard"
	"github.com/uibridge/uibridge/io/event"
	"github.com/uibridge/uibridge/io/input"
	"github.com/uibridge/uibridge/io/key"
	"github.com/uibridge/uibridge/io/pointer"
	"github.com/uibridge/uibridge/native"
	"github.com/uibridge/uibridge/op/paint"
)

type fakeWindow struct {
	size  image.Point
	scale float32
}

func (w *fakeWindow) Size() image.Point     { return w.size }
func (w *fakeWindow) DisplayScale() float32 { return w.scale }

type fakeCursor struct {
	kind     native.SystemCursor
	set      int
	released int
}

func (c *fakeCursor) Set()     { c.set++ }
func (c *fakeCursor) Release() { c.released++ }

type fakeDisplay struct {
	text      string
	hasText   bool
	readErr   error
	writeErr  error
	createErr error

	writes  []string
	cursors []*fakeCursor
}

func (d *fakeDisplay) HasClipboardText() bool { return d.hasText }

func (d *fakeDisplay) ClipboardText() (string, error) {
	if d.readErr != nil {
		return "", d.readErr
	}
	return d.text, nil
}

func (d *fakeDisplay) SetClipboardText(s string) error {
	if d.writeErr != nil {
		return d.writeErr
	}
	d.writes = append(d.writes, s)
	d.text, d.hasText = s, true
	return nil
}

func (d *fakeDisplay) CreateSystemCursor(c native.SystemCursor) (Cursor, error) {
	if d.createErr != nil {
		return nil, d.createErr
	}
	fc := &fakeCursor{kind: c}
	d.cursors = append(d.cursors, fc)
	return fc, nil
}

type textInputDisplay struct {
	fakeDisplay
	started int
	err     error
}

func (d *textInputDisplay) StartTextInput() error {
	d.started++
	return d.err
}

// scriptedContext returns a fixed output from every pass and records
// what the platform passes in.
type scriptedContext struct {
	ppp       float32
	in        []input.RawInput
	out       input.FullOutput
	wantsPtr  int
	wantsKey  int
	tessScale float32
}

func (c *scriptedContext) SetPixelsPerPoint(ppp float32) { c.ppp = ppp }
func (c *scriptedContext) PixelsPerPoint() float32       { return c.ppp }
func (c *scriptedContext) BeginPass(in input.RawInput)   { c.in = append(c.in, in) }
func (c *scriptedContext) EndPass() input.FullOutput     { return c.out }

func (c *scriptedContext) WantsPointerInput() bool {
	c.wantsPtr++
	return false
}

func (c *scriptedContext) WantsKeyboardInput() bool {
	c.wantsKey++
	return false
}

func (c *scriptedContext) Tessellate(shapes []paint.ClippedShape, ppp float32) []paint.ClippedPrimitive {
	c.tessScale = ppp
	return nil
}

var quiet = golog.New().SetLevel("disable")

func newTestPlatform(t *testing.T, d Display, w Window, opts ...Option) *Platform {
	t.Helper()
	opts = append([]Option{WithLogger(quiet)}, opts...)
	p, err := New(d, w, opts...)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestPointerScaling(t *testing.T) {
	d := new(fakeDisplay)
	w := &fakeWindow{size: image.Pt(800, 600), scale: 2}
	p := newTestPlatform(t, d, w)
	p.BeginFrame(w)
	p.EndFrame(d)

	p.HandleEvent(native.MouseMotion{X: 100, Y: 50}, d)
	if want := f32.Pt(50, 25); p.pointer != want {
		t.Fatalf("pointer = %v, want %v", p.pointer, want)
	}
	p.HandleEvent(native.MouseButtonDown{Button: native.ButtonLeft}, d)
	want := []event.Event{
		pointer.Event{Kind: pointer.Move, Position: f32.Pt(50, 25)},
		pointer.Event{Kind: pointer.Press, Buttons: pointer.ButtonPrimary, Position: f32.Pt(50, 25)},
	}
	assertEvents(t, p.raw.Events, want...)
}

func TestMouseButtons(t *testing.T) {
	tests := []struct {
		b    native.MouseButton
		want pointer.Buttons
	}{
		{native.ButtonLeft, pointer.ButtonPrimary},
		{native.ButtonMiddle, pointer.ButtonTertiary},
		{native.ButtonRight, pointer.ButtonSecondary},
	}
	d := new(fakeDisplay)
	p := newTestPlatform(t, d, &fakeWindow{scale: 1})
	p.HandleEvent(native.KeyDown{Keycode: native.KeyLShift, Mod: native.ModLShift}, d)
	for _, tst := range tests {
		p.raw.Events = nil
		p.HandleEvent(native.MouseButtonUp{Button: tst.b}, d)
		assertEvents(t, p.raw.Events, pointer.Event{
			Kind:      pointer.Release,
			Buttons:   tst.want,
			Modifiers: key.ModShift,
		})
	}
	p.raw.Events = nil
	p.HandleEvent(native.MouseButtonDown{Button: native.ButtonX1}, d)
	p.HandleEvent(native.MouseButtonUp{Button: native.ButtonX2}, d)
	assertEvents(t, p.raw.Events)
}

func TestWheelScroll(t *testing.T) {
	d := new(fakeDisplay)
	p := newTestPlatform(t, d, &fakeWindow{scale: 1})
	p.HandleEvent(native.MouseMotion{X: 3, Y: 4}, d)
	p.HandleEvent(native.KeyDown{Keycode: native.KeyLCtrl, Mod: native.ModLCtrl}, d)
	p.raw.Events = nil
	p.HandleEvent(native.MouseWheel{X: 0.5, Y: -1}, d)
	assertEvents(t, p.raw.Events, pointer.Event{
		Kind:     pointer.Scroll,
		Position: f32.Pt(3, 4),
		Scroll:   f32.Pt(16, -32),
	})

	p = newTestPlatform(t, d, &fakeWindow{scale: 1}, WithScrollScale(10))
	p.HandleEvent(native.MouseWheel{Y: 2}, d)
	assertEvents(t, p.raw.Events, pointer.Event{Kind: pointer.Scroll, Scroll: f32.Pt(0, 20)})
}

func TestResize(t *testing.T) {
	d := new(fakeDisplay)
	p := newTestPlatform(t, d, &fakeWindow{size: image.Pt(10, 10), scale: 2})
	if want := f32.Rect(0, 0, 10, 10); p.raw.ScreenRect != want {
		t.Errorf("initial screen = %v, want %v", p.raw.ScreenRect, want)
	}
	p.HandleEvent(native.WindowResized{Width: 640, Height: 480}, d)
	if want := f32.Rect(0, 0, 640, 480); p.raw.ScreenRect != want {
		t.Errorf("screen = %v, want %v", p.raw.ScreenRect, want)
	}
	if len(p.raw.Events) != 0 {
		t.Errorf("resize queued %d events", len(p.raw.Events))
	}
}

func TestCopyShortcut(t *testing.T) {
	d := new(fakeDisplay)
	p := newTestPlatform(t, d, &fakeWindow{scale: 1})
	p.HandleEvent(native.KeyDown{Keycode: native.KeyC, Mod: native.ModLCtrl}, d)
	mods := key.ModCtrl | key.ModShortcut
	assertEvents(t, p.raw.Events,
		clipboard.CopyEvent{},
		key.Event{Name: "C", Modifiers: mods, State: key.Press},
	)
}

func TestCutShortcut(t *testing.T) {
	d := new(fakeDisplay)
	p := newTestPlatform(t, d, &fakeWindow{scale: 1})
	p.HandleEvent(native.KeyDown{Keycode: native.KeyX, Mod: native.ModRCtrl}, d)
	assertEvents(t, p.raw.Events,
		clipboard.CutEvent{},
		key.Event{Name: "X", Modifiers: key.ModCtrl, State: key.Press},
	)
}

func TestPasteShortcut(t *testing.T) {
	mods := key.ModCtrl | key.ModShortcut
	paste := native.KeyDown{Keycode: native.KeyV, Mod: native.ModLCtrl}
	keyV := key.Event{Name: "V", Modifiers: mods, State: key.Press}

	d := &fakeDisplay{text: "hello", hasText: true}
	p := newTestPlatform(t, d, &fakeWindow{scale: 1})
	p.HandleEvent(paste, d)
	assertEvents(t, p.raw.Events, clipboard.PasteEvent{Text: "hello"}, keyV)

	d = new(fakeDisplay)
	p = newTestPlatform(t, d, &fakeWindow{scale: 1})
	p.HandleEvent(paste, d)
	assertEvents(t, p.raw.Events, keyV)

	d = &fakeDisplay{hasText: true, readErr: errors.New("busy")}
	p = newTestPlatform(t, d, &fakeWindow{scale: 1})
	p.HandleEvent(paste, d)
	assertEvents(t, p.raw.Events, keyV)
}

func TestShortcutsNeedCtrl(t *testing.T) {
	d := &fakeDisplay{text: "x", hasText: true}
	p := newTestPlatform(t, d, &fakeWindow{scale: 1})
	p.HandleEvent(native.KeyDown{Keycode: native.KeyC, Mod: native.ModLGUI}, d)
	p.HandleEvent(native.KeyDown{Keycode: native.KeyV}, d)
	p.HandleEvent(native.KeyUp{Keycode: native.KeyV, Mod: native.ModLCtrl}, d)
	mods := key.ModCommand | key.ModShortcut
	assertEvents(t, p.raw.Events,
		key.Event{Name: "C", Modifiers: mods, State: key.Press},
		key.Event{Name: "V", State: key.Press},
		key.Event{Name: "V", Modifiers: key.ModCtrl | key.ModShortcut, State: key.Release},
	)
}

func TestUnmappedKeys(t *testing.T) {
	d := new(fakeDisplay)
	p := newTestPlatform(t, d, &fakeWindow{scale: 1})
	p.HandleEvent(native.KeyDown{Keycode: native.KeyUnknown, Mod: native.ModLShift}, d)
	if p.modifiers != 0 {
		t.Errorf("unknown key changed modifiers to %v", p.modifiers)
	}
	p.HandleEvent(native.KeyDown{Keycode: native.KeyLAlt, Mod: native.ModLAlt}, d)
	assertEvents(t, p.raw.Events)
	if p.modifiers != key.ModAlt {
		t.Errorf("modifiers = %v, want Alt", p.modifiers)
	}
}

func TestTextInput(t *testing.T) {
	d := new(fakeDisplay)
	p := newTestPlatform(t, d, &fakeWindow{scale: 1})
	p.HandleEvent(native.TextInput{Text: "é"}, d)
	p.HandleEvent(native.Quit{}, d)
	assertEvents(t, p.raw.Events, key.EditEvent{Text: "é"})
}

func TestContextNotified(t *testing.T) {
	ctx := new(scriptedContext)
	d := new(fakeDisplay)
	p := newTestPlatform(t, d, &fakeWindow{scale: 1}, WithContext(ctx))
	p.HandleEvent(native.MouseMotion{}, d)
	p.HandleEvent(native.MouseWheel{}, d)
	p.HandleEvent(native.MouseButtonDown{Button: native.ButtonLeft}, d)
	p.HandleEvent(native.KeyDown{Keycode: native.KeyA}, d)
	p.HandleEvent(native.KeyUp{Keycode: native.KeyA}, d)
	p.HandleEvent(native.TextInput{Text: "a"}, d)
	p.HandleEvent(native.WindowResized{Width: 1, Height: 1}, d)
	if ctx.wantsPtr != 3 {
		t.Errorf("pointer notifications = %d, want 3", ctx.wantsPtr)
	}
	if ctx.wantsKey != 3 {
		t.Errorf("keyboard notifications = %d, want 3", ctx.wantsKey)
	}
}

func TestBeginFrameDrainsInput(t *testing.T) {
	ctx := new(scriptedContext)
	d := new(fakeDisplay)
	w := &fakeWindow{size: image.Pt(200, 100), scale: 2}
	p := newTestPlatform(t, d, w, WithContext(ctx))
	now := time.Unix(100, 0)
	p.now = func() time.Time { return now }
	p.start = now

	p.HandleEvent(native.KeyDown{Keycode: native.KeyA, Mod: native.ModLShift}, d)
	p.HandleEvent(native.TextInput{Text: "A"}, d)
	now = now.Add(time.Second)
	if got := p.BeginFrame(w); got != input.Context(ctx) {
		t.Error("BeginFrame returned a different context")
	}
	if len(p.raw.Events) != 0 {
		t.Errorf("%d events pending after BeginFrame", len(p.raw.Events))
	}
	if ctx.ppp != 2 {
		t.Errorf("ppp = %v, want 2", ctx.ppp)
	}
	in := ctx.in[0]
	if len(in.Events) != 2 {
		t.Errorf("pass got %d events, want 2", len(in.Events))
	}
	if want := f32.Rect(0, 0, 100, 50); in.ScreenRect != want {
		t.Errorf("screen = %v, want %v", in.ScreenRect, want)
	}
	if in.Time != time.Second {
		t.Errorf("time = %v, want 1s", in.Time)
	}
	if in.Modifiers != key.ModShift {
		t.Errorf("modifiers = %v, want Shift", in.Modifiers)
	}
	p.EndFrame(d)

	// An idle frame still carries the last modifiers.
	p.BeginFrame(w)
	if in := ctx.in[1]; len(in.Events) != 0 || in.Modifiers != key.ModShift {
		t.Errorf("idle pass = %+v", in)
	}
}

func TestInvalidScale(t *testing.T) {
	for _, s := range []float32{0, -1, float32(math.NaN()), float32(math.Inf(1))} {
		ctx := new(scriptedContext)
		d := new(fakeDisplay)
		w := &fakeWindow{size: image.Pt(30, 20), scale: s}
		p := newTestPlatform(t, d, w, WithContext(ctx))
		p.BeginFrame(w)
		if ctx.ppp != 1 {
			t.Errorf("scale %v: ppp = %v, want 1", s, ctx.ppp)
		}
		if want := f32.Rect(0, 0, 30, 20); ctx.in[0].ScreenRect != want {
			t.Errorf("scale %v: screen = %v, want %v", s, ctx.in[0].ScreenRect, want)
		}
	}
}

func TestEndFrameClipboard(t *testing.T) {
	ctx := &scriptedContext{out: input.FullOutput{Platform: input.PlatformOutput{
		Commands: []event.Command{
			clipboard.WriteCmd{Text: "first"},
			key.FocusCmd{},
			clipboard.WriteCmd{Text: "second"},
		},
	}}}
	d := new(fakeDisplay)
	w := &fakeWindow{scale: 1}
	p := newTestPlatform(t, d, w, WithContext(ctx))
	p.BeginFrame(w)
	if _, err := p.EndFrame(d); err != nil {
		t.Fatal(err)
	}
	if len(d.writes) != 2 || d.writes[0] != "first" || d.writes[1] != "second" {
		t.Errorf("clipboard writes = %q", d.writes)
	}

	d.writeErr = errors.New("denied")
	p.BeginFrame(w)
	if _, err := p.EndFrame(d); err != nil {
		t.Errorf("clipboard failure returned %v", err)
	}
}

func TestCursorCreatedOnce(t *testing.T) {
	ctx := new(scriptedContext)
	ctx.out.Platform.Cursor = pointer.CursorWait
	d := new(fakeDisplay)
	w := &fakeWindow{scale: 1}
	p := newTestPlatform(t, d, w, WithContext(ctx))
	if len(d.cursors) != 1 || d.cursors[0].kind != native.CursorArrow {
		t.Fatalf("initial cursors = %v", d.cursors)
	}
	arrow := d.cursors[0]

	for i := 0; i < 2; i++ {
		p.BeginFrame(w)
		if _, err := p.EndFrame(d); err != nil {
			t.Fatal(err)
		}
	}
	if len(d.cursors) != 2 {
		t.Fatalf("created %d cursors, want 2", len(d.cursors))
	}
	wait := d.cursors[1]
	if wait.kind != native.CursorWait || wait.set != 1 {
		t.Errorf("wait cursor = %+v, want set once", wait)
	}
	if arrow.released != 1 {
		t.Errorf("arrow released %d times, want 1", arrow.released)
	}

	p.Release()
	if wait.released != 1 {
		t.Errorf("wait released %d times after Release, want 1", wait.released)
	}
}

func TestCursorCreationFailure(t *testing.T) {
	ctx := new(scriptedContext)
	ctx.out.Platform.Cursor = pointer.CursorText
	d := new(fakeDisplay)
	w := &fakeWindow{scale: 1}
	p := newTestPlatform(t, d, w, WithContext(ctx))
	arrow := d.cursors[0]

	d.createErr = errors.New("no cursor")
	p.BeginFrame(w)
	_, err := p.EndFrame(d)
	var rerr *ResourceError
	if !errors.As(err, &rerr) {
		t.Fatalf("EndFrame error = %v, want *ResourceError", err)
	}
	if !errors.Is(err, d.createErr) {
		t.Errorf("error %v does not wrap the cause", err)
	}
	if arrow.released != 0 || p.systemCursor != native.CursorArrow {
		t.Error("failed creation replaced the active cursor")
	}

	d.createErr = nil
	p.BeginFrame(w)
	if _, err := p.EndFrame(d); err != nil {
		t.Fatal(err)
	}
	if p.systemCursor != native.CursorIBeam || arrow.released != 1 {
		t.Error("cursor not retried after failure")
	}
}

func TestCursorDisabled(t *testing.T) {
	ctx := new(scriptedContext)
	ctx.out.Platform.Cursor = pointer.CursorGrab
	d := &fakeDisplay{createErr: errors.New("headless")}
	w := &fakeWindow{scale: 1}
	p := newTestPlatform(t, d, w, WithContext(ctx))
	d.createErr = nil
	p.BeginFrame(w)
	if _, err := p.EndFrame(d); err != nil {
		t.Fatal(err)
	}
	if len(d.cursors) != 0 {
		t.Errorf("created %d cursors with cursor management disabled", len(d.cursors))
	}
	p.Release()
}

func TestTextInputStarted(t *testing.T) {
	d := new(textInputDisplay)
	newTestPlatform(t, d, &fakeWindow{scale: 1})
	if d.started != 1 {
		t.Errorf("text input started %d times, want 1", d.started)
	}

	d = &textInputDisplay{err: errors.New("no ime")}
	_, err := New(d, &fakeWindow{scale: 1}, WithLogger(quiet))
	var rerr *ResourceError
	if !errors.As(err, &rerr) {
		t.Errorf("New error = %v, want *ResourceError", err)
	}
}

func TestTessellateUsesContextScale(t *testing.T) {
	ctx := new(scriptedContext)
	d := new(fakeDisplay)
	w := &fakeWindow{scale: 3}
	p := newTestPlatform(t, d, w, WithContext(ctx))
	p.BeginFrame(w)
	out, _ := p.EndFrame(d)
	p.Tessellate(out)
	if ctx.tessScale != 3 {
		t.Errorf("tessellated at %v, want 3", ctx.tessScale)
	}
}

func TestRouterFrame(t *testing.T) {
	d := new(fakeDisplay)
	w := &fakeWindow{size: image.Pt(100, 100), scale: 1}
	p := newTestPlatform(t, d, w)
	p.HandleEvent(native.MouseMotion{X: 5, Y: 5}, d)
	r := p.BeginFrame(w).(*input.Router)
	if got := r.PointerPos(); got != f32.Pt(5, 5) {
		t.Errorf("router pointer = %v", got)
	}
	r.Execute(clipboard.WriteCmd{Text: "copied"})
	r.SetCursor(pointer.CursorPointer)
	r.Paint(f32.Rect(0, 0, 100, 100), paint.RectShape{Rect: f32.Rect(0, 0, 10, 10)})
	out, err := p.EndFrame(d)
	if err != nil {
		t.Fatal(err)
	}
	if len(d.writes) != 1 || d.writes[0] != "copied" {
		t.Errorf("clipboard writes = %q", d.writes)
	}
	if p.systemCursor != native.CursorHand {
		t.Errorf("cursor = %v, want Hand", p.systemCursor)
	}
	if prims := p.Tessellate(out); len(prims) != 1 {
		t.Errorf("got %d primitives, want 1", len(prims))
	}
}

func assertEvents(t *testing.T, got []event.Event, want ...event.Event) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got events %#v, want %#v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %#v, want %#v", i, got[i], want[i])
		}
	}
}
