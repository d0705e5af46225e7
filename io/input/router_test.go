// SPDX-License-Identifier: Unlicense OR MIT

package input

import (
	"image/color"
	"testing"

	"github.com/uibridge/uibridge/f32"
	"github.com/uibridge/uibridge/io/clipboard"
	"github.com/uibridge/uibridge/io/event"
	"github.com/uibridge/uibridge/io/key"
	"github.com/uibridge/uibridge/io/pointer"
	"github.com/uibridge/uibridge/op/paint"
)

var _ Context = (*Router)(nil)

func TestRouterEventOrder(t *testing.T) {
	r := NewRouter()
	evts := []event.Event{
		pointer.Event{Kind: pointer.Move, Position: f32.Pt(1, 2)},
		key.EditEvent{Text: "a"},
		clipboard.CopyEvent{},
	}
	r.BeginPass(RawInput{Events: evts})
	for i, want := range evts {
		got, ok := r.Event()
		if !ok {
			t.Fatalf("event %d missing", i)
		}
		if got != want {
			t.Errorf("event %d = %#v, want %#v", i, got, want)
		}
	}
	if _, ok := r.Event(); ok {
		t.Error("unexpected extra event")
	}
	if n := len(r.Events()); n != len(evts) {
		t.Errorf("Events() has %d entries, want %d", n, len(evts))
	}
	r.EndPass()
}

func TestRouterOutputResetsPerPass(t *testing.T) {
	r := NewRouter()
	r.BeginPass(RawInput{})
	r.SetCursor(pointer.CursorText)
	r.Execute(clipboard.WriteCmd{Text: "one"})
	r.Execute(clipboard.WriteCmd{Text: "two"})
	r.Paint(f32.Rect(0, 0, 10, 10), paint.RectShape{Rect: f32.Rect(0, 0, 5, 5)})
	out := r.EndPass()
	if out.Platform.Cursor != pointer.CursorText {
		t.Errorf("cursor = %v, want Text", out.Platform.Cursor)
	}
	assertWrites(t, out.Platform.Commands, "one", "two")
	if len(out.Shapes) != 1 {
		t.Errorf("got %d shapes, want 1", len(out.Shapes))
	}

	r.BeginPass(RawInput{})
	out = r.EndPass()
	if out.Platform.Cursor != pointer.CursorDefault {
		t.Errorf("cursor = %v, want Default", out.Platform.Cursor)
	}
	assertWrites(t, out.Platform.Commands)
	if len(out.Shapes) != 0 {
		t.Errorf("got %d shapes, want 0", len(out.Shapes))
	}
}

func TestRouterDropsNilShapes(t *testing.T) {
	r := NewRouter()
	r.BeginPass(RawInput{})
	r.Paint(f32.Rect(0, 0, 10, 10), nil)
	r.Paint(f32.Rect(0, 0, 10, 10), (*paint.RectShape)(nil))
	r.Paint(f32.Rect(0, 0, 10, 10), (*paint.CircleShape)(nil))
	out := r.EndPass()
	if len(out.Shapes) != 0 {
		t.Errorf("got %d shapes, want 0", len(out.Shapes))
	}
	if r.WantsPointerInput() {
		t.Error("nil shapes claimed the pointer")
	}
}

func TestRouterFocus(t *testing.T) {
	r := NewRouter()
	tag := new(int)
	if r.WantsKeyboardInput() {
		t.Error("no focus expected")
	}
	r.BeginPass(RawInput{})
	r.Execute(key.FocusCmd{Tag: tag})
	out := r.EndPass()
	if len(out.Platform.Commands) != 0 {
		t.Error("focus command must not reach the platform")
	}
	if !r.WantsKeyboardInput() || !r.Focused(tag) {
		t.Error("expected focus")
	}
	r.BeginPass(RawInput{})
	r.Execute(key.FocusCmd{})
	r.EndPass()
	if r.WantsKeyboardInput() {
		t.Error("focus not cleared")
	}
}

func TestRouterWantsPointer(t *testing.T) {
	r := NewRouter()
	r.BeginPass(RawInput{})
	r.Paint(f32.Rect(0, 0, 100, 100), paint.RectShape{Rect: f32.Rect(10, 10, 20, 20), Color: color.NRGBA{A: 0xff}})
	r.EndPass()

	r.BeginPass(RawInput{Events: []event.Event{
		pointer.Event{Kind: pointer.Move, Position: f32.Pt(15, 15)},
	}})
	if !r.WantsPointerInput() {
		t.Error("pointer over painted area should be wanted")
	}
	r.EndPass()

	r.BeginPass(RawInput{Events: []event.Event{
		pointer.Event{Kind: pointer.Move, Position: f32.Pt(50, 50)},
		pointer.Event{Kind: pointer.Press, Buttons: pointer.ButtonPrimary, Position: f32.Pt(50, 50)},
	}})
	if !r.WantsPointerInput() {
		t.Error("held button should be wanted")
	}
	if r.Buttons() != pointer.ButtonPrimary {
		t.Errorf("buttons = %v, want primary", r.Buttons())
	}
	r.EndPass()

	r.BeginPass(RawInput{Events: []event.Event{
		pointer.Event{Kind: pointer.Release, Buttons: pointer.ButtonPrimary, Position: f32.Pt(50, 50)},
	}})
	r.EndPass()
	if r.WantsPointerInput() {
		t.Error("pointer outside painted area with no buttons should not be wanted")
	}
}

func TestRouterPixelsPerPoint(t *testing.T) {
	r := NewRouter()
	if got := r.PixelsPerPoint(); got != 1 {
		t.Errorf("default ppp = %v, want 1", got)
	}
	r.SetPixelsPerPoint(2)
	if got := r.PixelsPerPoint(); got != 2 {
		t.Errorf("ppp = %v, want 2", got)
	}
	r.SetPixelsPerPoint(0)
	if got := r.PixelsPerPoint(); got != 1 {
		t.Errorf("ppp = %v, want 1 after invalid value", got)
	}
	var zero Router
	if got := zero.PixelsPerPoint(); got != 1 {
		t.Errorf("zero Router ppp = %v, want 1", got)
	}
}

func TestRouterMisuse(t *testing.T) {
	r := NewRouter()
	assertPanics(t, "EndPass without BeginPass", func() { r.EndPass() })
	r.BeginPass(RawInput{})
	assertPanics(t, "nested BeginPass", func() { r.BeginPass(RawInput{}) })
}

func assertWrites(t *testing.T, cmds []event.Command, want ...string) {
	t.Helper()
	var got []string
	for _, c := range cmds {
		if w, ok := c.(clipboard.WriteCmd); ok {
			got = append(got, w.Text)
		}
	}
	if len(got) != len(want) {
		t.Fatalf("got clipboard writes %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("write %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func assertPanics(t *testing.T, name string, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	f()
}
