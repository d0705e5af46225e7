// SPDX-License-Identifier: Unlicense OR MIT

// Package platform connects a native windowing backend to an
// immediate-mode user interface context.
//
// A Platform translates native events into the events of package io,
// drives one pass of the context per frame, and applies the output of
// the pass to the backend: clipboard writes and the pointer cursor.
//
// A typical frame looks like
//
//	for _, e := range backendEvents() {
//		p.HandleEvent(e, display)
//	}
//	ctx := p.BeginFrame(window)
//	// Run widgets against ctx.
//	out, err := p.EndFrame(display)
//	prims := p.Tessellate(out)
//
// A Platform is not safe for concurrent use; call it from the thread
// that owns the window.
package platform

import (
	"errors"
	"image"
	"math"
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

// Window is the native window a Platform reads its metrics from.
type Window interface {
	// Size returns the drawable size in physical pixels.
	Size() image.Point
	// DisplayScale returns the number of physical pixels per
	// logical point.
	DisplayScale() float32
}

// Display provides the services of the windowing system.
type Display interface {
	HasClipboardText() bool
	ClipboardText() (string, error)
	SetClipboardText(s string) error
	CreateSystemCursor(c native.SystemCursor) (Cursor, error)
}

// Cursor is a system cursor resource.
type Cursor interface {
	// Set makes the cursor the active pointer icon.
	Set()
	// Release frees the resource.
	Release()
}

// TextInputStarter is implemented by displays that must be told to
// deliver text input events.
type TextInputStarter interface {
	StartTextInput() error
}

// Platform is the bridge between a backend and an input.Context.
type Platform struct {
	log         *golog.Logger
	ctx         input.Context
	scrollScale float32

	// raw collects the input of the next pass.
	raw            input.RawInput
	pixelsPerPoint float32
	pointer        f32.Point
	modifiers      key.Modifiers

	// cursor is nil if cursor management is disabled.
	cursor       Cursor
	systemCursor native.SystemCursor

	start time.Time
	now   func() time.Time
}

// New returns a Platform for the display and window. It starts text
// input if the display requires it and installs the arrow cursor.
func New(d Display, w Window, opts ...Option) (*Platform, error) {
	p := &Platform{
		log:            golog.Child("[platform]"),
		scrollScale:    DefaultScrollScale,
		pixelsPerPoint: 1,
		now:            time.Now,
	}
	for _, o := range opts {
		o(p)
	}
	if p.ctx == nil {
		p.ctx = input.NewRouter()
	}
	if s, ok := d.(TextInputStarter); ok {
		if err := s.StartTextInput(); err != nil {
			return nil, &ResourceError{Resource: "text input", Err: err}
		}
	}
	c, err := d.CreateSystemCursor(native.CursorArrow)
	if err != nil {
		p.log.Warnf("arrow cursor unavailable, cursor changes disabled: %v", err)
	} else {
		p.cursor = c
		p.systemCursor = native.CursorArrow
	}
	sz := w.Size()
	p.raw.ScreenRect = f32.Rect(0, 0, float32(sz.X), float32(sz.Y))
	p.start = p.now()
	return p, nil
}

// Context returns the driven context.
func (p *Platform) Context() input.Context {
	return p.ctx
}

// HandleEvent translates e and queues the result for the next frame.
// d serves clipboard reads for paste shortcuts.
func (p *Platform) HandleEvent(e native.Event, d Display) {
	switch e := e.(type) {
	case native.WindowResized:
		p.raw.ScreenRect = f32.Rect(0, 0, float32(e.Width), float32(e.Height))
	case native.MouseButtonDown:
		p.button(e.Button, pointer.Press)
	case native.MouseButtonUp:
		p.button(e.Button, pointer.Release)
	case native.MouseMotion:
		p.pointer = f32.Pt(e.X, e.Y).Div(p.pixelsPerPoint)
		p.push(pointer.Event{
			Kind:     pointer.Move,
			Position: p.pointer,
		})
		p.notifyPointer()
	case native.MouseWheel:
		// Wheel events carry no modifiers.
		p.push(pointer.Event{
			Kind:     pointer.Scroll,
			Position: p.pointer,
			Scroll:   f32.Pt(e.X, e.Y).Mul(p.scrollScale),
		})
		p.notifyPointer()
	case native.KeyDown:
		if e.Keycode != native.KeyUnknown {
			p.key(e.Keycode, e.Mod, key.Press, d)
		}
		p.notifyKeyboard()
	case native.KeyUp:
		if e.Keycode != native.KeyUnknown {
			p.key(e.Keycode, e.Mod, key.Release, nil)
		}
		p.notifyKeyboard()
	case native.TextInput:
		p.push(key.EditEvent{Text: e.Text})
		p.notifyKeyboard()
	}
}

func (p *Platform) button(b native.MouseButton, kind pointer.Kind) {
	var btn pointer.Buttons
	switch b {
	case native.ButtonLeft:
		btn = pointer.ButtonPrimary
	case native.ButtonMiddle:
		btn = pointer.ButtonTertiary
	case native.ButtonRight:
		btn = pointer.ButtonSecondary
	default:
		return
	}
	p.push(pointer.Event{
		Kind:      kind,
		Buttons:   btn,
		Position:  p.pointer,
		Modifiers: p.modifiers,
	})
	p.notifyPointer()
}

// key decodes a key transition. Clipboard shortcuts are only
// recognized on press, when d is non-nil.
func (p *Platform) key(code native.Keycode, mod native.Mod, state key.State, d Display) {
	p.modifiers = decodeModifiers(mod)
	p.raw.Modifiers = p.modifiers
	name, ok := KeyName(code)
	if !ok {
		return
	}
	if d != nil && p.modifiers.Contain(key.ModCtrl) {
		switch name {
		case "C":
			p.push(clipboard.CopyEvent{})
		case "X":
			p.push(clipboard.CutEvent{})
		case "V":
			if d.HasClipboardText() {
				text, err := d.ClipboardText()
				if err != nil {
					p.log.Warnf("read clipboard: %v", err)
				} else {
					p.push(clipboard.PasteEvent{Text: text})
				}
			}
		}
	}
	p.push(key.Event{
		Name:      name,
		Modifiers: p.modifiers,
		State:     state,
	})
}

func (p *Platform) push(e event.Event) {
	p.raw.Events = append(p.raw.Events, e)
}

func (p *Platform) notifyPointer() {
	if p.ctx.WantsPointerInput() {
		p.log.Debugf("pointer input claimed by the interface")
	}
}

func (p *Platform) notifyKeyboard() {
	if p.ctx.WantsKeyboardInput() {
		p.log.Debugf("keyboard input claimed by the interface")
	}
}

// BeginFrame updates the display metrics from w, hands the queued
// input to the context and starts a pass. It returns the context for
// the widgets of the frame.
func (p *Platform) BeginFrame(w Window) input.Context {
	scale := w.DisplayScale()
	if !(scale > 0) || math.IsInf(float64(scale), 0) {
		p.log.Warnf("invalid display scale %v, using 1", scale)
		scale = 1
	}
	p.pixelsPerPoint = scale
	p.ctx.SetPixelsPerPoint(scale)
	sz := w.Size()
	p.raw.ScreenRect = f32.Rect(0, 0, float32(sz.X), float32(sz.Y)).Div(scale)
	p.raw.Time = p.now().Sub(p.start)
	p.raw.Modifiers = p.modifiers
	raw := p.raw
	p.raw = input.RawInput{}
	p.ctx.BeginPass(raw)
	return p.ctx
}

// EndFrame ends the pass and applies its platform output: clipboard
// writes and the cursor icon. A cursor that cannot be created is
// reported as a *ResourceError after the clipboard is updated; the
// previous cursor stays active and creation is retried next frame.
func (p *Platform) EndFrame(d Display) (input.FullOutput, error) {
	out := p.ctx.EndPass()
	for _, c := range out.Platform.Commands {
		if w, ok := c.(clipboard.WriteCmd); ok {
			if err := d.SetClipboardText(w.Text); err != nil {
				p.log.Errorf("write clipboard: %v", err)
			}
		}
	}
	return out, p.updateCursor(d, out.Platform.Cursor)
}

func (p *Platform) updateCursor(d Display, c pointer.Cursor) error {
	if p.cursor == nil {
		return nil
	}
	sc := systemCursor(c)
	if sc == p.systemCursor {
		return nil
	}
	nc, err := d.CreateSystemCursor(sc)
	if err != nil {
		return &ResourceError{Resource: "cursor " + sc.String(), Err: err}
	}
	if nc == nil {
		return &ResourceError{Resource: "cursor " + sc.String(), Err: errors.New("no cursor returned")}
	}
	nc.Set()
	p.cursor.Release()
	p.cursor = nc
	p.systemCursor = sc
	return nil
}

// Tessellate converts the shapes of out into meshes at the current
// display scale.
func (p *Platform) Tessellate(out input.FullOutput) []paint.ClippedPrimitive {
	return p.ctx.Tessellate(out.Shapes, p.ctx.PixelsPerPoint())
}

// Release frees the held cursor. The Platform must not be used
// afterwards.
func (p *Platform) Release() {
	if p.cursor != nil {
		p.cursor.Release()
		p.cursor = nil
	}
}
