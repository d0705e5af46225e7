// SPDX-License-Identifier: Unlicense OR MIT

// Package sdl adapts SDL2 windows and events to package platform.
//
// SDL key codes, modifier bits, mouse buttons and system cursors share
// their numbering with package native, so conversion is by value.
package sdl

import (
	"errors"
	"image"

	"github.com/kataras/golog"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/uibridge/uibridge/native"
	"github.com/uibridge/uibridge/platform"
)

// baseDPI is the display density of a scale factor of 1.
const baseDPI = 96

var log = golog.Child("[sdl]")

// Display implements platform.Display with the global SDL state.
type Display struct{}

// Window implements platform.Window for an SDL window.
type Window struct {
	*sdl.Window
}

type cursor struct {
	c *sdl.Cursor
}

var (
	_ platform.Display          = Display{}
	_ platform.TextInputStarter = Display{}
	_ platform.Window           = Window{}
)

var systemCursors = [...]sdl.SystemCursor{
	native.CursorArrow:     sdl.SYSTEM_CURSOR_ARROW,
	native.CursorIBeam:     sdl.SYSTEM_CURSOR_IBEAM,
	native.CursorWait:      sdl.SYSTEM_CURSOR_WAIT,
	native.CursorCrosshair: sdl.SYSTEM_CURSOR_CROSSHAIR,
	native.CursorWaitArrow: sdl.SYSTEM_CURSOR_WAITARROW,
	native.CursorSizeNWSE:  sdl.SYSTEM_CURSOR_SIZENWSE,
	native.CursorSizeNESW:  sdl.SYSTEM_CURSOR_SIZENESW,
	native.CursorSizeWE:    sdl.SYSTEM_CURSOR_SIZEWE,
	native.CursorSizeNS:    sdl.SYSTEM_CURSOR_SIZENS,
	native.CursorSizeAll:   sdl.SYSTEM_CURSOR_SIZEALL,
	native.CursorNo:        sdl.SYSTEM_CURSOR_NO,
	native.CursorHand:      sdl.SYSTEM_CURSOR_HAND,
}

func (Display) HasClipboardText() bool {
	return sdl.HasClipboardText()
}

func (Display) ClipboardText() (string, error) {
	return sdl.GetClipboardText()
}

func (Display) SetClipboardText(s string) error {
	return sdl.SetClipboardText(s)
}

func (Display) CreateSystemCursor(c native.SystemCursor) (platform.Cursor, error) {
	if c < 0 || int(c) >= len(systemCursors) {
		return nil, errors.New("sdl: unknown system cursor " + c.String())
	}
	sc := sdl.CreateSystemCursor(systemCursors[c])
	if sc == nil {
		if err := sdl.GetError(); err != nil {
			return nil, err
		}
		return nil, errors.New("sdl: CreateSystemCursor failed")
	}
	return cursor{c: sc}, nil
}

func (Display) StartTextInput() error {
	sdl.StartTextInput()
	return nil
}

func (c cursor) Set() {
	sdl.SetCursor(c.c)
}

func (c cursor) Release() {
	sdl.FreeCursor(c.c)
}

func (w Window) Size() image.Point {
	width, height := w.GetSize()
	return image.Pt(int(width), int(height))
}

// DisplayScale derives the scale from the diagonal DPI of the display
// showing the window. It returns 1 if SDL cannot report the DPI.
func (w Window) DisplayScale() float32 {
	idx, err := w.GetDisplayIndex()
	if err != nil {
		log.Debugf("display index: %v", err)
		return 1
	}
	ddpi, _, _, err := sdl.GetDisplayDPI(idx)
	if err != nil || ddpi <= 0 {
		log.Debugf("display %d DPI unavailable: %v", idx, err)
		return 1
	}
	return ddpi / baseDPI
}

// Convert translates an SDL event. It reports false for events
// without a native counterpart.
func Convert(e sdl.Event) (native.Event, bool) {
	switch e := e.(type) {
	case *sdl.WindowEvent:
		switch e.Event {
		case sdl.WINDOWEVENT_RESIZED, sdl.WINDOWEVENT_SIZE_CHANGED:
			return native.WindowResized{Width: int(e.Data1), Height: int(e.Data2)}, true
		}
	case *sdl.MouseButtonEvent:
		b := native.MouseButton(e.Button)
		x, y := float32(e.X), float32(e.Y)
		if e.Type == sdl.MOUSEBUTTONDOWN {
			return native.MouseButtonDown{Button: b, X: x, Y: y}, true
		}
		return native.MouseButtonUp{Button: b, X: x, Y: y}, true
	case *sdl.MouseMotionEvent:
		return native.MouseMotion{X: float32(e.X), Y: float32(e.Y)}, true
	case *sdl.MouseWheelEvent:
		x, y := float32(e.X), float32(e.Y)
		if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
			x, y = -x, -y
		}
		return native.MouseWheel{X: x, Y: y}, true
	case *sdl.KeyboardEvent:
		code := native.Keycode(e.Keysym.Sym)
		mod := native.Mod(e.Keysym.Mod)
		if e.Type == sdl.KEYDOWN {
			return native.KeyDown{Keycode: code, Mod: mod, Repeat: e.Repeat != 0}, true
		}
		return native.KeyUp{Keycode: code, Mod: mod}, true
	case *sdl.TextInputEvent:
		return native.TextInput{Text: e.GetText()}, true
	case *sdl.QuitEvent:
		return native.Quit{}, true
	}
	return nil, false
}

// Events drains the SDL event queue.
func Events() []native.Event {
	var evts []native.Event
	for e := sdl.PollEvent(); e != nil; e = sdl.PollEvent() {
		if ne, ok := Convert(e); ok {
			evts = append(evts, ne)
		}
	}
	return evts
}
