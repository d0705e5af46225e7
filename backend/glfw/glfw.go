// SPDX-License-Identifier: Unlicense OR MIT

// Package glfw adapts GLFW windows to package platform.
//
// GLFW delivers input through callbacks. A Window queues the translated
// events, and Events returns them after polling. GLFW does not tell
// left and right modifier keys apart; modifiers are reported as the
// left-hand keys.
package glfw

import (
	"errors"
	"image"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/kataras/golog"

	"github.com/uibridge/uibridge/native"
	"github.com/uibridge/uibridge/platform"
)

var log = golog.Child("[glfw]")

// Window implements platform.Window and platform.Display for a GLFW
// window.
type Window struct {
	w      *glfw.Window
	events []native.Event
}

type cursor struct {
	w *glfw.Window
	c *glfw.Cursor
}

var (
	_ platform.Window  = (*Window)(nil)
	_ platform.Display = (*Window)(nil)
)

// NewWindow registers input callbacks on w. The callbacks run on the
// thread that calls Events.
func NewWindow(w *glfw.Window) *Window {
	win := &Window{w: w}
	w.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		win.push(native.WindowResized{Width: width, Height: height})
	})
	w.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		sx, sy := win.pixelRatio()
		win.push(native.MouseMotion{X: float32(x) * sx, Y: float32(y) * sy})
	})
	w.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		var b native.MouseButton
		switch button {
		case glfw.MouseButtonLeft:
			b = native.ButtonLeft
		case glfw.MouseButtonMiddle:
			b = native.ButtonMiddle
		case glfw.MouseButtonRight:
			b = native.ButtonRight
		case glfw.MouseButton4:
			b = native.ButtonX1
		case glfw.MouseButton5:
			b = native.ButtonX2
		default:
			return
		}
		switch action {
		case glfw.Press:
			win.push(native.MouseButtonDown{Button: b})
		case glfw.Release:
			win.push(native.MouseButtonUp{Button: b})
		}
	})
	w.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		win.push(native.MouseWheel{X: float32(xoff), Y: float32(yoff)})
	})
	w.SetKeyCallback(func(_ *glfw.Window, k glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
		code, mod := convertKey(k), convertMods(mods)
		switch action {
		case glfw.Press, glfw.Repeat:
			win.push(native.KeyDown{Keycode: code, Mod: mod, Repeat: action == glfw.Repeat})
		case glfw.Release:
			win.push(native.KeyUp{Keycode: code, Mod: mod})
		}
	})
	w.SetCharCallback(func(_ *glfw.Window, r rune) {
		win.push(native.TextInput{Text: string(r)})
	})
	w.SetCloseCallback(func(_ *glfw.Window) {
		win.push(native.Quit{})
	})
	return win
}

func (w *Window) push(e native.Event) {
	w.events = append(w.events, e)
}

// Events polls GLFW and returns the events received since the
// previous call.
func (w *Window) Events() []native.Event {
	glfw.PollEvents()
	evts := w.events
	w.events = nil
	return evts
}

// pixelRatio returns the framebuffer pixels per window coordinate.
func (w *Window) pixelRatio() (float32, float32) {
	ww, wh := w.w.GetSize()
	fw, fh := w.w.GetFramebufferSize()
	if ww == 0 || wh == 0 {
		return 1, 1
	}
	return float32(fw) / float32(ww), float32(fh) / float32(wh)
}

func (w *Window) Size() image.Point {
	width, height := w.w.GetFramebufferSize()
	return image.Pt(width, height)
}

func (w *Window) DisplayScale() float32 {
	sx, _ := w.w.GetContentScale()
	if sx <= 0 {
		return 1
	}
	return sx
}

func (w *Window) HasClipboardText() bool {
	return w.w.GetClipboardString() != ""
}

func (w *Window) ClipboardText() (string, error) {
	return w.w.GetClipboardString(), nil
}

func (w *Window) SetClipboardText(s string) error {
	w.w.SetClipboardString(s)
	return nil
}

// CreateSystemCursor returns the GLFW standard cursor closest to c.
// GLFW 3.3 has no wait, diagonal or forbidden cursors; those fall back
// to the arrow.
func (w *Window) CreateSystemCursor(c native.SystemCursor) (platform.Cursor, error) {
	shape := glfw.ArrowCursor
	switch c {
	case native.CursorIBeam:
		shape = glfw.IBeamCursor
	case native.CursorCrosshair:
		shape = glfw.CrosshairCursor
	case native.CursorHand, native.CursorSizeAll:
		shape = glfw.HandCursor
	case native.CursorSizeWE:
		shape = glfw.HResizeCursor
	case native.CursorSizeNS:
		shape = glfw.VResizeCursor
	case native.CursorArrow:
	default:
		log.Debugf("no standard cursor for %v, using arrow", c)
	}
	gc := glfw.CreateStandardCursor(shape)
	if gc == nil {
		return nil, errors.New("glfw: CreateStandardCursor failed")
	}
	return cursor{w: w.w, c: gc}, nil
}

func (c cursor) Set() {
	c.w.SetCursor(c.c)
}

func (c cursor) Release() {
	c.c.Destroy()
}

func convertMods(m glfw.ModifierKey) native.Mod {
	var mod native.Mod
	if m&glfw.ModShift != 0 {
		mod |= native.ModLShift
	}
	if m&glfw.ModControl != 0 {
		mod |= native.ModLCtrl
	}
	if m&glfw.ModAlt != 0 {
		mod |= native.ModLAlt
	}
	if m&glfw.ModSuper != 0 {
		mod |= native.ModLGUI
	}
	return mod
}

func convertKey(k glfw.Key) native.Keycode {
	switch {
	case glfw.KeyA <= k && k <= glfw.KeyZ:
		return native.Keycode(k-glfw.KeyA) + native.KeyA
	case glfw.Key0 <= k && k <= glfw.Key9:
		return native.Keycode(k-glfw.Key0) + native.Key0
	case glfw.KeyF1 <= k && k <= glfw.KeyF12:
		return native.Keycode(k-glfw.KeyF1) + native.KeyF1
	case glfw.KeyF13 <= k && k <= glfw.KeyF24:
		return native.Keycode(k-glfw.KeyF13) + native.KeyF13
	case glfw.KeyKP1 <= k && k <= glfw.KeyKP9:
		return native.Keycode(k-glfw.KeyKP1) + native.KeyKP1
	}
	switch k {
	case glfw.KeySpace, glfw.KeyApostrophe, glfw.KeyComma, glfw.KeyMinus,
		glfw.KeyPeriod, glfw.KeySlash, glfw.KeySemicolon, glfw.KeyEqual,
		glfw.KeyLeftBracket, glfw.KeyBackslash, glfw.KeyRightBracket,
		glfw.KeyGraveAccent:
		// Printable GLFW keys use their ASCII value.
		return native.Keycode(k)
	case glfw.KeyEscape:
		return native.KeyEscape
	case glfw.KeyEnter:
		return native.KeyReturn
	case glfw.KeyTab:
		return native.KeyTab
	case glfw.KeyBackspace:
		return native.KeyBackspace
	case glfw.KeyInsert:
		return native.KeyInsert
	case glfw.KeyDelete:
		return native.KeyDelete
	case glfw.KeyRight:
		return native.KeyRightArrow
	case glfw.KeyLeft:
		return native.KeyLeftArrow
	case glfw.KeyDown:
		return native.KeyDownArrow
	case glfw.KeyUp:
		return native.KeyUpArrow
	case glfw.KeyPageUp:
		return native.KeyPageUp
	case glfw.KeyPageDown:
		return native.KeyPageDown
	case glfw.KeyHome:
		return native.KeyHome
	case glfw.KeyEnd:
		return native.KeyEnd
	case glfw.KeyCapsLock:
		return native.KeyCapsLock
	case glfw.KeyScrollLock:
		return native.KeyScrollLock
	case glfw.KeyNumLock:
		return native.KeyNumLock
	case glfw.KeyPrintScreen:
		return native.KeyPrintScreen
	case glfw.KeyPause:
		return native.KeyPause
	case glfw.KeyKP0:
		return native.KeyKP0
	case glfw.KeyKPDecimal:
		return native.KeyKPPeriod
	case glfw.KeyKPDivide:
		return native.KeyKPDivide
	case glfw.KeyKPMultiply:
		return native.KeyKPMultiply
	case glfw.KeyKPSubtract:
		return native.KeyKPMinus
	case glfw.KeyKPAdd:
		return native.KeyKPPlus
	case glfw.KeyKPEnter:
		return native.KeyKPEnter
	case glfw.KeyKPEqual:
		return native.KeyKPEquals
	case glfw.KeyLeftShift:
		return native.KeyLShift
	case glfw.KeyLeftControl:
		return native.KeyLCtrl
	case glfw.KeyLeftAlt:
		return native.KeyLAlt
	case glfw.KeyLeftSuper:
		return native.KeyLGUI
	case glfw.KeyRightShift:
		return native.KeyRShift
	case glfw.KeyRightControl:
		return native.KeyRCtrl
	case glfw.KeyRightAlt:
		return native.KeyRAlt
	case glfw.KeyRightSuper:
		return native.KeyRGUI
	case glfw.KeyMenu:
		return native.KeyMenu
	}
	return native.KeyUnknown
}
