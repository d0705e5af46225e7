// SPDX-License-Identifier: Unlicense OR MIT

package term

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/uibridge/uibridge/native"
)

const heldButtons = tcell.ButtonPrimary | tcell.ButtonSecondary | tcell.ButtonMiddle

// Converter translates tcell events. Terminals report the held mouse
// buttons with every mouse event and no key releases, so Converter
// remembers the previous mouse state and pairs every key press with
// its release.
type Converter struct {
	buttons tcell.ButtonMask
	pos     struct {
		x, y  int
		valid bool
	}
}

// Convert translates e into zero or more native events.
func (c *Converter) Convert(e tcell.Event) []native.Event {
	switch e := e.(type) {
	case *tcell.EventResize:
		w, h := e.Size()
		return []native.Event{native.WindowResized{Width: w, Height: h}}
	case *tcell.EventMouse:
		return c.mouse(e)
	case *tcell.EventKey:
		return convertKey(e)
	}
	return nil
}

func (c *Converter) mouse(e *tcell.EventMouse) []native.Event {
	var evts []native.Event
	x, y := e.Position()
	fx, fy := float32(x), float32(y)
	if !c.pos.valid || c.pos.x != x || c.pos.y != y {
		c.pos.x, c.pos.y, c.pos.valid = x, y, true
		evts = append(evts, native.MouseMotion{X: fx, Y: fy})
	}
	btns := e.Buttons()
	held := btns & heldButtons
	for _, b := range []struct {
		mask tcell.ButtonMask
		btn  native.MouseButton
	}{
		{tcell.ButtonPrimary, native.ButtonLeft},
		{tcell.ButtonMiddle, native.ButtonMiddle},
		{tcell.ButtonSecondary, native.ButtonRight},
	} {
		was, is := c.buttons&b.mask != 0, held&b.mask != 0
		switch {
		case is && !was:
			evts = append(evts, native.MouseButtonDown{Button: b.btn, X: fx, Y: fy})
		case was && !is:
			evts = append(evts, native.MouseButtonUp{Button: b.btn, X: fx, Y: fy})
		}
	}
	c.buttons = held
	var wx, wy float32
	if btns&tcell.WheelUp != 0 {
		wy++
	}
	if btns&tcell.WheelDown != 0 {
		wy--
	}
	if btns&tcell.WheelRight != 0 {
		wx++
	}
	if btns&tcell.WheelLeft != 0 {
		wx--
	}
	if wx != 0 || wy != 0 {
		evts = append(evts, native.MouseWheel{X: wx, Y: wy})
	}
	return evts
}

func convertKey(e *tcell.EventKey) []native.Event {
	mod := convertMod(e.Modifiers())
	var code native.Keycode
	var text string
	switch k := e.Key(); {
	case k == tcell.KeyRune:
		r := e.Rune()
		code = runeKeycode(r)
		if unicode.IsUpper(r) && code != native.KeyUnknown {
			mod |= native.ModLShift
		}
		if mod&(native.ModCtrl|native.ModAlt) == 0 {
			text = string(r)
		}
	case k == tcell.KeyBacktab:
		code = native.KeyTab
		mod |= native.ModLShift
	case k == tcell.KeyTab, k == tcell.KeyEnter, k == tcell.KeyEscape,
		k == tcell.KeyBackspace, k == tcell.KeyBackspace2:
		code = specialKeys[k]
	case tcell.KeyCtrlA <= k && k <= tcell.KeyCtrlZ:
		code = native.KeyA + native.Keycode(k-tcell.KeyCtrlA)
		mod |= native.ModLCtrl
	case tcell.KeyF1 <= k && k <= tcell.KeyF12:
		code = native.KeyF1 + native.Keycode(k-tcell.KeyF1)
	case tcell.KeyF13 <= k && k <= tcell.KeyF24:
		code = native.KeyF13 + native.Keycode(k-tcell.KeyF13)
	default:
		code = specialKeys[k]
	}
	if code == native.KeyUnknown && text == "" {
		return nil
	}
	evts := []native.Event{native.KeyDown{Keycode: code, Mod: mod}}
	if text != "" {
		evts = append(evts, native.TextInput{Text: text})
	}
	return append(evts, native.KeyUp{Keycode: code, Mod: mod})
}

var specialKeys = map[tcell.Key]native.Keycode{
	tcell.KeyTab:        native.KeyTab,
	tcell.KeyEnter:      native.KeyReturn,
	tcell.KeyEscape:     native.KeyEscape,
	tcell.KeyBackspace:  native.KeyBackspace,
	tcell.KeyBackspace2: native.KeyBackspace,
	tcell.KeyDelete:     native.KeyDelete,
	tcell.KeyInsert:     native.KeyInsert,
	tcell.KeyHome:       native.KeyHome,
	tcell.KeyEnd:        native.KeyEnd,
	tcell.KeyPgUp:       native.KeyPageUp,
	tcell.KeyPgDn:       native.KeyPageDown,
	tcell.KeyUp:         native.KeyUpArrow,
	tcell.KeyDown:       native.KeyDownArrow,
	tcell.KeyLeft:       native.KeyLeftArrow,
	tcell.KeyRight:      native.KeyRightArrow,
	tcell.KeyPause:      native.KeyPause,
	tcell.KeyPrint:      native.KeyPrintScreen,
}

// runeKeycode returns the key code of the key producing r. Upper-case
// letters map to their key; other runes outside ASCII have no code.
func runeKeycode(r rune) native.Keycode {
	switch {
	case 'a' <= r && r <= 'z':
		return native.Keycode(r)
	case 'A' <= r && r <= 'Z':
		return native.Keycode(unicode.ToLower(r))
	case ' ' <= r && r < 0x7f:
		return native.Keycode(r)
	}
	return native.KeyUnknown
}

func convertMod(m tcell.ModMask) native.Mod {
	var mod native.Mod
	if m&tcell.ModShift != 0 {
		mod |= native.ModLShift
	}
	if m&tcell.ModCtrl != 0 {
		mod |= native.ModLCtrl
	}
	if m&tcell.ModAlt != 0 {
		mod |= native.ModLAlt
	}
	if m&tcell.ModMeta != 0 {
		mod |= native.ModLGUI
	}
	return mod
}
