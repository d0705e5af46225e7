// SPDX-License-Identifier: Unlicense OR MIT

package platform

import (
	"github.com/uibridge/uibridge/io/key"
	"github.com/uibridge/uibridge/native"
)

// KeyName returns the key name for a native key code. Modifier keys,
// lock keys and unknown codes report false.
func KeyName(code native.Keycode) (key.Name, bool) {
	switch {
	case native.KeyA <= code && code <= native.KeyZ:
		return key.Name(rune(code - native.KeyA + 'A')), true
	case native.Key0 <= code && code <= native.Key9:
		return key.Name(rune(code)), true
	case native.KeyKP1 <= code && code <= native.KeyKP9:
		return key.Name(rune(code - native.KeyKP1 + '1')), true
	case native.KeyF1 <= code && code <= native.KeyF12:
		return fkey(int(code - native.KeyF1)), true
	case native.KeyF13 <= code && code <= native.KeyF24:
		return fkey(int(code-native.KeyF13) + 12), true
	}
	var n key.Name
	switch code {
	case native.KeyKP0:
		n = "0"
	case native.KeyLeftArrow:
		n = key.NameLeftArrow
	case native.KeyRightArrow:
		n = key.NameRightArrow
	case native.KeyUpArrow:
		n = key.NameUpArrow
	case native.KeyDownArrow:
		n = key.NameDownArrow
	case native.KeyHome:
		n = key.NameHome
	case native.KeyEnd:
		n = key.NameEnd
	case native.KeyPageUp:
		n = key.NamePageUp
	case native.KeyPageDown:
		n = key.NamePageDown
	case native.KeyInsert:
		n = key.NameInsert
	case native.KeyDelete:
		n = key.NameDeleteForward
	case native.KeyBackspace:
		n = key.NameDeleteBackward
	case native.KeyTab:
		n = key.NameTab
	case native.KeyReturn:
		n = key.NameReturn
	case native.KeyKPEnter:
		n = key.NameEnter
	case native.KeyEscape:
		n = key.NameEscape
	case native.KeySpace:
		n = key.NameSpace
	case native.KeyCopy:
		n = key.NameCopy
	case native.KeyCut:
		n = key.NameCut
	case native.KeyPaste:
		n = key.NamePaste
	case native.KeyBackquote, native.KeyMinus, native.KeyEquals,
		native.KeyLeftBracket, native.KeyRightBracket, native.KeyBackslash,
		native.KeySemicolon, native.KeyQuote, native.KeyComma,
		native.KeyPeriod, native.KeySlash, native.KeyColon, native.KeyPlus,
		native.KeyQuestion, native.KeyPipe, native.KeyLeftBrace,
		native.KeyRightBrace, native.KeyTilde, native.KeyExclaim:
		n = key.Name(rune(code))
	case native.KeyKPPlus:
		n = "+"
	case native.KeyKPMinus:
		n = "-"
	case native.KeyKPMultiply:
		n = "*"
	case native.KeyKPDivide:
		n = "/"
	case native.KeyKPPeriod:
		n = "."
	case native.KeyKPEquals:
		n = "="
	default:
		return "", false
	}
	return n, true
}

var fkeys = [...]key.Name{
	key.NameF1, key.NameF2, key.NameF3, key.NameF4, key.NameF5, key.NameF6,
	key.NameF7, key.NameF8, key.NameF9, key.NameF10, key.NameF11, key.NameF12,
	key.NameF13, key.NameF14, key.NameF15, key.NameF16, key.NameF17, key.NameF18,
	key.NameF19, key.NameF20, key.NameF21, key.NameF22, key.NameF23, key.NameF24,
}

func fkey(i int) key.Name {
	return fkeys[i]
}
