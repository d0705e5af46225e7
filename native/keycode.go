// SPDX-License-Identifier: Unlicense OR MIT

package native

// Keycode is a layout-dependent key code. Printable keys use the
// character they produce without modifiers; other keys use their
// scancode with ScancodeMask set.
type Keycode int32

// ScancodeMask marks key codes derived from scancodes.
const ScancodeMask Keycode = 1 << 30

// KeycodeFromScancode returns the key code of a key without a
// character representation.
func KeycodeFromScancode(sc int) Keycode {
	return Keycode(sc) | ScancodeMask
}

const (
	KeyUnknown Keycode = 0

	KeyReturn     Keycode = '\r'
	KeyEscape     Keycode = '\x1b'
	KeyBackspace  Keycode = '\b'
	KeyTab        Keycode = '\t'
	KeySpace      Keycode = ' '
	KeyExclaim    Keycode = '!'
	KeyQuoteDbl   Keycode = '"'
	KeyHash       Keycode = '#'
	KeyDollar     Keycode = '$'
	KeyPercent    Keycode = '%'
	KeyAmpersand  Keycode = '&'
	KeyQuote      Keycode = '\''
	KeyLeftParen  Keycode = '('
	KeyRightParen Keycode = ')'
	KeyAsterisk   Keycode = '*'
	KeyPlus       Keycode = '+'
	KeyComma      Keycode = ','
	KeyMinus      Keycode = '-'
	KeyPeriod     Keycode = '.'
	KeySlash      Keycode = '/'
	Key0          Keycode = '0'
	Key1          Keycode = '1'
	Key2          Keycode = '2'
	Key3          Keycode = '3'
	Key4          Keycode = '4'
	Key5          Keycode = '5'
	Key6          Keycode = '6'
	Key7          Keycode = '7'
	Key8          Keycode = '8'
	Key9          Keycode = '9'
	KeyColon      Keycode = ':'
	KeySemicolon  Keycode = ';'
	KeyLess       Keycode = '<'
	KeyEquals     Keycode = '='
	KeyGreater    Keycode = '>'
	KeyQuestion   Keycode = '?'
	KeyAt         Keycode = '@'
	KeyLeftBrace  Keycode = '{'
	KeyPipe       Keycode = '|'
	KeyRightBrace Keycode = '}'
	KeyTilde      Keycode = '~'

	KeyLeftBracket  Keycode = '['
	KeyBackslash    Keycode = '\\'
	KeyRightBracket Keycode = ']'
	KeyCaret        Keycode = '^'
	KeyUnderscore   Keycode = '_'
	KeyBackquote    Keycode = '`'

	KeyA Keycode = 'a'
	KeyB Keycode = 'b'
	KeyC Keycode = 'c'
	KeyD Keycode = 'd'
	KeyE Keycode = 'e'
	KeyF Keycode = 'f'
	KeyG Keycode = 'g'
	KeyH Keycode = 'h'
	KeyI Keycode = 'i'
	KeyJ Keycode = 'j'
	KeyK Keycode = 'k'
	KeyL Keycode = 'l'
	KeyM Keycode = 'm'
	KeyN Keycode = 'n'
	KeyO Keycode = 'o'
	KeyP Keycode = 'p'
	KeyQ Keycode = 'q'
	KeyR Keycode = 'r'
	KeyS Keycode = 's'
	KeyT Keycode = 't'
	KeyU Keycode = 'u'
	KeyV Keycode = 'v'
	KeyW Keycode = 'w'
	KeyX Keycode = 'x'
	KeyY Keycode = 'y'
	KeyZ Keycode = 'z'

	KeyDelete Keycode = '\x7f'
)

const (
	KeyCapsLock    = ScancodeMask | 57
	KeyF1          = ScancodeMask | 58
	KeyF2          = ScancodeMask | 59
	KeyF3          = ScancodeMask | 60
	KeyF4          = ScancodeMask | 61
	KeyF5          = ScancodeMask | 62
	KeyF6          = ScancodeMask | 63
	KeyF7          = ScancodeMask | 64
	KeyF8          = ScancodeMask | 65
	KeyF9          = ScancodeMask | 66
	KeyF10         = ScancodeMask | 67
	KeyF11         = ScancodeMask | 68
	KeyF12         = ScancodeMask | 69
	KeyPrintScreen = ScancodeMask | 70
	KeyScrollLock  = ScancodeMask | 71
	KeyPause       = ScancodeMask | 72
	KeyInsert      = ScancodeMask | 73
	KeyHome        = ScancodeMask | 74
	KeyPageUp      = ScancodeMask | 75
	KeyEnd         = ScancodeMask | 77
	KeyPageDown    = ScancodeMask | 78
	KeyRightArrow  = ScancodeMask | 79
	KeyLeftArrow   = ScancodeMask | 80
	KeyDownArrow   = ScancodeMask | 81
	KeyUpArrow     = ScancodeMask | 82
	KeyNumLock     = ScancodeMask | 83
	KeyKPDivide    = ScancodeMask | 84
	KeyKPMultiply  = ScancodeMask | 85
	KeyKPMinus     = ScancodeMask | 86
	KeyKPPlus      = ScancodeMask | 87
	KeyKPEnter     = ScancodeMask | 88
	KeyKP1         = ScancodeMask | 89
	KeyKP2         = ScancodeMask | 90
	KeyKP3         = ScancodeMask | 91
	KeyKP4         = ScancodeMask | 92
	KeyKP5         = ScancodeMask | 93
	KeyKP6         = ScancodeMask | 94
	KeyKP7         = ScancodeMask | 95
	KeyKP8         = ScancodeMask | 96
	KeyKP9         = ScancodeMask | 97
	KeyKP0         = ScancodeMask | 98
	KeyKPPeriod    = ScancodeMask | 99
	KeyApplication = ScancodeMask | 101
	KeyKPEquals    = ScancodeMask | 103
	KeyF13         = ScancodeMask | 104
	KeyF14         = ScancodeMask | 105
	KeyF15         = ScancodeMask | 106
	KeyF16         = ScancodeMask | 107
	KeyF17         = ScancodeMask | 108
	KeyF18         = ScancodeMask | 109
	KeyF19         = ScancodeMask | 110
	KeyF20         = ScancodeMask | 111
	KeyF21         = ScancodeMask | 112
	KeyF22         = ScancodeMask | 113
	KeyF23         = ScancodeMask | 114
	KeyF24         = ScancodeMask | 115
	KeyMenu        = ScancodeMask | 118
	KeyCut         = ScancodeMask | 123
	KeyCopy        = ScancodeMask | 124
	KeyPaste       = ScancodeMask | 125
	KeyLCtrl       = ScancodeMask | 224
	KeyLShift      = ScancodeMask | 225
	KeyLAlt        = ScancodeMask | 226
	KeyLGUI        = ScancodeMask | 227
	KeyRCtrl       = ScancodeMask | 228
	KeyRShift      = ScancodeMask | 229
	KeyRAlt        = ScancodeMask | 230
	KeyRGUI        = ScancodeMask | 231
)

// Mod is a bitmask of held modifier keys.
type Mod uint16

const (
	ModNone   Mod = 0x0000
	ModLShift Mod = 0x0001
	ModRShift Mod = 0x0002
	ModLCtrl  Mod = 0x0040
	ModRCtrl  Mod = 0x0080
	ModLAlt   Mod = 0x0100
	ModRAlt   Mod = 0x0200
	ModLGUI   Mod = 0x0400
	ModRGUI   Mod = 0x0800
	ModNum    Mod = 0x1000
	ModCaps   Mod = 0x2000
	ModMode   Mod = 0x4000

	ModShift = ModLShift | ModRShift
	ModCtrl  = ModLCtrl | ModRCtrl
	ModAlt   = ModLAlt | ModRAlt
	ModGUI   = ModLGUI | ModRGUI
)

// Any reports whether m has any of the bits in m2 set. Unlike
// key.Modifiers.Contain it does not require all of them.
func (m Mod) Any(m2 Mod) bool {
	return m&m2 != 0
}
