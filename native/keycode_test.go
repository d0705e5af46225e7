// SPDX-License-Identifier: Unlicense OR MIT

package native

import "testing"

func TestModAny(t *testing.T) {
	m := ModLCtrl | ModRShift
	if !m.Any(ModCtrl) {
		t.Error("ModLCtrl does not match ModCtrl")
	}
	if !m.Any(ModAlt | ModShift) {
		t.Error("ModRShift does not match ModAlt|ModShift")
	}
	if m.Any(ModAlt | ModGUI) {
		t.Error("matched modifiers that are not held")
	}
}

func TestArrowKeycodes(t *testing.T) {
	tests := []struct {
		code Keycode
		sc   int
	}{
		{KeyRightArrow, 79},
		{KeyLeftArrow, 80},
		{KeyDownArrow, 81},
		{KeyUpArrow, 82},
	}
	for _, tst := range tests {
		if want := KeycodeFromScancode(tst.sc); tst.code != want {
			t.Errorf("arrow key code %#x, want %#x", tst.code, want)
		}
	}
	evts := []Event{KeyDown{Keycode: KeyUpArrow}, KeyUp{Keycode: KeyDownArrow}}
	if e := evts[0].(KeyDown); e.Keycode != KeyUpArrow {
		t.Errorf("KeyDown carries %#x, want KeyUpArrow", e.Keycode)
	}
	if e := evts[1].(KeyUp); e.Keycode != KeyDownArrow {
		t.Errorf("KeyUp carries %#x, want KeyDownArrow", e.Keycode)
	}
}
