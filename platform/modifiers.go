// SPDX-License-Identifier: Unlicense OR MIT

package platform

import (
	"github.com/uibridge/uibridge/io/key"
	"github.com/uibridge/uibridge/native"
)

// decodeModifiers converts a native modifier mask. Either side of
// Alt, Ctrl or Shift sets the matching modifier; only the left GUI key
// counts as Command, and left Ctrl or left GUI set Shortcut.
func decodeModifiers(m native.Mod) key.Modifiers {
	var mods key.Modifiers
	if m.Any(native.ModAlt) {
		mods |= key.ModAlt
	}
	if m.Any(native.ModCtrl) {
		mods |= key.ModCtrl
	}
	if m.Any(native.ModShift) {
		mods |= key.ModShift
	}
	if m.Any(native.ModLGUI) {
		mods |= key.ModCommand
	}
	if m.Any(native.ModLCtrl | native.ModLGUI) {
		mods |= key.ModShortcut
	}
	return mods
}
