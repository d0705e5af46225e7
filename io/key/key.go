// SPDX-License-Identifier: Unlicense OR MIT

// Package key implements key and text events and commands.
package key

import (
	"strings"

	"github.com/uibridge/uibridge/io/event"
)

// An Event is generated when a key is pressed or released.
// For text input use EditEvent.
type Event struct {
	// Name of the key.
	Name Name
	// Modifiers is the set of active modifiers when the key was pressed.
	Modifiers Modifiers
	// State is the state of the key when the event was fired.
	State State
}

// An EditEvent inserts text at the current caret.
type EditEvent struct {
	Text string
}

// FocusCmd requests to set or clear the keyboard focus.
type FocusCmd struct {
	// Tag is the new focus. The focus is cleared if Tag is nil.
	Tag event.Tag
}

// State is the state of a key during an event.
type State uint8

const (
	// Press is the state of a pressed key.
	Press State = iota
	// Release is the state of a key that has been released.
	Release
)

// Modifiers is a set of modifier keys.
type Modifiers uint32

const (
	// ModCtrl is the ctrl modifier key.
	ModCtrl Modifiers = 1 << iota
	// ModCommand is the command modifier key
	// found on Apple keyboards.
	ModCommand
	// ModShift is the shift modifier key.
	ModShift
	// ModAlt is the alt modifier key, or the option
	// key on Apple keyboards.
	ModAlt
	// ModShortcut is the primary shortcut modifier: ctrl on most
	// platforms, command on Apple keyboards.
	ModShortcut
)

// Name is the identifier for a keyboard key.
//
// For letters, the upper case form is used. Digits and punctuation
// use the character printed on the key.
type Name string

const (
	// Names for special keys.
	NameLeftArrow      Name = "←"
	NameRightArrow     Name = "→"
	NameUpArrow        Name = "↑"
	NameDownArrow      Name = "↓"
	NameReturn         Name = "⏎"
	NameEnter          Name = "⌤"
	NameEscape         Name = "⎋"
	NameHome           Name = "⇱"
	NameEnd            Name = "⇲"
	NameDeleteBackward Name = "⌫"
	NameDeleteForward  Name = "⌦"
	NamePageUp         Name = "⇞"
	NamePageDown       Name = "⇟"
	NameInsert         Name = "Insert"
	NameTab            Name = "Tab"
	NameSpace          Name = "Space"
	NameCopy           Name = "Copy"
	NameCut            Name = "Cut"
	NamePaste          Name = "Paste"
	NameCtrl           Name = "Ctrl"
	NameShift          Name = "Shift"
	NameAlt            Name = "Alt"
	NameCommand        Name = "⌘"
	NameShortcut       Name = "Short"
	NameF1             Name = "F1"
	NameF2             Name = "F2"
	NameF3             Name = "F3"
	NameF4             Name = "F4"
	NameF5             Name = "F5"
	NameF6             Name = "F6"
	NameF7             Name = "F7"
	NameF8             Name = "F8"
	NameF9             Name = "F9"
	NameF10            Name = "F10"
	NameF11            Name = "F11"
	NameF12            Name = "F12"
	NameF13            Name = "F13"
	NameF14            Name = "F14"
	NameF15            Name = "F15"
	NameF16            Name = "F16"
	NameF17            Name = "F17"
	NameF18            Name = "F18"
	NameF19            Name = "F19"
	NameF20            Name = "F20"
	NameF21            Name = "F21"
	NameF22            Name = "F22"
	NameF23            Name = "F23"
	NameF24            Name = "F24"
)

// Contain reports whether m contains all modifiers
// in m2.
func (m Modifiers) Contain(m2 Modifiers) bool {
	return m&m2 == m2
}

func (EditEvent) ImplementsEvent() {}
func (Event) ImplementsEvent()     {}

func (FocusCmd) ImplementsCommand() {}

func (m Modifiers) String() string {
	var strs []string
	if m.Contain(ModCtrl) {
		strs = append(strs, string(NameCtrl))
	}
	if m.Contain(ModCommand) {
		strs = append(strs, string(NameCommand))
	}
	if m.Contain(ModShift) {
		strs = append(strs, string(NameShift))
	}
	if m.Contain(ModAlt) {
		strs = append(strs, string(NameAlt))
	}
	if m.Contain(ModShortcut) {
		strs = append(strs, string(NameShortcut))
	}
	return strings.Join(strs, "-")
}

func (s State) String() string {
	switch s {
	case Press:
		return "Press"
	case Release:
		return "Release"
	default:
		panic("invalid State")
	}
}
