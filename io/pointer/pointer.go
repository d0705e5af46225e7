// SPDX-License-Identifier: Unlicense OR MIT

// Package pointer implements pointer events and cursor names.
package pointer

import (
	"strings"

	"github.com/uibridge/uibridge/f32"
	"github.com/uibridge/uibridge/io/key"
)

// Event is a pointer event.
type Event struct {
	Kind Kind
	// Buttons are the buttons that changed state for Press
	// and Release events.
	Buttons Buttons
	// Position is the pointer position in logical points.
	Position f32.Point
	// Scroll is the scroll amount in logical points, if any.
	Scroll f32.Point
	// Modifiers is the set of active modifiers when
	// the event was generated.
	Modifiers key.Modifiers
}

// Kind of an Event.
type Kind uint

// Buttons is a set of mouse buttons
type Buttons uint8

// Cursor denotes a pre-defined cursor shape requested by the user
// interface for the current frame.
type Cursor byte

// The cursors correspond to CSS pointer naming.
const (
	// CursorDefault is the default cursor.
	CursorDefault Cursor = iota
	// CursorNone hides the cursor.
	CursorNone
	// CursorText is for selecting and inserting text.
	CursorText
	// CursorPointer is for a link.
	// Usually displayed as a pointing hand.
	CursorPointer
	// CursorCrosshair is for a precise location.
	CursorCrosshair
	// CursorAllScroll is for indicating scrolling in all directions.
	CursorAllScroll
	// CursorMove is for content that can be moved.
	CursorMove
	// CursorGrab is for content that can be grabbed (dragged to be moved).
	// Usually displayed as an open hand.
	CursorGrab
	// CursorGrabbing is for content that is being grabbed.
	// Usually displayed as a closed hand.
	CursorGrabbing
	// CursorNotAllowed is shown when the request action cannot be carried out.
	CursorNotAllowed
	// CursorNoDrop is shown when the dragged item cannot be dropped here.
	CursorNoDrop
	// CursorWait is shown when the program is busy and user cannot interact.
	CursorWait
	// CursorProgress is shown when the program is busy, but the user can still interact.
	CursorProgress
	// CursorColResize is for resizing a column.
	CursorColResize
	// CursorRowResize is for resizing a row.
	CursorRowResize
	// CursorEastWestResize is for left-right resizing.
	CursorEastWestResize
	// CursorNorthSouthResize is for top-bottom resizing.
	CursorNorthSouthResize
	// CursorNorthEastSouthWestResize is for top-right to bottom-left diagonal resizing.
	CursorNorthEastSouthWestResize
	// CursorNorthWestSouthEastResize is for top-left to bottom-right diagonal resizing.
	CursorNorthWestSouthEastResize
)

const (
	// Press of a pointer.
	Press Kind = 1 << iota
	// Release of a pointer.
	Release
	// Move of a pointer.
	Move
	// Scroll of a pointer.
	Scroll
)

const (
	// ButtonPrimary is the primary button, usually the left button for a
	// right-handed user.
	ButtonPrimary Buttons = 1 << iota
	// ButtonSecondary is the secondary button, usually the right button for a
	// right-handed user.
	ButtonSecondary
	// ButtonTertiary is the tertiary button, usually the middle button.
	ButtonTertiary
)

func (t Kind) String() string {
	var buf strings.Builder
	for tt := Kind(1); tt > 0 && tt <= Scroll; tt <<= 1 {
		if t&tt > 0 {
			if buf.Len() > 0 {
				buf.WriteByte('|')
			}
			buf.WriteString((t & tt).string())
		}
	}
	return buf.String()
}

func (t Kind) string() string {
	switch t {
	case Press:
		return "Press"
	case Release:
		return "Release"
	case Move:
		return "Move"
	case Scroll:
		return "Scroll"
	default:
		panic("unknown Kind")
	}
}

// Contain reports whether the set b contains
// all of the buttons.
func (b Buttons) Contain(buttons Buttons) bool {
	return b&buttons == buttons
}

func (b Buttons) String() string {
	var strs []string
	if b.Contain(ButtonPrimary) {
		strs = append(strs, "ButtonPrimary")
	}
	if b.Contain(ButtonSecondary) {
		strs = append(strs, "ButtonSecondary")
	}
	if b.Contain(ButtonTertiary) {
		strs = append(strs, "ButtonTertiary")
	}
	return strings.Join(strs, "|")
}

func (c Cursor) String() string {
	switch c {
	case CursorDefault:
		return "Default"
	case CursorNone:
		return "None"
	case CursorText:
		return "Text"
	case CursorPointer:
		return "Pointer"
	case CursorCrosshair:
		return "Crosshair"
	case CursorAllScroll:
		return "AllScroll"
	case CursorMove:
		return "Move"
	case CursorGrab:
		return "Grab"
	case CursorGrabbing:
		return "Grabbing"
	case CursorNotAllowed:
		return "NotAllowed"
	case CursorNoDrop:
		return "NoDrop"
	case CursorWait:
		return "Wait"
	case CursorProgress:
		return "Progress"
	case CursorColResize:
		return "ColResize"
	case CursorRowResize:
		return "RowResize"
	case CursorEastWestResize:
		return "EastWestResize"
	case CursorNorthSouthResize:
		return "NorthSouthResize"
	case CursorNorthEastSouthWestResize:
		return "NorthEastSouthWestResize"
	case CursorNorthWestSouthEastResize:
		return "NorthWestSouthEastResize"
	default:
		panic("unknown Cursor")
	}
}

func (Event) ImplementsEvent() {}
