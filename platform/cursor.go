// SPDX-License-Identifier: Unlicense OR MIT

package platform

import (
	"github.com/uibridge/uibridge/io/pointer"
	"github.com/uibridge/uibridge/native"
)

// systemCursor returns the system cursor closest to c.
func systemCursor(c pointer.Cursor) native.SystemCursor {
	switch c {
	case pointer.CursorCrosshair:
		return native.CursorCrosshair
	case pointer.CursorDefault:
		return native.CursorArrow
	case pointer.CursorGrab, pointer.CursorPointer:
		return native.CursorHand
	case pointer.CursorGrabbing, pointer.CursorMove:
		return native.CursorSizeAll
	case pointer.CursorEastWestResize:
		return native.CursorSizeWE
	case pointer.CursorNorthSouthResize:
		return native.CursorSizeNS
	case pointer.CursorNorthEastSouthWestResize:
		return native.CursorSizeNESW
	case pointer.CursorNorthWestSouthEastResize:
		return native.CursorSizeNWSE
	case pointer.CursorText:
		return native.CursorIBeam
	case pointer.CursorNotAllowed, pointer.CursorNoDrop:
		return native.CursorNo
	case pointer.CursorWait:
		return native.CursorWait
	default:
		return native.CursorArrow
	}
}
