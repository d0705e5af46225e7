// SPDX-License-Identifier: Unlicense OR MIT

package native

// SystemCursor identifies a cursor shape provided by the system.
type SystemCursor int

const (
	CursorArrow SystemCursor = iota
	CursorIBeam
	CursorWait
	CursorCrosshair
	CursorWaitArrow
	CursorSizeNWSE
	CursorSizeNESW
	CursorSizeWE
	CursorSizeNS
	CursorSizeAll
	CursorNo
	CursorHand
)

func (c SystemCursor) String() string {
	switch c {
	case CursorArrow:
		return "Arrow"
	case CursorIBeam:
		return "IBeam"
	case CursorWait:
		return "Wait"
	case CursorCrosshair:
		return "Crosshair"
	case CursorWaitArrow:
		return "WaitArrow"
	case CursorSizeNWSE:
		return "SizeNWSE"
	case CursorSizeNESW:
		return "SizeNESW"
	case CursorSizeWE:
		return "SizeWE"
	case CursorSizeNS:
		return "SizeNS"
	case CursorSizeAll:
		return "SizeAll"
	case CursorNo:
		return "No"
	case CursorHand:
		return "Hand"
	default:
		return "SystemCursor(?)"
	}
}
