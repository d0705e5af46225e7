// SPDX-License-Identifier: Unlicense OR MIT

package input

import (
	"time"

	"github.com/uibridge/uibridge/f32"
	"github.com/uibridge/uibridge/io/event"
	"github.com/uibridge/uibridge/io/key"
	"github.com/uibridge/uibridge/io/pointer"
	"github.com/uibridge/uibridge/op/paint"
)

// RawInput is everything a platform knows about one pass: the
// events received since the previous pass and the screen state.
type RawInput struct {
	// ScreenRect is the visible area in logical points. The zero
	// value means the size is unknown.
	ScreenRect f32.Rectangle
	// Time is the elapsed time since the platform started.
	Time time.Duration
	// Modifiers is the most recently observed modifier state.
	Modifiers key.Modifiers
	// Events in arrival order.
	Events []event.Event
}

// PlatformOutput is the set of side effects requested during a pass.
type PlatformOutput struct {
	// Cursor is the pointer icon to show until the next pass.
	Cursor pointer.Cursor
	// Commands in the order they were issued, such as
	// clipboard.WriteCmd.
	Commands []event.Command
}

// FullOutput is the result of a pass.
type FullOutput struct {
	Platform PlatformOutput
	// Shapes to draw, back to front.
	Shapes []paint.ClippedShape
}

// Context is an immediate-mode user interface driven one pass per frame.
type Context interface {
	// SetPixelsPerPoint sets the number of physical pixels for every
	// logical point.
	SetPixelsPerPoint(ppp float32)
	PixelsPerPoint() float32
	// BeginPass starts a pass over in. The context takes ownership
	// of in.Events.
	BeginPass(in RawInput)
	// EndPass finishes the pass started by BeginPass.
	EndPass() FullOutput
	// WantsPointerInput reports whether the interface is
	// interested in the pointer, for example because it hovers a widget.
	WantsPointerInput() bool
	// WantsKeyboardInput reports whether a widget has keyboard focus.
	WantsKeyboardInput() bool
	// Tessellate converts shapes into render-ready meshes at the
	// given scale.
	Tessellate(shapes []paint.ClippedShape, pixelsPerPoint float32) []paint.ClippedPrimitive
}
