// SPDX-License-Identifier: Unlicense OR MIT

package input

import (
	"time"

	"github.com/uibridge/uibridge/f32"
	"github.com/uibridge/uibridge/internal/tess"
	"github.com/uibridge/uibridge/io/event"
	"github.com/uibridge/uibridge/io/key"
	"github.com/uibridge/uibridge/io/pointer"
	"github.com/uibridge/uibridge/op/paint"
)

// Router is a Context that hands the events of a pass to widget code
// and collects what the widgets paint and request.
//
// Router state survives between passes: the pointer position, the
// held buttons, the keyboard focus and the areas painted in the
// previous pass, used to answer WantsPointerInput.
type Router struct {
	ppp    float32
	in     RawInput
	next   int
	inPass bool

	pointer struct {
		pos     f32.Point
		buttons pointer.Buttons
	}
	focus event.Tag

	cursor   pointer.Cursor
	commands []event.Command
	shapes   []paint.ClippedShape
	// hit is the painted area of the previous pass.
	hit []f32.Rectangle
}

// NewRouter returns a Router at one pixel per point.
func NewRouter() *Router {
	return &Router{ppp: 1}
}

func (q *Router) SetPixelsPerPoint(ppp float32) {
	if ppp <= 0 {
		ppp = 1
	}
	q.ppp = ppp
}

func (q *Router) PixelsPerPoint() float32 {
	if q.ppp == 0 {
		return 1
	}
	return q.ppp
}

// BeginPass starts a pass. It panics if a pass is already running.
func (q *Router) BeginPass(in RawInput) {
	if q.inPass {
		panic("input: BeginPass called during a pass")
	}
	q.inPass = true
	q.in = in
	q.next = 0
	q.cursor = pointer.CursorDefault
	q.commands = nil
	q.shapes = nil
	for _, e := range in.Events {
		pe, ok := e.(pointer.Event)
		if !ok {
			continue
		}
		q.pointer.pos = pe.Position
		switch pe.Kind {
		case pointer.Press:
			q.pointer.buttons |= pe.Buttons
		case pointer.Release:
			q.pointer.buttons &^= pe.Buttons
		}
	}
}

// EndPass ends the pass and returns its output. It panics if no pass
// is running.
func (q *Router) EndPass() FullOutput {
	if !q.inPass {
		panic("input: EndPass called without BeginPass")
	}
	q.inPass = false
	out := FullOutput{
		Platform: PlatformOutput{
			Cursor:   q.cursor,
			Commands: q.commands,
		},
		Shapes: q.shapes,
	}
	q.hit = q.hit[:0]
	for _, s := range q.shapes {
		if !paint.Valid(s.Shape) {
			continue
		}
		if area := s.Clip.Intersect(s.Shape.Bounds()); !area.Empty() {
			q.hit = append(q.hit, area)
		}
	}
	q.commands = nil
	q.shapes = nil
	q.in.Events = nil
	return out
}

func (q *Router) WantsPointerInput() bool {
	if q.pointer.buttons != 0 {
		return true
	}
	for _, r := range q.hit {
		if q.pointer.pos.In(r) {
			return true
		}
	}
	return false
}

func (q *Router) WantsKeyboardInput() bool {
	return q.focus != nil
}

func (q *Router) Tessellate(shapes []paint.ClippedShape, pixelsPerPoint float32) []paint.ClippedPrimitive {
	return tess.Tessellate(shapes, pixelsPerPoint)
}

// Event returns the next unread event of the pass, in arrival order.
func (q *Router) Event() (event.Event, bool) {
	if q.next >= len(q.in.Events) {
		return nil, false
	}
	e := q.in.Events[q.next]
	q.next++
	return e, true
}

// Events returns every event of the pass, read or not.
func (q *Router) Events() []event.Event {
	return q.in.Events
}

// Modifiers returns the modifier state of the pass.
func (q *Router) Modifiers() key.Modifiers {
	return q.in.Modifiers
}

// Time returns the timestamp of the pass.
func (q *Router) Time() time.Duration {
	return q.in.Time
}

// ScreenRect returns the visible area in logical points.
func (q *Router) ScreenRect() f32.Rectangle {
	return q.in.ScreenRect
}

// PointerPos returns the most recent pointer position.
func (q *Router) PointerPos() f32.Point {
	return q.pointer.pos
}

// Buttons returns the pointer buttons held at the end of the
// pass input.
func (q *Router) Buttons() pointer.Buttons {
	return q.pointer.buttons
}

// Focused reports whether tag has the keyboard focus.
func (q *Router) Focused(tag event.Tag) bool {
	return tag != nil && q.focus == tag
}

// SetCursor sets the pointer icon for the pass. The last call wins.
func (q *Router) SetCursor(c pointer.Cursor) {
	q.cursor = c
}

// Execute a command. Focus commands are handled by the router; every
// other command is forwarded to the platform in PlatformOutput.
func (q *Router) Execute(c event.Command) {
	switch c := c.(type) {
	case key.FocusCmd:
		q.focus = c.Tag
	default:
		q.commands = append(q.commands, c)
	}
}

// Paint adds a shape restricted to clip. Shapes that are not
// paint.Valid are dropped.
func (q *Router) Paint(clip f32.Rectangle, s paint.Shape) {
	if !paint.Valid(s) {
		return
	}
	q.shapes = append(q.shapes, paint.ClippedShape{Clip: clip, Shape: s})
}
