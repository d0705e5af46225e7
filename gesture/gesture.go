// SPDX-License-Identifier: Unlicense OR MIT

/*
Package gesture implements common pointer gestures.

Gestures accept the pointer events of a pass and detect higher level
actions such as clicks and scrolling within an area.
*/
package gesture

import (
	"time"

	"github.com/uibridge/uibridge/f32"
	"github.com/uibridge/uibridge/io/event"
	"github.com/uibridge/uibridge/io/key"
	"github.com/uibridge/uibridge/io/pointer"
)

// The duration is somewhat arbitrary.
const doubleClickDuration = 200 * time.Millisecond

// Click detects click gestures in the form
// of ClickEvents.
type Click struct {
	// state tracks the gesture state.
	state ClickState
	// clickedAt is the time of the last click.
	clickedAt time.Duration
	// clicks is incremented for every click within doubleClickDuration.
	clicks int
}

type ClickState uint8

// ClickEvent represent a click action, either a
// TypePress for the beginning of a click or a
// TypeClick for a completed click.
type ClickEvent struct {
	Type      ClickType
	Position  f32.Point
	Modifiers key.Modifiers
	// NumClicks records successive clicks occurring
	// within a short duration of each other.
	NumClicks int
}

type ClickType uint8

// Scroll accumulates wheel movement over an area and reduces it to
// whole scroll distances.
type Scroll struct {
	axis Axis
	// Leftover scroll.
	scroll float32
}

type Axis uint8

const (
	Horizontal Axis = iota
	Vertical
)

const (
	// StateNormal is the default click state.
	StateNormal ClickState = iota
	// StateFocused is reported when a pointer
	// is hovering over the handler.
	StateFocused
	// StatePressed is then a pointer is pressed.
	StatePressed
)

const (
	// TypePress is reported for the first pointer
	// press.
	TypePress ClickType = iota
	// TypeClick is reported when a click action
	// is complete.
	TypeClick
)

// State reports the click state.
func (c *Click) State() ClickState {
	return c.state
}

// Update processes the events of a pass at time now and returns the
// click events for area.
func (c *Click) Update(now time.Duration, area f32.Rectangle, evts []event.Event) []ClickEvent {
	var events []ClickEvent
	for _, evt := range evts {
		e, ok := evt.(pointer.Event)
		if !ok {
			continue
		}
		hit := e.Position.In(area)
		switch e.Kind {
		case pointer.Release:
			if e.Buttons&pointer.ButtonPrimary == 0 {
				break
			}
			wasPressed := c.state == StatePressed
			c.state = StateNormal
			if hit {
				c.state = StateFocused
			}
			if wasPressed {
				if now-c.clickedAt < doubleClickDuration {
					c.clicks++
				} else {
					c.clicks = 1
				}
				c.clickedAt = now
				events = append(events, ClickEvent{Type: TypeClick, Position: e.Position, Modifiers: e.Modifiers, NumClicks: c.clicks})
			}
		case pointer.Press:
			if c.state == StatePressed || !hit {
				break
			}
			if e.Buttons != pointer.ButtonPrimary {
				break
			}
			c.state = StatePressed
			events = append(events, ClickEvent{Type: TypePress, Position: e.Position, Modifiers: e.Modifiers})
		case pointer.Move:
			switch {
			case !hit:
				c.state = StateNormal
			case c.state < StateFocused:
				c.state = StateFocused
			}
		}
	}
	return events
}

// Update returns the whole distance scrolled along axis by wheel
// events over area. Switching axis discards the leftover scroll.
func (s *Scroll) Update(area f32.Rectangle, evts []event.Event, axis Axis) int {
	if s.axis != axis {
		s.axis = axis
		s.scroll = 0
	}
	total := 0
	for _, evt := range evts {
		e, ok := evt.(pointer.Event)
		if !ok || e.Kind != pointer.Scroll || !e.Position.In(area) {
			continue
		}
		switch s.axis {
		case Horizontal:
			s.scroll += e.Scroll.X
		case Vertical:
			s.scroll += e.Scroll.Y
		}
		iscroll := int(s.scroll)
		s.scroll -= float32(iscroll)
		total += iscroll
	}
	return total
}

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		panic("invalid Axis")
	}
}

func (ct ClickType) String() string {
	switch ct {
	case TypePress:
		return "TypePress"
	case TypeClick:
		return "TypeClick"
	default:
		panic("invalid ClickType")
	}
}

func (cs ClickState) String() string {
	switch cs {
	case StateNormal:
		return "StateNormal"
	case StateFocused:
		return "StateFocused"
	case StatePressed:
		return "StatePressed"
	default:
		panic("invalid ClickState")
	}
}
