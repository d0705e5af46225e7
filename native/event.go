// SPDX-License-Identifier: Unlicense OR MIT

// Package native describes the events and encodings of a native
// windowing backend. Key codes, modifier bits, mouse buttons and system
// cursors use SDL's numbering, so an SDL event converts by value and other
// backends translate into the same space.
package native

// Event is the marker interface for native events.
type Event interface {
	ImplementsEvent()
}

// WindowResized reports the new physical size of the window.
type WindowResized struct {
	Width, Height int
}

// MouseButtonDown reports a pressed mouse button.
type MouseButtonDown struct {
	Button MouseButton
	// X and Y are the physical pointer coordinates.
	X, Y float32
}

// MouseButtonUp reports a released mouse button.
type MouseButtonUp struct {
	Button MouseButton
	X, Y   float32
}

// MouseMotion reports the pointer position in physical pixels.
type MouseMotion struct {
	X, Y float32
}

// MouseWheel reports a wheel movement in notches. Positive Y
// scrolls away from the user.
type MouseWheel struct {
	X, Y float32
}

// KeyDown reports a pressed key. Mod is the modifier state at
// the time of the event.
type KeyDown struct {
	Keycode Keycode
	Mod     Mod
	Repeat  bool
}

// KeyUp reports a released key.
type KeyUp struct {
	Keycode Keycode
	Mod     Mod
}

// TextInput carries committed text, typically one character.
type TextInput struct {
	Text string
}

// Quit reports a request to close the application.
type Quit struct{}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	ButtonLeft MouseButton = 1 + iota
	ButtonMiddle
	ButtonRight
	ButtonX1
	ButtonX2
)

func (WindowResized) ImplementsEvent()   {}
func (MouseButtonDown) ImplementsEvent() {}
func (MouseButtonUp) ImplementsEvent()   {}
func (MouseMotion) ImplementsEvent()     {}
func (MouseWheel) ImplementsEvent()      {}
func (KeyDown) ImplementsEvent()         {}
func (KeyUp) ImplementsEvent()           {}
func (TextInput) ImplementsEvent()       {}
func (Quit) ImplementsEvent()            {}
