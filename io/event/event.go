// SPDX-License-Identifier: Unlicense OR MIT

// Package event contains the marker types shared by the
// input and output sides of a frame.
package event

// Tag is the stable identifier for an event handler.
// For a handler h, the tag is typically &h.
type Tag interface{}

// Event is the marker interface for events delivered to
// the user interface.
type Event interface {
	ImplementsEvent()
}

// Command is the marker interface for requests a user interface
// makes of the platform, such as writing the clipboard.
type Command interface {
	ImplementsCommand()
}
