// SPDX-License-Identifier: Unlicense OR MIT

// Package clipboard contains the clipboard intents delivered to the
// user interface and the command for writing the system clipboard.
package clipboard

// CopyEvent asks the focused handler to copy its selection.
type CopyEvent struct{}

// CutEvent asks the focused handler to cut its selection.
type CutEvent struct{}

// PasteEvent delivers the system clipboard text to the focused
// handler.
type PasteEvent struct {
	Text string
}

// WriteCmd copies Text to the system clipboard at the end of
// the frame.
type WriteCmd struct {
	Text string
}

func (CopyEvent) ImplementsEvent()  {}
func (CutEvent) ImplementsEvent()   {}
func (PasteEvent) ImplementsEvent() {}

func (WriteCmd) ImplementsCommand() {}
