// SPDX-License-Identifier: Unlicense OR MIT

// Package term runs a platform in a terminal through tcell.
//
// Terminal cells play the part of pixels at a display scale of 1.
// The system clipboard is reached through atotto/clipboard, and cursor
// shapes are not supported: cursor resources are accepted and ignored.
package term

import (
	"errors"
	"image"

	"github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v2"
	"github.com/kataras/golog"

	"github.com/uibridge/uibridge/native"
	"github.com/uibridge/uibridge/platform"
)

var log = golog.Child("[term]")

// errUnsupported is returned by clipboard operations when no
// clipboard utility is installed.
var errUnsupported = errors.New("term: clipboard unsupported")

// Screen implements platform.Window and platform.Display for a tcell
// screen.
type Screen struct {
	s    tcell.Screen
	conv Converter
}

type noCursor struct{}

var (
	_ platform.Window  = (*Screen)(nil)
	_ platform.Display = (*Screen)(nil)
)

// NewScreen initializes the terminal and enables mouse reporting.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	return Wrap(s), nil
}

// Wrap returns a Screen for an initialized tcell screen.
func Wrap(s tcell.Screen) *Screen {
	s.EnableMouse()
	return &Screen{s: s}
}

// Screen returns the underlying tcell screen for drawing.
func (s *Screen) Screen() tcell.Screen {
	return s.s
}

// Next blocks for the next terminal event and translates it. It
// returns nil and false after Close.
func (s *Screen) Next() ([]native.Event, bool) {
	e := s.s.PollEvent()
	if e == nil {
		return nil, false
	}
	return s.conv.Convert(e), true
}

// Close restores the terminal.
func (s *Screen) Close() {
	s.s.Fini()
}

func (s *Screen) Size() image.Point {
	w, h := s.s.Size()
	return image.Pt(w, h)
}

func (s *Screen) DisplayScale() float32 {
	return 1
}

func (s *Screen) HasClipboardText() bool {
	if clipboard.Unsupported {
		return false
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		log.Debugf("read clipboard: %v", err)
		return false
	}
	return text != ""
}

func (s *Screen) ClipboardText() (string, error) {
	if clipboard.Unsupported {
		return "", errUnsupported
	}
	return clipboard.ReadAll()
}

func (s *Screen) SetClipboardText(text string) error {
	if clipboard.Unsupported {
		return errUnsupported
	}
	return clipboard.WriteAll(text)
}

func (s *Screen) CreateSystemCursor(c native.SystemCursor) (platform.Cursor, error) {
	return noCursor{}, nil
}

func (noCursor) Set()     {}
func (noCursor) Release() {}
