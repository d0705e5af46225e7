// SPDX-License-Identifier: Unlicense OR MIT

package main

// A terminal program echoing typed text. Ctrl-C copies the text to the
// system clipboard, Ctrl-V pastes and Escape quits.

import (
	"github.com/gdamore/tcell/v2"
	"github.com/kataras/golog"

	"github.com/uibridge/uibridge/backend/term"
	"github.com/uibridge/uibridge/f32"
	"github.com/uibridge/uibridge/io/clipboard"
	"github.com/uibridge/uibridge/io/input"
	"github.com/uibridge/uibridge/io/key"
	"github.com/uibridge/uibridge/op/paint"
	"github.com/uibridge/uibridge/platform"
)

func main() {
	if err := loop(); err != nil {
		golog.Fatal(err)
	}
}

func loop() error {
	s, err := term.NewScreen()
	if err != nil {
		return err
	}
	defer s.Close()
	p, err := platform.New(s, s)
	if err != nil {
		return err
	}
	defer p.Release()

	var text []rune
	for {
		evts, ok := s.Next()
		if !ok {
			return nil
		}
		for _, e := range evts {
			p.HandleEvent(e, s)
		}
		r := p.BeginFrame(s).(*input.Router)
		quit := false
		for {
			e, ok := r.Event()
			if !ok {
				break
			}
			switch e := e.(type) {
			case key.EditEvent:
				text = append(text, []rune(e.Text)...)
			case clipboard.CopyEvent:
				r.Execute(clipboard.WriteCmd{Text: string(text)})
			case clipboard.PasteEvent:
				text = append(text, []rune(e.Text)...)
			case key.Event:
				if e.State != key.Press {
					break
				}
				switch e.Name {
				case key.NameEscape:
					quit = true
				case key.NameDeleteBackward:
					if len(text) > 0 {
						text = text[:len(text)-1]
					}
				}
			}
		}
		screen := r.ScreenRect()
		r.Paint(screen, paint.RectShape{Rect: f32.Rect(0, 0, screen.Dx(), 1)})
		out, err := p.EndFrame(s)
		if err != nil {
			return err
		}
		draw(s.Screen(), out, string(text))
		if quit {
			return nil
		}
	}
}

func draw(s tcell.Screen, out input.FullOutput, text string) {
	s.Clear()
	bar := tcell.StyleDefault.Reverse(true)
	for _, cs := range out.Shapes {
		b := cs.Clip.Intersect(cs.Shape.Bounds())
		for y := int(b.Min.Y); y < int(b.Max.Y); y++ {
			for x := int(b.Min.X); x < int(b.Max.X); x++ {
				s.SetContent(x, y, ' ', nil, bar)
			}
		}
	}
	x := 0
	for _, r := range text {
		s.SetContent(x, 0, r, nil, bar)
		x++
	}
	s.Show()
}
