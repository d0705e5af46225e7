// SPDX-License-Identifier: Unlicense OR MIT

package main

// A window with one button that copies a message to the clipboard.

import (
	"errors"
	"image/color"
	"runtime"

	"github.com/kataras/golog"
	"github.com/veandco/go-sdl2/sdl"
	"golang.org/x/image/colornames"

	sdlbackend "github.com/uibridge/uibridge/backend/sdl"
	"github.com/uibridge/uibridge/f32"
	"github.com/uibridge/uibridge/gesture"
	"github.com/uibridge/uibridge/io/clipboard"
	"github.com/uibridge/uibridge/io/input"
	"github.com/uibridge/uibridge/io/key"
	"github.com/uibridge/uibridge/io/pointer"
	"github.com/uibridge/uibridge/native"
	"github.com/uibridge/uibridge/op/paint"
	"github.com/uibridge/uibridge/platform"
)

const message = "Hello from uibridge"

func main() {
	// SDL video calls must stay on the main thread.
	runtime.LockOSThread()
	if err := loop(); err != nil {
		golog.Fatal(err)
	}
}

func loop() error {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return err
	}
	defer sdl.Quit()
	window, err := sdl.CreateWindow("uibridge", sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		800, 600, sdl.WINDOW_RESIZABLE|sdl.WINDOW_ALLOW_HIGHDPI)
	if err != nil {
		return err
	}
	defer window.Destroy()
	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		return err
	}
	defer renderer.Destroy()

	var display sdlbackend.Display
	win := sdlbackend.Window{Window: window}
	p, err := platform.New(display, win)
	if err != nil {
		return err
	}
	defer p.Release()

	var b button
	for {
		for _, e := range sdlbackend.Events() {
			if _, ok := e.(native.Quit); ok {
				return nil
			}
			p.HandleEvent(e, display)
		}
		r := p.BeginFrame(win).(*input.Router)
		b.layout(r)
		out, err := p.EndFrame(display)
		var rerr *platform.ResourceError
		if errors.As(err, &rerr) {
			golog.Warnf("frame: %v", err)
		} else if err != nil {
			return err
		}
		if err := draw(renderer, p.Tessellate(out)); err != nil {
			return err
		}
		sdl.Delay(16)
	}
}

type button struct {
	click  gesture.Click
	clicks int
}

func (b *button) layout(r *input.Router) {
	screen := r.ScreenRect()
	area := f32.Rect(0, 0, 240, 60).Add(screen.Size().Sub(f32.Pt(240, 60)).Div(2))
	for _, e := range b.click.Update(r.Time(), area, r.Events()) {
		if e.Type == gesture.TypeClick {
			b.clicks++
			r.Execute(clipboard.WriteCmd{Text: message})
		}
	}
	for {
		e, ok := r.Event()
		if !ok {
			break
		}
		switch e := e.(type) {
		case clipboard.PasteEvent:
			golog.Infof("pasted %q", e.Text)
		case key.Event:
			if e.Name == key.NameEscape && e.State == key.Press {
				r.Execute(key.FocusCmd{})
			}
		}
	}
	fill := colornames.Steelblue
	if b.click.State() != gesture.StateNormal {
		fill = colornames.Cornflowerblue
		r.SetCursor(pointer.CursorPointer)
	}
	r.Paint(screen, paint.RectShape{Rect: screen, Color: nrgba(colornames.Whitesmoke)})
	r.Paint(screen, paint.RectShape{Rect: area, Radius: 8, Color: nrgba(fill)})
	for i := 0; i < b.clicks && i < 10; i++ {
		c := f32.Pt(area.Min.X+12+float32(i)*16, area.Max.Y+16)
		r.Paint(screen, paint.CircleShape{Center: c, Radius: 5, Color: nrgba(colornames.Darkorange)})
	}
}

func nrgba(c color.RGBA) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func draw(r *sdl.Renderer, prims []paint.ClippedPrimitive) error {
	r.SetClipRect(nil)
	r.SetDrawColor(0, 0, 0, 0xff)
	r.Clear()
	for _, p := range prims {
		clip := sdl.Rect{
			X: int32(p.Clip.Min.X),
			Y: int32(p.Clip.Min.Y),
			W: int32(p.Clip.Dx()),
			H: int32(p.Clip.Dy()),
		}
		r.SetClipRect(&clip)
		verts := make([]sdl.Vertex, len(p.Mesh.Vertices))
		for i, v := range p.Mesh.Vertices {
			verts[i] = sdl.Vertex{
				Position: sdl.FPoint{X: v.Pos.X, Y: v.Pos.Y},
				Color:    sdl.Color{R: v.Color.R, G: v.Color.G, B: v.Color.B, A: v.Color.A},
			}
		}
		indices := make([]int32, len(p.Mesh.Indices))
		for i, idx := range p.Mesh.Indices {
			indices[i] = int32(idx)
		}
		if err := r.RenderGeometry(nil, verts, indices); err != nil {
			return err
		}
	}
	r.Present()
	return nil
}
