// SPDX-License-Identifier: Unlicense OR MIT

// package glfw doesn't build on OpenBSD and FreeBSD.
//go:build !openbsd && !freebsd && !android && !ios && !js
// +build !openbsd,!freebsd,!android,!ios,!js

package main

import (
	"image/color"
	"runtime"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/kataras/golog"

	glfwbackend "github.com/uibridge/uibridge/backend/glfw"
	"github.com/uibridge/uibridge/f32"
	"github.com/uibridge/uibridge/gesture"
	"github.com/uibridge/uibridge/io/clipboard"
	"github.com/uibridge/uibridge/io/input"
	"github.com/uibridge/uibridge/io/pointer"
	"github.com/uibridge/uibridge/native"
	"github.com/uibridge/uibridge/op/paint"
	"github.com/uibridge/uibridge/platform"
)

func main() {
	// Required by the OpenGL threading model.
	runtime.LockOSThread()

	err := glfw.Init()
	if err != nil {
		golog.Fatal(err)
	}
	defer glfw.Terminate()

	window, err := glfw.CreateWindow(800, 600, "uibridge + GLFW", nil, nil)
	if err != nil {
		golog.Fatal(err)
	}
	window.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		golog.Fatal(err)
	}

	w := glfwbackend.NewWindow(window)
	p, err := platform.New(w, w)
	if err != nil {
		golog.Fatal(err)
	}
	defer p.Release()

	var (
		click  gesture.Click
		scroll gesture.Scroll
		offset int
	)
	for !window.ShouldClose() {
		for _, e := range w.Events() {
			if _, ok := e.(native.Quit); ok {
				window.SetShouldClose(true)
			}
			p.HandleEvent(e, w)
		}
		r := p.BeginFrame(w).(*input.Router)
		screen := r.ScreenRect()
		area := f32.Rect(20, 20, 220, 80).Add(f32.Pt(0, float32(offset)))
		for _, e := range click.Update(r.Time(), area, r.Events()) {
			if e.Type == gesture.TypeClick {
				r.Execute(clipboard.WriteCmd{Text: "clicked"})
			}
		}
		offset += scroll.Update(screen, r.Events(), gesture.Vertical)
		fill := color.NRGBA{R: 0x40, G: 0x60, B: 0xa0, A: 0xff}
		if click.State() == gesture.StatePressed {
			fill = color.NRGBA{R: 0x20, G: 0x30, B: 0x60, A: 0xff}
		}
		if click.State() != gesture.StateNormal {
			r.SetCursor(pointer.CursorPointer)
		}
		r.Paint(screen, paint.RectShape{Rect: area, Radius: 6, Color: fill})
		out, err := p.EndFrame(w)
		if err != nil {
			golog.Warnf("frame: %v", err)
		}
		draw(w.Size().X, w.Size().Y, p.Tessellate(out))
		window.SwapBuffers()
	}
}

func draw(width, height int, prims []paint.ClippedPrimitive) {
	gl.Viewport(0, 0, int32(width), int32(height))
	gl.MatrixMode(gl.PROJECTION)
	gl.LoadIdentity()
	gl.Ortho(0, float64(width), float64(height), 0, -1, 1)
	gl.ClearColor(1, 1, 1, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.Enable(gl.SCISSOR_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	for _, p := range prims {
		// Scissor rectangles have a lower-left origin.
		gl.Scissor(int32(p.Clip.Min.X), int32(float32(height)-p.Clip.Max.Y), int32(p.Clip.Dx()), int32(p.Clip.Dy()))
		gl.Begin(gl.TRIANGLES)
		for _, idx := range p.Mesh.Indices {
			v := p.Mesh.Vertices[idx]
			gl.Color4ub(v.Color.R, v.Color.G, v.Color.B, v.Color.A)
			gl.Vertex2f(v.Pos.X, v.Pos.Y)
		}
		gl.End()
	}
	gl.Disable(gl.SCISSOR_TEST)
}
