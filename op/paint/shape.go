// SPDX-License-Identifier: Unlicense OR MIT

package paint

import (
	"image/color"

	"github.com/uibridge/uibridge/f32"
)

// Shape is a filled or stroked geometric primitive in logical points.
type Shape interface {
	// Bounds returns the smallest rectangle covering everything the
	// shape paints, including stroke width.
	Bounds() f32.Rectangle
}

// Stroke describes the outline of a shape. A zero Width disables it.
type Stroke struct {
	Width float32
	Color color.NRGBA
}

// RectShape is a filled rectangle with uniformly rounded corners.
type RectShape struct {
	Rect f32.Rectangle
	// Radius of every corner. It is clamped to half the shorter side.
	Radius float32
	Color  color.NRGBA
}

// CircleShape is a filled circle.
type CircleShape struct {
	Center f32.Point
	Radius float32
	Color  color.NRGBA
}

// PathShape is a polyline. When Closed is set the last point connects
// to the first and the interior is filled with Fill, which must describe
// a convex polygon.
type PathShape struct {
	Points []f32.Point
	Closed bool
	Fill   color.NRGBA
	Stroke Stroke
}

// LineShape is a single stroked segment.
type LineShape struct {
	From, To f32.Point
	Stroke   Stroke
}

// Valid reports whether s can be painted. A nil Shape and nil pointers
// to the shape types of this package are not valid.
func Valid(s Shape) bool {
	switch s := s.(type) {
	case nil:
		return false
	case *RectShape:
		return s != nil
	case *CircleShape:
		return s != nil
	case *PathShape:
		return s != nil
	case *LineShape:
		return s != nil
	}
	return true
}

// ClippedShape is a shape restricted to the Clip rectangle.
type ClippedShape struct {
	Clip  f32.Rectangle
	Shape Shape
}

func (r RectShape) Bounds() f32.Rectangle {
	return r.Rect
}

func (c CircleShape) Bounds() f32.Rectangle {
	return f32.Rectangle{
		Min: f32.Pt(c.Center.X-c.Radius, c.Center.Y-c.Radius),
		Max: f32.Pt(c.Center.X+c.Radius, c.Center.Y+c.Radius),
	}
}

func (p PathShape) Bounds() f32.Rectangle {
	if len(p.Points) == 0 {
		return f32.Rectangle{}
	}
	b := f32.Rectangle{Min: p.Points[0], Max: p.Points[0]}
	for _, pt := range p.Points[1:] {
		b.Min.X = min(b.Min.X, pt.X)
		b.Min.Y = min(b.Min.Y, pt.Y)
		b.Max.X = max(b.Max.X, pt.X)
		b.Max.Y = max(b.Max.Y, pt.Y)
	}
	return b.Expand(p.Stroke.Width / 2)
}

func (l LineShape) Bounds() f32.Rectangle {
	return f32.Rect(l.From.X, l.From.Y, l.To.X, l.To.Y).Expand(l.Stroke.Width / 2)
}
