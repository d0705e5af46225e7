// SPDX-License-Identifier: Unlicense OR MIT

// Package tess converts clipped shapes into clipped triangle meshes.
package tess

import (
	"image/color"
	"math"

	"github.com/uibridge/uibridge/f32"
	"github.com/uibridge/uibridge/op/paint"
)

// maxSegmentPx is the longest arc segment, in pixels, used when
// approximating circles and rounded corners.
const maxSegmentPx = 4

// Tessellate converts shapes in logical points into meshes in physical
// pixels. Shapes outside their clip rectangle are dropped, and consecutive
// shapes sharing a clip rectangle are merged into a single primitive.
func Tessellate(shapes []paint.ClippedShape, pixelsPerPoint float32) []paint.ClippedPrimitive {
	if pixelsPerPoint <= 0 {
		pixelsPerPoint = 1
	}
	var prims []paint.ClippedPrimitive
	for _, s := range shapes {
		if !paint.Valid(s.Shape) {
			continue
		}
		if !s.Clip.Overlaps(s.Shape.Bounds()) {
			continue
		}
		var m paint.Mesh
		shape(&m, s.Shape, pixelsPerPoint)
		if m.Empty() {
			continue
		}
		clip := s.Clip.Mul(pixelsPerPoint)
		if n := len(prims); n > 0 && prims[n-1].Clip == clip {
			prims[n-1].Mesh.Append(m)
			continue
		}
		prims = append(prims, paint.ClippedPrimitive{Clip: clip, Mesh: m})
	}
	return prims
}

func shape(m *paint.Mesh, s paint.Shape, ppp float32) {
	switch s := s.(type) {
	case paint.RectShape:
		rect(m, s, ppp)
	case *paint.RectShape:
		rect(m, *s, ppp)
	case paint.CircleShape:
		fillConvex(m, circle(s.Center.Mul(ppp), s.Radius*ppp), s.Color)
	case *paint.CircleShape:
		fillConvex(m, circle(s.Center.Mul(ppp), s.Radius*ppp), s.Color)
	case paint.PathShape:
		path(m, s, ppp)
	case *paint.PathShape:
		path(m, *s, ppp)
	case paint.LineShape:
		line(m, s.From.Mul(ppp), s.To.Mul(ppp), s.Stroke.Width*ppp, s.Stroke.Color)
	case *paint.LineShape:
		line(m, s.From.Mul(ppp), s.To.Mul(ppp), s.Stroke.Width*ppp, s.Stroke.Color)
	}
}

func rect(m *paint.Mesh, r paint.RectShape, ppp float32) {
	b := r.Rect.Mul(ppp)
	if b.Empty() {
		return
	}
	rad := min(r.Radius*ppp, b.Dx()/2, b.Dy()/2)
	if rad <= 0 {
		fillConvex(m, []f32.Point{
			b.Min,
			{X: b.Max.X, Y: b.Min.Y},
			b.Max,
			{X: b.Min.X, Y: b.Max.Y},
		}, r.Color)
		return
	}
	// Corners clockwise from north-west, each a quarter arc.
	var outline []f32.Point
	corners := []struct {
		c     f32.Point
		start float64
	}{
		{f32.Pt(b.Min.X+rad, b.Min.Y+rad), math.Pi},
		{f32.Pt(b.Max.X-rad, b.Min.Y+rad), 1.5 * math.Pi},
		{f32.Pt(b.Max.X-rad, b.Max.Y-rad), 0},
		{f32.Pt(b.Min.X+rad, b.Max.Y-rad), 0.5 * math.Pi},
	}
	n := segments(rad, math.Pi/2)
	for _, c := range corners {
		outline = append(outline, arc(c.c, rad, c.start, math.Pi/2, n)...)
	}
	fillConvex(m, outline, r.Color)
}

func path(m *paint.Mesh, p paint.PathShape, ppp float32) {
	if len(p.Points) < 2 {
		return
	}
	pts := make([]f32.Point, len(p.Points))
	for i, pt := range p.Points {
		pts[i] = pt.Mul(ppp)
	}
	if p.Closed && len(pts) >= 3 && p.Fill.A != 0 {
		fillConvex(m, pts, p.Fill)
	}
	if p.Stroke.Width <= 0 || p.Stroke.Color.A == 0 {
		return
	}
	w := p.Stroke.Width * ppp
	for i := 0; i+1 < len(pts); i++ {
		line(m, pts[i], pts[i+1], w, p.Stroke.Color)
	}
	if p.Closed {
		line(m, pts[len(pts)-1], pts[0], w, p.Stroke.Color)
	}
}

// line adds a quad of the given width centered on the segment from-to.
func line(m *paint.Mesh, from, to f32.Point, width float32, c color.NRGBA) {
	if width <= 0 || from == to {
		return
	}
	d := to.Sub(from)
	n := normPt(f32.Pt(-d.Y, d.X), width/2)
	a := m.AddVertex(from.Add(n), c)
	b := m.AddVertex(to.Add(n), c)
	cc := m.AddVertex(to.Sub(n), c)
	dd := m.AddVertex(from.Sub(n), c)
	m.AddTriangle(a, b, cc)
	m.AddTriangle(a, cc, dd)
}

// fillConvex adds a triangle fan covering the convex polygon pts.
func fillConvex(m *paint.Mesh, pts []f32.Point, c color.NRGBA) {
	if len(pts) < 3 {
		return
	}
	first := m.AddVertex(pts[0], c)
	prev := m.AddVertex(pts[1], c)
	for _, p := range pts[2:] {
		next := m.AddVertex(p, c)
		m.AddTriangle(first, prev, next)
		prev = next
	}
}

func circle(center f32.Point, r float32) []f32.Point {
	if r <= 0 {
		return nil
	}
	n := segments(r, 2*math.Pi)
	// The closing point duplicates the first.
	return arc(center, r, 0, 2*math.Pi, n)[:n]
}

// arc returns n+1 points along the arc starting at angle start and
// sweeping sweep radians clockwise in screen space.
func arc(center f32.Point, r float32, start, sweep float64, n int) []f32.Point {
	pts := make([]f32.Point, 0, n+1)
	for i := 0; i <= n; i++ {
		a := start + sweep*float64(i)/float64(n)
		sin, cos := math.Sincos(a)
		pts = append(pts, f32.Pt(center.X+r*float32(cos), center.Y+r*float32(sin)))
	}
	return pts
}

// segments returns the number of segments needed to keep every arc
// segment shorter than maxSegmentPx.
func segments(r float32, sweep float64) int {
	n := int(math.Ceil(float64(r) * sweep / maxSegmentPx))
	return max(n, 3)
}

// normPt returns the vector p scaled to length l.
func normPt(p f32.Point, l float32) f32.Point {
	d := math.Hypot(float64(p.X), float64(p.Y))
	if d == 0 {
		return f32.Point{}
	}
	s := float32(float64(l) / d)
	return f32.Pt(p.X*s, p.Y*s)
}
