package state

import (
	"math"

	"localboard/internal/geom"
)

// ToPoints flattens s into an ordered polyline with roughly spacing world
// units between neighbors. Closed shapes end on their starting point.
// The order matters: the eraser splits the result by adjacency.
func ToPoints(s Shape, spacing float64) []geom.Point {
	switch v := s.(type) {
	case Pencil:
		if len(v.Points) == 0 {
			return nil
		}
		return polyline(v.Points, spacing)
	case Rectangle:
		return rectOutline(v.X, v.Y, v.Width, v.Height, spacing)
	case Image:
		return rectOutline(v.X, v.Y, v.Width, v.Height, spacing)
	case Triangle:
		return polyline([]geom.Point{v.P1, v.P2, v.P3, v.P1}, spacing)
	case Circle:
		return circleOutline(v, spacing)
	case Arrow:
		return polyline([]geom.Point{v.Start(), v.End()}, spacing)
	}
	unhandled(s)
	return nil
}

// polyline interpolates every consecutive pair of vertices and appends the
// final vertex.
func polyline(vertices []geom.Point, spacing float64) []geom.Point {
	var out []geom.Point
	for i := 1; i < len(vertices); i++ {
		out = append(out, geom.Interpolate(vertices[i-1], vertices[i], spacing)...)
	}
	return append(out, vertices[len(vertices)-1])
}

// rectOutline walks top, right, bottom and left edges from the top-left
// corner and closes on it again.
func rectOutline(x, y, w, h, spacing float64) []geom.Point {
	tl := geom.Pt(x, y)
	tr := geom.Pt(x+w, y)
	br := geom.Pt(x+w, y+h)
	bl := geom.Pt(x, y+h)
	return polyline([]geom.Point{tl, tr, br, bl, tl}, spacing)
}

func circleOutline(c Circle, spacing float64) []geom.Point {
	if !(spacing >= geom.MinSpacing) {
		spacing = geom.MinSpacing
	}
	r := math.Abs(c.Radius)
	steps := int(math.Ceil(2 * math.Pi * r / spacing))
	out := make([]geom.Point, 0, steps+1)
	for i := 0; i <= steps; i++ {
		var angle float64
		if steps > 0 {
			angle = 2 * math.Pi * float64(i) / float64(steps)
		}
		out = append(out, geom.Pt(c.X+r*math.Cos(angle), c.Y+r*math.Sin(angle)))
	}
	return out
}

// ArrowHead returns the two barb tips of a, drawn 30 degrees either side of
// the shaft and size world units long. Barbs never exceed the shaft. ok is
// false for a zero-length arrow.
func ArrowHead(a Arrow, size float64) (left, right geom.Point, ok bool) {
	d := a.Start().Sub(a.End())
	l := d.Length()
	if l == 0 || size <= 0 {
		return geom.Point{}, geom.Point{}, false
	}
	d = d.Mul(math.Min(size, l) / l)
	rot := func(p geom.Point, th float64) geom.Point {
		sin, cos := math.Sincos(th)
		return geom.Pt(p.X*cos-p.Y*sin, p.X*sin+p.Y*cos)
	}
	return a.End().Add(rot(d, math.Pi/6)), a.End().Add(rot(d, -math.Pi/6)), true
}
