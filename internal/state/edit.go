package state

import (
	"math"
	"slices"

	"localboard/internal/geom"
)

// Translate returns s moved by (dx, dy).
func Translate(s Shape, dx, dy float64) Shape {
	d := geom.Pt(dx, dy)
	switch v := s.(type) {
	case Rectangle:
		v.X, v.Y = v.X+dx, v.Y+dy
		return v
	case Image:
		v.X, v.Y = v.X+dx, v.Y+dy
		return v
	case Circle:
		v.X, v.Y = v.X+dx, v.Y+dy
		return v
	case Triangle:
		v.P1, v.P2, v.P3 = v.P1.Add(d), v.P2.Add(d), v.P3.Add(d)
		return v
	case Arrow:
		v.X, v.Y = v.X+dx, v.Y+dy
		v.EndX, v.EndY = v.EndX+dx, v.EndY+dy
		return v
	case Pencil:
		pts := make([]geom.Point, len(v.Points))
		for i, p := range v.Points {
			pts[i] = p.Add(d)
		}
		v.Points = pts
		return v
	}
	unhandled(s)
	return nil
}

// ResizeTo returns s with every defining point mapped from the box from onto
// the box to. An axis with zero extent in from is only translated. Circles
// keep their shape: the radius follows the smaller of the two axis scales.
func ResizeTo(s Shape, from, to Bounds) Shape {
	sx, sy := 1.0, 1.0
	if w := from.Width(); w != 0 {
		sx = to.Width() / w
	}
	if h := from.Height(); h != 0 {
		sy = to.Height() / h
	}
	m := func(p geom.Point) geom.Point {
		return geom.Pt(to.MinX+(p.X-from.MinX)*sx, to.MinY+(p.Y-from.MinY)*sy)
	}

	switch v := s.(type) {
	case Rectangle:
		p := m(geom.Pt(v.X, v.Y))
		v.X, v.Y, v.Width, v.Height = p.X, p.Y, v.Width*sx, v.Height*sy
		return v
	case Image:
		p := m(geom.Pt(v.X, v.Y))
		v.X, v.Y, v.Width, v.Height = p.X, p.Y, v.Width*sx, v.Height*sy
		return v
	case Circle:
		c := m(v.Center())
		v.X, v.Y = c.X, c.Y
		v.Radius = math.Abs(v.Radius) * math.Min(math.Abs(sx), math.Abs(sy))
		return v
	case Triangle:
		v.P1, v.P2, v.P3 = m(v.P1), m(v.P2), m(v.P3)
		return v
	case Arrow:
		a, b := m(v.Start()), m(v.End())
		v.X, v.Y, v.EndX, v.EndY = a.X, a.Y, b.X, b.Y
		return v
	case Pencil:
		pts := make([]geom.Point, len(v.Points))
		for i, p := range v.Points {
			pts[i] = m(p)
		}
		v.Points = pts
		return v
	}
	unhandled(s)
	return nil
}

// Normalize flips rectangles and images with negative width or height so the
// origin is their top-left corner. Other shapes are returned unchanged.
func Normalize(s Shape) Shape {
	switch v := s.(type) {
	case Rectangle:
		b := ElementBounds(v)
		v.X, v.Y, v.Width, v.Height = b.MinX, b.MinY, b.Width(), b.Height()
		return v
	case Image:
		b := ElementBounds(v)
		v.X, v.Y, v.Width, v.Height = b.MinX, b.MinY, b.Width(), b.Height()
		return v
	}
	return s
}

// ReplaceByID returns a copy of shapes in which every shape whose id is a key
// of repl is replaced by the mapped value.
func ReplaceByID(shapes []Shape, repl map[string]Shape) []Shape {
	out := slices.Clone(shapes)
	for i, s := range out {
		if r, ok := repl[s.Attrs().ID]; ok {
			out[i] = r
		}
	}
	return out
}

// RemoveIDs returns the shapes whose ids are not in ids.
func RemoveIDs(shapes []Shape, ids map[string]struct{}) []Shape {
	out := make([]Shape, 0, len(shapes))
	for _, s := range shapes {
		if _, drop := ids[s.Attrs().ID]; !drop {
			out = append(out, s)
		}
	}
	return out
}
