package session

import (
	"localboard/internal/geom"
	"localboard/internal/state"
)

// newShape starts the shape for the current drawing tool at world point p.
func (s *Session) newShape(p geom.Point) state.Shape {
	c := state.Common{
		ID:          state.NewID(),
		StrokeColor: s.style.StrokeColor,
		FillColor:   s.style.FillColor,
		StrokeWidth: s.style.StrokeWidth,
	}
	switch s.tool {
	case ToolRectangle:
		return state.Rectangle{Common: c, X: p.X, Y: p.Y}
	case ToolCircle:
		return state.Circle{Common: c, X: p.X, Y: p.Y}
	case ToolTriangle:
		return state.Triangle{Common: c, P1: p, P2: p, P3: p}
	case ToolArrow:
		c.FillColor = ""
		return state.Arrow{Common: c, X: p.X, Y: p.Y, EndX: p.X, EndY: p.Y}
	default:
		c.FillColor = ""
		return state.Pencil{Common: c, Points: []geom.Point{p}}
	}
}

// updateShape stretches the shape being drawn towards world point p. The
// gesture origin stays fixed.
func (s *Session) updateShape(sh state.Shape, p geom.Point) state.Shape {
	o := s.g.origin
	switch v := sh.(type) {
	case state.Rectangle:
		v.Width, v.Height = p.X-o.X, p.Y-o.Y
		return v
	case state.Circle:
		v.Radius = geom.Distance(o, p)
		return v
	case state.Triangle:
		b := state.BoundsOf(o, p)
		v.P1 = geom.Pt((b.MinX+b.MaxX)/2, b.MinY)
		v.P2 = geom.Pt(b.MaxX, b.MaxY)
		v.P3 = geom.Pt(b.MinX, b.MaxY)
		return v
	case state.Arrow:
		v.EndX, v.EndY = p.X, p.Y
		return v
	case state.Pencil:
		if last := v.Points[len(v.Points)-1]; last == p {
			return v
		}
		v.Points = append(v.Points, p)
		return v
	}
	return sh
}

// isDegenerate reports a drawn shape too small to keep: a click without
// movement, or a stroke of a single point.
func isDegenerate(sh state.Shape) bool {
	switch v := sh.(type) {
	case state.Pencil:
		return len(v.Points) < 2
	case state.Circle:
		return v.Radius == 0
	case state.Rectangle:
		return v.Width == 0 || v.Height == 0
	}
	b := state.ElementBounds(sh)
	return b.Width() == 0 && b.Height() == 0
}
