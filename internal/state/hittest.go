package state

import "localboard/internal/geom"

// DefaultHitTolerance is the pick radius in screen pixels.
const DefaultHitTolerance = 10.0

// HitTest reports whether p (world space) picks s at the given zoom using
// DefaultHitTolerance.
func HitTest(s Shape, p geom.Point, zoom float64) bool {
	return HitTestTolerance(s, p, DefaultHitTolerance/zoom)
}

// HitTestTolerance reports whether p picks s with a world-space tolerance of
// tol. Rectangles, images and triangles count interior points only; circles
// count their interior plus the tolerance band; arrows and pencil strokes
// count points within tol of their segments.
func HitTestTolerance(s Shape, p geom.Point, tol float64) bool {
	switch v := s.(type) {
	case Rectangle, Image:
		return IsPointInBounds(p, ElementBounds(v), 0)
	case Circle:
		return geom.Distance(p, v.Center()) <= v.Radius+tol
	case Triangle:
		return geom.IsPointInTriangle(p, v.P1, v.P2, v.P3)
	case Arrow:
		return geom.IsPointNearLine(p, v.Start(), v.End(), tol)
	case Pencil:
		if len(v.Points) == 0 || !IsPointInBounds(p, ElementBounds(v), tol) {
			return false
		}
		for i := 1; i < len(v.Points); i++ {
			if geom.IsPointNearLine(p, v.Points[i-1], v.Points[i], tol) {
				return true
			}
		}
		return false
	}
	unhandled(s)
	return false
}

// TopmostAt returns the last-drawn shape hit by p and its index. ok is false
// when nothing is hit.
func TopmostAt(shapes []Shape, p geom.Point, tol float64) (s Shape, index int, ok bool) {
	for i := len(shapes) - 1; i >= 0; i-- {
		if HitTestTolerance(shapes[i], p, tol) {
			return shapes[i], i, true
		}
	}
	return nil, -1, false
}

// ShapesInBounds returns the shapes whose bounds intersect box, in z-order.
func ShapesInBounds(shapes []Shape, box Bounds) []Shape {
	var out []Shape
	for _, s := range shapes {
		if DoBoundsIntersect(ElementBounds(s), box) {
			out = append(out, s)
		}
	}
	return out
}
