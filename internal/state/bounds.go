package state

import (
	"math"

	"localboard/internal/geom"
)

// Bounds is an axis-aligned box with MinX <= MaxX and MinY <= MaxY.
type Bounds struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// BoundsOf returns the smallest Bounds containing a and b.
func BoundsOf(a, b geom.Point) Bounds {
	return Bounds{
		MinX: math.Min(a.X, b.X),
		MinY: math.Min(a.Y, b.Y),
		MaxX: math.Max(a.X, b.X),
		MaxY: math.Max(a.Y, b.Y),
	}
}

func (b Bounds) Width() float64  { return b.MaxX - b.MinX }
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// Min returns the top-left corner.
func (b Bounds) Min() geom.Point { return geom.Pt(b.MinX, b.MinY) }

// Max returns the bottom-right corner.
func (b Bounds) Max() geom.Point { return geom.Pt(b.MaxX, b.MaxY) }

// Center returns the middle of the box.
func (b Bounds) Center() geom.Point {
	return geom.Pt((b.MinX+b.MaxX)/2, (b.MinY+b.MaxY)/2)
}

// Expand grows the box by pad on every side.
func (b Bounds) Expand(pad float64) Bounds {
	return Bounds{MinX: b.MinX - pad, MinY: b.MinY - pad, MaxX: b.MaxX + pad, MaxY: b.MaxY + pad}
}

// Union returns the smallest box containing both.
func (b Bounds) Union(o Bounds) Bounds {
	return Bounds{
		MinX: math.Min(b.MinX, o.MinX),
		MinY: math.Min(b.MinY, o.MinY),
		MaxX: math.Max(b.MaxX, o.MaxX),
		MaxY: math.Max(b.MaxY, o.MaxY),
	}
}

// Contains reports whether o lies entirely inside b.
func (b Bounds) Contains(o Bounds) bool {
	return o.MinX >= b.MinX && o.MinY >= b.MinY && o.MaxX <= b.MaxX && o.MaxY <= b.MaxY
}

// pointBounds returns the bounds of a non-empty point list.
func pointBounds(pts ...geom.Point) Bounds {
	b := Bounds{MinX: pts[0].X, MinY: pts[0].Y, MaxX: pts[0].X, MaxY: pts[0].Y}
	for _, p := range pts[1:] {
		b.MinX = math.Min(b.MinX, p.X)
		b.MinY = math.Min(b.MinY, p.Y)
		b.MaxX = math.Max(b.MaxX, p.X)
		b.MaxY = math.Max(b.MaxY, p.Y)
	}
	return b
}

// ElementBounds returns the axis-aligned bounds of a shape. Negative width or
// height is normalized. An empty Pencil yields a zero box at the origin.
func ElementBounds(s Shape) Bounds {
	switch v := s.(type) {
	case Rectangle:
		return BoundsOf(geom.Pt(v.X, v.Y), geom.Pt(v.X+v.Width, v.Y+v.Height))
	case Image:
		return BoundsOf(geom.Pt(v.X, v.Y), geom.Pt(v.X+v.Width, v.Y+v.Height))
	case Circle:
		r := math.Abs(v.Radius)
		return Bounds{MinX: v.X - r, MinY: v.Y - r, MaxX: v.X + r, MaxY: v.Y + r}
	case Triangle:
		return pointBounds(v.P1, v.P2, v.P3)
	case Arrow:
		return BoundsOf(v.Start(), v.End())
	case Pencil:
		if len(v.Points) == 0 {
			return Bounds{}
		}
		return pointBounds(v.Points...)
	}
	unhandled(s)
	return Bounds{}
}

// CommonBounds returns the union of the bounds of shapes. The second result
// is false when shapes is empty.
func CommonBounds(shapes []Shape) (Bounds, bool) {
	if len(shapes) == 0 {
		return Bounds{}, false
	}
	b := ElementBounds(shapes[0])
	for _, s := range shapes[1:] {
		b = b.Union(ElementBounds(s))
	}
	return b, true
}

// DoBoundsIntersect reports whether two boxes overlap. Touching edges count.
func DoBoundsIntersect(a, b Bounds) bool {
	return !(a.MaxX < b.MinX || b.MaxX < a.MinX || a.MaxY < b.MinY || b.MaxY < a.MinY)
}

// IsPointInBounds reports whether p lies in b grown by padding, edges
// included.
func IsPointInBounds(p geom.Point, b Bounds, padding float64) bool {
	return p.X >= b.MinX-padding && p.X <= b.MaxX+padding &&
		p.Y >= b.MinY-padding && p.Y <= b.MaxY+padding
}
