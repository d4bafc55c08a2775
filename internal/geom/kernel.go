package geom

import "math"

// MinSpacing is the smallest step Interpolate will use.
const MinSpacing = 0.01

// MaxInterpolatePoints caps the points Interpolate returns for one segment.
// Longer segments get a wider step.
const MaxInterpolatePoints = 1 << 16

// TriangleTolerance is the absolute area slack allowed by IsPointInTriangle.
const TriangleTolerance = 1.0

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return b.Sub(a).Length()
}

// IsPointNearLine reports whether p lies within threshold of the segment ab.
//
// The test combines the perpendicular distance to the infinite line through
// a and b with a containment check against the segment's bounding box grown
// by threshold. It is not an exact segment distance: near the endpoints of a
// shallow segment the accepted region is slightly larger.
func IsPointNearLine(p, a, b Point, threshold float64) bool {
	d := b.Sub(a)
	length := d.Length()
	if length == 0 {
		return Distance(p, a) < threshold
	}

	perp := math.Abs(d.Cross(p.Sub(a))) / length
	if perp >= threshold {
		return false
	}

	minX, maxX := math.Min(a.X, b.X), math.Max(a.X, b.X)
	minY, maxY := math.Min(a.Y, b.Y), math.Max(a.Y, b.Y)
	return p.X >= minX-threshold && p.X <= maxX+threshold &&
		p.Y >= minY-threshold && p.Y <= maxY+threshold
}

// TriangleArea returns the unsigned area of the triangle p1 p2 p3.
func TriangleArea(p1, p2, p3 Point) float64 {
	return math.Abs(p1.X*(p2.Y-p3.Y)+p2.X*(p3.Y-p1.Y)+p3.X*(p1.Y-p2.Y)) / 2
}

// Angles describes a triangle by its interior angles in degrees (A, B, C at
// p1, p2, p3) and the lengths of the opposite sides (a, b, c).
type Angles struct {
	A, B, C float64
	SideA   float64
	SideB   float64
	SideC   float64
}

// TriangleAngles computes the interior angles of p1 p2 p3 with the law of
// cosines. An angle that cannot be computed for a degenerate triangle is 0.
func TriangleAngles(p1, p2, p3 Point) Angles {
	a := Distance(p2, p3)
	b := Distance(p1, p3)
	c := Distance(p1, p2)
	return Angles{
		A:     lawOfCosines(b, c, a),
		B:     lawOfCosines(a, c, b),
		C:     lawOfCosines(a, b, c),
		SideA: a,
		SideB: b,
		SideC: c,
	}
}

// lawOfCosines returns the angle in degrees opposite side opp, enclosed by
// sides s1 and s2.
func lawOfCosines(s1, s2, opp float64) float64 {
	cos := (s1*s1 + s2*s2 - opp*opp) / (2 * s1 * s2)
	if math.IsNaN(cos) || cos < -1 || cos > 1 {
		return 0
	}
	return math.Acos(cos) * 180 / math.Pi
}

// IsPointInTriangle reports whether p lies inside p1 p2 p3 by comparing the
// sum of the three sub-triangle areas with the full area. The comparison
// allows TriangleTolerance of slack, so points just outside an edge count.
func IsPointInTriangle(p, p1, p2, p3 Point) bool {
	area := TriangleArea(p1, p2, p3)
	sum := TriangleArea(p, p2, p3) + TriangleArea(p1, p, p3) + TriangleArea(p1, p2, p)
	return math.Abs(sum-area) < TriangleTolerance
}

// Interpolate returns ceil(|p2-p1| / spacing) evenly spaced points starting at
// p1 and stopping short of p2. Callers append p2 themselves when they need
// the closing point. Spacing below MinSpacing is raised to MinSpacing, and
// at most MaxInterpolatePoints are returned. Segments with a non-finite
// length yield nil.
func Interpolate(p1, p2 Point, spacing float64) []Point {
	if !(spacing >= MinSpacing) {
		spacing = MinSpacing
	}
	d := Distance(p1, p2)
	if math.IsNaN(d) || math.IsInf(d, 0) || d <= 0 {
		return nil
	}
	n := int(math.Min(math.Ceil(d/spacing), MaxInterpolatePoints))
	out := make([]Point, n)
	for i := range out {
		out[i] = p1.Lerp(p2, float64(i)/float64(n))
	}
	return out
}
