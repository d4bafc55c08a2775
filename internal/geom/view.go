package geom

import "math"

// ViewState maps world space onto the screen: a translation in screen pixels
// followed by a uniform zoom factor.
type ViewState struct {
	X, Y  float64
	Scale float64
}

// IdentityView is the view with no pan and a zoom of 1.
var IdentityView = ViewState{Scale: 1}

// ScreenToWorld converts a screen position to world coordinates.
func ScreenToWorld(p Point, v ViewState) Point {
	return Point{
		X: (p.X - v.X) / v.Scale,
		Y: (p.Y - v.Y) / v.Scale,
	}
}

// WorldToScreen converts a world position to screen coordinates. It is the
// exact inverse of ScreenToWorld.
func WorldToScreen(p Point, v ViewState) Point {
	return Point{
		X: p.X*v.Scale + v.X,
		Y: p.Y*v.Scale + v.Y,
	}
}

// ZoomAt returns v rescaled to scale while keeping the world point under the
// screen anchor in place.
func ZoomAt(v ViewState, anchor Point, scale float64) ViewState {
	world := ScreenToWorld(anchor, v)
	return anchorView(anchor, world, scale)
}

// anchorView places world under the screen point anchor at the given scale.
func anchorView(anchor, world Point, scale float64) ViewState {
	off := anchor.Sub(world.Mul(scale))
	return ViewState{X: off.X, Y: off.Y, Scale: scale}
}

// ClampScale limits scale to [lo, hi].
func ClampScale(scale, lo, hi float64) float64 {
	return math.Min(math.Max(scale, lo), hi)
}

// Pinch captures the start of a two-finger zoom. Every update is computed
// against these initial values, so repeated moves never accumulate error.
type Pinch struct {
	StartDistance float64
	StartScale    float64
	// WorldMid is the world point that was under the initial midpoint.
	WorldMid Point
}

// BeginPinch records the pinch origin for two screen contacts a and b.
func BeginPinch(v ViewState, a, b Point) Pinch {
	return Pinch{
		StartDistance: Distance(a, b),
		StartScale:    v.Scale,
		WorldMid:      ScreenToWorld(a.Midpoint(b), v),
	}
}

// Update returns the view for the current contact positions. The new scale is
// the initial scale times the ratio of finger distances, clamped to
// [lo, hi], and the initial world midpoint is kept under the current midpoint.
func (p Pinch) Update(a, b Point, lo, hi float64) ViewState {
	scale := p.StartScale
	if p.StartDistance > 0 {
		scale = p.StartScale * Distance(a, b) / p.StartDistance
	}
	scale = ClampScale(scale, lo, hi)
	return anchorView(a.Midpoint(b), p.WorldMid, scale)
}
