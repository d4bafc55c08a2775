package state

import (
	"fmt"

	"localboard/internal/geom"
)

// Kind tags a shape variant.
type Kind string

const (
	KindRectangle Kind = "rectangle"
	KindCircle    Kind = "circle"
	KindTriangle  Kind = "triangle"
	KindArrow     Kind = "arrow"
	KindPencil    Kind = "pencil"
	KindImage     Kind = "image"
)

// Common holds the fields every shape carries.
type Common struct {
	ID          string
	Rotation    float64
	StrokeColor string
	FillColor   string
	StrokeWidth float64
}

// Attrs returns the shared fields of a shape.
func (c Common) Attrs() Common { return c }

// Shape is the closed set of drawable elements. The unexported marker method
// keeps the set limited to the variants in this file; every function that
// switches over shapes panics on anything else.
//
// Shapes are values. A snapshot never changes once pushed, so any edit
// produces a new shape (and, for Pencil, a new point slice).
type Shape interface {
	Kind() Kind
	Attrs() Common
	isShape()
}

type Rectangle struct {
	Common
	X, Y          float64
	Width, Height float64
}

type Circle struct {
	Common
	X, Y   float64
	Radius float64
}

type Triangle struct {
	Common
	P1, P2, P3 geom.Point
}

type Arrow struct {
	Common
	X, Y       float64
	EndX, EndY float64
}

type Pencil struct {
	Common
	Points []geom.Point
}

type Image struct {
	Common
	X, Y          float64
	Width, Height float64
	Src           string
}

func (Rectangle) Kind() Kind { return KindRectangle }
func (Circle) Kind() Kind    { return KindCircle }
func (Triangle) Kind() Kind  { return KindTriangle }
func (Arrow) Kind() Kind     { return KindArrow }
func (Pencil) Kind() Kind    { return KindPencil }
func (Image) Kind() Kind     { return KindImage }

func (Rectangle) isShape() {}
func (Circle) isShape()    {}
func (Triangle) isShape()  {}
func (Arrow) isShape()     {}
func (Pencil) isShape()    {}
func (Image) isShape()     {}

// Start returns the tail of the arrow.
func (a Arrow) Start() geom.Point { return geom.Pt(a.X, a.Y) }

// End returns the head of the arrow.
func (a Arrow) End() geom.Point { return geom.Pt(a.EndX, a.EndY) }

// Center returns the circle's center.
func (c Circle) Center() geom.Point { return geom.Pt(c.X, c.Y) }

// WithCommon returns s with its shared fields replaced by c.
func WithCommon(s Shape, c Common) Shape {
	switch v := s.(type) {
	case Rectangle:
		v.Common = c
		return v
	case Circle:
		v.Common = c
		return v
	case Triangle:
		v.Common = c
		return v
	case Arrow:
		v.Common = c
		return v
	case Pencil:
		v.Common = c
		return v
	case Image:
		v.Common = c
		return v
	}
	unhandled(s)
	return nil
}

// IDs returns the ids of shapes in order.
func IDs(shapes []Shape) []string {
	ids := make([]string, len(shapes))
	for i, s := range shapes {
		ids[i] = s.Attrs().ID
	}
	return ids
}

// unhandled reports a shape variant this package does not know. Reaching it is
// a programming error.
func unhandled(s Shape) {
	panic(fmt.Sprintf("state: unhandled shape %T", s))
}
