package state

import (
	"localboard/internal/applog"
	"localboard/internal/geom"
)

// DefaultEraserSpacing is the outline sampling step in world units at zoom 1.
const DefaultEraserSpacing = 5.0

// Eraser is a disk in world space.
type Eraser struct {
	Center geom.Point
	Radius float64
	// Spacing is the outline sampling step. Callers divide the base spacing by
	// the zoom so sampling stays fine on screen.
	Spacing float64
}

// Erase applies the eraser to every shape in z-order. If no shape is touched
// the input slice itself is returned with changed == false. Otherwise the
// result is a new slice in which each touched shape is replaced, in place, by
// the pencil strokes that survived.
//
// Erasing never keeps the original variant: a partly erased rectangle
// becomes freehand strokes tracing what is left of its outline.
func Erase(shapes []Shape, e Eraser) (out []Shape, changed bool) {
	for i, s := range shapes {
		pieces, hit := EraseShape(s, e)
		if !hit {
			if changed {
				out = append(out, s)
			}
			continue
		}
		if !changed {
			changed = true
			out = make([]Shape, i, len(shapes)+len(pieces))
			copy(out, shapes[:i])
		}
		out = append(out, pieces...)
		applog.Logger().Debug("erase split shape",
			"id", s.Attrs().ID, "kind", s.Kind(), "pieces", len(pieces))
	}
	if !changed {
		return shapes, false
	}
	return out, true
}

// EraseShape splits one shape by the eraser disk. hit is false when the shape
// is untouched; otherwise pieces holds the replacement pencil strokes (possibly
// none).
func EraseShape(s Shape, e Eraser) (pieces []Shape, hit bool) {
	attrs := s.Attrs()
	if !IsPointInBounds(e.Center, ElementBounds(s), attrs.StrokeWidth+e.Radius) {
		return nil, false
	}

	spacing := e.Spacing
	if spacing <= 0 {
		spacing = DefaultEraserSpacing
	}
	pts := ToPoints(s, spacing)
	if len(pts) == 0 {
		return nil, false
	}

	runs := SplitRuns(pts, e.Center, e.Radius)
	if len(runs) == 1 && len(runs[0]) == len(pts) {
		return nil, false
	}

	for _, run := range runs {
		if len(run) < 2 {
			continue
		}
		pieces = append(pieces, Pencil{
			Common: Common{
				ID:          NewID(),
				StrokeColor: attrs.StrokeColor,
				StrokeWidth: attrs.StrokeWidth,
			},
			Points: run,
		})
	}
	return pieces, true
}

// SplitRuns drops every point within radius of center and returns the
// maximal runs of consecutive points that remain.
func SplitRuns(pts []geom.Point, center geom.Point, radius float64) [][]geom.Point {
	var runs [][]geom.Point
	var cur []geom.Point
	for _, p := range pts {
		if geom.Distance(p, center) > radius {
			cur = append(cur, p)
			continue
		}
		if len(cur) > 0 {
			runs = append(runs, cur)
			cur = nil
		}
	}
	if len(cur) > 0 {
		runs = append(runs, cur)
	}
	return runs
}
