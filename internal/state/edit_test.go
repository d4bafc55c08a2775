package state

import (
	"testing"

	"localboard/internal/geom"
)

func TestTranslate(t *testing.T) {
	pts := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}
	tests := []struct {
		name  string
		shape Shape
	}{
		{"rectangle", Rectangle{X: 1, Y: 2, Width: 3, Height: 4}},
		{"image", Image{X: 1, Y: 2, Width: -3, Height: 4}},
		{"circle", Circle{X: 1, Y: 2, Radius: 3}},
		{"triangle", Triangle{P1: geom.Pt(0, 0), P2: geom.Pt(4, 0), P3: geom.Pt(0, 4)}},
		{"arrow", Arrow{X: 0, Y: 0, EndX: 10, EndY: 5}},
		{"pencil", Pencil{Points: pts}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := ElementBounds(tt.shape)
			got := ElementBounds(Translate(tt.shape, 10, -5))
			want := Bounds{before.MinX + 10, before.MinY - 5, before.MaxX + 10, before.MaxY - 5}
			if got != want {
				t.Errorf("bounds after Translate = %+v, want %+v", got, want)
			}
		})
	}
	if pts[1] != geom.Pt(1, 1) {
		t.Error("Translate modified the original pencil points")
	}
}

func TestResizeTo(t *testing.T) {
	from := Bounds{0, 0, 10, 10}
	to := Bounds{10, 10, 30, 20}
	tests := []struct {
		name  string
		shape Shape
		want  Bounds
	}{
		{"rectangle", Rectangle{X: 0, Y: 0, Width: 10, Height: 10}, to},
		{"rectangle negative", Rectangle{X: 10, Y: 10, Width: -10, Height: -10}, to},
		{"pencil", Pencil{Points: []geom.Point{{X: 0, Y: 0}, {X: 5, Y: 5}, {X: 10, Y: 10}}}, to},
		{"arrow", Arrow{X: 0, Y: 10, EndX: 10, EndY: 0}, to},
		{"inner triangle", Triangle{P1: geom.Pt(0, 0), P2: geom.Pt(5, 0), P3: geom.Pt(0, 5)}, Bounds{10, 10, 20, 15}},
		{"circle keeps aspect", Circle{X: 5, Y: 5, Radius: 5}, Bounds{15, 10, 25, 20}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ElementBounds(ResizeTo(tt.shape, from, to))
			if got != tt.want {
				t.Errorf("bounds = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestResizeToDegenerateAxis(t *testing.T) {
	a := Arrow{X: 0, Y: 5, EndX: 10, EndY: 5}
	from := ElementBounds(a)
	got := ElementBounds(ResizeTo(a, from, Bounds{0, 8, 20, 30}))
	if want := (Bounds{0, 8, 20, 8}); got != want {
		t.Errorf("bounds = %+v, want %+v", got, want)
	}
}

func TestNormalize(t *testing.T) {
	r := Normalize(Rectangle{X: 10, Y: 20, Width: -10, Height: -5}).(Rectangle)
	if r.X != 0 || r.Y != 15 || r.Width != 10 || r.Height != 5 {
		t.Errorf("Normalize = %+v", r)
	}
	c := Circle{X: 1, Y: 1, Radius: 2}
	if got := Normalize(c); got != Shape(c) {
		t.Errorf("Normalize changed a circle: %+v", got)
	}
}

func TestReplaceAndRemoveByID(t *testing.T) {
	shapes := []Shape{
		Rectangle{Common: Common{ID: "a"}},
		Circle{Common: Common{ID: "b"}},
		Arrow{Common: Common{ID: "c"}},
	}
	out := ReplaceByID(shapes, map[string]Shape{"b": Circle{Common: Common{ID: "b"}, Radius: 9}})
	if out[1].(Circle).Radius != 9 || shapes[1].(Circle).Radius != 0 {
		t.Error("ReplaceByID did not copy before replacing")
	}

	left := IDs(RemoveIDs(shapes, map[string]struct{}{"a": {}, "c": {}}))
	if len(left) != 1 || left[0] != "b" {
		t.Errorf("RemoveIDs = %v, want [b]", left)
	}
}

func TestWithCommon(t *testing.T) {
	s := WithCommon(Arrow{X: 1}, Common{ID: "x", StrokeWidth: 4})
	a := s.(Arrow)
	if a.ID != "x" || a.StrokeWidth != 4 || a.X != 1 {
		t.Errorf("WithCommon = %+v", a)
	}
}

func TestNewIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewID()
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}
