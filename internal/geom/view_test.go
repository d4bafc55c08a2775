package geom

import (
	"math"
	"testing"
)

func TestScreenWorldRoundTrip(t *testing.T) {
	views := []ViewState{
		IdentityView,
		{X: 120, Y: -45, Scale: 2.5},
		{X: -3.25, Y: 900, Scale: 0.1},
		{X: 0, Y: 0, Scale: 10},
		{X: 17, Y: 4, Scale: -1},
	}
	points := []Point{Pt(0, 0), Pt(1.5, -2.25), Pt(-1e4, 3e3), Pt(123.456, 789.012)}
	for _, v := range views {
		for _, p := range points {
			got := ScreenToWorld(WorldToScreen(p, v), v)
			if !got.Approx(p, 1e-9*math.Max(1, math.Abs(p.X)+math.Abs(p.Y))) {
				t.Errorf("round trip of %v through %+v = %v", p, v, got)
			}
		}
	}
}

func TestWorldToScreen(t *testing.T) {
	v := ViewState{X: 10, Y: 20, Scale: 2}
	if got, want := WorldToScreen(Pt(5, 5), v), Pt(20, 30); got != want {
		t.Errorf("WorldToScreen = %v, want %v", got, want)
	}
	if got, want := ScreenToWorld(Pt(20, 30), v), Pt(5, 5); got != want {
		t.Errorf("ScreenToWorld = %v, want %v", got, want)
	}
}

func TestZoomAtKeepsAnchor(t *testing.T) {
	tests := []struct {
		name   string
		view   ViewState
		anchor Point
		scale  float64
	}{
		{"zoom in at origin", IdentityView, Pt(0, 0), 2},
		{"zoom in at pointer", ViewState{X: 30, Y: -20, Scale: 1.5}, Pt(200, 100), 3},
		{"zoom out", ViewState{X: -400, Y: 250, Scale: 4}, Pt(512, 384), 0.25},
		{"same scale", ViewState{X: 5, Y: 5, Scale: 1}, Pt(7, 9), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			world := ScreenToWorld(tt.anchor, tt.view)
			nv := ZoomAt(tt.view, tt.anchor, tt.scale)
			if nv.Scale != tt.scale {
				t.Fatalf("scale = %v, want %v", nv.Scale, tt.scale)
			}
			if got := WorldToScreen(world, nv); !got.Approx(tt.anchor, 1e-9) {
				t.Errorf("anchor moved: %v -> %v", tt.anchor, got)
			}
		})
	}
}

func TestClampScale(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{0.01, 0.1},
		{0.5, 0.5},
		{10, 10},
		{42, 10},
	}
	for _, tt := range tests {
		if got := ClampScale(tt.in, 0.1, 10); got != tt.want {
			t.Errorf("ClampScale(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestPinchUsesInitialValues(t *testing.T) {
	v := ViewState{X: 50, Y: 60, Scale: 1}
	a, b := Pt(100, 100), Pt(200, 100)
	p := BeginPinch(v, a, b)

	// Fingers spread to twice the distance around the same midpoint.
	nv := p.Update(Pt(50, 100), Pt(250, 100), 0.1, 10)
	if math.Abs(nv.Scale-2) > eps {
		t.Fatalf("scale = %v, want 2", nv.Scale)
	}
	if got := WorldToScreen(p.WorldMid, nv); !got.Approx(Pt(150, 100), 1e-9) {
		t.Errorf("initial world midpoint drifted to %v", got)
	}

	// Many intermediate updates must not compound: returning to the
	// starting contacts restores the starting view.
	for i := 0; i < 100; i++ {
		d := float64(i)
		p.Update(Pt(100-d, 100), Pt(200+d, 100), 0.1, 10)
	}
	back := p.Update(a, b, 0.1, 10)
	if math.Abs(back.Scale-v.Scale) > eps || math.Abs(back.X-v.X) > 1e-9 || math.Abs(back.Y-v.Y) > 1e-9 {
		t.Errorf("view after returning = %+v, want %+v", back, v)
	}
}

func TestPinchClampsAndHandlesZeroDistance(t *testing.T) {
	v := ViewState{Scale: 5}
	p := BeginPinch(v, Pt(10, 10), Pt(20, 10))
	if got := p.Update(Pt(0, 10), Pt(1000, 10), 0.1, 10); got.Scale != 10 {
		t.Errorf("scale = %v, want clamp to 10", got.Scale)
	}

	z := BeginPinch(v, Pt(10, 10), Pt(10, 10))
	if got := z.Update(Pt(0, 0), Pt(50, 50), 0.1, 10); got.Scale != 5 {
		t.Errorf("zero start distance scale = %v, want 5", got.Scale)
	}
}
