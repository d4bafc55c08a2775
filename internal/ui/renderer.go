package ui

import (
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"localboard/internal/geom"
	"localboard/internal/session"
	"localboard/internal/state"
)

const (
	gridSize      = 50 // world units
	minGridPixels = 8
	handleSize    = 8 // screen pixels
	arrowHeadSize = 14
	laserRadius   = 4
)

var (
	backgroundColor = color.NRGBA{R: 245, G: 246, B: 248, A: 255}
	gridColor       = color.NRGBA{R: 220, G: 220, B: 220, A: 100}
	selectionColor  = color.NRGBA{R: 30, G: 120, B: 230, A: 255}
	boxFillColor    = color.NRGBA{R: 30, G: 120, B: 230, A: 40}
	laserColor      = color.NRGBA{R: 230, G: 30, B: 30, A: 255}
)

// frame is everything the renderer reads from the session for one paint.
type frame struct {
	view      geom.ViewState
	shapes    []state.Shape
	selection state.Bounds
	selected  bool
	box       state.Bounds
	boxing    bool
	trail     []session.TrailPoint
}

type boardRenderer struct {
	board      *BoardWidget
	background *canvas.Rectangle
	objects    []fyne.CanvasObject
	images     map[string]*canvas.Image
}

func newBoardRenderer(b *BoardWidget) *boardRenderer {
	r := &boardRenderer{
		board:      b,
		background: canvas.NewRectangle(backgroundColor),
		images:     make(map[string]*canvas.Image),
	}
	r.rebuild()
	return r
}

func (r *boardRenderer) snapshot() (f frame) {
	r.board.read(func(s *session.Session) {
		f.view = s.View()
		f.shapes = s.Shapes()
		f.selection, f.selected = s.SelectionBounds()
		f.box, f.boxing = s.SelectionBox()
		f.trail = s.LaserTrail()
	})
	return f
}

func (r *boardRenderer) rebuild() {
	f := r.snapshot()
	size := r.board.Size()

	objs := []fyne.CanvasObject{r.background}
	objs = append(objs, gridLines(f.view, size)...)
	for _, s := range f.shapes {
		objs = append(objs, r.shapeObjects(s, f.view)...)
	}
	if f.selected {
		objs = append(objs, selectionObjects(f.selection, f.view)...)
	}
	if f.boxing {
		objs = append(objs, boxObject(f.box, f.view))
	}
	objs = append(objs, laserObjects(f.trail, f.view)...)
	r.objects = objs
}

// gridLines draws the world grid, skipping it when zoomed out too far.
func gridLines(v geom.ViewState, size fyne.Size) []fyne.CanvasObject {
	step := gridSize * v.Scale
	if step < minGridPixels {
		return nil
	}
	var lines []fyne.CanvasObject
	w, h := float64(size.Width), float64(size.Height)
	for x := math.Mod(v.X, step); x < w; x += step {
		lines = append(lines, line(gridColor, 0.5, geom.Pt(x, 0), geom.Pt(x, h)))
	}
	for y := math.Mod(v.Y, step); y < h; y += step {
		lines = append(lines, line(gridColor, 0.5, geom.Pt(0, y), geom.Pt(w, y)))
	}
	return lines
}

func line(c color.Color, width float32, a, b geom.Point) *canvas.Line {
	l := canvas.NewLine(c)
	l.StrokeWidth = width
	l.Position1 = toPos(a)
	l.Position2 = toPos(b)
	return l
}

func paint(s string) color.Color {
	if c, ok := state.ParseColor(s); ok {
		return c
	}
	return color.Transparent
}

// polyline maps world points to screen segments.
func polyline(c color.Color, width float32, v geom.ViewState, pts ...geom.Point) []fyne.CanvasObject {
	out := make([]fyne.CanvasObject, 0, len(pts))
	for i := 1; i < len(pts); i++ {
		out = append(out, line(c, width, geom.WorldToScreen(pts[i-1], v), geom.WorldToScreen(pts[i], v)))
	}
	return out
}

func (r *boardRenderer) shapeObjects(s state.Shape, v geom.ViewState) []fyne.CanvasObject {
	c := s.Attrs()
	stroke := paint(c.StrokeColor)
	width := float32(c.StrokeWidth * v.Scale)

	switch sh := s.(type) {
	case state.Rectangle:
		b := state.ElementBounds(sh)
		rect := canvas.NewRectangle(paint(c.FillColor))
		rect.StrokeColor = stroke
		rect.StrokeWidth = width
		place(rect, b, v)
		return []fyne.CanvasObject{rect}
	case state.Circle:
		circle := canvas.NewCircle(paint(c.FillColor))
		circle.StrokeColor = stroke
		circle.StrokeWidth = width
		place(circle, state.ElementBounds(sh), v)
		return []fyne.CanvasObject{circle}
	case state.Triangle:
		return polyline(stroke, width, v, sh.P1, sh.P2, sh.P3, sh.P1)
	case state.Arrow:
		out := polyline(stroke, width, v, sh.Start(), sh.End())
		if l, rt, ok := state.ArrowHead(sh, arrowHeadSize/v.Scale); ok {
			out = append(out, polyline(stroke, width, v, l, sh.End(), rt)...)
		}
		return out
	case state.Pencil:
		return polyline(stroke, width, v, sh.Points...)
	case state.Image:
		img := r.image(sh.Src)
		place(img, state.ElementBounds(sh), v)
		return []fyne.CanvasObject{img}
	}
	return nil
}

// image returns a cached canvas image for the file src.
func (r *boardRenderer) image(src string) *canvas.Image {
	if img, ok := r.images[src]; ok {
		return img
	}
	img := canvas.NewImageFromFile(src)
	img.FillMode = canvas.ImageFillStretch
	r.images[src] = img
	return img
}

// place moves and sizes o to cover the world bounds b.
func place(o fyne.CanvasObject, b state.Bounds, v geom.ViewState) {
	tl := geom.WorldToScreen(b.Min(), v)
	br := geom.WorldToScreen(b.Max(), v)
	o.Move(toPos(tl))
	o.Resize(fyne.NewSize(float32(br.X-tl.X), float32(br.Y-tl.Y)))
}

func selectionObjects(b state.Bounds, v geom.ViewState) []fyne.CanvasObject {
	outline := canvas.NewRectangle(color.Transparent)
	outline.StrokeColor = selectionColor
	outline.StrokeWidth = 1
	place(outline, b, v)

	objs := []fyne.CanvasObject{outline}
	for _, corner := range []geom.Point{b.Min(), geom.Pt(b.MaxX, b.MinY), b.Max(), geom.Pt(b.MinX, b.MaxY)} {
		c := geom.WorldToScreen(corner, v)
		h := canvas.NewRectangle(color.White)
		h.StrokeColor = selectionColor
		h.StrokeWidth = 1
		h.Move(fyne.NewPos(float32(c.X)-handleSize/2, float32(c.Y)-handleSize/2))
		h.Resize(fyne.NewSize(handleSize, handleSize))
		objs = append(objs, h)
	}
	return objs
}

func boxObject(b state.Bounds, v geom.ViewState) fyne.CanvasObject {
	box := canvas.NewRectangle(boxFillColor)
	box.StrokeColor = selectionColor
	box.StrokeWidth = 1
	place(box, b, v)
	return box
}

func laserObjects(trail []session.TrailPoint, v geom.ViewState) []fyne.CanvasObject {
	objs := make([]fyne.CanvasObject, 0, len(trail))
	for _, p := range trail {
		c := laserColor
		c.A = uint8(float64(c.A) * p.Opacity)
		dot := canvas.NewCircle(c)
		s := geom.WorldToScreen(p.P, v)
		dot.Move(fyne.NewPos(float32(s.X)-laserRadius, float32(s.Y)-laserRadius))
		dot.Resize(fyne.NewSize(2*laserRadius, 2*laserRadius))
		objs = append(objs, dot)
	}
	return objs
}

func (r *boardRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.board.read(func(s *session.Session) {
		s.SetViewport(float64(size.Width), float64(size.Height))
	})
}

func (r *boardRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *boardRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *boardRenderer) Refresh() {
	r.rebuild()
	canvas.Refresh(r.board)
}

func (r *boardRenderer) Destroy() {}
