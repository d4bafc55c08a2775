package ui

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"localboard/internal/config"
	"localboard/internal/geom"
	"localboard/internal/session"
	"localboard/internal/state"
)

func press(b *BoardWidget, x, y float32) {
	b.MouseDown(&desktop.MouseEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)}, Button: desktop.MouseButtonPrimary})
}

func move(b *BoardWidget, x, y float32) {
	b.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)}})
}

func release(b *BoardWidget, x, y float32) {
	b.MouseUp(&desktop.MouseEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)}, Button: desktop.MouseButtonPrimary})
	b.DragEnd()
}

func TestBoardDrawsRectangle(t *testing.T) {
	test.NewTempApp(t)
	b := NewBoardWidget(config.Default(), nil)
	b.Resize(fyne.NewSize(400, 300))
	b.SetTool(session.ToolRectangle)

	press(b, 10, 10)
	move(b, 50, 40)
	release(b, 60, 50)

	require.True(t, b.CanUndo(), "drawing did not reach history")
	var shapes []state.Shape
	b.read(func(s *session.Session) { shapes = s.Committed() })
	require.Len(t, shapes, 1)
	r, ok := shapes[0].(state.Rectangle)
	require.True(t, ok, "got %T", shapes[0])
	assert.Equal(t, 50.0, r.Width)
	assert.Equal(t, 40.0, r.Height)

	// Release followed by DragEnd must not commit twice.
	assert.Equal(t, 2, b.sess.History().Len())
}

func TestBoardRendersShapes(t *testing.T) {
	test.NewTempApp(t)
	initial := []state.Shape{
		state.Rectangle{Common: state.Common{ID: "r", StrokeColor: "#000000", FillColor: "#ff0000", StrokeWidth: 1}, Width: 10, Height: 10},
		state.Pencil{Common: state.Common{ID: "p", StrokeColor: "#000000", StrokeWidth: 1}, Points: []geom.Point{{X: 0, Y: 0}, {X: 5, Y: 5}, {X: 10, Y: 0}}},
	}
	b := NewBoardWidget(config.Default(), initial)
	b.Resize(fyne.NewSize(400, 300))

	var rects, lines int
	for _, o := range test.WidgetRenderer(b).Objects() {
		switch o := o.(type) {
		case *canvas.Rectangle:
			if o.FillColor != backgroundColor {
				rects++
			}
		case *canvas.Line:
			if o.StrokeColor != gridColor {
				lines++
			}
		}
	}
	assert.Equal(t, 1, rects, "rectangles")
	assert.Equal(t, 2, lines, "pencil segments")
}

func TestBoardWheelZoom(t *testing.T) {
	test.NewTempApp(t)
	b := NewBoardWidget(config.Default(), nil)
	b.Resize(fyne.NewSize(400, 300))

	b.Scrolled(&fyne.ScrollEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(100, 100)}, Scrolled: fyne.Delta{DY: 1}})
	v := b.View()
	require.Greater(t, v.Scale, 1.0)
	got := geom.WorldToScreen(geom.Pt(100, 100), v)
	assert.InDelta(t, 100, got.X, 1e-9)
	assert.InDelta(t, 100, got.Y, 1e-9)
}

func TestBoardExportPDF(t *testing.T) {
	test.NewTempApp(t)
	b := NewBoardWidget(config.Default(), []state.Shape{
		state.Circle{Common: state.Common{ID: "c", StrokeColor: "#000000", StrokeWidth: 1}, X: 10, Y: 10, Radius: 5},
	})
	var buf bytes.Buffer
	require.NoError(t, b.ExportPDF(&buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestBoardImportImage(t *testing.T) {
	test.NewTempApp(t)
	b := NewBoardWidget(config.Default(), nil)
	b.Resize(fyne.NewSize(400, 300))

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 40, 20))))
	require.NoError(t, b.ImportImage(&buf, "pic.png"))

	var shapes []state.Shape
	var selected []string
	b.read(func(s *session.Session) {
		shapes = s.Committed()
		selected = s.Selected()
	})
	require.Len(t, shapes, 1)
	img, ok := shapes[0].(state.Image)
	require.True(t, ok)
	assert.InDelta(t, 200, img.X+img.Width/2, 1e-9)
	assert.InDelta(t, 150, img.Y+img.Height/2, 1e-9)
	assert.Equal(t, []string{img.ID}, selected)

	assert.Error(t, b.ImportImage(bytes.NewReader([]byte("nope")), "bad"))
}
