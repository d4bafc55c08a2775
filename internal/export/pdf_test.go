package export

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"localboard/internal/geom"
	"localboard/internal/state"
)

func sampleShapes() []state.Shape {
	c := state.Common{StrokeColor: "#000000", FillColor: "#ff0000", StrokeWidth: 2}
	return []state.Shape{
		state.Rectangle{Common: withID(c, "r"), X: 0, Y: 0, Width: 100, Height: 50},
		state.Circle{Common: withID(c, "c"), X: 150, Y: 50, Radius: 25},
		state.Triangle{Common: withID(c, "t"), P1: geom.Pt(0, 100), P2: geom.Pt(50, 150), P3: geom.Pt(0, 150)},
		state.Arrow{Common: withID(c, "a"), X: 0, Y: 200, EndX: 200, EndY: 200},
		state.Pencil{Common: withID(c, "p"), Points: []geom.Point{{X: 10, Y: 10}, {X: 20, Y: 30}, {X: 40, Y: 5}}},
		state.Image{Common: withID(c, "i"), X: 100, Y: 100, Width: 50, Height: 50, Src: "does-not-exist.png"},
	}
}

func withID(c state.Common, id string) state.Common {
	c.ID = id
	return c
}

func TestWriteProducesPDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleShapes(), DefaultOptions()))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")), "missing PDF header")
}

func TestWriteEmpty(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, Write(&buf, nil, DefaultOptions()), ErrNothingToExport)
	assert.Zero(t, buf.Len())
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.pdf")
	require.NoError(t, WriteFile(path, sampleShapes(), DefaultOptions()))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")), "file is not a PDF")

	empty := filepath.Join(t.TempDir(), "empty.pdf")
	assert.ErrorIs(t, WriteFile(empty, nil, DefaultOptions()), ErrNothingToExport)
	assert.NoFileExists(t, empty, "empty export left a file behind")
}

func TestFitPage(t *testing.T) {
	tests := []struct {
		name   string
		b      state.Bounds
		scale  float64
		offset geom.Point
	}{
		{"wide", state.Bounds{MaxX: 200, MaxY: 50}, 1, geom.Pt(10, 85)},
		{"tall", state.Bounds{MaxX: 50, MaxY: 400}, 0.5, geom.Pt(97.5, 10)},
		{"flat line", state.Bounds{MinX: 10, MaxX: 110, MinY: 5, MaxY: 5}, 2, geom.Pt(10, 110)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pg := fitPage(tt.b, 220, 220, 10)
			assert.InDelta(t, tt.scale, pg.scale, 1e-9)
			assert.InDelta(t, tt.offset.X, pg.offset.X, 1e-9)
			assert.InDelta(t, tt.offset.Y, pg.offset.Y, 1e-9)
		})
	}
}
