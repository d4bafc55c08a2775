// Package export renders a board snapshot to PDF.
package export

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/jung-kurt/gofpdf"

	"localboard/internal/applog"
	"localboard/internal/geom"
	"localboard/internal/state"
)

// ErrNothingToExport is returned for an empty snapshot.
var ErrNothingToExport = errors.New("export: nothing to export")

// Options controls page layout. Lengths are in millimetres.
type Options struct {
	Margin float64
	// Spacing is the outline sampling step in world units.
	Spacing float64
	// ArrowHead is the length of arrow head strokes in world units.
	ArrowHead float64
}

// DefaultOptions returns an A4 layout with a 10mm margin.
func DefaultOptions() Options {
	return Options{Margin: 10, Spacing: 2, ArrowHead: 12}
}

// page maps world coordinates onto the printable area.
type page struct {
	origin geom.Point // world
	offset geom.Point // mm
	scale  float64    // mm per world unit
}

func (p page) at(w geom.Point) (float64, float64) {
	q := w.Sub(p.origin).Mul(p.scale).Add(p.offset)
	return q.X, q.Y
}

// fitPage centres b on a page of size pw x ph and scales it to fill the
// printable area.
func fitPage(b state.Bounds, pw, ph, margin float64) page {
	aw, ah := pw-2*margin, ph-2*margin
	scale := 1.0
	switch {
	case b.Width() > 0 && b.Height() > 0:
		scale = math.Min(aw/b.Width(), ah/b.Height())
	case b.Width() > 0:
		scale = aw / b.Width()
	case b.Height() > 0:
		scale = ah / b.Height()
	}
	return page{
		origin: b.Min(),
		offset: geom.Pt(margin+(aw-b.Width()*scale)/2, margin+(ah-b.Height()*scale)/2),
		scale:  scale,
	}
}

// Write renders shapes in z-order to w.
func Write(w io.Writer, shapes []state.Shape, opts Options) error {
	b, ok := state.CommonBounds(shapes)
	if !ok {
		return ErrNothingToExport
	}
	orientation := "P"
	if b.Width() > b.Height() {
		orientation = "L"
	}
	pdf := gofpdf.New(orientation, "mm", "A4", "")
	pdf.SetCreator("localboard", true)
	pdf.AddPage()
	pdf.SetLineCapStyle("round")
	pdf.SetLineJoinStyle("round")

	pw, ph := pdf.GetPageSize()
	pg := fitPage(b, pw, ph, opts.Margin)
	for _, s := range shapes {
		drawShape(pdf, pg, s, opts)
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

// WriteFile renders shapes to a PDF file at path.
func WriteFile(path string, shapes []state.Shape, opts Options) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Write(f, shapes, opts); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	applog.Logger().Info("pdf exported", "path", path, "shapes", len(shapes))
	return nil
}

func drawShape(pdf *gofpdf.Fpdf, pg page, s state.Shape, opts Options) {
	c := s.Attrs()
	stroke, hasStroke := state.ParseColor(c.StrokeColor)
	fill, hasFill := state.ParseColor(c.FillColor)
	pdf.SetLineWidth(math.Max(c.StrokeWidth*pg.scale, 0.1))
	if hasStroke {
		pdf.SetDrawColor(int(stroke.R), int(stroke.G), int(stroke.B))
	}
	if hasFill {
		pdf.SetFillColor(int(fill.R), int(fill.G), int(fill.B))
	}

	switch v := s.(type) {
	case state.Rectangle, state.Circle, state.Triangle:
		style := paintStyle(hasStroke, hasFill)
		if style == "" {
			return
		}
		pdf.Polygon(pdfPoints(pg, state.ToPoints(v, opts.Spacing)), style)
	case state.Arrow:
		if !hasStroke {
			return
		}
		polyline(pdf, pg, state.ToPoints(v, opts.Spacing))
		if l, r, ok := state.ArrowHead(v, opts.ArrowHead); ok {
			polyline(pdf, pg, []geom.Point{l, v.End(), r})
		}
	case state.Pencil:
		if hasStroke {
			polyline(pdf, pg, v.Points)
		}
	case state.Image:
		drawImage(pdf, pg, v, opts)
	default:
		panic(fmt.Sprintf("export: unhandled shape %T", s))
	}
}

func paintStyle(stroke, fill bool) string {
	switch {
	case stroke && fill:
		return "DF"
	case fill:
		return "F"
	case stroke:
		return "D"
	}
	return ""
}

func pdfPoints(pg page, pts []geom.Point) []gofpdf.PointType {
	out := make([]gofpdf.PointType, len(pts))
	for i, p := range pts {
		out[i].X, out[i].Y = pg.at(p)
	}
	return out
}

func polyline(pdf *gofpdf.Fpdf, pg page, pts []geom.Point) {
	for i := 1; i < len(pts); i++ {
		x1, y1 := pg.at(pts[i-1])
		x2, y2 := pg.at(pts[i])
		pdf.Line(x1, y1, x2, y2)
	}
}

// drawImage places the image file named by Src. Sources gofpdf cannot read
// are drawn as their frame.
func drawImage(pdf *gofpdf.Fpdf, pg page, img state.Image, opts Options) {
	x, y := pg.at(geom.Pt(img.X, img.Y))
	w, h := img.Width*pg.scale, img.Height*pg.scale
	if img.Src != "" {
		pdf.ImageOptions(img.Src, x, y, w, h, false, gofpdf.ImageOptions{ReadDpi: false}, 0, "")
		if pdf.Ok() {
			return
		}
		applog.Logger().Warn("pdf image skipped", "src", img.Src, "err", pdf.Error())
		pdf.ClearError()
	}
	pdf.SetDrawColor(128, 128, 128)
	pdf.SetLineWidth(0.2)
	pdf.Polygon(pdfPoints(pg, state.ToPoints(img, opts.Spacing)), "D")
}
