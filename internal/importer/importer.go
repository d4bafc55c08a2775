// Package importer turns image files into Image shapes placed on the visible
// part of the board.
package importer

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"math"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"localboard/internal/applog"
	"localboard/internal/geom"
	"localboard/internal/state"
)

// ErrEmptyImage is returned for images without pixels.
var ErrEmptyImage = errors.New("importer: image has no pixels")

// Placement describes where an imported image lands.
type Placement struct {
	View     geom.ViewState
	Viewport geom.Point // screen size
	MaxSize  float64    // largest side in world units
}

// Dimensions decodes only the header of r and returns the intrinsic pixel size
// and the format name.
func Dimensions(r io.Reader) (w, h int, format string, err error) {
	cfg, format, err := image.DecodeConfig(r)
	if err != nil {
		return 0, 0, "", fmt.Errorf("decode image: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return 0, 0, format, ErrEmptyImage
	}
	return cfg.Width, cfg.Height, format, nil
}

// Fit scales w x h down so neither side exceeds max. Images that already fit
// keep their size.
func Fit(w, h, max float64) (float64, float64) {
	if max <= 0 || (w <= max && h <= max) {
		return w, h
	}
	k := math.Min(max/w, max/h)
	return w * k, h * k
}

// FromReader builds an Image shape for the image in r, centered on the
// viewport. src is stored on the shape so the renderer can load the pixels.
func FromReader(r io.Reader, src string, p Placement) (state.Image, error) {
	w, h, format, err := Dimensions(r)
	if err != nil {
		return state.Image{}, err
	}
	fw, fh := Fit(float64(w), float64(h), p.MaxSize)
	c := geom.ScreenToWorld(p.Viewport.Mul(0.5), p.View)
	img := state.Image{
		Common: state.Common{ID: state.NewID()},
		X:      c.X - fw/2,
		Y:      c.Y - fh/2,
		Width:  fw,
		Height: fh,
		Src:    src,
	}
	applog.Logger().Info("image imported", "src", src, "format", format, "width", w, "height", h)
	return img, nil
}

// FromFile opens path and calls FromReader with the path as source.
func FromFile(path string, p Placement) (state.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return state.Image{}, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()
	img, err := FromReader(f, path, p)
	if err != nil {
		return state.Image{}, fmt.Errorf("import %s: %w", path, err)
	}
	return img, nil
}
