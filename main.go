package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"localboard/internal/applog"
	"localboard/internal/config"
	"localboard/internal/export"
	"localboard/internal/geom"
	"localboard/internal/importer"
	"localboard/internal/state"
	"localboard/internal/ui"
)

// imageList collects repeated -image flags.
type imageList []string

func (l *imageList) String() string     { return fmt.Sprint(*l) }
func (l *imageList) Set(v string) error { *l = append(*l, v); return nil }

func main() {
	var (
		configPath = flag.String("config", "", "YAML settings file")
		debug      = flag.Bool("debug", false, "log gesture and history events")
		exportPath = flag.String("export", "", "write the board to this PDF and exit without opening a window")
		images     imageList
	)
	flag.Var(&images, "image", "image file to place on the board (repeatable)")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	applog.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	log := applog.Logger()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("loading config", "err", err)
		os.Exit(1)
	}

	initial, err := loadImages(images, cfg)
	if err != nil {
		log.Error("loading images", "err", err)
		os.Exit(1)
	}

	if *exportPath != "" {
		if err := export.WriteFile(*exportPath, initial, export.DefaultOptions()); err != nil {
			log.Error("export", "err", err)
			os.Exit(1)
		}
		return
	}

	log.Info("starting board", "config", *configPath)
	ui.RunApp(cfg, initial)
}

// loadImages lays the images out left to right, each fitted into the
// configured footprint.
func loadImages(paths []string, cfg config.Config) ([]state.Shape, error) {
	var shapes []state.Shape
	x := 0.0
	for _, p := range paths {
		img, err := importer.FromFile(p, importer.Placement{View: geom.IdentityView, MaxSize: cfg.ImageMaxSize})
		if err != nil {
			return nil, err
		}
		img.X, img.Y = x, 0
		x += img.Width + 20
		shapes = append(shapes, img)
	}
	return shapes, nil
}
