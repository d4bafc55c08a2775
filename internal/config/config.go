// Package config loads board settings from an optional YAML or TOML file
// layered over built-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config holds the tunables of the board.
type Config struct {
	ZoomMin  float64 `yaml:"zoom_min" toml:"zoom_min"`
	ZoomMax  float64 `yaml:"zoom_max" toml:"zoom_max"`
	ZoomStep float64 `yaml:"zoom_step" toml:"zoom_step"`

	HistoryCap int `yaml:"history_cap" toml:"history_cap"`

	// HitTolerance and EraserRadius are in screen pixels.
	HitTolerance float64 `yaml:"hit_tolerance" toml:"hit_tolerance"`
	EraserRadius float64 `yaml:"eraser_radius" toml:"eraser_radius"`
	// EraserSpacing is the outline sampling step in world units at zoom 1.
	EraserSpacing float64 `yaml:"eraser_spacing" toml:"eraser_spacing"`

	LaserFade      time.Duration `yaml:"laser_fade" toml:"laser_fade"`
	LaserMaxPoints int           `yaml:"laser_max_points" toml:"laser_max_points"`

	ImageMaxSize float64 `yaml:"image_max_size" toml:"image_max_size"`

	StrokeColor string  `yaml:"stroke_color" toml:"stroke_color"`
	StrokeWidth float64 `yaml:"stroke_width" toml:"stroke_width"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		ZoomMin:        0.1,
		ZoomMax:        10,
		ZoomStep:       1.1,
		HistoryCap:     50,
		HitTolerance:   10,
		EraserRadius:   10,
		EraserSpacing:  5,
		LaserFade:      time.Second,
		LaserMaxPoints: 256,
		ImageMaxSize:   400,
		StrokeColor:    "#000000",
		StrokeWidth:    2,
	}
}

// Load reads the file at path over the defaults. Files ending in .toml are
// parsed as TOML, anything else as YAML. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = toml.Unmarshal(data, &cfg)
	} else {
		err = yaml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports settings the board cannot work with.
func (c Config) Validate() error {
	var errs []error
	if c.ZoomMin <= 0 || c.ZoomMax <= 0 {
		errs = append(errs, errors.New("zoom limits must be positive"))
	}
	if c.ZoomMin > c.ZoomMax {
		errs = append(errs, fmt.Errorf("zoom_min %v exceeds zoom_max %v", c.ZoomMin, c.ZoomMax))
	}
	if c.ZoomStep <= 1 {
		errs = append(errs, fmt.Errorf("zoom_step %v must be greater than 1", c.ZoomStep))
	}
	if c.HistoryCap < 1 {
		errs = append(errs, fmt.Errorf("history_cap %d must be at least 1", c.HistoryCap))
	}
	if c.HitTolerance < 0 || c.EraserRadius <= 0 {
		errs = append(errs, errors.New("hit_tolerance and eraser_radius must be positive"))
	}
	if c.EraserSpacing <= 0 {
		errs = append(errs, fmt.Errorf("eraser_spacing %v must be positive", c.EraserSpacing))
	}
	if c.LaserFade <= 0 || c.LaserMaxPoints < 1 {
		errs = append(errs, errors.New("laser_fade and laser_max_points must be positive"))
	}
	if c.ImageMaxSize <= 0 {
		errs = append(errs, fmt.Errorf("image_max_size %v must be positive", c.ImageMaxSize))
	}
	if c.StrokeWidth <= 0 {
		errs = append(errs, fmt.Errorf("stroke_width %v must be positive", c.StrokeWidth))
	}
	return errors.Join(errs...)
}
