package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") = %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load(\"\") = %+v, want defaults", cfg)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.yaml")
	data := "zoom_max: 4\nhistory_cap: 20\nlaser_fade: 1500ms\nstroke_color: \"#ff0000\"\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load = %v", err)
	}
	if cfg.ZoomMax != 4 || cfg.HistoryCap != 20 || cfg.StrokeColor != "#ff0000" {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.LaserFade != 1500*time.Millisecond {
		t.Errorf("LaserFade = %v, want 1.5s", cfg.LaserFade)
	}
	if cfg.ZoomMin != Default().ZoomMin || cfg.EraserSpacing != Default().EraserSpacing {
		t.Errorf("unset fields lost their defaults: %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"bad yaml", "zoom_min: [", "parse config"},
		{"inverted zoom", "zoom_min: 5\nzoom_max: 2\n", "exceeds zoom_max"},
		{"zero cap", "history_cap: 0\n", "history_cap"},
		{"zero spacing", "eraser_spacing: 0\n", "eraser_spacing"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(tt.name, " ", "_")+".yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Load error = %v, want containing %q", err, tt.want)
			}
		})
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load of a missing file succeeded")
	}
}

func TestLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.toml")
	data := "zoom_max = 4.0\nhistory_cap = 20\nlaser_fade = \"250ms\"\nstroke_color = \"#00ff00\"\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load = %v", err)
	}
	if cfg.ZoomMax != 4 || cfg.HistoryCap != 20 || cfg.StrokeColor != "#00ff00" {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.LaserFade != 250*time.Millisecond {
		t.Errorf("LaserFade = %v, want 250ms", cfg.LaserFade)
	}
	if cfg.ZoomMin != Default().ZoomMin {
		t.Errorf("ZoomMin = %v, want default", cfg.ZoomMin)
	}

	bad := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(bad, []byte("zoom_max = ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Errorf("Load error = %v, want parse error", err)
	}
}
