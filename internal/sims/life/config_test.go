package life

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFromMapOverrides(t *testing.T) {
	cfg := FromMap(map[string]string{
		"w":        "30",
		"h":        "-4",
		"density":  "0.5",
		"delay":    "120",
		"boundary": "clamp",
		"rule":     "B36/S23",
		"save":     "board.txt",
	})
	if cfg.Width != 30 {
		t.Fatalf("width = %d", cfg.Width)
	}
	if cfg.Height != DefaultConfig().Height {
		t.Fatalf("negative height should be ignored, got %d", cfg.Height)
	}
	if cfg.Density != 0.5 || cfg.DelayMS != 120 {
		t.Fatalf("density/delay = %v/%d", cfg.Density, cfg.DelayMS)
	}
	if cfg.Boundary != "clamp" {
		t.Fatalf("boundary = %s", cfg.Boundary)
	}
	if cfg.Rules().String() != "B36/S23" {
		t.Fatalf("rules = %s", cfg.Rules())
	}
	if cfg.SavePath != "board.txt" {
		t.Fatalf("save path = %s", cfg.SavePath)
	}
}

func TestFromMapBirthSurvivalFilter(t *testing.T) {
	cfg := FromMap(map[string]string{"birth": "3a9", "survival": "S2,3"})
	if cfg.Birth != "3" || cfg.Survival != "23" {
		t.Fatalf("birth/survival = %q/%q", cfg.Birth, cfg.Survival)
	}
}

func TestLoadConfigJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "life.json")
	data := `{"width": 64, "birth": "36", "boundary": "clamp"}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Width != 64 || cfg.Height != DefaultConfig().Height {
		t.Fatalf("size = %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Rules().String() != "B36/S23" || cfg.Boundary != "clamp" {
		t.Fatalf("rules/boundary = %s/%s", cfg.Rules(), cfg.Boundary)
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "none.json")); err == nil {
		t.Fatalf("expected error for missing config")
	}
}
