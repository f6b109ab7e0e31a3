package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"lifelike/internal/sims/life"
)

func smallConfig() life.Config {
	cfg := life.DefaultConfig()
	cfg.Width, cfg.Height = 24, 24
	return cfg
}

func TestSweepIsDeterministic(t *testing.T) {
	scenarios := buildScenarios(life.Presets[:3], 2, 5)
	if len(scenarios) != 6 {
		t.Fatalf("built %d scenarios, expected 6", len(scenarios))
	}
	a, err := sweep(context.Background(), smallConfig(), scenarios, 40, 3)
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	b, err := sweep(context.Background(), smallConfig(), scenarios, 40, 1)
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	for i := range a {
		if a[i].scenario != b[i].scenario || a[i].final != b[i].final {
			t.Fatalf("result %d differs: %v/%d vs %v/%d", i, a[i].scenario, a[i].final, b[i].scenario, b[i].final)
		}
		if i > 0 && a[i].final > a[i-1].final {
			t.Fatalf("results not sorted by final population")
		}
	}
}

func TestSweepHonoursCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := sweep(ctx, smallConfig(), buildScenarios(life.Presets[:1], 1, 1), 10, 1)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestEmptyRuleDiesInOneStep(t *testing.T) {
	res, err := runScenario(context.Background(), smallConfig(), scenario{preset: life.Preset{Name: "dead", Rule: "B/S"}, seed: 1}, 10)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.final != 0 || res.extinctStep != 1 {
		t.Fatalf("B/S board: final=%d extinct=%d", res.final, res.extinctStep)
	}
}

func TestSelectPresets(t *testing.T) {
	all, err := selectPresets("")
	if err != nil || len(all) != len(life.Presets) {
		t.Fatalf("empty selection = %d presets, %v", len(all), err)
	}
	picked, err := selectPresets("highlife, B2/S")
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if len(picked) != 2 || picked[0].Name != "highlife" || picked[1].Rule != "B2/S" {
		t.Fatalf("picked %+v", picked)
	}
	if _, err := selectPresets("nope"); err == nil {
		t.Fatalf("expected error for unknown preset")
	}
}

func TestSaveBest(t *testing.T) {
	res, err := runScenario(context.Background(), smallConfig(), scenario{preset: life.Presets[0], seed: 3}, 5)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	path := filepath.Join(t.TempDir(), "best.txt")
	if err := res.board.SaveTo(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	if info, err := os.Stat(path); err != nil || info.Size() == 0 {
		t.Fatalf("save file missing or empty: %v", err)
	}
}
