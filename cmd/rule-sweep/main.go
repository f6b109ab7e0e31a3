package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"time"

	"lifelike/internal/sims/life"
)

func main() {
	steps := flag.Int("steps", 500, "generations to simulate per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of boards run in parallel")
	seeds := flag.Int("seeds", 4, "random soups per rule")
	firstSeed := flag.Int64("seed", 1, "first seed")
	width := flag.Int("w", 96, "board width")
	height := flag.Int("h", 96, "board height")
	density := flag.Float64("density", 0.3, "live fraction of each soup")
	boundary := flag.String("boundary", "wrap", "edge policy: wrap or clamp")
	rules := flag.String("rules", "", "comma-separated preset names; empty runs all")
	saveBest := flag.String("save-best", "", "write the most populated final board to this file")
	flag.Parse()

	presets, err := selectPresets(*rules)
	if err != nil {
		log.Fatal(err)
	}

	base := life.DefaultConfig()
	base.Width = *width
	base.Height = *height
	base.Density = *density
	base.Boundary = *boundary

	scenarios := buildScenarios(presets, *seeds, *firstSeed)
	fmt.Printf("Sweeping %d scenarios (%d workers, %d steps, %dx%d)\n", len(scenarios), *workers, *steps, *width, *height)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	results, err := sweep(ctx, base, scenarios, *steps, *workers)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("\nResults (elapsed %s):\n", time.Since(start).Round(time.Millisecond))
	for i, res := range results {
		extinct := "-"
		if res.extinctStep >= 0 {
			extinct = fmt.Sprint(res.extinctStep)
		}
		fmt.Printf("%2d) final=%d peak=%d@%d extinct=%s %s\n", i+1, res.final, res.peak, res.peakStep, extinct, res.scenario)
	}

	if *saveBest != "" && len(results) > 0 {
		best := results[0]
		if err := best.board.SaveTo(*saveBest); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("\nSaved %s to %s\n", best.scenario, *saveBest)
	}
}

func selectPresets(names string) ([]life.Preset, error) {
	if strings.TrimSpace(names) == "" {
		return life.Presets, nil
	}
	byName := make(map[string]life.Preset, len(life.Presets))
	for _, p := range life.Presets {
		byName[p.Name] = p
	}
	var out []life.Preset
	for _, name := range strings.Split(names, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if p, ok := byName[name]; ok {
			out = append(out, p)
			continue
		}
		rule, err := life.ParseRule(name)
		if err != nil {
			return nil, fmt.Errorf("unknown rule preset %q", name)
		}
		out = append(out, life.Preset{Name: "custom", Rule: rule.String()})
	}
	return out, nil
}
