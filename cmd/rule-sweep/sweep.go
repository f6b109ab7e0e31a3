package main

import (
	"context"
	"fmt"
	"sort"

	"lifelike/internal/sims/life"

	"golang.org/x/sync/errgroup"
)

type scenario struct {
	preset life.Preset
	seed   int64
}

func (s scenario) String() string {
	return fmt.Sprintf("%s %s seed=%d", s.preset.Name, s.preset.Rule, s.seed)
}

type scenarioResult struct {
	scenario    scenario
	final       int
	peak        int
	peakStep    int
	extinctStep int
	board       *life.Life
}

// runScenario plays one board to completion. Each board is single-threaded;
// the sweep gets its parallelism from running many boards at once.
func runScenario(ctx context.Context, base life.Config, sc scenario, steps int) (scenarioResult, error) {
	cfg := base
	cfg.Seed = sc.seed
	if r, err := life.ParseRule(sc.preset.Rule); err == nil {
		cfg.Birth, cfg.Survival = r.Birth.Digits(), r.Survival.Digits()
	}
	board := life.NewNamed(sc.preset.Name, cfg)

	res := scenarioResult{scenario: sc, extinctStep: -1, board: board}
	res.peak = board.Population()
	for step := 0; step < steps; step++ {
		if step%64 == 0 {
			if err := ctx.Err(); err != nil {
				return res, err
			}
		}
		board.Step()
		pop := board.Population()
		if pop > res.peak {
			res.peak = pop
			res.peakStep = step + 1
		}
		if pop == 0 {
			res.extinctStep = step + 1
			break
		}
	}
	res.final = board.Population()
	return res, nil
}

// sweep runs every scenario with at most workers boards in flight and returns
// the results ordered by final population, largest first.
func sweep(ctx context.Context, base life.Config, scenarios []scenario, steps, workers int) ([]scenarioResult, error) {
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	results := make([]scenarioResult, len(scenarios))
	for i, sc := range scenarios {
		g.Go(func() error {
			res, err := runScenario(ctx, base, sc, steps)
			if err != nil {
				return fmt.Errorf("%s: %w", sc, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	sort.SliceStable(results, func(i, j int) bool { return results[i].final > results[j].final })
	return results, nil
}

func buildScenarios(presets []life.Preset, seeds int, firstSeed int64) []scenario {
	var out []scenario
	for _, p := range presets {
		for i := 0; i < seeds; i++ {
			out = append(out, scenario{preset: p, seed: firstSeed + int64(i)})
		}
	}
	return out
}
