package life

import "lifelike/internal/core"

// Preset is a named rule set registered as its own sim.
type Preset struct {
	Name string
	Rule string
}

// Presets lists the rule families offered by name.
var Presets = []Preset{
	{Name: "life", Rule: "B3/S23"},
	{Name: "highlife", Rule: "B36/S23"},
	{Name: "seeds", Rule: "B2/S"},
	{Name: "daynight", Rule: "B3678/S34678"},
	{Name: "maze", Rule: "B3/S12345"},
	{Name: "replicator", Rule: "B1357/S1357"},
	{Name: "lifewithoutdeath", Rule: "B3/S012345678"},
}

// PresetConfig returns the default config with the preset's rules applied.
func PresetConfig(p Preset) Config {
	c := DefaultConfig()
	if r, err := ParseRule(p.Rule); err == nil {
		c.Birth, c.Survival = r.Birth.Digits(), r.Survival.Digits()
	}
	return c
}

func init() {
	for _, p := range Presets {
		core.Register(p.Name, func(cfg map[string]string) core.Sim {
			return NewNamed(p.Name, PresetConfig(p).Apply(cfg))
		})
	}
}
