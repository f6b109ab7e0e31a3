package app

import (
	"flag"
	"fmt"

	"lifelike/internal/core"
	"lifelike/internal/sims/life"
)

// Config represents the command-line parameters shared by the hosts.
type Config struct {
	Sim        string
	ConfigPath string
	PresetDir  string
	TPS        int
	HUDWidth   int

	Width    int
	Height   int
	Cell     int
	Seed     int64
	Density  float64
	Delay    int
	Boundary string
	Rule     string
	Save     string
	Load     string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	d := life.DefaultConfig()
	return &Config{
		Sim:       "life",
		PresetDir: "saves",
		TPS:       60,
		HUDWidth:  220,
		Width:     d.Width,
		Height:    d.Height,
		Cell:      d.CellSize,
		Seed:      d.Seed,
		Density:   d.Density,
		Delay:     d.DelayMS,
		Boundary:  d.Boundary,
		Rule:      "B" + d.Birth + "/S" + d.Survival,
		Save:      d.SavePath,
	}
}

// boardFlags are the flags forwarded to the sim factory; their names match
// the keys life.Config.Apply understands.
var boardFlags = map[string]bool{
	"w": true, "h": true, "cell": true, "seed": true, "density": true,
	"delay": true, "boundary": true, "rule": true, "save": true, "load": true,
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, fmt.Sprintf("rule preset to run %v", core.SimNames()))
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "JSON board config; flags override it")
	fs.StringVar(&c.PresetDir, "presets", c.PresetDir, "directory holding the bundled save files")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "width of the control panel in pixels, 0 hides it")

	fs.IntVar(&c.Width, "w", c.Width, "board width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "board height in cells")
	fs.IntVar(&c.Cell, "cell", c.Cell, "cell size in pixels")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random soup")
	fs.Float64Var(&c.Density, "density", c.Density, "live fraction of the random soup")
	fs.IntVar(&c.Delay, "delay", c.Delay, "milliseconds between generations (10-200)")
	fs.StringVar(&c.Boundary, "boundary", c.Boundary, "edge policy: wrap or clamp")
	fs.StringVar(&c.Rule, "rule", c.Rule, "rule in B/S notation, overrides the preset")
	fs.StringVar(&c.Save, "save", c.Save, "file written by the save command")
	fs.StringVar(&c.Load, "load", c.Load, "save file to start from instead of a random soup")
}

// Overrides returns the board flags that were set explicitly on fs.
func (c *Config) Overrides(fs *flag.FlagSet) map[string]string {
	out := map[string]string{}
	fs.Visit(func(f *flag.Flag) {
		if boardFlags[f.Name] {
			out[f.Name] = f.Value.String()
		}
	})
	return out
}

// NewBoard builds the board described by the parsed flags. A JSON config
// replaces the preset defaults; explicit flags win over both.
func (c *Config) NewBoard(fs *flag.FlagSet) (*life.Life, error) {
	overrides := c.Overrides(fs)
	if rule, ok := overrides["rule"]; ok {
		if _, err := life.ParseRule(rule); err != nil {
			return nil, err
		}
	}
	if c.ConfigPath != "" {
		base, err := life.LoadConfig(c.ConfigPath)
		if err != nil {
			return nil, err
		}
		return life.NewNamed(c.Sim, base.Apply(overrides)), nil
	}
	factory, ok := core.Sims()[c.Sim]
	if !ok {
		return nil, fmt.Errorf("unknown sim %q", c.Sim)
	}
	board, ok := factory(overrides).(*life.Life)
	if !ok {
		return nil, fmt.Errorf("sim %q is not a lifelike board", c.Sim)
	}
	return board, nil
}
