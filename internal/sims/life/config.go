package life

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"lifelike/internal/core"
	"lifelike/internal/savefile"
)

// Config holds the session settings of a Life board.
type Config struct {
	Width    int   `json:"width"`
	Height   int   `json:"height"`
	CellSize int   `json:"cell_size"`
	Seed     int64 `json:"seed"`

	// Density is the live fraction used by randomize.
	Density float64 `json:"density"`
	// DelayMS is the tick interval the host should use, in milliseconds.
	DelayMS int `json:"delay_ms"`

	Boundary string `json:"boundary"`
	Birth    string `json:"birth"`
	Survival string `json:"survival"`

	SavePath string `json:"save_path"`
	// InitialLoad names a save file to load on the first tick. When empty the
	// board starts from a random soup.
	InitialLoad string `json:"initial_load"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:    160,
		Height:   100,
		CellSize: 6,
		Seed:     42,
		Density:  core.DefaultDensity,
		DelayMS:  int(core.DefaultDelay.Milliseconds()),
		Boundary: core.Wrap.String(),
		Birth:    "3",
		Survival: "23",
		SavePath: savefile.DefaultSaveFile,
	}
}

// FromMap populates a Config from flag-style key/value pairs over the defaults.
func FromMap(cfg map[string]string) Config {
	return DefaultConfig().Apply(cfg)
}

// Apply overrides c with any recognised keys in cfg. Invalid values are ignored.
func (c Config) Apply(cfg map[string]string) Config {
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["cell"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.CellSize = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["delay"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.DelayMS = parsed
		}
	}
	if v, ok := cfg["boundary"]; ok {
		if b, err := core.ParseBoundary(v); err == nil {
			c.Boundary = b.String()
		}
	}
	if v, ok := cfg["rule"]; ok {
		if r, err := ParseRule(v); err == nil {
			c.Birth, c.Survival = r.Birth.Digits(), r.Survival.Digits()
		}
	}
	if v, ok := cfg["birth"]; ok {
		c.Birth = ParseDigits(v).Digits()
	}
	if v, ok := cfg["survival"]; ok {
		c.Survival = ParseDigits(v).Digits()
	}
	if v, ok := cfg["save"]; ok && strings.TrimSpace(v) != "" {
		c.SavePath = v
	}
	if v, ok := cfg["load"]; ok {
		c.InitialLoad = v
	}
	return c
}

// LoadConfig reads a JSON config file on top of the defaults.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parse config %s: %w", path, err)
	}
	return c, nil
}

// Rules returns the rule set described by the config.
func (c Config) Rules() RuleSet {
	return NewRuleSet(c.Birth, c.Survival)
}
