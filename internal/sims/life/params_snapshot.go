package life

import (
	"strconv"
	"time"

	"lifelike/internal/core"
)

// Parameters reports the board's counters and tunables to the HUD.
func (l *Life) Parameters() core.ParameterSnapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	state := "paused"
	if l.running {
		state = "running"
	}
	groups := []core.ParameterGroup{
		{
			Name: "Board",
			Params: []core.Parameter{
				intParam("w", "Width", l.grid.W),
				intParam("h", "Height", l.grid.H),
				intParam("generation", "Generation", l.generation),
				intParam("population", "Population", l.grid.Population()),
				textParam("state", "State", state),
			},
		},
		{
			Name: "Rules",
			Params: []core.Parameter{
				textParam("rule", "Rule", l.rules.String()),
				textParam("birth", "Birth", "B"+l.rules.Birth.Digits()),
				textParam("survival", "Survival", "S"+l.rules.Survival.Digits()),
			},
		},
		{
			Name: "Simulation",
			Params: []core.Parameter{
				intParam("delay_ms", "Delay (ms)", int(l.delay.Milliseconds())),
				floatParam("density", "Random density", l.density),
				boolParam("wrap", "Wrap edges", l.boundary == core.Wrap),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the values the HUD may adjust.
func (l *Life) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{
			Key:    "delay_ms",
			Label:  "Delay (ms)",
			Type:   core.ParamTypeInt,
			Step:   5,
			Min:    float64(core.MinDelay.Milliseconds()),
			Max:    float64(core.MaxDelay.Milliseconds()),
			HasMin: true,
			HasMax: true,
		},
		{
			Key:    "density",
			Label:  "Random density",
			Type:   core.ParamTypeFloat,
			Step:   0.05,
			Min:    0,
			Max:    1,
			HasMin: true,
			HasMax: true,
		},
		{
			Key:   "wrap",
			Label: "Wrap edges",
			Type:  core.ParamTypeBool,
		},
	}
}

// SetIntParameter updates integer tunables.
func (l *Life) SetIntParameter(key string, value int) bool {
	switch key {
	case "delay_ms":
		l.SetDelay(time.Duration(value) * time.Millisecond)
		return true
	}
	return false
}

// SetFloatParameter updates float tunables.
func (l *Life) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "density":
		l.SetDensity(value)
		return true
	}
	return false
}

// SetBoolParameter updates on/off tunables.
func (l *Life) SetBoolParameter(key string, value bool) bool {
	switch key {
	case "wrap":
		b := core.Clamp
		if value {
			b = core.Wrap
		}
		l.SetBoundary(b)
		return true
	}
	return false
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(value, 'f', -1, 64)}
}

func boolParam(key, label string, value bool) core.Parameter {
	v := "off"
	if value {
		v = "on"
	}
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeBool, Value: v}
}

func textParam(key, label, value string) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeText, Value: value}
}
