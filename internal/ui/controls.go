package ui

import (
	"math"
	"strconv"

	"lifelike/internal/core"
)

// control is one adjustable panel row plus the value last read from the board.
// Numeric and bool values share num; a bool is 1 when on.
type control struct {
	core.ParameterControl
	text  string
	num   float64
	known bool
}

func newControls(sim any) []control {
	provider, ok := sim.(core.ParameterControlsProvider)
	if !ok {
		return nil
	}
	defs := provider.ParameterControls()
	out := make([]control, len(defs))
	for i, def := range defs {
		out[i] = control{ParameterControl: def, text: "--"}
	}
	return out
}

// read refreshes c from the snapshot. A missing or unparsable value leaves the
// row disabled.
func (c *control) read(snap core.ParameterSnapshot) {
	c.known = false
	c.text = "--"
	p, ok := snap.Lookup(c.Key)
	if !ok {
		return
	}
	var v float64
	switch c.Type {
	case core.ParamTypeInt:
		n, err := strconv.Atoi(p.Value)
		if err != nil {
			return
		}
		v = float64(n)
	case core.ParamTypeFloat:
		f, err := strconv.ParseFloat(p.Value, 64)
		if err != nil {
			return
		}
		v = f
	case core.ParamTypeBool:
		if p.Value == "on" {
			v = 1
		}
	default:
		return
	}
	c.set(v)
	c.known = true
}

func (c *control) set(v float64) {
	c.num = v
	switch c.Type {
	case core.ParamTypeInt:
		c.text = strconv.Itoa(int(v))
	case core.ParamTypeFloat:
		precision := 1
		if c.step() < 0.1 {
			precision = 2
		}
		c.text = strconv.FormatFloat(v, 'f', precision, 64)
	case core.ParamTypeBool:
		c.text = "off"
		if v > 0 {
			c.text = "on"
		}
	}
}

func (c *control) step() float64 {
	switch {
	case c.Step > 0 && c.Type == core.ParamTypeInt:
		return math.Max(math.Round(c.Step), 1)
	case c.Step > 0:
		return c.Step
	case c.Type == core.ParamTypeInt:
		return 1
	default:
		return 0.05
	}
}

// next returns the value one step in dir, clamped to the control's bounds.
// ok is false when the step would change nothing.
func (c *control) next(dir int) (float64, bool) {
	if !c.known || dir == 0 {
		return c.num, false
	}
	if c.Type == core.ParamTypeBool {
		target := 0.0
		if dir > 0 {
			target = 1
		}
		return target, target != c.num
	}
	target := c.num + float64(dir)*c.step()
	if c.HasMin {
		target = math.Max(target, c.Min)
	}
	if c.HasMax {
		target = math.Min(target, c.Max)
	}
	if c.Type == core.ParamTypeInt {
		target = math.Round(target)
	}
	return target, math.Abs(target-c.num) >= 1e-9
}

// canAdjust reports whether a press in dir would reach a setter and change
// the value.
func canAdjust(sim any, c *control, dir int) bool {
	if _, ok := c.next(dir); !ok {
		return false
	}
	switch c.Type {
	case core.ParamTypeInt:
		_, ok := sim.(core.IntParameterSetter)
		return ok
	case core.ParamTypeFloat:
		_, ok := sim.(core.FloatParameterSetter)
		return ok
	case core.ParamTypeBool:
		_, ok := sim.(core.BoolParameterSetter)
		return ok
	}
	return false
}

// adjust steps c in dir through the board's setter and reports whether the
// board accepted the new value.
func adjust(sim any, c *control, dir int) bool {
	if !canAdjust(sim, c, dir) {
		return false
	}
	target, _ := c.next(dir)
	var accepted bool
	switch c.Type {
	case core.ParamTypeInt:
		accepted = sim.(core.IntParameterSetter).SetIntParameter(c.Key, int(target))
	case core.ParamTypeFloat:
		accepted = sim.(core.FloatParameterSetter).SetFloatParameter(c.Key, target)
	case core.ParamTypeBool:
		accepted = sim.(core.BoolParameterSetter).SetBoolParameter(c.Key, target > 0)
	}
	if accepted {
		c.set(target)
	}
	return accepted
}

// readouts returns the snapshot groups minus every value that has a control.
// Groups left empty are dropped.
func readouts(snap core.ParameterSnapshot, controls []control) []core.ParameterGroup {
	controlled := make(map[string]bool, len(controls))
	for _, c := range controls {
		controlled[c.Key] = true
	}
	var out []core.ParameterGroup
	for _, group := range snap.Groups {
		var params []core.Parameter
		for _, p := range group.Params {
			if !controlled[p.Key] {
				params = append(params, p)
			}
		}
		if len(params) > 0 {
			out = append(out, core.ParameterGroup{Name: group.Name, Params: params})
		}
	}
	return out
}
