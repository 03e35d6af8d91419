package engine

import (
	"strconv"

	"lifegrid/internal/core"
)

const paramInterval = "interval"

// ParameterControls lists the values a HUD may adjust.
func (e *Engine) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{{
		Key:    paramInterval,
		Label:  "Update interval (s)",
		Type:   core.ParamTypeFloat,
		Step:   0.1,
		Min:    core.MinInterval,
		Max:    core.MaxInterval,
		HasMin: true,
		HasMax: true,
	}}
}

// Parameters snapshots the engine state for display.
func (e *Engine) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Schedule",
			Params: []core.Parameter{
				{Key: paramInterval, Label: "Update interval (s)", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(e.Interval(), 'f', -1, 64)},
			},
		},
		{
			Name: "Grid",
			Params: []core.Parameter{
				{Key: "size", Label: "Size", Type: core.ParamTypeInt, Value: strconv.Itoa(e.N())},
				{Key: "generation", Label: "Generation", Type: core.ParamTypeInt, Value: strconv.FormatUint(e.generation, 10)},
				{Key: "population", Label: "Population", Type: core.ParamTypeInt, Value: strconv.Itoa(e.population)},
			},
		},
	}}
}

// SetFloatParameter applies a HUD adjustment.
func (e *Engine) SetFloatParameter(key string, value float64) bool {
	switch key {
	case paramInterval:
		e.SetInterval(value)
		return true
	default:
		return false
	}
}

var (
	_ core.ParameterProvider         = (*Engine)(nil)
	_ core.ParameterControlsProvider = (*Engine)(nil)
	_ core.FloatParameterSetter      = (*Engine)(nil)
)
