package ui

import (
	"image"
	"math"
	"strconv"

	"lifegrid/internal/core"
)

// Action is a HUD command.
type Action int

const (
	ActionNone Action = iota
	ActionPlay
	ActionPause
	ActionClear
	ActionStep
	ActionIntervalDown
	ActionIntervalUp
)

// Controls is the engine surface the HUD drives.
type Controls interface {
	Play()
	Pause()
	Clear()
	Step()
	Playing() bool
	core.ParameterProvider
	core.ParameterControlsProvider
	core.FloatParameterSetter
}

// Button is a clickable HUD rectangle.
type Button struct {
	Action Action
	Label  string
	Rect   image.Rectangle
}

// Bar is the laid-out control strip below the grid.
type Bar struct {
	Buttons  []Button
	StatusAt image.Point
	ValueAt  image.Point
	StatsAt  image.Point
}

const (
	buttonWidth  = 56
	buttonHeight = 24
	smallButton  = 24
	buttonGap    = 6
	rowGap       = 10
	textBaseline = 16
)

// LayoutBar places the controls in a strip whose top-left corner is (x, y).
// The first row holds Play, Pause, Clear and Step plus the status label; the
// second row holds the interval stepper and statistics.
func LayoutBar(x, y int) Bar {
	var b Bar
	cx := x
	for _, def := range []struct {
		action Action
		label  string
	}{
		{ActionPlay, "Play"},
		{ActionPause, "Pause"},
		{ActionClear, "Clear"},
		{ActionStep, "Step"},
	} {
		b.Buttons = append(b.Buttons, Button{
			Action: def.action,
			Label:  def.label,
			Rect:   image.Rect(cx, y, cx+buttonWidth, y+buttonHeight),
		})
		cx += buttonWidth + buttonGap
	}
	b.StatusAt = image.Pt(cx+buttonGap, y+textBaseline)

	row := y + buttonHeight + rowGap
	minus := image.Rect(x, row, x+smallButton, row+buttonHeight)
	plus := image.Rect(minus.Max.X+buttonGap, row, minus.Max.X+buttonGap+smallButton, row+buttonHeight)
	b.Buttons = append(b.Buttons,
		Button{Action: ActionIntervalDown, Label: "-", Rect: minus},
		Button{Action: ActionIntervalUp, Label: "+", Rect: plus},
	)
	b.ValueAt = image.Pt(plus.Max.X+buttonGap*2, row+textBaseline)
	b.StatsAt = image.Pt(b.ValueAt.X+170, row+textBaseline)
	return b
}

// MinWidth returns the horizontal space the bar needs.
func (b Bar) MinWidth() int {
	width := 0
	for _, btn := range b.Buttons {
		if btn.Rect.Max.X > width {
			width = btn.Rect.Max.X
		}
	}
	if b.StatsAt.X+200 > width {
		width = b.StatsAt.X + 200
	}
	if len(b.Buttons) > 0 {
		width -= b.Buttons[0].Rect.Min.X
	}
	return width
}

// Height returns the vertical space the bar needs.
func (b Bar) Height() int {
	return 2*buttonHeight + rowGap
}

// HitTest returns the action of the button under (x, y).
func (b Bar) HitTest(x, y int) Action {
	p := image.Pt(x, y)
	for _, btn := range b.Buttons {
		if p.In(btn.Rect) {
			return btn.Action
		}
	}
	return ActionNone
}

// Enabled reports whether the button for a would do anything right now.
func Enabled(a Action, c Controls) bool {
	switch a {
	case ActionPlay:
		return !c.Playing()
	case ActionPause:
		return c.Playing()
	case ActionIntervalDown:
		return canAdjust(c, intervalKey, -1)
	case ActionIntervalUp:
		return canAdjust(c, intervalKey, 1)
	default:
		return a != ActionNone
	}
}

// Apply performs a on c. It reports whether anything was done.
func Apply(a Action, c Controls) bool {
	switch a {
	case ActionPlay:
		c.Play()
	case ActionPause:
		c.Pause()
	case ActionClear:
		c.Clear()
	case ActionStep:
		c.Step()
	case ActionIntervalDown:
		return adjust(c, intervalKey, -1)
	case ActionIntervalUp:
		return adjust(c, intervalKey, 1)
	default:
		return false
	}
	return true
}

const intervalKey = "interval"

func findControl(c Controls, key string) (core.ParameterControl, bool) {
	for _, ctrl := range c.ParameterControls() {
		if ctrl.Key == key {
			return ctrl, true
		}
	}
	return core.ParameterControl{}, false
}

func currentValue(c Controls, key string) (float64, bool) {
	p, ok := c.Parameters().Lookup(key)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(p.Value, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// target computes the value one step away from the current one, clamped to
// the control's bounds.
func target(c Controls, key string, direction int) (from, to float64, ok bool) {
	ctrl, ok := findControl(c, key)
	if !ok || ctrl.Type != core.ParamTypeFloat {
		return 0, 0, false
	}
	from, ok = currentValue(c, key)
	if !ok {
		return 0, 0, false
	}
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	to = ctrl.Clamp(from + float64(direction)*step)
	to = math.Round(to*1e6) / 1e6
	return from, to, true
}

func canAdjust(c Controls, key string, direction int) bool {
	from, to, ok := target(c, key, direction)
	return ok && math.Abs(to-from) >= 1e-9
}

func adjust(c Controls, key string, direction int) bool {
	from, to, ok := target(c, key, direction)
	if !ok || math.Abs(to-from) < 1e-9 {
		return false
	}
	return c.SetFloatParameter(key, to)
}

// FormatInterval renders the current interval for the HUD.
func FormatInterval(c Controls) string {
	v, ok := currentValue(c, intervalKey)
	if !ok {
		return "Interval: --"
	}
	return "Interval: " + strconv.FormatFloat(v, 'f', 1, 64) + " s"
}
