package ui

import (
	"image"
	"strconv"

	"toruslife/internal/core"
)

// HUDWidth is the width in pixels of the panel drawn right of the grid.
const HUDWidth = 220

const (
	panelPadding   = 12
	lineHeight     = 36
	infoHeight     = 18
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	infoTop        = panelPadding + headerBaseline + 14
)

var helpLines = []string{
	"Space  run / edit",
	"R      reset",
	"Up/Dn  speed",
	"S      random soup",
	"G      grid lines",
	"Mouse  paint L / erase R",
}

type hudControlState struct {
	control  core.ParameterControl
	value    int
	hasValue bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

func newControlStates(controls []core.ParameterControl) []hudControlState {
	states := make([]hudControlState, len(controls))
	for i, ctrl := range controls {
		states[i] = hudControlState{control: ctrl}
	}
	return states
}

// layoutControls stacks the control rows starting at top, with the -/+
// buttons right-aligned inside a panel of the given width.
func layoutControls(controls []hudControlState, width, top int) {
	if width <= 0 {
		return
	}
	for i := range controls {
		rowTop := top + i*lineHeight
		buttonY := rowTop + (lineHeight-buttonSize)/2
		plusRect := image.Rect(width-panelPadding-buttonSize, buttonY, width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		controls[i].top = rowTop
		controls[i].minusRect = minusRect
		controls[i].plusRect = plusRect
	}
}

// refreshControlValues copies integer values for each control out of snap.
func refreshControlValues(controls []hudControlState, snap core.ParameterSnapshot) {
	for i := range controls {
		state := &controls[i]
		state.hasValue = false
		param, ok := snap.Lookup(state.control.Key)
		if !ok || param.Type != core.ParamTypeInt {
			continue
		}
		parsed, err := strconv.Atoi(param.Value)
		if err != nil {
			continue
		}
		state.value = parsed
		state.hasValue = true
	}
}

// adjustTarget returns the value one step from value in direction, clamped to
// the control's bounds, and whether it differs from value.
func adjustTarget(ctrl core.ParameterControl, value, direction int) (int, bool) {
	if direction == 0 {
		return value, false
	}
	step := ctrl.Step
	if step <= 0 {
		step = 1
	}
	target := value + direction*step
	if target < ctrl.Min {
		target = ctrl.Min
	}
	if ctrl.HasMax && target > ctrl.Max {
		target = ctrl.Max
	}
	return target, target != value
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}
