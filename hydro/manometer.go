package hydro

import "fluidlab/model"

// EvaluateManometer computes the gauge pressure at the pipe centre of an
// open U-tube manometer from the hydrostatic balance
//
//	ΔP = ρ_m·g·h − ρ_o·g·b
//
// where h is the manometer-fluid column above the datum and b the working
// fluid column between datum and pipe centre.
func EvaluateManometer(p model.ManometerParams) model.ManometerResult {
	dp := p.ManometerDensity*p.Gravity*p.ColumnHeight - p.FluidDensity*p.Gravity*p.DatumOffset
	return model.ManometerResult{PressureDiff: dp}
}
