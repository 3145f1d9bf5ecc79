package hydro

import (
	"math"

	"fluidlab/model"
)

// EvaluateCapillary computes the rise height inside a narrow tube from
// Jurin's law:
//
//	h = 4σ·cos(θ) / (ρ·g·d)
//
// Negative heights mean capillary depression (non-wetting fluid). A zero
// denominator degrades to a zero rise instead of dividing.
func EvaluateCapillary(p model.CapillaryParams) model.CapillaryResult {
	denom := p.Density * p.Gravity * p.TubeDiameter
	if denom == 0 {
		return model.CapillaryResult{}
	}
	theta := p.ContactAngleDeg * math.Pi / 180.0
	h := 4 * p.SurfaceTension * math.Cos(theta) / denom
	return model.CapillaryResult{RiseHeight: h}
}
