package hydro

import (
	"math"

	"fluidlab/model"
)

// EvaluateWall computes the resultant hydrostatic force on a plane wall
// wetted to vertical depth D over width w:
//
//	F = 0.5·ρ·g·w·D² / sin(θ)
//
// θ is the wall's inclination from the horizontal, so a vertical wall
// (θ = 90°) reduces to the plain 0.5·ρ·g·w·D² form. A horizontal wall
// (sin θ = 0) degrades to the zero sentinel. The centre of pressure sits
// at 2D/3 below the free surface.
func EvaluateWall(p model.WallParams) model.WallResult {
	theta := p.InclineDeg * math.Pi / 180.0
	sin := math.Sin(theta)
	if sin == 0 {
		return model.WallResult{}
	}
	force := 0.5 * p.Density * p.Gravity * p.Width * p.Depth * p.Depth / sin
	return model.WallResult{
		Force:            force,
		CenterOfPressure: 2.0 * p.Depth / 3.0,
	}
}
