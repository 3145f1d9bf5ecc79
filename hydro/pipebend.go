package hydro

import (
	"math"

	"fluidlab/model"
)

// EvaluatePipeBend solves a horizontal reducing bend: continuity gives the
// section velocities, Bernoulli the outlet gauge pressure, and a linear
// momentum balance over the bend control volume the reaction the fluid
// exerts on the pipe (sign-flipped from the force on the fluid). The inlet
// flows along +x and the outlet leaves at the bend angle.
func EvaluatePipeBend(p model.PipeBendParams) model.PipeBendResult {
	areaIn := math.Pi * p.InletDiameter * p.InletDiameter / 4.0
	areaOut := math.Pi * p.OutletDiameter * p.OutletDiameter / 4.0
	if areaIn == 0 || areaOut == 0 || p.Density == 0 {
		return model.PipeBendResult{}
	}

	uIn := p.FlowRate / areaIn
	uOut := p.FlowRate / areaOut

	// Same elevation, no losses.
	pOut := p.InletPressure + 0.5*p.Density*(uIn*uIn-uOut*uOut)

	theta := p.BendAngleDeg * math.Pi / 180.0
	cos, sin := math.Cos(theta), math.Sin(theta)

	// Momentum flux + pressure force per section.
	mIn := p.InletPressure*areaIn + p.Density*p.FlowRate*uIn
	mOut := pOut*areaOut + p.Density*p.FlowRate*uOut

	rx := mIn - mOut*cos
	ry := -mOut * sin

	return model.PipeBendResult{
		AreaIn:         areaIn,
		AreaOut:        areaOut,
		VelocityIn:     uIn,
		VelocityOut:    uOut,
		OutletPressure: pOut,
		ForceX:         rx,
		ForceY:         ry,
		Resultant:      math.Hypot(rx, ry),
		DirectionDeg:   resultantDirection(rx, ry),
	}
}

// resultantDirection is four-quadrant atan2 in degrees with the documented
// boundary convention: when the x-component is exactly zero the direction
// is ±90° by the sign of the y-component.
func resultantDirection(rx, ry float64) float64 {
	if rx == 0 {
		if ry < 0 {
			return -90
		}
		return 90
	}
	return math.Atan2(ry, rx) * 180.0 / math.Pi
}
