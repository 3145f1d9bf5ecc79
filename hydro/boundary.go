package hydro

import "fluidlab/model"

// Parameter-record construction boundary. Raw requests carry UI units and
// tags; everything past this file is SI. Range clamping happens here so the
// evaluators only ever see in-domain values.

const Gravity = 9.81 // m/s²

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// CapillaryParamsFrom resolves the fluid preset, converts the tube
// diameter to metres and clamps the controls to their declared ranges.
func CapillaryParamsFrom(req model.CapillaryReq) (model.CapillaryParams, error) {
	fluid, err := ParseFluid(req.Fluid)
	if err != nil {
		return model.CapillaryParams{}, err
	}
	sigma, rho := req.SurfaceTension, req.Density
	if fluid != Custom {
		props := fluid.Props()
		sigma, rho = props.SurfaceTension, props.Density
	}
	return model.CapillaryParams{
		SurfaceTension:  sigma,
		Density:         rho,
		ContactAngleDeg: clamp(req.ContactAngleDeg, 0, 180),
		TubeDiameter:    clamp(req.TubeDiameterMM, 0.1, 10.0) / 1000.0,
		Gravity:         Gravity,
	}, nil
}

func ManometerParamsFrom(req model.ManometerReq) model.ManometerParams {
	return model.ManometerParams{
		FluidDensity:     clamp(req.FluidDensity, 1, 20000),
		ManometerDensity: clamp(req.ManometerDensity, 1, 20000),
		ColumnHeight:     clamp(req.ColumnHeightCM, 0, 100) / 100.0,
		DatumOffset:      clamp(req.DatumOffsetCM, 0, 100) / 100.0,
		Gravity:          Gravity,
	}
}

func WallParamsFrom(req model.WallReq) model.WallParams {
	return model.WallParams{
		Density:    clamp(req.Density, 1, 20000),
		Width:      clamp(req.Width, 0.1, 50),
		Depth:      clamp(req.Depth, 0.1, 50),
		InclineDeg: clamp(req.InclineDeg, 1, 90),
		Gravity:    Gravity,
	}
}

// PipeBendParamsFrom normalizes the tagged flow rate and pressure to SI
// and constrains the outlet diameter to never exceed the inlet.
func PipeBendParamsFrom(req model.PipeBendReq) (model.PipeBendParams, error) {
	flowUnit, err := ParseFlowUnit(req.FlowUnit)
	if err != nil {
		return model.PipeBendParams{}, err
	}
	pressureUnit, err := ParsePressureUnit(req.PressureUnit)
	if err != nil {
		return model.PipeBendParams{}, err
	}
	density := clamp(req.Density, 1, 20000)
	inlet := clamp(req.InletDiameterCM, 5, 100)
	outlet := clamp(req.OutletDiameterCM, 5, inlet)
	return model.PipeBendParams{
		InletDiameter:  inlet / 100.0,
		OutletDiameter: outlet / 100.0,
		BendAngleDeg:   clamp(req.BendAngleDeg, 30, 90),
		FlowRate:       NormalizeFlow(req.FlowRate, flowUnit, density),
		InletPressure:  NormalizePressure(req.InletPressure, pressureUnit),
		Density:        density,
	}, nil
}
