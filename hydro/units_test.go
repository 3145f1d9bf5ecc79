package hydro

import (
	"math"
	"testing"

	"fluidlab/model"
)

func TestNormalizeFlow(t *testing.T) {
	if got := NormalizeFlow(500, LitersPerSecond, 1000); got != 0.5 {
		t.Errorf("500 L/s = %v m³/s, want 0.5", got)
	}
	if got := NormalizeFlow(3600, CubicMetersPerHour, 1000); got != 1.0 {
		t.Errorf("3600 m³/h = %v m³/s, want 1", got)
	}
	if got := NormalizeFlow(250, KilogramsPerSecond, 1000); got != 0.25 {
		t.Errorf("250 kg/s at ρ=1000 = %v m³/s, want 0.25", got)
	}
	if got := NormalizeFlow(250, KilogramsPerSecond, 0); got != 0 {
		t.Errorf("kg/s at ρ=0 = %v, want zero sentinel", got)
	}
}

func TestNormalizePressure(t *testing.T) {
	if got := NormalizePressure(1, Atmosphere); got != 101325 {
		t.Errorf("1 atm = %v Pa, want 101325", got)
	}
	if got := NormalizePressure(200, KiloPascal); got != 200000 {
		t.Errorf("200 kPa = %v Pa, want 200000", got)
	}
}

func TestParseFluid(t *testing.T) {
	f, err := ParseFluid("mercury")
	if err != nil || f != Mercury {
		t.Errorf("ParseFluid(mercury) = %v, %v", f, err)
	}
	if _, err := ParseFluid("lava"); err == nil {
		t.Error("ParseFluid(lava) should fail")
	}
	props := Mercury.Props()
	if props.Density != 13600 {
		t.Errorf("mercury density = %v, want 13600", props.Density)
	}
}

func TestPipeBendParamsFrom(t *testing.T) {
	req := model.PipeBendReq{
		InletDiameterCM:  30,
		OutletDiameterCM: 45, // above inlet, must clamp down
		BendAngleDeg:     45,
		FlowRate:         50,
		FlowUnit:         "L/s",
		InletPressure:    2,
		PressureUnit:     "atm",
		Density:          1000,
	}
	p, err := PipeBendParamsFrom(req)
	if err != nil {
		t.Fatal(err)
	}
	if p.OutletDiameter != p.InletDiameter {
		t.Errorf("outlet = %v, want clamped to inlet %v", p.OutletDiameter, p.InletDiameter)
	}
	if math.Abs(p.FlowRate-0.05) > 1e-12 {
		t.Errorf("flow rate = %v m³/s, want 0.05", p.FlowRate)
	}
	if p.InletPressure != 2*AtmPa {
		t.Errorf("inlet pressure = %v Pa, want %v", p.InletPressure, 2*AtmPa)
	}
}

func TestCapillaryParamsFrom(t *testing.T) {
	p, err := CapillaryParamsFrom(model.CapillaryReq{Fluid: "water", ContactAngleDeg: 200, TubeDiameterMM: 0})
	if err != nil {
		t.Fatal(err)
	}
	if p.ContactAngleDeg != 180 {
		t.Errorf("contact angle = %v, want clamped to 180", p.ContactAngleDeg)
	}
	if p.TubeDiameter != 0.0001 {
		t.Errorf("tube diameter = %v m, want clamped to 0.1 mm", p.TubeDiameter)
	}
	if p.SurfaceTension != 0.0728 || p.Density != 998 {
		t.Errorf("water preset not applied: σ=%v ρ=%v", p.SurfaceTension, p.Density)
	}
}
