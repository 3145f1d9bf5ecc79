package hydro

import (
	"math"
	"testing"

	"fluidlab/model"
)

func TestEvaluateCapillaryWater(t *testing.T) {
	p := model.CapillaryParams{
		SurfaceTension:  0.0728,
		Density:         998,
		ContactAngleDeg: 0,
		TubeDiameter:    0.001,
		Gravity:         9.81,
	}
	got := EvaluateCapillary(p).RiseHeight
	if math.Abs(got-0.0298) > 1e-3 {
		t.Errorf("rise height = %v, want ≈0.0298", got)
	}
}

func TestEvaluateCapillaryNinetyDegrees(t *testing.T) {
	p := model.CapillaryParams{
		SurfaceTension:  0.0728,
		Density:         998,
		ContactAngleDeg: 90,
		TubeDiameter:    0.001,
		Gravity:         9.81,
	}
	got := EvaluateCapillary(p).RiseHeight
	if math.Abs(got) > 1e-9 {
		t.Errorf("rise height = %v, want ≈0 at θ=90°", got)
	}
}

func TestEvaluateCapillaryNonWetting(t *testing.T) {
	p := model.CapillaryParams{
		SurfaceTension:  0.485,
		Density:         13600,
		ContactAngleDeg: 140,
		TubeDiameter:    0.001,
		Gravity:         9.81,
	}
	if got := EvaluateCapillary(p).RiseHeight; got >= 0 {
		t.Errorf("rise height = %v, want depression for θ>90°", got)
	}
}

func TestEvaluateCapillaryZeroDenominator(t *testing.T) {
	p := model.CapillaryParams{SurfaceTension: 0.0728, ContactAngleDeg: 0}
	if got := EvaluateCapillary(p).RiseHeight; got != 0 {
		t.Errorf("rise height = %v, want zero sentinel", got)
	}
}

func TestEvaluateCapillaryDeterministic(t *testing.T) {
	p := model.CapillaryParams{
		SurfaceTension:  0.0228,
		Density:         789,
		ContactAngleDeg: 15,
		TubeDiameter:    0.002,
		Gravity:         9.81,
	}
	a := EvaluateCapillary(p)
	b := EvaluateCapillary(p)
	if a != b {
		t.Errorf("repeated evaluation differs: %v vs %v", a, b)
	}
}
