package hydro

import (
	"math"
	"testing"

	"fluidlab/model"
)

func TestEvaluateManometerMercuryOverWater(t *testing.T) {
	p := model.ManometerParams{
		FluidDensity:     1000,
		ManometerDensity: 13600,
		ColumnHeight:     0.10,
		DatumOffset:      0.02,
		Gravity:          9.81,
	}
	got := EvaluateManometer(p).PressureDiff
	if math.Abs(got-13147.6) > 0.5 {
		t.Errorf("pressure diff = %v, want ≈13147.6", got)
	}
}

func TestEvaluateManometerBalanced(t *testing.T) {
	// Same fluid, same column: the datum leg cancels the manometer leg.
	p := model.ManometerParams{
		FluidDensity:     1000,
		ManometerDensity: 1000,
		ColumnHeight:     0.05,
		DatumOffset:      0.05,
		Gravity:          9.81,
	}
	if got := EvaluateManometer(p).PressureDiff; math.Abs(got) > 1e-9 {
		t.Errorf("pressure diff = %v, want 0 for a balanced column", got)
	}
}
