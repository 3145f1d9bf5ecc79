package hydro

import (
	"math"
	"testing"

	"fluidlab/model"
)

func TestEvaluateWallVertical(t *testing.T) {
	p := model.WallParams{
		Density:    1000,
		Gravity:    9.81,
		Width:      3,
		Depth:      2,
		InclineDeg: 90,
	}
	r := EvaluateWall(p)
	if math.Abs(r.Force-58860) > 1e-6 {
		t.Errorf("force = %v, want 58860", r.Force)
	}
	if math.Abs(r.CenterOfPressure-4.0/3.0) > 1e-12 {
		t.Errorf("center of pressure = %v, want 2D/3", r.CenterOfPressure)
	}
}

func TestEvaluateWallInclined(t *testing.T) {
	// At 30° the wetted area doubles, so the force doubles.
	vertical := EvaluateWall(model.WallParams{Density: 1000, Gravity: 9.81, Width: 3, Depth: 2, InclineDeg: 90})
	inclined := EvaluateWall(model.WallParams{Density: 1000, Gravity: 9.81, Width: 3, Depth: 2, InclineDeg: 30})
	if math.Abs(inclined.Force-2*vertical.Force) > 1e-6 {
		t.Errorf("inclined force = %v, want %v", inclined.Force, 2*vertical.Force)
	}
}

func TestEvaluateWallHorizontalSentinel(t *testing.T) {
	p := model.WallParams{Density: 1000, Gravity: 9.81, Width: 3, Depth: 2, InclineDeg: 0}
	if got := EvaluateWall(p); got != (model.WallResult{}) {
		t.Errorf("result = %v, want zero sentinel for sin θ = 0", got)
	}
}
