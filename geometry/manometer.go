package geometry

import (
	"fmt"
	"math"

	"fluidlab/model"
)

// BuildManometer draws an open U-tube: two vertical legs joined by a
// sampled semicircular bottom, the manometer-fluid column in the open leg,
// the working-fluid column above the datum in the pipe leg, and the datum
// line. The datum sits at y = 0 and the leg spacing scales with the larger
// column so short readings stay visible.
func BuildManometer(p model.ManometerParams, r model.ManometerResult) model.Scene {
	spacing := 1.5 * math.Max(p.ColumnHeight, p.DatumOffset)
	if spacing == 0 {
		spacing = 0.1
	}
	// visual tube half-width and depth of the U
	rt := 0.08 * spacing
	bottom := -0.5 * spacing
	leftTop := p.DatumOffset + 0.3*spacing
	rightTop := p.ColumnHeight + 0.3*spacing

	prims := []model.Primitive{
		// left leg walls (pipe side)
		model.NewSegment(model.Point{X: -rt, Y: leftTop}, model.Point{X: -rt, Y: bottom}),
		model.NewSegment(model.Point{X: rt, Y: leftTop}, model.Point{X: rt, Y: bottom}),
		// right leg walls (open side)
		model.NewSegment(model.Point{X: spacing - rt, Y: rightTop}, model.Point{X: spacing - rt, Y: bottom}),
		model.NewSegment(model.Point{X: spacing + rt, Y: rightTop}, model.Point{X: spacing + rt, Y: bottom}),
		// U bottom, outer and inner arcs
		model.NewCurve(uBend(spacing/2, bottom, spacing/2+rt)),
		model.NewCurve(uBend(spacing/2, bottom, spacing/2-rt)),
		// working fluid between datum and pipe centre in the left leg
		model.NewPolygon([]model.Point{
			{X: -rt, Y: 0}, {X: rt, Y: 0}, {X: rt, Y: p.DatumOffset}, {X: -rt, Y: p.DatumOffset},
		}),
		// manometer fluid column in the open leg
		model.NewPolygon([]model.Point{
			{X: spacing - rt, Y: 0}, {X: spacing + rt, Y: 0},
			{X: spacing + rt, Y: p.ColumnHeight}, {X: spacing - rt, Y: p.ColumnHeight},
		}),
		// datum
		model.NewSegment(model.Point{X: -0.4 * spacing, Y: 0}, model.Point{X: 1.4 * spacing, Y: 0}),
		model.NewAnnotation(model.Point{X: -0.4 * spacing, Y: 0.05 * spacing}, "datum"),
		model.NewArrow(
			model.Point{X: -0.35 * spacing, Y: p.DatumOffset + 0.15*spacing},
			model.Point{X: 0, Y: p.DatumOffset},
			fmt.Sprintf("ΔP = %.1f Pa", r.PressureDiff),
		),
	}
	return model.Scene{Primitives: prims, Bounds: computeBounds(prims, 0.08)}
}

// uBend samples the lower half-circle joining the two legs, centred between
// them at the U's depth.
func uBend(cx, cy, radius float64) []model.Point {
	n := geoCfg.ArcSamples
	points := make([]model.Point, n)
	for i := range points {
		phi := math.Pi + math.Pi*float64(i)/float64(n-1) // π..2π, lower half
		points[i] = model.Point{X: cx + radius*math.Cos(phi), Y: cy + radius*math.Sin(phi)}
	}
	return points
}
