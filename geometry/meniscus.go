package geometry

import (
	"fmt"
	"math"

	"fluidlab/model"
)

// BuildCapillary draws the beaker, the capillary tube and the meniscus.
// The free surface of the reservoir sits at y = 0 and every backdrop size
// is taken relative to the dominant physical dimension so the diagram stays
// legible whether the rise is millimetres or centimetres.
func BuildCapillary(p model.CapillaryParams, r model.CapillaryResult) model.Scene {
	rt := p.TubeDiameter / 2
	h := r.RiseHeight

	span := math.Max(math.Abs(h)*1.2, 20*rt)
	if span == 0 {
		span = 1
	}
	halfWidth := 0.8 * span
	depth := 0.4 * span
	tubeTop := math.Max(h, 0) + 0.15*span
	tubeBottom := -0.5 * depth

	prims := []model.Primitive{
		// reservoir liquid
		model.NewPolygon([]model.Point{
			{X: -halfWidth, Y: -depth},
			{X: halfWidth, Y: -depth},
			{X: halfWidth, Y: 0},
			{X: -halfWidth, Y: 0},
		}),
		// beaker walls
		model.NewSegment(model.Point{X: -halfWidth, Y: 0.1 * span}, model.Point{X: -halfWidth, Y: -depth}),
		model.NewSegment(model.Point{X: -halfWidth, Y: -depth}, model.Point{X: halfWidth, Y: -depth}),
		model.NewSegment(model.Point{X: halfWidth, Y: -depth}, model.Point{X: halfWidth, Y: 0.1 * span}),
		// tube walls, dipped below the surface
		model.NewSegment(model.Point{X: -rt, Y: tubeBottom}, model.Point{X: -rt, Y: tubeTop}),
		model.NewSegment(model.Point{X: rt, Y: tubeBottom}, model.Point{X: rt, Y: tubeTop}),
	}

	// liquid column inside the tube, up (or down) to the rise height
	if h != 0 {
		lo, hi := 0.0, h
		if h < 0 {
			lo, hi = h, 0
		}
		prims = append(prims, model.NewPolygon([]model.Point{
			{X: -rt, Y: lo},
			{X: rt, Y: lo},
			{X: rt, Y: hi},
			{X: -rt, Y: hi},
		}))
	}

	prims = append(prims, model.NewCurve(meniscusCurve(rt, h, p.ContactAngleDeg)))
	prims = append(prims, model.NewArrow(
		model.Point{X: 0.35 * span, Y: h + 0.1*span},
		model.Point{X: 0, Y: h},
		fmt.Sprintf("h = %.2f mm", h*1000),
	))

	return model.Scene{Primitives: prims, Bounds: computeBounds(prims, 0.08)}
}

// meniscusCurve samples the tube bore and applies a parabolic vertical
// offset. The curvature sign flips at θ = 90° (wetting bows the edges up,
// non-wetting bows them down) and the curve always passes through the rise
// height at the centreline. A zero tube radius collapses to a flat curve at
// the target height.
func meniscusCurve(rt, h, contactAngleDeg float64) []model.Point {
	n := geoCfg.MeniscusSamples
	points := make([]model.Point, n)
	if rt == 0 {
		for i := range points {
			points[i] = model.Point{X: 0, Y: h}
		}
		return points
	}
	sag := rt * math.Cos(contactAngleDeg*math.Pi/180.0)
	for i := range points {
		t := 2.0*float64(i)/float64(n-1) - 1.0 // -1..1 across the bore
		points[i] = model.Point{X: t * rt, Y: h + sag*t*t}
	}
	return points
}
