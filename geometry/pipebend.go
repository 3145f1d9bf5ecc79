package geometry

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"fluidlab/model"
)

// BuildPipeBend draws a reducing bend: a circular-arc centerline spanning
// the bend angle with the pipe diameter interpolated linearly along it, the
// two walls offset from the centerline by the local half-diameter along the
// local outward normal, straight inlet/outlet extensions attached
// tangentially, and the resultant-force arrow.
func BuildPipeBend(p model.PipeBendParams, r model.PipeBendResult) model.Scene {
	n := geoCfg.BendSamples
	theta := p.BendAngleDeg * math.Pi / 180.0
	radius := 2.5 * math.Max(p.InletDiameter, p.OutletDiameter)
	if radius == 0 {
		radius = 1
	}

	center := make([]r2.Vec, n)
	for i := range center {
		phi := theta * float64(i) / float64(n-1)
		center[i] = r2.Vec{X: radius * math.Sin(phi), Y: radius * (1 - math.Cos(phi))}
	}

	inner := make([]model.Point, n)
	outer := make([]model.Point, n)
	centerline := make([]model.Point, n)
	for i := range center {
		d := p.InletDiameter + (p.OutletDiameter-p.InletDiameter)*float64(i)/float64(n-1)
		normal := sampleNormal(center, i)
		lo := r2.Add(center[i], r2.Scale(d/2, normal))
		hi := r2.Sub(center[i], r2.Scale(d/2, normal))
		inner[i] = model.Point{X: lo.X, Y: lo.Y}
		outer[i] = model.Point{X: hi.X, Y: hi.Y}
		centerline[i] = model.Point{X: center[i].X, Y: center[i].Y}
	}

	prims := []model.Primitive{
		model.NewCurve(centerline),
		model.NewCurve(inner),
		model.NewCurve(outer),
	}
	prims = append(prims, inletExtension(p)...)
	prims = append(prims, outletExtension(p, center[n-1], theta)...)

	// resultant arrow anchored at the middle of the bend
	mid := center[n/2]
	phi := r.DirectionDeg * math.Pi / 180.0
	tip := r2.Add(mid, r2.Scale(0.8*radius, r2.Vec{X: math.Cos(phi), Y: math.Sin(phi)}))
	prims = append(prims, model.NewArrow(
		model.Point{X: mid.X, Y: mid.Y},
		model.Point{X: tip.X, Y: tip.Y},
		fmt.Sprintf("R = %.1f N, φ = %.1f°", r.Resultant, r.DirectionDeg),
	))

	return model.Scene{Primitives: prims, Bounds: computeBounds(prims, 0.08)}
}

// sampleNormal is the local outward normal: the direction from the previous
// sample to this one, turned by +90°. The very first sample has no previous
// neighbour, so its normal is defined purely vertical; the same default
// covers a degenerate zero-length step.
func sampleNormal(center []r2.Vec, i int) r2.Vec {
	if i == 0 {
		return r2.Vec{X: 0, Y: 1}
	}
	dir := r2.Sub(center[i], center[i-1])
	if r2.Norm(dir) == 0 {
		return r2.Vec{X: 0, Y: 1}
	}
	dir = r2.Unit(dir)
	return r2.Vec{X: -dir.Y, Y: dir.X}
}

// inletExtension attaches a straight run of fixed visual length ahead of
// the arc, flowing along +x into the bend at the origin.
func inletExtension(p model.PipeBendParams) []model.Primitive {
	length := 1.5 * p.InletDiameter
	half := p.InletDiameter / 2
	return []model.Primitive{
		model.NewSegment(model.Point{X: -length, Y: half}, model.Point{X: 0, Y: half}),
		model.NewSegment(model.Point{X: -length, Y: -half}, model.Point{X: 0, Y: -half}),
		model.NewSegment(model.Point{X: -length, Y: 0}, model.Point{X: 0, Y: 0}),
	}
}

// outletExtension attaches the straight outlet run tangentially at the end
// of the arc.
func outletExtension(p model.PipeBendParams, end r2.Vec, theta float64) []model.Primitive {
	length := 1.5 * p.OutletDiameter
	half := p.OutletDiameter / 2
	tangent := r2.Vec{X: math.Cos(theta), Y: math.Sin(theta)}
	normal := r2.Vec{X: -math.Sin(theta), Y: math.Cos(theta)}

	segment := func(offset float64) model.Primitive {
		from := r2.Add(end, r2.Scale(offset, normal))
		to := r2.Add(from, r2.Scale(length, tangent))
		return model.NewSegment(
			model.Point{X: from.X, Y: from.Y},
			model.Point{X: to.X, Y: to.Y},
		)
	}
	return []model.Primitive{segment(half), segment(-half), segment(0)}
}
