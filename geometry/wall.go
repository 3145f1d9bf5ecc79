package geometry

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"fluidlab/model"
)

// BuildWall draws the wetted wall (vertical or rotated by the inclination
// angle), the water body behind it, the triangular hydrostatic load wedge
// and the resultant-force arrow at the centre of pressure. The free surface
// sits at y = 0 and the wall base at depth -D.
func BuildWall(p model.WallParams, r model.WallResult) model.Scene {
	theta := p.InclineDeg * math.Pi / 180.0
	sin := math.Sin(theta)
	if sin == 0 {
		sin = 1 // keep the wetted length finite for a degenerate angle
	}
	length := p.Depth / sin

	base := r2.Vec{X: 0, Y: -p.Depth}
	top := r2.Add(base, r2.Scale(length, r2.Vec{X: math.Cos(theta), Y: math.Sin(theta)}))
	dir := r2.Vec{X: 0, Y: 1} // vertical default for a zero-length wall
	if r2.Norm(r2.Sub(top, base)) > 0 {
		dir = r2.Unit(r2.Sub(top, base))
	}
	normal := r2.Vec{X: -dir.Y, Y: dir.X} // unit normal, water side

	extent := 1.2 * math.Max(length, p.Depth)

	// water wedge against the wall
	water := model.NewPolygon([]model.Point{
		{X: -extent, Y: 0},
		{X: top.X, Y: top.Y},
		{X: base.X, Y: base.Y},
		{X: -extent, Y: -p.Depth},
	})

	// wall rectangle: axis-aligned when vertical, rotated with the incline
	thickness := 0.06 * length
	away := r2.Scale(-thickness, normal)
	wall := model.NewPolygon([]model.Point{
		{X: base.X, Y: base.Y},
		{X: top.X, Y: top.Y},
		{X: top.X + away.X, Y: top.Y + away.Y},
		{X: base.X + away.X, Y: base.Y + away.Y},
	})

	// triangular pressure distribution, zero at the surface, max at the base
	loadTip := r2.Add(base, r2.Scale(0.3*length, normal))
	wedge := model.NewPolygon([]model.Point{
		{X: top.X, Y: top.Y},
		{X: base.X, Y: base.Y},
		{X: loadTip.X, Y: loadTip.Y},
	})

	// resultant at the centre of pressure, 2D/3 below the surface
	cp := r2.Add(top, r2.Scale(2.0/3.0, r2.Sub(base, top)))
	tail := r2.Add(cp, r2.Scale(0.35*length, normal))
	force := model.NewArrow(
		model.Point{X: tail.X, Y: tail.Y},
		model.Point{X: cp.X, Y: cp.Y},
		fmt.Sprintf("F = %.0f N", r.Force),
	)

	// θ label at the wall midpoint, offset along the unit normal
	mid := r2.Add(base, r2.Scale(0.5, r2.Sub(top, base)))
	labelAt := r2.Add(mid, r2.Scale(0.08*length, normal))
	label := model.NewAnnotation(
		model.Point{X: labelAt.X, Y: labelAt.Y},
		fmt.Sprintf("θ = %.0f°", p.InclineDeg),
	)

	prims := []model.Primitive{water, wall, wedge, force, label,
		model.NewSegment(model.Point{X: -extent, Y: 0}, model.Point{X: top.X, Y: 0}),
	}
	return model.Scene{Primitives: prims, Bounds: computeBounds(prims, 0.08)}
}
