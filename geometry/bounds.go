package geometry

import (
	"math"

	"fluidlab/model"
)

// computeBounds derives the scene rectangle from the primitives themselves
// and pads it by a fraction of the span so the interesting feature is never
// clipped. Bounds are never hard-coded by builders.
func computeBounds(prims []model.Primitive, pad float64) model.Rect {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	grow := func(pt model.Point) {
		minX = math.Min(minX, pt.X)
		minY = math.Min(minY, pt.Y)
		maxX = math.Max(maxX, pt.X)
		maxY = math.Max(maxY, pt.Y)
	}
	for _, prim := range prims {
		for _, pt := range prim.Points {
			grow(pt)
		}
		if prim.Kind == model.KindAnnotation {
			grow(prim.At)
			if prim.Arrow != nil {
				grow(*prim.Arrow)
			}
		}
	}
	if math.IsInf(minX, 1) {
		return model.Rect{}
	}
	spanX := maxX - minX
	spanY := maxY - minY
	span := math.Max(spanX, spanY)
	if span == 0 {
		span = 1
	}
	return model.Rect{
		MinX: minX - pad*span,
		MinY: minY - pad*span,
		MaxX: maxX + pad*span,
		MaxY: maxY + pad*span,
	}
}
