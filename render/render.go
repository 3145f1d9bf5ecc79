// Package render draws a Scene with gonum/plot and saves it as an image.
// It is the in-process stand-in for whatever plotting facility the UI has;
// rendering is synchronous and idempotent and the core never inspects the
// result beyond the returned error.
package render

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"fluidlab/model"
)

var (
	lineColor = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	fillColor = color.RGBA{R: 120, G: 170, B: 220, A: 120}
)

// Render saves the scene to path; the format follows the extension
// (.png, .svg, .pdf — whatever gonum/plot supports).
func Render(scene model.Scene, path string) error {
	p := plot.New()
	p.HideAxes()

	for _, prim := range scene.Primitives {
		switch prim.Kind {
		case model.KindSegment, model.KindCurve:
			line, err := plotter.NewLine(xys(prim.Points))
			if err != nil {
				return fmt.Errorf("render line: %w", err)
			}
			line.Color = lineColor
			p.Add(line)
		case model.KindPolygon:
			poly, err := plotter.NewPolygon(xys(prim.Points))
			if err != nil {
				return fmt.Errorf("render polygon: %w", err)
			}
			poly.Color = fillColor
			p.Add(poly)
		case model.KindAnnotation:
			labels, err := plotter.NewLabels(plotter.XYLabels{
				XYs:    plotter.XYs{{X: prim.At.X, Y: prim.At.Y}},
				Labels: []string{prim.Text},
			})
			if err != nil {
				return fmt.Errorf("render label: %w", err)
			}
			p.Add(labels)
			if prim.Arrow != nil {
				arrow, err := plotter.NewLine(plotter.XYs{
					{X: prim.At.X, Y: prim.At.Y},
					{X: prim.Arrow.X, Y: prim.Arrow.Y},
				})
				if err != nil {
					return fmt.Errorf("render arrow: %w", err)
				}
				arrow.Color = lineColor
				p.Add(arrow)
			}
		default:
			return fmt.Errorf("render: unknown primitive kind %q", prim.Kind)
		}
	}

	if scene.Bounds != (model.Rect{}) {
		p.X.Min, p.X.Max = scene.Bounds.MinX, scene.Bounds.MaxX
		p.Y.Min, p.Y.Max = scene.Bounds.MinY, scene.Bounds.MaxY
	}
	return p.Save(6*vg.Inch, 6*vg.Inch, path)
}

func xys(points []model.Point) plotter.XYs {
	out := make(plotter.XYs, len(points))
	for i, pt := range points {
		out[i] = plotter.XY{X: pt.X, Y: pt.Y}
	}
	return out
}
