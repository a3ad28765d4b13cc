package export

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"govn/internal/envelope"
)

// Default diagram size.
const (
	DefaultChartWidth  = 10 * vg.Inch
	DefaultChartHeight = 7 * vg.Inch
)

// SavePNG renders both envelopes into a single PNG diagram with the
// labeled design-speed vertices.
func SavePNG(path string, res *envelope.Result, width, height vg.Length) error {
	p := plot.New()
	p.Title.Text = "V-n envelope"
	p.X.Label.Text = "equivalent airspeed [m/s]"
	p.Y.Label.Text = "load factor"
	p.Add(plotter.NewGrid())

	var lines []interface{}
	addCurves := func(set string, curves []envelope.Curve) {
		for _, curve := range curves {
			pts := make(plotter.XYs, len(curve.Points))
			for i, pt := range curve.Points {
				pts[i].X = pt.V
				pts[i].Y = pt.N
			}
			lines = append(lines, fmt.Sprintf("%s: %s", set, curve.Name), pts)
		}
	}
	addCurves("basic", res.Basic)
	addCurves("gust", res.Gust)

	if err := plotutil.AddLines(p, lines...); err != nil {
		return fmt.Errorf("failed to add envelope curves: %w", err)
	}

	if len(res.Vertices) > 0 {
		xys := make(plotter.XYs, len(res.Vertices))
		names := make([]string, len(res.Vertices))
		for i, v := range res.Vertices {
			xys[i].X = v.V
			xys[i].Y = v.N
			names[i] = v.Label
		}
		labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: names})
		if err != nil {
			return fmt.Errorf("failed to build vertex labels: %w", err)
		}
		p.Add(labels)
	}

	if err := p.Save(width, height, path); err != nil {
		return fmt.Errorf("failed to save diagram: %w", err)
	}
	return nil
}
