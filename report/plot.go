package report

import (
	"errors"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	diveknn "go-diveknn"
)

// PlotSweep saves a line chart of percentage correct against k. The image
// format follows the extension of path (png, svg, pdf, ...).
func PlotSweep(results []*diveknn.Result, path string) error {
	if len(results) == 0 {
		return errors.New("plot sweep: no results")
	}
	points := make(plotter.XYs, len(results))
	for i, r := range results {
		points[i].X = float64(r.K)
		points[i].Y = float64(r.Percentage())
	}

	p := plot.New()
	p.Title.Text = "Leave-one-out accuracy"
	p.X.Label.Text = "k"
	p.Y.Label.Text = "Percentage correct"
	p.Y.Min = 0
	p.Y.Max = 100
	if err := plotutil.AddLinePoints(p, "accuracy", points); err != nil {
		return fmt.Errorf("plot sweep: %w", err)
	}
	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("plot sweep: save %s: %w", path, err)
	}
	return nil
}
