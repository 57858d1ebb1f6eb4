package main

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// plotReturns saves a line plot of per-episode returns to path
func plotReturns(name string, returns []float64, path string) error {
	p := plot.New()
	p.Title.Text = "Episodic Return"
	p.X.Label.Text = "Episode"
	p.Y.Label.Text = "Return"

	points := make(plotter.XYs, len(returns))
	for i, r := range returns {
		points[i] = plotter.XY{
			X: float64(i),
			Y: r,
		}
	}

	line, err := plotter.NewLine(points)
	if err != nil {
		return err
	}
	line.Color = plotutil.Color(0)
	p.Add(line)
	p.Legend.Add(name, line)

	return p.Save(8*vg.Inch, 8*vg.Inch, path)
}
