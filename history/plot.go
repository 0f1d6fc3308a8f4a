package history

import (
	"errors"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ErrNoGenerations is returned when plotting an empty history
var ErrNoGenerations = errors.New("history: no generations to plot")

// PlotFitness draws best and mean fitness per generation into a PNG
// The fitness axis is logarithmic when every value is positive, since a
// completed candidate outscores an incomplete one by orders of magnitude
func PlotFitness(gens []Generation, title, outPath string) error {
	if len(gens) == 0 {
		return ErrNoGenerations
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Generation"
	p.Y.Label.Text = "Fitness"

	bestPts := make(plotter.XYs, len(gens))
	meanPts := make(plotter.XYs, len(gens))
	positive := true

	for i, g := range gens {
		bestPts[i].X = float64(g.Index)
		bestPts[i].Y = g.Best
		meanPts[i].X = float64(g.Index)
		meanPts[i].Y = g.Mean
		if g.Best <= 0 || g.Mean <= 0 {
			positive = false
		}
	}

	if positive {
		p.Y.Scale = plot.LogScale{}
		p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	}

	bestLine, err := plotter.NewLine(bestPts)
	if err != nil {
		return err
	}
	meanLine, err := plotter.NewLine(meanPts)
	if err != nil {
		return err
	}
	meanLine.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}

	p.Add(bestLine, meanLine)
	p.Legend.Add("best", bestLine)
	p.Legend.Add("mean", meanLine)
	p.Legend.Top = true
	p.Legend.Left = true

	if err := p.Save(6*vg.Inch, 4*vg.Inch, outPath); err != nil {
		return fmt.Errorf("history: save plot: %w", err)
	}
	return nil
}
