// Package plotting renders the progress of training runs.
package plotting

import (
	"fmt"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Point is the mean absolute error reported at an iteration.
type Point struct {
	Iteration int
	Error     float64
}

// ErrorCurve draws one line per run of error against iteration, and saves it to path. The image
// format is chosen by the extension of path, as with plot.Save.
func ErrorCurve(runs [][]Point, path string) error {
	if len(runs) == 0 {
		return errors.New("no runs to plot")
	}

	p := plot.New()
	p.Title.Text = "Training error"
	p.X.Label.Text = "iteration"
	p.Y.Label.Text = "mean |error|"

	for r, points := range runs {
		if len(points) == 0 {
			continue
		}

		pts := make(plotter.XYs, len(points))
		for i, pt := range points {
			pts[i].X = float64(pt.Iteration)
			pts[i].Y = pt.Error
		}

		l, err := plotter.NewLine(pts)
		if err != nil {
			return errors.Wrapf(err, "line for run %d", r)
		}
		l.LineStyle.Width = vg.Points(1)
		l.LineStyle.Color = plotutil.Color(r)

		p.Add(l)
		p.Legend.Add(fmt.Sprintf("run %d", r), l)
	}

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return errors.Wrapf(err, "save plot to %q", path)
	}

	return nil
}
