package experiment

import (
	"errors"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// ErrNoData is returned by PlotSummary for an empty summary.
var ErrNoData = errors.New("experiment: nothing to plot")

// PlotSummary saves a grouped bar chart of mean expansions per layout, one
// bar per algorithm, to path. The image format follows the file extension.
func PlotSummary(path string, sums []Summary) error {
	if len(sums) == 0 {
		return ErrNoData
	}

	// 1) Collect axes in first-appearance order.
	var algorithms, layouts []string
	seen := map[string]bool{}
	for _, s := range sums {
		if !seen["a:"+s.Algorithm] {
			seen["a:"+s.Algorithm] = true
			algorithms = append(algorithms, s.Algorithm)
		}
		if l := s.Layout.String(); !seen["l:"+l] {
			seen["l:"+l] = true
			layouts = append(layouts, l)
		}
	}
	col := make(map[string]int, len(layouts))
	for i, l := range layouts {
		col[l] = i
	}

	p := plot.New()
	p.Title.Text = "Mean node expansions by layout"
	p.X.Label.Text = "Layout (elevators/stairs)"
	p.Y.Label.Text = "Expansions"

	// 2) One bar series per algorithm, offset around each layout tick.
	width := vg.Points(18)
	for i, alg := range algorithms {
		values := make(plotter.Values, len(layouts))
		for _, s := range sums {
			if s.Algorithm == alg {
				values[col[s.Layout.String()]] = s.MeanExpansions
			}
		}
		bars, err := plotter.NewBarChart(values, width)
		if err != nil {
			return fmt.Errorf("bar chart %s: %w", alg, err)
		}
		bars.LineStyle.Width = vg.Length(0)
		bars.Color = plotutil.Color(i)
		bars.Offset = width * vg.Length(2*i-len(algorithms)+1) / 2
		p.Add(bars)
		p.Legend.Add(alg, bars)
	}
	p.Legend.Top = true
	p.NominalX(layouts...)

	if err := p.Save(8*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("save plot: %w", err)
	}
	return nil
}
