package experiment

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// ChartHTML writes an interactive page with mean expansions and mean path
// cost per layout, one bar series per algorithm.
func ChartHTML(w io.Writer, sums []Summary) error {
	if len(sums) == 0 {
		return ErrNoData
	}

	var algorithms, layouts []string
	seenAlg, seenLayout := map[string]bool{}, map[string]bool{}
	for _, s := range sums {
		if !seenAlg[s.Algorithm] {
			seenAlg[s.Algorithm] = true
			algorithms = append(algorithms, s.Algorithm)
		}
		if l := s.Layout.String(); !seenLayout[l] {
			seenLayout[l] = true
			layouts = append(layouts, l)
		}
	}

	bar := func(title, axis string, value func(Summary) float64) *charts.Bar {
		b := charts.NewBar()
		b.SetGlobalOptions(
			charts.WithInitializationOpts(opts.Initialization{Width: "100%", Height: "480px"}),
			charts.WithTitleOpts(opts.Title{Title: title}),
			charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
			charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "bottom"}),
			charts.WithYAxisOpts(opts.YAxis{Name: axis}),
		)
		b.SetXAxis(layouts)
		for _, alg := range algorithms {
			data := make([]opts.BarData, len(layouts))
			for i, l := range layouts {
				for _, s := range sums {
					if s.Algorithm == alg && s.Layout.String() == l {
						data[i] = opts.BarData{Value: value(s)}
					}
				}
			}
			b.AddSeries(alg, data)
		}
		return b
	}

	page := components.NewPage()
	page.PageTitle = "mallpath batch summary"
	page.AddCharts(
		bar("Mean node expansions", "expansions", func(s Summary) float64 { return s.MeanExpansions }),
		bar("Mean path cost", "cost", func(s Summary) float64 { return s.MeanCost }),
	)
	return page.Render(w)
}
