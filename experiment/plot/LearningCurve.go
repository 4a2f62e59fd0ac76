// Package plot renders data tracked during an experiment as HTML charts
package plot

import (
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// Series is a named sequence of per-episode values
type Series struct {
	Name   string
	Values []float64
}

// LearningCurve returns a line chart with one line per Series. The
// x-axis is the episode number.
func LearningCurve(title string, series ...Series) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: title,
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: "shine",
		}),
	)

	episodes := 0
	for _, s := range series {
		if len(s.Values) > episodes {
			episodes = len(s.Values)
		}
	}

	steps := make([]string, 0, episodes)
	for i := 0; i < episodes; i++ {
		steps = append(steps, fmt.Sprintf("%d", i))
	}
	line = line.SetXAxis(steps)

	for _, s := range series {
		items := make([]opts.LineData, 0, len(s.Values))
		for _, v := range s.Values {
			items = append(items, opts.LineData{Value: v})
		}
		line.AddSeries(s.Name, items)
	}

	return line
}

// Render writes a page holding the learning curve to w
func Render(w io.Writer, title string, series ...Series) error {
	page := components.NewPage()
	page.AddCharts(LearningCurve(title, series...))

	return page.Render(w)
}

// Save renders the learning curve page to filename
func Save(filename, title string, series ...Series) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("save: %w", err)
	}
	defer f.Close()

	if err := Render(f, title, series...); err != nil {
		return fmt.Errorf("save: could not render %v: %w", filename, err)
	}
	return nil
}
