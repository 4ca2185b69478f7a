// Package plot renders a per-class F1 bar chart of the evaluation result
// to a PNG file.
package plot

import (
	"context"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/crimson-sun/sway/internal/eval"
)

// Output saves one chart per written report; successive writes overwrite
// the same path.
type Output struct {
	path string
}

// New creates a plot output saving charts to the given PNG path.
func New(path string) *Output {
	return &Output{path: path}
}

func (o *Output) Write(_ context.Context, result eval.Result) error {
	p := plot.New()
	p.Title.Text = "Per-class F1"
	p.Y.Label.Text = "F1"
	p.Y.Min, p.Y.Max = 0, 1

	values := make(plotter.Values, len(result.Classes))
	names := make([]string, len(result.Classes))
	for i, m := range result.Classes {
		values[i] = m.F1
		names[i] = m.Label
	}

	bars, err := plotter.NewBarChart(values, vg.Points(30))
	if err != nil {
		return fmt.Errorf("plot output: %w", err)
	}
	p.Add(bars)
	p.NominalX(names...)

	if err := p.Save(5*vg.Inch, 4*vg.Inch, o.path); err != nil {
		return fmt.Errorf("plot output: save %s: %w", o.path, err)
	}
	return nil
}

func (o *Output) Close() error { return nil }
