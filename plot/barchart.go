package plot

import (
	"github.com/pkg/errors"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// DrawNamedBars renders one horizontal bar per row, bar length taken from
// values and the row's name on the Y axis. Rows are drawn in the order given,
// so callers control best-first vs worst-first.
func DrawNamedBars(title string, names []string, values []float64, prm Params) ([]byte, error) {
	if len(names) == 0 || len(names) != len(values) {
		return nil, errors.Errorf("bar chart needs matching names and values, got %d and %d", len(names), len(values))
	}

	plt := newGonumPlot(title, "Degrees", "", prm)
	bars, err := plotter.NewBarChart(plotter.Values(values), vg.Points(14))
	if err != nil {
		return nil, errors.Wrap(err, "bar chart")
	}
	bars.Horizontal = true
	bars.Color = floorColor
	plt.Add(bars)
	plt.NominalY(names...)

	return renderGonumPNG(plt, prm)
}
