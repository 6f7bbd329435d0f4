package plot

import (
	"image/color"

	"github.com/pkg/errors"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var (
	floorColor   = color.RGBA{R: 70, G: 130, B: 180, A: 255}
	ceilingColor = color.RGBA{R: 221, G: 132, B: 82, A: 255}
)

// DrawBoxplots renders one box per category. groups[i] holds the values for
// categories[i], i.e. the long-form reshape grouped back by metric.
func DrawBoxplots(title string, categories []string, groups [][]float64, prm Params) ([]byte, error) {
	if len(categories) == 0 || len(categories) != len(groups) {
		return nil, errors.Errorf("boxplots need matching categories and groups, got %d and %d", len(categories), len(groups))
	}

	plt := newGonumPlot(title, "", "Degrees", prm)
	for i, group := range groups {
		box, err := plotter.NewBoxPlot(vg.Points(40), float64(i), plotter.Values(group))
		if err != nil {
			return nil, errors.Wrapf(err, "box plot for %s", categories[i])
		}
		plt.Add(box)
	}
	plt.NominalX(categories...)

	return renderGonumPNG(plt, prm)
}

// DrawCombinedBoxplots renders two boxes per category side by side, the first
// group (floor) left of the tick and the second (ceiling) right of it.
// categories are the shared metric names with the floor_/ceiling_ prefix
// already stripped, so paired metrics align.
func DrawCombinedBoxplots(title string, categories []string, firstGroups, secondGroups [][]float64, prm Params) ([]byte, error) {
	if len(categories) != len(firstGroups) || len(categories) != len(secondGroups) {
		return nil, errors.Errorf("combined boxplots need %d groups on both sides", len(categories))
	}

	plt := newGonumPlot(title, "", "Degrees", prm)
	boxWidth := vg.Points(30)
	for i := range categories {
		first, err := plotter.NewBoxPlot(boxWidth, float64(i), plotter.Values(firstGroups[i]))
		if err != nil {
			return nil, errors.Wrapf(err, "floor box plot for %s", categories[i])
		}
		first.Offset = -boxWidth * 0.6
		first.FillColor = floorColor

		second, err := plotter.NewBoxPlot(boxWidth, float64(i), plotter.Values(secondGroups[i]))
		if err != nil {
			return nil, errors.Wrapf(err, "ceiling box plot for %s", categories[i])
		}
		second.Offset = boxWidth * 0.6
		second.FillColor = ceilingColor

		plt.Add(first, second)
	}
	plt.NominalX(categories...)

	return renderGonumPNG(plt, prm)
}
