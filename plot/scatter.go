package plot

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// DrawScatter renders y against x as points. With refLine set, a dashed red
// diagonal is drawn beneath the points spanning referenceLimits on both axes,
// so a perfect-agreement dataset sits exactly on the line.
func DrawScatter(title, xName, yName string, xValues, yValues []float64, refLine bool, prm Params) ([]byte, error) {
	if len(xValues) == 0 || len(xValues) != len(yValues) {
		return nil, errors.Errorf("scatter needs equal non-empty series, got %d x %d", len(xValues), len(yValues))
	}

	var series []chart.Series
	xAxis := chart.XAxis{
		Name: xName,
		ValueFormatter: func(v interface{}) string {
			if vf, isFloat := v.(float64); isFloat {
				return fmt.Sprintf("%.1f", vf)
			}
			return ""
		},
	}
	yAxis := chart.YAxis{
		Name: yName,
		ValueFormatter: func(v interface{}) string {
			if vf, isFloat := v.(float64); isFloat {
				return fmt.Sprintf("%.1f", vf)
			}
			return ""
		},
	}

	if refLine {
		low, high := referenceLimits(xValues, yValues)
		// Diagonal goes first so the points are drawn on top of it.
		series = append(series, chart.ContinuousSeries{
			XValues: []float64{low, high},
			YValues: []float64{low, high},
			Style: chart.Style{
				StrokeColor:     drawing.ColorRed,
				StrokeWidth:     1,
				StrokeDashArray: []float64{5.0, 5.0},
			},
		})
		xAxis.Range = &chart.ContinuousRange{Min: low, Max: high}
		yAxis.Range = &chart.ContinuousRange{Min: low, Max: high}
	}

	series = append(series, chart.ContinuousSeries{
		XValues: xValues,
		YValues: yValues,
		Style: chart.Style{
			StrokeWidth: chart.Disabled,
			DotWidth:    4,
			DotColor:    drawing.ColorBlue,
		},
	})

	graph := chart.Chart{
		Title:      title,
		TitleStyle: chart.Style{FontSize: prm.TitleFontSize},
		Width:      prm.Width,
		Height:     prm.Height,
		DPI:        prm.DPI,
		Background: prm.background(),
		XAxis:      xAxis,
		YAxis:      yAxis,
		Series:     series,
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, errors.Wrap(err, "error rendering chart")
	}
	return buffer.Bytes(), nil
}

// referenceLimits returns the span of the diagonal reference line: 0.9x the
// smallest and 1.1x the largest value observed across both series.
func referenceLimits(xValues, yValues []float64) (low, high float64) {
	low, high = xValues[0], xValues[0]
	for _, s := range [][]float64{xValues, yValues} {
		for _, v := range s {
			if v < low {
				low = v
			}
			if v > high {
				high = v
			}
		}
	}
	return low * 0.9, high * 1.1
}
