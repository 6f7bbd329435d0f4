package plot

import (
	"bytes"
	"fmt"
	"math"

	"github.com/pkg/errors"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

type histogramBin struct {
	Start, End float64
	Count      int
}

// DrawHistogram renders the frequency distribution of one column as a bar
// chart, one bar per bin. Bin count follows the Sturges rule when bins <= 0.
func DrawHistogram(title string, values []float64, bins int, prm Params) ([]byte, error) {
	binned := histogramBins(values, bins)
	if len(binned) == 0 {
		return nil, errors.New("histogram needs at least one value")
	}

	var bars []chart.Value
	maxCount := 0.0
	for _, b := range binned {
		if float64(b.Count) > maxCount {
			maxCount = float64(b.Count)
		}
		bars = append(bars, chart.Value{
			Value: float64(b.Count),
			Label: fmt.Sprintf("%.1f-%.1f", b.Start, b.End),
			Style: chart.Style{
				FillColor: drawing.ColorBlue.WithAlpha(100),
			},
		})
	}

	graph := chart.BarChart{
		Title:      title,
		TitleStyle: chart.Style{FontSize: prm.TitleFontSize},
		Width:      prm.Width,
		Height:     prm.Height,
		DPI:        prm.DPI,
		Background: prm.background(),
		BarWidth:   60,
		Bars:       bars,
		XAxis: chart.Style{
			StrokeWidth:         2,
			StrokeColor:         chart.ColorBlack,
			TextRotationDegrees: 88,
			FontSize:            12,
		},
		YAxis: chart.YAxis{
			Name: "Frequency",
			Range: &chart.ContinuousRange{
				Min: 0.0,
				Max: maxCount,
			},
			Ticks: frequencyTicks(maxCount),
			Style: chart.Style{
				StrokeWidth: 2,
				StrokeColor: chart.ColorBlack,
				FontSize:    12,
			},
			GridMajorStyle: chart.Style{
				StrokeColor:     chart.ColorBlack,
				StrokeWidth:     1,
				StrokeDashArray: []float64{5.0, 5.0},
			},
		},
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, errors.Wrap(err, "error rendering chart")
	}
	return buffer.Bytes(), nil
}

// histogramBins splits values into equal-width bins. NaN values are ignored.
// bins <= 0 selects the Sturges count: ceil(log2(n)) + 1.
func histogramBins(values []float64, bins int) []histogramBin {
	clean := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			clean = append(clean, v)
		}
	}
	if len(clean) == 0 {
		return nil
	}
	if bins <= 0 {
		bins = int(math.Ceil(math.Log2(float64(len(clean))))) + 1
	}

	min, max := clean[0], clean[0]
	for _, v := range clean {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if min == max {
		return []histogramBin{{Start: min, End: max, Count: len(clean)}}
	}

	width := (max - min) / float64(bins)
	out := make([]histogramBin, bins)
	for i := range out {
		out[i].Start = min + float64(i)*width
		out[i].End = out[i].Start + width
	}
	for _, v := range clean {
		idx := int((v - min) / width)
		if idx >= bins {
			idx = bins - 1 // max value falls into the last bin
		}
		out[idx].Count++
	}
	return out
}

func frequencyTicks(maxCount float64) []chart.Tick {
	var ticks []chart.Tick
	step := calculateGridStep(maxCount)
	if step <= 0 {
		return nil
	}
	for i := 0.0; i <= maxCount; i += step {
		ticks = append(ticks, chart.Tick{
			Value: i,
			Label: fmt.Sprintf("%.0f", i),
		})
	}
	return ticks
}

// calculateGridStep picks a round grid step for an axis topping out at
// maxValue, scaling the base steps 0.2/0.5/1/2 by the value's magnitude.
func calculateGridStep(maxValue float64) float64 {
	if maxValue <= 0 {
		return 0
	}
	if maxValue < 1e-10 {
		return 1e-10
	}

	magnitude := math.Pow(10, math.Floor(math.Log10(maxValue)))
	normalized := maxValue / magnitude

	var step float64
	switch {
	case normalized <= 1:
		step = 0.2
	case normalized <= 2:
		step = 0.5
	case normalized <= 5:
		step = 1.0
	default:
		step = 2.0
	}

	finalStep := step * magnitude
	if finalStep >= 1000 {
		return math.Round(finalStep/100) * 100
	}
	if finalStep >= 100 {
		return math.Round(finalStep/10) * 10
	}
	return finalStep
}
