package plot

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testParams() Params {
	prm := DefaultParams()
	prm.Width = 640
	prm.Height = 480
	prm.DPI = 96
	return prm
}

func assertPNG(t *testing.T, data []byte) {
	t.Helper()
	require.NotEmpty(t, data)
	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Greater(t, cfg.Width, 0)
	assert.Greater(t, cfg.Height, 0)
}

func TestReferenceLimits(t *testing.T) {
	low, high := referenceLimits([]float64{2, 4}, []float64{1, 5})
	assert.InDelta(t, 0.9, low, 1e-9, "0.9 x smallest value across both series")
	assert.InDelta(t, 5.5, high, 1e-9, "1.1 x largest value across both series")

	low, high = referenceLimits([]float64{10}, []float64{10})
	assert.InDelta(t, 9.0, low, 1e-9)
	assert.InDelta(t, 11.0, high, 1e-9)
}

func TestDrawScatter(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	y := []float64{1.1, 1.9, 3.2, 3.8, 5.1}

	data, err := DrawScatter("Scatter plot a vs b", "a", "b", x, y, true, testParams())
	require.NoError(t, err)
	assertPNG(t, data)

	data, err = DrawScatter("Scatter plot a vs b", "a", "b", x, y, false, testParams())
	require.NoError(t, err)
	assertPNG(t, data)
}

func TestDrawScatterEmpty(t *testing.T) {
	_, err := DrawScatter("Scatter plot a vs b", "a", "b", nil, nil, false, testParams())
	assert.Error(t, err)

	_, err = DrawScatter("Scatter plot a vs b", "a", "b", []float64{1, 2}, []float64{1}, false, testParams())
	assert.Error(t, err)
}

func TestDrawHistogram(t *testing.T) {
	values := []float64{1, 1.5, 2, 2.5, 3, 3.5, 4, 4.5, 5, 5.5, 6, 6.5}
	data, err := DrawHistogram("Histogram for mean", values, 0, testParams())
	require.NoError(t, err)
	assertPNG(t, data)
}

func TestHistogramBins(t *testing.T) {
	bins := histogramBins([]float64{1, 1, 2, 2, 3, 3}, 2)
	require.Len(t, bins, 2)
	assert.Equal(t, 2, bins[0].Count)
	assert.Equal(t, 4, bins[1].Count, "max value falls into the last bin")

	bins = histogramBins([]float64{1, 2, 3, 4, 5, 6, 7, 8}, 0)
	assert.Len(t, bins, 4, "Sturges rule: ceil(log2(8)) + 1")

	assert.Nil(t, histogramBins(nil, 0))

	bins = histogramBins([]float64{5, 5, 5}, 0)
	require.Len(t, bins, 1, "constant column collapses to one bin")
	assert.Equal(t, 3, bins[0].Count)
}

func TestDrawBoxplots(t *testing.T) {
	groups := [][]float64{
		{1, 2, 3, 4, 5},
		{2, 3, 4, 5, 6},
		{3, 4, 5, 6, 7},
	}
	data, err := DrawBoxplots("Boxplots for stats", []string{"min", "mean", "max"}, groups, testParams())
	require.NoError(t, err)
	assertPNG(t, data)

	_, err = DrawBoxplots("Boxplots for stats", []string{"min"}, groups, testParams())
	assert.Error(t, err, "categories and groups must match")
}

func TestDrawCombinedBoxplots(t *testing.T) {
	floor := [][]float64{{1, 2, 3}, {2, 3, 4}, {3, 4, 5}}
	ceiling := [][]float64{{1.5, 2.5, 3.5}, {2.5, 3.5, 4.5}, {3.5, 4.5, 5.5}}

	data, err := DrawCombinedBoxplots("Boxplots for Floor vs Ceiling",
		[]string{"min", "mean", "max"}, floor, ceiling, testParams())
	require.NoError(t, err)
	assertPNG(t, data)

	_, err = DrawCombinedBoxplots("Boxplots for Floor vs Ceiling",
		[]string{"min", "mean"}, floor, ceiling, testParams())
	assert.Error(t, err)
}

func TestDrawNamedBars(t *testing.T) {
	names := []string{"room_A", "room_B", "room_C"}
	values := []float64{9.5, 7.2, 4.1}

	data, err := DrawNamedBars("Top 3 best results for mean", names, values, testParams())
	require.NoError(t, err)
	assertPNG(t, data)

	_, err = DrawNamedBars("Top 3 best results for mean", names, values[:2], testParams())
	assert.Error(t, err)
}

func TestCalculateGridStep(t *testing.T) {
	assert.Equal(t, 0.0, calculateGridStep(0))
	assert.InDelta(t, 1.0, calculateGridStep(4), 1e-9)
	assert.InDelta(t, 2.0, calculateGridStep(8), 1e-9)
	assert.InDelta(t, 20.0, calculateGridStep(80), 1e-9)
}
