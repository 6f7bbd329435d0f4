package main

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecords(n int) []map[string]interface{} {
	records := make([]map[string]interface{}, 0, n)
	for i := 0; i < n; i++ {
		v := float64(i + 1)
		records = append(records, map[string]interface{}{
			"name":         "room_" + string(rune('A'+i)),
			"gt_corners":   v,
			"rb_corners":   v + 0.5,
			"mean":         v * 2,
			"min":          v - 1,
			"max":          v + 1,
			"floor_min":    v - 0.5,
			"floor_mean":   v,
			"floor_max":    v + 0.5,
			"ceiling_min":  v - 0.25,
			"ceiling_mean": v + 0.25,
			"ceiling_max":  v + 0.75,
		})
	}
	return records
}

func testDatasetJSON(t *testing.T, n int) []byte {
	t.Helper()
	body, err := json.Marshal(testRecords(n))
	require.NoError(t, err)
	return body
}

func TestParseDataset(t *testing.T) {
	d, err := ParseDataset(testDatasetJSON(t, 3))
	require.NoError(t, err)
	assert.Equal(t, 3, d.Rows())

	mean, err := d.Column("mean")
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 4, 6}, mean)

	names, err := d.TextColumn("name")
	require.NoError(t, err)
	assert.Equal(t, []string{"room_A", "room_B", "room_C"}, names)
}

func TestParseDatasetMalformed(t *testing.T) {
	_, err := ParseDataset([]byte("not json at all"))
	assert.Error(t, err)

	_, err = ParseDataset([]byte(`{"a": 1}`))
	assert.Error(t, err, "a single object is not a table")
}

func TestColumnMissing(t *testing.T) {
	d, err := ParseDataset(testDatasetJSON(t, 2))
	require.NoError(t, err)

	_, err = d.Column("no_such_column")
	assert.True(t, errors.Is(err, ErrMissingColumn))
	assert.Contains(t, err.Error(), "no_such_column")

	_, err = d.TextColumn("no_such_column")
	assert.True(t, errors.Is(err, ErrMissingColumn))
}

func TestParseDatasetPadsMissingValues(t *testing.T) {
	body := []byte(`[{"mean": 1, "name": "a"}, {"name": "b"}, {"mean": 3}]`)
	d, err := ParseDataset(body)
	require.NoError(t, err)

	mean, err := d.Column("mean")
	require.NoError(t, err)
	require.Len(t, mean, 3)
	assert.Equal(t, 1.0, mean[0])
	assert.True(t, mean[1] != mean[1], "missing numeric value should be NaN")
	assert.Equal(t, 3.0, mean[2])

	names, err := d.TextColumn("name")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", ""}, names)
}

func TestMelt(t *testing.T) {
	d, err := ParseDataset(testDatasetJSON(t, 2))
	require.NoError(t, err)

	long, err := d.Melt([]string{"min", "mean", "max"})
	require.NoError(t, err)
	require.Len(t, long, 6, "one row per original-row x column")

	assert.Equal(t, "min", long[0].Metric)
	assert.Equal(t, 0.0, long[0].Value)
	assert.Equal(t, "mean", long[2].Metric)
	assert.Equal(t, "max", long[4].Metric)

	_, err = d.Melt([]string{"min", "missing"})
	assert.True(t, errors.Is(err, ErrMissingColumn))
}

func TestTopN(t *testing.T) {
	d, err := ParseDataset(testDatasetJSON(t, 12))
	require.NoError(t, err)

	names, values, err := d.TopN("mean", 10, true)
	require.NoError(t, err)
	require.Len(t, values, 10)
	assert.Equal(t, 24.0, values[0], "largest mean first")
	assert.Equal(t, "room_L", names[0])
	assert.Equal(t, 6.0, values[9])

	names, values, err = d.TopN("mean", 10, false)
	require.NoError(t, err)
	require.Len(t, values, 10)
	assert.Equal(t, 2.0, values[0], "smallest mean first")
	assert.Equal(t, "room_A", names[0])
	assert.Equal(t, 20.0, values[9])
}

func TestTopNShortTable(t *testing.T) {
	d, err := ParseDataset(testDatasetJSON(t, 3))
	require.NoError(t, err)

	names, values, err := d.TopN("mean", 10, true)
	require.NoError(t, err)
	assert.Len(t, names, 3)
	assert.Len(t, values, 3)
}
