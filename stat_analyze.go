package main

import (
	"math"
	"sort"

	"github.com/pivolan/corner_plots/domain/models"
)

// analyzeStatistics computes the per-column summary for every numeric column
// in the dataset. NaN padding values are excluded before aggregation.
func analyzeStatistics(d *Dataset) map[string]models.CommonStat {
	stats := map[string]models.CommonStat{}
	for _, name := range d.NumericColumns() {
		col, err := d.Column(name)
		if err != nil {
			continue
		}
		values := make([]float64, 0, len(col))
		for _, v := range col {
			if !math.IsNaN(v) {
				values = append(values, v)
			}
		}
		if len(values) == 0 {
			continue
		}
		sort.Float64s(values)

		sum := 0.0
		uniq := int64(1)
		for i, v := range values {
			sum += v
			if i > 0 && v != values[i-1] {
				uniq++
			}
		}

		stats[name] = models.CommonStat{
			Uniq:        uniq,
			Avg:         sum / float64(len(values)),
			Min:         values[0],
			Max:         values[len(values)-1],
			Median:      quantile(values, 0.5),
			Quantile001: quantile(values, 0.01),
			Quantile099: quantile(values, 0.99),
		}
	}
	return stats
}

// quantile picks the nearest-rank value of a sorted slice.
func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return math.NaN()
	}
	idx := int(math.Round(q * float64(len(sorted)-1)))
	return sorted[idx]
}
