package models

// CommonStat is the per-column summary printed after a batch run.
type CommonStat struct {
	Uniq        int64
	Avg         float64
	Min         float64
	Max         float64
	Median      float64
	Quantile001 float64
	Quantile099 float64
}

// LongRow is one observation of the long-form (melted) reshape of a wide
// table: the metric (source column) name and the value it had in one row.
type LongRow struct {
	Metric string
	Value  float64
}
