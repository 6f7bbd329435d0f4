package main

import (
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/pivolan/corner_plots/domain/models"
)

// GenerateTable renders the per-column summary as a text table, one row per
// column, columns sorted for stable output.
func GenerateTable(stats map[string]models.CommonStat) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Column", "Uniq", "Avg", "Min", "Max", "Median", "Quantile001", "Quantile099"})

	names := make([]string, 0, len(stats))
	for name := range stats {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		s := stats[name]
		t.AppendRows([]table.Row{
			{name, s.Uniq, s.Avg, s.Min, s.Max, s.Median, s.Quantile001, s.Quantile099},
		})
	}

	t.SetStyle(table.StyleDefault)
	return t.Render()
}
