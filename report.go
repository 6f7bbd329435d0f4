package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
)

// writeHTMLReport renders an interactive companion to the PNG batch: the
// corner-count scatter and the top-10 bar chart as browsable echarts. The
// report is the optional presentation side of a run, the PNGs stay the
// canonical output. Charts whose columns are missing are simply left out.
func writeHTMLReport(d *Dataset, dir string) (string, error) {
	page := components.NewPage()
	page.PageTitle = "corner_plots report"

	if scatter := reportScatter(d); scatter != nil {
		page.AddCharts(scatter)
	}
	if bar := reportTopBar(d); bar != nil {
		page.AddCharts(bar)
	}

	path := filepath.Join(dir, fmt.Sprintf("report_%s.html", uuid.NewV4()))
	f, err := os.Create(path)
	if err != nil {
		return "", errors.Wrap(err, "create report file")
	}
	defer f.Close()
	if err := page.Render(f); err != nil {
		return "", errors.Wrap(err, "render report")
	}
	return path, nil
}

func reportScatter(d *Dataset) *charts.Scatter {
	gt, err := d.Column("gt_corners")
	if err != nil {
		return nil
	}
	rb, err := d.Column("rb_corners")
	if err != nil {
		return nil
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Scatter plot gt_corners vs rb_corners"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "gt_corners"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "rb_corners"}),
	)
	items := make([]opts.ScatterData, 0, len(gt))
	for i := range gt {
		items = append(items, opts.ScatterData{Value: []interface{}{gt[i], rb[i]}})
	}
	scatter.AddSeries("rb_corners", items)
	return scatter
}

func reportTopBar(d *Dataset) *charts.Bar {
	names, values, err := d.TopN("mean", 10, true)
	if err != nil {
		return nil
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Top 10 best results for mean"}),
	)
	items := make([]opts.BarData, 0, len(values))
	for _, v := range values {
		items = append(items, opts.BarData{Value: v})
	}
	bar.SetXAxis(names).AddSeries("mean", items)
	return bar
}
