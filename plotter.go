package main

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mozillazg/go-unidecode"
	pkgerrors "github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/pivolan/corner_plots/domain/models"
	"github.com/pivolan/corner_plots/plot"
)

const checkTimeout = 5 * time.Second

var (
	floorColumns   = []string{"floor_min", "floor_mean", "floor_max"}
	ceilingColumns = []string{"ceiling_min", "ceiling_mean", "ceiling_max"}
)

// Plotter generates the fixed battery of statistical charts from a JSON
// dataset hosted at a URL, writing one PNG per chart under PlotDir.
type Plotter struct {
	// Params are the rendering defaults applied to every chart.
	Params plot.Params
	// Report enables writing an interactive HTML report next to the PNGs
	// after a successful batch.
	Report bool

	plotDir     string
	checkClient *http.Client
	fetchClient *http.Client
}

// NewPlotter creates the plot output directory if absent. Existing files with
// the same names are overwritten on the next batch; there is no versioning.
func NewPlotter(plotDir string) (*Plotter, error) {
	if err := os.MkdirAll(plotDir, 0755); err != nil {
		return nil, pkgerrors.Wrapf(err, "create plot dir %s", plotDir)
	}
	return &Plotter{
		Params:      plot.DefaultParams(),
		plotDir:     plotDir,
		checkClient: &http.Client{Timeout: checkTimeout},
		fetchClient: &http.Client{},
	}, nil
}

// CheckURL issues a lightweight HEAD probe and reports whether the resource
// responded with a success status. Failures are logged, never returned.
func (p *Plotter) CheckURL(rawURL string) bool {
	resp, err := p.checkClient.Head(rawURL)
	if err != nil {
		log.WithError(err).Error("failed to connect to URL")
		return false
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.WithField("status", resp.Status).Error("failed to connect to URL")
		return false
	}
	return true
}

// chartOp is one entry of the fixed batch: a human-readable name for
// diagnostics and the operation producing a written file path.
type chartOp struct {
	name   string
	render func(*Dataset) (string, error)
}

// batch is the fixed, ordered list of chart operations executed per
// invocation. Keeping it declarative lets tests drive it deterministically
// and leaves room for a per-op error-isolation policy later.
func (p *Plotter) batch() []chartOp {
	return []chartOp{
		{"scatter gt_corners vs rb_corners", func(d *Dataset) (string, error) {
			return p.drawScatterplot(d, "gt_corners", "rb_corners", true)
		}},
		{"scatter gt_corners vs mean", func(d *Dataset) (string, error) {
			return p.drawScatterplot(d, "gt_corners", "mean", false)
		}},
		{"scatter floor_mean vs ceiling_mean", func(d *Dataset) (string, error) {
			return p.drawScatterplot(d, "floor_mean", "ceiling_mean", false)
		}},
		{"histogram mean", func(d *Dataset) (string, error) {
			return p.drawHistogram(d, "mean")
		}},
		{"histogram floor_mean", func(d *Dataset) (string, error) {
			return p.drawHistogram(d, "floor_mean")
		}},
		{"histogram ceiling_mean", func(d *Dataset) (string, error) {
			return p.drawHistogram(d, "ceiling_mean")
		}},
		{"boxplots stats", func(d *Dataset) (string, error) {
			return p.drawBoxplots(d, []string{"min", "mean", "max"}, "stats")
		}},
		{"boxplots means", func(d *Dataset) (string, error) {
			return p.drawBoxplots(d, []string{"mean", "floor_mean", "ceiling_mean"}, "means")
		}},
		{"boxplots floor stats", func(d *Dataset) (string, error) {
			return p.drawBoxplots(d, floorColumns, "floor stats")
		}},
		{"boxplots ceiling stats", func(d *Dataset) (string, error) {
			return p.drawBoxplots(d, ceilingColumns, "ceiling stats")
		}},
		{"combined boxplots floor vs ceiling", func(d *Dataset) (string, error) {
			return p.drawCombinedBoxplots(d, floorColumns, ceilingColumns, "Floor vs Ceiling")
		}},
		{"top 10 best mean", func(d *Dataset) (string, error) {
			return p.drawTopBottom(d, "mean", 10, true)
		}},
		{"top 10 worst mean", func(d *Dataset) (string, error) {
			return p.drawTopBottom(d, "mean", 10, false)
		}},
	}
}

// DrawPlots runs the whole batch against the dataset at rawURL and returns
// the paths written. An unreachable URL or malformed body yields an empty
// slice; a failed chart operation stops the batch at that point and returns
// what was produced so far. Errors only surface in the log.
func (p *Plotter) DrawPlots(rawURL string) []string {
	if !p.CheckURL(rawURL) {
		log.Error("URL is not accessible")
		return []string{}
	}

	body, err := fetchDataset(p.fetchClient, rawURL)
	if err != nil {
		log.WithError(err).Error("failed to fetch dataset")
		return []string{}
	}
	dataset, err := ParseDataset(body)
	if err != nil {
		log.WithError(err).Error("failed to read JSON")
		return []string{}
	}

	paths := []string{}
	for _, op := range p.batch() {
		path, err := op.render(dataset)
		if err != nil {
			if errors.Is(err, ErrMissingColumn) {
				log.WithError(err).Errorf("failed to draw plot %s: dataset column missing", op.name)
			} else {
				log.WithError(err).Errorf("failed to draw plot %s", op.name)
			}
			break
		}
		paths = append(paths, path)
	}

	fmt.Println(GenerateTable(analyzeStatistics(dataset)))

	if p.Report && len(paths) > 0 {
		reportPath, err := writeHTMLReport(dataset, p.plotDir)
		if err != nil {
			log.WithError(err).Error("failed to write html report")
		} else {
			log.WithField("path", reportPath).Info("html report written")
		}
	}
	return paths
}

func (p *Plotter) drawScatterplot(d *Dataset, x, y string, addLine bool) (string, error) {
	xValues, err := d.Column(x)
	if err != nil {
		return "", err
	}
	yValues, err := d.Column(y)
	if err != nil {
		return "", err
	}
	title := fmt.Sprintf("Scatter plot %s vs %s", x, y)
	png, err := plot.DrawScatter(title, x, y, xValues, yValues, addLine, p.Params)
	if err != nil {
		return "", err
	}
	return p.savePlot(title, png)
}

func (p *Plotter) drawHistogram(d *Dataset, column string) (string, error) {
	values, err := d.Column(column)
	if err != nil {
		return "", err
	}
	title := fmt.Sprintf("Histogram for %s", column)
	png, err := plot.DrawHistogram(title, values, 0, p.Params)
	if err != nil {
		return "", err
	}
	return p.savePlot(title, png)
}

func (p *Plotter) drawBoxplots(d *Dataset, columns []string, label string) (string, error) {
	long, err := d.Melt(columns)
	if err != nil {
		return "", err
	}
	title := fmt.Sprintf("Boxplots for %s", label)
	png, err := plot.DrawBoxplots(title, columns, groupLongRows(long, columns), p.Params)
	if err != nil {
		return "", err
	}
	return p.savePlot(title, png)
}

func (p *Plotter) drawCombinedBoxplots(d *Dataset, columns1, columns2 []string, label string) (string, error) {
	floorLong, err := d.Melt(columns1)
	if err != nil {
		return "", err
	}
	ceilingLong, err := d.Melt(columns2)
	if err != nil {
		return "", err
	}

	// Strip the group prefixes so paired metrics land on the same category.
	categories := make([]string, len(columns1))
	for i, c := range columns1 {
		categories[i] = stripMetricPrefix(c)
	}
	for _, rows := range [][]models.LongRow{floorLong, ceilingLong} {
		for i := range rows {
			rows[i].Metric = stripMetricPrefix(rows[i].Metric)
		}
	}

	title := fmt.Sprintf("Boxplots for %s", label)
	png, err := plot.DrawCombinedBoxplots(title, categories,
		groupLongRows(floorLong, categories),
		groupLongRows(ceilingLong, categories),
		p.Params)
	if err != nil {
		return "", err
	}
	return p.savePlot(title, png)
}

func (p *Plotter) drawTopBottom(d *Dataset, column string, cnt int, top bool) (string, error) {
	names, values, err := d.TopN(column, cnt, top)
	if err != nil {
		return "", err
	}
	order := "best"
	if !top {
		order = "worst"
	}
	title := fmt.Sprintf("Top %d %s results for %s", cnt, order, column)
	png, err := plot.DrawNamedBars(title, names, values, p.Params)
	if err != nil {
		return "", err
	}
	return p.savePlot(title, png)
}

func (p *Plotter) savePlot(title string, png []byte) (string, error) {
	path := filepath.Join(p.plotDir, sanitizeFilename(title)+".png")
	if err := os.WriteFile(path, png, 0644); err != nil {
		return "", pkgerrors.Wrapf(err, "save plot %s", title)
	}
	return path, nil
}

// groupLongRows folds the long-form rows back into one value slice per
// category, in category order.
func groupLongRows(long []models.LongRow, categories []string) [][]float64 {
	byMetric := map[string][]float64{}
	for _, row := range long {
		byMetric[row.Metric] = append(byMetric[row.Metric], row.Value)
	}
	groups := make([][]float64, len(categories))
	for i, c := range categories {
		groups[i] = byMetric[c]
	}
	return groups
}

func stripMetricPrefix(metric string) string {
	metric = strings.TrimPrefix(metric, "floor_")
	return strings.TrimPrefix(metric, "ceiling_")
}

// sanitizeFilename turns a chart title into a safe filename: transliterate to
// ASCII, then replace spaces with underscores.
func sanitizeFilename(title string) string {
	return strings.ReplaceAll(unidecode.Unidecode(title), " ", "_")
}
