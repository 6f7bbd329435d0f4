package plot

import (
	"bytes"

	"github.com/wcharczuk/go-chart/v2"
	gplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Params holds the rendering defaults that matter for every chart in a batch.
// They are passed explicitly into each draw call instead of living in
// process-wide state, so two batches with different settings cannot leak into
// each other.
type Params struct {
	Width         int // output width, px
	Height        int // output height, px
	DPI           float64
	TitleFontSize float64
	TitlePadding  int // extra space between title and plot area, px
}

func DefaultParams() Params {
	return Params{
		Width:         2048,
		Height:        1228,
		DPI:           300,
		TitleFontSize: 18,
		TitlePadding:  20,
	}
}

func (p Params) background() chart.Style {
	return chart.Style{
		Padding: chart.Box{
			Top:    40 + p.TitlePadding,
			Left:   20,
			Right:  20,
			Bottom: 40,
		},
		FillColor: chart.ColorWhite,
	}
}

// renderGonumPNG draws a gonum plot onto a raster canvas sized so the output
// pixel dimensions match Params regardless of DPI.
func renderGonumPNG(plt *gplot.Plot, prm Params) ([]byte, error) {
	w := vg.Length(float64(prm.Width)/prm.DPI) * vg.Inch
	h := vg.Length(float64(prm.Height)/prm.DPI) * vg.Inch
	canvas := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(int(prm.DPI)))
	plt.Draw(draw.New(canvas))

	buffer := bytes.NewBuffer([]byte{})
	png := vgimg.PngCanvas{Canvas: canvas}
	if _, err := png.WriteTo(buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

func newGonumPlot(title, xLabel, yLabel string, prm Params) *gplot.Plot {
	plt := gplot.New()
	plt.Title.Text = title
	plt.Title.TextStyle.Font.Size = vg.Points(prm.TitleFontSize)
	plt.Title.Padding = vg.Points(float64(prm.TitlePadding))
	plt.X.Label.Text = xLabel
	plt.Y.Label.Text = yLabel
	plt.Add(plotter.NewGrid())
	return plt
}
