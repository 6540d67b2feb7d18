package histplotter

import (
	"image/color"
	"io"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/leo2lion/distribution-law/pkg/smooth"
)

var (
	Red    = color.RGBA{R: 255, A: 255}
	Green  = color.RGBA{G: 128, A: 255}
	Orange = color.RGBA{R: 255, G: 165, A: 255}

	barColor = color.NRGBA{B: 255, A: 179}
)

// Marker is a dashed vertical line with a legend entry.
type Marker struct {
	Label string
	X     float64
	Color color.Color
}

type Options struct {
	Title  string
	XLabel string
	YLabel string
	Bins   int

	Width, Height vg.Length

	// Smooth overlays the bin counts smoothed with a Gaussian of
	// SmoothSigma bins.
	Smooth      bool
	SmoothSigma float64
}

func DefaultOptions() Options {
	return Options{
		Title:       "Normal Distribution of TVL Deposits per User",
		XLabel:      "Deposit Amount ($)",
		YLabel:      "Frequency",
		Bins:        100,
		Width:       10 * vg.Inch,
		Height:      6 * vg.Inch,
		SmoothSigma: 2,
	}
}

// MakeHistogramPlot builds the histogram of values with one dashed line per
// marker spanning the tallest bar.
func MakeHistogramPlot(values []float64, markers []Marker, opts Options) (*plot.Plot, error) {
	if len(values) == 0 {
		return nil, errors.New("histplotter: no values to plot")
	}
	if opts.Bins <= 0 {
		opts.Bins = DefaultOptions().Bins
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = opts.XLabel
	p.Y.Label.Text = opts.YLabel

	h, err := plotter.NewHist(plotter.Values(values), opts.Bins)
	if err != nil {
		return nil, errors.Wrap(err, "histplotter: binning values")
	}
	h.FillColor = barColor
	h.LineStyle.Color = color.Black
	h.LineStyle.Width = vg.Points(0.5)
	p.Add(h)

	top := 0.0
	counts := make([]float64, len(h.Bins))
	for i, b := range h.Bins {
		counts[i] = b.Weight
		top = max(top, b.Weight)
	}

	if opts.Smooth && opts.SmoothSigma > 0 {
		k := smooth.NewGaussianKernel(opts.SmoothSigma, int(6*opts.SmoothSigma)+1)
		smoothed := k.Convolve(counts)
		xys := make(plotter.XYs, len(h.Bins))
		for i, b := range h.Bins {
			xys[i].X = (b.Min + b.Max) / 2
			xys[i].Y = smoothed[i]
		}
		l, err := plotter.NewLine(xys)
		if err != nil {
			return nil, errors.Wrap(err, "histplotter: smoothed line")
		}
		l.Color = color.Black
		l.Width = vg.Points(1.5)
		p.Add(l)
		p.Legend.Add("Smoothed", l)
	}

	for _, m := range markers {
		l, err := plotter.NewLine(plotter.XYs{{X: m.X, Y: 0}, {X: m.X, Y: top}})
		if err != nil {
			return nil, errors.Wrapf(err, "histplotter: marker %q", m.Label)
		}
		l.Color = m.Color
		l.Width = vg.Points(1.5)
		l.Dashes = []vg.Length{vg.Points(6), vg.Points(4)}
		p.Add(l)
		p.Legend.Add(m.Label, l)
	}
	p.Legend.Top = true

	return p, nil
}

// Save writes p to filename; the format follows the extension
// (png, jpg, svg, pdf, eps, tif).
func Save(p *plot.Plot, opts Options, filename string) error {
	return p.Save(opts.Width, opts.Height, filename)
}

// Write renders p in the given format ("png", "svg", "pdf", ...) to w.
func Write(w io.Writer, p *plot.Plot, opts Options, format string) error {
	wt, err := p.WriterTo(opts.Width, opts.Height, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}
