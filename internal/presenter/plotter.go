package presenter

import (
	"image/color"
	"io"

	"github.com/leo2lion/distribution-law/internal/generator"
	"github.com/leo2lion/distribution-law/pkg/histplotter"
)

// HistogramMarkers maps boundary markers to plot lines: red for the
// truncation bounds, green for the low range, orange for the high range.
func HistogramMarkers(markers []generator.Marker) []histplotter.Marker {
	out := make([]histplotter.Marker, len(markers))
	for i, m := range markers {
		var c color.Color
		switch m.Kind {
		case generator.MarkerLowRange:
			c = histplotter.Green
		case generator.MarkerHighRange:
			c = histplotter.Orange
		default:
			c = histplotter.Red
		}
		out[i] = histplotter.Marker{Label: m.Label, X: m.Value, Color: c}
	}
	return out
}

func GenerateHistogram(outputPath string, values []float64, markers []generator.Marker, opts histplotter.Options) error {
	p, err := histplotter.MakeHistogramPlot(values, HistogramMarkers(markers), opts)
	if err != nil {
		return err
	}
	return histplotter.Save(p, opts, outputPath)
}

func WriteHistogram(w io.Writer, format string, values []float64, markers []generator.Marker, opts histplotter.Options) error {
	p, err := histplotter.MakeHistogramPlot(values, HistogramMarkers(markers), opts)
	if err != nil {
		return err
	}
	return histplotter.Write(w, p, opts, format)
}
