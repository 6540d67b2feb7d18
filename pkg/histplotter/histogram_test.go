package histplotter

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func testMarkers() []Marker {
	return []Marker{
		{Label: "Min Value", X: 0, Color: Red},
		{Label: "Max Value", X: 10, Color: Red},
	}
}

func TestMakeHistogramPlot(t *testing.T) {
	values := []float64{1, 2, 2, 3, 3, 3, 4, 4, 5, 9}
	opts := DefaultOptions()
	opts.Bins = 5
	opts.Smooth = true

	p, err := MakeHistogramPlot(values, testMarkers(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if p.Title.Text != opts.Title {
		t.Errorf("expected title %q, got %q", opts.Title, p.Title.Text)
	}

	var buf bytes.Buffer
	if err := Write(&buf, p, opts, "png"); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Error("expected PNG output")
	}
}

func TestMakeHistogramPlotEmpty(t *testing.T) {
	if _, err := MakeHistogramPlot(nil, nil, DefaultOptions()); err == nil {
		t.Error("expected error for empty values")
	}
}

func TestSave(t *testing.T) {
	p, err := MakeHistogramPlot([]float64{1, 2, 3}, testMarkers(), DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	name := filepath.Join(t.TempDir(), "hist.svg")
	if err := Save(p, DefaultOptions(), name); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte("<svg")) {
		t.Error("expected SVG document")
	}
}

// TestBarsAreBlue decodes a rendered PNG and counts pixels inside bars that
// keep the blue fill.
func TestBarsAreBlue(t *testing.T) {
	values := make([]float64, 0, 100)
	for i := 0; i < 100; i++ {
		values = append(values, float64(i%5))
	}
	opts := DefaultOptions()
	opts.Bins = 5

	p, err := MakeHistogramPlot(values, nil, opts)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := Write(&buf, p, opts, "png"); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}

	blue := 0
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			if b>>8 > 200 && r>>8 < 150 && g>>8 < 150 {
				blue++
			}
		}
	}
	if blue < 1000 {
		t.Errorf("expected blue bars, found %d blue pixels", blue)
	}
}
