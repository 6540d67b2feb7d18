package presenter

import (
	"io"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/pkg/errors"
)

// PrintTerminalHistogram draws values as horizontal bars at most width
// characters wide.
func PrintTerminalHistogram(w io.Writer, values []float64, bins, width int) error {
	if len(values) == 0 {
		return errors.New("presenter: no values to draw")
	}
	hist := histogram.Hist(bins, values)
	return histogram.Fprint(w, hist, histogram.Linear(width))
}
