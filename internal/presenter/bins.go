package presenter

import (
	"math"
	"slices"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Bin is one equal-width histogram bucket [Min, Max).
type Bin struct {
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Count int     `json:"count"`
}

// Bins counts values into n equal-width buckets spanning their range. The
// last bucket includes the maximum.
func Bins(values []float64, n int) ([]Bin, error) {
	if len(values) == 0 {
		return nil, errors.New("presenter: no values to bin")
	}
	if n <= 0 {
		return nil, errors.Errorf("presenter: bin count must be positive, got %d", n)
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)

	lo, hi := sorted[0], sorted[len(sorted)-1]
	if lo == hi {
		hi = lo + 1
	}
	dividers := floats.Span(make([]float64, n+1), lo, hi)
	dividers[n] = math.Nextafter(hi, math.Inf(1))

	counts := stat.Histogram(nil, dividers, sorted, nil)
	bins := make([]Bin, n)
	for i := range bins {
		bins[i] = Bin{Min: dividers[i], Max: dividers[i+1], Count: int(counts[i])}
	}
	bins[n-1].Max = hi
	return bins, nil
}
