package presenter

import (
	"math"
	"slices"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"
)

// Summary holds the descriptive statistics of a sample set.
type Summary struct {
	Count int     `json:"count"`
	Mean  float64 `json:"mean"`
	Std   float64 `json:"std"`
	Min   float64 `json:"min"`
	Q25   float64 `json:"25%"`
	Q50   float64 `json:"50%"`
	Q75   float64 `json:"75%"`
	Max   float64 `json:"max"`
}

// Row is a labelled summary entry.
type Row struct {
	Label string
	Value float64
}

// Rows lists the summary in display order.
func (s Summary) Rows() []Row {
	return []Row{
		{"count", float64(s.Count)},
		{"mean", s.Mean},
		{"std", s.Std},
		{"min", s.Min},
		{"25%", s.Q25},
		{"50%", s.Q50},
		{"75%", s.Q75},
		{"max", s.Max},
	}
}

// Describe computes count, mean, sample standard deviation, min, quartiles
// and max. The standard deviation of a single value is NaN.
func Describe(values []float64) (Summary, error) {
	if len(values) == 0 {
		return Summary{}, errors.New("presenter: cannot describe an empty sample set")
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)

	mean, std := stat.MeanStdDev(sorted, nil)
	if len(sorted) == 1 {
		std = math.NaN()
	}
	return Summary{
		Count: len(sorted),
		Mean:  mean,
		Std:   std,
		Min:   sorted[0],
		Q25:   quantile(sorted, 0.25),
		Q50:   quantile(sorted, 0.5),
		Q75:   quantile(sorted, 0.75),
		Max:   sorted[len(sorted)-1],
	}, nil
}

// quantile interpolates linearly between the closest ranks (h = (n-1)p).
// gonum's stat.Quantile offers only the empirical and p*n interpolations.
func quantile(sorted []float64, p float64) float64 {
	h := float64(len(sorted)-1) * p
	lo := math.Floor(h)
	i := int(lo)
	if i+1 >= len(sorted) {
		return sorted[i]
	}
	return sorted[i] + (h-lo)*(sorted[i+1]-sorted[i])
}
