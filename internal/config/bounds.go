package config

import (
	"errors"

	pkgerrors "github.com/pkg/errors"

	"github.com/leo2lion/distribution-law/internal/generator"
)

// ErrOutOfBounds is returned when a parameter leaves the range the input
// surface allows.
var ErrOutOfBounds = errors.New("parameter out of bounds")

// ErrMalformed is returned when a form value cannot be parsed.
var ErrMalformed = errors.New("malformed parameter")

const (
	MinN       = 100
	MaxN       = 100000
	MaxMean    = 500000
	MinStd     = 1000
	MaxStd     = 100000
	MaxValue   = 1000000
	MaxLowEnd  = 100000
	MinHighEnd = 100000
	MaxBins    = 1000
)

type bound struct {
	name   string
	v      float64
	lo, hi float64
}

// CheckBounds enforces the input-surface limits: n in
// [100, 100000], mean in [0, 500000], std in [1000, 100000], min in
// [0, mean], max in [mean, 1000000], proportions in [0, 1], the low range
// within [0, 100000] and the high range within [100000, 1000000].
func CheckBounds(p generator.Params) error {
	bounds := []bound{
		{"n", float64(p.N), MinN, MaxN},
		{"mean", p.Mean, 0, MaxMean},
		{"std", p.StdDev, MinStd, MaxStd},
		{"min", p.MinValue, 0, p.Mean},
		{"max", p.MaxValue, p.Mean, MaxValue},
		{"prop_low", p.PropLow, 0, 1},
		{"prop_high", p.PropHigh, 0, 1},
		{"low_lo", p.LowLo, 0, MaxLowEnd},
		{"low_hi", p.LowHi, 0, MaxLowEnd},
		{"high_lo", p.HighLo, MinHighEnd, MaxValue},
		{"high_hi", p.HighHi, MinHighEnd, MaxValue},
	}
	for _, b := range bounds {
		// written so that NaN fails
		if !(b.v >= b.lo && b.v <= b.hi) {
			return pkgerrors.Wrapf(ErrOutOfBounds, "%s must be in [%v, %v], got %v", b.name, b.lo, b.hi, b.v)
		}
	}
	return nil
}
