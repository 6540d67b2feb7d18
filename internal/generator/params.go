package generator

import (
	"errors"
	"math"

	pkgerrors "github.com/pkg/errors"
)

// ErrInvalidParameter is returned when the generator parameters are
// inconsistent.
var ErrInvalidParameter = errors.New("invalid parameter")

// Range is a closed interval [Lo, Hi].
type Range struct {
	Lo float64 `json:"lo"`
	Hi float64 `json:"hi"`
}

// Contains reports whether v lies in the closed interval.
func (r Range) Contains(v float64) bool {
	return v >= r.Lo && v <= r.Hi
}

// Params configures a single generation.
type Params struct {
	N        int     `json:"n" mapstructure:"n"`
	Mean     float64 `json:"mean" mapstructure:"mean"`
	StdDev   float64 `json:"std" mapstructure:"std"`
	MinValue float64 `json:"min" mapstructure:"min"`
	MaxValue float64 `json:"max" mapstructure:"max"`

	// Proportions of n added as uniform "power user" samples.
	PropLow  float64 `json:"prop_low" mapstructure:"prop_low"`
	PropHigh float64 `json:"prop_high" mapstructure:"prop_high"`

	LowLo  float64 `json:"low_lo" mapstructure:"low_lo"`
	LowHi  float64 `json:"low_hi" mapstructure:"low_hi"`
	HighLo float64 `json:"high_lo" mapstructure:"high_lo"`
	HighHi float64 `json:"high_hi" mapstructure:"high_hi"`
}

func (p Params) LowRange() Range {
	return Range{Lo: p.LowLo, Hi: p.LowHi}
}

func (p Params) HighRange() Range {
	return Range{Lo: p.HighLo, Hi: p.HighHi}
}

// Bounds returns the truncation interval [MinValue, MaxValue].
func (p Params) Bounds() Range {
	return Range{Lo: p.MinValue, Hi: p.MaxValue}
}

// LowCount is floor(PropLow * N).
func (p Params) LowCount() int {
	return int(math.Floor(p.PropLow * float64(p.N)))
}

// HighCount is floor(PropHigh * N).
func (p Params) HighCount() int {
	return int(math.Floor(p.PropHigh * float64(p.N)))
}

// Total is the length of the sample set p produces.
func (p Params) Total() int {
	return p.N + p.LowCount() + p.HighCount()
}

// Validate checks the parameters and returns an error wrapping
// ErrInvalidParameter on the first violation.
func (p Params) Validate() error {
	fields := []struct {
		name string
		v    float64
	}{
		{"mean", p.Mean},
		{"std", p.StdDev},
		{"min", p.MinValue},
		{"max", p.MaxValue},
		{"prop_low", p.PropLow},
		{"prop_high", p.PropHigh},
		{"low_lo", p.LowLo},
		{"low_hi", p.LowHi},
		{"high_lo", p.HighLo},
		{"high_hi", p.HighHi},
	}
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return pkgerrors.Wrapf(ErrInvalidParameter, "%s must be finite, got %v", f.name, f.v)
		}
	}

	switch {
	case p.N <= 0:
		return pkgerrors.Wrapf(ErrInvalidParameter, "n must be positive, got %d", p.N)
	case p.StdDev <= 0:
		return pkgerrors.Wrapf(ErrInvalidParameter, "std must be positive, got %v", p.StdDev)
	case p.MinValue >= p.MaxValue:
		return pkgerrors.Wrapf(ErrInvalidParameter, "min %v must be less than max %v", p.MinValue, p.MaxValue)
	case p.PropLow < 0 || p.PropLow > 1:
		return pkgerrors.Wrapf(ErrInvalidParameter, "prop_low must be in [0, 1], got %v", p.PropLow)
	case p.PropHigh < 0 || p.PropHigh > 1:
		return pkgerrors.Wrapf(ErrInvalidParameter, "prop_high must be in [0, 1], got %v", p.PropHigh)
	case p.LowLo > p.LowHi:
		return pkgerrors.Wrapf(ErrInvalidParameter, "low range [%v, %v] is reversed", p.LowLo, p.LowHi)
	case p.HighLo > p.HighHi:
		return pkgerrors.Wrapf(ErrInvalidParameter, "high range [%v, %v] is reversed", p.HighLo, p.HighHi)
	}
	return nil
}
