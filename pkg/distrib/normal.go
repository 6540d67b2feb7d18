package distrib

import (
	"math"
	"math/rand/v2"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat/distuv"
)

// minAcceptance is the smallest probability mass of the truncation interval
// for which plain rejection sampling is used.
const minAcceptance = 0.05

// TruncNormal generates normally distributed numbers restricted to the
// closed interval [Low, High].
type TruncNormal struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Low    float64 `json:"low"`
	High   float64 `json:"high"`

	rnd  *rand.Rand
	dist distuv.Normal

	// interval in standard units, mirrored to the non-positive side when the
	// whole interval lies above the mean
	a, b   float64
	flip   bool
	cdfA   float64
	cdfB   float64
	reject bool
}

// NewTruncNormal creates a truncated normal generator drawing entropy from src.
// A nil src uses a randomly seeded source.
func NewTruncNormal(mean, stdDev, low, high float64, src rand.Source) (*TruncNormal, error) {
	p := &TruncNormal{
		Mean:   mean,
		StdDev: stdDev,
		Low:    low,
		High:   high,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	p.rnd = newRand(src)
	p.dist = distuv.Normal{Mu: mean, Sigma: stdDev, Src: p.rnd}

	a, b := p.StandardBounds()
	if a > 0 {
		a, b, p.flip = -b, -a, true
	}
	p.a, p.b = a, b
	p.cdfA = distuv.UnitNormal.CDF(a)
	p.cdfB = distuv.UnitNormal.CDF(b)
	p.reject = p.cdfB-p.cdfA >= minAcceptance
	return p, nil
}

// Validate checks if the parameters are valid.
func (p *TruncNormal) Validate() error {
	for _, v := range []float64{p.Mean, p.StdDev, p.Low, p.High} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.Errorf("distrib: parameters must be finite, got %v", v)
		}
	}
	if p.StdDev <= 0 {
		return errors.New("distrib: std_dev must be positive")
	}
	if p.Low >= p.High {
		return errors.New("distrib: low must be less than high")
	}
	return nil
}

// StandardBounds returns the truncation interval in standard deviation units.
func (p *TruncNormal) StandardBounds() (a, b float64) {
	return (p.Low - p.Mean) / p.StdDev, (p.High - p.Mean) / p.StdDev
}

// Mass is the probability the untruncated normal assigns to [Low, High].
func (p *TruncNormal) Mass() float64 {
	return p.cdfB - p.cdfA
}

// Rand generates one number in [Low, High].
func (p *TruncNormal) Rand() float64 {
	if p.reject {
		for {
			val := p.dist.Rand()
			if val >= p.Low && val <= p.High {
				return val
			}
		}
	}
	return p.clamp(p.Mean + p.StdDev*p.inverse())
}

// inverse samples the standard truncated normal through its quantile
// function. When the interval mass underflows the bound nearest the mean is
// returned.
func (p *TruncNormal) inverse() float64 {
	z := p.b
	if span := p.cdfB - p.cdfA; span > 0 {
		z = distuv.UnitNormal.Quantile(p.cdfA + p.rnd.Float64()*span)
		z = math.Max(p.a, math.Min(p.b, z))
	}
	if p.flip {
		z = -z
	}
	return z
}

func (p *TruncNormal) clamp(v float64) float64 {
	return math.Max(p.Low, math.Min(p.High, v))
}

// Fill fills v with generated numbers.
func (p *TruncNormal) Fill(v []float64) {
	for i := range v {
		v[i] = p.Rand()
	}
}

// RandN generates n numbers in [Low, High].
func (p *TruncNormal) RandN(n int) []float64 {
	r := make([]float64, n)
	p.Fill(r)
	return r
}

func newRand(src rand.Source) *rand.Rand {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return rand.New(src)
}
