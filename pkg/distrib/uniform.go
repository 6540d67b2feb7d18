package distrib

import (
	"math"
	"math/rand/v2"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat/distuv"
)

type Uniform struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`

	dist distuv.Uniform
}

// NewUniform creates a generator of numbers uniformly distributed on
// [low, high]. low == high yields the constant low.
func NewUniform(low, high float64, src rand.Source) (*Uniform, error) {
	p := &Uniform{
		Low:  low,
		High: high,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	p.dist = distuv.Uniform{Min: low, Max: high, Src: newRand(src)}
	return p, nil
}

func (p *Uniform) Validate() error {
	if math.IsNaN(p.Low) || math.IsNaN(p.High) || math.IsInf(p.Low, 0) || math.IsInf(p.High, 0) {
		return errors.Errorf("distrib: range must be finite, got [%v, %v]", p.Low, p.High)
	}
	if p.Low > p.High {
		return errors.New("distrib: low must be less than or equal to high")
	}
	return nil
}

func (p *Uniform) Rand() float64 {
	// rounding in Min+u*(Max-Min) may step one ulp past High
	return math.Max(p.Low, math.Min(p.High, p.dist.Rand()))
}

func (p *Uniform) Fill(v []float64) {
	for i := range v {
		v[i] = p.Rand()
	}
}

func (p *Uniform) RandN(n int) []float64 {
	r := make([]float64, n)
	p.Fill(r)
	return r
}
