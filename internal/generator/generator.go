// Package generator synthesizes TVL sample sets: a truncated normal base
// population followed by uniformly distributed low and high "power users".
package generator

import (
	"math/rand/v2"
	"slices"

	"github.com/leo2lion/distribution-law/pkg/distrib"
)

// SampleSet is an immutable sequence of deposit amounts laid out as
// base, low, high.
type SampleSet struct {
	values []float64
	nBase  int
	nLow   int
}

func (s *SampleSet) Len() int {
	return len(s.values)
}

func (s *SampleSet) At(i int) float64 {
	return s.values[i]
}

// Values returns a copy of all samples.
func (s *SampleSet) Values() []float64 {
	return slices.Clone(s.values)
}

// Base returns a copy of the truncated normal samples.
func (s *SampleSet) Base() []float64 {
	return slices.Clone(s.values[:s.nBase])
}

// Low returns a copy of the low power-user samples.
func (s *SampleSet) Low() []float64 {
	return slices.Clone(s.values[s.nBase : s.nBase+s.nLow])
}

// High returns a copy of the high power-user samples.
func (s *SampleSet) High() []float64 {
	return slices.Clone(s.values[s.nBase+s.nLow:])
}

// NewSource returns the deterministic source used for a given seed.
func NewSource(seed uint64) rand.Source {
	return rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
}

// Generate draws p.N truncated normal samples, then floor(p.PropLow*p.N)
// samples from the low range and floor(p.PropHigh*p.N) from the high range,
// all from src. The same src state and params always produce the same set.
func Generate(p Params, src rand.Source) (*SampleSet, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		src = NewSource(rand.Uint64())
	}

	base, err := distrib.NewDistribution(distrib.KindNormal, p.Mean, p.StdDev, p.MinValue, p.MaxValue, src)
	if err != nil {
		return nil, err
	}
	low, err := distrib.NewDistribution(distrib.KindUniform, 0, 0, p.LowLo, p.LowHi, src)
	if err != nil {
		return nil, err
	}
	high, err := distrib.NewDistribution(distrib.KindUniform, 0, 0, p.HighLo, p.HighHi, src)
	if err != nil {
		return nil, err
	}

	nLow, nHigh := p.LowCount(), p.HighCount()
	values := make([]float64, p.N+nLow+nHigh)
	base.Fill(values[:p.N])
	low.Fill(values[p.N : p.N+nLow])
	high.Fill(values[p.N+nLow:])

	return &SampleSet{values: values, nBase: p.N, nLow: nLow}, nil
}
