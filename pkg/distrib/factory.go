package distrib

import (
	"math/rand/v2"

	"github.com/pkg/errors"
)

// Sampler is a source of random numbers following some distribution.
type Sampler interface {
	Rand() float64
	RandN(n int) []float64
	Fill(v []float64)
}

type Kind int

const (
	KindNormal Kind = iota
	KindUniform
)

func (k Kind) String() string {
	switch k {
	case KindNormal:
		return "normal"
	case KindUniform:
		return "uniform"
	default:
		return "unknown"
	}
}

// NewDistribution returns a truncated normal on [low, high] for KindNormal
// and a uniform on [low, high] for KindUniform. mean and stdDev are ignored
// by the uniform.
func NewDistribution(kind Kind, mean, stdDev, low, high float64, src rand.Source) (Sampler, error) {
	switch kind {
	case KindNormal:
		return NewTruncNormal(mean, stdDev, low, high, src)
	case KindUniform:
		return NewUniform(low, high, src)
	default:
		return nil, errors.Errorf("distrib: unsupported distribution kind %d", int(kind))
	}
}
