package smooth

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

type Kernel struct {
	weights []float64
}

// NewGaussianKernel builds a normalized Gaussian kernel of the given odd
// size. Even sizes are widened by one.
func NewGaussianKernel(sigma float64, size int) *Kernel {
	if size%2 == 0 {
		size++
	}
	weights := make([]float64, size)

	// центр ядра
	center := float64(size-1) / 2.0
	for i := range weights {
		x := float64(i) - center
		weights[i] = math.Exp(-(x * x) / (2 * sigma * sigma))
	}
	floats.Scale(1/floats.Sum(weights), weights)

	return &Kernel{weights}
}

func (k *Kernel) Weights() []float64 {
	return append([]float64(nil), k.weights...)
}

// pad surrounds input with zeros
func pad(input []float64, padding int) []float64 {
	padded := make([]float64, len(input)+2*padding)
	copy(padded[padding:], input)
	return padded
}

// Convolve returns input convolved with the kernel, same length as input.
// Values beyond the edges are treated as zero.
func (k *Kernel) Convolve(input []float64) []float64 {
	padding := len(k.weights) / 2
	padded := pad(input, padding)

	output := make([]float64, len(input))
	for i := range output {
		output[i] = floats.Dot(padded[i:i+len(k.weights)], k.weights)
	}
	return output
}
