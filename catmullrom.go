package splines

import (
	"github.com/tphakala/go-spline-kernels/internal/kernel"
)

// catmullRom is the Catmull-Rom interpolation kernel: a fixed cubic kernel
// of radius 2 that interpolates sample values directly. It is not a member
// of the B-spline family: it has no derivative support and needs no
// prefiltering.
type catmullRom struct{}

// NewCatmullRom returns the Catmull-Rom kernel.
//
// Unlike the B-spline kernels it reproduces the input samples without a
// prefilter pass, at the cost of a less smooth reconstruction (the result
// is C¹, not C²). DerivativeOrder always reports 0 and Derivative ignores
// the extra derivative order.
func NewCatmullRom() Kernel {
	return catmullRom{}
}

func (catmullRom) Order() int           { return 3 }
func (catmullRom) Radius() float64      { return 2.0 }
func (catmullRom) DerivativeOrder() int { return 0 }

func (catmullRom) At(x float64) float64 {
	return kernel.EvalCatmullRom(x)
}

func (catmullRom) Derivative(x float64, extra int) float64 {
	return kernel.EvalCatmullRom(x)
}

// PrefilterCoefficients returns a single zero entry: the Catmull-Rom
// kernel is interpolating, so the prefilter is the identity.
func (catmullRom) PrefilterCoefficients() []float64 {
	return []float64{0.0}
}

// Weights returns the weight matrix of the underlying cubic polynomial
// order. Only row 0 is meaningful since the kernel reports derivative
// order 0.
func (catmullRom) Weights() [][]float64 {
	w := make([][]float64, 4)
	x := 1.0
	for range 4 {
		w[0] = append(w[0], kernel.EvalCatmullRom(x))
		x--
	}
	for d := 1; d < 4; d++ {
		w[d] = make([]float64, 4)
	}
	return w
}
