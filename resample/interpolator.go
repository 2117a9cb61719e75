package resample

import (
	"fmt"
	"math"

	"github.com/tphakala/simd/f64"

	splines "github.com/tphakala/go-spline-kernels"
)

// Interpolator reconstructs a continuous signal from uniformly spaced
// samples using a spline kernel. The samples are prefiltered once at
// construction; every At call is then a short dot product over the
// coefficient window.
//
// Positions outside [0, n-1] are evaluated against the mirror extension
// of the signal, matching the boundary condition of the prefilter.
//
// An Interpolator reuses internal tap buffers between calls and is not
// safe for concurrent use; create one per goroutine.
type Interpolator struct {
	kernel splines.Kernel
	coeffs []float64
	radius float64

	// scratch windows for the tap dot product
	taps   []float64
	window []float64
}

// NewInterpolator creates an interpolator over the given samples. The
// input slice is copied and prefiltered; it is not retained.
func NewInterpolator(samples []float64, k splines.Kernel) (*Interpolator, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("%w: no samples to interpolate", ErrEmptyInput)
	}

	coeffs := append([]float64(nil), samples...)
	Prefilter(coeffs, k.PrefilterCoefficients())

	width := 2*int(math.Ceil(k.Radius())) + 1
	return &Interpolator{
		kernel: k,
		coeffs: coeffs,
		radius: k.Radius(),
		taps:   make([]float64, 0, width),
		window: make([]float64, 0, width),
	}, nil
}

// Len returns the number of samples the interpolator was built from.
func (ip *Interpolator) Len() int {
	return len(ip.coeffs)
}

// Kernel returns the interpolation kernel in use.
func (ip *Interpolator) Kernel() splines.Kernel {
	return ip.kernel
}

// At evaluates the interpolated signal at position x (in sample units,
// sample i sitting at position i).
func (ip *Interpolator) At(x float64) float64 {
	lo := int(math.Ceil(x - ip.radius))
	hi := int(math.Floor(x + ip.radius))

	ip.taps = ip.taps[:0]
	ip.window = ip.window[:0]
	for k := lo; k <= hi; k++ {
		ip.taps = append(ip.taps, ip.kernel.At(x-float64(k)))
		ip.window = append(ip.window, ip.coeffs[mirrorIndex(k, len(ip.coeffs))])
	}
	return f64.DotProductUnsafe(ip.window, ip.taps)
}

// Derivative evaluates the d-th derivative of the interpolated signal at
// position x. Derivative orders above the kernel order yield exactly 0.0.
func (ip *Interpolator) Derivative(x float64, d int) float64 {
	lo := int(math.Ceil(x - ip.radius))
	hi := int(math.Floor(x + ip.radius))

	var sum float64
	for k := lo; k <= hi; k++ {
		sum += ip.coeffs[mirrorIndex(k, len(ip.coeffs))] * ip.kernel.Derivative(x-float64(k), d)
	}
	return sum
}

// TaylorCoefficients returns the local Taylor coefficients of the spline
// around the integer position center, computed by applying the kernel's
// weight matrix to the coefficient window: entry d is the d-th derivative
// at center divided by d!.
func (ip *Interpolator) TaylorCoefficients(center int) []float64 {
	order := ip.kernel.Order()
	weights := ip.kernel.Weights()

	taylor := make([]float64, order+1)
	for d := 0; d <= order; d++ {
		var sum float64
		for i := 0; i <= order; i++ {
			sum += weights[d][i] * ip.coeffs[mirrorIndex(center-order/2+i, len(ip.coeffs))]
		}
		taylor[d] = sum
	}
	return taylor
}

// Resample reconstructs the input at a new rate: the output has
// round(len(input)*ratio) samples, output sample i taken at input
// position i/ratio.
func Resample(input []float64, ratio float64, k splines.Kernel) ([]float64, error) {
	if ratio <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRatio, ratio)
	}
	if len(input) == 0 {
		return []float64{}, nil
	}

	ip, err := NewInterpolator(input, k)
	if err != nil {
		return nil, err
	}

	outputSize := int(math.Round(float64(len(input)) * ratio))
	output := make([]float64, outputSize)
	for i := range output {
		output[i] = ip.At(float64(i) / ratio)
	}
	return output, nil
}

// mirrorIndex reflects i into [0, n-1] without repeating the edge sample,
// the boundary extension the prefilter assumes.
func mirrorIndex(i, n int) int {
	if n == 1 {
		return 0
	}
	period := 2 * (n - 1)
	i %= period
	if i < 0 {
		i += period
	}
	if i >= n {
		i = period - i
	}
	return i
}
