// Package resample implements one-dimensional spline interpolation and
// resampling on top of the B-spline kernels.
//
// Spline interpolation is a two-step process: the samples are first
// converted into spline coefficients by a recursive causal/anticausal IIR
// prefilter (whose poles the kernel provides), then reconstructed at
// arbitrary positions by summing kernel taps over the coefficient window.
package resample

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
)

const (
	// prefilterTolerance bounds the truncation error of the causal
	// initialization sum at the mirror boundary.
	prefilterTolerance = 1e-14
)

// Common errors returned by the resample package.
var (
	// ErrEmptyInput indicates an empty sample slice.
	ErrEmptyInput = errors.New("empty input")

	// ErrInvalidRatio indicates a non-positive resampling ratio.
	ErrInvalidRatio = errors.New("invalid resampling ratio")
)

// Prefilter converts samples to spline coefficients in place by running
// one causal and one anticausal first-order recursive filter per pole,
// with mirror boundary conditions.
//
// Poles of value zero are skipped: orders 0 and 1 report a single zero
// entry, for which the prefilter is the identity.
func Prefilter(coeffs, poles []float64) {
	n := len(coeffs)
	if n < 2 {
		return
	}

	// Overall gain restores unit DC response after the pole cascade.
	lambda := 1.0
	active := 0
	for _, z := range poles {
		if z == 0.0 {
			continue
		}
		lambda *= (1.0 - z) * (1.0 - 1.0/z)
		active++
	}
	if active == 0 {
		return
	}
	floats.Scale(lambda, coeffs)

	for _, z := range poles {
		if z == 0.0 {
			continue
		}
		coeffs[0] = initialCausal(coeffs, z)
		for i := 1; i < n; i++ {
			coeffs[i] += z * coeffs[i-1]
		}
		coeffs[n-1] = initialAnticausal(coeffs, z)
		for i := n - 2; i >= 0; i-- {
			coeffs[i] = z * (coeffs[i+1] - coeffs[i])
		}
	}
}

// initialCausal computes the starting value of the causal pass under the
// mirror boundary condition. The infinite sum over the mirrored signal is
// truncated once the pole powers drop below prefilterTolerance; for very
// short signals the closed-form full sum is used instead.
func initialCausal(c []float64, z float64) float64 {
	n := len(c)
	horizon := int(math.Ceil(math.Log(prefilterTolerance) / math.Log(math.Abs(z))))

	if horizon < n {
		zi := z
		sum := c[0]
		for i := 1; i < horizon; i++ {
			sum += zi * c[i]
			zi *= z
		}
		return sum
	}

	// Full mirrored period: sum has a geometric closed form.
	zi := z
	z2i := math.Pow(z, float64(n-1))
	iz := 1.0 / z
	sum := c[0] + z2i*c[n-1]
	z2i *= z2i * iz
	for i := 1; i < n-1; i++ {
		sum += (zi + z2i) * c[i]
		zi *= z
		z2i *= iz
	}
	return sum / (1.0 - math.Pow(z, float64(2*n-2)))
}

// initialAnticausal computes the starting value of the anticausal pass
// under the mirror boundary condition.
func initialAnticausal(c []float64, z float64) float64 {
	n := len(c)
	return (z / (z*z - 1.0)) * (z*c[n-2] + c[n-1])
}
