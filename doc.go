// Package splines provides B-spline kernel evaluation for interpolation
// and resampling in pure Go.
//
// A B-spline kernel of order N is the unit box convolved with itself N
// times: a compactly supported, symmetric, piecewise-polynomial bump that
// partitions unity under integer shifts. These kernels are the basis of
// spline interpolation: sampled data is first prefiltered into spline
// coefficients, then reconstructed at arbitrary positions by summing
// kernel taps.
//
// # Features
//
//   - Exact closed-form evaluation of orders 0, 1, 2, 3 and 5 (value and
//     all derivatives), plus a generic recurrence for every other order
//   - Prefilter pole tables for the recursive causal/anticausal IIR
//     prefilter, literal for the common orders and derived by polynomial
//     root finding otherwise
//   - Weight matrices that convert windows of spline coefficients to local
//     Taylor coefficients for derivative estimation
//   - The Catmull-Rom kernel for interpolation without prefiltering
//   - One-dimensional spline resampling and pixel-wise image transforms in
//     the resample and transform packages
//
// # Quick Start
//
// Evaluate the cubic kernel and its first derivative:
//
//	k := splines.Cubic()
//	v := k.At(0.5)
//	d := k.Derivative(0.5, 1)
//
// Arbitrary orders work the same way:
//
//	k, err := splines.NewBSpline(7)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	poles := k.PrefilterCoefficients()
//
// Kernel evaluation is a pure function of (order, x, derivative): instances
// are immutable and safe for concurrent use. The pole and weight tables of
// the generic path are computed once per order and cached for the lifetime
// of the process.
package splines
