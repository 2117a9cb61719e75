// Package poly provides real polynomial evaluation and real root finding.
//
// Root finding uses the companion-matrix method: the roots of a monic
// polynomial are the eigenvalues of its companion matrix, which gonum's
// dense eigendecomposition computes with balancing. This handles the small,
// well-conditioned polynomials that arise from sampled spline kernels
// without any hand-tuned iteration.
package poly

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

const (
	// imagTolerance decides when a complex eigenvalue counts as a real
	// root: |imag| <= imagTolerance * (1 + |real|).
	imagTolerance = 1e-10

	// coeffTolerance is the threshold below which a leading coefficient
	// is treated as zero and the polynomial degree reduced.
	coeffTolerance = 1e-14
)

// Common errors returned by the root finder.
var (
	// ErrDegenerate indicates a polynomial with no well-defined roots
	// (empty coefficients or all coefficients zero).
	ErrDegenerate = errors.New("degenerate polynomial")

	// ErrFactorization indicates the eigendecomposition of the companion
	// matrix failed to converge.
	ErrFactorization = errors.New("companion matrix eigendecomposition failed")
)

// Eval evaluates the polynomial with the given coefficients at x using
// Horner's scheme. Coefficients are in ascending order:
// coeffs[i] is the coefficient of x^i.
func Eval(coeffs []float64, x float64) float64 {
	var y float64
	for i := len(coeffs) - 1; i >= 0; i-- {
		y = y*x + coeffs[i]
	}
	return y
}

// RealRoots returns all real roots of the polynomial with the given
// coefficients (ascending order, coeffs[i] multiplies x^i).
//
// Complex-conjugate eigenvalue pairs are discarded; a root of multiplicity
// m appears m times. No ordering of the returned roots is guaranteed.
//
// A constant nonzero polynomial has no roots and returns an empty slice.
func RealRoots(coeffs []float64) ([]float64, error) {
	// Trim vanishing leading coefficients so the companion matrix is
	// well defined.
	degree := len(coeffs) - 1
	for degree >= 0 && math.Abs(coeffs[degree]) <= coeffTolerance {
		degree--
	}
	if degree < 0 {
		return nil, ErrDegenerate
	}
	if degree == 0 {
		return []float64{}, nil
	}

	// Companion matrix of the monic polynomial
	// x^n + c[n-1]x^(n-1) + ... + c[0]: subdiagonal of ones, last column
	// -c[i]/c[n].
	lead := coeffs[degree]
	companion := mat.NewDense(degree, degree, nil)
	for i := 1; i < degree; i++ {
		companion.Set(i, i-1, 1.0)
	}
	for i := range degree {
		companion.Set(i, degree-1, -coeffs[i]/lead)
	}

	var eig mat.Eigen
	if ok := eig.Factorize(companion, mat.EigenNone); !ok {
		return nil, fmt.Errorf("%w: degree %d", ErrFactorization, degree)
	}

	values := eig.Values(nil)
	roots := make([]float64, 0, degree)
	for _, v := range values {
		if math.Abs(imag(v)) <= imagTolerance*(1.0+math.Abs(real(v))) {
			roots = append(roots, real(v))
		}
	}
	return roots, nil
}
