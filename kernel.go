package splines

import (
	"errors"
	"fmt"

	"github.com/tphakala/go-spline-kernels/internal/kernel"
)

// Kernel is a compactly supported interpolation kernel.
//
// Implementations are immutable value objects: every method is a pure
// function of the receiver and its arguments, so a single Kernel may be
// shared freely between goroutines.
type Kernel interface {
	// Order returns the polynomial order of the kernel (3 = cubic).
	Order() int

	// Radius returns the half-width of the support. The kernel is
	// identically zero for |x| >= Radius(), for every derivative.
	Radius() float64

	// DerivativeOrder returns the derivative order the kernel was
	// configured with. At evaluates this derivative; Derivative adds to it.
	DerivativeOrder() int

	// At returns the value of the configured derivative of the kernel
	// at x.
	At(x float64) float64

	// Derivative returns the (DerivativeOrder() + extra)-th derivative of
	// the kernel at x. Derivative orders above the kernel order yield
	// exactly 0.0; this is a documented result, not an error.
	Derivative(x float64, extra int) float64

	// PrefilterCoefficients returns the poles of the recursive
	// causal/anticausal prefilter that converts samples into spline
	// coefficients. Orders 0 and 1 (and kernels that need no
	// prefiltering) return a single zero entry. All poles lie strictly
	// inside (-1, 1).
	PrefilterCoefficients() []float64

	// Weights returns the (Order()+1)x(Order()+1) weight matrix: row d
	// holds the coefficients of the linear combination of Order()+1
	// uniformly spaced samples that yields the d-th local Taylor
	// coefficient at the window center.
	Weights() [][]float64
}

// Common errors returned by the kernel constructors.
var (
	// ErrInvalidOrder indicates a negative spline order.
	ErrInvalidOrder = errors.New("invalid spline order")

	// ErrInvalidDerivative indicates a negative derivative order.
	ErrInvalidDerivative = errors.New("invalid derivative order")
)

// Option configures a kernel at construction time.
type Option func(*bspline) error

// WithDerivativeOrder configures the kernel to evaluate its d-th
// derivative in At. The stored order composes additively with the extra
// derivative passed to Derivative; neither is mutated after construction.
func WithDerivativeOrder(d int) Option {
	return func(b *bspline) error {
		if d < 0 {
			return fmt.Errorf("%w: %d", ErrInvalidDerivative, d)
		}
		b.derivative = d
		return nil
	}
}

// bspline is the B-spline kernel family. It carries no state beyond its
// two configuration integers; all evaluation dispatches to the closed
// forms or the generic recurrence in internal/kernel.
type bspline struct {
	order      int
	derivative int
}

// NewBSpline returns the centered B-spline kernel of the given order.
//
// Orders 0, 1, 2, 3 and 5 evaluate through hand-optimized closed-form
// polynomials; every other non-negative order uses the convolution
// recurrence. The order must be non-negative.
func NewBSpline(order int, opts ...Option) (Kernel, error) {
	if order < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidOrder, order)
	}
	b := &bspline{order: order}
	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (b *bspline) Order() int           { return b.order }
func (b *bspline) Radius() float64      { return kernel.Radius(b.order) }
func (b *bspline) DerivativeOrder() int { return b.derivative }

func (b *bspline) At(x float64) float64 {
	return kernel.Eval(b.order, x, b.derivative)
}

func (b *bspline) Derivative(x float64, extra int) float64 {
	return kernel.Eval(b.order, x, b.derivative+extra)
}

func (b *bspline) PrefilterCoefficients() []float64 {
	coeffs, err := kernel.PrefilterCoefficients(b.order)
	if err != nil {
		// The pole polynomial of a valid order always has a nonzero
		// leading coefficient, so failure here means the
		// eigendecomposition itself did not converge.
		panic(fmt.Sprintf("splines: prefilter coefficients for order %d: %v", b.order, err))
	}
	return coeffs
}

func (b *bspline) Weights() [][]float64 {
	return kernel.Weights(b.order)
}
