package splines

// Spline orders of the hand-optimized kernels.
const (
	// OrderBox is the order of the box (nearest-neighbor) kernel.
	OrderBox = 0

	// OrderLinear is the order of the triangle (linear) kernel.
	OrderLinear = 1

	// OrderQuadratic is the order of the quadratic kernel.
	OrderQuadratic = 2

	// OrderCubic is the order of the cubic kernel, the usual default for
	// spline interpolation.
	OrderCubic = 3

	// OrderQuintic is the order of the quintic kernel, used when higher
	// smoothness or higher-order derivatives are needed.
	OrderQuintic = 5
)

// Box returns the order-0 B-spline (the box kernel). Interpolating with it
// is nearest-neighbor sampling.
func Box() Kernel {
	return mustBSpline(OrderBox)
}

// Linear returns the order-1 B-spline (the triangle kernel). Interpolating
// with it is linear interpolation.
func Linear() Kernel {
	return mustBSpline(OrderLinear)
}

// Quadratic returns the order-2 B-spline kernel.
func Quadratic() Kernel {
	return mustBSpline(OrderQuadratic)
}

// Cubic returns the order-3 B-spline kernel. This is the standard choice
// for smooth interpolation and resampling.
func Cubic() Kernel {
	return mustBSpline(OrderCubic)
}

// Quintic returns the order-5 B-spline kernel.
func Quintic() Kernel {
	return mustBSpline(OrderQuintic)
}

func mustBSpline(order int) Kernel {
	k, err := NewBSpline(order)
	if err != nil {
		panic(err)
	}
	return k
}
