package kernel

// EvalGeneric evaluates the order-N B-spline and its derivatives through the
// order-raising convolution recurrence, for arbitrary order >= 0.
//
// The recurrences are the standard identities for centered uniform
// B-splines, with n12 = (N+1)/2:
//
//	value:      S_N(x)    = ((n12 + x)·S_{N-1}(x + 0.5) + (n12 - x)·S_{N-1}(x - 0.5)) / N
//	derivative: S_N(x, d) = S_{N-1}(x + 0.5, d-1) - S_{N-1}(x - 0.5, d-1)
//
// The half-sample shifts and the division by N (not N+1) come from
// convolving the order-(N-1) spline with the unit box. The recursion
// bottoms out at the box kernel (order 0), with the triangle kernel
// (order 1) as a second base case to halve the recursion depth.
//
// EvalGeneric exists for the orders without a hand-optimized closed form;
// for orders 2, 3 and 5 it agrees with the explicit evaluators but is
// slower and accumulates a little more rounding error per level.
func EvalGeneric(order int, x float64, derivative int) float64 {
	switch order {
	case 0:
		return evalBox(x, derivative)
	case 1:
		return evalTriangle(x, derivative)
	}
	if derivative == 0 {
		n12 := float64(order+1) / 2.0
		return ((n12+x)*EvalGeneric(order-1, x+0.5, 0) +
			(n12-x)*EvalGeneric(order-1, x-0.5, 0)) / float64(order)
	}
	derivative--
	return EvalGeneric(order-1, x+0.5, derivative) -
		EvalGeneric(order-1, x-0.5, derivative)
}
