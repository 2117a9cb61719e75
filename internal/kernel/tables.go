package kernel

import (
	"sync"

	"github.com/tphakala/go-spline-kernels/internal/poly"
)

// Literal prefilter poles for the hand-optimized orders. Orders 0 and 1
// need no prefiltering; their table is a single zero entry so consumers
// can treat every order uniformly.
var (
	polesByOrder = map[int][]float64{
		0: {0.0},
		1: {0.0},
		2: {quadraticPole},
		3: {cubicPole},
		5: {quinticPole0, quinticPole1},
	}

	// Literal weight matrices for the hand-optimized orders. Row d holds
	// the d-th derivative of the kernel, divided by d!, sampled at the
	// integer offsets order/2, order/2-1, ..., order/2-order. Applied to
	// a window of spline coefficients they produce the local Taylor
	// coefficients at the window center.
	weightsByOrder = map[int][][]float64{
		0: {{1.0}},
		1: {
			{1.0, 0.0},
			{-1.0, 1.0},
		},
		2: {
			{0.125, 0.75, 0.125},
			{-0.5, 0.0, 0.5},
			{0.5, -1.0, 0.5},
		},
		3: {
			{1.0 / 6.0, 2.0 / 3.0, 1.0 / 6.0, 0.0},
			{-0.5, 0.0, 0.5, 0.0},
			{0.5, -1.0, 0.5, 0.0},
			{-1.0 / 6.0, 0.5, -0.5, 1.0 / 6.0},
		},
		5: {
			{1.0 / 120.0, 13.0 / 60.0, 11.0 / 20.0, 13.0 / 60.0, 1.0 / 120.0, 0.0},
			{-1.0 / 24.0, -5.0 / 12.0, 0.0, 5.0 / 12.0, 1.0 / 24.0, 0.0},
			{1.0 / 12.0, 1.0 / 6.0, -0.5, 1.0 / 6.0, 1.0 / 12.0, 0.0},
			{-1.0 / 12.0, 1.0 / 6.0, 0.0, -1.0 / 6.0, 1.0 / 12.0, 0.0},
			{1.0 / 24.0, -1.0 / 6.0, 0.25, -1.0 / 6.0, 1.0 / 24.0, 0.0},
			{-1.0 / 120.0, 1.0 / 24.0, -1.0 / 12.0, 1.0 / 12.0, -1.0 / 24.0, 1.0 / 120.0},
		},
	}
)

// Per-order caches for the generic path. Both tables are computed at most
// once per order for the lifetime of the process and never mutated after
// insertion; the mutexes only guard the first computation.
var (
	polesMu    sync.Mutex
	polesCache = map[int][]float64{}

	weightsMu    sync.Mutex
	weightsCache = map[int][][]float64{}
)

// PrefilterCoefficients returns the poles of the recursive interpolation
// prefilter for the given spline order. The returned slice is a copy and
// may be modified by the caller.
//
// For the hand-optimized orders the poles are literal constants; for every
// other order they are derived from the kernel itself: the polynomial with
// coefficients P[i] = S_N(i-r), r = order/2, is the z-transform of the
// sampled kernel, and the stable poles are its real roots of magnitude
// strictly less than one.
func PrefilterCoefficients(order int) ([]float64, error) {
	if b, ok := polesByOrder[order]; ok {
		return append([]float64(nil), b...), nil
	}

	polesMu.Lock()
	defer polesMu.Unlock()
	if b, ok := polesCache[order]; ok {
		return append([]float64(nil), b...), nil
	}
	b, err := calculatePrefilterCoefficients(order)
	if err != nil {
		return nil, err
	}
	polesCache[order] = b
	return append([]float64(nil), b...), nil
}

func calculatePrefilterCoefficients(order int) ([]float64, error) {
	n := order / 2
	if n == 0 {
		n = 1
	}
	b := make([]float64, n)
	if order <= 1 {
		return b, nil
	}

	r := order / 2
	p := make([]float64, 2*r+1)
	for i := 0; i <= 2*r; i++ {
		p[i] = Eval(order, float64(i-r), 0)
	}
	roots, err := poly.RealRoots(p)
	if err != nil {
		return nil, err
	}
	k := 0
	for _, root := range roots {
		if root > -1.0 && root < 1.0 {
			b[k] = root
			k++
		}
	}
	return b, nil
}

// Weights returns the (order+1)x(order+1) weight matrix for the given
// spline order. The returned matrix is a copy.
//
// Row d is the d-th derivative of the kernel divided by d!, sampled at
// order/2, order/2-1, ..., order/2-order (note the integer division: odd
// orders sample off-center).
func Weights(order int) [][]float64 {
	if b, ok := weightsByOrder[order]; ok {
		return copyMatrix(b)
	}

	weightsMu.Lock()
	defer weightsMu.Unlock()
	b, ok := weightsCache[order]
	if !ok {
		b = calculateWeightMatrix(order)
		weightsCache[order] = b
	}
	return copyMatrix(b)
}

func calculateWeightMatrix(order int) [][]float64 {
	b := make([][]float64, order+1)
	faculty := 1.0
	for d := 0; d <= order; d++ {
		if d > 1 {
			faculty *= float64(d)
		}
		b[d] = make([]float64, order+1)
		x := float64(order / 2)
		for i := 0; i <= order; i, x = i+1, x-1 {
			b[d][i] = Eval(order, x, d) / faculty
		}
	}
	return b
}

func copyMatrix(m [][]float64) [][]float64 {
	out := make([][]float64, len(m))
	for i, row := range m {
		out[i] = append([]float64(nil), row...)
	}
	return out
}
