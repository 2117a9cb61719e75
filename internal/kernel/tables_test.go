package kernel

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-spline-kernels/internal/poly"
	"github.com/tphakala/go-spline-kernels/internal/testutil"
)

// TestPrefilterCoefficients_Literals checks the literal pole tables of the
// hand-optimized orders against their closed forms.
func TestPrefilterCoefficients_Literals(t *testing.T) {
	tests := []struct {
		name     string
		order    int
		expected []float64
	}{
		{"Box", 0, []float64{0.0}},
		{"Triangle", 1, []float64{0.0}},
		{"Quadratic", 2, []float64{2.0*math.Sqrt2 - 3.0}},
		{"Cubic", 3, []float64{math.Sqrt(3.0) - 2.0}},
		{"Quintic", 5, []float64{-0.43057534709997114, -0.043096288203264652}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			coeffs, err := PrefilterCoefficients(tt.order)
			require.NoError(t, err)
			require.Len(t, coeffs, len(tt.expected))
			for i, want := range tt.expected {
				assert.InDelta(t, want, coeffs[i], testutil.PoleTolerance)
			}
		})
	}
}

// TestPrefilterCoefficients_CubicPole pins the single cubic pole to its
// known numeric value.
func TestPrefilterCoefficients_CubicPole(t *testing.T) {
	coeffs, err := PrefilterCoefficients(3)
	require.NoError(t, err)
	require.Len(t, coeffs, 1)
	assert.InDelta(t, -0.2679491924311227, coeffs[0], 1e-15)
}

// TestPrefilterCoefficients_GenericQuartic checks the derived poles of the
// quartic kernel: they must match the published values and lie strictly
// inside the unit circle.
func TestPrefilterCoefficients_GenericQuartic(t *testing.T) {
	coeffs, err := PrefilterCoefficients(4)
	require.NoError(t, err)
	require.Len(t, coeffs, 2)

	testutil.AssertAllInsideUnitCircle(t, coeffs)

	// Sort by magnitude: the root finder guarantees no ordering.
	a, b := coeffs[0], coeffs[1]
	if math.Abs(a) < math.Abs(b) {
		a, b = b, a
	}
	assert.InDelta(t, -0.36134122590022, a, 1e-9)
	assert.InDelta(t, -0.013725429297339, b, 1e-9)
}

// TestPrefilterCoefficients_GenericAreRoots checks that every derived pole
// really is a root of the sampled-kernel polynomial it came from.
func TestPrefilterCoefficients_GenericAreRoots(t *testing.T) {
	for _, order := range []int{4, 6, 7} {
		coeffs, err := PrefilterCoefficients(order)
		require.NoError(t, err)
		require.Len(t, coeffs, order/2, "order %d", order)
		testutil.AssertAllInsideUnitCircle(t, coeffs)

		r := order / 2
		p := make([]float64, 2*r+1)
		for i := 0; i <= 2*r; i++ {
			p[i] = Eval(order, float64(i-r), 0)
		}
		for _, z := range coeffs {
			assert.InDelta(t, 0.0, poly.Eval(p, z), 1e-8,
				"order %d pole %v", order, z)
		}
	}
}

// TestPrefilterCoefficients_Cached checks that repeated calls for a
// generic order return identical values and independent slices.
func TestPrefilterCoefficients_Cached(t *testing.T) {
	first, err := PrefilterCoefficients(4)
	require.NoError(t, err)

	second, err := PrefilterCoefficients(4)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	second[0] = 42.0
	third, err := PrefilterCoefficients(4)
	require.NoError(t, err)
	assert.Equal(t, first, third, "cache must not observe caller mutation")
}

// TestWeights_CubicRows checks the literal cubic weight matrix rows.
func TestWeights_CubicRows(t *testing.T) {
	w := Weights(3)
	require.Len(t, w, 4)

	assert.Equal(t, []float64{1.0 / 6.0, 2.0 / 3.0, 1.0 / 6.0, 0.0}, w[0])
	assert.Equal(t, []float64{-0.5, 0.0, 0.5, 0.0}, w[1])
	assert.Equal(t, []float64{0.5, -1.0, 0.5, 0.0}, w[2])
	assert.Equal(t, []float64{-1.0 / 6.0, 0.5, -0.5, 1.0 / 6.0}, w[3])
}

// TestWeights_LiteralsMatchDerivation recomputes the literal tables through
// the generic sampling formula: the hardcoded rows are just the kernel
// derivatives sampled at order/2, order/2-1, ... divided by d!.
func TestWeights_LiteralsMatchDerivation(t *testing.T) {
	for _, order := range explicitOrders {
		literal := Weights(order)
		derived := calculateWeightMatrix(order)
		require.Len(t, derived, order+1, "order %d", order)
		for d := 0; d <= order; d++ {
			for i := 0; i <= order; i++ {
				assert.InDelta(t, literal[d][i], derived[d][i], 1e-15,
					"order %d row %d col %d", order, d, i)
			}
		}
	}
}

// TestWeights_GenericQuartic checks row 0 of the derived quartic table
// against the exact integer samples of the kernel.
func TestWeights_GenericQuartic(t *testing.T) {
	w := Weights(4)
	require.Len(t, w, 5)

	expected := []float64{1.0 / 384.0, 19.0 / 96.0, 115.0 / 192.0, 19.0 / 96.0, 1.0 / 384.0}
	for i, want := range expected {
		assert.InDelta(t, want, w[0][i], 1e-15, "col %d", i)
	}

	// Row 1 is the first derivative: odd, so it must be antisymmetric
	// about the center column and zero there.
	assert.InDelta(t, 0.0, w[1][2], 1e-15)
	assert.InDelta(t, -w[1][4], w[1][0], 1e-15)
	assert.InDelta(t, -w[1][3], w[1][1], 1e-15)
}

// TestWeights_Copy checks that callers cannot corrupt the cached table.
func TestWeights_Copy(t *testing.T) {
	first := Weights(4)
	first[0][0] = 42.0
	second := Weights(4)
	assert.NotEqual(t, 42.0, second[0][0])
}

// TestWeights_ConcurrentFirstAccess hammers the lazy caches from multiple
// goroutines; the race detector verifies the at-most-once initialization.
func TestWeights_ConcurrentFirstAccess(t *testing.T) {
	const goroutines = 8
	done := make(chan [][]float64, goroutines)
	for range goroutines {
		go func() {
			done <- Weights(6)
		}()
	}
	first := <-done
	for range goroutines - 1 {
		assert.Equal(t, first, <-done)
	}
}
