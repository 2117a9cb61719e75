// Package testutil provides reusable test helper functions for spline
// kernel tests.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Default tolerances for various test scenarios.
const (
	DefaultTolerance   = 1e-12
	UnityTolerance     = 1e-10
	AgreementTolerance = 1e-12
	PoleTolerance      = 1e-12
)

// KernelFunc evaluates a kernel derivative at x.
type KernelFunc func(x float64) float64

// AssertPartitionOfUnity verifies that integer shifts of the kernel sum to
// one at every probe point: sum over k of f(x - k) == 1.
func AssertPartitionOfUnity(t *testing.T, f KernelFunc, radius float64, probes []float64, tolerance float64) bool {
	t.Helper()
	for _, x := range probes {
		var sum float64
		lo := int(math.Floor(x - radius))
		hi := int(math.Ceil(x + radius))
		for k := lo; k <= hi; k++ {
			sum += f(x - float64(k))
		}
		if !assert.InDelta(t, 1.0, sum, tolerance,
			"partition of unity violated at x=%v: sum=%v", x, sum) {
			return false
		}
	}
	return true
}

// AssertEvenSymmetry verifies f(x) == f(-x) at every probe point.
func AssertEvenSymmetry(t *testing.T, f KernelFunc, probes []float64, tolerance float64) bool {
	t.Helper()
	for _, x := range probes {
		if !assert.InDelta(t, f(x), f(-x), tolerance,
			"not even at x=%v: f(x)=%v, f(-x)=%v", x, f(x), f(-x)) {
			return false
		}
	}
	return true
}

// AssertOddSymmetry verifies f(x) == -f(-x) at every probe point.
func AssertOddSymmetry(t *testing.T, f KernelFunc, probes []float64, tolerance float64) bool {
	t.Helper()
	for _, x := range probes {
		if !assert.InDelta(t, f(x), -f(-x), tolerance,
			"not odd at x=%v: f(x)=%v, -f(-x)=%v", x, f(x), -f(-x)) {
			return false
		}
	}
	return true
}

// AssertCompactSupport verifies that f vanishes exactly outside the open
// support interval: f(x) == 0 for every |x| >= radius among the probes.
func AssertCompactSupport(t *testing.T, f KernelFunc, radius float64, probes []float64) bool {
	t.Helper()
	for _, x := range probes {
		if math.Abs(x) < radius {
			continue
		}
		if !assert.Zero(t, f(x), "support leak at x=%v (radius %v): f(x)=%v", x, radius, f(x)) {
			return false
		}
	}
	return true
}

// AssertAllInsideUnitCircle verifies |v| < 1 for every element.
func AssertAllInsideUnitCircle(t *testing.T, s []float64) bool {
	t.Helper()
	for i, v := range s {
		if !assert.Less(t, math.Abs(v), 1.0, "s[%d]=%v not inside the unit circle", i, v) {
			return false
		}
	}
	return true
}

// Grid returns uniformly spaced probe points covering [lo, hi] with the
// given step, including both endpoints up to rounding.
func Grid(lo, hi, step float64) []float64 {
	var probes []float64
	for x := lo; x <= hi+step/2; x += step {
		probes = append(probes, x)
	}
	return probes
}
