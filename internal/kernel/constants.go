package kernel

import "math"

// Support geometry. The order-N B-spline is supported on
// (-(N+1)/2, +(N+1)/2); each explicit kernel names its own radius and
// interior break points so the piecewise polynomials read like their
// derivation.
const (
	supportHalfWidthFactor = 0.5 // radius = (order + 1) / 2

	boxRadius      = 0.5
	triangleRadius = 1.0

	quadraticInnerBreak = 0.5
	quadraticRadius     = 1.5

	cubicInnerBreak = 1.0
	cubicRadius     = 2.0

	quinticInnerBreak  = 1.0
	quinticMiddleBreak = 2.0
	quinticRadius      = 3.0

	catmullRomInnerBreak = 1.0
	catmullRomRadius     = 2.0
)

// Center values of the explicit kernels, used both in the polynomials and
// as reference points in tests.
const (
	cubicCenterValue   = 2.0 / 3.0
	quinticCenterValue = 0.55
)

// Prefilter poles of the explicit kernels. A pole is the root of the
// z-transform of the sampled kernel that lies inside the unit circle; the
// causal/anticausal recursive prefilter is stable exactly because |z| < 1.
//
// The quadratic and cubic kernels each have a single pole with a closed
// form; the quintic poles are the roots of a quartic and are stored to full
// double precision.
const (
	quadraticPole = 2.0*math.Sqrt2 - 3.0

	quinticPole0 = -0.43057534709997114
	quinticPole1 = -0.043096288203264652
)

// cubicPole is sqrt(3) - 2. math.Sqrt is not a constant expression, hence
// the variable.
var cubicPole = math.Sqrt(3.0) - 2.0
