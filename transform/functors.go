// Package transform implements pixel-wise image transforms: a generic
// per-pixel mapping loop, a masked variant, and the classic intensity
// functors (brightness/contrast, linear intensity, threshold).
package transform

import (
	"math"
)

const (
	// lutSize is the number of entries in an 8-bit value look-up table.
	lutSize = 256

	// maxUint8 is the largest 8-bit pixel value as a float.
	maxUint8 = 255.0

	// roundingBias converts truncation to round-to-nearest when building
	// integer look-up tables.
	roundingBias = 0.5
)

// BrightnessContrast returns a functor that adjusts brightness and
// contrast of values in [min, max].
//
// Both parameters must be positive: values greater than 1 increase
// brightness or contrast, values smaller than 1 decrease them, and 1 is
// the identity. The value is first gamma-corrected with exponent
// 1/brightness on the normalized range, then the same transform is applied
// symmetrically around mid-range with exponent 1/contrast:
//
//	v1 = (v - min) / (max - min)
//	v2 = 2·v1^(1/brightness) - 1
//	v3 = sign(v2)·|v2|^(1/contrast)
//	out = (v3 + 1)/2·(max - min) + min
func BrightnessContrast(brightness, contrast, min, max float64) func(float64) float64 {
	b := 1.0 / brightness
	c := 1.0 / contrast
	diff := max - min

	return func(v float64) float64 {
		v1 := (v - min) / diff
		brighter := math.Pow(v1, b)
		v2 := 2.0*brighter - 1.0
		var contrasted float64
		if v2 < 0.0 {
			contrasted = -math.Pow(-v2, c)
		} else {
			contrasted = math.Pow(v2, c)
		}
		return 0.5*diff*(contrasted+1.0) + min
	}
}

// BrightnessContrastLUT builds the 256-entry look-up table of the
// brightness/contrast transform over the full 8-bit range, with
// round-to-nearest quantization. Applying the LUT through Gray or NRGBA is
// much faster than calling the float functor per pixel.
func BrightnessContrastLUT(brightness, contrast float64) *[lutSize]uint8 {
	f := BrightnessContrast(brightness, contrast, 0.0, maxUint8)

	var lut [lutSize]uint8
	for i := range lutSize {
		v := f(float64(i)) + roundingBias
		if v < 0.0 {
			v = 0.0
		} else if v > maxUint8 {
			v = maxUint8
		}
		lut[i] = uint8(v)
	}
	return &lut
}

// LinearIntensity returns a functor applying out = scale·(v + offset),
// e.g. to shift an image into a displayable range or to invert it.
func LinearIntensity(scale, offset float64) func(float64) float64 {
	return func(v float64) float64 {
		return scale * (v + offset)
	}
}

// Threshold returns a functor mapping values inside the closed interval
// [lower, higher] to yes and everything else to no.
func Threshold(lower, higher, no, yes float64) func(float64) float64 {
	return func(v float64) float64 {
		if v < lower || higher < v {
			return no
		}
		return yes
	}
}
