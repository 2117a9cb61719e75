package transform

import (
	"image"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func grayImage(w, h int, fill uint8) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = fill
	}
	return img
}

// TestGray checks the per-pixel mapping loop, including in-place use.
func TestGray(t *testing.T) {
	src := grayImage(4, 3, 10)
	dst := image.NewGray(image.Rect(0, 0, 4, 3))

	err := Gray(dst, src, func(v uint8) uint8 { return v * 2 })
	require.NoError(t, err)
	for _, v := range dst.Pix {
		assert.Equal(t, uint8(20), v)
	}

	// in place
	err = Gray(src, src, func(v uint8) uint8 { return v + 1 })
	require.NoError(t, err)
	assert.Equal(t, uint8(11), src.GrayAt(2, 1).Y)
}

// TestGray_BoundsMismatch checks the dimension validation.
func TestGray_BoundsMismatch(t *testing.T) {
	src := grayImage(4, 3, 0)
	dst := image.NewGray(image.Rect(0, 0, 3, 3))
	err := Gray(dst, src, func(v uint8) uint8 { return v })
	assert.ErrorIs(t, err, ErrBoundsMismatch)
}

// TestGrayIf checks that masked-out pixels keep their destination value.
func TestGrayIf(t *testing.T) {
	src := grayImage(3, 1, 100)
	dst := grayImage(3, 1, 7)
	mask := grayImage(3, 1, 0)
	mask.Pix[0] = 255

	err := GrayIf(dst, src, mask, func(v uint8) uint8 { return v + 1 })
	require.NoError(t, err)
	assert.Equal(t, uint8(101), dst.Pix[0])
	assert.Equal(t, uint8(7), dst.Pix[1])
	assert.Equal(t, uint8(7), dst.Pix[2])
}

// TestNRGBA checks per-channel application with alpha untouched.
func TestNRGBA(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	copy(src.Pix, []uint8{10, 20, 30, 200, 40, 50, 60, 128})
	dst := image.NewNRGBA(image.Rect(0, 0, 2, 1))

	err := NRGBA(dst, src, func(v uint8) uint8 { return v / 2 })
	require.NoError(t, err)
	assert.Equal(t, []uint8{5, 10, 15, 200, 20, 25, 30, 128}, dst.Pix)
}

// TestBrightnessContrast_Identity checks that brightness = contrast = 1 is
// the identity transform on the value range.
func TestBrightnessContrast_Identity(t *testing.T) {
	f := BrightnessContrast(1.0, 1.0, 0.0, 255.0)
	for _, v := range []float64{0.0, 1.0, 63.5, 127.5, 200.0, 255.0} {
		assert.InDelta(t, v, f(v), 1e-9, "at v=%v", v)
	}
}

// TestBrightnessContrast_Endpoints checks that the range endpoints and the
// midpoint are fixed points for pure contrast changes.
func TestBrightnessContrast_Endpoints(t *testing.T) {
	f := BrightnessContrast(1.0, 2.5, 0.0, 255.0)
	assert.InDelta(t, 0.0, f(0.0), 1e-9)
	assert.InDelta(t, 255.0, f(255.0), 1e-9)
	assert.InDelta(t, 127.5, f(127.5), 1e-9)

	// Contrast > 1 pushes values away from mid-range.
	assert.Greater(t, f(200.0), 200.0)
	assert.Less(t, f(50.0), 50.0)
}

// TestBrightnessContrast_Brightening checks that brightness > 1 raises
// interior values.
func TestBrightnessContrast_Brightening(t *testing.T) {
	brighter := BrightnessContrast(2.0, 1.0, 0.0, 255.0)
	darker := BrightnessContrast(0.5, 1.0, 0.0, 255.0)
	for _, v := range []float64{20.0, 100.0, 180.0} {
		assert.Greater(t, brighter(v), v, "at v=%v", v)
		assert.Less(t, darker(v), v, "at v=%v", v)
	}
}

// TestBrightnessContrastLUT checks the LUT against the float functor with
// round-to-nearest quantization.
func TestBrightnessContrastLUT(t *testing.T) {
	lut := BrightnessContrastLUT(1.7, 0.8)
	f := BrightnessContrast(1.7, 0.8, 0.0, 255.0)
	for i := range 256 {
		want := math.Floor(f(float64(i)) + 0.5)
		if want > 255.0 {
			want = 255.0
		} else if want < 0.0 {
			want = 0.0
		}
		assert.Equal(t, uint8(want), lut[i], "entry %d", i)
	}
}

// TestGrayLUT applies a LUT through the loop and spot-checks a pixel.
func TestGrayLUT(t *testing.T) {
	lut := BrightnessContrastLUT(1.0, 1.0)
	src := grayImage(2, 2, 90)
	dst := image.NewGray(image.Rect(0, 0, 2, 2))
	require.NoError(t, GrayLUT(dst, src, lut))
	assert.Equal(t, uint8(90), dst.Pix[0], "identity LUT must preserve values")
}

// TestLinearIntensity checks out = scale·(v + offset).
func TestLinearIntensity(t *testing.T) {
	f := LinearIntensity(2.0, -10.0)
	assert.Equal(t, 20.0, f(20.0))
	assert.Equal(t, 0.0, f(10.0))
	assert.Equal(t, -20.0, f(0.0))
}

// TestThreshold checks the closed interval semantics.
func TestThreshold(t *testing.T) {
	f := Threshold(10.0, 100.0, 0.0, 255.0)
	assert.Equal(t, 0.0, f(9.0))
	assert.Equal(t, 255.0, f(10.0))
	assert.Equal(t, 255.0, f(55.0))
	assert.Equal(t, 255.0, f(100.0))
	assert.Equal(t, 0.0, f(101.0))
}
