package transform

import (
	"errors"
	"fmt"
	"image"
)

// ErrBoundsMismatch indicates that the images passed to a transform loop
// do not share the same dimensions.
var ErrBoundsMismatch = errors.New("image bounds mismatch")

// Gray applies fn to every pixel of src and stores the result in dst.
// dst and src must have identical dimensions; they may alias for an
// in-place transform.
func Gray(dst, src *image.Gray, fn func(uint8) uint8) error {
	if !sameSize(dst.Rect, src.Rect) {
		return fmt.Errorf("%w: dst %v, src %v", ErrBoundsMismatch, dst.Rect.Size(), src.Rect.Size())
	}

	w, h := src.Rect.Dx(), src.Rect.Dy()
	for y := 0; y < h; y++ {
		srow := src.Pix[y*src.Stride : y*src.Stride+w]
		drow := dst.Pix[y*dst.Stride : y*dst.Stride+w]
		for x, v := range srow {
			drow[x] = fn(v)
		}
	}
	return nil
}

// GrayIf applies fn to every pixel of src whose corresponding mask pixel
// is nonzero; masked-out destination pixels keep their previous value.
// All three images must have identical dimensions.
func GrayIf(dst, src, mask *image.Gray, fn func(uint8) uint8) error {
	if !sameSize(dst.Rect, src.Rect) || !sameSize(mask.Rect, src.Rect) {
		return fmt.Errorf("%w: dst %v, src %v, mask %v",
			ErrBoundsMismatch, dst.Rect.Size(), src.Rect.Size(), mask.Rect.Size())
	}

	w, h := src.Rect.Dx(), src.Rect.Dy()
	for y := 0; y < h; y++ {
		srow := src.Pix[y*src.Stride : y*src.Stride+w]
		drow := dst.Pix[y*dst.Stride : y*dst.Stride+w]
		mrow := mask.Pix[y*mask.Stride : y*mask.Stride+w]
		for x, v := range srow {
			if mrow[x] != 0 {
				drow[x] = fn(v)
			}
		}
	}
	return nil
}

// NRGBA applies fn to the R, G and B channels of every pixel of src and
// stores the result in dst, leaving alpha untouched. dst and src must
// have identical dimensions; they may alias.
func NRGBA(dst, src *image.NRGBA, fn func(uint8) uint8) error {
	if !sameSize(dst.Rect, src.Rect) {
		return fmt.Errorf("%w: dst %v, src %v", ErrBoundsMismatch, dst.Rect.Size(), src.Rect.Size())
	}

	w, h := src.Rect.Dx(), src.Rect.Dy()
	for y := 0; y < h; y++ {
		srow := src.Pix[y*src.Stride : y*src.Stride+4*w]
		drow := dst.Pix[y*dst.Stride : y*dst.Stride+4*w]
		for x := 0; x < 4*w; x += 4 {
			drow[x+0] = fn(srow[x+0])
			drow[x+1] = fn(srow[x+1])
			drow[x+2] = fn(srow[x+2])
			drow[x+3] = srow[x+3]
		}
	}
	return nil
}

// GrayLUT applies a 256-entry look-up table to every pixel of src, the
// fast path for uint8 functors such as BrightnessContrastLUT.
func GrayLUT(dst, src *image.Gray, lut *[lutSize]uint8) error {
	return Gray(dst, src, func(v uint8) uint8 { return lut[v] })
}

// NRGBALUT applies a 256-entry look-up table to the color channels of src.
func NRGBALUT(dst, src *image.NRGBA, lut *[lutSize]uint8) error {
	return NRGBA(dst, src, func(v uint8) uint8 { return lut[v] })
}

func sameSize(a, b image.Rectangle) bool {
	return a.Dx() == b.Dx() && a.Dy() == b.Dy()
}
