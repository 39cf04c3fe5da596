package pixelpipe

import (
	"fmt"

	"github.com/pixelforge/pixelpipe/internal/filter"
)

// sharpenSigma and sharpenAmount are the fixed unsharp-mask parameters.
const (
	sharpenSigma  = 1.0
	sharpenAmount = 1.5
)

// Blur applies a separable Gaussian blur with the given standard
// deviation. The kernel radius is ceil(3*sigma); sampling beyond the
// image border replicates the nearest edge pixel. All four channels,
// including alpha, are blurred. Output dimensions equal the input's.
//
// Returns ErrInvalidParameter if sigma <= 0.
func Blur(src *Buffer, sigma float32) (*Buffer, error) {
	return blurWith(src, sigma, 0)
}

func blurWith(src *Buffer, sigma float32, workers int) (*Buffer, error) {
	if sigma <= 0 {
		return nil, fmt.Errorf("%w: blur sigma %g, must be > 0", ErrInvalidParameter, sigma)
	}
	kernel := filter.CachedGaussianKernel(float64(sigma))
	pix := filter.SeparableConvolve(src.pix, src.width, src.height, kernel, workers)
	return &Buffer{width: src.width, height: src.height, pix: pix}, nil
}

// Sharpen sharpens the buffer by unsharp masking: a Gaussian blur with
// sigma 1.0 is computed, then each color channel becomes
// clamp(orig + 1.5*(orig - blurred)). Alpha is copied from the original,
// not recomputed.
func Sharpen(src *Buffer) *Buffer {
	return sharpenWith(src, 0)
}

func sharpenWith(src *Buffer, workers int) *Buffer {
	// sharpenSigma is a positive constant, so the blur cannot fail.
	blurred, _ := blurWith(src, sharpenSigma, workers)

	pix := filter.MapPixelPairs(src.pix, blurred.pix, workers, func(dst, orig, blur []uint8) {
		for c := 0; c < 3; c++ {
			o := float32(orig[c])
			dst[c] = filter.ClampByte(o + sharpenAmount*(o-float32(blur[c])))
		}
		dst[3] = orig[3]
	})
	return &Buffer{width: src.width, height: src.height, pix: pix}
}
