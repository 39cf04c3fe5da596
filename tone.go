package pixelpipe

import (
	"math"

	"github.com/pixelforge/pixelpipe/internal/filter"
)

// ITU-R BT.709 luma coefficients used by Grayscale and EdgeDetect.
const (
	lumaR = 0.2126
	lumaG = 0.7152
	lumaB = 0.0722
)

// Grayscale converts the buffer to grayscale using the BT.709 luma
// formula gray = round(0.2126 R + 0.7152 G + 0.0722 B). Every output
// pixel is achromatic (R == G == B); alpha is copied unchanged.
func Grayscale(src *Buffer) *Buffer {
	return grayscaleWith(src, 0)
}

func grayscaleWith(src *Buffer, workers int) *Buffer {
	pix := filter.MapPixels(src.pix, workers, func(dst, p []uint8) {
		gray := filter.ClampByte(lumaR*float32(p[0]) + lumaG*float32(p[1]) + lumaB*float32(p[2]))
		dst[0] = gray
		dst[1] = gray
		dst[2] = gray
		dst[3] = p[3]
	})
	return &Buffer{width: src.width, height: src.height, pix: pix}
}

// Brightness adjusts brightness by amount in [-1, 1] nominal: each color
// channel is shifted by round(amount*255) and clamped into [0, 255].
// amount = 0 is the identity; alpha is copied unchanged.
func Brightness(src *Buffer, amount float32) *Buffer {
	return brightnessWith(src, amount, 0)
}

func brightnessWith(src *Buffer, amount float32, workers int) *Buffer {
	shift := int32(math.Round(float64(amount) * 255))
	pix := filter.MapPixels(src.pix, workers, func(dst, p []uint8) {
		dst[0] = clampChannel(int32(p[0]) + shift)
		dst[1] = clampChannel(int32(p[1]) + shift)
		dst[2] = clampChannel(int32(p[2]) + shift)
		dst[3] = p[3]
	})
	return &Buffer{width: src.width, height: src.height, pix: pix}
}

// Contrast scales each color channel's distance from mid-gray:
// channel' = clamp((channel-128)*factor + 128). factor = 1 is the
// identity and factor = 0 collapses color channels to 128; alpha is
// copied unchanged.
func Contrast(src *Buffer, factor float32) *Buffer {
	return contrastWith(src, factor, 0)
}

func contrastWith(src *Buffer, factor float32, workers int) *Buffer {
	pix := filter.MapPixels(src.pix, workers, func(dst, p []uint8) {
		dst[0] = filter.ClampByte((float32(p[0])-128)*factor + 128)
		dst[1] = filter.ClampByte((float32(p[1])-128)*factor + 128)
		dst[2] = filter.ClampByte((float32(p[2])-128)*factor + 128)
		dst[3] = p[3]
	})
	return &Buffer{width: src.width, height: src.height, pix: pix}
}

// Invert replaces each color channel with 255-channel. Alpha is copied
// unchanged. Invert is an exact involution: Invert(Invert(b)) == b.
func Invert(src *Buffer) *Buffer {
	return invertWith(src, 0)
}

func invertWith(src *Buffer, workers int) *Buffer {
	pix := filter.MapPixels(src.pix, workers, func(dst, p []uint8) {
		dst[0] = 255 - p[0]
		dst[1] = 255 - p[1]
		dst[2] = 255 - p[2]
		dst[3] = p[3]
	})
	return &Buffer{width: src.width, height: src.height, pix: pix}
}

// Sepia applies the classic sepia tone matrix per pixel, clamping each
// result into [0, 255]; alpha is copied unchanged.
func Sepia(src *Buffer) *Buffer {
	return sepiaWith(src, 0)
}

func sepiaWith(src *Buffer, workers int) *Buffer {
	pix := filter.MapPixels(src.pix, workers, func(dst, p []uint8) {
		r := float32(p[0])
		g := float32(p[1])
		b := float32(p[2])
		dst[0] = filter.ClampByte(0.393*r + 0.769*g + 0.189*b)
		dst[1] = filter.ClampByte(0.349*r + 0.686*g + 0.168*b)
		dst[2] = filter.ClampByte(0.272*r + 0.534*g + 0.131*b)
		dst[3] = p[3]
	})
	return &Buffer{width: src.width, height: src.height, pix: pix}
}

// clampChannel clamps an integer channel value into [0, 255].
func clampChannel(v int32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
