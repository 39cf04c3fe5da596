package filter

import (
	"github.com/pixelforge/pixelpipe/internal/parallel"
)

// SeparableConvolve applies a 1D kernel to a packed RGBA buffer in two
// passes — horizontal, then vertical — which is equivalent to convolving
// with the kernel's 2D outer product at O(w*h*k) instead of O(w*h*k²)
// cost.
//
// Sampling beyond the image border clamps the coordinate to the nearest
// valid row or column (edge replication). All four channels, including
// alpha, are convolved.
//
// The vertical pass does not start until the horizontal pass has fully
// joined: any output pixel of the vertical pass may read from any row of
// the intermediate result.
func SeparableConvolve(pix []uint8, width, height int, kernel []float32, workers int) []uint8 {
	horizontal := convolveHorizontal(pix, width, height, kernel, workers)
	return convolveVertical(horizontal, width, height, kernel, workers)
}

// convolveHorizontal convolves each row with the kernel, parallel over
// disjoint row ranges.
func convolveHorizontal(pix []uint8, width, height int, kernel []float32, workers int) []uint8 {
	out := make([]uint8, len(pix))
	radius := len(kernel) / 2

	parallel.Ranges(workers, height, func(lo, hi int) {
		for y := lo; y < hi; y++ {
			row := pix[y*width*4:]
			dst := out[y*width*4:]
			for x := 0; x < width; x++ {
				var r, g, b, a float32
				for i, weight := range kernel {
					sx := clampInt(x+i-radius, 0, width-1)
					p := row[sx*4:]
					r += float32(p[0]) * weight
					g += float32(p[1]) * weight
					b += float32(p[2]) * weight
					a += float32(p[3]) * weight
				}
				d := dst[x*4:]
				d[0] = clampByte(r)
				d[1] = clampByte(g)
				d[2] = clampByte(b)
				d[3] = clampByte(a)
			}
		}
	})

	return out
}

// convolveVertical convolves each column with the kernel. Work is still
// partitioned by output row so each worker writes a contiguous range.
func convolveVertical(pix []uint8, width, height int, kernel []float32, workers int) []uint8 {
	out := make([]uint8, len(pix))
	radius := len(kernel) / 2

	parallel.Ranges(workers, height, func(lo, hi int) {
		for y := lo; y < hi; y++ {
			dst := out[y*width*4:]
			for x := 0; x < width; x++ {
				var r, g, b, a float32
				for i, weight := range kernel {
					sy := clampInt(y+i-radius, 0, height-1)
					p := pix[(sy*width+x)*4:]
					r += float32(p[0]) * weight
					g += float32(p[1]) * weight
					b += float32(p[2]) * weight
					a += float32(p[3]) * weight
				}
				d := dst[x*4:]
				d[0] = clampByte(r)
				d[1] = clampByte(g)
				d[2] = clampByte(b)
				d[3] = clampByte(a)
			}
		}
	})

	return out
}

// clampInt clamps v into [lo, hi].
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// clampByte rounds a float32 channel value to the nearest integer,
// clamps it into [0, 255], and narrows it to a byte. Narrowing never
// wraps. Rounding (rather than truncation) keeps a constant-valued
// image stable under a normalized kernel despite float32 accumulation
// error.
func clampByte(v float32) uint8 {
	v += 0.5
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
