package filter

import (
	"github.com/pixelforge/pixelpipe/internal/parallel"
)

// MapPixels applies fn to every pixel of a packed RGBA buffer and
// returns a new buffer of the same length, leaving src untouched. fn
// receives the 4-byte destination and source slices for one pixel;
// pixels are partitioned into disjoint contiguous ranges computed in
// parallel.
//
// fn must be safe to call concurrently from multiple goroutines (point
// filters are pure per-pixel functions, so this holds by construction).
func MapPixels(src []uint8, workers int, fn func(dst, src []uint8)) []uint8 {
	out := make([]uint8, len(src))
	n := len(src) / 4

	parallel.Ranges(workers, n, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			o := i * 4
			fn(out[o:o+4], src[o:o+4])
		}
	})

	return out
}

// MapPixelPairs is MapPixels over two equally sized source buffers,
// giving fn both source pixels. Used by unsharp masking, which combines
// the original and blurred images per pixel.
func MapPixelPairs(srcA, srcB []uint8, workers int, fn func(dst, a, b []uint8)) []uint8 {
	out := make([]uint8, len(srcA))
	n := len(srcA) / 4

	parallel.Ranges(workers, n, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			o := i * 4
			fn(out[o:o+4], srcA[o:o+4], srcB[o:o+4])
		}
	})

	return out
}

// ClampByte exposes the shared channel-narrowing helper to the root
// package so public point filters use identical numeric behavior.
func ClampByte(v float32) uint8 { return clampByte(v) }
