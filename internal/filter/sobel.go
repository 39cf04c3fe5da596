package filter

import (
	"math"

	"github.com/pixelforge/pixelpipe/internal/parallel"
)

// Sobel gradient kernels.
var (
	sobelX = [3][3]int32{{-1, 0, 1}, {-2, 0, 2}, {-1, 0, 1}}
	sobelY = [3][3]int32{{-1, -2, -1}, {0, 0, 0}, {1, 2, 1}}
)

// SobelMagnitude applies the 3x3 Sobel operator to a single-channel luma
// plane and returns a packed RGBA buffer with the clamped gradient
// magnitude sqrt(Gx²+Gy²) replicated into R, G, B and alpha set to 255.
//
// Border policy: only interior pixels [1, width-2] x [1, height-2] are
// convolved. The one-pixel output border is left at the zeroed
// background (0,0,0,0). This mirrors the historical behavior of the
// engine and is relied upon by callers; see EdgeDetect in the root
// package.
func SobelMagnitude(luma []uint8, width, height int, workers int) []uint8 {
	out := make([]uint8, width*height*4)
	if width < 3 || height < 3 {
		return out
	}

	// Interior rows only; the fan-out maps [0, height-2) onto [1, height-1).
	parallel.Ranges(workers, height-2, func(lo, hi int) {
		for yy := lo; yy < hi; yy++ {
			y := yy + 1
			dst := out[y*width*4:]
			for x := 1; x < width-1; x++ {
				var gx, gy int32
				for ky := 0; ky < 3; ky++ {
					row := luma[(y+ky-1)*width:]
					for kx := 0; kx < 3; kx++ {
						px := int32(row[x+kx-1])
						gx += px * sobelX[ky][kx]
						gy += px * sobelY[ky][kx]
					}
				}
				mag := clampByte(float32(math.Sqrt(float64(gx*gx + gy*gy))))
				d := dst[x*4:]
				d[0] = mag
				d[1] = mag
				d[2] = mag
				d[3] = 255
			}
		}
	})

	return out
}
