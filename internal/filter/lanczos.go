package filter

import (
	"math"

	"github.com/pixelforge/pixelpipe/internal/parallel"
)

// lanczosSupport is the support radius of the windowed-sinc filter.
// Lanczos-3 is the standard high-quality choice for image resampling.
const lanczosSupport = 3.0

// lanczos3 evaluates the Lanczos-3 windowed sinc at t.
func lanczos3(t float64) float64 {
	t = math.Abs(t)
	if t >= lanczosSupport {
		return 0
	}
	if t < 1e-8 {
		return 1
	}
	pt := math.Pi * t
	return lanczosSupport * math.Sin(pt) * math.Sin(pt/lanczosSupport) / (pt * pt)
}

// contributor is one source sample feeding a destination sample.
type contributor struct {
	index  int
	weight float64
}

// contribRow holds the normalized source contributions for one
// destination coordinate.
type contribRow struct {
	contribs []contributor
}

// resampleWeights precomputes, for every destination coordinate in
// [0, dstLen), the set of source coordinates and normalized Lanczos
// weights that produce it.
//
// When downscaling, the filter is stretched by the scale factor so that
// every source pixel still contributes (standard area-averaging
// behavior); when upscaling the filter keeps its natural support.
// Source coordinates beyond the edges clamp to the nearest valid sample.
func resampleWeights(srcLen, dstLen int) []contribRow {
	scale := float64(srcLen) / float64(dstLen)
	filterScale := scale
	if filterScale < 1 {
		filterScale = 1
	}
	support := lanczosSupport * filterScale

	rows := make([]contribRow, dstLen)
	for d := 0; d < dstLen; d++ {
		// Center of the destination sample in source coordinates.
		center := (float64(d)+0.5)*scale - 0.5

		lo := int(math.Floor(center - support))
		hi := int(math.Ceil(center + support))

		contribs := make([]contributor, 0, hi-lo+1)
		sum := 0.0
		for s := lo; s <= hi; s++ {
			w := lanczos3((float64(s) - center) / filterScale)
			if w == 0 {
				continue
			}
			contribs = append(contribs, contributor{
				index:  clampInt(s, 0, srcLen-1),
				weight: w,
			})
			sum += w
		}

		// Normalize so each destination sample is a proper weighted
		// average regardless of edge clamping.
		if sum != 0 {
			inv := 1 / sum
			for i := range contribs {
				contribs[i].weight *= inv
			}
		}

		rows[d] = contribRow{contribs: contribs}
	}
	return rows
}

// ResizeLanczos resamples a packed RGBA buffer to dstWidth x dstHeight
// using a separable Lanczos-3 filter: a horizontal pass to an
// intermediate dstWidth x srcHeight buffer, then a vertical pass. All
// four channels, including alpha, are resampled independently, and
// results are clamped into [0, 255] since windowed-sinc filters can
// overshoot.
func ResizeLanczos(pix []uint8, srcWidth, srcHeight, dstWidth, dstHeight, workers int) []uint8 {
	// Horizontal pass: srcWidth -> dstWidth on every source row.
	xWeights := resampleWeights(srcWidth, dstWidth)
	mid := make([]uint8, dstWidth*srcHeight*4)

	parallel.Ranges(workers, srcHeight, func(lo, hi int) {
		for y := lo; y < hi; y++ {
			row := pix[y*srcWidth*4:]
			dst := mid[y*dstWidth*4:]
			for x := 0; x < dstWidth; x++ {
				var r, g, b, a float64
				for _, c := range xWeights[x].contribs {
					p := row[c.index*4:]
					r += float64(p[0]) * c.weight
					g += float64(p[1]) * c.weight
					b += float64(p[2]) * c.weight
					a += float64(p[3]) * c.weight
				}
				d := dst[x*4:]
				d[0] = clampByte(float32(r))
				d[1] = clampByte(float32(g))
				d[2] = clampByte(float32(b))
				d[3] = clampByte(float32(a))
			}
		}
	})

	// Vertical pass: srcHeight -> dstHeight on every intermediate column.
	yWeights := resampleWeights(srcHeight, dstHeight)
	out := make([]uint8, dstWidth*dstHeight*4)

	parallel.Ranges(workers, dstHeight, func(lo, hi int) {
		for y := lo; y < hi; y++ {
			dst := out[y*dstWidth*4:]
			for x := 0; x < dstWidth; x++ {
				var r, g, b, a float64
				for _, c := range yWeights[y].contribs {
					p := mid[(c.index*dstWidth+x)*4:]
					r += float64(p[0]) * c.weight
					g += float64(p[1]) * c.weight
					b += float64(p[2]) * c.weight
					a += float64(p[3]) * c.weight
				}
				d := dst[x*4:]
				d[0] = clampByte(float32(r))
				d[1] = clampByte(float32(g))
				d[2] = clampByte(float32(b))
				d[3] = clampByte(float32(a))
			}
		}
	})

	return out
}
