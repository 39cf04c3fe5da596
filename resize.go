package pixelpipe

import (
	"fmt"

	"github.com/pixelforge/pixelpipe/internal/filter"
)

// Resize resamples the buffer to exactly width x height using a
// Lanczos-3 windowed-sinc filter applied separably per channel,
// including alpha. Overshoot from the sinc lobes is clamped into
// [0, 255].
//
// Returns ErrInvalidDimensions if the target dimensions are zero,
// negative, or too large to allocate.
func Resize(src *Buffer, width, height int) (*Buffer, error) {
	return resizeWith(src, width, height, 0)
}

func resizeWith(src *Buffer, width, height, workers int) (*Buffer, error) {
	if !validDimensions(width, height) {
		return nil, fmt.Errorf("%w: resize target %dx%d", ErrInvalidDimensions, width, height)
	}
	pix := filter.ResizeLanczos(src.pix, src.width, src.height, width, height, workers)
	return &Buffer{width: width, height: height, pix: pix}, nil
}
