package pixelpipe

import "errors"

// Errors returned by buffer construction, filters, and pipelines.
// Boundary packages (codec, proc, handle) wrap these same sentinels so
// callers can classify failures with errors.Is regardless of the entry
// point.
var (
	// ErrInvalidDimensions is returned when a raw byte slice does not
	// match width*height*4, or when a resize target dimension is zero.
	ErrInvalidDimensions = errors.New("pixelpipe: invalid dimensions")

	// ErrUnsupportedFormat is returned by the codec boundary when a byte
	// stream is not a recognized raster container.
	ErrUnsupportedFormat = errors.New("pixelpipe: unsupported image format")

	// ErrInvalidParameter is returned when a filter parameter is outside
	// its operating domain, e.g. a non-positive blur sigma.
	ErrInvalidParameter = errors.New("pixelpipe: invalid filter parameter")
)
