package pixelpipe

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"math"
)

// Buffer represents a rectangular pixel buffer.
//
// Pixels are stored tightly packed in row-major order, 4 bytes per pixel
// in R, G, B, A channel order (non-premultiplied). The invariant
// len(pix) == width*height*4 holds for every Buffer the package produces.
//
// Buffers have value semantics across the filter API: every filter reads
// its input and allocates a fresh output, so two Buffers never alias the
// same pixel storage unless the caller arranges it.
type Buffer struct {
	width  int
	height int
	pix    []uint8 // RGBA format, 4 bytes per pixel
}

// validDimensions reports whether width and height are positive and
// width*height*4 is representable in an int. The product is what every
// Buffer allocates and compares against, so it must not wrap.
func validDimensions(width, height int) bool {
	return width > 0 && height > 0 && width <= math.MaxInt/4/height
}

// NewBuffer creates a new zeroed buffer with the given dimensions.
// Both dimensions must be positive.
func NewBuffer(width, height int) (*Buffer, error) {
	if !validDimensions(width, height) {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return &Buffer{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height*4),
	}, nil
}

// FromBytes creates a buffer from caller-supplied raw RGBA bytes.
// The slice is copied, so the caller keeps ownership of pix.
// Returns ErrInvalidDimensions if len(pix) != width*height*4, a
// dimension is non-positive, or the product overflows.
func FromBytes(pix []uint8, width, height int) (*Buffer, error) {
	if !validDimensions(width, height) {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if len(pix) != width*height*4 {
		return nil, fmt.Errorf("%w: got %d bytes, want %d for %dx%d",
			ErrInvalidDimensions, len(pix), width*height*4, width, height)
	}
	b := &Buffer{
		width:  width,
		height: height,
		pix:    make([]uint8, len(pix)),
	}
	copy(b.pix, pix)
	return b, nil
}

// newBufferUnchecked allocates a buffer without validating dimensions.
// Internal filter code only, where dimensions are derived from an
// existing valid Buffer.
func newBufferUnchecked(width, height int) *Buffer {
	return &Buffer{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height*4),
	}
}

// Width returns the width of the buffer in pixels.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the height of the buffer in pixels.
func (b *Buffer) Height() int {
	return b.height
}

// Pix returns the raw pixel data (RGBA format).
// The slice is the buffer's backing storage, not a copy.
func (b *Buffer) Pix() []uint8 {
	return b.pix
}

// Clone returns a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	pix := make([]uint8, len(b.pix))
	copy(pix, b.pix)
	return &Buffer{width: b.width, height: b.height, pix: pix}
}

// Equal reports whether two buffers have identical dimensions and
// channel-exact pixel data.
func (b *Buffer) Equal(other *Buffer) bool {
	if other == nil {
		return false
	}
	return b.width == other.width &&
		b.height == other.height &&
		bytes.Equal(b.pix, other.pix)
}

// SetPixel sets the RGBA channels of a single pixel.
// Out-of-bounds coordinates are silently ignored.
func (b *Buffer) SetPixel(x, y int, r, g, bl, a uint8) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	i := (y*b.width + x) * 4
	b.pix[i+0] = r
	b.pix[i+1] = g
	b.pix[i+2] = bl
	b.pix[i+3] = a
}

// Pixel returns the RGBA channels of a single pixel.
// Out-of-bounds coordinates return (0, 0, 0, 0).
func (b *Buffer) Pixel(x, y int) (r, g, bl, a uint8) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return 0, 0, 0, 0
	}
	i := (y*b.width + x) * 4
	return b.pix[i+0], b.pix[i+1], b.pix[i+2], b.pix[i+3]
}

// ToImage converts the buffer to a standard library image.NRGBA.
// NRGBA is used rather than RGBA because buffer channels are
// non-premultiplied; the copy is byte-for-byte.
func (b *Buffer) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.width, b.height))
	copy(img.Pix, b.pix)
	return img
}

// FromImage creates a buffer from any standard library image.
//
// *image.NRGBA inputs with a packed stride are copied byte-for-byte;
// other image types go through color conversion to non-premultiplied
// RGBA.
func FromImage(img image.Image) *Buffer {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	b := newBufferUnchecked(width, height)

	if nrgba, ok := img.(*image.NRGBA); ok {
		if nrgba.Stride == width*4 {
			copy(b.pix, nrgba.Pix)
			return b
		}
		for y := 0; y < height; y++ {
			src := nrgba.Pix[y*nrgba.Stride:]
			copy(b.pix[y*width*4:(y+1)*width*4], src[:width*4])
		}
		return b
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			i := (y*width + x) * 4
			b.pix[i+0] = c.R
			b.pix[i+1] = c.G
			b.pix[i+2] = c.B
			b.pix[i+3] = c.A
		}
	}
	return b
}

// At implements the image.Image interface.
func (b *Buffer) At(x, y int) color.Color {
	r, g, bl, a := b.Pixel(x, y)
	return color.NRGBA{R: r, G: g, B: bl, A: a}
}

// Bounds implements the image.Image interface.
func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// ColorModel implements the image.Image interface.
func (b *Buffer) ColorModel() color.Model {
	return color.NRGBAModel
}
