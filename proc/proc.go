// Package proc provides a stateful processor object over the pixelpipe
// engine for embedding hosts.
//
// A Processor owns exactly one Buffer at a time. Every filter method
// replaces the owned buffer wholesale with the filter's output; there is
// no partial mutation, and a failed call leaves the owned buffer
// untouched. The engine itself stays value-based — this package is a
// thin ownership wrapper layered strictly on top.
package proc

import (
	"github.com/pixelforge/pixelpipe"
)

// Processor holds one owned Buffer and applies filters to it in place
// (by wholesale replacement). It is not safe for concurrent use.
type Processor struct {
	buf *pixelpipe.Buffer
}

// New creates a Processor from raw RGBA bytes. The data is validated
// against the width*height*4 invariant and copied.
func New(data []uint8, width, height int) (*Processor, error) {
	buf, err := pixelpipe.FromBytes(data, width, height)
	if err != nil {
		return nil, err
	}
	return &Processor{buf: buf}, nil
}

// FromBuffer creates a Processor owning a clone of buf.
func FromBuffer(buf *pixelpipe.Buffer) *Processor {
	return &Processor{buf: buf.Clone()}
}

// Width returns the width of the owned buffer.
func (p *Processor) Width() int { return p.buf.Width() }

// Height returns the height of the owned buffer.
func (p *Processor) Height() int { return p.buf.Height() }

// Data returns a copy of the owned buffer's pixel bytes.
func (p *Processor) Data() []uint8 {
	out := make([]uint8, len(p.buf.Pix()))
	copy(out, p.buf.Pix())
	return out
}

// Buffer returns a clone of the owned buffer.
func (p *Processor) Buffer() *pixelpipe.Buffer { return p.buf.Clone() }

// Reset replaces the owned buffer with new raw RGBA data, validated
// against the invariant. On error the previous buffer is kept.
func (p *Processor) Reset(data []uint8, width, height int) error {
	buf, err := pixelpipe.FromBytes(data, width, height)
	if err != nil {
		return err
	}
	p.buf = buf
	return nil
}

// Grayscale converts the owned buffer to grayscale.
func (p *Processor) Grayscale() {
	p.buf = pixelpipe.Grayscale(p.buf)
}

// Brightness adjusts brightness by amount in [-1, 1] nominal.
func (p *Processor) Brightness(amount float32) {
	p.buf = pixelpipe.Brightness(p.buf, amount)
}

// Contrast adjusts contrast by the given factor.
func (p *Processor) Contrast(factor float32) {
	p.buf = pixelpipe.Contrast(p.buf, factor)
}

// Blur applies a Gaussian blur. The owned buffer is unchanged on error.
func (p *Processor) Blur(sigma float32) error {
	out, err := pixelpipe.Blur(p.buf, sigma)
	if err != nil {
		return err
	}
	p.buf = out
	return nil
}

// Sharpen applies unsharp-mask sharpening.
func (p *Processor) Sharpen() {
	p.buf = pixelpipe.Sharpen(p.buf)
}

// EdgeDetect applies Sobel edge detection.
func (p *Processor) EdgeDetect() {
	p.buf = pixelpipe.EdgeDetect(p.buf)
}

// Resize resamples the owned buffer to width x height. The owned buffer
// is unchanged on error.
func (p *Processor) Resize(width, height int) error {
	out, err := pixelpipe.Resize(p.buf, width, height)
	if err != nil {
		return err
	}
	p.buf = out
	return nil
}

// Invert inverts the color channels.
func (p *Processor) Invert() {
	p.buf = pixelpipe.Invert(p.buf)
}

// Sepia applies sepia toning.
func (p *Processor) Sepia() {
	p.buf = pixelpipe.Sepia(p.buf)
}

// ApplyOps runs an operation list against the owned buffer as one
// pipeline. The owned buffer is replaced only if the whole pipeline
// succeeds.
func (p *Processor) ApplyOps(ops []pixelpipe.Op) error {
	out, err := pixelpipe.NewPipeline(ops).Execute(p.buf)
	if err != nil {
		return err
	}
	p.buf = out
	return nil
}

// ApplyOpsJSON parses a textual operation list (see pixelpipe.ParseOps)
// and runs it against the owned buffer.
func (p *Processor) ApplyOpsJSON(data []byte) error {
	ops, err := pixelpipe.ParseOps(data)
	if err != nil {
		return err
	}
	return p.ApplyOps(ops)
}

// QuickGrayscale converts raw RGBA bytes to grayscale without keeping a
// Processor around.
func QuickGrayscale(data []uint8, width, height int) ([]uint8, error) {
	buf, err := pixelpipe.FromBytes(data, width, height)
	if err != nil {
		return nil, err
	}
	return pixelpipe.Grayscale(buf).Pix(), nil
}

// QuickBrightness adjusts brightness on raw RGBA bytes in one shot.
func QuickBrightness(data []uint8, width, height int, amount float32) ([]uint8, error) {
	buf, err := pixelpipe.FromBytes(data, width, height)
	if err != nil {
		return nil, err
	}
	return pixelpipe.Brightness(buf, amount).Pix(), nil
}

// QuickBlur applies a Gaussian blur on raw RGBA bytes in one shot.
func QuickBlur(data []uint8, width, height int, sigma float32) ([]uint8, error) {
	buf, err := pixelpipe.FromBytes(data, width, height)
	if err != nil {
		return nil, err
	}
	out, err := pixelpipe.Blur(buf, sigma)
	if err != nil {
		return nil, err
	}
	return out.Pix(), nil
}
