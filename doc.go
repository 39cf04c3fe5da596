// Package pixelpipe is an RGBA pixel-buffer filter engine for Go.
//
// # Overview
//
// pixelpipe applies a fixed catalog of spatial and tonal transforms
// (grayscale, brightness, contrast, Gaussian blur, sharpen, Sobel edge
// detection, Lanczos resize, invert, sepia) to tightly packed RGBA
// buffers and composes them into ordered pipelines. Every filter is a
// pure function: it consumes a Buffer and produces a new one, never
// mutating its input.
//
// # Quick Start
//
//	import "github.com/pixelforge/pixelpipe"
//
//	buf, _ := pixelpipe.FromBytes(raw, 640, 480)
//
//	p := pixelpipe.NewPipeline([]pixelpipe.Op{
//	    pixelpipe.BrightnessOp(0.1),
//	    pixelpipe.BlurOp(2.0),
//	    pixelpipe.GrayscaleOp(),
//	})
//	out, err := p.Execute(buf)
//
// # Architecture
//
// The library is organized into:
//   - Public API: Buffer, Op, Pipeline, and one function per filter
//   - Internal: filter (kernels, convolution, resampling), parallel
//     (bounded worker fan-out over row ranges)
//   - Boundary packages: codec (decode/encode), proc (processor object),
//     handle (flat handle-based surface), batch (concurrent batches)
//
// # Numeric Contracts
//
// All channel arithmetic happens in floating point and is clamped into
// [0, 255] before narrowing back to a byte, so no filter can wrap or
// panic on extreme parameters. Filters preserve the input dimensions
// except Resize, and every returned Buffer satisfies the packed-RGBA
// invariant len(pix) == width*height*4.
//
// # Concurrency
//
// Filters are internally data-parallel: the output is partitioned into
// disjoint row ranges computed by a bounded set of workers and joined
// before the filter returns. The API surface itself is synchronous and
// a Buffer is never shared between concurrent filter calls by the
// engine.
package pixelpipe

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
