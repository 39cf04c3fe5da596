// Package handle exposes the pixelpipe engine through opaque integer
// handles, for hosts that cannot hold Go pointers across a boundary.
//
// Every buffer lives in a process-wide registry keyed by Handle. The
// registry is safe for concurrent use; individual handles are not —
// applying two filters to the same handle concurrently is a data race
// on the caller's side.
package handle

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/pixelforge/pixelpipe"
)

// Handle identifies a registered buffer. The zero value is never a
// valid handle.
type Handle uint64

// ErrInvalidHandle is returned when a handle is unknown or already
// destroyed.
var ErrInvalidHandle = errors.New("handle: invalid or destroyed handle")

type entry struct {
	buf *pixelpipe.Buffer
	tag string
}

var registry = struct {
	sync.Mutex
	next    Handle
	entries map[Handle]*entry
}{
	next:    1,
	entries: make(map[Handle]*entry),
}

// Version reports the engine version.
func Version() string { return pixelpipe.Version }

// Create registers a new buffer from raw RGBA bytes and returns its
// handle. The data is validated and copied.
func Create(data []uint8, width, height int) (Handle, error) {
	buf, err := pixelpipe.FromBytes(data, width, height)
	if err != nil {
		return 0, err
	}
	e := &entry{buf: buf, tag: uuid.NewString()}

	registry.Lock()
	h := registry.next
	registry.next++
	registry.entries[h] = e
	registry.Unlock()

	pixelpipe.Logger().Debug("handle created",
		slog.Uint64("handle", uint64(h)),
		slog.String("tag", e.tag),
		slog.Int("width", width),
		slog.Int("height", height))
	return h, nil
}

// Destroy removes a handle from the registry, releasing its buffer.
func Destroy(h Handle) error {
	registry.Lock()
	e, ok := registry.entries[h]
	if ok {
		delete(registry.entries, h)
	}
	registry.Unlock()
	if !ok {
		return ErrInvalidHandle
	}
	pixelpipe.Logger().Debug("handle destroyed",
		slog.Uint64("handle", uint64(h)),
		slog.String("tag", e.tag))
	return nil
}

func lookup(h Handle) (*entry, error) {
	registry.Lock()
	e, ok := registry.entries[h]
	registry.Unlock()
	if !ok {
		return nil, ErrInvalidHandle
	}
	return e, nil
}

// Width returns the width of the buffer behind h.
func Width(h Handle) (int, error) {
	e, err := lookup(h)
	if err != nil {
		return 0, err
	}
	return e.buf.Width(), nil
}

// Height returns the height of the buffer behind h.
func Height(h Handle) (int, error) {
	e, err := lookup(h)
	if err != nil {
		return 0, err
	}
	return e.buf.Height(), nil
}

// DataSize returns the byte length of the buffer behind h, always
// width*height*4.
func DataSize(h Handle) (int, error) {
	e, err := lookup(h)
	if err != nil {
		return 0, err
	}
	return len(e.buf.Pix()), nil
}

// Data returns a copy of the pixel bytes behind h.
func Data(h Handle) ([]uint8, error) {
	e, err := lookup(h)
	if err != nil {
		return nil, err
	}
	out := make([]uint8, len(e.buf.Pix()))
	copy(out, e.buf.Pix())
	return out, nil
}

// CopyTo copies the pixel bytes behind h into dst. dst must be exactly
// DataSize(h) bytes long.
func CopyTo(h Handle, dst []uint8) error {
	e, err := lookup(h)
	if err != nil {
		return err
	}
	if len(dst) != len(e.buf.Pix()) {
		return pixelpipe.ErrInvalidDimensions
	}
	copy(dst, e.buf.Pix())
	return nil
}

// replace swaps the buffer behind h, tolerating a concurrent Destroy.
func replace(h Handle, buf *pixelpipe.Buffer) {
	registry.Lock()
	if e, ok := registry.entries[h]; ok {
		e.buf = buf
	}
	registry.Unlock()
}

// ApplyGrayscale converts the buffer behind h to grayscale.
func ApplyGrayscale(h Handle) error {
	e, err := lookup(h)
	if err != nil {
		return err
	}
	replace(h, pixelpipe.Grayscale(e.buf))
	return nil
}

// ApplyBrightness adjusts brightness on the buffer behind h.
func ApplyBrightness(h Handle, amount float32) error {
	e, err := lookup(h)
	if err != nil {
		return err
	}
	replace(h, pixelpipe.Brightness(e.buf, amount))
	return nil
}

// ApplyContrast adjusts contrast on the buffer behind h.
func ApplyContrast(h Handle, factor float32) error {
	e, err := lookup(h)
	if err != nil {
		return err
	}
	replace(h, pixelpipe.Contrast(e.buf, factor))
	return nil
}

// ApplyBlur applies a Gaussian blur to the buffer behind h.
func ApplyBlur(h Handle, sigma float32) error {
	e, err := lookup(h)
	if err != nil {
		return err
	}
	out, err := pixelpipe.Blur(e.buf, sigma)
	if err != nil {
		return err
	}
	replace(h, out)
	return nil
}

// ApplySharpen applies unsharp-mask sharpening to the buffer behind h.
func ApplySharpen(h Handle) error {
	e, err := lookup(h)
	if err != nil {
		return err
	}
	replace(h, pixelpipe.Sharpen(e.buf))
	return nil
}

// ApplyEdgeDetect applies Sobel edge detection to the buffer behind h.
func ApplyEdgeDetect(h Handle) error {
	e, err := lookup(h)
	if err != nil {
		return err
	}
	replace(h, pixelpipe.EdgeDetect(e.buf))
	return nil
}

// ApplyResize resamples the buffer behind h to width x height.
func ApplyResize(h Handle, width, height int) error {
	e, err := lookup(h)
	if err != nil {
		return err
	}
	out, err := pixelpipe.Resize(e.buf, width, height)
	if err != nil {
		return err
	}
	replace(h, out)
	return nil
}

// ApplyInvert inverts the color channels of the buffer behind h.
func ApplyInvert(h Handle) error {
	e, err := lookup(h)
	if err != nil {
		return err
	}
	replace(h, pixelpipe.Invert(e.buf))
	return nil
}

// ApplySepia applies sepia toning to the buffer behind h.
func ApplySepia(h Handle) error {
	e, err := lookup(h)
	if err != nil {
		return err
	}
	replace(h, pixelpipe.Sepia(e.buf))
	return nil
}

// ApplyOps runs an operation list against the buffer behind h as one
// pipeline. The buffer is replaced only if the whole pipeline succeeds.
func ApplyOps(h Handle, ops []pixelpipe.Op) error {
	e, err := lookup(h)
	if err != nil {
		return err
	}
	out, err := pixelpipe.NewPipeline(ops).Execute(e.buf)
	if err != nil {
		return err
	}
	replace(h, out)
	return nil
}
