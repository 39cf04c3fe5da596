// Package codec decodes and encodes standard raster containers to and
// from pixelpipe Buffers.
//
// The engine itself never touches container formats; it depends on this
// package only through the two operations "decode bytes to buffer" and
// "encode buffer to bytes". PNG is the canonical lossless container:
// any buffer the engine produces round-trips byte-for-byte through
// EncodePNG and Decode.
//
// Supported decode formats: PNG, JPEG, BMP, TIFF, WebP, and the zstd
// raw interchange frame.
// Supported encode formats: PNG, JPEG, BMP, TIFF, plus the zstd raw
// interchange frame (see EncodeRaw).
package codec

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // decode-only registration

	"github.com/pixelforge/pixelpipe"
)

// DefaultJPEGQuality is used when a quality of 0 is passed to JPEG
// encoding helpers.
const DefaultJPEGQuality = 90

// Decode decodes an image byte stream into a Buffer, auto-detecting the
// container format. Raw interchange frames (see EncodeRaw) are sniffed
// by magic like every other container. Returns ErrUnsupportedFormat if
// the stream is not a recognized, well-formed raster container.
func Decode(data []byte) (*pixelpipe.Buffer, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty data", pixelpipe.ErrUnsupportedFormat)
	}
	if bytes.HasPrefix(data, rawMagic) {
		return DecodeRaw(data)
	}
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", pixelpipe.ErrUnsupportedFormat, err)
	}
	buf := pixelpipe.FromImage(img)
	pixelpipe.Logger().Debug("decoded image",
		"format", format, "width", buf.Width(), "height", buf.Height())
	return buf, nil
}

// DecodeReader decodes an image from r, auto-detecting the format.
func DecodeReader(r io.Reader) (*pixelpipe.Buffer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("codec: read: %w", err)
	}
	return Decode(data)
}

// EncodePNG encodes the buffer as PNG, the engine's lossless container.
func EncodePNG(buf *pixelpipe.Buffer) ([]byte, error) {
	var out bytes.Buffer
	if err := png.Encode(&out, buf.ToImage()); err != nil {
		return nil, fmt.Errorf("codec: encode PNG: %w", err)
	}
	return out.Bytes(), nil
}

// EncodeJPEG encodes the buffer as JPEG with the given quality (1-100).
// Quality 0 selects DefaultJPEGQuality. JPEG is lossy and discards
// alpha; use EncodePNG when the bytes must round-trip.
func EncodeJPEG(buf *pixelpipe.Buffer, quality int) ([]byte, error) {
	if quality == 0 {
		quality = DefaultJPEGQuality
	}
	if quality < 1 {
		quality = 1
	}
	if quality > 100 {
		quality = 100
	}

	var out bytes.Buffer
	if err := jpeg.Encode(&out, buf.ToImage(), &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("codec: encode JPEG: %w", err)
	}
	return out.Bytes(), nil
}

// EncodeBMP encodes the buffer as BMP.
func EncodeBMP(buf *pixelpipe.Buffer) ([]byte, error) {
	var out bytes.Buffer
	if err := bmp.Encode(&out, buf.ToImage()); err != nil {
		return nil, fmt.Errorf("codec: encode BMP: %w", err)
	}
	return out.Bytes(), nil
}

// EncodeTIFF encodes the buffer as an uncompressed TIFF.
func EncodeTIFF(buf *pixelpipe.Buffer) ([]byte, error) {
	var out bytes.Buffer
	if err := tiff.Encode(&out, buf.ToImage(), nil); err != nil {
		return nil, fmt.Errorf("codec: encode TIFF: %w", err)
	}
	return out.Bytes(), nil
}

// Load reads and decodes an image file, auto-detecting the format from
// the content.
func Load(path string) (*pixelpipe.Buffer, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("codec: read file: %w", err)
	}
	return Decode(data)
}

// Save encodes the buffer according to the file extension (.png, .jpg,
// .jpeg, .bmp, .tif, .tiff, .ppr for the raw interchange frame) and
// writes it to path. Returns ErrUnsupportedFormat for unknown
// extensions.
func Save(path string, buf *pixelpipe.Buffer) error {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		data, err = EncodePNG(buf)
	case ".jpg", ".jpeg":
		data, err = EncodeJPEG(buf, 0)
	case ".bmp":
		data, err = EncodeBMP(buf)
	case ".tif", ".tiff":
		data, err = EncodeTIFF(buf)
	case ".ppr":
		data, err = EncodeRaw(buf)
	default:
		return fmt.Errorf("%w: extension %q", pixelpipe.ErrUnsupportedFormat, filepath.Ext(path))
	}
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("codec: write file: %w", err)
	}
	return nil
}
