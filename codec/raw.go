package codec

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/klauspost/compress/zstd"

	"github.com/pixelforge/pixelpipe"
)

// rawMagic identifies a pixelpipe raw interchange frame.
var rawMagic = []byte("PXPR")

// rawHeaderLen is magic + u32 width + u32 height.
const rawHeaderLen = 12

// Shared zstd coders. EncodeAll/DecodeAll on a single instance are safe
// for concurrent use.
var (
	rawEncoder *zstd.Encoder
	rawDecoder *zstd.Decoder
)

func init() {
	// Errors are impossible with default options and a nil writer/reader.
	rawEncoder, _ = zstd.NewWriter(nil)
	rawDecoder, _ = zstd.NewReader(nil)
}

// EncodeRaw encodes the buffer as a zstd-compressed raw RGBA frame:
// a 12-byte header (magic "PXPR", little-endian uint32 width and
// height) followed by the zstd-compressed pixel bytes.
//
// The frame is an internal interchange format for caching intermediate
// buffers cheaply; it is exactly lossless and considerably faster to
// encode than PNG.
func EncodeRaw(buf *pixelpipe.Buffer) ([]byte, error) {
	header := make([]byte, rawHeaderLen)
	copy(header, rawMagic)
	binary.LittleEndian.PutUint32(header[4:], uint32(buf.Width()))
	binary.LittleEndian.PutUint32(header[8:], uint32(buf.Height()))

	return rawEncoder.EncodeAll(buf.Pix(), header), nil
}

// DecodeRaw decodes a frame produced by EncodeRaw. Returns
// ErrUnsupportedFormat if the magic or compressed payload is invalid,
// and ErrInvalidDimensions if the decompressed pixel data does not
// match the header dimensions.
func DecodeRaw(data []byte) (*pixelpipe.Buffer, error) {
	if len(data) < rawHeaderLen || !bytes.Equal(data[:4], rawMagic) {
		return nil, fmt.Errorf("%w: not a raw frame", pixelpipe.ErrUnsupportedFormat)
	}
	width := int(binary.LittleEndian.Uint32(data[4:]))
	height := int(binary.LittleEndian.Uint32(data[8:]))

	pix, err := rawDecoder.DecodeAll(data[rawHeaderLen:], nil)
	if err != nil {
		return nil, fmt.Errorf("%w: corrupt raw payload: %v", pixelpipe.ErrUnsupportedFormat, err)
	}

	return pixelpipe.FromBytes(pix, width, height)
}
