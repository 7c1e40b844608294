package png

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"

	"github.com/davesmith10/pwaicons/internal/ir"
	"github.com/klauspost/compress/zlib"
)

// Signature is the fixed 8-byte prefix of every PNG stream.
const Signature = "\x89PNG\r\n\x1a\n"

const (
	bitDepth8    = 8
	colorTypeRGB = 2 // truecolor, no alpha
	filterNone   = 0
	ihdrLength   = 13
)

// Encode serializes img as a minimal PNG: signature, IHDR, a single
// zlib-compressed IDAT, and IEND. Output is 8-bit truecolor with no
// ancillary chunks.
func Encode(img *ir.RGBImage) ([]byte, error) {
	if img.Width <= 0 || img.Height <= 0 {
		return nil, fmt.Errorf("invalid dimensions %dx%d", img.Width, img.Height)
	}
	expected := img.Width * img.Height * 3
	if len(img.Pixels) != expected {
		return nil, fmt.Errorf("expected %d RGB bytes for %dx%d, got %d",
			expected, img.Width, img.Height, len(img.Pixels))
	}

	var out bytes.Buffer
	out.WriteString(Signature)

	ihdr := make([]byte, ihdrLength)
	binary.BigEndian.PutUint32(ihdr[0:4], uint32(img.Width))
	binary.BigEndian.PutUint32(ihdr[4:8], uint32(img.Height))
	ihdr[8] = bitDepth8
	ihdr[9] = colorTypeRGB
	// compression, filter and interlace methods are all 0
	writeChunk(&out, "IHDR", ihdr)

	idat, err := compressScanlines(img)
	if err != nil {
		return nil, fmt.Errorf("compressing pixel data: %w", err)
	}
	writeChunk(&out, "IDAT", idat)

	writeChunk(&out, "IEND", nil)
	return out.Bytes(), nil
}

// compressScanlines serializes the pixel grid as filter-prefixed scanlines
// (one leading filter byte per row, always None) and returns the
// zlib-compressed result.
func compressScanlines(img *ir.RGBImage) ([]byte, error) {
	stride := img.Width * 3
	raw := make([]byte, 0, img.Height*(1+stride))
	for y := 0; y < img.Height; y++ {
		raw = append(raw, filterNone)
		raw = append(raw, img.Pixels[y*stride:(y+1)*stride]...)
	}

	var buf bytes.Buffer
	zw, err := zlib.NewWriterLevel(&buf, zlib.BestCompression)
	if err != nil {
		return nil, err
	}
	if _, err := zw.Write(raw); err != nil {
		zw.Close()
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeChunk appends one PNG chunk: big-endian data length, 4-byte type,
// data, then CRC-32 computed over type+data.
func writeChunk(out *bytes.Buffer, typ string, data []byte) {
	var word [4]byte
	binary.BigEndian.PutUint32(word[:], uint32(len(data)))
	out.Write(word[:])
	out.WriteString(typ)
	out.Write(data)

	crc := crc32.NewIEEE()
	crc.Write([]byte(typ))
	crc.Write(data)
	binary.BigEndian.PutUint32(word[:], crc.Sum32())
	out.Write(word[:])
}
