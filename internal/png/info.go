package png

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
)

var (
	ErrBadSignature = errors.New("png: bad signature")
	ErrTruncated    = errors.New("png: truncated stream")
)

// Info describes a PNG stream at the chunk level.
type Info struct {
	Width     int
	Height    int
	BitDepth  int
	ColorType int
	Interlace int
	Chunks    []string // chunk types in stream order
	IDATSize  int      // total IDAT payload bytes
}

// GetInfo parses the signature and chunk sequence of data, verifying each
// chunk's CRC, and returns the header fields and chunk layout. It does not
// decompress or decode pixel data.
func GetInfo(data []byte) (*Info, error) {
	if len(data) < len(Signature) || string(data[:len(Signature)]) != Signature {
		return nil, ErrBadSignature
	}

	info := &Info{}
	sawIHDR := false
	sawIEND := false

	off := len(Signature)
	for off < len(data) {
		if len(data)-off < 8 {
			return nil, ErrTruncated
		}
		length := int(binary.BigEndian.Uint32(data[off : off+4]))
		typ := string(data[off+4 : off+8])
		if len(data)-off < 8+length+4 {
			return nil, ErrTruncated
		}

		body := data[off+4 : off+8+length] // type + data, as checksummed
		stored := binary.BigEndian.Uint32(data[off+8+length : off+12+length])
		if crc32.ChecksumIEEE(body) != stored {
			return nil, fmt.Errorf("png: CRC mismatch in %s chunk", typ)
		}

		switch {
		case !sawIHDR:
			if typ != "IHDR" || length != ihdrLength {
				return nil, fmt.Errorf("png: expected IHDR first, got %s (%d bytes)", typ, length)
			}
			hdr := data[off+8 : off+8+length]
			info.Width = int(binary.BigEndian.Uint32(hdr[0:4]))
			info.Height = int(binary.BigEndian.Uint32(hdr[4:8]))
			info.BitDepth = int(hdr[8])
			info.ColorType = int(hdr[9])
			info.Interlace = int(hdr[12])
			sawIHDR = true
		case typ == "IDAT":
			info.IDATSize += length
		case typ == "IEND":
			if length != 0 {
				return nil, fmt.Errorf("png: IEND carries %d bytes of data", length)
			}
			sawIEND = true
		}

		info.Chunks = append(info.Chunks, typ)
		off += 8 + length + 4
		if sawIEND {
			break
		}
	}

	if !sawIEND {
		return nil, ErrTruncated
	}
	return info, nil
}

// ColorTypeName returns the PNG spec's name for a color type value.
func ColorTypeName(ct int) string {
	switch ct {
	case 0:
		return "grayscale"
	case 2:
		return "truecolor"
	case 3:
		return "indexed"
	case 4:
		return "grayscale+alpha"
	case 6:
		return "truecolor+alpha"
	default:
		return fmt.Sprintf("unknown(%d)", ct)
	}
}
