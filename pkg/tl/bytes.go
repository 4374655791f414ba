package tl

import "fmt"

// longFieldMarker introduces the 4-byte length prefix used for byte
// strings of 254 bytes or more.
const longFieldMarker = 254

func align4(n int) int {
	return (n + 3) &^ 3
}

// BytesSize returns the encoded size of a byte string of length n,
// including the length prefix and trailing padding. It is a pure
// function of n and performs no allocation.
func BytesSize(n int) int {
	if n < longFieldMarker {
		return align4(1 + n)
	}
	return align4(4 + n)
}

// EncodeBytes encodes a byte string in the canonical TL form: strings
// shorter than 254 bytes get a single length byte, longer ones the
// 0xfe marker followed by a 3-byte little-endian length. The result is
// zero-padded to a multiple of 4 bytes.
func EncodeBytes(b []byte) []byte {
	out := make([]byte, BytesSize(len(b)))

	prefix := 1
	if len(b) < longFieldMarker {
		out[0] = byte(len(b))
	} else {
		out[0] = longFieldMarker
		out[1] = byte(len(b))
		out[2] = byte(len(b) >> 8)
		out[3] = byte(len(b) >> 16)
		prefix = 4
	}

	copy(out[prefix:], b)
	return out
}

// DecodeBytes decodes a TL byte string starting at offset and returns
// the string together with the total number of bytes consumed,
// including the length prefix and padding. The form is chosen by the
// marker byte alone, so non-canonical short strings in long form are
// accepted. The returned bytes are a copy.
func DecodeBytes(buf []byte, offset int) ([]byte, int, error) {
	if offset < 0 || offset >= len(buf) {
		return nil, 0, fmt.Errorf("%w: no length byte at offset %d", ErrTruncated, offset)
	}

	var n, prefix int
	if m := buf[offset]; m < longFieldMarker {
		n, prefix = int(m), 1
	} else {
		if len(buf)-offset < 4 {
			return nil, 0, fmt.Errorf("%w: short long-form length prefix at offset %d", ErrTruncated, offset)
		}
		n = int(buf[offset+1]) | int(buf[offset+2])<<8 | int(buf[offset+3])<<16
		prefix = 4
	}

	total := align4(prefix + n)
	if total > len(buf)-offset {
		return nil, 0, fmt.Errorf("%w: byte field of %d bytes at offset %d exceeds buffer", ErrTruncated, n, offset)
	}

	out := make([]byte, n)
	copy(out, buf[offset+prefix:])
	return out, total, nil
}
