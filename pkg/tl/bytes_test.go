package tl

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"
)

func randomBytes(t *testing.T, n int) []byte {
	t.Helper()
	rng := rand.New(rand.NewSource(int64(n) + 1))
	b := make([]byte, n)
	rng.Read(b)
	return b
}

func TestBytesRoundTrip(t *testing.T) {
	// Lengths around the short/long form boundary and the padding
	// boundary.
	lengths := []int{0, 1, 2, 3, 4, 5, 252, 253, 254, 255, 256, 1000, 100000}

	for _, n := range lengths {
		payload := randomBytes(t, n)

		encoded := EncodeBytes(payload)
		if len(encoded) != BytesSize(n) {
			t.Errorf("len(EncodeBytes) = %d for n=%d, want BytesSize = %d", len(encoded), n, BytesSize(n))
		}
		if len(encoded)%4 != 0 {
			t.Errorf("encoded length %d for n=%d not padded to 4", len(encoded), n)
		}

		decoded, consumed, err := DecodeBytes(encoded, 0)
		if err != nil {
			t.Fatalf("DecodeBytes() error = %v for n=%d", err, n)
		}
		if consumed != len(encoded) {
			t.Errorf("consumed = %d for n=%d, want %d", consumed, n, len(encoded))
		}
		if !bytes.Equal(decoded, payload) {
			t.Errorf("round trip mismatch for n=%d", n)
		}
	}
}

func TestBytesCanonicalForm(t *testing.T) {
	// Short form below the marker, long form at and above it.
	short := EncodeBytes(make([]byte, 253))
	if short[0] != 253 {
		t.Errorf("length byte = %d for n=253, want 253", short[0])
	}
	if len(short) != 256 {
		t.Errorf("encoded length = %d for n=253, want 256", len(short))
	}

	long := EncodeBytes(make([]byte, 254))
	if long[0] != longFieldMarker {
		t.Errorf("marker byte = %d for n=254, want %d", long[0], longFieldMarker)
	}
	if long[1] != 254 || long[2] != 0 || long[3] != 0 {
		t.Errorf("long-form length bytes = %v for n=254, want [254 0 0]", long[1:4])
	}
	if len(long) != 260 {
		t.Errorf("encoded length = %d for n=254, want 260", len(long))
	}
}

func TestBytesZeroLength(t *testing.T) {
	encoded := EncodeBytes(nil)
	want := []byte{0, 0, 0, 0}
	if !bytes.Equal(encoded, want) {
		t.Errorf("EncodeBytes(nil) = %v, want %v", encoded, want)
	}

	decoded, consumed, err := DecodeBytes(encoded, 0)
	if err != nil {
		t.Fatalf("DecodeBytes() error = %v", err)
	}
	if consumed != 4 {
		t.Errorf("consumed = %d, want 4", consumed)
	}
	if len(decoded) != 0 {
		t.Errorf("decoded length = %d, want 0", len(decoded))
	}
}

func TestBytesPaddingIsZero(t *testing.T) {
	encoded := EncodeBytes([]byte{0xff})
	// 1 length byte + 1 payload byte + 2 padding bytes.
	if len(encoded) != 4 {
		t.Fatalf("encoded length = %d, want 4", len(encoded))
	}
	if encoded[2] != 0 || encoded[3] != 0 {
		t.Errorf("padding bytes = %v, want zeros", encoded[2:])
	}
}

func TestBytesNonCanonicalLongForm(t *testing.T) {
	// A 2-byte string in long form. Encoders never produce this, but
	// decoders pick the form by the marker byte alone.
	encoded := []byte{longFieldMarker, 2, 0, 0, 'h', 'i', 0, 0}

	decoded, consumed, err := DecodeBytes(encoded, 0)
	if err != nil {
		t.Fatalf("DecodeBytes() error = %v", err)
	}
	if consumed != 8 {
		t.Errorf("consumed = %d, want 8", consumed)
	}
	if !bytes.Equal(decoded, []byte("hi")) {
		t.Errorf("decoded = %q, want %q", decoded, "hi")
	}
}

func TestBytesDecodeAtOffset(t *testing.T) {
	payload := []byte("offset")
	buf := append([]byte{0xaa, 0xbb, 0xcc, 0xdd}, EncodeBytes(payload)...)

	decoded, consumed, err := DecodeBytes(buf, 4)
	if err != nil {
		t.Fatalf("DecodeBytes() error = %v", err)
	}
	if consumed != BytesSize(len(payload)) {
		t.Errorf("consumed = %d, want %d", consumed, BytesSize(len(payload)))
	}
	if !bytes.Equal(decoded, payload) {
		t.Errorf("decoded = %q, want %q", decoded, payload)
	}
}

func TestBytesDecodeTruncated(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
	}{
		{"empty buffer", nil},
		{"offset past end", []byte{}},
		{"short-form payload missing", []byte{5, 'a', 'b'}},
		{"short-form padding missing", EncodeBytes([]byte("abc"))[:3]},
		{"long-form prefix cut", []byte{longFieldMarker, 10}},
		{"long-form payload missing", []byte{longFieldMarker, 0, 1, 0, 'x'}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := DecodeBytes(tt.buf, 0)
			if !errors.Is(err, ErrTruncated) {
				t.Errorf("DecodeBytes() error = %v, want ErrTruncated", err)
			}
		})
	}
}

func TestBytesDecodeEveryTruncation(t *testing.T) {
	for _, n := range []int{0, 1, 253, 254, 300} {
		encoded := EncodeBytes(randomBytes(t, n))
		for cut := 0; cut < len(encoded); cut++ {
			if _, _, err := DecodeBytes(encoded[:cut], 0); !errors.Is(err, ErrTruncated) {
				t.Fatalf("DecodeBytes() error = %v for n=%d cut=%d, want ErrTruncated", err, n, cut)
			}
		}
	}
}

func TestBytesSizePure(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{0, 4},
		{1, 4},
		{3, 4},
		{4, 8},
		{253, 256},
		{254, 260},
		{255, 260},
		{256, 260},
		{100000, 100004},
	}

	for _, tt := range tests {
		if got := BytesSize(tt.n); got != tt.want {
			t.Errorf("BytesSize(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}
