package tl

import (
	"encoding/binary"
	"fmt"
)

// reader is a bounds-checked cursor over a decode buffer. Every field
// read advances pos, so consumed sizes fall out of the cursor position
// and truncation is detected at the read site.
type reader struct {
	buf []byte
	pos int
}

func (r *reader) need(n int) error {
	if r.pos < 0 || n < 0 || n > len(r.buf)-r.pos {
		return fmt.Errorf("%w: need %d bytes at offset %d, have %d",
			ErrTruncated, n, r.pos, len(r.buf)-r.pos)
	}
	return nil
}

// magic consumes the 4-byte magic number at the cursor and checks it
// against the expected one.
func (r *reader) magic(want uint32) error {
	got, err := r.uint32()
	if err != nil {
		return err
	}
	if got != want {
		return fmt.Errorf("%w: got %#08x, want %#08x", ErrIncorrectMagic, got, want)
	}
	return nil
}

func (r *reader) uint32() (uint32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(r.buf[r.pos:])
	r.pos += 4
	return v, nil
}

func (r *reader) int32() (int32, error) {
	v, err := r.uint32()
	return int32(v), err
}

func (r *reader) int64() (int64, error) {
	if err := r.need(8); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint64(r.buf[r.pos:])
	r.pos += 8
	return int64(v), nil
}

// take copies n raw bytes out of the buffer. The copy keeps decoded
// values independent of the caller's buffer.
func (r *reader) take(n int) ([]byte, error) {
	if err := r.need(n); err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, r.buf[r.pos:])
	r.pos += n
	return out, nil
}

func (r *reader) nonce() (Nonce, error) {
	var n Nonce
	if err := r.need(NonceSize); err != nil {
		return n, err
	}
	copy(n[:], r.buf[r.pos:])
	r.pos += NonceSize
	return n, nil
}

// byteField reads a length-prefixed, padded byte string.
func (r *reader) byteField() ([]byte, error) {
	b, n, err := DecodeBytes(r.buf, r.pos)
	if err != nil {
		return nil, err
	}
	r.pos += n
	return b, nil
}

// writer accumulates an encoded value. Encoders preallocate with the
// value's EncodedSize, so appends never grow the slice.
type writer struct {
	buf []byte
}

func newWriter(size int) *writer {
	return &writer{buf: make([]byte, 0, size)}
}

func (w *writer) uint32(v uint32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, v)
}

func (w *writer) int32(v int32) {
	w.uint32(uint32(v))
}

func (w *writer) int64(v int64) {
	w.buf = binary.LittleEndian.AppendUint64(w.buf, uint64(v))
}

func (w *writer) raw(b []byte) {
	w.buf = append(w.buf, b...)
}

func (w *writer) nonce(n Nonce) {
	w.buf = append(w.buf, n[:]...)
}

func (w *writer) byteField(b []byte) {
	w.buf = append(w.buf, EncodeBytes(b)...)
}
