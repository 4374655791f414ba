package tl

// Vector is a homogeneous sequence of 64-bit integers.
type Vector struct {
	Values []int64
}

func (v *Vector) Magic() uint32 { return MagicVector }

// EncodedSize returns the wire size: magic, count, then the values.
func (v *Vector) EncodedSize() int {
	return 8 + 8*len(v.Values)
}

// Encode encodes the vector to bytes.
func (v *Vector) Encode() ([]byte, error) {
	w := newWriter(v.EncodedSize())
	w.uint32(MagicVector)
	w.uint32(uint32(len(v.Values)))
	for _, x := range v.Values {
		w.int64(x)
	}
	return w.buf, nil
}

// Decode decodes the vector from buf at offset. No upper bound is put
// on the element count beyond the buffer itself.
func (v *Vector) Decode(_ *Registry, buf []byte, offset int) (int, error) {
	r := reader{buf: buf, pos: offset}
	if err := r.magic(MagicVector); err != nil {
		return 0, err
	}

	count, err := r.uint32()
	if err != nil {
		return 0, err
	}
	if err := r.need(int(count) * 8); err != nil {
		return 0, err
	}

	values := make([]int64, count)
	for i := range values {
		values[i], _ = r.int64()
	}
	v.Values = values

	return r.pos - offset, nil
}
