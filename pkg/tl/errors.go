package tl

import "errors"

var (
	// ErrIncorrectMagic reports that a buffer region does not start with
	// the magic number of the type it was decoded as.
	ErrIncorrectMagic = errors.New("tl: incorrect magic number")

	// ErrUnknownType reports a magic number with no registered decoder.
	ErrUnknownType = errors.New("tl: unknown type")

	// ErrTruncated reports a buffer shorter than its fields declare.
	ErrTruncated = errors.New("tl: truncated input")

	// ErrInconsistentLength reports an encode-time mismatch between a
	// stored length field and the actual payload length.
	ErrInconsistentLength = errors.New("tl: inconsistent length")

	// ErrDecodeUnsupported reports a type whose wire layout is not
	// decodable (see ClientDHInnerData).
	ErrDecodeUnsupported = errors.New("tl: decoding unsupported for this type")

	// ErrDuplicateMagic reports a second registration of a magic number.
	ErrDuplicateMagic = errors.New("tl: duplicate magic number")
)
