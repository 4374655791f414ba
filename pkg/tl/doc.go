// Package tl implements the binary codec for the MTProto Type Language
// wire format.
//
// Every encoded value is tagged: its first 4 bytes, read as an unsigned
// little-endian 32-bit integer, are a magic number identifying the
// concrete type. The codec decodes a tagged region of a byte buffer into
// a structured value, reports exactly how many bytes the value consumed,
// and re-encodes the value to an identical byte sequence.
//
// # Decoding
//
// When the type at an offset is known from context, decode directly into
// it:
//
//	var ping tl.Ping
//	n, err := ping.Decode(reg, buf, offset)
//
// When it is not, dispatch through a Registry, which resolves the magic
// number and returns the decoded value together with its consumed size:
//
//	reg := tl.NewRegistry()
//	obj, n, err := reg.Decode(buf, offset)
//
// Composite types call back into the registry to decode embedded tagged
// values, so a wrapper such as InvokeWithLayer can carry any registered
// type as its query.
//
// # Wire layout
//
// All integers are little-endian. Variable-length byte strings use the
// TL string encoding: a 1-byte length prefix for strings shorter than
// 254 bytes, or a 0xfe marker followed by a 3-byte length, with the
// whole field zero-padded to a multiple of 4 bytes (see EncodeBytes and
// DecodeBytes). Fixed-size fields (message IDs, sequence numbers,
// 16-byte nonces) are emitted raw, without a length prefix.
//
// # Scope
//
// The codec performs no I/O, no cryptography and no compression. The
// transport layer hands it decrypted buffers and consumes encoded ones;
// encrypted payloads and gzip-packed data pass through as opaque byte
// fields. Errors are classified with the sentinel Err values in this
// package and match with errors.Is; the caller decides whether a
// malformed buffer drops a message or closes a connection.
//
// A Registry is safe for concurrent decoding once built. Register any
// additional types before the first Decode call; the registration table
// is not synchronized.
package tl
