package tl

// Magic numbers, one per type. These are the dispatch keys of the wire
// format and must match the published protocol constants bit for bit.
const (
	MagicVector              uint32 = 0x1cb5c415
	MagicMsgsAck             uint32 = 0x62d6b459
	MagicMsgContainer        uint32 = 0x73f1f8dc
	MagicMessage             uint32 = 0x5bb8e511
	MagicMsgResendReq        uint32 = 0x7d861a08
	MagicRPCError            uint32 = 0x2144ca19
	MagicRPCReqError         uint32 = 0x7ae432f5
	MagicClientDHInnerData   uint32 = 0x6643b654
	MagicServerDHInnerData   uint32 = 0xb5890dba
	MagicReqPQ               uint32 = 0x60469778
	MagicReqDHParams         uint32 = 0xd712e4be
	MagicSetClientDHParams   uint32 = 0xf5045f1f
	MagicRPCDropAnswer       uint32 = 0x58e4a740
	MagicGetFutureSalts      uint32 = 0xb921bd04
	MagicPing                uint32 = 0x7abe77ec
	MagicPingDelayDisconnect uint32 = 0xf3427b8c
	MagicDestroySession      uint32 = 0xe7512126
	MagicGzipPacked          uint32 = 0x3072cfa1
	MagicError               uint32 = 0xc4b9f9bb
	MagicInvokeAfterMsg      uint32 = 0xcb9f372d
	MagicInvokeWithLayer     uint32 = 0xda9b0d0d
	MagicInitConnection      uint32 = 0x69796de9
)

// NonceSize is the width of a handshake nonce in bytes.
const NonceSize = 16

// Nonce is a fixed-width handshake nonce. It is emitted raw on the
// wire, without a length prefix.
type Nonce [NonceSize]byte

// Object is any value of the wire format.
//
// Decode parses the buffer region starting at offset, which must begin
// with the type's magic number, and returns the number of bytes
// consumed. Subsequent fields are read by the caller starting at
// offset+consumed, so the count must be exact. The registry is consulted
// only by wrapper types that embed another tagged value; flat types
// ignore it.
//
// Encode is the exact inverse: for any value produced by Decode,
// Encode reproduces the original bytes, and len(Encode()) equals
// EncodedSize.
type Object interface {
	Magic() uint32
	EncodedSize() int
	Encode() ([]byte, error)
	Decode(reg *Registry, buf []byte, offset int) (int, error)
}
