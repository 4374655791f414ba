package tl

import "fmt"

// messageHeaderSize covers magic, msg_id, seqno and the length field.
const messageHeaderSize = 20

// Message is the envelope exchanged between the session layer and the
// application layer: a message ID, a sequence number, a declared body
// length and that many bytes of opaque body. The body's own type is
// resolved later by whoever consumes the envelope; at framing time only
// byte-exact re-segmentation matters.
type Message struct {
	MsgID  int64
	SeqNo  int32
	Length int32 // declared body length, authoritative for framing
	Body   []byte
}

// NewMessage builds an envelope with the length field set from the
// body.
func NewMessage(msgID int64, seqNo int32, body []byte) *Message {
	return &Message{
		MsgID:  msgID,
		SeqNo:  seqNo,
		Length: int32(len(body)),
		Body:   body,
	}
}

func (m *Message) Magic() uint32 { return MagicMessage }

func (m *Message) EncodedSize() int {
	return messageHeaderSize + int(m.Length)
}

// Encode encodes the envelope. It fails if the stored length field does
// not match the body, since the declared length is what locates the
// next envelope in a container.
func (m *Message) Encode() ([]byte, error) {
	if int(m.Length) != len(m.Body) {
		return nil, fmt.Errorf("%w: message declares %d body bytes, has %d",
			ErrInconsistentLength, m.Length, len(m.Body))
	}

	w := newWriter(m.EncodedSize())
	w.uint32(MagicMessage)
	w.int64(m.MsgID)
	w.int32(m.SeqNo)
	w.int32(m.Length)
	w.raw(m.Body)
	return w.buf, nil
}

// Decode decodes the envelope from buf at offset. The body is taken as
// raw bytes per the declared length and is not dispatched through the
// registry.
func (m *Message) Decode(_ *Registry, buf []byte, offset int) (int, error) {
	r := reader{buf: buf, pos: offset}
	if err := r.magic(MagicMessage); err != nil {
		return 0, err
	}

	msgID, err := r.int64()
	if err != nil {
		return 0, err
	}
	seqNo, err := r.int32()
	if err != nil {
		return 0, err
	}
	length, err := r.int32()
	if err != nil {
		return 0, err
	}
	body, err := r.take(int(length))
	if err != nil {
		return 0, err
	}

	m.MsgID = msgID
	m.SeqNo = seqNo
	m.Length = length
	m.Body = body

	return r.pos - offset, nil
}

// MsgContainer batches envelopes into one tagged value, so a single
// transport frame can carry several logical messages. Order is the
// transport delivery order and is preserved.
type MsgContainer struct {
	Messages []Message
}

func (c *MsgContainer) Magic() uint32 { return MagicMsgContainer }

func (c *MsgContainer) EncodedSize() int {
	size := 8
	for i := range c.Messages {
		size += c.Messages[i].EncodedSize()
	}
	return size
}

// Encode concatenates the encoded envelopes after the magic and count.
func (c *MsgContainer) Encode() ([]byte, error) {
	w := newWriter(c.EncodedSize())
	w.uint32(MagicMsgContainer)
	w.uint32(uint32(len(c.Messages)))
	for i := range c.Messages {
		b, err := c.Messages[i].Encode()
		if err != nil {
			return nil, err
		}
		w.raw(b)
	}
	return w.buf, nil
}

// Decode decodes exactly the declared number of envelopes, advancing
// the cursor by each envelope's consumed size. Trailing buffer bytes
// beyond the declared count are left untouched.
func (c *MsgContainer) Decode(reg *Registry, buf []byte, offset int) (int, error) {
	r := reader{buf: buf, pos: offset}
	if err := r.magic(MagicMsgContainer); err != nil {
		return 0, err
	}

	count, err := r.uint32()
	if err != nil {
		return 0, err
	}

	var messages []Message
	for i := uint32(0); i < count; i++ {
		var msg Message
		n, err := msg.Decode(reg, buf, r.pos)
		if err != nil {
			return 0, err
		}
		r.pos += n
		messages = append(messages, msg)
	}
	c.Messages = messages

	return r.pos - offset, nil
}
