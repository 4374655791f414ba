package tl

// MsgsAck acknowledges a batch of received messages by ID.
type MsgsAck struct {
	MsgIDs Vector
}

func (a *MsgsAck) Magic() uint32 { return MagicMsgsAck }

func (a *MsgsAck) EncodedSize() int {
	return 4 + a.MsgIDs.EncodedSize()
}

func (a *MsgsAck) Encode() ([]byte, error) {
	w := newWriter(a.EncodedSize())
	w.uint32(MagicMsgsAck)
	vec, err := a.MsgIDs.Encode()
	if err != nil {
		return nil, err
	}
	w.raw(vec)
	return w.buf, nil
}

func (a *MsgsAck) Decode(reg *Registry, buf []byte, offset int) (int, error) {
	r := reader{buf: buf, pos: offset}
	if err := r.magic(MagicMsgsAck); err != nil {
		return 0, err
	}
	n, err := a.MsgIDs.Decode(reg, buf, r.pos)
	if err != nil {
		return 0, err
	}
	r.pos += n
	return r.pos - offset, nil
}

// MsgResendReq asks the peer to resend the listed messages.
type MsgResendReq struct {
	MsgIDs Vector
}

func (q *MsgResendReq) Magic() uint32 { return MagicMsgResendReq }

func (q *MsgResendReq) EncodedSize() int {
	return 4 + q.MsgIDs.EncodedSize()
}

func (q *MsgResendReq) Encode() ([]byte, error) {
	w := newWriter(q.EncodedSize())
	w.uint32(MagicMsgResendReq)
	vec, err := q.MsgIDs.Encode()
	if err != nil {
		return nil, err
	}
	w.raw(vec)
	return w.buf, nil
}

func (q *MsgResendReq) Decode(reg *Registry, buf []byte, offset int) (int, error) {
	r := reader{buf: buf, pos: offset}
	if err := r.magic(MagicMsgResendReq); err != nil {
		return 0, err
	}
	n, err := q.MsgIDs.Decode(reg, buf, r.pos)
	if err != nil {
		return 0, err
	}
	r.pos += n
	return r.pos - offset, nil
}

// RPCDropAnswer asks the peer to forget the answer to a request.
type RPCDropAnswer struct {
	ReqMsgID int64
}

func (d *RPCDropAnswer) Magic() uint32 { return MagicRPCDropAnswer }

func (d *RPCDropAnswer) EncodedSize() int { return 12 }

func (d *RPCDropAnswer) Encode() ([]byte, error) {
	w := newWriter(d.EncodedSize())
	w.uint32(MagicRPCDropAnswer)
	w.int64(d.ReqMsgID)
	return w.buf, nil
}

func (d *RPCDropAnswer) Decode(_ *Registry, buf []byte, offset int) (int, error) {
	r := reader{buf: buf, pos: offset}
	if err := r.magic(MagicRPCDropAnswer); err != nil {
		return 0, err
	}
	id, err := r.int64()
	if err != nil {
		return 0, err
	}
	d.ReqMsgID = id
	return r.pos - offset, nil
}

// GetFutureSalts requests the given number of future server salts.
type GetFutureSalts struct {
	Num int32
}

func (g *GetFutureSalts) Magic() uint32 { return MagicGetFutureSalts }

func (g *GetFutureSalts) EncodedSize() int { return 8 }

func (g *GetFutureSalts) Encode() ([]byte, error) {
	w := newWriter(g.EncodedSize())
	w.uint32(MagicGetFutureSalts)
	w.int32(g.Num)
	return w.buf, nil
}

func (g *GetFutureSalts) Decode(_ *Registry, buf []byte, offset int) (int, error) {
	r := reader{buf: buf, pos: offset}
	if err := r.magic(MagicGetFutureSalts); err != nil {
		return 0, err
	}
	num, err := r.int32()
	if err != nil {
		return 0, err
	}
	g.Num = num
	return r.pos - offset, nil
}

// Ping is a keep-alive probe.
type Ping struct {
	PingID int64
}

func (p *Ping) Magic() uint32 { return MagicPing }

func (p *Ping) EncodedSize() int { return 12 }

func (p *Ping) Encode() ([]byte, error) {
	w := newWriter(p.EncodedSize())
	w.uint32(MagicPing)
	w.int64(p.PingID)
	return w.buf, nil
}

func (p *Ping) Decode(_ *Registry, buf []byte, offset int) (int, error) {
	r := reader{buf: buf, pos: offset}
	if err := r.magic(MagicPing); err != nil {
		return 0, err
	}
	id, err := r.int64()
	if err != nil {
		return 0, err
	}
	p.PingID = id
	return r.pos - offset, nil
}

// PingDelayDisconnect is a ping that also reschedules the connection's
// disconnect timer.
type PingDelayDisconnect struct {
	PingID          int64
	DisconnectDelay int32 // seconds
}

func (p *PingDelayDisconnect) Magic() uint32 { return MagicPingDelayDisconnect }

func (p *PingDelayDisconnect) EncodedSize() int { return 16 }

func (p *PingDelayDisconnect) Encode() ([]byte, error) {
	w := newWriter(p.EncodedSize())
	w.uint32(MagicPingDelayDisconnect)
	w.int64(p.PingID)
	w.int32(p.DisconnectDelay)
	return w.buf, nil
}

func (p *PingDelayDisconnect) Decode(_ *Registry, buf []byte, offset int) (int, error) {
	r := reader{buf: buf, pos: offset}
	if err := r.magic(MagicPingDelayDisconnect); err != nil {
		return 0, err
	}
	id, err := r.int64()
	if err != nil {
		return 0, err
	}
	delay, err := r.int32()
	if err != nil {
		return 0, err
	}
	p.PingID = id
	p.DisconnectDelay = delay
	return r.pos - offset, nil
}

// DestroySession tears down a session on the server.
type DestroySession struct {
	SessionID int64
}

func (d *DestroySession) Magic() uint32 { return MagicDestroySession }

func (d *DestroySession) EncodedSize() int { return 12 }

func (d *DestroySession) Encode() ([]byte, error) {
	w := newWriter(d.EncodedSize())
	w.uint32(MagicDestroySession)
	w.int64(d.SessionID)
	return w.buf, nil
}

func (d *DestroySession) Decode(_ *Registry, buf []byte, offset int) (int, error) {
	r := reader{buf: buf, pos: offset}
	if err := r.magic(MagicDestroySession); err != nil {
		return 0, err
	}
	id, err := r.int64()
	if err != nil {
		return 0, err
	}
	d.SessionID = id
	return r.pos - offset, nil
}
