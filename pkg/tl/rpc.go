package tl

// The error records in this file are data, not raised failures: they
// are how a remote peer reports an error, and they decode like any
// other value. Interpreting the code and message is the caller's job.

// Error is the generic protocol error record.
type Error struct {
	Code int32
	Text []byte
}

func (e *Error) Magic() uint32 { return MagicError }

func (e *Error) EncodedSize() int {
	return 8 + BytesSize(len(e.Text))
}

func (e *Error) Encode() ([]byte, error) {
	w := newWriter(e.EncodedSize())
	w.uint32(MagicError)
	w.int32(e.Code)
	w.byteField(e.Text)
	return w.buf, nil
}

func (e *Error) Decode(_ *Registry, buf []byte, offset int) (int, error) {
	r := reader{buf: buf, pos: offset}
	if err := r.magic(MagicError); err != nil {
		return 0, err
	}
	code, err := r.int32()
	if err != nil {
		return 0, err
	}
	text, err := r.byteField()
	if err != nil {
		return 0, err
	}
	e.Code = code
	e.Text = text
	return r.pos - offset, nil
}

// RPCError reports a failed RPC call.
type RPCError struct {
	ErrorCode    int32
	ErrorMessage []byte
}

func (e *RPCError) Magic() uint32 { return MagicRPCError }

func (e *RPCError) EncodedSize() int {
	return 8 + BytesSize(len(e.ErrorMessage))
}

func (e *RPCError) Encode() ([]byte, error) {
	w := newWriter(e.EncodedSize())
	w.uint32(MagicRPCError)
	w.int32(e.ErrorCode)
	w.byteField(e.ErrorMessage)
	return w.buf, nil
}

func (e *RPCError) Decode(_ *Registry, buf []byte, offset int) (int, error) {
	r := reader{buf: buf, pos: offset}
	if err := r.magic(MagicRPCError); err != nil {
		return 0, err
	}
	code, err := r.int32()
	if err != nil {
		return 0, err
	}
	msg, err := r.byteField()
	if err != nil {
		return 0, err
	}
	e.ErrorCode = code
	e.ErrorMessage = msg
	return r.pos - offset, nil
}

// RPCReqError reports a failed RPC call together with the query it
// answers.
type RPCReqError struct {
	QueryID      int64
	ErrorCode    int32
	ErrorMessage []byte
}

func (e *RPCReqError) Magic() uint32 { return MagicRPCReqError }

func (e *RPCReqError) EncodedSize() int {
	return 16 + BytesSize(len(e.ErrorMessage))
}

func (e *RPCReqError) Encode() ([]byte, error) {
	w := newWriter(e.EncodedSize())
	w.uint32(MagicRPCReqError)
	w.int64(e.QueryID)
	w.int32(e.ErrorCode)
	w.byteField(e.ErrorMessage)
	return w.buf, nil
}

func (e *RPCReqError) Decode(_ *Registry, buf []byte, offset int) (int, error) {
	r := reader{buf: buf, pos: offset}
	if err := r.magic(MagicRPCReqError); err != nil {
		return 0, err
	}
	queryID, err := r.int64()
	if err != nil {
		return 0, err
	}
	code, err := r.int32()
	if err != nil {
		return 0, err
	}
	msg, err := r.byteField()
	if err != nil {
		return 0, err
	}
	e.QueryID = queryID
	e.ErrorCode = code
	e.ErrorMessage = msg
	return r.pos - offset, nil
}
