package tl

import "fmt"

// Handshake parameter records, exchanged during key negotiation. The
// cryptographic material they carry (primes, public values, encrypted
// inner data) passes through as opaque byte fields; the math happens
// elsewhere.

// ReqPQ opens the key negotiation with a client nonce.
type ReqPQ struct {
	Nonce Nonce
}

func (q *ReqPQ) Magic() uint32 { return MagicReqPQ }

func (q *ReqPQ) EncodedSize() int { return 4 + NonceSize }

func (q *ReqPQ) Encode() ([]byte, error) {
	w := newWriter(q.EncodedSize())
	w.uint32(MagicReqPQ)
	w.nonce(q.Nonce)
	return w.buf, nil
}

func (q *ReqPQ) Decode(_ *Registry, buf []byte, offset int) (int, error) {
	r := reader{buf: buf, pos: offset}
	if err := r.magic(MagicReqPQ); err != nil {
		return 0, err
	}
	nonce, err := r.nonce()
	if err != nil {
		return 0, err
	}
	q.Nonce = nonce
	return r.pos - offset, nil
}

// ReqDHParams requests Diffie-Hellman parameters, carrying the PQ
// factorization proof and RSA-encrypted inner data.
type ReqDHParams struct {
	Nonce                Nonce
	ServerNonce          Nonce
	P                    []byte
	Q                    []byte
	PublicKeyFingerprint int64
	EncryptedData        []byte
}

func (q *ReqDHParams) Magic() uint32 { return MagicReqDHParams }

func (q *ReqDHParams) EncodedSize() int {
	return 4 + 2*NonceSize + BytesSize(len(q.P)) + BytesSize(len(q.Q)) +
		8 + BytesSize(len(q.EncryptedData))
}

func (q *ReqDHParams) Encode() ([]byte, error) {
	w := newWriter(q.EncodedSize())
	w.uint32(MagicReqDHParams)
	w.nonce(q.Nonce)
	w.nonce(q.ServerNonce)
	w.byteField(q.P)
	w.byteField(q.Q)
	w.int64(q.PublicKeyFingerprint)
	w.byteField(q.EncryptedData)
	return w.buf, nil
}

func (q *ReqDHParams) Decode(_ *Registry, buf []byte, offset int) (int, error) {
	r := reader{buf: buf, pos: offset}
	if err := r.magic(MagicReqDHParams); err != nil {
		return 0, err
	}
	nonce, err := r.nonce()
	if err != nil {
		return 0, err
	}
	serverNonce, err := r.nonce()
	if err != nil {
		return 0, err
	}
	p, err := r.byteField()
	if err != nil {
		return 0, err
	}
	pq, err := r.byteField()
	if err != nil {
		return 0, err
	}
	fingerprint, err := r.int64()
	if err != nil {
		return 0, err
	}
	encrypted, err := r.byteField()
	if err != nil {
		return 0, err
	}

	q.Nonce = nonce
	q.ServerNonce = serverNonce
	q.P = p
	q.Q = pq
	q.PublicKeyFingerprint = fingerprint
	q.EncryptedData = encrypted
	return r.pos - offset, nil
}

// ServerDHInnerData is the server's half of the DH exchange, carried
// inside the encrypted answer.
type ServerDHInnerData struct {
	Nonce       Nonce
	ServerNonce Nonce
	G           uint32
	DHPrime     []byte
	GA          []byte
	ServerTime  int32
}

func (d *ServerDHInnerData) Magic() uint32 { return MagicServerDHInnerData }

func (d *ServerDHInnerData) EncodedSize() int {
	return 4 + 2*NonceSize + 4 + BytesSize(len(d.DHPrime)) + BytesSize(len(d.GA)) + 4
}

func (d *ServerDHInnerData) Encode() ([]byte, error) {
	w := newWriter(d.EncodedSize())
	w.uint32(MagicServerDHInnerData)
	w.nonce(d.Nonce)
	w.nonce(d.ServerNonce)
	w.uint32(d.G)
	w.byteField(d.DHPrime)
	w.byteField(d.GA)
	w.int32(d.ServerTime)
	return w.buf, nil
}

func (d *ServerDHInnerData) Decode(_ *Registry, buf []byte, offset int) (int, error) {
	r := reader{buf: buf, pos: offset}
	if err := r.magic(MagicServerDHInnerData); err != nil {
		return 0, err
	}
	nonce, err := r.nonce()
	if err != nil {
		return 0, err
	}
	serverNonce, err := r.nonce()
	if err != nil {
		return 0, err
	}
	g, err := r.uint32()
	if err != nil {
		return 0, err
	}
	prime, err := r.byteField()
	if err != nil {
		return 0, err
	}
	ga, err := r.byteField()
	if err != nil {
		return 0, err
	}
	serverTime, err := r.int32()
	if err != nil {
		return 0, err
	}

	d.Nonce = nonce
	d.ServerNonce = serverNonce
	d.G = g
	d.DHPrime = prime
	d.GA = ga
	d.ServerTime = serverTime
	return r.pos - offset, nil
}

// ClientDHInnerData is the client's half of the DH exchange. Its wire
// layout is only defined for encoding; Decode fails with
// ErrDecodeUnsupported after the magic check rather than guessing a
// field order.
type ClientDHInnerData struct {
	Nonce       Nonce
	ServerNonce Nonce
	RetryID     int64
	GB          []byte
}

func (d *ClientDHInnerData) Magic() uint32 { return MagicClientDHInnerData }

func (d *ClientDHInnerData) EncodedSize() int {
	return 4 + 2*NonceSize + 8 + BytesSize(len(d.GB))
}

func (d *ClientDHInnerData) Encode() ([]byte, error) {
	w := newWriter(d.EncodedSize())
	w.uint32(MagicClientDHInnerData)
	w.nonce(d.Nonce)
	w.nonce(d.ServerNonce)
	w.int64(d.RetryID)
	w.byteField(d.GB)
	return w.buf, nil
}

func (d *ClientDHInnerData) Decode(_ *Registry, buf []byte, offset int) (int, error) {
	r := reader{buf: buf, pos: offset}
	if err := r.magic(MagicClientDHInnerData); err != nil {
		return 0, err
	}
	return 0, fmt.Errorf("%w: client_DH_inner_data", ErrDecodeUnsupported)
}

// SetClientDHParams closes the key negotiation with the encrypted
// client inner data.
type SetClientDHParams struct {
	Nonce         Nonce
	ServerNonce   Nonce
	EncryptedData []byte
}

func (q *SetClientDHParams) Magic() uint32 { return MagicSetClientDHParams }

func (q *SetClientDHParams) EncodedSize() int {
	return 4 + 2*NonceSize + BytesSize(len(q.EncryptedData))
}

func (q *SetClientDHParams) Encode() ([]byte, error) {
	w := newWriter(q.EncodedSize())
	w.uint32(MagicSetClientDHParams)
	w.nonce(q.Nonce)
	w.nonce(q.ServerNonce)
	w.byteField(q.EncryptedData)
	return w.buf, nil
}

func (q *SetClientDHParams) Decode(_ *Registry, buf []byte, offset int) (int, error) {
	r := reader{buf: buf, pos: offset}
	if err := r.magic(MagicSetClientDHParams); err != nil {
		return 0, err
	}
	nonce, err := r.nonce()
	if err != nil {
		return 0, err
	}
	serverNonce, err := r.nonce()
	if err != nil {
		return 0, err
	}
	encrypted, err := r.byteField()
	if err != nil {
		return 0, err
	}

	q.Nonce = nonce
	q.ServerNonce = serverNonce
	q.EncryptedData = encrypted
	return r.pos - offset, nil
}
