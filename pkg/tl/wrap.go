package tl

import "fmt"

// Wrapper types carry another tagged value as their final field. Decode
// resolves the embedded query through the registry, so any registered
// type can be wrapped; Encode appends the query's bytes after the fixed
// fields. Encoding a wrapper with a nil query is an error.

// InvokeAfterMsg defers the wrapped query until another message has
// been processed.
type InvokeAfterMsg struct {
	MsgID int64
	Query Object
}

func (m *InvokeAfterMsg) Magic() uint32 { return MagicInvokeAfterMsg }

func (m *InvokeAfterMsg) EncodedSize() int {
	size := 12
	if m.Query != nil {
		size += m.Query.EncodedSize()
	}
	return size
}

func (m *InvokeAfterMsg) Encode() ([]byte, error) {
	if m.Query == nil {
		return nil, fmt.Errorf("tl: invoke_after_msg: nil query")
	}
	query, err := m.Query.Encode()
	if err != nil {
		return nil, err
	}

	w := newWriter(m.EncodedSize())
	w.uint32(MagicInvokeAfterMsg)
	w.int64(m.MsgID)
	w.raw(query)
	return w.buf, nil
}

func (m *InvokeAfterMsg) Decode(reg *Registry, buf []byte, offset int) (int, error) {
	r := reader{buf: buf, pos: offset}
	if err := r.magic(MagicInvokeAfterMsg); err != nil {
		return 0, err
	}
	msgID, err := r.int64()
	if err != nil {
		return 0, err
	}
	query, n, err := reg.Decode(buf, r.pos)
	if err != nil {
		return 0, err
	}
	r.pos += n

	m.MsgID = msgID
	m.Query = query
	return r.pos - offset, nil
}

// InvokeWithLayer executes the wrapped query under a specific protocol
// layer.
type InvokeWithLayer struct {
	Layer int32
	Query Object
}

func (m *InvokeWithLayer) Magic() uint32 { return MagicInvokeWithLayer }

func (m *InvokeWithLayer) EncodedSize() int {
	size := 8
	if m.Query != nil {
		size += m.Query.EncodedSize()
	}
	return size
}

func (m *InvokeWithLayer) Encode() ([]byte, error) {
	if m.Query == nil {
		return nil, fmt.Errorf("tl: invoke_with_layer: nil query")
	}
	query, err := m.Query.Encode()
	if err != nil {
		return nil, err
	}

	w := newWriter(m.EncodedSize())
	w.uint32(MagicInvokeWithLayer)
	w.int32(m.Layer)
	w.raw(query)
	return w.buf, nil
}

func (m *InvokeWithLayer) Decode(reg *Registry, buf []byte, offset int) (int, error) {
	r := reader{buf: buf, pos: offset}
	if err := r.magic(MagicInvokeWithLayer); err != nil {
		return 0, err
	}
	layer, err := r.int32()
	if err != nil {
		return 0, err
	}
	query, n, err := reg.Decode(buf, r.pos)
	if err != nil {
		return 0, err
	}
	r.pos += n

	m.Layer = layer
	m.Query = query
	return r.pos - offset, nil
}

// InitConnection declares the client identity and wraps the first
// query of a connection.
type InitConnection struct {
	APIID         int32
	DeviceModel   []byte
	SystemVersion []byte
	AppVersion    []byte
	LangCode      []byte
	Query         Object
}

func (m *InitConnection) Magic() uint32 { return MagicInitConnection }

func (m *InitConnection) EncodedSize() int {
	size := 8 + BytesSize(len(m.DeviceModel)) + BytesSize(len(m.SystemVersion)) +
		BytesSize(len(m.AppVersion)) + BytesSize(len(m.LangCode))
	if m.Query != nil {
		size += m.Query.EncodedSize()
	}
	return size
}

func (m *InitConnection) Encode() ([]byte, error) {
	if m.Query == nil {
		return nil, fmt.Errorf("tl: initConnection: nil query")
	}
	query, err := m.Query.Encode()
	if err != nil {
		return nil, err
	}

	w := newWriter(m.EncodedSize())
	w.uint32(MagicInitConnection)
	w.int32(m.APIID)
	w.byteField(m.DeviceModel)
	w.byteField(m.SystemVersion)
	w.byteField(m.AppVersion)
	w.byteField(m.LangCode)
	w.raw(query)
	return w.buf, nil
}

func (m *InitConnection) Decode(reg *Registry, buf []byte, offset int) (int, error) {
	r := reader{buf: buf, pos: offset}
	if err := r.magic(MagicInitConnection); err != nil {
		return 0, err
	}
	apiID, err := r.int32()
	if err != nil {
		return 0, err
	}
	deviceModel, err := r.byteField()
	if err != nil {
		return 0, err
	}
	systemVersion, err := r.byteField()
	if err != nil {
		return 0, err
	}
	appVersion, err := r.byteField()
	if err != nil {
		return 0, err
	}
	langCode, err := r.byteField()
	if err != nil {
		return 0, err
	}
	query, n, err := reg.Decode(buf, r.pos)
	if err != nil {
		return 0, err
	}
	r.pos += n

	m.APIID = apiID
	m.DeviceModel = deviceModel
	m.SystemVersion = systemVersion
	m.AppVersion = appVersion
	m.LangCode = langCode
	m.Query = query
	return r.pos - offset, nil
}

// GzipPacked wraps a gzip-compressed payload. The payload stays opaque
// here; inflating it is the consuming layer's job.
type GzipPacked struct {
	PackedData []byte
}

func (g *GzipPacked) Magic() uint32 { return MagicGzipPacked }

func (g *GzipPacked) EncodedSize() int {
	return 4 + BytesSize(len(g.PackedData))
}

func (g *GzipPacked) Encode() ([]byte, error) {
	w := newWriter(g.EncodedSize())
	w.uint32(MagicGzipPacked)
	w.byteField(g.PackedData)
	return w.buf, nil
}

func (g *GzipPacked) Decode(_ *Registry, buf []byte, offset int) (int, error) {
	r := reader{buf: buf, pos: offset}
	if err := r.magic(MagicGzipPacked); err != nil {
		return 0, err
	}
	packed, err := r.byteField()
	if err != nil {
		return 0, err
	}
	g.PackedData = packed
	return r.pos - offset, nil
}
