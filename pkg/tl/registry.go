package tl

import (
	"fmt"
	"sort"
)

// TypeInfo identifies a registered type for introspection.
type TypeInfo struct {
	Magic uint32
	Name  string
}

type registration struct {
	name    string
	factory func() Object
}

// Registry maps magic numbers to decoders. It is the entry point for
// decoding any buffer region whose type is not already known from
// context; wrapper types call back into it for their embedded values.
//
// Build the registry once at startup and treat it as read-only
// afterwards; a fully built registry is safe for concurrent Decode
// calls.
type Registry struct {
	types map[uint32]registration
}

// NewRegistry returns a registry with every built-in type registered.
func NewRegistry() *Registry {
	r := &Registry{types: make(map[uint32]registration)}

	builtins := []struct {
		magic   uint32
		name    string
		factory func() Object
	}{
		{MagicVector, "vector", func() Object { return new(Vector) }},
		{MagicMsgsAck, "msgs_ack", func() Object { return new(MsgsAck) }},
		{MagicMsgContainer, "msg_container", func() Object { return new(MsgContainer) }},
		{MagicMessage, "message", func() Object { return new(Message) }},
		{MagicMsgResendReq, "msg_resend_req", func() Object { return new(MsgResendReq) }},
		{MagicRPCError, "rpc_error", func() Object { return new(RPCError) }},
		{MagicRPCReqError, "rpc_req_error", func() Object { return new(RPCReqError) }},
		{MagicClientDHInnerData, "client_DH_inner_data", func() Object { return new(ClientDHInnerData) }},
		{MagicServerDHInnerData, "server_DH_inner_data", func() Object { return new(ServerDHInnerData) }},
		{MagicReqPQ, "req_pq", func() Object { return new(ReqPQ) }},
		{MagicReqDHParams, "req_DH_params", func() Object { return new(ReqDHParams) }},
		{MagicSetClientDHParams, "set_client_DH_params", func() Object { return new(SetClientDHParams) }},
		{MagicRPCDropAnswer, "rpc_drop_answer", func() Object { return new(RPCDropAnswer) }},
		{MagicGetFutureSalts, "get_future_salts", func() Object { return new(GetFutureSalts) }},
		{MagicPing, "ping", func() Object { return new(Ping) }},
		{MagicPingDelayDisconnect, "ping_delay_disconnect", func() Object { return new(PingDelayDisconnect) }},
		{MagicDestroySession, "destroy_session", func() Object { return new(DestroySession) }},
		{MagicGzipPacked, "gzip_packed", func() Object { return new(GzipPacked) }},
		{MagicError, "error", func() Object { return new(Error) }},
		{MagicInvokeAfterMsg, "invoke_after_msg", func() Object { return new(InvokeAfterMsg) }},
		{MagicInvokeWithLayer, "invoke_with_layer", func() Object { return new(InvokeWithLayer) }},
		{MagicInitConnection, "initConnection", func() Object { return new(InitConnection) }},
	}

	for _, b := range builtins {
		if err := r.Register(b.magic, b.name, b.factory); err != nil {
			// The built-in table is static; a collision here is a
			// programming error, not a runtime condition.
			panic(err)
		}
	}

	return r
}

// Register adds a decoder for a magic number. Registration must finish
// before the first Decode call; the table is not synchronized.
func (r *Registry) Register(magic uint32, name string, factory func() Object) error {
	if prev, ok := r.types[magic]; ok {
		return fmt.Errorf("%w: %#08x already registered as %q", ErrDuplicateMagic, magic, prev.name)
	}
	r.types[magic] = registration{name: name, factory: factory}
	return nil
}

// Decode reads the magic number at offset, dispatches to the registered
// decoder and returns the decoded value with its consumed size.
func (r *Registry) Decode(buf []byte, offset int) (Object, int, error) {
	rd := reader{buf: buf, pos: offset}
	magic, err := rd.uint32()
	if err != nil {
		return nil, 0, err
	}

	reg, ok := r.types[magic]
	if !ok {
		return nil, 0, fmt.Errorf("%w: %#08x", ErrUnknownType, magic)
	}

	obj := reg.factory()
	n, err := obj.Decode(r, buf, offset)
	if err != nil {
		return nil, 0, err
	}
	return obj, n, nil
}

// Types lists the registered types in ascending magic-number order.
func (r *Registry) Types() []TypeInfo {
	out := make([]TypeInfo, 0, len(r.types))
	for magic, reg := range r.types {
		out = append(out, TypeInfo{Magic: magic, Name: reg.name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Magic < out[j].Magic })
	return out
}
