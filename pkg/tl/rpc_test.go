package tl

import (
	"bytes"
	"testing"
)

func TestErrorRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		code int32
		text []byte
	}{
		{"empty text", 0, nil},
		{"short text", 16, []byte("bad server salt")},
		{"long text", -1, randomBytes(t, 300)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &Error{Code: tt.code, Text: tt.text}

			encoded, err := e.Encode()
			if err != nil {
				t.Fatalf("Encode() error = %v", err)
			}
			if len(encoded) != 8+BytesSize(len(tt.text)) {
				t.Errorf("encoded length = %d, want %d", len(encoded), 8+BytesSize(len(tt.text)))
			}

			decoded := &Error{}
			consumed, err := decoded.Decode(nil, encoded, 0)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if consumed != len(encoded) {
				t.Errorf("consumed = %d, want %d", consumed, len(encoded))
			}
			if decoded.Code != tt.code {
				t.Errorf("Code = %d, want %d", decoded.Code, tt.code)
			}
			if !bytes.Equal(decoded.Text, tt.text) {
				t.Error("text mismatch")
			}
		})
	}
}

func TestRPCErrorRoundTrip(t *testing.T) {
	e := &RPCError{ErrorCode: 420, ErrorMessage: []byte("FLOOD_WAIT_3600")}

	encoded, err := e.Encode()
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	decoded := &RPCError{}
	consumed, err := decoded.Decode(nil, encoded, 0)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if consumed != len(encoded) {
		t.Errorf("consumed = %d, want %d", consumed, len(encoded))
	}
	if decoded.ErrorCode != 420 {
		t.Errorf("ErrorCode = %d, want 420", decoded.ErrorCode)
	}
	if string(decoded.ErrorMessage) != "FLOOD_WAIT_3600" {
		t.Errorf("ErrorMessage = %q", decoded.ErrorMessage)
	}
}

func TestRPCReqErrorRoundTrip(t *testing.T) {
	e := &RPCReqError{
		QueryID:      -0x1122334455667788,
		ErrorCode:    303,
		ErrorMessage: []byte("PHONE_MIGRATE_2"),
	}

	encoded, err := e.Encode()
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	decoded := &RPCReqError{}
	consumed, err := decoded.Decode(nil, encoded, 0)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if consumed != len(encoded) {
		t.Errorf("consumed = %d, want %d", consumed, len(encoded))
	}
	if decoded.QueryID != e.QueryID {
		t.Errorf("QueryID = %d, want %d", decoded.QueryID, e.QueryID)
	}
	if decoded.ErrorCode != e.ErrorCode {
		t.Errorf("ErrorCode = %d, want %d", decoded.ErrorCode, e.ErrorCode)
	}
	if string(decoded.ErrorMessage) != "PHONE_MIGRATE_2" {
		t.Errorf("ErrorMessage = %q", decoded.ErrorMessage)
	}
}
