package tl

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryDecodeDispatch(t *testing.T) {
	reg := NewRegistry()

	ping := &Ping{PingID: 0x1122334455667788}
	encoded, err := ping.Encode()
	require.NoError(t, err)

	obj, consumed, err := reg.Decode(encoded, 0)
	require.NoError(t, err)
	assert.Equal(t, len(encoded), consumed)

	decoded, ok := obj.(*Ping)
	require.True(t, ok, "Decode() returned %T, want *Ping", obj)
	assert.Equal(t, ping.PingID, decoded.PingID)
}

func TestRegistryDecodeUnknownMagic(t *testing.T) {
	reg := NewRegistry()

	buf := make([]byte, 8)
	binary.LittleEndian.PutUint32(buf, 0xdeadbeef)

	_, _, err := reg.Decode(buf, 0)
	assert.ErrorIs(t, err, ErrUnknownType)
	assert.Contains(t, err.Error(), "0xdeadbeef")
}

func TestRegistryDecodeTruncatedMagic(t *testing.T) {
	reg := NewRegistry()

	_, _, err := reg.Decode([]byte{0x15, 0xc4}, 0)
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestRegistryRegisterDuplicate(t *testing.T) {
	reg := NewRegistry()

	err := reg.Register(MagicPing, "ping2", func() Object { return new(Ping) })
	require.ErrorIs(t, err, ErrDuplicateMagic)

	// The original registration survives.
	ping := &Ping{PingID: 1}
	encoded, err := ping.Encode()
	require.NoError(t, err)
	obj, _, err := reg.Decode(encoded, 0)
	require.NoError(t, err)
	assert.IsType(t, &Ping{}, obj)
}

func TestRegistryRegisterNewMagic(t *testing.T) {
	reg := NewRegistry()

	err := reg.Register(0x0badf00d, "custom", func() Object { return new(Ping) })
	require.NoError(t, err)

	infos := reg.Types()
	found := false
	for _, info := range infos {
		if info.Magic == 0x0badf00d {
			found = true
			assert.Equal(t, "custom", info.Name)
		}
	}
	assert.True(t, found, "custom registration missing from Types()")
}

func TestRegistryTypes(t *testing.T) {
	reg := NewRegistry()
	infos := reg.Types()

	require.Len(t, infos, 22)

	for i := 1; i < len(infos); i++ {
		assert.Less(t, infos[i-1].Magic, infos[i].Magic, "Types() not sorted at %d", i)
	}

	byMagic := make(map[uint32]string, len(infos))
	for _, info := range infos {
		byMagic[info.Magic] = info.Name
	}
	assert.Equal(t, "vector", byMagic[MagicVector])
	assert.Equal(t, "msg_container", byMagic[MagicMsgContainer])
	assert.Equal(t, "initConnection", byMagic[MagicInitConnection])
}

func TestRegistryIncorrectMagicEveryType(t *testing.T) {
	// Decoding a buffer with a foreign leading magic must fail with
	// ErrIncorrectMagic for every registered type.
	buf := make([]byte, 64)
	binary.LittleEndian.PutUint32(buf, 0xdeadbeef)

	reg := NewRegistry()
	for _, obj := range sampleObjects() {
		_, err := obj.Decode(reg, buf, 0)
		assert.ErrorIs(t, err, ErrIncorrectMagic, "type %T", obj)
	}
}
