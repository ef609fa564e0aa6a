package lbytes

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeU32(t *testing.T) {
	bs1 := make([]byte, 4)
	binary.LittleEndian.PutUint32(bs1, 10)
	assert.Equal(t, bs1, EncodeU32(10))
	assert.Equal(t, []byte{0xff, 0xff, 0xff, 0xff}, EncodeU32(uint32(0xffffffff)))
}

func TestEncodeU16(t *testing.T) {
	assert.Equal(t, []byte{0x34, 0x12}, EncodeU16(uint16(0x1234)))
}

func TestEncodeString(t *testing.T) {
	assert.Equal(t, []byte{0, 0, 0, 0}, EncodeString(nil))
	assert.Equal(t, []byte{1, 0, 0, 0}, EncodeString(ptr("")))
	assert.Equal(t, []byte{4, 0, 0, 0, 'a', 'b', 'c', 0}, EncodeString(ptr("abc")))
}

func TestEncodeString_RoundTrip(t *testing.T) {
	values := []*string{nil, ptr(""), ptr("a"), ptr("abc"), ptr("/Game/PlayerCharacters/_Shared/_Design/SaveGame")}
	for _, value := range values {
		reader := NewBytesReader(EncodeString(value))
		decoded, err := reader.ReadString()
		require.NoError(t, err)
		assert.Equal(t, value, decoded)
	}
}

func TestEncodeGUID(t *testing.T) {
	guid := GUID{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	bs := EncodeGUID(guid)
	assert.Equal(t, guid[:], bs)

	decoded, err := NewBytesReader(bs).ReadGUID()
	require.NoError(t, err)
	assert.Equal(t, guid, decoded)
}
