package lbytes

import (
	"encoding/binary"

	"golang.org/x/exp/constraints"
)

func EncodeU32[T constraints.Integer](value T) []byte {
	bs := make([]byte, 4)
	binary.LittleEndian.PutUint32(bs, uint32(value))
	return bs
}

func EncodeU16[T constraints.Integer](value T) []byte {
	bs := make([]byte, 2)
	binary.LittleEndian.PutUint16(bs, uint16(value))
	return bs
}

func EncodeGUID(guid GUID) []byte {
	bs := make([]byte, GUIDSize)
	copy(bs, guid[:])
	return bs
}

// EncodeString is the inverse of Reader.ReadString.
func EncodeString(value *string) []byte {
	if value == nil {
		return EncodeU32(0)
	}
	if *value == "" {
		return EncodeU32(1)
	}
	// +1 to account for the last zero byte
	bs := EncodeU32(len(*value) + 1)
	bs = append(bs, []byte(*value)...)
	bs = append(bs, '\u0000')
	return bs
}
