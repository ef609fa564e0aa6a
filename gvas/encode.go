package gvas

import (
	"bl3-savior/gvas/gcrypt"
	"bl3-savior/gvas/gheader"
	"bl3-savior/gvas/lbytes"
)

func Encode(container Container) []byte {
	headerBytes := gheader.Encode(container.Header)
	bs := make([]byte, 0, len(headerBytes)+4+len(container.Payload))
	bs = append(bs, headerBytes...)
	bs = append(bs, lbytes.EncodeU32(len(container.Payload))...)
	bs = append(bs, gcrypt.Encrypt(container.Payload)...)
	return bs
}
