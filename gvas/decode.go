package gvas

import (
	"bl3-savior/gvas/gcrypt"
	"bl3-savior/gvas/gheader"
	"bl3-savior/gvas/lbytes"
	"github.com/pkg/errors"
)

func Decode(bs []byte) (*Container, error) {
	reader := lbytes.NewBytesReader(bs)
	header, err := gheader.Decode(reader)
	if err != nil {
		return nil, errors.Wrap(err, "gvas.Decode error")
	}

	payloadLength, err := reader.ReadU32()
	if err != nil {
		return nil, errors.Wrap(err, "gvas.Decode error: read payload length")
	}
	ciphertext, err := reader.ReadBytes(int(payloadLength))
	if err != nil {
		return nil, errors.Wrap(err, "gvas.Decode error: read payload")
	}
	if reader.Len() != 0 {
		err := errors.Wrapf(ErrTrailingData, "gvas.Decode error: %d bytes after payload", reader.Len())
		return nil, err
	}

	container := Container{
		Header:  *header,
		Payload: gcrypt.Decrypt(ciphertext),
	}
	return &container, nil
}
