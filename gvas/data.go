// Package gvas stores the code to decode and encode GVAS savegame containers:
// a header, followed by one length-prefixed block of obfuscated payload.
package gvas

import (
	"bl3-savior/gvas/gheader"
	"bl3-savior/gvas/lbytes"
	"github.com/pkg/errors"
)

type (
	// Container holds the payload in its decrypted form. Encryption happens
	// only on the way in and out of bytes.
	Container struct {
		Header  gheader.Header `json:"header"`
		Payload []byte         `json:"payload"`
	}
)

var (
	ErrBadMagic       = gheader.ErrBadMagic
	ErrMalformedInput = lbytes.ErrMalformedInput
	ErrTrailingData   = errors.New("trailing data after payload")
)

func IsGVASFile(bs []byte) bool {
	if len(bs) < gheader.MagicNumberSize {
		return false
	}
	return gheader.IsValidMagicNumber(bs[:gheader.MagicNumberSize])
}
