// Package lbytes reads and writes the little-endian primitives of a GVAS
// container: fixed-width integers, opaque GUIDs and length-prefixed strings.
package lbytes

import (
	"bytes"

	"github.com/pkg/errors"
)

type (
	Reader struct {
		bytes.Reader
	}
	Instruction struct {
		Key          string
		ReadFunction ReadFunction
	}
	ReadFunction func() (any, error)
	GUID         [GUIDSize]byte
)

const (
	GUIDSize = 16
)

// ErrMalformedInput is returned when a field declares more bytes than the
// buffer still holds, or when its content does not follow the string layout.
var ErrMalformedInput = errors.New("malformed input")
