package lbytes

import (
	"bytes"
	"encoding/binary"
	"io"
	"unicode/utf8"

	"github.com/pkg/errors"
)

func NewBytesReader(bs []byte) *Reader {
	return &Reader{
		Reader: *bytes.NewReader(bs),
	}
}

func (b *Reader) ReadBytes(n int) ([]byte, error) {
	if n < 0 || n > b.Len() {
		err := errors.Wrapf(
			ErrMalformedInput,
			"ReadBytes error: want %d bytes, %d remaining",
			n, b.Len(),
		)
		return nil, err
	}
	bs := make([]byte, n)
	// io.ReadFull on a zero-length slice never touches the reader,
	// so reaching the end of the buffer with n == 0 is not an EOF
	if _, err := io.ReadFull(b, bs); err != nil {
		return nil, errors.Wrap(err, "ReadBytes error")
	}
	return bs, nil
}

func (b *Reader) ReadU32() (uint32, error) {
	bs, err := b.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(bs), nil
}

func (b *Reader) ReadU16() (uint16, error) {
	bs, err := b.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(bs), nil
}

// ReadGUID copies 16 bytes verbatim. The bytes are never reinterpreted.
func (b *Reader) ReadGUID() (GUID, error) {
	guid := GUID{}
	bs, err := b.ReadBytes(GUIDSize)
	if err != nil {
		return guid, err
	}
	copy(guid[:], bs)
	return guid, nil
}

// ReadString decodes a length-prefixed string. The u32 prefix counts the
// trailing NUL byte:
//
//   0 -> absent (nil)
//   1 -> "" (no bytes follow)
//   n -> n bytes of UTF-8 text, the last of which is the NUL terminator
func (b *Reader) ReadString() (*string, error) {
	n, err := b.ReadU32()
	if err != nil {
		return nil, errors.Wrap(err, "ReadString error: read length")
	}
	switch n {
	case 0:
		return nil, nil
	case 1:
		empty := ""
		return &empty, nil
	}
	if uint64(n) > uint64(b.Len()) {
		err := errors.Wrapf(
			ErrMalformedInput,
			"ReadString error: declared length %d exceeds %d remaining bytes",
			n, b.Len(),
		)
		return nil, err
	}
	bs, err := b.ReadBytes(int(n))
	if err != nil {
		return nil, errors.Wrap(err, "ReadString error: read content")
	}
	if bs[len(bs)-1] != 0 {
		err := errors.Wrapf(ErrMalformedInput, "ReadString error: missing NUL terminator in %q", bs)
		return nil, err
	}
	text := bs[:len(bs)-1]
	if !utf8.Valid(text) {
		err := errors.Wrapf(ErrMalformedInput, "ReadString error: invalid UTF-8 in %q", text)
		return nil, err
	}
	s := string(text)
	return &s, nil
}
