// Package genvelope validates the message carried inside a decrypted GVAS
// payload. The message codec is supplied by the caller; this package only
// decides whether the decoded message is safe to edit and write back.
package genvelope

import (
	"github.com/pkg/errors"
)

type (
	Message interface {
		Unmarshal(bs []byte) error
		Marshal() ([]byte, error)
		IsInitialized() bool
		HasUnknownFields() bool
	}
	TextMessage interface {
		Message
		ParseText(text []byte) error
		RenderText() ([]byte, error)
	}
)

var ErrCorruptSave = errors.New("corrupt save")

// Validate rejects partially populated messages and messages carrying fields
// the schema does not know about. Writing either back would drop data.
func Validate(message Message) error {
	if !message.IsInitialized() {
		return errors.Wrap(ErrCorruptSave, "message is not fully initialized")
	}
	if message.HasUnknownFields() {
		return errors.Wrap(ErrCorruptSave, "message has unknown fields")
	}
	return nil
}

// Decode fills message from payload. The re-encoded length is not compared
// with len(payload), since older payload revisions encode to different sizes.
func Decode(payload []byte, message Message) error {
	if err := message.Unmarshal(payload); err != nil {
		err := errors.Wrap(ErrCorruptSave, err.Error())
		return errors.Wrap(err, "genvelope.Decode error")
	}
	if err := Validate(message); err != nil {
		return errors.Wrap(err, "genvelope.Decode error")
	}
	return nil
}

func Encode(message Message) ([]byte, error) {
	bs, err := message.Marshal()
	if err != nil {
		return nil, errors.Wrap(err, "genvelope.Encode error")
	}
	return bs, nil
}

// FromText parses the text rendering of a message and then holds it to the
// same checks as a binary payload.
func FromText(text []byte, message TextMessage) error {
	if err := message.ParseText(text); err != nil {
		err := errors.Wrap(ErrCorruptSave, err.Error())
		return errors.Wrap(err, "genvelope.FromText error")
	}
	if err := Validate(message); err != nil {
		return errors.Wrap(err, "genvelope.FromText error")
	}
	return nil
}

func ToText(message TextMessage) ([]byte, error) {
	text, err := message.RenderText()
	if err != nil {
		return nil, errors.Wrap(err, "genvelope.ToText error")
	}
	return text, nil
}
