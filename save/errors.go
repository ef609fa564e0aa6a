package save

import (
	"fmt"

	"github.com/pkg/errors"
)

type (
	// PlaythroughError reports a rejected copy or clear on one playthrough
	// array. Limit is the largest index the operation would have accepted.
	PlaythroughError struct {
		Array  string
		Op     string
		Index  int
		Limit  int
		Reason string
		Kind   error
	}
)

var (
	ErrIndexOutOfRange    = errors.New("playthrough index out of range")
	ErrInvalidPlaythrough = errors.New("invalid playthrough")
	ErrInvalidSerial      = errors.New("invalid item serial")
	ErrInvalidLevel       = errors.New("invalid character level")
	ErrChallengeNotFound  = errors.New("challenge not found")
	ErrUnknownClass       = errors.New("unknown character class")
)

func (r PlaythroughError) Error() string {
	return fmt.Sprintf(
		"%s %s: %s: %s (got %d, limit %d)",
		r.Op, r.Array, r.Kind, r.Reason, r.Index, r.Limit,
	)
}

func (r PlaythroughError) Unwrap() error {
	return r.Kind
}
