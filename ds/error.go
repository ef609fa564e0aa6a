package ds

import (
	"fmt"
)

type (
	// ErrUnreachableCode reports a value that an earlier validation step
	// should have rejected.
	ErrUnreachableCode struct {
		Caller string
		Value  any
	}
)

func (r ErrUnreachableCode) Error() string {
	return fmt.Sprintf("%s: unreachable code with value %v", r.Caller, r.Value)
}
