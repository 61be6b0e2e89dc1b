package enumeration

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds is wrapped by every BoundsError.
var ErrOutOfBounds = errors.New("attempted to advance past enumeration bounds")

// BoundsError is the panic value of MustAdvance.
type BoundsError struct {
	From any
	By   int64
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("enumeration: %v advanced by %d: %v", e.From, e.By, ErrOutOfBounds)
}

func (e *BoundsError) Unwrap() error {
	return ErrOutOfBounds
}
