package typevec

import (
	"errors"
	"fmt"
)

var (
	// ErrConsumed is the panic value when a Vect is used after an operation
	// consumed it.
	ErrConsumed = errors.New("typevec: use of consumed vector")

	// ErrZeroValue is the panic value when the zero value of a Vect with a
	// non-zero static length is used. Only Vect[T, U0] and Vect[T, Dyn] have
	// a usable zero value.
	ErrZeroValue = errors.New("typevec: zero value of non-empty static vector")
)

// IndexError is the panic value of Insert and Remove (and their Dyn
// variants) when the runtime index is out of range.
type IndexError struct {
	Op    string
	Index int
	Len   int
	// Inclusive is set for insertion, where Index == Len is valid.
	Inclusive bool
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("typevec: %s index %d out of range with length %d", e.Op, e.Index, e.Len)
}
