package sparsevec

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned by checked accessors when the requested index
// has never been populated or lies beyond the slot table.
var ErrOutOfRange = errors.New("sparsevec: index out of range")

// OutOfRangeError carries the diagnostic context of a failed checked access.
//
// It matches ErrOutOfRange via errors.Is.
type OutOfRangeError struct {
	// Index is the requested external index.
	Index int
	// Size is the population count at the time of the access.
	Size int
	// Len is the slot-table length at the time of the access.
	Len int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("sparsevec: index %d out of range (size %d, len %d)", e.Index, e.Size, e.Len)
}

func (e *OutOfRangeError) Unwrap() error { return ErrOutOfRange }

func (v *Vector[T]) outOfRange(i int) *OutOfRangeError {
	return &OutOfRangeError{Index: i, Size: len(v.values), Len: len(v.slots)}
}
