package variant

import (
	"errors"
	"fmt"
)

// Cell errors
var (
	ErrTypeMismatch    = errors.New("variant: type mismatch")
	ErrSentinelPayload = errors.New("variant: an AnyType cannot be stored as an object payload")
	ErrNegativeIndex   = errors.New("variant: negative index")
	ErrIndexOutOfRange = errors.New("variant: index out of range")
	ErrNegativeSize    = errors.New("variant: negative size")
	ErrNotFinite       = errors.New("variant: NaN and Infinity have no JSON representation")
)

// TypeMismatchError is returned by checked accessors when the cell holds a
// different kind than requested. Index is -1 for standalone cells.
type TypeMismatchError struct {
	Index    int
	Expected AnyType
	Actual   AnyType
}

func (e *TypeMismatchError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("variant: expected %s, got %s", e.Expected, e.Actual)
	}
	return fmt.Sprintf("variant: slot %d: expected %s, got %s", e.Index, e.Expected, e.Actual)
}

func (e *TypeMismatchError) Unwrap() error { return ErrTypeMismatch }

// IndexError reports an index outside [0, Size).
type IndexError struct {
	Index int
	Size  int
}

func (e *IndexError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("variant: negative index %d", e.Index)
	}
	return fmt.Sprintf("variant: index %d out of bounds (len=%d)", e.Index, e.Size)
}

// Unwrap distinguishes a negative index from one past the end.
func (e *IndexError) Unwrap() error {
	if e.Index < 0 {
		return ErrNegativeIndex
	}
	return ErrIndexOutOfRange
}

func checkIndex(i, size int) error {
	if i < 0 || i >= size {
		return &IndexError{Index: i, Size: size}
	}
	return nil
}

func mismatch(index int, want, got AnyType) error {
	return &TypeMismatchError{Index: index, Expected: want, Actual: got}
}
