package domain

import (
	"fmt"
	"reflect"
	"slices"
)

// Enum is a Domain over a fixed, ordered list of values. A value's ID is its
// position in the list and the null ID is the list length.
type Enum[T comparable] struct {
	name   string
	values []T
	ids    map[T]int
	boxes  []any
}

// NewEnum builds an Enum over values, in order. Duplicate values are rejected.
func NewEnum[T comparable](name string, values ...T) (*Enum[T], error) {
	e := &Enum[T]{
		name:   name,
		values: slices.Clone(values),
		ids:    make(map[T]int, len(values)),
		boxes:  make([]any, len(values)),
	}
	for i, v := range values {
		if _, dup := e.ids[v]; dup {
			return nil, fmt.Errorf("%w: %v in enum %s", ErrDuplicateValue, v, name)
		}
		e.ids[v] = i
		e.boxes[i] = v
	}
	return e, nil
}

func (e *Enum[T]) Name() string { return e.name }
func (e *Enum[T]) Type() reflect.Type { return reflect.TypeFor[T]() }

// ExactType is true: an enum only knows its own values.
func (e *Enum[T]) ExactType() bool { return true }
func (e *Enum[T]) SupportsNull() bool { return true }
func (e *Enum[T]) NullID() (int, bool) { return len(e.values), true }
func (e *Enum[T]) Len() int64 { return int64(len(e.values)) }

// Values returns the enum values in ID order.
func (e *Enum[T]) Values() []T { return slices.Clone(e.values) }

func (e *Enum[T]) ID(v T) (int, error) {
	id, ok := e.ids[v]
	if !ok {
		return 0, fmt.Errorf("%w: %v not in enum %s", ErrOutOfDomain, v, e.name)
	}
	return id, nil
}

func (e *Enum[T]) IDOf(v any) (int, error) { return idOf[T](e, v) }

func (e *Enum[T]) Value(id int) (T, error) {
	var zero T
	switch {
	case id == len(e.values):
		return zero, fmt.Errorf("%w: %s id %d", ErrNullID, e.name, id)
	case id < 0 || id > len(e.values):
		return zero, fmt.Errorf("%w: %s id %d", ErrUnknownID, e.name, id)
	}
	return e.values[id], nil
}

func (e *Enum[T]) Boxed(id int) (any, error) {
	switch {
	case id == len(e.values):
		return nil, nil
	case id < 0 || id > len(e.values):
		return nil, fmt.Errorf("%w: %s id %d", ErrUnknownID, e.name, id)
	}
	return e.boxes[id], nil
}
