// Package domain maps bounded value types onto dense integer IDs.
//
// A Domain is a bijection between a Go type and a contiguous range of int
// IDs. Domains that support null reserve one extra ID, outside the range of
// any encoded value, that stands for "no value". Domains whose ID range
// covers every 32-bit pattern (Int, Float) cannot reserve such an ID and do
// not support null.
//
// Frequently decoded IDs are pre-boxed at construction so Boxed can return
// an interface value without allocating.
package domain

import (
	"errors"
	"fmt"
	"reflect"
)

// Domain errors
var (
	ErrNullUnsupported = errors.New("domain: null not supported")
	ErrNullID          = errors.New("domain: id is the null sentinel")
	ErrOutOfDomain     = errors.New("domain: value outside domain")
	ErrUnknownID       = errors.New("domain: unknown id")
	ErrWrongType       = errors.New("domain: wrong value type")
	ErrDuplicateValue  = errors.New("domain: duplicate value")
	ErrFull            = errors.New("domain: interner is full")
)

// Descriptor is the type-erased view of a Domain, used by the Registry and
// by callers that only have an interface value at hand.
type Descriptor interface {
	// Name is a short identifier such as "byte" or "char".
	Name() string
	// Type is the Go type the domain encodes.
	Type() reflect.Type
	// ExactType reports whether only values of exactly Type are accepted.
	// Non-exact domains also accept named types with the same underlying kind.
	ExactType() bool
	SupportsNull() bool
	// NullID returns the reserved null ID, if the domain has one.
	NullID() (int, bool)
	// Len returns the number of IDs that encode a value.
	Len() int64
	// IDOf encodes v, which must be nil or a value the domain accepts.
	IDOf(v any) (int, error)
	// Boxed decodes id into an interface value. The null ID decodes to nil.
	Boxed(id int) (any, error)
}

// Domain is a bijection between T and a dense range of IDs.
type Domain[T any] interface {
	Descriptor
	ID(v T) (int, error)
	Value(id int) (T, error)
}

// NullableID encodes v, mapping nil to the domain's null ID.
func NullableID[T any](d Domain[T], v *T) (int, error) {
	if v == nil {
		id, ok := d.NullID()
		if !ok {
			return 0, fmt.Errorf("%w: %s", ErrNullUnsupported, d.Name())
		}
		return id, nil
	}
	return d.ID(*v)
}

// NullableValue decodes id, mapping the domain's null ID to nil.
func NullableValue[T any](d Domain[T], id int) (*T, error) {
	if nullID, ok := d.NullID(); ok && id == nullID {
		return nil, nil
	}
	v, err := d.Value(id)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// idOf implements Descriptor.IDOf for any Domain.
func idOf[T any](d Domain[T], v any) (int, error) {
	if v == nil {
		id, ok := d.NullID()
		if !ok {
			return 0, fmt.Errorf("%w: %s", ErrNullUnsupported, d.Name())
		}
		return id, nil
	}
	if t, ok := v.(T); ok {
		return d.ID(t)
	}
	if !d.ExactType() {
		rv := reflect.ValueOf(v)
		if accepts(d.Type(), rv.Type()) {
			return d.ID(rv.Convert(d.Type()).Interface().(T))
		}
	}
	return 0, fmt.Errorf("%w: %T for %s domain", ErrWrongType, v, d.Name())
}

// accepts reports whether a non-exact domain over base serves values of t.
func accepts(base, t reflect.Type) bool {
	return t.Kind() == base.Kind() && t.ConvertibleTo(base)
}
