// Package convert maps arbitrary Go types onto primitive variant cells.
//
// A Converter turns values of one source type into a single primitive cell
// and back, so that, for example, a time.Duration can live in an AnyArray
// slot as a long instead of as a boxed object. Converters are looked up by
// type in a Registry; registries nest, and a child registry shadows its
// parent the way an inner scope shadows an outer one.
package convert

import (
	"errors"
	"fmt"
	"math"
	"reflect"

	"github.com/Neumenon/variant/domain"
	"github.com/Neumenon/variant/variant"
)

// Convert errors
var (
	ErrWrongType = errors.New("convert: wrong source type")
	ErrRange     = errors.New("convert: value out of range")
)

// Converter moves values of one Go type in and out of primitive cells.
type Converter interface {
	// Type is the source type the converter accepts.
	Type() reflect.Type
	// Kind is the primitive cell kind values are stored as.
	Kind() variant.AnyType
	// ToAny stores v, which must be of Type, into dst.
	ToAny(v any, dst *variant.Any) error
	// FromAny rebuilds a value of Type from a cell of Kind.
	FromAny(a variant.Any) (any, error)
}

// Primitive lists the Go types a converter can target.
type Primitive interface {
	bool | byte | int16 | int32 | int64 | float32 | float64
}

// Func is a Converter built from a pair of functions between T and the
// primitive P.
type Func[T any, P Primitive] struct {
	to   func(T) (P, error)
	from func(P) (T, error)
}

// New builds a converter from T to P. Neither function may be nil.
func New[T any, P Primitive](to func(T) (P, error), from func(P) (T, error)) *Func[T, P] {
	return &Func[T, P]{to: to, from: from}
}

// Bool builds a converter storing T as a boolean cell.
func Bool[T any](to func(T) bool, from func(bool) T) *Func[T, bool] {
	return New(infallible(to), infallible(from))
}

// Int builds a converter storing T as an int cell.
func Int[T any](to func(T) int32, from func(int32) T) *Func[T, int32] {
	return New(infallible(to), infallible(from))
}

// Long builds a converter storing T as a long cell.
func Long[T any](to func(T) int64, from func(int64) T) *Func[T, int64] {
	return New(infallible(to), infallible(from))
}

// Double builds a converter storing T as a double cell.
func Double[T any](to func(T) float64, from func(float64) T) *Func[T, float64] {
	return New(infallible(to), infallible(from))
}

func infallible[A, B any](f func(A) B) func(A) (B, error) {
	return func(a A) (B, error) { return f(a), nil }
}

func (f *Func[T, P]) Type() reflect.Type { return reflect.TypeFor[T]() }

func (f *Func[T, P]) Kind() variant.AnyType { return kindOf[P]() }

// Convert applies the forward function.
func (f *Func[T, P]) Convert(v T) (P, error) { return f.to(v) }

// Revert applies the backward function.
func (f *Func[T, P]) Revert(p P) (T, error) { return f.from(p) }

func (f *Func[T, P]) ToAny(v any, dst *variant.Any) error {
	t, ok := v.(T)
	if !ok {
		return fmt.Errorf("%w: %T, want %s", ErrWrongType, v, f.Type())
	}
	p, err := f.to(t)
	if err != nil {
		return err
	}
	setPrimitive(dst, p)
	return nil
}

func (f *Func[T, P]) FromAny(a variant.Any) (any, error) {
	p, err := getPrimitive[P](a)
	if err != nil {
		return nil, err
	}
	t, err := f.from(p)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// FromDomain builds a converter storing T as its ID in d, in an int cell.
func FromDomain[T any](d domain.Domain[T]) *Func[T, int32] {
	return New(
		func(v T) (int32, error) {
			id, err := d.ID(v)
			if err != nil {
				return 0, err
			}
			if id < math.MinInt32 || id > math.MaxInt32 {
				return 0, fmt.Errorf("%w: %s id %d", ErrRange, d.Name(), id)
			}
			return int32(id), nil
		},
		func(id int32) (T, error) { return d.Value(int(id)) },
	)
}

func kindOf[P Primitive]() variant.AnyType {
	var zero P
	switch any(zero).(type) {
	case bool:
		return variant.TypeBoolean
	case byte:
		return variant.TypeByte
	case int16:
		return variant.TypeShort
	case int32:
		return variant.TypeInt
	case int64:
		return variant.TypeLong
	case float32:
		return variant.TypeFloat
	default:
		return variant.TypeDouble
	}
}

func setPrimitive[P Primitive](dst *variant.Any, p P) {
	switch v := any(p).(type) {
	case bool:
		dst.SetBool(v)
	case byte:
		dst.SetByte(v)
	case int16:
		dst.SetShort(v)
	case int32:
		dst.SetInt(v)
	case int64:
		dst.SetLong(v)
	case float32:
		dst.SetFloat(v)
	case float64:
		dst.SetDouble(v)
	}
}

func getPrimitive[P Primitive](a variant.Any) (P, error) {
	var (
		v   any
		err error
	)
	switch kindOf[P]() {
	case variant.TypeBoolean:
		v, err = a.Bool()
	case variant.TypeByte:
		v, err = a.Byte()
	case variant.TypeShort:
		v, err = a.Short()
	case variant.TypeInt:
		v, err = a.Int()
	case variant.TypeLong:
		v, err = a.Long()
	case variant.TypeFloat:
		v, err = a.Float()
	default:
		v, err = a.Double()
	}
	if err != nil {
		var zero P
		return zero, err
	}
	return v.(P), nil
}
