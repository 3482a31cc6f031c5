package convert

import (
	"fmt"
	"reflect"

	"github.com/Neumenon/variant/variant"
)

// Store writes v into slot i of arr. When reg has a converter for v's type
// the slot holds the converted primitive, otherwise it holds v as an object.
// A nil v is stored as a nil object.
func Store(reg *Registry, arr *variant.AnyArray, i int, v any) error {
	if v == nil {
		return arr.SetObject(i, nil)
	}
	c, ok := reg.Find(reflect.TypeOf(v))
	if !ok {
		return arr.SetObject(i, v)
	}
	var cell variant.Any
	if err := c.ToAny(v, &cell); err != nil {
		return err
	}
	return arr.CopyCellFrom(i, cell)
}

// Load reads slot i of arr as a value of type t. A primitive slot whose kind
// matches the converter registered for t is converted back; any other slot
// yields its boxed contents unchanged.
func Load(reg *Registry, arr *variant.AnyArray, i int, t reflect.Type) (any, error) {
	cell, err := arr.At(i)
	if err != nil {
		return nil, err
	}
	if cell.Type().IsPrimitive() {
		if c, ok := reg.Find(t); ok && c.Kind() == cell.Type() {
			return c.FromAny(cell)
		}
	}
	return cell.Interface(), nil
}

// LoadFor is Load for a static type.
func LoadFor[T any](reg *Registry, arr *variant.AnyArray, i int) (T, error) {
	var zero T
	v, err := Load(reg, arr, i, reflect.TypeFor[T]())
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%w: slot %d holds %T, want %s", ErrWrongType, i, v, reflect.TypeFor[T]())
	}
	return t, nil
}
