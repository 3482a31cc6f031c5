package variant

import (
	"fmt"
	"hash/maphash"
	"reflect"

	"github.com/Neumenon/variant/internal/rawbits"
)

// Any is a single tagged value cell: one kind tag, one raw 64-bit slot for
// primitive kinds and one reference slot for object payloads. Exactly one of
// the two slots is meaningful, as selected by the tag; the other is kept zero.
//
// The zero value is an empty cell. Any is not safe for concurrent mutation.
type Any struct {
	kind AnyType
	raw  uint64
	obj  any
}

// ============================================================
// Constructors
// ============================================================

// BoolOf creates a boolean cell.
func BoolOf(v bool) Any { return Any{kind: TypeBoolean, raw: rawbits.FromBool(v)} }

// ByteOf creates a byte cell.
func ByteOf(v byte) Any { return Any{kind: TypeByte, raw: rawbits.FromByte(v)} }

// CharOf creates a char cell.
func CharOf(v rune) Any { return Any{kind: TypeChar, raw: rawbits.FromChar(v)} }

// ShortOf creates a short cell.
func ShortOf(v int16) Any { return Any{kind: TypeShort, raw: rawbits.FromShort(v)} }

// IntOf creates an int cell.
func IntOf(v int32) Any { return Any{kind: TypeInt, raw: rawbits.FromInt(v)} }

// LongOf creates a long cell.
func LongOf(v int64) Any { return Any{kind: TypeLong, raw: rawbits.FromLong(v)} }

// FloatOf creates a float cell.
func FloatOf(v float32) Any { return Any{kind: TypeFloat, raw: rawbits.FromFloat(v)} }

// DoubleOf creates a double cell.
func DoubleOf(v float64) Any { return Any{kind: TypeDouble, raw: rawbits.FromDouble(v)} }

// ObjectOf creates an object cell. A nil payload is allowed and is distinct
// from an empty cell; an AnyType payload is rejected.
func ObjectOf(v any) (Any, error) {
	if isSentinel(v) {
		return Any{}, ErrSentinelPayload
	}
	return Any{kind: TypeObject, obj: v}, nil
}

// ============================================================
// Accessors
// ============================================================

// Type returns the kind currently held.
func (a Any) Type() AnyType { return a.kind }

// IsEmpty reports whether the cell holds no value.
func (a Any) IsEmpty() bool { return a.kind == TypeEmpty }

// Raw returns the raw 64-bit slot. It is zero for object and empty cells.
func (a Any) Raw() uint64 { return a.raw }

// Interface returns the held value boxed as its Go type, or nil when empty.
func (a Any) Interface() any { return decode(a.kind, a.raw, a.obj) }

func (a Any) check(want AnyType) error {
	if a.kind != want {
		return mismatch(-1, want, a.kind)
	}
	return nil
}

// Bool returns the boolean value.
func (a Any) Bool() (bool, error) {
	if err := a.check(TypeBoolean); err != nil {
		return false, err
	}
	return rawbits.Bool(a.raw), nil
}

// Byte returns the byte value.
func (a Any) Byte() (byte, error) {
	if err := a.check(TypeByte); err != nil {
		return 0, err
	}
	return rawbits.Byte(a.raw), nil
}

// Char returns the char value.
func (a Any) Char() (rune, error) {
	if err := a.check(TypeChar); err != nil {
		return 0, err
	}
	return rawbits.Char(a.raw), nil
}

// Short returns the short value.
func (a Any) Short() (int16, error) {
	if err := a.check(TypeShort); err != nil {
		return 0, err
	}
	return rawbits.Short(a.raw), nil
}

// Int returns the int value.
func (a Any) Int() (int32, error) {
	if err := a.check(TypeInt); err != nil {
		return 0, err
	}
	return rawbits.Int(a.raw), nil
}

// Long returns the long value.
func (a Any) Long() (int64, error) {
	if err := a.check(TypeLong); err != nil {
		return 0, err
	}
	return rawbits.Long(a.raw), nil
}

// Float returns the float value.
func (a Any) Float() (float32, error) {
	if err := a.check(TypeFloat); err != nil {
		return 0, err
	}
	return rawbits.Float(a.raw), nil
}

// Double returns the double value.
func (a Any) Double() (float64, error) {
	if err := a.check(TypeDouble); err != nil {
		return 0, err
	}
	return rawbits.Double(a.raw), nil
}

// Object returns the object payload.
func (a Any) Object() (any, error) {
	if err := a.check(TypeObject); err != nil {
		return nil, err
	}
	return a.obj, nil
}

// The Unsafe accessors skip the tag check and reinterpret the raw slot as the
// requested kind. They never fail; the caller is responsible for knowing what
// the cell holds.

func (a Any) BoolUnsafe() bool { return rawbits.Bool(a.raw) }
func (a Any) ByteUnsafe() byte { return rawbits.Byte(a.raw) }
func (a Any) CharUnsafe() rune { return rawbits.Char(a.raw) }
func (a Any) ShortUnsafe() int16 { return rawbits.Short(a.raw) }
func (a Any) IntUnsafe() int32 { return rawbits.Int(a.raw) }
func (a Any) LongUnsafe() int64 { return rawbits.Long(a.raw) }
func (a Any) FloatUnsafe() float32 { return rawbits.Float(a.raw) }
func (a Any) DoubleUnsafe() float64 { return rawbits.Double(a.raw) }
func (a Any) ObjectUnsafe() any { return a.obj }

// ============================================================
// Mutators
// ============================================================

func (a *Any) setRaw(kind AnyType, raw uint64) {
	a.kind = kind
	a.raw = raw
	a.obj = nil
}

// The primitive setters replace the cell's contents, dropping any payload.

func (a *Any) SetBool(v bool) { a.setRaw(TypeBoolean, rawbits.FromBool(v)) }
func (a *Any) SetByte(v byte) { a.setRaw(TypeByte, rawbits.FromByte(v)) }
func (a *Any) SetChar(v rune) { a.setRaw(TypeChar, rawbits.FromChar(v)) }
func (a *Any) SetShort(v int16) { a.setRaw(TypeShort, rawbits.FromShort(v)) }
func (a *Any) SetInt(v int32) { a.setRaw(TypeInt, rawbits.FromInt(v)) }
func (a *Any) SetLong(v int64) { a.setRaw(TypeLong, rawbits.FromLong(v)) }
func (a *Any) SetFloat(v float32) { a.setRaw(TypeFloat, rawbits.FromFloat(v)) }
func (a *Any) SetDouble(v float64) { a.setRaw(TypeDouble, rawbits.FromDouble(v)) }

// SetObject stores a reference payload. It fails without modifying the cell
// if v is an AnyType.
func (a *Any) SetObject(v any) error {
	if isSentinel(v) {
		return ErrSentinelPayload
	}
	a.kind = TypeObject
	a.raw = 0
	a.obj = v
	return nil
}

// Clear empties the cell and drops any payload reference.
func (a *Any) Clear() {
	*a = Any{}
}

// ============================================================
// Equality
// ============================================================

var hashSeed = maphash.MakeSeed()

// Equal reports whether both cells hold the same kind and raw bits, with
// object payloads compared by value. Float cells compare bit-exactly, so a
// NaN equals itself and 0.0 differs from -0.0.
func (a Any) Equal(b Any) bool {
	if a.kind != b.kind || a.raw != b.raw {
		return false
	}
	if a.kind != TypeObject {
		return true
	}
	return objectsEqual(a.obj, b.obj)
}

// Hash returns a hash consistent with Equal for comparable payloads.
// Non-comparable payloads hash by dynamic type only.
func (a Any) Hash() uint64 {
	h := (a.raw ^ uint64(a.kind)<<56) * 0x9E3779B97F4A7C15
	if a.kind == TypeObject && a.obj != nil {
		rv := reflect.ValueOf(a.obj)
		if rv.Comparable() {
			h ^= maphash.Comparable(hashSeed, a.obj)
		} else {
			h ^= maphash.String(hashSeed, rv.Type().String())
		}
	}
	return h
}

func objectsEqual(x, y any) bool {
	if x == nil || y == nil {
		return x == nil && y == nil
	}
	if reflect.TypeOf(x) != reflect.TypeOf(y) {
		return false
	}
	if reflect.ValueOf(x).Comparable() {
		return x == y
	}
	return reflect.DeepEqual(x, y)
}

// String returns a debug form such as "int(42)" or "empty".
func (a Any) String() string {
	switch a.kind {
	case TypeEmpty:
		return "empty"
	case TypeChar:
		return fmt.Sprintf("char(%q)", rawbits.Char(a.raw))
	case TypeObject:
		if s, ok := a.obj.(string); ok {
			return fmt.Sprintf("object(%q)", s)
		}
		return fmt.Sprintf("object(%v)", a.obj)
	default:
		return fmt.Sprintf("%s(%v)", a.kind, decode(a.kind, a.raw, nil))
	}
}
