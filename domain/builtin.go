package domain

import (
	"fmt"
	"math"
	"reflect"
	"sync"
	"unicode"
)

// codec is a Domain over a fixed ID range [minID, maxID] described by a
// pair of conversion functions.
type codec[T any] struct {
	name    string
	typ     reflect.Type
	hasNull bool
	nullID  int
	minID   int
	maxID   int
	encode  func(T) (int, error)
	decode  func(int) T
	boxes   boxCache
}

func (c *codec[T]) Name() string { return c.name }
func (c *codec[T]) Type() reflect.Type { return c.typ }
func (c *codec[T]) ExactType() bool { return false }
func (c *codec[T]) SupportsNull() bool { return c.hasNull }
func (c *codec[T]) NullID() (int, bool) { return c.nullID, c.hasNull }
func (c *codec[T]) Len() int64 { return int64(c.maxID) - int64(c.minID) + 1 }

func (c *codec[T]) ID(v T) (int, error) { return c.encode(v) }

func (c *codec[T]) IDOf(v any) (int, error) { return idOf[T](c, v) }

func (c *codec[T]) Value(id int) (T, error) {
	var zero T
	if err := c.check(id); err != nil {
		return zero, err
	}
	return c.decode(id), nil
}

func (c *codec[T]) Boxed(id int) (any, error) {
	if c.hasNull && id == c.nullID {
		return nil, nil
	}
	if v, ok := c.boxes.get(id); ok {
		return v, nil
	}
	if err := c.check(id); err != nil {
		return nil, err
	}
	return c.decode(id), nil
}

func (c *codec[T]) check(id int) error {
	if c.hasNull && id == c.nullID {
		return fmt.Errorf("%w: %s id %d", ErrNullID, c.name, id)
	}
	if id < c.minID || id > c.maxID {
		return fmt.Errorf("%w: %s id %d", ErrUnknownID, c.name, id)
	}
	return nil
}

// boxCache holds pre-boxed values for IDs in [lo, lo+len(boxes)).
type boxCache struct {
	lo    int
	boxes []any
}

func newBoxCache[T any](lo, hi int, decode func(int) T) boxCache {
	boxes := make([]any, hi-lo+1)
	for id := lo; id <= hi; id++ {
		boxes[id-lo] = decode(id)
	}
	return boxCache{lo: lo, boxes: boxes}
}

func (b boxCache) get(id int) (any, bool) {
	i := id - b.lo
	if i < 0 || i >= len(b.boxes) {
		return nil, false
	}
	return b.boxes[i], true
}

// Small-integer window pre-boxed by the Short and Int domains.
const (
	smallIntLo = -128
	smallIntHi = 1023
)

// ============================================================
// Built-in domains
// ============================================================

// Bool encodes false as 0 and true as 1. Null is 2.
var Bool = sync.OnceValue(func() Domain[bool] {
	c := &codec[bool]{
		name:    "bool",
		typ:     reflect.TypeFor[bool](),
		hasNull: true,
		nullID:  2,
		minID:   0,
		maxID:   1,
		encode: func(v bool) (int, error) {
			if v {
				return 1, nil
			}
			return 0, nil
		},
		decode: func(id int) bool { return id != 0 },
	}
	c.boxes = newBoxCache(0, 1, c.decode)
	return c
})

// Byte encodes a byte as itself, 0..255. Null is 256.
var Byte = sync.OnceValue(func() Domain[byte] {
	c := &codec[byte]{
		name:    "byte",
		typ:     reflect.TypeFor[byte](),
		hasNull: true,
		nullID:  math.MaxUint8 + 1,
		minID:   0,
		maxID:   math.MaxUint8,
		encode:  func(v byte) (int, error) { return int(v), nil },
		decode:  func(id int) byte { return byte(id) },
	}
	c.boxes = newBoxCache(0, math.MaxUint8, c.decode)
	return c
})

// Short encodes v as v+32768, 0..65535. Null is 65536.
var Short = sync.OnceValue(func() Domain[int16] {
	c := &codec[int16]{
		name:    "short",
		typ:     reflect.TypeFor[int16](),
		hasNull: true,
		nullID:  math.MaxUint16 + 1,
		minID:   0,
		maxID:   math.MaxUint16,
		encode:  func(v int16) (int, error) { return int(v) - math.MinInt16, nil },
		decode:  func(id int) int16 { return int16(id + math.MinInt16) },
	}
	c.boxes = newBoxCache(smallIntLo-math.MinInt16, smallIntHi-math.MinInt16, c.decode)
	return c
})

// Char encodes a code point as itself, 0..unicode.MaxRune. Null is
// unicode.MaxRune+1. Negative runes and runes above MaxRune are rejected.
var Char = sync.OnceValue(func() Domain[rune] {
	c := &codec[rune]{
		name:    "char",
		typ:     reflect.TypeFor[rune](),
		hasNull: true,
		nullID:  unicode.MaxRune + 1,
		minID:   0,
		maxID:   unicode.MaxRune,
		encode: func(v rune) (int, error) {
			if v < 0 || v > unicode.MaxRune {
				return 0, fmt.Errorf("%w: char %#x", ErrOutOfDomain, v)
			}
			return int(v), nil
		},
		decode: func(id int) rune { return rune(id) },
	}
	c.boxes = newBoxCache(0, unicode.MaxASCII, c.decode)
	return c
})

// Int encodes an int32 as itself. Every 32-bit pattern is a value, so Int
// does not support null and its IDs span the signed 32-bit range.
var Int = sync.OnceValue(func() Domain[int32] {
	c := &codec[int32]{
		name:   "int",
		typ:    reflect.TypeFor[int32](),
		minID:  math.MinInt32,
		maxID:  math.MaxInt32,
		encode: func(v int32) (int, error) { return int(v), nil },
		decode: func(id int) int32 { return int32(id) },
	}
	c.boxes = newBoxCache(smallIntLo, smallIntHi, c.decode)
	return c
})

// Float encodes a float32 as its raw IEEE-754 bits read as an int32. The
// mapping is exact for every bit pattern, NaN payloads included, so Float
// does not support null.
var Float = sync.OnceValue(func() Domain[float32] {
	c := &codec[float32]{
		name:   "float",
		typ:    reflect.TypeFor[float32](),
		minID:  math.MinInt32,
		maxID:  math.MaxInt32,
		encode: func(v float32) (int, error) { return int(int32(math.Float32bits(v))), nil },
		decode: func(id int) float32 { return math.Float32frombits(uint32(int32(id))) },
	}
	c.boxes = newBoxCache(0, 0, c.decode)
	return c
})

// Float32 bit patterns used by NullableFloat.
const (
	canonicalNaN32 = 0x7FC00000
	nullNaN32      = 0x7FC00001
	nanCount32     = 2 * (1<<23 - 1)
)

// NullableFloat is Float with NaNs collapsed to the canonical quiet NaN
// 0x7FC00000. That frees the NaN pattern 0x7FC00001, which no encoded
// value ever produces, to serve as the null ID.
var NullableFloat = sync.OnceValue(func() Domain[float32] {
	return &nullableFloat{codec: codec[float32]{
		name:    "nullable-float",
		typ:     reflect.TypeFor[float32](),
		hasNull: true,
		nullID:  nullNaN32,
		minID:   math.MinInt32,
		maxID:   math.MaxInt32,
		encode: func(v float32) (int, error) {
			if math.IsNaN(float64(v)) {
				return canonicalNaN32, nil
			}
			return int(int32(math.Float32bits(v))), nil
		},
		decode: func(id int) float32 { return math.Float32frombits(uint32(int32(id))) },
	}}
})

type nullableFloat struct {
	codec[float32]
}

// Len counts every non-NaN pattern plus the single canonical NaN.
func (n *nullableFloat) Len() int64 { return 1<<32 - nanCount32 + 1 }

func (n *nullableFloat) IDOf(v any) (int, error) { return idOf[float32](n, v) }
