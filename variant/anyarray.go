package variant

import (
	"fmt"
	"iter"
	"slices"

	"github.com/Neumenon/variant/internal/capacity"
	"github.com/Neumenon/variant/internal/rawbits"
)

// AnyArray is a structure-of-arrays collection of cells: parallel tag, raw
// and payload arrays of equal capacity, of which the first Len slots are in
// use. Every slot obeys the same invariant as Any.
//
// Slots past Len are always empty, so shrinking never leaves stale payload
// references reachable and growing never resurfaces old values.
//
// AnyArray is not safe for concurrent mutation.
type AnyArray struct {
	size  int
	kinds []AnyType
	raws  []uint64
	objs  []any
}

// NewAnyArray creates an array of size empty cells.
func NewAnyArray(size int) (*AnyArray, error) {
	a := &AnyArray{}
	if err := a.SetSize(size); err != nil {
		return nil, err
	}
	return a, nil
}

// Len returns the logical size.
func (a *AnyArray) Len() int { return a.size }

// Cap returns the capacity of the backing arrays.
func (a *AnyArray) Cap() int { return len(a.kinds) }

// Grow ensures the backing arrays can hold at least minCap slots without
// changing the logical size.
func (a *AnyArray) Grow(minCap int) error {
	newCap, err := capacity.Grow(len(a.kinds), minCap)
	if err != nil {
		return fmt.Errorf("variant: grow: %w", err)
	}
	if newCap == len(a.kinds) {
		return nil
	}
	kinds := make([]AnyType, newCap)
	raws := make([]uint64, newCap)
	objs := make([]any, newCap)
	copy(kinds, a.kinds[:a.size])
	copy(raws, a.raws[:a.size])
	copy(objs, a.objs[:a.size])
	a.kinds, a.raws, a.objs = kinds, raws, objs
	return nil
}

// SetSize changes the logical size to n, growing capacity to the next power
// of two when needed. Slots that leave or enter [0, n) are reset to empty.
func (a *AnyArray) SetSize(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeSize, n)
	}
	if err := a.Grow(n); err != nil {
		return err
	}
	if n < a.size {
		a.clearRange(n, a.size)
	} else {
		a.clearRange(a.size, n)
	}
	a.size = n
	return nil
}

// Reset empties every slot and sets the size to zero. Capacity is kept.
func (a *AnyArray) Reset() {
	a.clearRange(0, a.size)
	a.size = 0
}

func (a *AnyArray) clearRange(from, to int) {
	clear(a.kinds[from:to])
	clear(a.raws[from:to])
	clear(a.objs[from:to])
}

// Type returns the kind held at index i.
func (a *AnyArray) Type(i int) (AnyType, error) {
	if err := checkIndex(i, a.size); err != nil {
		return TypeEmpty, err
	}
	return a.kinds[i], nil
}

// IsEmpty reports whether slot i is empty. Out-of-range indexes are
// reported as empty.
func (a *AnyArray) IsEmpty(i int) bool {
	return i < 0 || i >= a.size || a.kinds[i] == TypeEmpty
}

// Clear empties slot i.
func (a *AnyArray) Clear(i int) error {
	if err := checkIndex(i, a.size); err != nil {
		return err
	}
	a.clearRange(i, i+1)
	return nil
}

// ============================================================
// Setters
// ============================================================

func (a *AnyArray) put(i int, kind AnyType, raw uint64) error {
	if err := checkIndex(i, a.size); err != nil {
		return err
	}
	a.kinds[i] = kind
	a.raws[i] = raw
	a.objs[i] = nil
	return nil
}

// The primitive setters store a value of the named kind at index i,
// dropping any payload reference previously held there.

func (a *AnyArray) SetBool(i int, v bool) error { return a.put(i, TypeBoolean, rawbits.FromBool(v)) }
func (a *AnyArray) SetByte(i int, v byte) error { return a.put(i, TypeByte, rawbits.FromByte(v)) }
func (a *AnyArray) SetChar(i int, v rune) error { return a.put(i, TypeChar, rawbits.FromChar(v)) }
func (a *AnyArray) SetShort(i int, v int16) error { return a.put(i, TypeShort, rawbits.FromShort(v)) }
func (a *AnyArray) SetInt(i int, v int32) error { return a.put(i, TypeInt, rawbits.FromInt(v)) }
func (a *AnyArray) SetLong(i int, v int64) error { return a.put(i, TypeLong, rawbits.FromLong(v)) }
func (a *AnyArray) SetFloat(i int, v float32) error { return a.put(i, TypeFloat, rawbits.FromFloat(v)) }
func (a *AnyArray) SetDouble(i int, v float64) error { return a.put(i, TypeDouble, rawbits.FromDouble(v)) }

// SetObject stores a reference payload at index i. An AnyType payload is
// rejected before any state changes.
func (a *AnyArray) SetObject(i int, v any) error {
	if err := checkIndex(i, a.size); err != nil {
		return err
	}
	if isSentinel(v) {
		return ErrSentinelPayload
	}
	a.kinds[i] = TypeObject
	a.raws[i] = 0
	a.objs[i] = v
	return nil
}

// ============================================================
// Checked getters
// ============================================================

func (a *AnyArray) get(i int, want AnyType) (uint64, error) {
	if err := checkIndex(i, a.size); err != nil {
		return 0, err
	}
	if a.kinds[i] != want {
		return 0, mismatch(i, want, a.kinds[i])
	}
	return a.raws[i], nil
}

// Bool returns the boolean at index i.
func (a *AnyArray) Bool(i int) (bool, error) {
	raw, err := a.get(i, TypeBoolean)
	return rawbits.Bool(raw), err
}

// Byte returns the byte at index i.
func (a *AnyArray) Byte(i int) (byte, error) {
	raw, err := a.get(i, TypeByte)
	return rawbits.Byte(raw), err
}

// Char returns the char at index i.
func (a *AnyArray) Char(i int) (rune, error) {
	raw, err := a.get(i, TypeChar)
	return rawbits.Char(raw), err
}

// Short returns the short at index i.
func (a *AnyArray) Short(i int) (int16, error) {
	raw, err := a.get(i, TypeShort)
	return rawbits.Short(raw), err
}

// Int returns the int at index i.
func (a *AnyArray) Int(i int) (int32, error) {
	raw, err := a.get(i, TypeInt)
	return rawbits.Int(raw), err
}

// Long returns the long at index i.
func (a *AnyArray) Long(i int) (int64, error) {
	raw, err := a.get(i, TypeLong)
	return rawbits.Long(raw), err
}

// Float returns the float at index i.
func (a *AnyArray) Float(i int) (float32, error) {
	raw, err := a.get(i, TypeFloat)
	return rawbits.Float(raw), err
}

// Double returns the double at index i.
func (a *AnyArray) Double(i int) (float64, error) {
	raw, err := a.get(i, TypeDouble)
	return rawbits.Double(raw), err
}

// Object returns the payload at index i.
func (a *AnyArray) Object(i int) (any, error) {
	if _, err := a.get(i, TypeObject); err != nil {
		return nil, err
	}
	return a.objs[i], nil
}

// ============================================================
// Unchecked getters
// ============================================================

// The Unsafe getters reinterpret the raw slot at index i without checking
// its tag. They panic only when i is outside [0, Len).

func (a *AnyArray) raw(i int) uint64 { return a.raws[:a.size][i] }

func (a *AnyArray) BoolUnsafe(i int) bool { return rawbits.Bool(a.raw(i)) }
func (a *AnyArray) ByteUnsafe(i int) byte { return rawbits.Byte(a.raw(i)) }
func (a *AnyArray) CharUnsafe(i int) rune { return rawbits.Char(a.raw(i)) }
func (a *AnyArray) ShortUnsafe(i int) int16 { return rawbits.Short(a.raw(i)) }
func (a *AnyArray) IntUnsafe(i int) int32 { return rawbits.Int(a.raw(i)) }
func (a *AnyArray) LongUnsafe(i int) int64 { return rawbits.Long(a.raw(i)) }
func (a *AnyArray) FloatUnsafe(i int) float32 { return rawbits.Float(a.raw(i)) }
func (a *AnyArray) DoubleUnsafe(i int) float64 { return rawbits.Double(a.raw(i)) }
func (a *AnyArray) ObjectUnsafe(i int) any { return a.objs[:a.size][i] }

// ============================================================
// Cells and copies
// ============================================================

// At returns a copy of slot i as a standalone cell.
func (a *AnyArray) At(i int) (Any, error) {
	if err := checkIndex(i, a.size); err != nil {
		return Any{}, err
	}
	return Any{kind: a.kinds[i], raw: a.raws[i], obj: a.objs[i]}, nil
}

// CopyTo copies slot i into dst.
func (a *AnyArray) CopyTo(i int, dst *Any) error {
	cell, err := a.At(i)
	if err != nil {
		return err
	}
	*dst = cell
	return nil
}

// CopyCellFrom overwrites slot i with src.
func (a *AnyArray) CopyCellFrom(i int, src Any) error {
	if err := checkIndex(i, a.size); err != nil {
		return err
	}
	a.kinds[i] = src.kind
	a.raws[i] = src.raw
	a.objs[i] = src.obj
	return nil
}

// Append adds cell at the end, growing the array by one.
func (a *AnyArray) Append(cell Any) error {
	if err := a.SetSize(a.size + 1); err != nil {
		return err
	}
	return a.CopyCellFrom(a.size-1, cell)
}

// Copy returns an independent clone with its own backing arrays.
func (a *AnyArray) Copy() *AnyArray {
	return &AnyArray{
		size:  a.size,
		kinds: slices.Clone(a.kinds),
		raws:  slices.Clone(a.raws),
		objs:  slices.Clone(a.objs),
	}
}

// CopyFrom overwrites a in place with the contents of src, resizing a to
// src's size. Payload references are shared, not cloned.
func (a *AnyArray) CopyFrom(src *AnyArray) error {
	if err := a.SetSize(src.size); err != nil {
		return err
	}
	n := src.size
	copy(a.kinds[:n], src.kinds[:n])
	copy(a.raws[:n], src.raws[:n])
	copy(a.objs[:n], src.objs[:n])
	return nil
}

// Equal reports whether both arrays have the same size and pairwise equal
// cells. Capacity is ignored.
func (a *AnyArray) Equal(b *AnyArray) bool {
	if a.size != b.size {
		return false
	}
	for i := 0; i < a.size; i++ {
		x := Any{kind: a.kinds[i], raw: a.raws[i], obj: a.objs[i]}
		y := Any{kind: b.kinds[i], raw: b.raws[i], obj: b.objs[i]}
		if !x.Equal(y) {
			return false
		}
	}
	return true
}

// JSONType returns the JSON category of slot i.
func (a *AnyArray) JSONType(i int) (JSONType, error) {
	cell, err := a.At(i)
	if err != nil {
		return JSONNull, err
	}
	return cell.JSONType(), nil
}

// ============================================================
// Iteration
// ============================================================

// All returns an iterator over (index, cell) pairs. Each cell is an
// independent copy. Every call starts again from index 0.
func (a *AnyArray) All() iter.Seq2[int, Any] {
	return func(yield func(int, Any) bool) {
		for i := 0; i < a.size; i++ {
			if !yield(i, Any{kind: a.kinds[i], raw: a.raws[i], obj: a.objs[i]}) {
				return
			}
		}
	}
}

// Cursor returns a new view cursor positioned before the first slot.
func (a *AnyArray) Cursor() *Cursor {
	return &Cursor{arr: a, pos: -1}
}
