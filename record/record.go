// Package record implements GenericObject, a growable record store with two
// independent slot arrays: one for object references and one for raw 64-bit
// primitive data. Each array has its own cursor for sequential access, and a
// small side map carries named metadata.
//
// Sequential writers come in two flavours. SetIntSafe (and friends) grow the
// data array when needed. SetInt assumes the caller reserved room with
// EnsureFreeDataCapacity and panics with an *IndexError otherwise:
//
//	g := record.New()
//	_ = g.EnsureFreeDataCapacity(2)
//	g.SetInt(7)
//	g.SetInt(9)
//	_ = g.SetDataIndex(0)
//	a, _ := g.Int() // 7
//	b, _ := g.Int() // 9
//
// A GenericObject is not safe for concurrent mutation.
package record

import (
	"errors"
	"fmt"
	"slices"

	"github.com/Neumenon/variant/internal/capacity"
)

// Record errors
var (
	ErrNegativeIndex   = errors.New("record: negative index")
	ErrIndexOutOfRange = errors.New("record: index out of range")
	ErrNegativeCount   = errors.New("record: negative slot count")
)

// Axis names a slot array in errors.
type Axis string

const (
	AxisObject Axis = "object"
	AxisData   Axis = "data"
)

// IndexError reports an index outside an axis's valid range.
type IndexError struct {
	Axis  Axis
	Index int
	Size  int
}

func (e *IndexError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("record: %s index %d is negative", e.Axis, e.Index)
	}
	return fmt.Sprintf("record: %s index %d out of bounds (len=%d)", e.Axis, e.Index, e.Size)
}

// Unwrap distinguishes a negative index from one past the end.
func (e *IndexError) Unwrap() error {
	if e.Index < 0 {
		return ErrNegativeIndex
	}
	return ErrIndexOutOfRange
}

// Shared zero-length backing arrays. A GenericObject never has nil slot
// arrays; growth always replaces these with fresh allocations.
var (
	noObjects = []any{}
	noData    = []uint64{}
)

// GenericObject is a growable dual-array record store.
//
// Each axis has a power-of-two capacity and a logical length: the high-water
// mark of written or spliced slots. Reads and random writes may address any
// slot below the capacity; splices only shift slots below the length, so an
// insert followed by a matching remove leaves the capacity unchanged.
type GenericObject struct {
	objects     []any
	objectLen   int
	objectIndex int

	data      []uint64
	dataLen   int
	dataIndex int

	props properties
}

// New creates an empty record with zero capacity on both axes.
func New() *GenericObject {
	return &GenericObject{objects: noObjects, data: noData}
}

// NewWithCapacity creates an empty record with room for at least the given
// number of object and data slots.
func NewWithCapacity(objects, data int) (*GenericObject, error) {
	g := New()
	if err := g.EnsureFreeObjectCapacity(objects); err != nil {
		return nil, err
	}
	if err := g.EnsureFreeDataCapacity(data); err != nil {
		return nil, err
	}
	return g, nil
}

// ObjectCapacity returns the number of object slots.
func (g *GenericObject) ObjectCapacity() int { return len(g.objects) }

// DataCapacity returns the number of data slots.
func (g *GenericObject) DataCapacity() int { return len(g.data) }

// ObjectLen returns the logical length of the object axis.
func (g *GenericObject) ObjectLen() int { return g.objectLen }

// DataLen returns the logical length of the data axis.
func (g *GenericObject) DataLen() int { return g.dataLen }

// ObjectIndex returns the object cursor.
func (g *GenericObject) ObjectIndex() int { return g.objectIndex }

// DataIndex returns the data cursor.
func (g *GenericObject) DataIndex() int { return g.dataIndex }

// SetObjectIndex moves the object cursor. It may point past the current
// capacity; the next safe write grows the array to reach it.
func (g *GenericObject) SetObjectIndex(i int) error {
	if i < 0 {
		return &IndexError{Axis: AxisObject, Index: i, Size: len(g.objects)}
	}
	g.objectIndex = i
	return nil
}

// SetDataIndex moves the data cursor. See SetObjectIndex.
func (g *GenericObject) SetDataIndex(i int) error {
	if i < 0 {
		return &IndexError{Axis: AxisData, Index: i, Size: len(g.data)}
	}
	g.dataIndex = i
	return nil
}

// EnsureFreeObjectCapacity guarantees room for n object writes at the cursor.
func (g *GenericObject) EnsureFreeObjectCapacity(n int) error {
	grown, err := ensureFree(g.objects, g.objectIndex, n)
	if err != nil {
		return err
	}
	g.objects = grown
	return nil
}

// EnsureFreeDataCapacity guarantees room for n data writes at the cursor.
func (g *GenericObject) EnsureFreeDataCapacity(n int) error {
	grown, err := ensureFree(g.data, g.dataIndex, n)
	if err != nil {
		return err
	}
	g.data = grown
	return nil
}

// ============================================================
// Object axis
// ============================================================

// ObjectAt returns the object in slot i without moving the cursor.
func (g *GenericObject) ObjectAt(i int) (any, error) {
	if err := checkIndex(AxisObject, i, len(g.objects)); err != nil {
		return nil, err
	}
	return g.objects[i], nil
}

// SetObjectAt stores v in slot i without moving the cursor.
func (g *GenericObject) SetObjectAt(i int, v any) error {
	if err := checkIndex(AxisObject, i, len(g.objects)); err != nil {
		return err
	}
	g.objects[i] = v
	g.objectLen = max(g.objectLen, i+1)
	return nil
}

// Object reads the object at the cursor and advances it.
func (g *GenericObject) Object() (any, error) {
	if err := checkIndex(AxisObject, g.objectIndex, len(g.objects)); err != nil {
		return nil, err
	}
	v := g.objects[g.objectIndex]
	g.objectIndex++
	return v, nil
}

// SetObjectSafe writes v at the cursor, growing if needed, and advances.
func (g *GenericObject) SetObjectSafe(v any) error {
	if err := g.EnsureFreeObjectCapacity(1); err != nil {
		return err
	}
	g.SetObject(v)
	return nil
}

// SetObject writes v at the cursor and advances. The caller must have
// reserved room with EnsureFreeObjectCapacity.
func (g *GenericObject) SetObject(v any) {
	if g.objectIndex >= len(g.objects) {
		panic(&IndexError{Axis: AxisObject, Index: g.objectIndex, Size: len(g.objects)})
	}
	g.objects[g.objectIndex] = v
	g.objectIndex++
	g.objectLen = max(g.objectLen, g.objectIndex)
}

// InsertObjectSlots opens count nil slots at index, shifting later slots up.
// The array grows only when the logical length no longer fits. A cursor at
// or after index moves with the shifted slots.
func (g *GenericObject) InsertObjectSlots(index, count int) error {
	grown, n, err := insertSlots(AxisObject, g.objects, g.objectLen, index, count)
	if err != nil {
		return err
	}
	g.objects, g.objectLen = grown, n
	g.objectIndex = cursorAfterInsert(g.objectIndex, index, count)
	return nil
}

// RemoveObjectSlots deletes count slots at index, shifting later slots down.
// A cursor inside the removed range lands on index.
func (g *GenericObject) RemoveObjectSlots(index, count int) error {
	n, err := removeSlots(AxisObject, g.objects, g.objectLen, index, count)
	if err != nil {
		return err
	}
	g.objectLen = n
	g.objectIndex = cursorAfterRemove(g.objectIndex, index, count)
	return nil
}

// ============================================================
// Data axis
// ============================================================

func (g *GenericObject) dataAt(i int) (uint64, error) {
	if err := checkIndex(AxisData, i, len(g.data)); err != nil {
		return 0, err
	}
	return g.data[i], nil
}

func (g *GenericObject) setDataAt(i int, raw uint64) error {
	if err := checkIndex(AxisData, i, len(g.data)); err != nil {
		return err
	}
	g.data[i] = raw
	g.dataLen = max(g.dataLen, i+1)
	return nil
}

func (g *GenericObject) nextData() (uint64, error) {
	raw, err := g.dataAt(g.dataIndex)
	if err != nil {
		return 0, err
	}
	g.dataIndex++
	return raw, nil
}

func (g *GenericObject) putDataSafe(raw uint64) error {
	if err := g.EnsureFreeDataCapacity(1); err != nil {
		return err
	}
	g.putData(raw)
	return nil
}

func (g *GenericObject) putData(raw uint64) {
	if g.dataIndex >= len(g.data) {
		panic(&IndexError{Axis: AxisData, Index: g.dataIndex, Size: len(g.data)})
	}
	g.data[g.dataIndex] = raw
	g.dataIndex++
	g.dataLen = max(g.dataLen, g.dataIndex)
}

// InsertDataSlots opens count zeroed slots at index, shifting later slots up.
// See InsertObjectSlots.
func (g *GenericObject) InsertDataSlots(index, count int) error {
	grown, n, err := insertSlots(AxisData, g.data, g.dataLen, index, count)
	if err != nil {
		return err
	}
	g.data, g.dataLen = grown, n
	g.dataIndex = cursorAfterInsert(g.dataIndex, index, count)
	return nil
}

// RemoveDataSlots deletes count slots at index, shifting later slots down.
// A cursor inside the removed range lands on index.
func (g *GenericObject) RemoveDataSlots(index, count int) error {
	n, err := removeSlots(AxisData, g.data, g.dataLen, index, count)
	if err != nil {
		return err
	}
	g.dataLen = n
	g.dataIndex = cursorAfterRemove(g.dataIndex, index, count)
	return nil
}

// ============================================================
// Whole-record operations
// ============================================================

// Clear zeroes both axes, rewinds both cursors and lengths and drops all
// properties. Capacity is kept.
func (g *GenericObject) Clear() {
	clear(g.objects)
	clear(g.data)
	g.objectLen, g.objectIndex = 0, 0
	g.dataLen, g.dataIndex = 0, 0
	g.props.clear()
}

// Copy returns an independent clone. Object payloads are shared.
func (g *GenericObject) Copy() *GenericObject {
	c := &GenericObject{
		objects:     noObjects,
		objectLen:   g.objectLen,
		objectIndex: g.objectIndex,
		data:        noData,
		dataLen:     g.dataLen,
		dataIndex:   g.dataIndex,
		props:       g.props.clone(),
	}
	if len(g.objects) > 0 {
		c.objects = slices.Clone(g.objects)
	}
	if len(g.data) > 0 {
		c.data = slices.Clone(g.data)
	}
	return c
}

// ============================================================
// Slot array helpers
// ============================================================

func checkIndex(axis Axis, i, size int) error {
	if i < 0 || i >= size {
		return &IndexError{Axis: axis, Index: i, Size: size}
	}
	return nil
}

func ensureFree[T any](s []T, cursor, n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeCount, n)
	}
	need, err := capacity.Add(cursor, n)
	if err != nil {
		return nil, fmt.Errorf("record: %w", err)
	}
	newCap, err := capacity.Grow(len(s), need)
	if err != nil {
		return nil, fmt.Errorf("record: %w", err)
	}
	if newCap == len(s) {
		return s, nil
	}
	grown := make([]T, newCap)
	copy(grown, s)
	return grown, nil
}

// insertSlots opens count zeroed slots at index in s, whose first length
// slots are in use. It returns the possibly regrown slice and the new length.
func insertSlots[T any](axis Axis, s []T, length, index, count int) ([]T, int, error) {
	if count < 0 {
		return nil, 0, fmt.Errorf("%w: %d", ErrNegativeCount, count)
	}
	if index < 0 || index > len(s) {
		return nil, 0, &IndexError{Axis: axis, Index: index, Size: len(s)}
	}
	used := max(length, index)
	if count == 0 {
		return s, used, nil
	}
	n, err := capacity.Add(used, count)
	if err != nil {
		return nil, 0, fmt.Errorf("record: %w", err)
	}
	if n > len(s) {
		newCap, err := capacity.NextPowerOfTwo(n)
		if err != nil {
			return nil, 0, fmt.Errorf("record: %w", err)
		}
		grown := make([]T, newCap)
		copy(grown, s[:used])
		s = grown
	}
	copy(s[index+count:n], s[index:used])
	clear(s[index : index+count])
	return s, n, nil
}

// removeSlots deletes count slots at index in s, whose first length slots
// are in use, and returns the new length. Vacated slots are zeroed.
func removeSlots[T any](axis Axis, s []T, length, index, count int) (int, error) {
	if count < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeCount, count)
	}
	if index < 0 || index > len(s)-count {
		return 0, &IndexError{Axis: axis, Index: index, Size: len(s)}
	}
	end := max(length, index+count)
	copy(s[index:], s[index+count:end])
	clear(s[end-count : end])
	return end - count, nil
}

func cursorAfterInsert(cursor, index, count int) int {
	if cursor >= index {
		return cursor + count
	}
	return cursor
}

func cursorAfterRemove(cursor, index, count int) int {
	if cursor < index {
		return cursor
	}
	return max(index, cursor-count)
}
