// Package variant implements compact, allocation-avoiding tagged value cells.
//
// # Cells
//
// Any holds exactly one of:
//   - nothing (TypeEmpty)
//   - a primitive: boolean, byte, char, short, int, long, float, double
//   - an object payload (any Go value, including nil)
//
// Primitives live in a single raw 64-bit slot. Floats and doubles are stored
// by exact IEEE-754 bit-cast, so NaN payloads round-trip bit-for-bit.
//
// # Accessors
//
// Checked accessors return a *TypeMismatchError when the cell holds a
// different kind:
//
//	c := variant.IntOf(42)
//	n, err := c.Int()    // 42, nil
//	_, err = c.Long()    // variant: expected long, got int
//
// Unsafe accessors (IntUnsafe, DoubleUnsafe, ...) reinterpret the raw slot
// without checking the tag. They are an explicit escape hatch for callers
// that already know the kind.
//
// # Arrays
//
// AnyArray stores many cells as parallel tag, raw and payload arrays with
// power-of-two capacity growth:
//
//	a, _ := variant.NewAnyArray(3)
//	a.SetBool(0, true)
//	a.SetInt(1, 42)
//	a.SetObject(2, "x")
//	for i, cell := range a.All() {
//		fmt.Println(i, cell)
//	}
//
// Cursor is the allocation-free alternative to All: a single view object that
// is repositioned by Next rather than a fresh value per step.
//
// # JSON
//
// Every cell has a JSONType. Longs beyond ±(2^53-1) classify as strings so
// that JSON consumers using float64 numbers do not lose precision.
package variant
