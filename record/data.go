package record

import "github.com/Neumenon/variant/internal/rawbits"

// Typed access to the data axis. Every kind occupies one 64-bit slot.

// BoolAt returns the boolean in data slot i without moving the cursor.
func (g *GenericObject) BoolAt(i int) (bool, error) {
	raw, err := g.dataAt(i)
	return rawbits.Bool(raw), err
}

// SetBoolAt stores a boolean in data slot i without moving the cursor.
func (g *GenericObject) SetBoolAt(i int, v bool) error {
	return g.setDataAt(i, rawbits.FromBool(v))
}

// Bool reads a boolean at the data cursor and advances it.
func (g *GenericObject) Bool() (bool, error) {
	raw, err := g.nextData()
	return rawbits.Bool(raw), err
}

// SetBoolSafe writes a boolean at the data cursor, growing if needed, and advances.
func (g *GenericObject) SetBoolSafe(v bool) error {
	return g.putDataSafe(rawbits.FromBool(v))
}

// SetBool writes a boolean at the data cursor and advances. The caller must
// have reserved room with EnsureFreeDataCapacity.
func (g *GenericObject) SetBool(v bool) {
	g.putData(rawbits.FromBool(v))
}

// ByteAt returns the byte in data slot i without moving the cursor.
func (g *GenericObject) ByteAt(i int) (byte, error) {
	raw, err := g.dataAt(i)
	return rawbits.Byte(raw), err
}

// SetByteAt stores a byte in data slot i without moving the cursor.
func (g *GenericObject) SetByteAt(i int, v byte) error {
	return g.setDataAt(i, rawbits.FromByte(v))
}

// Byte reads a byte at the data cursor and advances it.
func (g *GenericObject) Byte() (byte, error) {
	raw, err := g.nextData()
	return rawbits.Byte(raw), err
}

// SetByteSafe writes a byte at the data cursor, growing if needed, and advances.
func (g *GenericObject) SetByteSafe(v byte) error {
	return g.putDataSafe(rawbits.FromByte(v))
}

// SetByte writes a byte at the data cursor and advances. The caller must
// have reserved room with EnsureFreeDataCapacity.
func (g *GenericObject) SetByte(v byte) {
	g.putData(rawbits.FromByte(v))
}

// CharAt returns the char in data slot i without moving the cursor.
func (g *GenericObject) CharAt(i int) (rune, error) {
	raw, err := g.dataAt(i)
	return rawbits.Char(raw), err
}

// SetCharAt stores a char in data slot i without moving the cursor.
func (g *GenericObject) SetCharAt(i int, v rune) error {
	return g.setDataAt(i, rawbits.FromChar(v))
}

// Char reads a char at the data cursor and advances it.
func (g *GenericObject) Char() (rune, error) {
	raw, err := g.nextData()
	return rawbits.Char(raw), err
}

// SetCharSafe writes a char at the data cursor, growing if needed, and advances.
func (g *GenericObject) SetCharSafe(v rune) error {
	return g.putDataSafe(rawbits.FromChar(v))
}

// SetChar writes a char at the data cursor and advances. The caller must
// have reserved room with EnsureFreeDataCapacity.
func (g *GenericObject) SetChar(v rune) {
	g.putData(rawbits.FromChar(v))
}

// ShortAt returns the short in data slot i without moving the cursor.
func (g *GenericObject) ShortAt(i int) (int16, error) {
	raw, err := g.dataAt(i)
	return rawbits.Short(raw), err
}

// SetShortAt stores a short in data slot i without moving the cursor.
func (g *GenericObject) SetShortAt(i int, v int16) error {
	return g.setDataAt(i, rawbits.FromShort(v))
}

// Short reads a short at the data cursor and advances it.
func (g *GenericObject) Short() (int16, error) {
	raw, err := g.nextData()
	return rawbits.Short(raw), err
}

// SetShortSafe writes a short at the data cursor, growing if needed, and advances.
func (g *GenericObject) SetShortSafe(v int16) error {
	return g.putDataSafe(rawbits.FromShort(v))
}

// SetShort writes a short at the data cursor and advances. The caller must
// have reserved room with EnsureFreeDataCapacity.
func (g *GenericObject) SetShort(v int16) {
	g.putData(rawbits.FromShort(v))
}

// IntAt returns the int in data slot i without moving the cursor.
func (g *GenericObject) IntAt(i int) (int32, error) {
	raw, err := g.dataAt(i)
	return rawbits.Int(raw), err
}

// SetIntAt stores an int in data slot i without moving the cursor.
func (g *GenericObject) SetIntAt(i int, v int32) error {
	return g.setDataAt(i, rawbits.FromInt(v))
}

// Int reads an int at the data cursor and advances it.
func (g *GenericObject) Int() (int32, error) {
	raw, err := g.nextData()
	return rawbits.Int(raw), err
}

// SetIntSafe writes an int at the data cursor, growing if needed, and advances.
func (g *GenericObject) SetIntSafe(v int32) error {
	return g.putDataSafe(rawbits.FromInt(v))
}

// SetInt writes an int at the data cursor and advances. The caller must
// have reserved room with EnsureFreeDataCapacity.
func (g *GenericObject) SetInt(v int32) {
	g.putData(rawbits.FromInt(v))
}

// LongAt returns the long in data slot i without moving the cursor.
func (g *GenericObject) LongAt(i int) (int64, error) {
	raw, err := g.dataAt(i)
	return rawbits.Long(raw), err
}

// SetLongAt stores a long in data slot i without moving the cursor.
func (g *GenericObject) SetLongAt(i int, v int64) error {
	return g.setDataAt(i, rawbits.FromLong(v))
}

// Long reads a long at the data cursor and advances it.
func (g *GenericObject) Long() (int64, error) {
	raw, err := g.nextData()
	return rawbits.Long(raw), err
}

// SetLongSafe writes a long at the data cursor, growing if needed, and advances.
func (g *GenericObject) SetLongSafe(v int64) error {
	return g.putDataSafe(rawbits.FromLong(v))
}

// SetLong writes a long at the data cursor and advances. The caller must
// have reserved room with EnsureFreeDataCapacity.
func (g *GenericObject) SetLong(v int64) {
	g.putData(rawbits.FromLong(v))
}

// FloatAt returns the float in data slot i without moving the cursor.
func (g *GenericObject) FloatAt(i int) (float32, error) {
	raw, err := g.dataAt(i)
	return rawbits.Float(raw), err
}

// SetFloatAt stores a float in data slot i without moving the cursor.
func (g *GenericObject) SetFloatAt(i int, v float32) error {
	return g.setDataAt(i, rawbits.FromFloat(v))
}

// Float reads a float at the data cursor and advances it.
func (g *GenericObject) Float() (float32, error) {
	raw, err := g.nextData()
	return rawbits.Float(raw), err
}

// SetFloatSafe writes a float at the data cursor, growing if needed, and advances.
func (g *GenericObject) SetFloatSafe(v float32) error {
	return g.putDataSafe(rawbits.FromFloat(v))
}

// SetFloat writes a float at the data cursor and advances. The caller must
// have reserved room with EnsureFreeDataCapacity.
func (g *GenericObject) SetFloat(v float32) {
	g.putData(rawbits.FromFloat(v))
}

// DoubleAt returns the double in data slot i without moving the cursor.
func (g *GenericObject) DoubleAt(i int) (float64, error) {
	raw, err := g.dataAt(i)
	return rawbits.Double(raw), err
}

// SetDoubleAt stores a double in data slot i without moving the cursor.
func (g *GenericObject) SetDoubleAt(i int, v float64) error {
	return g.setDataAt(i, rawbits.FromDouble(v))
}

// Double reads a double at the data cursor and advances it.
func (g *GenericObject) Double() (float64, error) {
	raw, err := g.nextData()
	return rawbits.Double(raw), err
}

// SetDoubleSafe writes a double at the data cursor, growing if needed, and advances.
func (g *GenericObject) SetDoubleSafe(v float64) error {
	return g.putDataSafe(rawbits.FromDouble(v))
}

// SetDouble writes a double at the data cursor and advances. The caller must
// have reserved room with EnsureFreeDataCapacity.
func (g *GenericObject) SetDouble(v float64) {
	g.putData(rawbits.FromDouble(v))
}
