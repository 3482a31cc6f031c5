package variant

// Cursor is a view over one AnyArray slot at a time. It does not copy the
// slot: reading through a Cursor after Next has advanced it observes the new
// slot, and mutations of the array are visible immediately. Use All when an
// independent cell value per step is needed.
//
// A Cursor is single-pass: once Next returns false it stays exhausted.
// Call AnyArray.Cursor again to restart from index 0.
type Cursor struct {
	arr *AnyArray
	pos int
}

// Next advances to the next slot and reports whether one exists.
func (c *Cursor) Next() bool {
	if c.pos+1 >= c.arr.size {
		c.pos = c.arr.size
		return false
	}
	c.pos++
	return true
}

// Index returns the current slot index: -1 before the first Next, Len
// after exhaustion.
func (c *Cursor) Index() int { return c.pos }

// Type returns the kind of the current slot, or TypeEmpty when the cursor
// is not on a slot.
func (c *Cursor) Type() AnyType {
	t, _ := c.arr.Type(c.pos)
	return t
}

// IsEmpty reports whether the current slot is empty.
func (c *Cursor) IsEmpty() bool { return c.arr.IsEmpty(c.pos) }

// Cell copies the current slot into a standalone cell.
func (c *Cursor) Cell() (Any, error) { return c.arr.At(c.pos) }

// Interface returns the current slot's value boxed as its Go type.
func (c *Cursor) Interface() any {
	cell, err := c.arr.At(c.pos)
	if err != nil {
		return nil
	}
	return cell.Interface()
}

func (c *Cursor) Bool() (bool, error) { return c.arr.Bool(c.pos) }
func (c *Cursor) Byte() (byte, error) { return c.arr.Byte(c.pos) }
func (c *Cursor) Char() (rune, error) { return c.arr.Char(c.pos) }
func (c *Cursor) Short() (int16, error) { return c.arr.Short(c.pos) }
func (c *Cursor) Int() (int32, error) { return c.arr.Int(c.pos) }
func (c *Cursor) Long() (int64, error) { return c.arr.Long(c.pos) }
func (c *Cursor) Float() (float32, error) { return c.arr.Float(c.pos) }
func (c *Cursor) Double() (float64, error) { return c.arr.Double(c.pos) }
func (c *Cursor) Object() (any, error) { return c.arr.Object(c.pos) }

func (c *Cursor) BoolUnsafe() bool { return c.arr.BoolUnsafe(c.pos) }
func (c *Cursor) ByteUnsafe() byte { return c.arr.ByteUnsafe(c.pos) }
func (c *Cursor) CharUnsafe() rune { return c.arr.CharUnsafe(c.pos) }
func (c *Cursor) ShortUnsafe() int16 { return c.arr.ShortUnsafe(c.pos) }
func (c *Cursor) IntUnsafe() int32 { return c.arr.IntUnsafe(c.pos) }
func (c *Cursor) LongUnsafe() int64 { return c.arr.LongUnsafe(c.pos) }
func (c *Cursor) FloatUnsafe() float32 { return c.arr.FloatUnsafe(c.pos) }
func (c *Cursor) DoubleUnsafe() float64 { return c.arr.DoubleUnsafe(c.pos) }
func (c *Cursor) ObjectUnsafe() any { return c.arr.ObjectUnsafe(c.pos) }
