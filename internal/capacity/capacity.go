// Package capacity implements the power-of-two growth policy shared by the
// cell arrays and record stores.
package capacity

import (
	"errors"
	"fmt"
	"math/bits"
)

// Max is the largest capacity the growth policy will hand out. It is the
// highest power of two that still leaves headroom in an int for index
// arithmetic (i + count) without wrapping.
const Max = 1 << (bits.UintSize - 2)

// ErrOverflow is returned when a requested capacity exceeds Max.
var ErrOverflow = errors.New("capacity: requested capacity overflows")

// NextPowerOfTwo returns the smallest power of two >= n.
// n <= 0 yields 0; n > Max yields ErrOverflow.
func NextPowerOfTwo(n int) (int, error) {
	if n <= 0 {
		return 0, nil
	}
	if n > Max {
		return 0, fmt.Errorf("%w: %d > %d", ErrOverflow, n, Max)
	}
	if n&(n-1) == 0 {
		return n, nil
	}
	// n-1 has its top bit strictly below Max's bit, so the shift cannot wrap.
	return 1 << bits.Len(uint(n-1)), nil
}

// Grow returns the capacity a buffer of capacity cur must grow to in order to
// hold at least min elements. If cur already suffices, cur is returned.
func Grow(cur, min int) (int, error) {
	if min <= cur {
		return cur, nil
	}
	return NextPowerOfTwo(min)
}

// Add returns a+b, or ErrOverflow if the sum would exceed Max or either
// operand is negative.
func Add(a, b int) (int, error) {
	if a < 0 || b < 0 || a > Max-b {
		return 0, fmt.Errorf("%w: %d + %d", ErrOverflow, a, b)
	}
	return a + b, nil
}
