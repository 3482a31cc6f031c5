// Package rawbits encodes primitive values into a single 64-bit slot.
//
// Signed kinds are sign-extended so that reading a narrower kind out of a
// wider slot truncates the same way a Go conversion would. Floats are
// bit-cast, never converted, so NaN payloads survive unchanged.
package rawbits

import "math"

func FromBool(v bool) uint64 {
	if v {
		return 1
	}
	return 0
}

func FromByte(v byte) uint64 { return uint64(v) }
func FromChar(v rune) uint64 { return uint64(int64(v)) }
func FromShort(v int16) uint64 { return uint64(int64(v)) }
func FromInt(v int32) uint64 { return uint64(int64(v)) }
func FromLong(v int64) uint64 { return uint64(v) }
func FromFloat(v float32) uint64 { return uint64(math.Float32bits(v)) }
func FromDouble(v float64) uint64 { return math.Float64bits(v) }

func Bool(raw uint64) bool { return raw != 0 }
func Byte(raw uint64) byte { return byte(raw) }
func Char(raw uint64) rune { return rune(int32(raw)) }
func Short(raw uint64) int16 { return int16(raw) }
func Int(raw uint64) int32 { return int32(raw) }
func Long(raw uint64) int64 { return int64(raw) }
func Float(raw uint64) float32 { return math.Float32frombits(uint32(raw)) }
func Double(raw uint64) float64 { return math.Float64frombits(raw) }
