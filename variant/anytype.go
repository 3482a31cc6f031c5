package variant

import (
	"fmt"
	"math/bits"
	"strings"
)

// AnyType is the discriminant of a cell: which kind of value it holds.
type AnyType uint8

const (
	TypeEmpty   AnyType = iota // no value; distinct from a stored nil object
	TypeBoolean                // bool
	TypeByte                   // byte
	TypeChar                   // rune
	TypeShort                  // int16
	TypeInt                    // int32
	TypeLong                   // int64
	TypeFloat                  // float32
	TypeDouble                 // float64
	TypeObject                 // any reference payload, including nil

	numAnyTypes
)

var anyTypeNames = [numAnyTypes]string{
	TypeEmpty:   "empty",
	TypeBoolean: "boolean",
	TypeByte:    "byte",
	TypeChar:    "char",
	TypeShort:   "short",
	TypeInt:     "int",
	TypeLong:    "long",
	TypeFloat:   "float",
	TypeDouble:  "double",
	TypeObject:  "object",
}

var anyTypeSizes = [numAnyTypes]int{
	TypeEmpty:   0,
	TypeBoolean: 1,
	TypeByte:    1,
	TypeChar:    4,
	TypeShort:   2,
	TypeInt:     4,
	TypeLong:    8,
	TypeFloat:   4,
	TypeDouble:  8,
	TypeObject:  bits.UintSize / 8,
}

// AnyTypes lists every AnyType in declaration order.
func AnyTypes() []AnyType {
	out := make([]AnyType, numAnyTypes)
	for i := range out {
		out[i] = AnyType(i)
	}
	return out
}

// String returns the type name.
func (t AnyType) String() string {
	if t < numAnyTypes {
		return anyTypeNames[t]
	}
	return fmt.Sprintf("unknown(%d)", uint8(t))
}

// Size returns the number of bytes a value of this kind occupies.
// Object reports the size of a reference.
func (t AnyType) Size() int {
	if t < numAnyTypes {
		return anyTypeSizes[t]
	}
	return 0
}

// IsReference reports whether the kind is carried in the object slot.
func (t AnyType) IsReference() bool {
	return t == TypeObject
}

// IsPrimitive reports whether the kind is carried in the raw 64-bit slot.
func (t AnyType) IsPrimitive() bool {
	return t > TypeEmpty && t < TypeObject
}

// IsNumeric reports whether the kind maps to a JSON number.
func (t AnyType) IsNumeric() bool {
	return t >= TypeByte && t <= TypeDouble
}

// JSONType returns the static JSON mapping of the kind. Long and Object
// cells can refine this based on their value; see Any.JSONType.
func (t AnyType) JSONType() JSONType {
	switch {
	case t == TypeBoolean:
		return JSONBoolean
	case t.IsNumeric():
		return JSONNumber
	case t == TypeObject:
		return JSONObject
	default:
		return JSONNull
	}
}

// ParseAnyType parses a type name. Short aliases (bool, str, i32, ...) are
// accepted for command-line use.
func ParseAnyType(s string) (AnyType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "empty", "":
		return TypeEmpty, true
	case "boolean", "bool":
		return TypeBoolean, true
	case "byte", "u8":
		return TypeByte, true
	case "char", "rune":
		return TypeChar, true
	case "short", "i16":
		return TypeShort, true
	case "int", "i32":
		return TypeInt, true
	case "long", "i64":
		return TypeLong, true
	case "float", "f32":
		return TypeFloat, true
	case "double", "f64":
		return TypeDouble, true
	case "object", "obj", "str", "string":
		return TypeObject, true
	default:
		return TypeEmpty, false
	}
}

// ============================================================
// JSONType
// ============================================================

// JSONType is the JSON category a cell serializes to.
type JSONType uint8

const (
	JSONNull JSONType = iota
	JSONBoolean
	JSONNumber
	JSONString
	JSONArray
	JSONObject
)

// String returns the JSON type name.
func (t JSONType) String() string {
	switch t {
	case JSONNull:
		return "null"
	case JSONBoolean:
		return "boolean"
	case JSONNumber:
		return "number"
	case JSONString:
		return "string"
	case JSONArray:
		return "array"
	case JSONObject:
		return "object"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(t))
	}
}

// ParseJSONType parses a JSON type name.
func ParseJSONType(s string) (JSONType, bool) {
	for t := JSONNull; t <= JSONObject; t++ {
		if t.String() == s {
			return t, true
		}
	}
	return JSONNull, false
}
