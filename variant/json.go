package variant

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io/fs"
	"math"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/Neumenon/variant/internal/rawbits"
)

// ============================================================
// JSON classification
// ============================================================
//
// A JSON layer decides how to render each cell from its JSONType. The rules:
//   - boolean -> boolean
//   - byte, char, short, int, float, double -> number
//   - long -> number while exactly representable as a float64, else string
//   - text (string, []byte, builders), reflect.Type, files -> string
//   - slices, arrays, channels, iterator funcs -> array
//   - enums (named integer types with a String method) -> string, unless a
//     converter is registered for the type, in which case number
//   - empty and nil -> null
//   - anything else -> object

// MaxSafeInteger is the largest integer n such that every integer in
// [-n, n] is exactly representable as a float64.
const MaxSafeInteger = 1<<53 - 1

// ConverterLookup reports whether a converter is registered for a type.
// convert.Registry implements it.
type ConverterLookup interface {
	Has(t reflect.Type) bool
}

var (
	reflectTypeType = reflect.TypeOf((*reflect.Type)(nil)).Elem()
	fileInfoType    = reflect.TypeOf((*fs.FileInfo)(nil)).Elem()
	stringerType    = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()
)

// JSONType returns the JSON category of the cell without converter lookups.
func (a Any) JSONType() JSONType {
	return a.JSONTypeWith(nil)
}

// JSONTypeWith returns the JSON category of the cell, consulting lookup for
// enum payloads. lookup may be nil.
func (a Any) JSONTypeWith(lookup ConverterLookup) JSONType {
	switch a.kind {
	case TypeLong:
		if isSafeInteger(rawbits.Long(a.raw)) {
			return JSONNumber
		}
		return JSONString
	case TypeObject:
		return ClassifyObject(a.obj, lookup)
	default:
		return a.kind.JSONType()
	}
}

func isSafeInteger(v int64) bool {
	return v >= -MaxSafeInteger && v <= MaxSafeInteger
}

// ClassifyObject returns the JSON category of an object payload.
func ClassifyObject(v any, lookup ConverterLookup) JSONType {
	switch x := v.(type) {
	case nil:
		return JSONNull
	case Any:
		return x.JSONTypeWith(lookup)
	case bool:
		return JSONBoolean
	case json.Number:
		return JSONNumber
	case string, []byte, *strings.Builder, *bytes.Buffer, *os.File:
		return JSONString
	case int64:
		return safeNumber(isSafeInteger(x))
	case uint64:
		return safeNumber(x <= MaxSafeInteger)
	case uint:
		return safeNumber(uint64(x) <= MaxSafeInteger)
	case int:
		return safeNumber(isSafeInteger(int64(x)))
	}

	t := reflect.TypeOf(v)
	if t.Implements(reflectTypeType) || t.Implements(fileInfoType) {
		return JSONString
	}
	if isEnumType(t) {
		if lookup != nil && lookup.Has(t) {
			return JSONNumber
		}
		return JSONString
	}

	switch t.Kind() {
	case reflect.Bool:
		return JSONBoolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return JSONNumber
	case reflect.String:
		return JSONString
	case reflect.Slice, reflect.Array, reflect.Chan:
		return JSONArray
	case reflect.Func:
		if isIterFunc(t) {
			return JSONArray
		}
	}
	return JSONObject
}

func safeNumber(ok bool) JSONType {
	if ok {
		return JSONNumber
	}
	return JSONString
}

// isEnumType reports whether t looks like a Go enum: a named integer type
// with a String method.
func isEnumType(t reflect.Type) bool {
	if t.Name() == "" || t.PkgPath() == "" {
		return false
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return t.Implements(stringerType)
	}
	return false
}

// isIterFunc matches the shapes of iter.Seq and iter.Seq2:
// func(yield func(...) bool).
func isIterFunc(t reflect.Type) bool {
	if t.NumIn() != 1 || t.NumOut() != 0 {
		return false
	}
	y := t.In(0)
	return y.Kind() == reflect.Func && y.NumOut() == 1 && y.Out(0).Kind() == reflect.Bool &&
		(y.NumIn() == 1 || y.NumIn() == 2)
}

// ============================================================
// JSON values
// ============================================================

// ToJSONValue converts a cell to the Go value that encoding/json renders in
// the cell's JSON category. Longs outside the safe integer range become
// decimal strings, string-like payloads become strings, and NaN or
// Infinity fail with ErrNotFinite.
func ToJSONValue(a Any, lookup ConverterLookup) (any, error) {
	switch a.kind {
	case TypeEmpty:
		return nil, nil
	case TypeLong:
		v := rawbits.Long(a.raw)
		if isSafeInteger(v) {
			return v, nil
		}
		return strconv.FormatInt(v, 10), nil
	case TypeFloat:
		f := rawbits.Float(a.raw)
		if math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) {
			return nil, fmt.Errorf("%w: %v", ErrNotFinite, f)
		}
		return f, nil
	case TypeDouble:
		f := rawbits.Double(a.raw)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("%w: %v", ErrNotFinite, f)
		}
		return f, nil
	case TypeObject:
		return objectJSONValue(a.obj, lookup)
	default:
		return a.Interface(), nil
	}
}

func objectJSONValue(v any, lookup ConverterLookup) (any, error) {
	if cell, ok := v.(Any); ok {
		return ToJSONValue(cell, lookup)
	}
	if ClassifyObject(v, lookup) != JSONString {
		return v, nil
	}
	switch x := v.(type) {
	case string:
		return x, nil
	case []byte:
		return base64.StdEncoding.EncodeToString(x), nil
	case *os.File:
		return x.Name(), nil
	case fs.FileInfo:
		return x.Name(), nil
	case fmt.Stringer:
		return x.String(), nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.String:
		return rv.String(), nil
	}
	return fmt.Sprint(v), nil
}
