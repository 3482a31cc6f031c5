package variant

import (
	"bytes"
	"errors"
	"iter"
	"math"
	"reflect"
	"strings"
	"testing"
)

type testLevel int

func (l testLevel) String() string { return [...]string{"low", "high"}[l] }

type fakeLookup map[reflect.Type]bool

func (f fakeLookup) Has(t reflect.Type) bool { return f[t] }

func TestAny_JSONType(t *testing.T) {
	var seq iter.Seq[int] = func(yield func(int) bool) {}

	tests := []struct {
		name string
		cell Any
		want JSONType
	}{
		{"empty", Any{}, JSONNull},
		{"bool", BoolOf(false), JSONBoolean},
		{"byte", ByteOf(1), JSONNumber},
		{"char", CharOf('a'), JSONNumber},
		{"short", ShortOf(1), JSONNumber},
		{"int", IntOf(1), JSONNumber},
		{"float", FloatOf(1), JSONNumber},
		{"double", DoubleOf(1), JSONNumber},
		{"small long", LongOf(MaxSafeInteger), JSONNumber},
		{"small negative long", LongOf(-MaxSafeInteger), JSONNumber},
		{"large long", LongOf(MaxSafeInteger + 1), JSONString},
		{"large negative long", LongOf(math.MinInt64), JSONString},
		{"nil object", mustObject(t, nil), JSONNull},
		{"string", mustObject(t, "s"), JSONString},
		{"bytes", mustObject(t, []byte("s")), JSONString},
		{"builder", mustObject(t, &strings.Builder{}), JSONString},
		{"buffer", mustObject(t, &bytes.Buffer{}), JSONString},
		{"reflect.Type", mustObject(t, reflect.TypeOf(0)), JSONString},
		{"slice", mustObject(t, []int{1}), JSONArray},
		{"array", mustObject(t, [2]string{}), JSONArray},
		{"iter.Seq", mustObject(t, seq), JSONArray},
		{"enum", mustObject(t, testLevel(1)), JSONString},
		{"map", mustObject(t, map[string]int{}), JSONObject},
		{"struct", mustObject(t, struct{ A int }{1}), JSONObject},
		{"boxed int", mustObject(t, 5), JSONNumber},
		{"boxed large int64", mustObject(t, int64(1)<<60), JSONString},
		{"boxed bool", mustObject(t, true), JSONBoolean},
		{"nested cell", mustObject(t, IntOf(3)), JSONNumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cell.JSONType(); got != tt.want {
				t.Errorf("JSONType() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestClassifyObject_RegisteredEnum(t *testing.T) {
	lookup := fakeLookup{reflect.TypeOf(testLevel(0)): true}
	if got := ClassifyObject(testLevel(0), lookup); got != JSONNumber {
		t.Errorf("registered enum = %s, want number", got)
	}
	if got := ClassifyObject(testLevel(0), fakeLookup{}); got != JSONString {
		t.Errorf("unregistered enum = %s, want string", got)
	}
}

func TestToJSONValue(t *testing.T) {
	tests := []struct {
		name string
		cell Any
		want any
	}{
		{"empty", Any{}, nil},
		{"int", IntOf(4), int32(4)},
		{"safe long", LongOf(12), int64(12)},
		{"large long", LongOf(1 << 60), "1152921504606846976"},
		{"enum", mustObject(t, testLevel(1)), "high"},
		{"bytes", mustObject(t, []byte("hi")), "aGk="},
		{"non-utf8 bytes", mustObject(t, []byte{0xff, 0x00, 0xfe}), "/wD+"},
		{"type", mustObject(t, reflect.TypeOf("")), "string"},
		{"slice passthrough", mustObject(t, []int{1}), []int{1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToJSONValue(tt.cell, nil)
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ToJSONValue() = %#v, want %#v", got, tt.want)
			}
		})
	}

	if _, err := ToJSONValue(DoubleOf(math.NaN()), nil); !errors.Is(err, ErrNotFinite) {
		t.Errorf("NaN: err = %v, want ErrNotFinite", err)
	}
	if _, err := ToJSONValue(FloatOf(float32(math.Inf(1))), nil); !errors.Is(err, ErrNotFinite) {
		t.Errorf("Inf: err = %v, want ErrNotFinite", err)
	}
}

func TestJSONType_Parse(t *testing.T) {
	for jt := JSONNull; jt <= JSONObject; jt++ {
		got, ok := ParseJSONType(jt.String())
		if !ok || got != jt {
			t.Errorf("ParseJSONType(%q) = %s, %v", jt.String(), got, ok)
		}
	}
	if _, ok := ParseJSONType("tuple"); ok {
		t.Error("ParseJSONType should reject unknown names")
	}
}
