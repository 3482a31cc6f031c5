package variant

import (
	"errors"
	"math"
	"testing"
)

func TestAny_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		set  func(*Any)
		kind AnyType
		get  func(Any) (any, error)
		want any
	}{
		{"bool", func(a *Any) { a.SetBool(true) }, TypeBoolean, func(a Any) (any, error) { return a.Bool() }, true},
		{"byte", func(a *Any) { a.SetByte(0xFE) }, TypeByte, func(a Any) (any, error) { return a.Byte() }, byte(0xFE)},
		{"char", func(a *Any) { a.SetChar('λ') }, TypeChar, func(a Any) (any, error) { return a.Char() }, 'λ'},
		{"short", func(a *Any) { a.SetShort(-1234) }, TypeShort, func(a Any) (any, error) { return a.Short() }, int16(-1234)},
		{"int", func(a *Any) { a.SetInt(math.MinInt32) }, TypeInt, func(a Any) (any, error) { return a.Int() }, int32(math.MinInt32)},
		{"long", func(a *Any) { a.SetLong(math.MaxInt64) }, TypeLong, func(a Any) (any, error) { return a.Long() }, int64(math.MaxInt64)},
		{"float", func(a *Any) { a.SetFloat(-1.5) }, TypeFloat, func(a Any) (any, error) { return a.Float() }, float32(-1.5)},
		{"double", func(a *Any) { a.SetDouble(math.Pi) }, TypeDouble, func(a Any) (any, error) { return a.Double() }, math.Pi},
		{"object", func(a *Any) { _ = a.SetObject("hello") }, TypeObject, func(a Any) (any, error) { return a.Object() }, "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a Any
			tt.set(&a)
			if a.Type() != tt.kind {
				t.Fatalf("Type() = %s, want %s", a.Type(), tt.kind)
			}
			got, err := tt.get(a)
			if err != nil {
				t.Fatalf("get: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v (%T), want %v (%T)", got, got, tt.want, tt.want)
			}
			if a.Interface() != tt.want {
				t.Errorf("Interface() = %v, want %v", a.Interface(), tt.want)
			}
		})
	}
}

func TestAny_Mismatch(t *testing.T) {
	a := IntOf(42)

	_, err := a.Long()
	if !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("Long() on int cell: err = %v, want ErrTypeMismatch", err)
	}
	var tm *TypeMismatchError
	if !errors.As(err, &tm) {
		t.Fatalf("expected *TypeMismatchError, got %T", err)
	}
	if tm.Expected != TypeLong || tm.Actual != TypeInt {
		t.Errorf("mismatch = %s/%s, want long/int", tm.Expected, tm.Actual)
	}
	if err.Error() != "variant: expected long, got int" {
		t.Errorf("Error() = %q", err.Error())
	}

	checks := []func() error{
		func() error { _, err := a.Bool(); return err },
		func() error { _, err := a.Byte(); return err },
		func() error { _, err := a.Char(); return err },
		func() error { _, err := a.Short(); return err },
		func() error { _, err := a.Float(); return err },
		func() error { _, err := a.Double(); return err },
		func() error { _, err := a.Object(); return err },
	}
	for i, check := range checks {
		if err := check(); !errors.Is(err, ErrTypeMismatch) {
			t.Errorf("check %d: err = %v, want ErrTypeMismatch", i, err)
		}
	}

	// The failed reads must not have changed the cell.
	if n, err := a.Int(); err != nil || n != 42 {
		t.Errorf("Int() after mismatches = %d, %v", n, err)
	}

	// Unsafe accessors never fail.
	if a.IntUnsafe() != 42 || a.LongUnsafe() != 42 || a.ShortUnsafe() != 42 {
		t.Errorf("unsafe reinterpretation of 42 failed")
	}
	if !a.BoolUnsafe() {
		t.Errorf("BoolUnsafe() of non-zero raw slot should be true")
	}
}

func TestAny_UnsafeNarrowing(t *testing.T) {
	a := LongOf(-1)
	if a.IntUnsafe() != -1 {
		t.Errorf("IntUnsafe() = %d, want -1", a.IntUnsafe())
	}
	if a.ByteUnsafe() != 0xFF {
		t.Errorf("ByteUnsafe() = %#x, want 0xff", a.ByteUnsafe())
	}

	d := DoubleOf(1.0)
	if d.LongUnsafe() != int64(math.Float64bits(1.0)) {
		t.Errorf("LongUnsafe() of 1.0 = %#x", d.LongUnsafe())
	}
}

func TestAny_ClearAndEmpty(t *testing.T) {
	var zero Any
	if !zero.IsEmpty() || zero.Type() != TypeEmpty {
		t.Fatal("zero value should be empty")
	}

	a := DoubleOf(2.5)
	a.Clear()
	if !a.IsEmpty() || a.Type() != TypeEmpty {
		t.Errorf("after Clear: Type() = %s", a.Type())
	}
	if a.Raw() != 0 {
		t.Errorf("after Clear: Raw() = %d", a.Raw())
	}

	// A nil object is a value, not emptiness.
	var n Any
	if err := n.SetObject(nil); err != nil {
		t.Fatal(err)
	}
	if n.IsEmpty() || n.Type() != TypeObject {
		t.Errorf("nil object: Type() = %s, want object", n.Type())
	}
	if n.Equal(Any{}) {
		t.Error("nil object cell should not equal an empty cell")
	}
}

func TestAny_SentinelPayloadRejected(t *testing.T) {
	a := IntOf(7)
	if err := a.SetObject(TypeInt); !errors.Is(err, ErrSentinelPayload) {
		t.Fatalf("SetObject(TypeInt) err = %v, want ErrSentinelPayload", err)
	}
	kind := TypeLong
	if err := a.SetObject(&kind); !errors.Is(err, ErrSentinelPayload) {
		t.Fatalf("SetObject(&TypeLong) err = %v, want ErrSentinelPayload", err)
	}
	if v, err := a.Int(); err != nil || v != 7 {
		t.Errorf("cell changed after rejected SetObject: %v, %v", v, err)
	}
	if _, err := ObjectOf(TypeEmpty); !errors.Is(err, ErrSentinelPayload) {
		t.Errorf("ObjectOf(TypeEmpty) err = %v", err)
	}
}

func TestAny_ObjectClearsRaw(t *testing.T) {
	a := LongOf(123456)
	if err := a.SetObject("x"); err != nil {
		t.Fatal(err)
	}
	if a.Raw() != 0 {
		t.Errorf("Raw() = %d after SetObject, want 0", a.Raw())
	}
	a.SetInt(1)
	if a.ObjectUnsafe() != nil {
		t.Errorf("ObjectUnsafe() = %v after SetInt, want nil", a.ObjectUnsafe())
	}
}

func TestAny_FloatBitExact(t *testing.T) {
	// Quiet NaN with a non-canonical payload.
	nan64 := math.Float64frombits(0x7FF8_0000_DEAD_BEEF)
	d := DoubleOf(nan64)
	got, err := d.Double()
	if err != nil {
		t.Fatal(err)
	}
	if math.Float64bits(got) != 0x7FF8_0000_DEAD_BEEF {
		t.Errorf("double NaN payload = %#x", math.Float64bits(got))
	}

	nan32 := math.Float32frombits(0x7FC0_1234)
	f := FloatOf(nan32)
	gotF, _ := f.Float()
	if math.Float32bits(gotF) != 0x7FC0_1234 {
		t.Errorf("float NaN payload = %#x", math.Float32bits(gotF))
	}

	negZero := DoubleOf(math.Copysign(0, -1))
	if negZero.Equal(DoubleOf(0)) {
		t.Error("-0.0 and 0.0 must differ bit-wise")
	}
	if !d.Equal(DoubleOf(nan64)) {
		t.Error("identical NaN bit patterns must be equal")
	}
}

func TestAny_EqualAndHash(t *testing.T) {
	tests := []struct {
		name  string
		a, b  Any
		equal bool
	}{
		{"same int", IntOf(1), IntOf(1), true},
		{"different int", IntOf(1), IntOf(2), false},
		{"int vs long", IntOf(1), LongOf(1), false},
		{"empty", Any{}, Any{}, true},
		{"strings by value", mustObject(t, "abc"), mustObject(t, "ab"+"c"), true},
		{"slices by value", mustObject(t, []int{1, 2}), mustObject(t, []int{1, 2}), true},
		{"slices differ", mustObject(t, []int{1, 2}), mustObject(t, []int{2, 1}), false},
		{"different payload types", mustObject(t, int32(1)), mustObject(t, int64(1)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.equal {
				t.Errorf("Equal() = %v, want %v", got, tt.equal)
			}
			if tt.equal && tt.a.Hash() != tt.b.Hash() {
				t.Errorf("equal cells hash differently: %x vs %x", tt.a.Hash(), tt.b.Hash())
			}
		})
	}
}

func TestAny_String(t *testing.T) {
	tests := []struct {
		cell Any
		want string
	}{
		{Any{}, "empty"},
		{IntOf(42), "int(42)"},
		{BoolOf(true), "boolean(true)"},
		{CharOf('a'), "char('a')"},
		{mustObject(t, "x"), `object("x")`},
	}
	for _, tt := range tests {
		if got := tt.cell.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestAnyType_Metadata(t *testing.T) {
	if TypeObject.Size() == 0 || !TypeObject.IsReference() {
		t.Error("object should be a sized reference kind")
	}
	if TypeLong.Size() != 8 || TypeShort.Size() != 2 || TypeEmpty.Size() != 0 {
		t.Error("unexpected primitive sizes")
	}
	for _, k := range AnyTypes() {
		if k != TypeObject && k.IsReference() {
			t.Errorf("%s should not be a reference kind", k)
		}
		parsed, ok := ParseAnyType(k.String())
		if !ok || parsed != k {
			t.Errorf("ParseAnyType(%q) = %s, %v", k.String(), parsed, ok)
		}
	}
	if _, ok := ParseAnyType("complex"); ok {
		t.Error("ParseAnyType should reject unknown names")
	}
	if AnyType(200).String() != "unknown(200)" {
		t.Errorf("unknown String() = %q", AnyType(200).String())
	}
}

func mustObject(t *testing.T, v any) Any {
	t.Helper()
	a, err := ObjectOf(v)
	if err != nil {
		t.Fatalf("ObjectOf(%v): %v", v, err)
	}
	return a
}
