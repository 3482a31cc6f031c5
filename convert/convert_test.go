package convert

import (
	"errors"
	"reflect"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/sync/errgroup"

	"github.com/Neumenon/variant/domain"
	"github.com/Neumenon/variant/variant"
)

type celsius float64

type flag struct{ on bool }

func TestFunc_Kinds(t *testing.T) {
	tests := []struct {
		name string
		c    Converter
		in   any
		kind variant.AnyType
	}{
		{"bool", Bool(func(f flag) bool { return f.on }, func(b bool) flag { return flag{b} }), flag{true}, variant.TypeBoolean},
		{"int", Int(func(m time.Month) int32 { return int32(m) }, func(n int32) time.Month { return time.Month(n) }), time.March, variant.TypeInt},
		{"long", Long(func(d time.Duration) int64 { return int64(d) }, func(n int64) time.Duration { return time.Duration(n) }), 3 * time.Second, variant.TypeLong},
		{"double", Double(func(c celsius) float64 { return float64(c) }, func(f float64) celsius { return celsius(f) }), celsius(21.5), variant.TypeDouble},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.c.Kind())
			assert.Equal(t, reflect.TypeOf(tt.in), tt.c.Type())

			var cell variant.Any
			require.NoError(t, tt.c.ToAny(tt.in, &cell))
			assert.Equal(t, tt.kind, cell.Type())

			back, err := tt.c.FromAny(cell)
			require.NoError(t, err)
			assert.Equal(t, tt.in, back)
		})
	}
}

func TestFunc_Errors(t *testing.T) {
	c := New(
		func(s string) (int64, error) { return strconv.ParseInt(s, 10, 64) },
		func(n int64) (string, error) { return strconv.FormatInt(n, 10), nil },
	)

	var cell variant.Any
	err := c.ToAny(42, &cell)
	assert.ErrorIs(t, err, ErrWrongType)
	assert.True(t, cell.IsEmpty(), "failed conversion leaves dst alone")

	err = c.ToAny("nope", &cell)
	var numErr *strconv.NumError
	assert.True(t, errors.As(err, &numErr))

	_, err = c.FromAny(variant.IntOf(1))
	assert.ErrorIs(t, err, variant.ErrTypeMismatch)

	n, err := c.Convert("12")
	require.NoError(t, err)
	assert.Equal(t, int64(12), n)
	s, err := c.Revert(7)
	require.NoError(t, err)
	assert.Equal(t, "7", s)
}

func TestFromDomain(t *testing.T) {
	e, err := domain.NewEnum("size", "S", "M", "L")
	require.NoError(t, err)
	c := FromDomain[string](e)
	assert.Equal(t, variant.TypeInt, c.Kind())

	var cell variant.Any
	require.NoError(t, c.ToAny("L", &cell))
	assert.Equal(t, int32(2), cell.IntUnsafe())

	back, err := c.FromAny(cell)
	require.NoError(t, err)
	assert.Equal(t, "L", back)

	assert.ErrorIs(t, c.ToAny("XL", &cell), domain.ErrOutOfDomain)
	_, err = c.FromAny(variant.IntOf(9))
	assert.ErrorIs(t, err, domain.ErrUnknownID)
}

func TestRegistry_ChildShadowsParent(t *testing.T) {
	parent := NewRegistry(nil)
	child := NewRegistry(parent)
	durType := reflect.TypeFor[time.Duration]()

	nanos := Long(func(d time.Duration) int64 { return int64(d) }, func(n int64) time.Duration { return time.Duration(n) })
	millis := Long(func(d time.Duration) int64 { return d.Milliseconds() }, func(n int64) time.Duration { return time.Duration(n) * time.Millisecond })

	parent.Register(durType, nanos)
	c, ok := child.Find(durType)
	require.True(t, ok, "child falls back to parent")
	assert.Same(t, nanos, c)

	child.Register(durType, millis)
	c, ok = child.Find(durType)
	require.True(t, ok)
	assert.Same(t, millis, c)

	c, ok = parent.Find(durType)
	require.True(t, ok)
	assert.Same(t, nanos, c, "parent is unaffected by the child")

	assert.Same(t, parent, child.Parent())
	assert.Nil(t, parent.Parent())
}

func TestRegistry_RegisterRestore(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	parent := NewRegistry(nil)
	r := NewRegistry(parent, WithLogger(zap.New(core)))
	typ := reflect.TypeFor[celsius]()

	first := Double(func(c celsius) float64 { return float64(c) }, func(f float64) celsius { return celsius(f) })
	second := Double(func(c celsius) float64 { return float64(c) * 2 }, func(f float64) celsius { return celsius(f / 2) })

	prev := r.Register(typ, first)
	assert.Nil(t, prev)
	prev = r.Register(typ, second)
	assert.Same(t, first, prev)

	r.Restore(typ, prev)
	c, _ := r.Find(typ)
	assert.Same(t, first, c)

	r.Restore(typ, nil)
	assert.False(t, r.Has(typ))
	assert.Empty(t, r.Types())

	parent.Register(typ, first)
	r.Register(typ, second)

	assert.Equal(t, 1, logs.FilterMessage("converter registered").Len())
	assert.Equal(t, 1, logs.FilterMessage("converter replaced").Len())
	assert.Equal(t, 1, logs.FilterMessage("converter shadows parent").Len())
	assert.Equal(t, 2, logs.FilterMessage("converter restored").Len())
}

func TestRegistry_RegisterNilRemoves(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	r := NewRegistry(nil, WithLogger(zap.New(core)))
	typ := reflect.TypeFor[celsius]()

	assert.NotPanics(t, func() {
		assert.Nil(t, r.Register(typ, nil))
	})
	assert.False(t, r.Has(typ))

	c := Double(func(c celsius) float64 { return float64(c) }, func(f float64) celsius { return celsius(f) })
	r.Register(typ, c)
	assert.Same(t, c, r.Register(typ, nil))
	assert.False(t, r.Has(typ))
	assert.Empty(t, r.Types())
	assert.Equal(t, 2, logs.FilterMessage("converter removed").Len())
}

func TestRegistry_GenericHelpers(t *testing.T) {
	r := NewRegistry(nil, WithLogger(zaptest.NewLogger(t)))
	c := Double(func(c celsius) float64 { return float64(c) }, func(f float64) celsius { return celsius(f) })
	assert.Nil(t, RegisterFor[celsius](r, c))

	got, ok := FindFor[celsius](r)
	require.True(t, ok)
	assert.Same(t, c, got)
	assert.Equal(t, []reflect.Type{reflect.TypeFor[celsius]()}, r.Types())

	_, ok = FindFor[float64](r)
	assert.False(t, ok, "lookup is by exact type")
}

func TestRegistry_ConcurrentFindAndRegister(t *testing.T) {
	root := NewRegistry(nil)
	child := NewRegistry(root)
	typ := reflect.TypeFor[celsius]()
	c := Double(func(c celsius) float64 { return float64(c) }, func(f float64) celsius { return celsius(f) })
	root.Register(typ, c)

	var g errgroup.Group
	for w := range 8 {
		g.Go(func() error {
			for i := range 500 {
				if w%2 == 0 && i%50 == 0 {
					prev := child.Register(typ, c)
					child.Restore(typ, prev)
				}
				if _, ok := child.Find(typ); !ok {
					return errors.New("lost converter during concurrent registration")
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

func TestDefault(t *testing.T) {
	r := Default()
	assert.Same(t, r, Default())
	for _, typ := range []reflect.Type{
		reflect.TypeFor[time.Duration](),
		reflect.TypeFor[time.Month](),
		reflect.TypeFor[time.Weekday](),
	} {
		assert.True(t, r.Has(typ), typ.String())
	}

	// Registered enums classify as JSON numbers.
	month, err := variant.ObjectOf(time.May)
	require.NoError(t, err)
	assert.Equal(t, variant.JSONString, month.JSONType())
	assert.Equal(t, variant.JSONNumber, month.JSONTypeWith(r))
}

func TestStoreLoad(t *testing.T) {
	reg := NewRegistry(Default())
	arr, err := variant.NewAnyArray(4)
	require.NoError(t, err)

	require.NoError(t, Store(reg, arr, 0, 90*time.Second))
	require.NoError(t, Store(reg, arr, 1, time.Saturday))
	require.NoError(t, Store(reg, arr, 2, "plain"))
	require.NoError(t, Store(reg, arr, 3, nil))

	typ, _ := arr.Type(0)
	assert.Equal(t, variant.TypeLong, typ)
	assert.Equal(t, int64(90*time.Second), arr.LongUnsafe(0))
	typ, _ = arr.Type(1)
	assert.Equal(t, variant.TypeInt, typ)
	typ, _ = arr.Type(2)
	assert.Equal(t, variant.TypeObject, typ)
	typ, _ = arr.Type(3)
	assert.Equal(t, variant.TypeObject, typ)

	d, err := LoadFor[time.Duration](reg, arr, 0)
	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, d)

	wd, err := LoadFor[time.Weekday](reg, arr, 1)
	require.NoError(t, err)
	assert.Equal(t, time.Saturday, wd)

	s, err := LoadFor[string](reg, arr, 2)
	require.NoError(t, err)
	assert.Equal(t, "plain", s)

	v, err := Load(reg, arr, 3, reflect.TypeFor[string]())
	require.NoError(t, err)
	assert.Nil(t, v)

	// Without a matching converter the raw primitive comes back.
	v, err = Load(reg, arr, 0, reflect.TypeFor[int64]())
	require.NoError(t, err)
	assert.Equal(t, int64(90*time.Second), v)

	_, err = LoadFor[time.Month](reg, arr, 0)
	assert.ErrorIs(t, err, ErrWrongType)

	_, err = Load(reg, arr, 4, reflect.TypeFor[string]())
	assert.ErrorIs(t, err, variant.ErrIndexOutOfRange)
	assert.ErrorIs(t, Store(reg, arr, -1, 1), variant.ErrNegativeIndex)
}
