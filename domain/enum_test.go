package domain

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/sync/errgroup"
)

type color string

func TestEnum(t *testing.T) {
	e, err := NewEnum("color", color("red"), color("green"), color("blue"))
	require.NoError(t, err)
	assert.True(t, e.ExactType())
	assert.Equal(t, int64(3), e.Len())

	id, err := e.ID("green")
	require.NoError(t, err)
	assert.Equal(t, 1, id)

	nullID, ok := e.NullID()
	require.True(t, ok)
	assert.Equal(t, 3, nullID)

	v, err := e.Boxed(2)
	require.NoError(t, err)
	assert.Equal(t, color("blue"), v)
	v, err = e.Boxed(3)
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = e.ID("purple")
	assert.ErrorIs(t, err, ErrOutOfDomain)
	_, err = e.Value(3)
	assert.ErrorIs(t, err, ErrNullID)
	_, err = e.Value(4)
	assert.ErrorIs(t, err, ErrUnknownID)

	// Exact: a plain string is not a color.
	_, err = e.IDOf("red")
	assert.ErrorIs(t, err, ErrWrongType)

	assert.Equal(t, []color{"red", "green", "blue"}, e.Values())
}

func TestEnum_RejectsDuplicates(t *testing.T) {
	_, err := NewEnum("dup", 1, 2, 1)
	assert.ErrorIs(t, err, ErrDuplicateValue)
}

func TestInterner_DenseIDs(t *testing.T) {
	in := NewInterner[string]("words")
	for i, w := range []string{"a", "b", "a", "c", "b"} {
		id, err := in.ID(w)
		require.NoError(t, err, "word %d", i)
		assert.Equal(t, map[string]int{"a": 0, "b": 1, "c": 2}[w], id)
	}
	assert.Equal(t, int64(3), in.Len())

	v, err := in.Value(2)
	require.NoError(t, err)
	assert.Equal(t, "c", v)
	_, err = in.Value(3)
	assert.ErrorIs(t, err, ErrUnknownID)

	_, ok := in.Lookup("zzz")
	assert.False(t, ok)
	assert.Equal(t, int64(3), in.Len(), "Lookup must not assign")

	assert.False(t, in.SupportsNull())
	_, err = in.IDOf(nil)
	assert.ErrorIs(t, err, ErrNullUnsupported)
}

func TestInterner_ReturnsCanonicalInstance(t *testing.T) {
	in := NewInterner[any]("numbers")
	_, first, err := in.Intern(0.0)
	require.NoError(t, err)

	canon, id, err := in.Intern(math.Copysign(0, -1))
	require.NoError(t, err)
	assert.Equal(t, first, id)
	assert.False(t, math.Signbit(canon.(float64)), "the first-seen +0 is canonical")
}

func TestInterner_MaxSize(t *testing.T) {
	in := NewInterner[int]("small", WithMaxSize(2))
	_, err := in.ID(1)
	require.NoError(t, err)
	_, err = in.ID(2)
	require.NoError(t, err)
	_, err = in.ID(3)
	assert.ErrorIs(t, err, ErrFull)

	id, err := in.ID(1)
	require.NoError(t, err, "known values still resolve when full")
	assert.Equal(t, 0, id)
}

func TestInterner_Concurrent(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	in := NewInterner[string]("keys", WithLogger(zap.New(core)))

	const workers, keys = 8, 200
	results := make([][]int, workers)
	var g errgroup.Group
	for w := range workers {
		g.Go(func() error {
			ids := make([]int, keys)
			for k := range keys {
				id, err := in.ID(fmt.Sprintf("key-%d", k))
				if err != nil {
					return err
				}
				ids[k] = id
			}
			results[w] = ids
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, int64(keys), in.Len())
	for w := 1; w < workers; w++ {
		assert.Equal(t, results[0], results[w], "worker %d saw different IDs", w)
	}
	for k := range keys {
		v, err := in.Value(results[0][k])
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("key-%d", k), v)
	}
	assert.NotZero(t, logs.FilterMessage("interner grew").Len())
}
