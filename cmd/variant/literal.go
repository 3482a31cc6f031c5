package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Neumenon/variant/convert"
	"github.com/Neumenon/variant/variant"
)

// parseLiteral parses a kind:value literal into a cell. Durations go
// through reg so they are stored the way the registry converts them.
func parseLiteral(reg *convert.Registry, lit string) (variant.Any, error) {
	kind, val, ok := strings.Cut(lit, ":")
	if !ok {
		switch lit {
		case "empty":
			return variant.Any{}, nil
		case "null":
			return variant.ObjectOf(nil)
		}
		return variant.Any{}, fmt.Errorf("literal %q: want kind:value", lit)
	}

	var (
		cell variant.Any
		err  error
	)
	switch strings.ToLower(kind) {
	case "bool", "boolean":
		var b bool
		if b, err = strconv.ParseBool(val); err == nil {
			cell = variant.BoolOf(b)
		}
	case "byte":
		var n uint64
		if n, err = strconv.ParseUint(val, 0, 8); err == nil {
			cell = variant.ByteOf(byte(n))
		}
	case "char":
		r, size := utf8.DecodeRuneInString(val)
		if size == 0 || (r == utf8.RuneError && size == 1) || size != len(val) {
			err = errors.New("want exactly one character")
		} else {
			cell = variant.CharOf(r)
		}
	case "short":
		var n int64
		if n, err = strconv.ParseInt(val, 0, 16); err == nil {
			cell = variant.ShortOf(int16(n))
		}
	case "int":
		var n int64
		if n, err = strconv.ParseInt(val, 0, 32); err == nil {
			cell = variant.IntOf(int32(n))
		}
	case "long":
		var n int64
		if n, err = strconv.ParseInt(val, 0, 64); err == nil {
			cell = variant.LongOf(n)
		}
	case "float":
		var f float64
		if f, err = strconv.ParseFloat(val, 32); err == nil {
			cell = variant.FloatOf(float32(f))
		}
	case "double":
		var f float64
		if f, err = strconv.ParseFloat(val, 64); err == nil {
			cell = variant.DoubleOf(f)
		}
	case "str", "string", "obj", "object":
		cell, err = variant.ObjectOf(val)
	case "dur", "duration":
		var d time.Duration
		if d, err = time.ParseDuration(val); err == nil {
			cell, err = storeConverted(reg, d)
		}
	default:
		return variant.Any{}, fmt.Errorf("literal %q: unknown kind %q", lit, kind)
	}
	if err != nil {
		return variant.Any{}, fmt.Errorf("literal %q: %w", lit, err)
	}
	return cell, nil
}

func storeConverted[T any](reg *convert.Registry, v T) (variant.Any, error) {
	c, ok := convert.FindFor[T](reg)
	if !ok {
		return variant.ObjectOf(v)
	}
	var cell variant.Any
	err := c.ToAny(v, &cell)
	return cell, err
}

// parseLiterals loads every literal into a fresh AnyArray of at least
// minSize slots.
func parseLiterals(reg *convert.Registry, lits []string, minSize int) (*variant.AnyArray, error) {
	arr, err := variant.NewAnyArray(max(len(lits), minSize))
	if err != nil {
		return nil, err
	}
	for i, lit := range lits {
		cell, err := parseLiteral(reg, lit)
		if err != nil {
			return nil, err
		}
		if err := arr.CopyCellFrom(i, cell); err != nil {
			return nil, err
		}
	}
	return arr, nil
}
