package array

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// fromInts builds an array of any dtype from integer values.
func fromInts(t *testing.T, dtype Dtype, shape Shape, vals []int64) *Array {
	t.Helper()
	var (
		a   *Array
		err error
	)
	switch dtype {
	case Bool:
		a, err = FromSlice(shape, convert(vals, func(v int64) bool { return v != 0 }))
	case Int8:
		a, err = FromSlice(shape, convert(vals, func(v int64) int8 { return int8(v) }))
	case Int16:
		a, err = FromSlice(shape, convert(vals, func(v int64) int16 { return int16(v) }))
	case Int32:
		a, err = FromSlice(shape, convert(vals, func(v int64) int32 { return int32(v) }))
	case Int64:
		a, err = FromSlice(shape, vals)
	case Uint8:
		a, err = FromSlice(shape, convert(vals, func(v int64) uint8 { return uint8(v) }))
	case Float32:
		a, err = FromSlice(shape, convert(vals, func(v int64) float32 { return float32(v) }))
	case Float64:
		a, err = FromSlice(shape, convert(vals, func(v int64) float64 { return float64(v) }))
	default:
		t.Fatalf("fromInts: unsupported dtype %s", dtype)
	}
	require.NoError(t, err)
	return a
}

// toInts reads the elements of a back as integers.
func toInts(t *testing.T, a *Array) []int64 {
	t.Helper()
	switch a.Dtype() {
	case Bool:
		return mustConvert(t, a, func(v bool) int64 {
			if v {
				return 1
			}
			return 0
		})
	case Int8:
		return mustConvert(t, a, func(v int8) int64 { return int64(v) })
	case Int16:
		return mustConvert(t, a, func(v int16) int64 { return int64(v) })
	case Int32:
		return mustConvert(t, a, func(v int32) int64 { return int64(v) })
	case Int64:
		return mustConvert(t, a, func(v int64) int64 { return v })
	case Uint8:
		return mustConvert(t, a, func(v uint8) int64 { return int64(v) })
	case Float32:
		return mustConvert(t, a, func(v float32) int64 { return int64(v) })
	case Float64:
		return mustConvert(t, a, func(v float64) int64 { return int64(v) })
	}
	t.Fatalf("toInts: unsupported dtype %s", a.Dtype())
	return nil
}

func convert[S, D any](in []S, f func(S) D) []D {
	out := make([]D, len(in))
	for i, v := range in {
		out[i] = f(v)
	}
	return out
}

func mustConvert[T Element](t *testing.T, a *Array, f func(T) int64) []int64 {
	t.Helper()
	vals, err := Values[T](a)
	require.NoError(t, err)
	return convert(vals, f)
}

func otherDtypes(d Dtype) []Dtype {
	var out []Dtype
	for _, o := range Dtypes {
		if o != d {
			out = append(out, o)
		}
	}
	return out
}
