package array

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Element is the set of Go types that back an array element.
type Element interface {
	~bool | ~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~float32 | ~float64
}

// numeric is the subset of Element with native + and *.
type numeric interface {
	constraints.Integer | constraints.Float
}

// Dtype is the runtime element type of an array.
type Dtype int

// Supported element types.
const (
	Bool Dtype = iota
	Int8
	Int16
	Int32
	Int64
	Uint8
	Float32
	Float64
)

// Dtypes lists every supported Dtype in declaration order.
var Dtypes = []Dtype{Bool, Int8, Int16, Int32, Int64, Uint8, Float32, Float64}

// Size returns the byte size of one element.
func (d Dtype) Size() int {
	switch d {
	case Bool, Int8, Uint8:
		return 1
	case Int16:
		return 2
	case Int32, Float32:
		return 4
	case Int64, Float64:
		return 8
	default:
		panic(fmt.Sprintf("Dtype.Size: unknown dtype %d", int(d)))
	}
}

// String returns the canonical dtype name.
func (d Dtype) String() string {
	switch d {
	case Bool:
		return "bool"
	case Int8:
		return "int8"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Uint8:
		return "uint8"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return "unknown"
	}
}

// ParseDtype returns the Dtype with the given canonical name.
func ParseDtype(name string) (Dtype, error) {
	for _, d := range Dtypes {
		if d.String() == name {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown dtype %q", name)
}

// DtypeOf returns the Dtype backing the Go element type T.
func DtypeOf[T Element]() Dtype {
	var zero T
	switch any(zero).(type) {
	case bool:
		return Bool
	case int8:
		return Int8
	case int16:
		return Int16
	case int32:
		return Int32
	case int64:
		return Int64
	case uint8:
		return Uint8
	case float32:
		return Float32
	case float64:
		return Float64
	default:
		panic(fmt.Sprintf("DtypeOf: unsupported element type %T", zero))
	}
}
