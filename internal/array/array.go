package array

import (
	"fmt"
	"math"
	"runtime"
	"unsafe"

	"github.com/born-ml/ndarray/internal/device"
)

// Array is an N-dimensional array whose elements live in a device-resident
// buffer. Every value-producing operation also records itself in the
// computation graph through the array's node.
//
// Example:
//
//	a, _ := array.FromSlice(array.Shape{2}, []int32{3, 4})
//	b, _ := array.FromSlice(array.Shape{2}, []int32{10, 20})
//	c, _ := a.Add(b) // [13, 24]
type Array struct {
	shape      Shape
	dtype      Dtype
	data       *storage
	offset     int
	contiguous bool
	node       *ArrayNode
}

// New creates an array over data, which must hold at least
// shape.TotalSize()*dtype.Size() bytes.
//
// On a host device the array adopts data without copying; on a GPU device the
// bytes are copied into a freshly allocated managed buffer.
func New(shape Shape, dtype Dtype, data []byte) (*Array, error) {
	return NewWithOffset(shape, dtype, data, 0)
}

// NewWithOffset is like New but the elements begin offset bytes into data.
func NewWithOffset(shape Shape, dtype Dtype, data []byte, offset int) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if offset < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidOffset, offset)
	}
	total, size := shape.TotalSize(), dtype.Size()
	if total > math.MaxInt/size {
		return nil, fmt.Errorf("%w: %s%s exceeds the addressable size", ErrInvalidShape, dtype, shape)
	}
	nbytes := total * size
	if nbytes > len(data) || offset > len(data)-nbytes {
		return nil, fmt.Errorf("%w: %s%s needs %d bytes at offset %d, got %d",
			ErrBufferTooSmall, dtype, shape, nbytes, offset, len(data))
	}

	st, err := allocatorFor(device.Current()).adopt(data, offset+nbytes)
	if err != nil {
		return nil, err
	}
	return newArray(shape, dtype, st, offset), nil
}

// empty allocates a zeroed array on the current device.
func empty(shape Shape, dtype Dtype) (*Array, error) {
	st, err := allocatorFor(device.Current()).alloc(shape.TotalSize() * dtype.Size())
	if err != nil {
		return nil, err
	}
	return newArray(shape, dtype, st, 0), nil
}

func newArray(shape Shape, dtype Dtype, st *storage, offset int) *Array {
	return &Array{
		shape:      shape.Clone(),
		dtype:      dtype,
		data:       st,
		offset:     offset,
		contiguous: true,
		node:       newArrayNode(),
	}
}

// FromSlice creates an array of the given shape holding a copy of values.
func FromSlice[T Element](shape Shape, values []T) (*Array, error) {
	if shape.TotalSize() != len(values) {
		return nil, fmt.Errorf("%w: shape %s requires %d elements, got %d",
			ErrShapeMismatch, shape, shape.TotalSize(), len(values))
	}
	dtype := DtypeOf[T]()
	data := make([]byte, len(values)*dtype.Size())
	copy(view[T](data, len(values)), values)
	return New(shape, dtype, data)
}

// Values returns a copy of the elements of a as a Go slice.
func Values[T Element](a *Array) ([]T, error) {
	if want := DtypeOf[T](); want != a.dtype {
		return nil, fmt.Errorf("%w: array is %s, requested %s", ErrDtypeMismatch, a.dtype, want)
	}
	n := a.shape.TotalSize()
	out := make([]T, n)
	if bools, ok := any(out).([]bool); ok {
		// Any non-zero byte reads as true, as in the kernels.
		for i, b := range a.Data()[:n] {
			bools[i] = b != 0
		}
	} else {
		copy(out, view[T](a.Data(), n))
	}
	runtime.KeepAlive(a)
	return out, nil
}

// Shape returns the array's shape.
func (a *Array) Shape() Shape {
	return a.shape
}

// Dtype returns the element type.
func (a *Array) Dtype() Dtype {
	return a.dtype
}

// Offset returns the byte offset of the first element in the buffer.
func (a *Array) Offset() int {
	return a.offset
}

// IsContiguous reports whether the elements form a dense region of the buffer
// starting at Offset.
func (a *Array) IsContiguous() bool {
	return a.contiguous
}

// Device returns the device owning the array's buffer.
func (a *Array) Device() device.Device {
	return a.data.device
}

// TotalBytes returns the byte size of the array's elements.
func (a *Array) TotalBytes() int {
	return a.shape.TotalSize() * a.dtype.Size()
}

// Data returns the bytes of the buffer starting at Offset.
// The slice aliases the buffer and is only valid while a is reachable.
func (a *Array) Data() []byte {
	return a.data.data[a.offset:]
}

// Node returns the graph node currently representing the array's value.
func (a *Array) Node() *ArrayNode {
	return a.node
}

// View returns a new array sharing a's buffer and graph node.
//
// The graph tracks arrays, not buffers: an in-place operation through one
// alias gives only that alias a new node, while the other keeps its previous
// node even though its bytes changed. Do not mutate a buffer in place while
// another alias's node is still used to describe its value.
func (a *Array) View() *Array {
	return &Array{
		shape:      a.shape.Clone(),
		dtype:      a.dtype,
		data:       a.data,
		offset:     a.offset,
		contiguous: a.contiguous,
		node:       a.node,
	}
}

// view reinterprets the first n elements of b as []T.
func view[T any](b []byte, n int) []T {
	if n == 0 {
		return nil
	}
	var zero T
	if need := n * int(unsafe.Sizeof(zero)); len(b) < need {
		panic(fmt.Sprintf("view: buffer holds %d bytes, need %d", len(b), need))
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked above
	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), n)
}
