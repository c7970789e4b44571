package array

import "fmt"

// binaryKind selects the elementwise kernel.
type binaryKind int

const (
	kindAdd binaryKind = iota
	kindMul
)

// dispatchBinary runs the kernel of kind over n elements, choosing the
// monomorphized implementation for dtype once, outside the element loop.
func dispatchBinary(kind binaryKind, dtype Dtype, out, lhs, rhs []byte, n int) {
	switch dtype {
	case Bool:
		runBool(kind, out[:n], lhs[:n], rhs[:n])
	case Int8:
		runNumeric[int8](kind, out, lhs, rhs, n)
	case Int16:
		runNumeric[int16](kind, out, lhs, rhs, n)
	case Int32:
		runNumeric[int32](kind, out, lhs, rhs, n)
	case Int64:
		runNumeric[int64](kind, out, lhs, rhs, n)
	case Uint8:
		runNumeric[uint8](kind, out, lhs, rhs, n)
	case Float32:
		runNumeric[float32](kind, out, lhs, rhs, n)
	case Float64:
		runNumeric[float64](kind, out, lhs, rhs, n)
	default:
		panic(fmt.Sprintf("dispatchBinary: unsupported dtype %d", int(dtype)))
	}
}

func runNumeric[T numeric](kind binaryKind, out, lhs, rhs []byte, n int) {
	o, l, r := view[T](out, n), view[T](lhs, n), view[T](rhs, n)
	switch kind {
	case kindAdd:
		addKernel(o, l, r)
	case kindMul:
		mulKernel(o, l, r)
	default:
		panic(fmt.Sprintf("runNumeric: unknown kernel %d", int(kind)))
	}
}

func addKernel[T numeric](out, lhs, rhs []T) {
	for i := range out {
		out[i] = lhs[i] + rhs[i]
	}
}

func mulKernel[T numeric](out, lhs, rhs []T) {
	for i := range out {
		out[i] = lhs[i] * rhs[i]
	}
}

// runBool works on the raw bytes so that any non-zero byte reads as true.
// Addition saturates to OR, multiplication is AND.
func runBool(kind binaryKind, out, lhs, rhs []byte) {
	switch kind {
	case kindAdd:
		for i := range out {
			out[i] = boolByte(lhs[i] != 0 || rhs[i] != 0)
		}
	case kindMul:
		for i := range out {
			out[i] = boolByte(lhs[i] != 0 && rhs[i] != 0)
		}
	default:
		panic(fmt.Sprintf("runBool: unknown kernel %d", int(kind)))
	}
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}
