// Package array implements an N-dimensional array with elementwise numeric
// operations over host and managed GPU memory.
//
// Every operation that writes a result also extends a computation graph:
// the output array receives a fresh ArrayNode whose producer is an OpNode
// naming the operation and holding the operands' nodes as they were before
// the write. A later differentiation pass can walk this graph backward from
// any array; this package only builds it.
//
// Storage is chosen once per array from the current device: host arrays adopt
// the caller's buffer, GPU arrays copy it into managed memory that host code
// can access directly. The elementwise kernels therefore run on the host for
// both backends.
//
// Broadcasting, dtype promotion and strided layouts are not supported;
// operations fail with ErrShapeMismatch, ErrDtypeMismatch or ErrNotContiguous
// instead.
package array
