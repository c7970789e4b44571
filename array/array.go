// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package array provides the public API for N-dimensional arrays that record
// a computation graph as they are operated on.
//
// Example:
//
//	a, _ := array.FromSlice(array.Shape{2}, []int32{3, 4})
//	b, _ := array.FromSlice(array.Shape{2}, []int32{10, 20})
//	c, _ := a.Add(b)            // [13, 24]
//	array.DumpGraph(os.Stdout, c, 0)
//
// Arrays are allocated on the current device. Select a GPU with
//
//	defer array.UseDevice(array.Device{Kind: array.CUDA})()
//
// and the array's bytes move into managed memory shared by host and device.
package array

import (
	"io"

	"github.com/born-ml/ndarray/internal/array"
)

// Array is an N-dimensional array with graph tracking.
type Array = array.Array

// Shape represents the extents of an array.
type Shape = array.Shape

// Dtype represents the element type of an array.
type Dtype = array.Dtype

// Element is the constraint over Go element types.
type Element = array.Element

// Element type constants.
const (
	Bool    Dtype = array.Bool
	Int8    Dtype = array.Int8
	Int16   Dtype = array.Int16
	Int32   Dtype = array.Int32
	Int64   Dtype = array.Int64
	Uint8   Dtype = array.Uint8
	Float32 Dtype = array.Float32
	Float64 Dtype = array.Float64
)

// ArrayNode is a vertex of the computation graph.
type ArrayNode = array.ArrayNode

// OpNode is an operation recorded in the computation graph.
type OpNode = array.OpNode

// Errors returned by array construction and operations.
var (
	ErrDtypeMismatch  = array.ErrDtypeMismatch
	ErrShapeMismatch  = array.ErrShapeMismatch
	ErrNotContiguous  = array.ErrNotContiguous
	ErrInvalidShape   = array.ErrInvalidShape
	ErrBufferTooSmall = array.ErrBufferTooSmall
	ErrInvalidOffset  = array.ErrInvalidOffset
	ErrDeviceAlloc    = array.ErrDeviceAlloc
)

// New creates an array over data on the current device.
func New(shape Shape, dtype Dtype, data []byte) (*Array, error) {
	return array.New(shape, dtype, data)
}

// NewWithOffset creates an array whose elements begin offset bytes into data.
func NewWithOffset(shape Shape, dtype Dtype, data []byte, offset int) (*Array, error) {
	return array.NewWithOffset(shape, dtype, data, offset)
}

// FromSlice creates an array holding a copy of values.
func FromSlice[T Element](shape Shape, values []T) (*Array, error) {
	return array.FromSlice(shape, values)
}

// Values returns a copy of the array's elements.
func Values[T Element](a *Array) ([]T, error) {
	return array.Values[T](a)
}

// ParseDtype returns the Dtype with the given name, e.g. "float32".
func ParseDtype(name string) (Dtype, error) {
	return array.ParseDtype(name)
}

// DumpGraph writes the computation graph that produced a.
func DumpGraph(w io.Writer, a *Array, indent int) error {
	return array.DumpGraph(w, a, indent)
}

// GraphString returns the DumpGraph output for a.
func GraphString(a *Array) string {
	return array.GraphString(a)
}
