package array

import "errors"

// Sentinel errors returned by array construction and operations.
var (
	ErrDtypeMismatch  = errors.New("dtype mismatch")
	ErrShapeMismatch  = errors.New("shape mismatch")
	ErrNotContiguous  = errors.New("non-contiguous array")
	ErrInvalidShape   = errors.New("invalid shape")
	ErrBufferTooSmall = errors.New("buffer too small")
	ErrInvalidOffset  = errors.New("invalid offset")
	ErrDeviceAlloc    = errors.New("device allocation failed")
)
