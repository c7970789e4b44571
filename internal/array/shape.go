package array

import (
	"fmt"
	"math"
	"strings"
)

// Shape represents the extents of an array.
type Shape []int

// TotalSize returns the number of elements. A scalar shape has one element.
func (s Shape) TotalSize() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that no dimension is negative and that the element count
// fits in an int.
func (s Shape) Validate() error {
	empty := false
	for i, dim := range s {
		if dim < 0 {
			return fmt.Errorf("%w: dimension %d is %d", ErrInvalidShape, i, dim)
		}
		empty = empty || dim == 0
	}
	if empty {
		return nil
	}
	n := 1
	for _, dim := range s {
		if n > math.MaxInt/dim {
			return fmt.Errorf("%w: %s has too many elements", ErrInvalidShape, s)
		}
		n *= dim
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// String formats the shape as a tuple, e.g. (2, 3).
func (s Shape) String() string {
	parts := make([]string, len(s))
	for i, dim := range s {
		parts[i] = fmt.Sprint(dim)
	}
	if len(s) == 1 {
		return "(" + parts[0] + ",)"
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
