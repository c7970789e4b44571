package array

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDtypeSize(t *testing.T) {
	tests := []struct {
		dtype Dtype
		size  int
		name  string
	}{
		{Bool, 1, "bool"},
		{Int8, 1, "int8"},
		{Int16, 2, "int16"},
		{Int32, 4, "int32"},
		{Int64, 8, "int64"},
		{Uint8, 1, "uint8"},
		{Float32, 4, "float32"},
		{Float64, 8, "float64"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.size, tt.dtype.Size())
			assert.Equal(t, tt.name, tt.dtype.String())

			parsed, err := ParseDtype(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.dtype, parsed)
		})
	}
}

func TestDtypeUnknown(t *testing.T) {
	assert.Equal(t, "unknown", Dtype(99).String())
	assert.Panics(t, func() { Dtype(99).Size() })

	_, err := ParseDtype("complex128")
	assert.Error(t, err)
}

func TestDtypeOf(t *testing.T) {
	assert.Equal(t, Bool, DtypeOf[bool]())
	assert.Equal(t, Int8, DtypeOf[int8]())
	assert.Equal(t, Int16, DtypeOf[int16]())
	assert.Equal(t, Int32, DtypeOf[int32]())
	assert.Equal(t, Int64, DtypeOf[int64]())
	assert.Equal(t, Uint8, DtypeOf[uint8]())
	assert.Equal(t, Float32, DtypeOf[float32]())
	assert.Equal(t, Float64, DtypeOf[float64]())
}
