package array

import (
	"runtime"
	"strconv"
	"strings"
)

// String renders the array as array([...], dtype=...), nesting brackets by
// dimension.
func (a *Array) String() string {
	var sb strings.Builder
	sb.WriteString("array(")
	elems := a.formatElements()
	runtime.KeepAlive(a)
	if len(a.shape) == 0 {
		sb.WriteString(elems[0])
	} else {
		writeNested(&sb, a.shape, elems)
	}
	sb.WriteString(", dtype=")
	sb.WriteString(a.dtype.String())
	sb.WriteString(")")
	return sb.String()
}

func writeNested(sb *strings.Builder, shape Shape, elems []string) {
	sb.WriteByte('[')
	if len(shape) == 1 {
		sb.WriteString(strings.Join(elems, ", "))
	} else {
		step := shape[1:].TotalSize()
		for i := 0; i < shape[0]; i++ {
			if i > 0 {
				sb.WriteString(", ")
			}
			writeNested(sb, shape[1:], elems[i*step:(i+1)*step])
		}
	}
	sb.WriteByte(']')
}

func (a *Array) formatElements() []string {
	n := a.shape.TotalSize()
	data := a.Data()
	out := make([]string, n)
	switch a.dtype {
	case Bool:
		for i, b := range data[:n] {
			if b != 0 {
				out[i] = "True"
			} else {
				out[i] = "False"
			}
		}
	case Int8:
		formatInts(out, view[int8](data, n))
	case Int16:
		formatInts(out, view[int16](data, n))
	case Int32:
		formatInts(out, view[int32](data, n))
	case Int64:
		formatInts(out, view[int64](data, n))
	case Uint8:
		formatInts(out, data[:n])
	case Float32:
		for i, v := range view[float32](data, n) {
			out[i] = strconv.FormatFloat(float64(v), 'g', -1, 32)
		}
	case Float64:
		for i, v := range view[float64](data, n) {
			out[i] = strconv.FormatFloat(v, 'g', -1, 64)
		}
	}
	return out
}

func formatInts[T int8 | int16 | int32 | int64 | uint8](out []string, vals []T) {
	for i, v := range vals {
		out[i] = strconv.FormatInt(int64(v), 10)
	}
}
