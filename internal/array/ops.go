package array

import (
	"fmt"
	"runtime"
)

// binaryOp describes an elementwise binary operation.
type binaryOp struct {
	name string
	kind binaryKind
}

var (
	addOp = binaryOp{name: "add", kind: kindAdd}
	mulOp = binaryOp{name: "mul", kind: kindMul}
)

// Add returns a new array holding a + rhs elementwise.
func (a *Array) Add(rhs *Array) (*Array, error) {
	return a.outOfPlace(addOp, rhs)
}

// Mul returns a new array holding a * rhs elementwise.
func (a *Array) Mul(rhs *Array) (*Array, error) {
	return a.outOfPlace(mulOp, rhs)
}

// IAdd adds rhs into a in place and returns a.
func (a *Array) IAdd(rhs *Array) (*Array, error) {
	if err := a.binary(addOp, rhs, a); err != nil {
		return nil, err
	}
	return a, nil
}

// IMul multiplies a by rhs in place and returns a.
func (a *Array) IMul(rhs *Array) (*Array, error) {
	if err := a.binary(mulOp, rhs, a); err != nil {
		return nil, err
	}
	return a, nil
}

// AddTo writes a + rhs into out. out may alias a or rhs.
func (a *Array) AddTo(rhs, out *Array) error {
	return a.binary(addOp, rhs, out)
}

// MulTo writes a * rhs into out. out may alias a or rhs.
func (a *Array) MulTo(rhs, out *Array) error {
	return a.binary(mulOp, rhs, out)
}

func (a *Array) outOfPlace(op binaryOp, rhs *Array) (*Array, error) {
	if err := checkOperands(op, a, rhs); err != nil {
		return nil, err
	}
	out, err := empty(a.shape, a.dtype)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op.name, err)
	}
	if err := a.binary(op, rhs, out); err != nil {
		return nil, err
	}
	return out, nil
}

// binary computes op(a, rhs) into out and records the operation in the graph.
// Either every element is written and the graph updated, or neither happens.
func (a *Array) binary(op binaryOp, rhs, out *Array) error {
	if err := checkOperands(op, a, rhs); err != nil {
		return err
	}
	if out.dtype != a.dtype {
		return fmt.Errorf("%s: output %w: %s vs %s", op.name, ErrDtypeMismatch, out.dtype, a.dtype)
	}
	if !out.shape.Equal(a.shape) {
		return fmt.Errorf("%s: output %w: %s vs %s", op.name, ErrShapeMismatch, out.shape, a.shape)
	}
	// The kernel walks a dense linear index; strided layouts are not handled.
	for _, x := range []*Array{a, rhs, out} {
		if !x.contiguous {
			return fmt.Errorf("%s: %w", op.name, ErrNotContiguous)
		}
	}

	dispatchBinary(op.kind, a.dtype, out.Data(), a.Data(), rhs.Data(), a.shape.TotalSize())
	runtime.KeepAlive(a)
	runtime.KeepAlive(rhs)
	runtime.KeepAlive(out)

	// Snapshot operand nodes before replacing out's node: out may be a or rhs.
	lhsNode, rhsNode := a.node, rhs.node
	opNode := newOpNode(op.name, lhsNode, rhsNode)
	outNode := newArrayNode()
	outNode.setProducer(opNode)
	out.node = outNode
	return nil
}

// checkOperands validates the operand pair. Dtype promotion and broadcasting
// are not supported.
func checkOperands(op binaryOp, lhs, rhs *Array) error {
	if lhs.dtype != rhs.dtype {
		return fmt.Errorf("%s: %w: %s vs %s (dtype promotion is not supported)",
			op.name, ErrDtypeMismatch, lhs.dtype, rhs.dtype)
	}
	if !lhs.shape.Equal(rhs.shape) {
		return fmt.Errorf("%s: %w: %s vs %s (broadcasting is not supported)",
			op.name, ErrShapeMismatch, lhs.shape, rhs.shape)
	}
	return nil
}
