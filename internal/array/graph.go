package array

import (
	"slices"

	"github.com/google/uuid"
)

// ArrayNode is a vertex of the computation graph: the value of an array at one
// point in its history. A node without a producer is a leaf (graph input).
//
// Nodes are never mutated after construction except for attaching the
// producer once, right after the node is created.
type ArrayNode struct {
	id       uuid.UUID
	producer *OpNode
}

func newArrayNode() *ArrayNode {
	return &ArrayNode{id: uuid.New()}
}

// ID returns the identity marker of the node.
func (n *ArrayNode) ID() uuid.UUID {
	return n.id
}

// Producer returns the operation that produced this node, or nil for a leaf.
func (n *ArrayNode) Producer() *OpNode {
	return n.producer
}

// IsLeaf reports whether the node has no producer.
func (n *ArrayNode) IsLeaf() bool {
	return n.producer == nil
}

func (n *ArrayNode) setProducer(op *OpNode) {
	if n.producer != nil {
		panic("ArrayNode.setProducer: producer already set")
	}
	n.producer = op
}

// OpNode records one executed operation and the operand nodes it consumed,
// in argument order (e.g. [lhs, rhs]). It is immutable.
type OpNode struct {
	name     string
	operands []*ArrayNode
}

func newOpNode(name string, operands ...*ArrayNode) *OpNode {
	return &OpNode{name: name, operands: slices.Clone(operands)}
}

// Name returns the operation tag, e.g. "add".
func (op *OpNode) Name() string {
	return op.name
}

// Operands returns a copy of the operand nodes in argument order.
func (op *OpNode) Operands() []*ArrayNode {
	return slices.Clone(op.operands)
}

// NumOperands returns the number of operands.
func (op *OpNode) NumOperands() int {
	return len(op.operands)
}

// Operand returns the i-th operand node.
func (op *OpNode) Operand(i int) *ArrayNode {
	return op.operands[i]
}
