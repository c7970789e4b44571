// Package autodiff provides read-only walks over the computation graph that
// arrays record. A reverse-mode differentiation pass consumes the graph in
// the order TopoOrder returns; gradients themselves are not computed here.
package autodiff

import "github.com/born-ml/ndarray/internal/array"

// TopoOrder returns every ArrayNode reachable from root, each exactly once,
// ordered so that a node comes before all operands of its producer.
// root is always first.
func TopoOrder(root *array.ArrayNode) []*array.ArrayNode {
	visited := make(map[*array.ArrayNode]bool)
	var post []*array.ArrayNode

	var visit func(n *array.ArrayNode)
	visit = func(n *array.ArrayNode) {
		if visited[n] {
			return
		}
		visited[n] = true
		if op := n.Producer(); op != nil {
			for i := 0; i < op.NumOperands(); i++ {
				visit(op.Operand(i))
			}
		}
		post = append(post, n)
	}
	visit(root)

	// Reverse post-order.
	for i, j := 0, len(post)-1; i < j; i, j = i+1, j-1 {
		post[i], post[j] = post[j], post[i]
	}
	return post
}

// Leaves returns the reachable leaf nodes in first-visit order.
func Leaves(root *array.ArrayNode) []*array.ArrayNode {
	var leaves []*array.ArrayNode
	seen := make(map[*array.ArrayNode]bool)

	var visit func(n *array.ArrayNode)
	visit = func(n *array.ArrayNode) {
		if seen[n] {
			return
		}
		seen[n] = true
		op := n.Producer()
		if op == nil {
			leaves = append(leaves, n)
			return
		}
		for i := 0; i < op.NumOperands(); i++ {
			visit(op.Operand(i))
		}
	}
	visit(root)
	return leaves
}

// CountOps returns the number of distinct operations reachable from root.
func CountOps(root *array.ArrayNode) int {
	ops := make(map[*array.OpNode]bool)
	for _, n := range TopoOrder(root) {
		if op := n.Producer(); op != nil {
			ops[op] = true
		}
	}
	return len(ops)
}
