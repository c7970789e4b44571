// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff exposes walks over the computation graph recorded by
// arrays, in the order a reverse-mode differentiation pass visits it.
//
// Example:
//
//	c, _ := a.Add(b)
//	for _, n := range autodiff.TopoOrder(c.Node()) {
//	    if op := n.Producer(); op != nil {
//	        fmt.Println(op.Name())
//	    }
//	}
package autodiff

import (
	"github.com/born-ml/ndarray/internal/array"
	"github.com/born-ml/ndarray/internal/autodiff"
)

// TopoOrder returns the nodes reachable from root, root first, each node
// before the operands of its producer.
func TopoOrder(root *array.ArrayNode) []*array.ArrayNode {
	return autodiff.TopoOrder(root)
}

// Leaves returns the reachable leaf nodes (graph inputs).
func Leaves(root *array.ArrayNode) []*array.ArrayNode {
	return autodiff.Leaves(root)
}

// CountOps returns the number of distinct operations reachable from root.
func CountOps(root *array.ArrayNode) int {
	return autodiff.CountOps(root)
}
