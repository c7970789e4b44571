package array

import (
	"fmt"
	"io"
	"strings"
)

const dumpIndent = "  "

// DumpGraph writes the computation graph reachable backward from a's current
// node, depth first. Each ArrayNode gets one line; a produced node is followed
// by its Op line and, two levels deeper, by its operands. Shared ancestors are
// printed once per path.
func DumpGraph(w io.Writer, a *Array, indent int) error {
	return dumpNode(w, a.node, indent)
}

func dumpNode(w io.Writer, n *ArrayNode, indent int) error {
	if _, err := fmt.Fprintf(w, "%sArrayNode<%s>\n", strings.Repeat(dumpIndent, indent), n.id); err != nil {
		return err
	}
	op := n.producer
	if op == nil {
		return nil
	}
	if _, err := fmt.Fprintf(w, "%sOp<%s>\n", strings.Repeat(dumpIndent, indent+1), op.name); err != nil {
		return err
	}
	for _, operand := range op.operands {
		if err := dumpNode(w, operand, indent+2); err != nil {
			return err
		}
	}
	return nil
}

// GraphString returns the DumpGraph output for a.
func GraphString(a *Array) string {
	var sb strings.Builder
	_ = DumpGraph(&sb, a, 0)
	return sb.String()
}
