package array

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func dumpLines(t *testing.T, a *Array, indent int) []string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, DumpGraph(&buf, a, indent))
	return strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
}

func nodeLine(indent int, n *ArrayNode) string {
	return fmt.Sprintf("%sArrayNode<%s>", strings.Repeat("  ", indent), n.ID())
}

func TestDumpLeaf(t *testing.T) {
	a := fromInts(t, Int32, Shape{2}, []int64{3, 4})

	got := dumpLines(t, a, 0)
	want := []string{nodeLine(0, a.Node())}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("dump mismatch (-want +got):\n%s", diff)
	}
}

func TestDumpAdd(t *testing.T) {
	a := fromInts(t, Int32, Shape{2}, []int64{3, 4})
	b := fromInts(t, Int32, Shape{2}, []int64{10, 20})
	c, err := a.Add(b)
	require.NoError(t, err)

	got := dumpLines(t, c, 0)
	want := []string{
		nodeLine(0, c.Node()),
		"  Op<add>",
		nodeLine(2, a.Node()),
		nodeLine(2, b.Node()),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("dump mismatch (-want +got):\n%s", diff)
	}
}

func TestDumpInPlaceHistory(t *testing.T) {
	a := fromInts(t, Float64, Shape{2}, []int64{1, 2})
	b := fromInts(t, Float64, Shape{2}, []int64{3, 4})
	leafA := a.Node()

	_, err := a.IAdd(b)
	require.NoError(t, err)
	mid := a.Node()
	_, err = a.IMul(b)
	require.NoError(t, err)

	got := dumpLines(t, a, 1)
	want := []string{
		nodeLine(1, a.Node()),
		"    Op<mul>",
		nodeLine(3, mid),
		"        Op<add>",
		nodeLine(5, leafA),
		nodeLine(5, b.Node()),
		nodeLine(3, b.Node()),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("dump mismatch (-want +got):\n%s", diff)
	}
}

func TestDumpSharedAncestorRepeated(t *testing.T) {
	a := fromInts(t, Int8, Shape{1}, []int64{2})
	b, err := a.Mul(a)
	require.NoError(t, err)

	got := dumpLines(t, b, 0)
	want := []string{
		nodeLine(0, b.Node()),
		"  Op<mul>",
		nodeLine(2, a.Node()),
		nodeLine(2, a.Node()),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("dump mismatch (-want +got):\n%s", diff)
	}
	if s := GraphString(b); s != strings.Join(want, "\n")+"\n" {
		t.Errorf("GraphString = %q", s)
	}
}
