package huffpack

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// Node is a node in a Huffman tree.  A leaf has no children and represents
// Symbol.  An internal node always has exactly two children, and its Symbol
// is meaningless.
type Node struct {
	Symbol    Symbol
	Frequency uint64
	Left      *Node
	Right     *Node

	// order breaks ties between nodes of equal Frequency.  Leaves use
	// their symbol value; merged nodes count up from NumSymbols in the
	// order they were created.
	order uint32
}

// IsLeaf returns true iff this node has no children.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// Leaves returns the number of leaves in the tree rooted at this node.
func (n *Node) Leaves() int {
	if n.IsLeaf() {
		return 1
	}
	return n.Left.Leaves() + n.Right.Leaves()
}

// Dump writes a programmer-readable debugging dump of the tree rooted at this
// node to the given writer.  Frequencies are omitted for trees that were read
// back from an artifact, since they are never stored.
func (n *Node) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	dumpNode(&buf, n, MakeCode(0, 0))
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func dumpNode(buf *bytes.Buffer, n *Node, hc Code) {
	buf.WriteByte('\t')
	for i := byte(0); i < hc.Size; i++ {
		buf.WriteString("  ")
	}
	if n.IsLeaf() {
		fmt.Fprintf(buf, "%s leaf %d (freq %d)\n", hc, n.Symbol, n.Frequency)
		return
	}
	fmt.Fprintf(buf, "%s node (freq %d)\n", hc, n.Frequency)
	dumpNode(buf, n.Left, hc.Append(0))
	dumpNode(buf, n.Right, hc.Append(1))
}

// BuildTree constructs a Huffman tree from the given frequencies.  Symbols
// with a frequency of 0 are omitted from the tree.
//
// If exactly one symbol has a non-zero frequency, the tree consists of a
// single leaf.  If no symbol does, BuildTree returns ErrEmptyInput.
//
func BuildTree(ft FrequencyTable) (*Node, error) {
	nodes := make([]*Node, 0, NumSymbols)
	for symbol, freq := range ft {
		if freq != 0 {
			nodes = append(nodes, &Node{
				Symbol:    Symbol(symbol),
				Frequency: freq,
				order:     uint32(symbol),
			})
		}
	}
	if len(nodes) == 0 {
		return nil, ErrEmptyInput
	}

	// Step 1: build a minheap.

	h := nodeHeap{nodes}
	h.Init()

	// Step 2: repeatedly pop the two lowest nodes and push their parent.
	// The first node popped becomes the left child.

	nextOrder := uint32(NumSymbols)
	for h.Len() > 1 {
		a := heap.Pop(&h).(*Node)
		b := heap.Pop(&h).(*Node)
		heap.Push(&h, &Node{
			Frequency: addSaturating(a.Frequency, b.Frequency),
			Left:      a,
			Right:     b,
			order:     nextOrder,
		})
		nextOrder++
	}

	root := heap.Pop(&h).(*Node)
	assert.Assertf(h.Len() == 0, "heap not drained: %d nodes left", h.Len())
	return root, nil
}

// type nodeHeap {{{

type nodeHeap struct {
	list []*Node
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.Frequency != b.Frequency {
		return a.Frequency < b.Frequency
	}
	return a.order < b.order
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(*Node))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = nil
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
