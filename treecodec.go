package huffpack

import (
	"errors"
	"io"
)

const (
	tagInternal byte = 0x00
	tagLeaf     byte = 0x01
)

// WriteTree serializes the tree rooted at root in pre-order.  An internal
// node is written as tagInternal followed by its left and right subtrees; a
// leaf is written as tagLeaf followed by its symbol.
func WriteTree(w io.ByteWriter, root *Node) error {
	if root.IsLeaf() {
		if err := w.WriteByte(tagLeaf); err != nil {
			return err
		}
		return w.WriteByte(byte(root.Symbol))
	}
	if err := w.WriteByte(tagInternal); err != nil {
		return err
	}
	if err := WriteTree(w, root.Left); err != nil {
		return err
	}
	return WriteTree(w, root.Right)
}

// TreeSize returns the number of bytes WriteTree produces for root.
func TreeSize(root *Node) int {
	if root.IsLeaf() {
		return 2
	}
	return 1 + TreeSize(root.Left) + TreeSize(root.Right)
}

// ReadTree deserializes a tree written by WriteTree, consuming exactly the
// bytes that WriteTree wrote.  Frequencies are not stored, so every node of
// the returned tree has a Frequency of 0.
//
// ReadTree rejects input that could not have come from WriteTree: unknown
// tags, repeated symbols, more than NumSymbols leaves, or paths longer than
// MaxCodeSize.  All such failures, including a premature end of input, wrap
// ErrCorruptArtifact.
//
func ReadTree(r io.ByteReader) (*Node, error) {
	tr := treeReader{r: r}
	return tr.read(0)
}

type treeReader struct {
	r      io.ByteReader
	seen   [NumSymbols]bool
	leaves int
}

func (tr *treeReader) readByte(what string) (byte, error) {
	b, err := tr.r.ReadByte()
	if errors.Is(err, io.EOF) {
		return 0, corruptf("tree truncated while reading %s", what)
	}
	if err != nil {
		return 0, ioError(err)
	}
	return b, nil
}

func (tr *treeReader) read(depth int) (*Node, error) {
	if depth > MaxCodeSize {
		return nil, corruptf("tree deeper than %d levels", MaxCodeSize)
	}

	tag, err := tr.readByte("node tag")
	if err != nil {
		return nil, err
	}

	switch tag {
	case tagLeaf:
		b, err := tr.readByte("leaf symbol")
		if err != nil {
			return nil, err
		}
		if tr.seen[b] {
			return nil, corruptf("symbol %d appears twice in tree", b)
		}
		tr.seen[b] = true
		tr.leaves++
		return &Node{Symbol: Symbol(b), order: uint32(b)}, nil

	case tagInternal:
		if tr.leaves >= NumSymbols {
			return nil, corruptf("tree has more than %d leaves", NumSymbols)
		}
		left, err := tr.read(depth + 1)
		if err != nil {
			return nil, err
		}
		right, err := tr.read(depth + 1)
		if err != nil {
			return nil, err
		}
		return &Node{Left: left, Right: right}, nil

	default:
		return nil, corruptf("unknown node tag 0x%02x", tag)
	}
}
