package huffpack

import (
	"errors"
	"io"

	"github.com/icza/bitio"
)

// BitUnpacker decodes a packed bit stream by walking a Huffman tree one bit at
// a time.
type BitUnpacker struct {
	r    *bitio.Reader
	root *Node
}

// NewBitUnpacker returns a BitUnpacker that reads from r and decodes with the
// tree rooted at root.
func NewBitUnpacker(r io.Reader, root *Node) *BitUnpacker {
	return &BitUnpacker{r: bitio.NewReader(r), root: root}
}

// Unpack decodes exactly total symbols and writes them to w.  Bits left over
// in the final byte are ignored.  If the stream ends before total symbols
// have been decoded, Unpack returns an error wrapping ErrCorruptArtifact.
//
// A tree consisting of a single leaf has an empty code, so Unpack writes its
// symbol total times without reading anything.
//
func (u *BitUnpacker) Unpack(w io.ByteWriter, total uint64) error {
	if u.root.IsLeaf() {
		for i := uint64(0); i < total; i++ {
			if err := w.WriteByte(byte(u.root.Symbol)); err != nil {
				return ioError(err)
			}
		}
		return nil
	}

	var decoded uint64
	n := u.root
	for decoded < total {
		bit, err := u.r.ReadBool()
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return corruptf("payload ended after %d of %d symbols", decoded, total)
		}
		if err != nil {
			return ioError(err)
		}

		if bit {
			n = n.Right
		} else {
			n = n.Left
		}

		if n.IsLeaf() {
			if err := w.WriteByte(byte(n.Symbol)); err != nil {
				return ioError(err)
			}
			n = u.root
			decoded++
		}
	}
	return nil
}
