package huffpack

import (
	"fmt"
	"io"

	"github.com/icza/bitio"
)

// BitPacker writes the Huffman codes for a sequence of bytes as a packed bit
// stream, most significant bit first.
type BitPacker struct {
	w     *bitio.Writer
	codes *CodeTable
	bits  uint64
}

// NewBitPacker returns a BitPacker that writes to w using the given codes.
func NewBitPacker(w io.Writer, codes *CodeTable) *BitPacker {
	return &BitPacker{w: bitio.NewWriter(w), codes: codes}
}

// Pack appends the code of each byte in data to the stream.  Every byte must
// have a code in the table.
func (p *BitPacker) Pack(data []byte) error {
	for _, b := range data {
		hc, ok := p.codes.Lookup(Symbol(b))
		if !ok {
			return fmt.Errorf("%w: symbol %d has no code", ErrInvalidInput, b)
		}
		if hc.Size == 0 {
			continue
		}
		if err := p.w.WriteBits(hc.Bits, hc.Size); err != nil {
			return ioError(err)
		}
		p.bits += uint64(hc.Size)
	}
	return nil
}

// BitsWritten returns the number of code bits written so far, not counting
// padding.
func (p *BitPacker) BitsWritten() uint64 {
	return p.bits
}

// Close writes out any partial byte, padded with zero bits.  It does not close
// the underlying writer.
func (p *BitPacker) Close() error {
	return p.w.Close()
}
