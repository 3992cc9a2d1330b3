package huffpack

import (
	"bytes"
	"cmp"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
	"golang.org/x/exp/slices"
)

// CodeTable maps each Symbol present in a Huffman tree to its Code.
type CodeTable struct {
	codes   [NumSymbols]Code
	present [NumSymbols]bool
	count   int
	minSize byte
	maxSize byte
}

// GenerateCodes walks the tree rooted at root and records the path to each
// leaf: a step to the left appends a 0 bit and a step to the right appends a
// 1 bit.  The single leaf of a one-symbol tree gets the empty Code.
func GenerateCodes(root *Node) CodeTable {
	var ct CodeTable
	if root != nil {
		ct.walk(root, MakeCode(0, 0))
	}
	return ct
}

func (ct *CodeTable) walk(n *Node, hc Code) {
	if n.IsLeaf() {
		assert.Assertf(!ct.present[n.Symbol], "symbol %d appears twice in tree", n.Symbol)
		ct.codes[n.Symbol] = hc
		ct.present[n.Symbol] = true
		if ct.count == 0 {
			ct.minSize = hc.Size
			ct.maxSize = hc.Size
		} else if ct.minSize > hc.Size {
			ct.minSize = hc.Size
		} else if ct.maxSize < hc.Size {
			ct.maxSize = hc.Size
		}
		ct.count++
		return
	}

	assert.Assertf(hc.Size < MaxCodeSize, "Huffman tree deeper than %d bits", MaxCodeSize)
	ct.walk(n.Left, hc.Append(0))
	ct.walk(n.Right, hc.Append(1))
}

// Lookup returns the Code for symbol, and whether symbol has one at all.
func (ct *CodeTable) Lookup(symbol Symbol) (Code, bool) {
	return ct.codes[symbol], ct.present[symbol]
}

// Encode returns the Code for symbol.  Symbols not in the table map to the
// empty Code; use Lookup to tell them apart.
func (ct *CodeTable) Encode(symbol Symbol) Code {
	return ct.codes[symbol]
}

// Len returns the number of symbols in the table.
func (ct *CodeTable) Len() int {
	return ct.count
}

// MinSize is the bit length of the shortest code.
func (ct *CodeTable) MinSize() byte {
	return ct.minSize
}

// MaxSize is the bit length of the longest code.
func (ct *CodeTable) MaxSize() byte {
	return ct.maxSize
}

// Symbols returns the symbols in the table in ascending order.
func (ct *CodeTable) Symbols() []Symbol {
	out := make([]Symbol, 0, ct.count)
	for symbol := 0; symbol <= int(MaxSymbol); symbol++ {
		if ct.present[symbol] {
			out = append(out, Symbol(symbol))
		}
	}
	return out
}

// ByLength returns the symbols in the table ordered by code length, shortest
// first, and then by symbol.
func (ct *CodeTable) ByLength() []Symbol {
	out := ct.Symbols()
	slices.SortStableFunc(out, func(a, b Symbol) int {
		return cmp.Compare(ct.codes[a].Size, ct.codes[b].Size)
	})
	return out
}

// EncodedBits returns the number of payload bits needed to encode an input
// with the given frequencies.
func (ct *CodeTable) EncodedBits(ft FrequencyTable) uint64 {
	var total uint64
	for symbol, freq := range ft {
		total += freq * uint64(ct.codes[symbol].Size)
	}
	return total
}

// Dump writes a programmer-readable debugging dump of the CodeTable's current
// state to the given writer.
func (ct *CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", ct.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", ct.maxSize)
	for _, symbol := range ct.Symbols() {
		fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", symbol, ct.codes[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
