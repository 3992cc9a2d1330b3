package huffpack

import (
	"bytes"
	"fmt"
	"io"
)

// FrequencyTable holds the number of occurrences of each Symbol in an input.
type FrequencyTable [NumSymbols]uint64

// CountFrequencies scans data once and returns the number of occurrences of
// each byte value.
func CountFrequencies(data []byte) FrequencyTable {
	var ft FrequencyTable
	for _, b := range data {
		ft[b]++
	}
	return ft
}

// Total returns the sum of all frequencies, which equals the length of the
// counted input.
func (ft *FrequencyTable) Total() uint64 {
	var total uint64
	for _, freq := range ft {
		total = addSaturating(total, freq)
	}
	return total
}

// Distinct returns the number of symbols with a non-zero frequency.
func (ft *FrequencyTable) Distinct() int {
	var n int
	for _, freq := range ft {
		if freq != 0 {
			n++
		}
	}
	return n
}

// Dump writes a programmer-readable debugging dump of the non-zero entries to
// the given writer.
func (ft *FrequencyTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("FrequencyTable{\n")
	fmt.Fprintf(&buf, "\tTotal() = %d\n", ft.Total())
	fmt.Fprintf(&buf, "\tDistinct() = %d\n", ft.Distinct())
	for symbol, freq := range ft {
		if freq != 0 {
			fmt.Fprintf(&buf, "\t[%d] = %d\n", symbol, freq)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
