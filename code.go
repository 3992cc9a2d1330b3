package huffpack

import (
	"fmt"
	"strconv"
)

// MaxCodeSize is the longest code a CodeTable can hold.
const MaxCodeSize = 64

// Code represents a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  Only the low Size bits are
	// used, and the most significant of those is the first bit.
	Bits uint64
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint64) Code {
	return Code{Size: size, Bits: bits}
}

// Append returns the Code with one more bit added to the end.  Any non-zero
// bit is treated as 1.
func (hc Code) Append(bit uint64) Code {
	if bit != 0 {
		bit = 1
	}
	return Code{Size: hc.Size + 1, Bits: (hc.Bits << 1) | bit}
}

// Bit returns the i'th bit of the Code, counting from the first bit.
func (hc Code) Bit(i byte) uint64 {
	return (hc.Bits >> (hc.Size - 1 - i)) & 1
}

// HasPrefix reports whether prefix is a prefix of this Code.  Every Code is a
// prefix of itself, and the empty Code is a prefix of everything.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.Size > hc.Size {
		return false
	}
	return hc.Bits>>(hc.Size-prefix.Size) == prefix.Bits
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if hc.Size == 0 {
		return "\"\""
	}
	format := "%0" + strconv.FormatUint(uint64(hc.Size), 10) + "b"
	return strconv.Quote(fmt.Sprintf(format, hc.Bits))
}

var _ fmt.Stringer = Code{}
