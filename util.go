package huffpack

// bytesForBits returns the number of whole bytes needed to hold n bits.
func bytesForBits(n uint64) uint64 {
	return (n + 7) / 8
}

// addSaturating returns a+b, clamped to the maximum uint64 value.
func addSaturating(a, b uint64) uint64 {
	sum := a + b
	if sum < a {
		return ^uint64(0)
	}
	return sum
}
