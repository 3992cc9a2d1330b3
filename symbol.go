package huffpack

// Symbol represents one input byte.  The alphabet is always the full range of
// byte values, so every Symbol is valid.
type Symbol byte

// NumSymbols is the size of the alphabet.
const NumSymbols = 256

// MaxSymbol is the last Symbol in the alphabet.
const MaxSymbol = Symbol(NumSymbols - 1)
