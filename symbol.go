package huffman

import (
	"strconv"
	"unicode"
)

// Symbol represents a symbol in an arbitrary alphabet, usually a character.
// Negative symbols are not valid.
type Symbol rune

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(unicode.MaxRune)

// InvalidSymbol is carried by internal nodes, which never stand for a symbol
// of their own.
const InvalidSymbol = Symbol(-1)

// IsValid returns true iff this Symbol may label a leaf.
func (s Symbol) IsValid() bool {
	return s >= 0 && s <= MaxSymbol
}

// String returns the Go-quoted character for this Symbol.
func (s Symbol) String() string {
	if !s.IsValid() {
		return "InvalidSymbol"
	}
	return strconv.QuoteRune(rune(s))
}
