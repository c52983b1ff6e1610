package huffman

import (
	"errors"
)

var (
	// ErrEmptyInput is returned when there is nothing to build a tree from,
	// or no tree to assign codes to.
	ErrEmptyInput = errors.New("huffman: empty input")

	// ErrMalformedTree is returned when a traversal finds a node with
	// exactly one child, or reaches the same symbol twice.
	ErrMalformedTree = errors.New("huffman: malformed tree")

	// ErrNotLeaf is returned by Build when an input node is nil or already
	// has children.
	ErrNotLeaf = errors.New("huffman: input node is not a leaf")

	// ErrDuplicateSymbol is returned when the same symbol is supplied twice.
	ErrDuplicateSymbol = errors.New("huffman: duplicate symbol")

	// ErrInvalidSymbol is returned for symbols outside [0, MaxSymbol].
	ErrInvalidSymbol = errors.New("huffman: invalid symbol")

	// ErrOverflow is returned when the sum of frequencies does not fit in
	// a uint64.
	ErrOverflow = errors.New("huffman: frequency sum overflows uint64")
)
