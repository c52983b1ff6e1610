package huffman

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// CodeTable maps each Symbol to its code, written as a string of '0' and '1'
// characters.
type CodeTable map[Symbol]string

// Assign walks the tree rooted at root and returns the code of every leaf.
// Descending left appends '0' and descending right appends '1'.
//
// A tree consisting of a single leaf assigns the empty code "" to that leaf;
// callers that need at least one bit per symbol must special-case it.
//
func Assign(root *Node) (CodeTable, error) {
	if root == nil {
		return nil, ErrEmptyInput
	}

	codes := make(CodeTable)
	dupe := InvalidSymbol
	err := root.walk(func(node *Node, path []byte) {
		if !node.IsLeaf() {
			return
		}
		if _, found := codes[node.symbol]; found && dupe == InvalidSymbol {
			dupe = node.symbol
		}
		codes[node.symbol] = string(path)
	})
	if err != nil {
		return nil, err
	}
	if dupe != InvalidSymbol {
		return nil, fmt.Errorf("%w: symbol %s appears more than once", ErrMalformedTree, dupe)
	}
	return codes, nil
}

// Codes builds the Huffman tree for a frequency table and returns its codes.
func Codes(ft FrequencyTable) (CodeTable, error) {
	root, err := NewTree(ft)
	if err != nil {
		return nil, err
	}
	return Assign(root)
}

// Symbols returns the symbols of this table in ascending order.
func (ct CodeTable) Symbols() []Symbol {
	symbols := maps.Keys(ct)
	slices.Sort(symbols)
	return symbols
}

// MinSize is the bit length of the shortest code, or 0 for an empty table.
func (ct CodeTable) MinSize() int {
	var minSize int
	first := true
	for _, code := range ct {
		if first || len(code) < minSize {
			minSize = len(code)
			first = false
		}
	}
	return minSize
}

// MaxSize is the bit length of the longest code.
func (ct CodeTable) MaxSize() int {
	var maxSize int
	for _, code := range ct {
		if len(code) > maxSize {
			maxSize = len(code)
		}
	}
	return maxSize
}

// IsPrefixFree returns true iff no code in this table is a prefix of a
// different code.  Two symbols sharing one code also count as a violation.
func (ct CodeTable) IsPrefixFree() bool {
	codes := maps.Values(ct)
	slices.Sort(codes)

	// In lexicographic order, a code that is a prefix of any other code is
	// also a prefix of its immediate successor.
	for index := 1; index < len(codes); index++ {
		if strings.HasPrefix(codes[index], codes[index-1]) {
			return false
		}
	}
	return true
}

// String returns the string representation of this CodeTable.
func (ct CodeTable) String() string {
	var buf strings.Builder
	buf.WriteByte('{')
	for index, symbol := range ct.Symbols() {
		if index != 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(symbol.String())
		buf.WriteByte(':')
		buf.WriteString(ct[symbol])
	}
	buf.WriteByte('}')
	return buf.String()
}

var _ fmt.Stringer = CodeTable(nil)

// Dump writes a programmer-readable debugging dump of this CodeTable to the
// given writer.
func (ct CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", ct.MinSize())
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", ct.MaxSize())
	for _, symbol := range ct.Symbols() {
		fmt.Fprintf(&buf, "\tEncode(%s) = %s\n", symbol, strconv.Quote(ct[symbol]))
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
