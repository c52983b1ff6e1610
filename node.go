package huffman

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// Node is one node of a Huffman tree: either a leaf standing for a Symbol, or
// an internal node with exactly two children whose frequency is the sum of
// theirs.  Nodes are never mutated after construction.
type Node struct {
	freq   uint64
	symbol Symbol
	left   *Node
	right  *Node
}

// NewLeaf constructs a leaf for the given Symbol and frequency.  The symbol
// must be valid.
func NewLeaf(symbol Symbol, freq uint64) *Node {
	assert.Assertf(symbol.IsValid(), "invalid symbol %d", int32(symbol))
	return &Node{freq: freq, symbol: symbol}
}

func newInternal(left *Node, right *Node, freq uint64) *Node {
	assert.Assertf(left != nil && right != nil, "internal node needs two children")
	return &Node{freq: freq, symbol: InvalidSymbol, left: left, right: right}
}

// Frequency returns the weight of this node.  For internal nodes, this is the
// sum of the frequencies of all leaves below it.
func (n *Node) Frequency() uint64 {
	return n.freq
}

// Symbol returns the Symbol of a leaf, or InvalidSymbol for internal nodes.
func (n *Node) Symbol() Symbol {
	return n.symbol
}

// Left returns the child reached by a '0' bit, or nil for leaves.
func (n *Node) Left() *Node {
	return n.left
}

// Right returns the child reached by a '1' bit, or nil for leaves.
func (n *Node) Right() *Node {
	return n.right
}

// IsLeaf returns true iff this node has no children.
func (n *Node) IsLeaf() bool {
	return n.left == nil && n.right == nil
}

// Leaves returns the leaves of the tree rooted at this node, in pre-order
// (left subtree before right subtree).
func (n *Node) Leaves() []*Node {
	var out []*Node
	_ = n.walk(func(node *Node, _ []byte) {
		if node.IsLeaf() {
			out = append(out, node)
		}
	})
	return out
}

// Height returns the number of edges on the longest path from this node to
// a leaf.  A lone leaf has height 0.
func (n *Node) Height() int {
	var height int
	_ = n.walk(func(_ *Node, path []byte) {
		if len(path) > height {
			height = len(path)
		}
	})
	return height
}

// String returns a one-line description of this node.
func (n *Node) String() string {
	if n == nil {
		return "nil"
	}
	if n.IsLeaf() {
		return fmt.Sprintf("Leaf(%s, %d)", n.symbol, n.freq)
	}
	return fmt.Sprintf("Node(%d)", n.freq)
}

var _ fmt.Stringer = (*Node)(nil)

// Dump writes a programmer-readable debugging dump of the tree rooted at this
// node to the given writer, one node per line, indented by depth and
// prefixed with the bit of the edge leading to it.
func (n *Node) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	err := n.walk(func(node *Node, path []byte) {
		if depth := len(path); depth != 0 {
			buf.WriteString(strings.Repeat("\t", depth-1))
			buf.WriteByte(path[depth-1])
			buf.WriteString(": ")
		}
		buf.WriteString(node.String())
		buf.WriteByte('\n')
	})
	if err != nil {
		return 0, err
	}
	return buf.WriteTo(w)
}
