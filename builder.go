package huffman

import (
	"container/heap"
	"fmt"
	mathbits "math/bits"

	"github.com/chronos-tachyon/assert"
	"github.com/rs/zerolog"
)

// TieBreak decides which of two nodes with equal frequency is merged first
// when one of them is a leaf and the other is an internal node.
//
// Any remaining tie is broken by age: leaves in input order, then internal
// nodes in the order they were created.  Every rule yields an optimal code;
// they differ only in the exact bits assigned.
//
type TieBreak byte

const (
	// LeavesFirst treats a leaf as smaller than an internal node of equal
	// frequency.  This is the default.
	LeavesFirst TieBreak = iota

	// InternalFirst treats an internal node as smaller than a leaf of
	// equal frequency.
	InternalFirst
)

// String returns the name of this TieBreak.
func (tb TieBreak) String() string {
	switch tb {
	case LeavesFirst:
		return "LeavesFirst"
	case InternalFirst:
		return "InternalFirst"
	default:
		return fmt.Sprintf("TieBreak(%d)", byte(tb))
	}
}

var _ fmt.Stringer = TieBreak(0)

// Builder builds Huffman trees.  The zero value is ready to use.
type Builder struct {
	// TieBreak picks between a leaf and an internal node of equal
	// frequency.
	TieBreak TieBreak

	// Logger receives a Trace event per merge and a Debug event per tree.
	// If nil, nothing is logged.
	Logger *zerolog.Logger
}

// Build merges leaves into a single Huffman tree using the default Builder.
func Build(leaves []*Node) (*Node, error) {
	return Builder{}.Build(leaves)
}

// NewTree builds the Huffman tree for a frequency table, taking the leaves in
// ascending Symbol order.
func NewTree(ft FrequencyTable) (*Node, error) {
	leaves, err := ft.Leaves()
	if err != nil {
		return nil, err
	}
	return Build(leaves)
}

// Build merges leaves into a single Huffman tree and returns its root.
//
// The two nodes of smallest frequency are repeatedly replaced by a new
// internal node whose left child is the first one removed and whose right
// child is the second.  A single leaf is returned as-is.
//
// Every input must be a distinct leaf.  The input slice is not modified.
//
func (b Builder) Build(leaves []*Node) (*Node, error) {
	logger := b.logger()

	numLeaves := len(leaves)
	if numLeaves == 0 {
		return nil, ErrEmptyInput
	}

	seen := make(map[Symbol]struct{}, numLeaves)
	items := make([]nodeAndSeq, 0, numLeaves)
	var total uint64
	for index, leaf := range leaves {
		if leaf == nil || !leaf.IsLeaf() {
			return nil, fmt.Errorf("leaf %d: %w: %v", index, ErrNotLeaf, leaf)
		}
		if _, found := seen[leaf.symbol]; found {
			return nil, fmt.Errorf("leaf %d: %w: %s", index, ErrDuplicateSymbol, leaf.symbol)
		}
		seen[leaf.symbol] = struct{}{}

		// The root's frequency is the total, so checking it up front
		// covers every partial sum computed while merging.
		var carry uint64
		total, carry = mathbits.Add64(total, leaf.freq, 0)
		if carry != 0 {
			return nil, fmt.Errorf("leaf %d: %w", index, ErrOverflow)
		}

		items = append(items, nodeAndSeq{node: leaf, seq: uint(index)})
	}

	if numLeaves == 1 {
		logger.Debug().
			Int("leaves", 1).
			Uint64("frequency", total).
			Msg("huffman: single-leaf tree")
		return leaves[0], nil
	}

	// Step 1: build a minheap.

	h := nodeHeap{list: items, tieBreak: b.TieBreak}
	h.Init()

	// Step 2: pop two nodes, merge them into a new internal node, and push
	// it back.  Sequence numbers keep growing past the leaves, so newer
	// internal nodes lose ties against older ones.

	nextSeq := uint(numLeaves)
	for h.Len() > 1 {
		left := heap.Pop(&h).(nodeAndSeq).node
		right := heap.Pop(&h).(nodeAndSeq).node

		merged := newInternal(left, right, left.freq+right.freq)
		logger.Trace().
			Uint64("left", left.freq).
			Uint64("right", right.freq).
			Uint64("merged", merged.freq).
			Msg("huffman: merge")

		heap.Push(&h, nodeAndSeq{node: merged, seq: nextSeq})
		nextSeq++
	}

	root := heap.Pop(&h).(nodeAndSeq).node
	assert.Assertf(root.freq == total, "root frequency %d != total %d", root.freq, total)

	if e := logger.Debug(); e.Enabled() {
		e.Int("leaves", numLeaves).
			Uint64("frequency", root.freq).
			Int("height", root.Height()).
			Stringer("tieBreak", b.TieBreak).
			Msg("huffman: built tree")
	}
	return root, nil
}

func (b Builder) logger() *zerolog.Logger {
	if b.Logger == nil {
		nop := zerolog.Nop()
		return &nop
	}
	return b.Logger
}

// type nodeAndSeq + type nodeHeap {{{

type nodeAndSeq struct {
	node *Node
	seq  uint
}

type nodeHeap struct {
	list     []nodeAndSeq
	tieBreak TieBreak
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.node.freq != b.node.freq {
		return a.node.freq < b.node.freq
	}
	if aLeaf, bLeaf := a.node.IsLeaf(), b.node.IsLeaf(); aLeaf != bLeaf {
		if h.tieBreak == InternalFirst {
			return bLeaf
		}
		return aLeaf
	}
	return a.seq < b.seq
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(nodeAndSeq))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = nodeAndSeq{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
