// Package huffman builds Huffman trees from symbol frequencies and derives
// the binary prefix code for each symbol.
//
// The flow is one-way: a FrequencyTable (or an ordered []Frequency) becomes
// a set of leaves, Build merges the leaves into a tree, and Assign walks the
// tree to produce a CodeTable.  Trees are immutable once built.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
//     <https://en.wikipedia.org/wiki/Prefix_code>
//
package huffman
