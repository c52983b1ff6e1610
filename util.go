package huffman

import (
	mathbits "math/bits"
)

// log2uint returns the number of bits needed to represent x, treating 0 as 1.
// A tree of total weight w is usually about log2(w) levels deep, which makes
// this a decent capacity hint for traversal stacks.
func log2uint(x uint) uint {
	if x == 0 {
		x = 1
	}
	return uint(mathbits.UintSize - mathbits.LeadingZeros(x))
}
