package huffman

import (
	"fmt"
	mathbits "math/bits"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Frequency pairs a Symbol with its number of occurrences.  A []Frequency is
// the ordered form of a frequency table; its order decides how ties between
// leaves are broken.
type Frequency struct {
	Symbol Symbol
	Count  uint64
}

// String returns the string representation of this Frequency.
func (f Frequency) String() string {
	return fmt.Sprintf("%s:%d", f.Symbol, f.Count)
}

// FrequencyTable maps each Symbol to its number of occurrences.
type FrequencyTable map[Symbol]uint64

// Entries returns the contents of this table sorted by ascending Symbol.
func (ft FrequencyTable) Entries() []Frequency {
	symbols := maps.Keys(ft)
	slices.Sort(symbols)
	out := make([]Frequency, len(symbols))
	for index, symbol := range symbols {
		out[index] = Frequency{Symbol: symbol, Count: ft[symbol]}
	}
	return out
}

// Total returns the sum of all frequencies in this table.
func (ft FrequencyTable) Total() (uint64, error) {
	var total uint64
	for _, freq := range ft {
		sum, carry := mathbits.Add64(total, freq, 0)
		if carry != 0 {
			return 0, ErrOverflow
		}
		total = sum
	}
	return total, nil
}

// Leaves returns one leaf per entry, ordered by ascending Symbol.
func (ft FrequencyTable) Leaves() ([]*Node, error) {
	return NewLeaves(ft.Entries())
}

// NewLeaves returns one leaf per entry, in the same order as the entries.
// Symbols must be valid and must not repeat.
func NewLeaves(entries []Frequency) ([]*Node, error) {
	seen := make(map[Symbol]struct{}, len(entries))
	out := make([]*Node, 0, len(entries))
	for index, entry := range entries {
		if !entry.Symbol.IsValid() {
			return nil, fmt.Errorf("entry %d: %w: %d", index, ErrInvalidSymbol, int32(entry.Symbol))
		}
		if _, found := seen[entry.Symbol]; found {
			return nil, fmt.Errorf("entry %d: %w: %s", index, ErrDuplicateSymbol, entry.Symbol)
		}
		seen[entry.Symbol] = struct{}{}
		out = append(out, NewLeaf(entry.Symbol, entry.Count))
	}
	return out, nil
}
