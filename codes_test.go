package huffman

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssign_SixSymbols(t *testing.T) {
	codes, err := Codes(sixSymbols())
	require.NoError(t, err)

	expect := CodeTable{
		'a': "1100",
		'b': "1101",
		'c': "100",
		'd': "101",
		'e': "111",
		'f': "0",
	}
	if diff := cmp.Diff(expect, codes); diff != "" {
		t.Errorf("wrong codes (-expect +actual):\n%s", diff)
	}
	assert.True(t, codes.IsPrefixFree())
}

func TestAssign_SevenSymbols(t *testing.T) {
	codes, err := Codes(sevenSymbols())
	require.NoError(t, err)

	expect := CodeTable{
		'a': "000",
		'b': "0011",
		'c': "0010",
		'd': "011",
		'e': "010",
		'f': "10",
		'g': "11",
	}
	if diff := cmp.Diff(expect, codes); diff != "" {
		t.Errorf("wrong codes (-expect +actual):\n%s", diff)
	}
	assert.True(t, codes.IsPrefixFree())
	assert.GreaterOrEqual(t, len(codes['c']), len(codes['g']))
}

func TestAssign_Idempotent(t *testing.T) {
	root, err := NewTree(sevenSymbols())
	require.NoError(t, err)

	first, err := Assign(root)
	require.NoError(t, err)
	second, err := Assign(root)
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("codes changed between runs (-first +second):\n%s", diff)
	}
}

func TestAssign_SingleLeaf(t *testing.T) {
	codes, err := Codes(FrequencyTable{'z': 3})
	require.NoError(t, err)
	assert.Equal(t, CodeTable{'z': ""}, codes)
	assert.Equal(t, 0, codes.MinSize())
	assert.Equal(t, 0, codes.MaxSize())
}

func TestAssign_Errors(t *testing.T) {
	type testRow struct {
		name string
		root *Node
		err  error
	}

	testData := [...]testRow{
		{
			name: "nil",
			root: nil,
			err:  ErrEmptyInput,
		},
		{
			name: "left-only",
			root: &Node{freq: 1, symbol: InvalidSymbol, left: NewLeaf('a', 1)},
			err:  ErrMalformedTree,
		},
		{
			name: "deep-right-only",
			root: newInternal(NewLeaf('a', 1), &Node{freq: 1, symbol: InvalidSymbol, right: NewLeaf('b', 1)}, 2),
			err:  ErrMalformedTree,
		},
		{
			name: "repeated-symbol",
			root: newInternal(NewLeaf('a', 1), NewLeaf('a', 2), 3),
			err:  ErrMalformedTree,
		},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			codes, err := Assign(row.root)
			assert.Nil(t, codes)
			if !errors.Is(err, row.err) {
				t.Errorf("expected %v, got %v", row.err, err)
			}
		})
	}
}

func TestCodes_Errors(t *testing.T) {
	_, err := Codes(FrequencyTable{})
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = Codes(FrequencyTable{-5: 1})
	assert.ErrorIs(t, err, ErrInvalidSymbol)
}

func TestCodeTable_IsPrefixFree(t *testing.T) {
	type testRow struct {
		name   string
		codes  CodeTable
		expect bool
	}

	testData := [...]testRow{
		{name: "empty", codes: CodeTable{}, expect: true},
		{name: "single-empty", codes: CodeTable{'a': ""}, expect: true},
		{name: "valid", codes: CodeTable{'a': "0", 'b': "10", 'c': "11"}, expect: true},
		{name: "prefix", codes: CodeTable{'a': "0", 'b': "01", 'c': "11"}, expect: false},
		{name: "non-adjacent", codes: CodeTable{'a': "1", 'b': "10", 'c': "100", 'd': "0"}, expect: false},
		{name: "same-code", codes: CodeTable{'a': "01", 'b': "01"}, expect: false},
		{name: "empty-and-other", codes: CodeTable{'a': "", 'b': "1"}, expect: false},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			assert.Equal(t, row.expect, row.codes.IsPrefixFree())
		})
	}
}

func TestCodeTable_Symbols(t *testing.T) {
	codes := CodeTable{'c': "11", 'a': "0", 'b': "10"}
	assert.Equal(t, []Symbol{'a', 'b', 'c'}, codes.Symbols())
}

func TestCodeTable_String(t *testing.T) {
	codes := CodeTable{'c': "11", 'a': "0", 'b': "10"}
	assert.Equal(t, "{'a':0, 'b':10, 'c':11}", codes.String())
}

func TestCodeTable_Dump(t *testing.T) {
	codes, err := Codes(sixSymbols())
	require.NoError(t, err)

	expectDump := strings.Join([]string{
		"CodeTable{\n",
		"\tMinSize() = 1\n",
		"\tMaxSize() = 4\n",
		"\tEncode('a') = \"1100\"\n",
		"\tEncode('b') = \"1101\"\n",
		"\tEncode('c') = \"100\"\n",
		"\tEncode('d') = \"101\"\n",
		"\tEncode('e') = \"111\"\n",
		"\tEncode('f') = \"0\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = codes.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}
