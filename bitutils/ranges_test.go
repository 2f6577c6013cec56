package bitutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prebid/go-gpp/errortypes"
)

func TestReadFixedBitfieldSet(t *testing.T) {
	set, err := NewBitReader(b("10101")).ReadFixedBitfieldSet(5)
	require.NoError(t, err)

	assert.Equal(t, []uint16{1, 3, 5}, set.IDs())
	assert.Equal(t, uint16(5), set.Max())
	assert.False(t, set.Contains(0))
	assert.True(t, set.Contains(1))
	assert.False(t, set.Contains(2))
	assert.True(t, set.Contains(5))
	assert.False(t, set.Contains(6))
}

func TestReadVariableBitfieldSet(t *testing.T) {
	set, err := NewBitReader(b("0000000000000101 10101")).ReadVariableBitfieldSet()
	require.NoError(t, err)
	assert.Equal(t, []uint16{1, 3, 5}, set.IDs())
	assert.Equal(t, uint16(5), set.Max())
}

func TestReadIntegerRange(t *testing.T) {
	input := "000000000010 0 0000000000000011 1 0000000000000101 0000000000001000"
	set, err := NewBitReader(b(input)).ReadIntegerRange(0)
	require.NoError(t, err)

	assert.Equal(t, []uint16{3, 5, 6, 7, 8}, set.IDs())
	assert.Equal(t, uint16(8), set.Max())
	assert.True(t, set.Contains(3))
	assert.False(t, set.Contains(4))
	assert.True(t, set.Contains(6))
	assert.False(t, set.Contains(9))
}

func TestReadIntegerRangeMalformed(t *testing.T) {
	tests := []struct {
		description string
		input       string
		maxID       uint16
	}{
		{
			description: "id zero",
			input:       "000000000001 0 0000000000000000",
		},
		{
			description: "group ends before it starts",
			input:       "000000000001 1 0000000000000101 0000000000000011",
		},
		{
			description: "entry past the declared max",
			input:       "000000000001 0 0000000000000101",
			maxID:       4,
		},
		{
			description: "descending entries",
			input:       "000000000010 0 0000000000000101 0 0000000000000011",
		},
		{
			description: "overlapping groups",
			input:       "000000000010 1 0000000000000011 0000000000000101 1 0000000000000101 0000000000001000",
		},
	}

	for _, test := range tests {
		_, err := NewBitReader(b(test.input)).ReadIntegerRange(test.maxID)
		require.Error(t, err, test.description)
		assert.IsType(t, &errortypes.MalformedSection{}, err, test.description)
	}
}

func TestReadOptimizedRange(t *testing.T) {
	tests := []struct {
		description string
		input       string
		expected    []uint16
	}{
		{
			description: "fibonacci form",
			input:       "1 000000000010 0 0011 1 011 0011",
			expected:    []uint16{3, 5, 6, 7, 8},
		},
		{
			description: "bitfield form",
			input:       "0 0000000000000101 10101",
			expected:    []uint16{1, 3, 5},
		},
	}

	for _, test := range tests {
		set, err := NewBitReader(b(test.input)).ReadOptimizedRange()
		require.NoError(t, err, test.description)
		assert.Equal(t, test.expected, set.IDs(), test.description)
	}
}

func TestReadOptimizedIntegerRange(t *testing.T) {
	tests := []struct {
		description string
		input       string
		expected    []uint16
		max         uint16
	}{
		{
			description: "range form with unbounded max",
			input:       "0000000000000000 1 000000000010 0 0000000000000011 1 0000000000000101 0000000000001000",
			expected:    []uint16{3, 5, 6, 7, 8},
			max:         8,
		},
		{
			description: "bitfield form",
			input:       "0000000000000101 0 10101",
			expected:    []uint16{1, 3, 5},
			max:         5,
		},
	}

	for _, test := range tests {
		set, err := NewBitReader(b(test.input)).ReadOptimizedIntegerRange()
		require.NoError(t, err, test.description)
		assert.Equal(t, test.expected, set.IDs(), test.description)
		assert.Equal(t, test.max, set.Max(), test.description)
	}
}

func TestReadRangeArray(t *testing.T) {
	tests := []struct {
		description string
		input       string
		expected    []Range
	}{
		{
			description: "empty",
			input:       "000000000000",
			expected:    []Range{},
		},
		{
			description: "one entry",
			input:       "000000000001 000011 01 0000000000000101 0 10101",
			expected: []Range{
				{Key: 3, Type: 1, IDs: NewIDSet([]uint16{1, 3, 5})},
			},
		},
		{
			description: "two entries",
			input: "000000000010 000011 01 0000000000000101 0 10101" +
				" 000010 10 0000000000000000 1 000000000010 0 0000000000000011 1 0000000000000101 0000000000001000",
			expected: []Range{
				{Key: 3, Type: 1, IDs: NewIDSet([]uint16{1, 3, 5})},
				{Key: 2, Type: 2, IDs: NewIDSet([]uint16{3, 5, 6, 7, 8})},
			},
		},
	}

	for _, test := range tests {
		ranges, err := NewBitReader(b(test.input)).ReadRangeArray()
		require.NoError(t, err, test.description)
		assertRangesEqual(t, test.expected, ranges, test.description)
	}
}

func TestReadFibonacciRangeArray(t *testing.T) {
	tests := []struct {
		description string
		input       string
		expected    []Range
	}{
		{
			description: "empty",
			input:       "000000000000",
			expected:    []Range{},
		},
		{
			description: "one entry",
			input:       "000000000001 000011 01 0 0000000000000101 10101",
			expected: []Range{
				{Key: 3, Type: 1, IDs: NewIDSet([]uint16{1, 3, 5})},
			},
		},
		{
			description: "two entries",
			input: "000000000010 000011 01 0 0000000000000101 10101" +
				" 000010 10 1 000000000010 0 0011 1 011 0011",
			expected: []Range{
				{Key: 3, Type: 1, IDs: NewIDSet([]uint16{1, 3, 5})},
				{Key: 2, Type: 2, IDs: NewIDSet([]uint16{3, 5, 6, 7, 8})},
			},
		},
	}

	for _, test := range tests {
		ranges, err := NewBitReader(b(test.input)).ReadFibonacciRangeArray()
		require.NoError(t, err, test.description)
		assertRangesEqual(t, test.expected, ranges, test.description)
	}
}

func assertRangesEqual(t *testing.T, expected, actual []Range, description string) {
	t.Helper()

	require.Len(t, actual, len(expected), description)
	for i := range expected {
		assert.Equal(t, expected[i].Key, actual[i].Key, description)
		assert.Equal(t, expected[i].Type, actual[i].Type, description)
		assert.Equal(t, expected[i].IDs.IDs(), actual[i].IDs.IDs(), description)
	}
}
