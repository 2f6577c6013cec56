package bitutils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIDSet(t *testing.T) {
	tests := []struct {
		description string
		ids         []uint16
		max         uint16
	}{
		{description: "empty", ids: []uint16{}, max: 0},
		{description: "single id", ids: []uint16{7}, max: 7},
		{description: "consecutive run", ids: []uint16{3, 4, 5, 6}, max: 6},
		{description: "mixed runs and gaps", ids: []uint16{1, 3, 5, 6, 7, 8, 100}, max: 100},
	}

	for _, test := range tests {
		set := NewIDSet(test.ids)
		assert.Equal(t, test.ids, set.IDs(), test.description)
		assert.Equal(t, test.max, set.Max(), test.description)

		members := make(map[uint16]bool, len(test.ids))
		for _, id := range test.ids {
			members[id] = true
		}
		for id := uint16(0); id <= test.max+1; id++ {
			assert.Equal(t, members[id], set.Contains(id), test.description)
		}
	}
}

// The two physical forms must be indistinguishable through the interface.
func TestIDSetFormEquivalence(t *testing.T) {
	bitfield, err := NewBitReader(b("101011")).ReadFixedBitfieldSet(6)
	require.NoError(t, err)
	ranged := NewIDSet([]uint16{1, 3, 5, 6})

	assert.Equal(t, ranged.IDs(), bitfield.IDs())
	for id := uint16(0); id <= 7; id++ {
		assert.Equal(t, ranged.Contains(id), bitfield.Contains(id), id)
	}
}

func TestIDSetMarshalJSON(t *testing.T) {
	bitfield, err := NewBitReader(b("10101")).ReadFixedBitfieldSet(5)
	require.NoError(t, err)

	for _, set := range []IDSet{bitfield, NewIDSet([]uint16{1, 3, 5})} {
		val, err := json.Marshal(set)
		require.NoError(t, err)
		assert.JSONEq(t, "[1,3,5]", string(val))
	}
}

func TestEmptyIDSet(t *testing.T) {
	set := NewIDSet(nil)
	assert.Empty(t, set.IDs())
	assert.Equal(t, uint16(0), set.Max())
	assert.False(t, set.Contains(0))
	assert.False(t, set.Contains(1))
}
