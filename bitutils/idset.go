package bitutils

import (
	"encoding/json"
	"sort"
)

// IDSet is a set of ids decoded from a bitfield or a range list. Callers see
// only the logical set; the physical encoding stays hidden behind it.
type IDSet interface {
	// Contains reports whether id is a member. Ids outside the set's
	// range are simply not members, never an error.
	Contains(id uint16) bool

	// Max returns the largest id the set can speak about.
	Max() uint16

	// IDs returns the members in ascending order.
	IDs() []uint16
}

// NewIDSet builds an IDSet from a list of ids, which must be strictly
// ascending.
func NewIDSet(ids []uint16) IDSet {
	entries := make([]idRange, 0)
	for _, id := range ids {
		if n := len(entries); n > 0 && entries[n-1].end+1 == id {
			entries[n-1].end = id
		} else {
			entries = append(entries, idRange{start: id, end: id})
		}
	}

	var max uint16
	if len(entries) > 0 {
		max = entries[len(entries)-1].end
	}
	return &rangeSet{entries: entries, max: max}
}

type idRange struct {
	start uint16
	end   uint16
}

// bitfieldSet keeps one bit per id, with id 1 at index 0.
type bitfieldSet struct {
	bits []bool
}

func (s *bitfieldSet) Contains(id uint16) bool {
	return id >= 1 && uint(id) <= uint(len(s.bits)) && s.bits[id-1]
}

func (s *bitfieldSet) Max() uint16 {
	return uint16(len(s.bits))
}

func (s *bitfieldSet) IDs() []uint16 {
	ids := make([]uint16, 0)
	for i, set := range s.bits {
		if set {
			ids = append(ids, uint16(i)+1)
		}
	}
	return ids
}

func (s *bitfieldSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.IDs())
}

// rangeSet keeps ascending, non-overlapping id ranges and answers membership
// with a binary search.
type rangeSet struct {
	entries []idRange
	max     uint16
}

func (s *rangeSet) Contains(id uint16) bool {
	i := sort.Search(len(s.entries), func(i int) bool {
		return s.entries[i].end >= id
	})
	return i < len(s.entries) && s.entries[i].start <= id
}

func (s *rangeSet) Max() uint16 {
	return s.max
}

func (s *rangeSet) IDs() []uint16 {
	ids := make([]uint16, 0)
	for _, e := range s.entries {
		for id := uint(e.start); id <= uint(e.end); id++ {
			ids = append(ids, uint16(id))
		}
	}
	return ids
}

func (s *rangeSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.IDs())
}
