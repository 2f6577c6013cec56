package bitutils

import (
	"fmt"

	"github.com/prebid/go-gpp/errortypes"
)

// ReadFibonacciInt reads a fibonacci-coded integer. Each bit marks a term of
// the sequence 1, 2, 3, 5, 8, ...; two consecutive set bits terminate the
// value, with the final set bit not contributing a term. Terms too large for
// a uint64 are ignored.
func (r *BitReader) ReadFibonacciInt() (uint64, error) {
	var total uint64
	cur, next := uint64(1), uint64(2)
	lastBit := false

	for {
		bit, err := r.ReadBool()
		if err != nil {
			return 0, err
		}
		if bit && lastBit {
			return total, nil
		}
		if bit {
			total += cur
		}
		lastBit = bit

		if cur != 0 {
			if sum := cur + next; sum > next {
				cur, next = next, sum
			} else {
				cur, next = 0, 0
			}
		}
	}
}

// ReadFibonacciRange reads a 12-bit entry count followed by that many delta
// entries, each either a single id (1-bit zero, then a fibonacci delta from
// the previous id) or a group (1-bit one, then a fibonacci delta offset and
// a fibonacci length). The returned ids are strictly ascending.
func (r *BitReader) ReadFibonacciRange() ([]uint16, error) {
	numEntries, err := r.ReadUint(12)
	if err != nil {
		return nil, err
	}

	ids := make([]uint16, 0, numEntries)
	lastID := uint64(0)
	for i := uint64(0); i < numEntries; i++ {
		isGroup, err := r.ReadBool()
		if err != nil {
			return nil, err
		}

		if isGroup {
			offset, err := r.ReadFibonacciInt()
			if err != nil {
				return nil, err
			}
			count, err := r.ReadFibonacciInt()
			if err != nil {
				return nil, err
			}
			start := lastID + offset
			end := start + count
			if end > maxID16 {
				return nil, fibonacciRangeOverflow(end)
			}
			for id := start; id <= end; id++ {
				ids = append(ids, uint16(id))
			}
			lastID = end
		} else {
			delta, err := r.ReadFibonacciInt()
			if err != nil {
				return nil, err
			}
			id := lastID + delta
			if id > maxID16 {
				return nil, fibonacciRangeOverflow(id)
			}
			ids = append(ids, uint16(id))
			lastID = id
		}
	}
	return ids, nil
}

const maxID16 = 0xFFFF

func fibonacciRangeOverflow(id uint64) error {
	return &errortypes.MalformedSection{
		Message: fmt.Sprintf("fibonacci range id %d exceeds the 16-bit id space", id),
	}
}
