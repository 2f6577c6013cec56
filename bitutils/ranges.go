package bitutils

import (
	"fmt"

	"github.com/prebid/go-gpp/errortypes"
)

// ReadFixedBitfieldSet reads n membership bits into an IDSet, bit i marking
// id i+1.
func (r *BitReader) ReadFixedBitfieldSet(n uint) (IDSet, error) {
	bits, err := r.ReadFixedBitfield(n)
	if err != nil {
		return nil, err
	}
	return &bitfieldSet{bits: bits}, nil
}

// ReadVariableBitfieldSet reads a 16-bit length followed by that many
// membership bits.
func (r *BitReader) ReadVariableBitfieldSet() (IDSet, error) {
	n, err := r.ReadUint(16)
	if err != nil {
		return nil, err
	}
	return r.ReadFixedBitfieldSet(uint(n))
}

// ReadIntegerRange reads a 12-bit entry count followed by that many range
// entries, each either a single 16-bit id or a pair of 16-bit bounds.
// Entries must be ascending and non-overlapping, with ids starting at 1 and,
// when maxID is non-zero, never exceeding it.
func (r *BitReader) ReadIntegerRange(maxID uint16) (IDSet, error) {
	numEntries, err := r.ReadUint(12)
	if err != nil {
		return nil, err
	}

	entries := make([]idRange, 0, numEntries)
	prevEnd := uint16(0)
	for i := uint64(0); i < numEntries; i++ {
		isGroup, err := r.ReadBool()
		if err != nil {
			return nil, err
		}

		start, err := r.ReadUint(16)
		if err != nil {
			return nil, err
		}
		end := start
		if isGroup {
			if end, err = r.ReadUint(16); err != nil {
				return nil, err
			}
		}

		switch {
		case start == 0:
			return nil, &errortypes.MalformedSection{
				Message: fmt.Sprintf("range entry %d uses id 0, but ids start at 1", i),
			}
		case end < start:
			return nil, &errortypes.MalformedSection{
				Message: fmt.Sprintf("range entry %d ends at %d before its start %d", i, end, start),
			}
		case maxID != 0 && end > uint64(maxID):
			return nil, &errortypes.MalformedSection{
				Message: fmt.Sprintf("range entry %d ends at %d, past the declared max id %d", i, end, maxID),
			}
		case uint64(prevEnd) >= start:
			return nil, &errortypes.MalformedSection{
				Message: fmt.Sprintf("range entry %d starts at %d, which does not follow the previous entry ending at %d", i, start, prevEnd),
			}
		}

		entries = append(entries, idRange{start: uint16(start), end: uint16(end)})
		prevEnd = uint16(end)
	}

	max := maxID
	if max == 0 {
		max = prevEnd
	}
	return &rangeSet{entries: entries, max: max}, nil
}

// ReadOptimizedIntegerRange reads a 16-bit max id and a 1-bit form selector:
// a range list bounded by the max, or a fixed bitfield of max bits.
func (r *BitReader) ReadOptimizedIntegerRange() (IDSet, error) {
	maxID, err := r.ReadUint(16)
	if err != nil {
		return nil, err
	}
	isRange, err := r.ReadBool()
	if err != nil {
		return nil, err
	}

	if isRange {
		return r.ReadIntegerRange(uint16(maxID))
	}
	return r.ReadFixedBitfieldSet(uint(maxID))
}

// ReadOptimizedRange reads a 1-bit form selector: a fibonacci delta range, or
// a 16-bit-length-prefixed bitfield.
func (r *BitReader) ReadOptimizedRange() (IDSet, error) {
	isFibonacci, err := r.ReadBool()
	if err != nil {
		return nil, err
	}

	if isFibonacci {
		ids, err := r.ReadFibonacciRange()
		if err != nil {
			return nil, err
		}
		return NewIDSet(ids), nil
	}
	return r.ReadVariableBitfieldSet()
}

// Range pairs a 6-bit key and a 2-bit type with the id set they apply to.
type Range struct {
	Key  uint8
	Type uint8
	IDs  IDSet
}

// ReadRangeArray reads a 12-bit count of Range entries whose id sets are
// optimized integer ranges.
func (r *BitReader) ReadRangeArray() ([]Range, error) {
	return r.readRanges((*BitReader).ReadOptimizedIntegerRange)
}

// ReadFibonacciRangeArray reads a 12-bit count of Range entries whose id
// sets are optimized ranges.
func (r *BitReader) ReadFibonacciRangeArray() ([]Range, error) {
	return r.readRanges((*BitReader).ReadOptimizedRange)
}

func (r *BitReader) readRanges(readIDs func(*BitReader) (IDSet, error)) ([]Range, error) {
	numEntries, err := r.ReadUint(12)
	if err != nil {
		return nil, err
	}

	ranges := make([]Range, 0, numEntries)
	for i := uint64(0); i < numEntries; i++ {
		key, err := r.ReadUint(6)
		if err != nil {
			return nil, err
		}
		rangeType, err := r.ReadUint(2)
		if err != nil {
			return nil, err
		}
		ids, err := readIDs(r)
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, Range{Key: uint8(key), Type: uint8(rangeType), IDs: ids})
	}
	return ranges, nil
}
