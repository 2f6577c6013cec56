package sections

import (
	"fmt"
	"strings"

	"github.com/prebid/go-gpp/bitutils"
	"github.com/prebid/go-gpp/constants"
	"github.com/prebid/go-gpp/errortypes"
)

// Section is one decoded GPP section.
type Section interface {
	ID() constants.SectionID
}

type decodeFunc func(raw string) (Section, error)

var decoders = map[constants.SectionID]decodeFunc{
	constants.SectionTcfEuV1: decodeTcfEuV1,
	constants.SectionTcfEuV2: decodeTcfEuV2,
	constants.SectionTcfCaV1: decodeTcfCaV1,
	constants.SectionUspV1:   decodeUspV1,
	constants.SectionUsNat:   decodeUsNat,
	constants.SectionUsCa:    decodeUsCa,
	constants.SectionUsVa:    decodeUsVa,
	constants.SectionUsCo:    decodeUsCo,
	constants.SectionUsUt:    decodeUsUt,
	constants.SectionUsCt:    decodeUsCt,
	constants.SectionUsFl:    decodeUsFl,
	constants.SectionUsMt:    decodeUsMt,
	constants.SectionUsOr:    decodeUsOr,
	constants.SectionUsTx:    decodeUsTx,
	constants.SectionUsDe:    decodeUsDe,
	constants.SectionUsIa:    decodeUsIa,
	constants.SectionUsNe:    decodeUsNe,
	constants.SectionUsNh:    decodeUsNh,
	constants.SectionUsNj:    decodeUsNj,
	constants.SectionUsTn:    decodeUsTn,
}

// Supported reports whether this build has a decoder for the given id.
func Supported(id constants.SectionID) bool {
	return decoders[id] != nil
}

// Decode decodes the raw text of one section. Ids without a registered
// decoder fail with errortypes.UnsupportedSection.
func Decode(id constants.SectionID, raw string) (Section, error) {
	decode := decoders[id]
	if decode == nil {
		return nil, &errortypes.UnsupportedSection{
			Message: fmt.Sprintf("no decoder for section %s (id %d)", id, int(id)),
		}
	}
	return decode(raw)
}

// newSegmentReader base64-decodes one segment into a bit reader.
func newSegmentReader(segment string) (*bitutils.BitReader, error) {
	data, err := bitutils.DecodeBase64URL(segment)
	if err != nil {
		return nil, err
	}
	return bitutils.NewBitReader(data), nil
}

// checkZeroPadding consumes the bits left after the final field of a
// segment, which must all be zero.
func checkZeroPadding(r *bitutils.BitReader) error {
	for r.RemainingBits() > 0 {
		n := r.RemainingBits()
		if n > 64 {
			n = 64
		}
		val, err := r.ReadUint(n)
		if err != nil {
			return err
		}
		if val != 0 {
			return &errortypes.MalformedSection{
				Message: "trailing padding bits are not zero",
			}
		}
	}
	return nil
}

// readSectionVersion checks the 6-bit version at the start of a core segment.
func readSectionVersion(r *bitutils.BitReader, expected uint8) error {
	version, err := r.ReadUint(6)
	if err != nil {
		return err
	}
	if uint8(version) != expected {
		return &errortypes.MalformedSection{
			Message: fmt.Sprintf("unknown segment version %d, expected %d", version, expected),
		}
	}
	return nil
}

// decodeSegmented splits a section string on '.' and decodes the leading
// core segment with core. Every further segment starts with a typeBits-wide
// segment type and is handed to segment; a type may appear at most once.
func decodeSegmented(raw string, typeBits uint, core func(*bitutils.BitReader) error, segment func(uint8, *bitutils.BitReader) error) error {
	parts := strings.Split(raw, ".")

	r, err := newSegmentReader(parts[0])
	if err != nil {
		return err
	}
	if err := core(r); err != nil {
		return err
	}
	if err := checkZeroPadding(r); err != nil {
		return err
	}

	seen := make(map[uint8]bool, len(parts)-1)
	for _, part := range parts[1:] {
		r, err := newSegmentReader(part)
		if err != nil {
			return err
		}
		segmentType, err := r.ReadUint(typeBits)
		if err != nil {
			return err
		}
		if seen[uint8(segmentType)] {
			return &errortypes.MalformedSection{
				Message: fmt.Sprintf("duplicate segment type %d", segmentType),
			}
		}
		seen[uint8(segmentType)] = true

		if err := segment(uint8(segmentType), r); err != nil {
			return err
		}
		if err := checkZeroPadding(r); err != nil {
			return err
		}
	}
	return nil
}

func unknownSegmentType(segmentType uint8) error {
	return &errortypes.MalformedSection{
		Message: fmt.Sprintf("unknown segment type %d", segmentType),
	}
}
