package sections

import (
	"time"

	"github.com/prebid/go-gpp/bitutils"
	"github.com/prebid/go-gpp/constants"
)

const tcfEuV1Version = 1

// TcfEuV1 is the deprecated IAB Europe TCF v1 consent section. It has no
// optional segments.
type TcfEuV1 struct {
	Created           time.Time
	LastUpdated       time.Time
	CmpID             uint16
	CmpVersion        uint16
	ConsentScreen     uint8
	ConsentLanguage   string
	VendorListVersion uint16
	PurposesAllowed   bitutils.IDSet
	VendorConsents    bitutils.IDSet
}

func (s *TcfEuV1) ID() constants.SectionID {
	return constants.SectionTcfEuV1
}

func decodeTcfEuV1(raw string) (Section, error) {
	r, err := newSegmentReader(raw)
	if err != nil {
		return nil, err
	}
	if err := readSectionVersion(r, tcfEuV1Version); err != nil {
		return nil, err
	}

	s := &TcfEuV1{}
	if s.Created, err = r.ReadDatetime(); err != nil {
		return nil, err
	}
	if s.LastUpdated, err = r.ReadDatetime(); err != nil {
		return nil, err
	}

	cmpID, err := r.ReadUint(12)
	if err != nil {
		return nil, err
	}
	s.CmpID = uint16(cmpID)

	cmpVersion, err := r.ReadUint(12)
	if err != nil {
		return nil, err
	}
	s.CmpVersion = uint16(cmpVersion)

	consentScreen, err := r.ReadUint(6)
	if err != nil {
		return nil, err
	}
	s.ConsentScreen = uint8(consentScreen)

	if s.ConsentLanguage, err = r.ReadString(2); err != nil {
		return nil, err
	}

	vendorListVersion, err := r.ReadUint(12)
	if err != nil {
		return nil, err
	}
	s.VendorListVersion = uint16(vendorListVersion)

	if s.PurposesAllowed, err = r.ReadFixedBitfieldSet(24); err != nil {
		return nil, err
	}
	if s.VendorConsents, err = readTcfEuV1VendorConsents(r); err != nil {
		return nil, err
	}
	if err := checkZeroPadding(r); err != nil {
		return nil, err
	}
	return s, nil
}

// readTcfEuV1VendorConsents reads the v1 vendor section. The range form
// lists exceptions to a default consent bit, so it is flattened into the
// final set of consenting vendors here.
func readTcfEuV1VendorConsents(r *bitutils.BitReader) (bitutils.IDSet, error) {
	maxVendorID, err := r.ReadUint(16)
	if err != nil {
		return nil, err
	}
	isRange, err := r.ReadBool()
	if err != nil {
		return nil, err
	}
	if !isRange {
		return r.ReadFixedBitfieldSet(uint(maxVendorID))
	}

	defaultConsent, err := r.ReadBool()
	if err != nil {
		return nil, err
	}
	listed, err := r.ReadIntegerRange(uint16(maxVendorID))
	if err != nil {
		return nil, err
	}

	consenting := make([]uint16, 0, maxVendorID)
	for id := uint64(1); id <= maxVendorID; id++ {
		if defaultConsent != listed.Contains(uint16(id)) {
			consenting = append(consenting, uint16(id))
		}
	}
	return bitutils.NewIDSet(consenting), nil
}
