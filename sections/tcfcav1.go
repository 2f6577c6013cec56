package sections

import (
	"errors"
	"time"

	"github.com/prebid/go-gpp/bitutils"
	"github.com/prebid/go-gpp/constants"
	"github.com/prebid/go-gpp/errortypes"
)

const tcfCaV1Version = 1

// TcfCaV1 is the TCF Canada consent section.
type TcfCaV1 struct {
	Core TcfCaV1Core

	// nil when the segment is absent
	DisclosedVendors  bitutils.IDSet
	PublisherPurposes *TcfCaV1PublisherPurposes
}

func (s *TcfCaV1) ID() constants.SectionID {
	return constants.SectionTcfCaV1
}

type TcfCaV1Core struct {
	Created                       time.Time
	LastUpdated                   time.Time
	CmpID                         uint16
	CmpVersion                    uint16
	ConsentScreen                 uint8
	ConsentLanguage               string
	VendorListVersion             uint16
	PolicyVersion                 uint8
	UseNonStandardStacks          bool
	SpecialFeatureExpressConsents bitutils.IDSet
	PurposeExpressConsents        bitutils.IDSet
	PurposeImpliedConsents        bitutils.IDSet

	// The TCF Canada specification describes these as fibonacci-coded
	// ranges, but every known encoder writes the TCF EU integer form.
	VendorExpressConsents bitutils.IDSet
	VendorImpliedConsents bitutils.IDSet

	// Introduced in TCF Canada v1.1; empty for v1.0 strings, which end
	// right after the vendor consents.
	PubRestrictions []PublisherRestriction
}

type TcfCaV1PublisherPurposes struct {
	PurposeExpressConsents       bitutils.IDSet
	PurposeImpliedConsents       bitutils.IDSet
	CustomPurposeExpressConsents bitutils.IDSet
	CustomPurposeImpliedConsents bitutils.IDSet
}

func decodeTcfCaV1(raw string) (Section, error) {
	s := &TcfCaV1{}

	err := decodeSegmented(raw, tcfSegmentTypeBits, s.Core.decode, func(segmentType uint8, r *bitutils.BitReader) error {
		var err error
		switch segmentType {
		case tcfSegmentDisclosedVendors:
			s.DisclosedVendors, err = r.ReadOptimizedRange()
		case tcfSegmentPublisherPurposes:
			s.PublisherPurposes, err = decodeTcfCaV1PublisherPurposes(r)
		default:
			err = unknownSegmentType(segmentType)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (c *TcfCaV1Core) decode(r *bitutils.BitReader) error {
	if err := readSectionVersion(r, tcfCaV1Version); err != nil {
		return err
	}

	var err error
	if c.Created, err = r.ReadDatetime(); err != nil {
		return err
	}
	if c.LastUpdated, err = r.ReadDatetime(); err != nil {
		return err
	}

	cmpID, err := r.ReadUint(12)
	if err != nil {
		return err
	}
	c.CmpID = uint16(cmpID)

	cmpVersion, err := r.ReadUint(12)
	if err != nil {
		return err
	}
	c.CmpVersion = uint16(cmpVersion)

	consentScreen, err := r.ReadUint(6)
	if err != nil {
		return err
	}
	c.ConsentScreen = uint8(consentScreen)

	if c.ConsentLanguage, err = r.ReadString(2); err != nil {
		return err
	}

	vendorListVersion, err := r.ReadUint(12)
	if err != nil {
		return err
	}
	c.VendorListVersion = uint16(vendorListVersion)

	policyVersion, err := r.ReadUint(6)
	if err != nil {
		return err
	}
	c.PolicyVersion = uint8(policyVersion)

	if c.UseNonStandardStacks, err = r.ReadBool(); err != nil {
		return err
	}
	if c.SpecialFeatureExpressConsents, err = r.ReadFixedBitfieldSet(12); err != nil {
		return err
	}
	if c.PurposeExpressConsents, err = r.ReadFixedBitfieldSet(24); err != nil {
		return err
	}
	if c.PurposeImpliedConsents, err = r.ReadFixedBitfieldSet(24); err != nil {
		return err
	}
	if c.VendorExpressConsents, err = r.ReadOptimizedIntegerRange(); err != nil {
		return err
	}
	if c.VendorImpliedConsents, err = r.ReadOptimizedIntegerRange(); err != nil {
		return err
	}

	ranges, err := r.ReadFibonacciRangeArray()
	if err != nil {
		var truncated *errortypes.TruncatedInput
		if errors.As(err, &truncated) {
			// a v1.0 string ends here, without restrictions or padding
			return r.Skip(r.RemainingBits())
		}
		return err
	}
	c.PubRestrictions = newPublisherRestrictions(ranges)
	return nil
}

func decodeTcfCaV1PublisherPurposes(r *bitutils.BitReader) (*TcfCaV1PublisherPurposes, error) {
	p := &TcfCaV1PublisherPurposes{}

	var err error
	if p.PurposeExpressConsents, err = r.ReadFixedBitfieldSet(24); err != nil {
		return nil, err
	}
	if p.PurposeImpliedConsents, err = r.ReadFixedBitfieldSet(24); err != nil {
		return nil, err
	}

	numCustomPurposes, err := r.ReadUint(6)
	if err != nil {
		return nil, err
	}
	if p.CustomPurposeExpressConsents, err = r.ReadFixedBitfieldSet(uint(numCustomPurposes)); err != nil {
		return nil, err
	}
	if p.CustomPurposeImpliedConsents, err = r.ReadFixedBitfieldSet(uint(numCustomPurposes)); err != nil {
		return nil, err
	}
	return p, nil
}
