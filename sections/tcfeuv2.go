package sections

import (
	"time"

	"github.com/prebid/go-gpp/bitutils"
	"github.com/prebid/go-gpp/constants"
)

const (
	tcfEuV2Version = 2

	tcfSegmentDisclosedVendors  = 1
	tcfSegmentAllowedVendors    = 2
	tcfSegmentPublisherPurposes = 3

	// optional TCF segments carry a 3-bit segment type
	tcfSegmentTypeBits = 3
)

// RestrictionType says how a publisher restricts a purpose for the listed
// vendors. TCF Canada reads value 1 as requiring express consent and value 2
// as requiring implied consent.
type RestrictionType uint8

const (
	RestrictionNotAllowed RestrictionType = iota
	RestrictionRequireConsent
	RestrictionRequireLegitimateInterest
	RestrictionUndefined
)

// PublisherRestriction overrides the legal basis of one purpose for a set of
// vendors.
type PublisherRestriction struct {
	PurposeID       uint8
	RestrictionType RestrictionType
	VendorIDs       bitutils.IDSet
}

func newPublisherRestrictions(ranges []bitutils.Range) []PublisherRestriction {
	restrictions := make([]PublisherRestriction, 0, len(ranges))
	for _, rng := range ranges {
		restrictionType := RestrictionType(rng.Type)
		if restrictionType > RestrictionUndefined {
			restrictionType = RestrictionUndefined
		}
		restrictions = append(restrictions, PublisherRestriction{
			PurposeID:       rng.Key,
			RestrictionType: restrictionType,
			VendorIDs:       rng.IDs,
		})
	}
	return restrictions
}

// TcfEuV2 is the IAB Europe TCF v2 consent section.
type TcfEuV2 struct {
	Core TcfEuV2Core

	// nil when the segment is absent
	DisclosedVendors  bitutils.IDSet
	AllowedVendors    bitutils.IDSet
	PublisherPurposes *TcfEuV2PublisherPurposes
}

func (s *TcfEuV2) ID() constants.SectionID {
	return constants.SectionTcfEuV2
}

type TcfEuV2Core struct {
	Created                    time.Time
	LastUpdated                time.Time
	CmpID                      uint16
	CmpVersion                 uint16
	ConsentScreen              uint8
	ConsentLanguage            string
	VendorListVersion          uint16
	PolicyVersion              uint8
	IsServiceSpecific          bool
	UseNonStandardStacks       bool
	SpecialFeatureOptIns       bitutils.IDSet
	PurposeConsents            bitutils.IDSet
	PurposeLegitimateInterests bitutils.IDSet
	PurposeOneTreatment        bool
	PublisherCountryCode       string
	VendorConsents             bitutils.IDSet
	VendorLegitimateInterests  bitutils.IDSet
	PublisherRestrictions      []PublisherRestriction
}

type TcfEuV2PublisherPurposes struct {
	Consents                  bitutils.IDSet
	LegitimateInterests       bitutils.IDSet
	CustomConsents            bitutils.IDSet
	CustomLegitimateInterests bitutils.IDSet
}

func decodeTcfEuV2(raw string) (Section, error) {
	s := &TcfEuV2{}

	err := decodeSegmented(raw, tcfSegmentTypeBits, s.Core.decode, func(segmentType uint8, r *bitutils.BitReader) error {
		var err error
		switch segmentType {
		case tcfSegmentDisclosedVendors:
			s.DisclosedVendors, err = r.ReadOptimizedIntegerRange()
		case tcfSegmentAllowedVendors:
			s.AllowedVendors, err = r.ReadOptimizedIntegerRange()
		case tcfSegmentPublisherPurposes:
			s.PublisherPurposes, err = decodeTcfEuV2PublisherPurposes(r)
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

func (c *TcfEuV2Core) decode(r *bitutils.BitReader) error {
	if err := readSectionVersion(r, tcfEuV2Version); err != nil {
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

	if c.IsServiceSpecific, err = r.ReadBool(); err != nil {
		return err
	}
	if c.UseNonStandardStacks, err = r.ReadBool(); err != nil {
		return err
	}
	if c.SpecialFeatureOptIns, err = r.ReadFixedBitfieldSet(12); err != nil {
		return err
	}
	if c.PurposeConsents, err = r.ReadFixedBitfieldSet(24); err != nil {
		return err
	}
	if c.PurposeLegitimateInterests, err = r.ReadFixedBitfieldSet(24); err != nil {
		return err
	}
	if c.PurposeOneTreatment, err = r.ReadBool(); err != nil {
		return err
	}
	if c.PublisherCountryCode, err = r.ReadString(2); err != nil {
		return err
	}
	if c.VendorConsents, err = r.ReadOptimizedIntegerRange(); err != nil {
		return err
	}
	if c.VendorLegitimateInterests, err = r.ReadOptimizedIntegerRange(); err != nil {
		return err
	}

	ranges, err := r.ReadRangeArray()
	if err != nil {
		return err
	}
	c.PublisherRestrictions = newPublisherRestrictions(ranges)
	return nil
}

func decodeTcfEuV2PublisherPurposes(r *bitutils.BitReader) (*TcfEuV2PublisherPurposes, error) {
	p := &TcfEuV2PublisherPurposes{}

	var err error
	if p.Consents, err = r.ReadFixedBitfieldSet(24); err != nil {
		return nil, err
	}
	if p.LegitimateInterests, err = r.ReadFixedBitfieldSet(24); err != nil {
		return nil, err
	}

	numCustomPurposes, err := r.ReadUint(6)
	if err != nil {
		return nil, err
	}
	if p.CustomConsents, err = r.ReadFixedBitfieldSet(uint(numCustomPurposes)); err != nil {
		return nil, err
	}
	if p.CustomLegitimateInterests, err = r.ReadFixedBitfieldSet(uint(numCustomPurposes)); err != nil {
		return nil, err
	}
	return p, nil
}
