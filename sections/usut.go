package sections

import (
	"github.com/prebid/go-gpp/bitutils"
	"github.com/prebid/go-gpp/constants"
)

// UsUt is the Utah section. It has no GPC segment.
type UsUt struct {
	Core UsUtCore
}

func (s *UsUt) ID() constants.SectionID {
	return constants.SectionUsUt
}

// Validate checks the MSPA consistency rules the section is subject to.
// A decoded section may still carry combinations the MSPA forbids; decoding
// and validation are deliberately separate.
func (s *UsUt) Validate() []error {
	return validateMspaCore(
		s.Core.SaleOptOutNotice, s.Core.SaleOptOut,
		s.Core.TargetedAdvertisingOptOutNotice, s.Core.TargetedAdvertisingOptOut,
		s.Core.MspaOptOutOptionMode, s.Core.MspaServiceProviderMode,
	)
}

type UsUtCore struct {
	SharingNotice                       Notice
	SaleOptOutNotice                    Notice
	TargetedAdvertisingOptOutNotice     Notice
	SensitiveDataProcessingOptOutNotice Notice
	SaleOptOut                          OptOut
	TargetedAdvertisingOptOut           OptOut
	SensitiveDataProcessing             UsUtSensitiveDataProcessing
	KnownChildSensitiveDataConsents     Consent
	MspaCoveredTransaction              bool
	MspaOptOutOptionMode                MspaMode
	MspaServiceProviderMode             MspaMode
}

type UsUtSensitiveDataProcessing struct {
	RacialOrEthnicOrigin           Consent
	ReligiousBeliefs               Consent
	SexualOrientation              Consent
	CitizenshipOrImmigrationStatus Consent
	HealthData                     Consent
	GeneticUniqueIdentification    Consent
	BiometricUniqueIdentification  Consent
	SpecificGeolocationData        Consent
}

func decodeUsUt(raw string) (Section, error) {
	r, err := newSegmentReader(raw)
	if err != nil {
		return nil, err
	}

	s := &UsUt{}
	if err := s.Core.decode(r); err != nil {
		return nil, err
	}
	if err := checkZeroPadding(r); err != nil {
		return nil, err
	}
	return s, nil
}

func (c *UsUtCore) decode(r *bitutils.BitReader) error {
	if err := readSectionVersion(r, 1); err != nil {
		return err
	}

	u := &usReader{r: r}
	c.SharingNotice = u.notice()
	c.SaleOptOutNotice = u.notice()
	c.TargetedAdvertisingOptOutNotice = u.notice()
	c.SensitiveDataProcessingOptOutNotice = u.notice()
	c.SaleOptOut = u.optOut()
	c.TargetedAdvertisingOptOut = u.optOut()
	c.SensitiveDataProcessing = UsUtSensitiveDataProcessing{
		RacialOrEthnicOrigin:           u.consent(),
		ReligiousBeliefs:               u.consent(),
		SexualOrientation:              u.consent(),
		CitizenshipOrImmigrationStatus: u.consent(),
		HealthData:                     u.consent(),
		GeneticUniqueIdentification:    u.consent(),
		BiometricUniqueIdentification:  u.consent(),
		SpecificGeolocationData:        u.consent(),
	}
	c.KnownChildSensitiveDataConsents = u.consent()
	c.MspaCoveredTransaction = u.coveredTransaction()
	c.MspaOptOutOptionMode = u.mspaMode()
	c.MspaServiceProviderMode = u.mspaMode()
	return u.err
}
