package sections

import (
	"github.com/prebid/go-gpp/bitutils"
	"github.com/prebid/go-gpp/constants"
)

// UsFl is the Florida section. It has no GPC segment.
type UsFl struct {
	Core UsFlCore
}

func (s *UsFl) ID() constants.SectionID {
	return constants.SectionUsFl
}

type UsFlCore struct {
	ProcessingNotice                Notice
	SaleOptOutNotice                Notice
	TargetedAdvertisingOptOutNotice Notice
	SaleOptOut                      OptOut
	TargetedAdvertisingOptOut       OptOut
	SensitiveDataProcessing         UsFlSensitiveDataProcessing
	KnownChildSensitiveDataConsents UsFlKnownChildSensitiveDataConsents
	AdditionalDataProcessingConsent Consent
	MspaCoveredTransaction          bool
	MspaOptOutOptionMode            MspaMode
	MspaServiceProviderMode         MspaMode
}

type UsFlSensitiveDataProcessing struct {
	RacialOrEthnicOrigin           Consent
	ReligiousBeliefs               Consent
	HealthData                     Consent
	SexLifeOrSexualOrientation     Consent
	CitizenshipOrImmigrationStatus Consent
	GeneticUniqueIdentification    Consent
	BiometricUniqueIdentification  Consent
	PreciseGeolocationData         Consent
}

type UsFlKnownChildSensitiveDataConsents struct {
	Under13    Consent
	From13To16 Consent
	From16To18 Consent
}

func decodeUsFl(raw string) (Section, error) {
	r, err := newSegmentReader(raw)
	if err != nil {
		return nil, err
	}

	s := &UsFl{}
	if err := s.Core.decode(r); err != nil {
		return nil, err
	}
	if err := checkZeroPadding(r); err != nil {
		return nil, err
	}
	return s, nil
}

func (c *UsFlCore) decode(r *bitutils.BitReader) error {
	if err := readSectionVersion(r, 1); err != nil {
		return err
	}

	u := &usReader{r: r}
	c.ProcessingNotice = u.notice()
	c.SaleOptOutNotice = u.notice()
	c.TargetedAdvertisingOptOutNotice = u.notice()
	c.SaleOptOut = u.optOut()
	c.TargetedAdvertisingOptOut = u.optOut()
	c.SensitiveDataProcessing = UsFlSensitiveDataProcessing{
		RacialOrEthnicOrigin:           u.consent(),
		ReligiousBeliefs:               u.consent(),
		HealthData:                     u.consent(),
		SexLifeOrSexualOrientation:     u.consent(),
		CitizenshipOrImmigrationStatus: u.consent(),
		GeneticUniqueIdentification:    u.consent(),
		BiometricUniqueIdentification:  u.consent(),
		PreciseGeolocationData:         u.consent(),
	}
	c.KnownChildSensitiveDataConsents = UsFlKnownChildSensitiveDataConsents{
		Under13:    u.consent(),
		From13To16: u.consent(),
		From16To18: u.consent(),
	}
	c.AdditionalDataProcessingConsent = u.consent()
	c.MspaCoveredTransaction = u.coveredTransaction()
	c.MspaOptOutOptionMode = u.mspaMode()
	c.MspaServiceProviderMode = u.mspaMode()
	return u.err
}
