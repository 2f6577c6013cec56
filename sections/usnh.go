package sections

import (
	"github.com/prebid/go-gpp/bitutils"
	"github.com/prebid/go-gpp/constants"
)

// UsNh is the New Hampshire section.
type UsNh struct {
	Core UsNhCore
	Gpc  *bool
}

func (s *UsNh) ID() constants.SectionID {
	return constants.SectionUsNh
}

type UsNhCore struct {
	ProcessingNotice                Notice
	SaleOptOutNotice                Notice
	TargetedAdvertisingOptOutNotice Notice
	SaleOptOut                      OptOut
	TargetedAdvertisingOptOut       OptOut
	SensitiveDataProcessing         UsNhSensitiveDataProcessing
	KnownChildSensitiveDataConsents UsNhKnownChildSensitiveDataConsents
	AdditionalDataProcessingConsent Consent
	MspaCoveredTransaction          bool
	MspaOptOutOptionMode            MspaMode
	MspaServiceProviderMode         MspaMode
}

type UsNhSensitiveDataProcessing struct {
	RacialOrEthnicOrigin           Consent
	ReligiousBeliefs               Consent
	HealthConditionOrDiagnosis     Consent
	SexLifeOrSexualOrientation     Consent
	TransgenderOrNonbinaryStatus   Consent
	CitizenshipOrImmigrationStatus Consent
	GeneticUniqueIdentification    Consent
	BiometricUniqueIdentification  Consent
	PreciseGeolocationData         Consent
}

type UsNhKnownChildSensitiveDataConsents struct {
	ProcessSensitiveDataFromKnownChild Consent
	SellPersonalDataFrom13To16         Consent
	ProcessPersonalDataFrom13To16      Consent
}

func decodeUsNh(raw string) (Section, error) {
	s := &UsNh{}
	gpc, err := decodeUsSegments(raw, s.Core.decode)
	if err != nil {
		return nil, err
	}
	s.Gpc = gpc
	return s, nil
}

func (c *UsNhCore) decode(r *bitutils.BitReader) error {
	if err := readSectionVersion(r, 1); err != nil {
		return err
	}

	u := &usReader{r: r}
	c.ProcessingNotice = u.notice()
	c.SaleOptOutNotice = u.notice()
	c.TargetedAdvertisingOptOutNotice = u.notice()
	c.SaleOptOut = u.optOut()
	c.TargetedAdvertisingOptOut = u.optOut()
	c.SensitiveDataProcessing = UsNhSensitiveDataProcessing{
		RacialOrEthnicOrigin:           u.consent(),
		ReligiousBeliefs:               u.consent(),
		HealthConditionOrDiagnosis:     u.consent(),
		SexLifeOrSexualOrientation:     u.consent(),
		TransgenderOrNonbinaryStatus:   u.consent(),
		CitizenshipOrImmigrationStatus: u.consent(),
		GeneticUniqueIdentification:    u.consent(),
		BiometricUniqueIdentification:  u.consent(),
		PreciseGeolocationData:         u.consent(),
	}
	c.KnownChildSensitiveDataConsents = UsNhKnownChildSensitiveDataConsents{
		ProcessSensitiveDataFromKnownChild: u.consent(),
		SellPersonalDataFrom13To16:         u.consent(),
		ProcessPersonalDataFrom13To16:      u.consent(),
	}
	c.AdditionalDataProcessingConsent = u.consent()
	c.MspaCoveredTransaction = u.coveredTransaction()
	c.MspaOptOutOptionMode = u.mspaMode()
	c.MspaServiceProviderMode = u.mspaMode()
	return u.err
}
