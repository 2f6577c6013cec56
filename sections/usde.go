package sections

import (
	"github.com/prebid/go-gpp/bitutils"
	"github.com/prebid/go-gpp/constants"
)

// UsDe is the Delaware section.
type UsDe struct {
	Core UsDeCore
	Gpc  *bool
}

func (s *UsDe) ID() constants.SectionID {
	return constants.SectionUsDe
}

type UsDeCore struct {
	ProcessingNotice                Notice
	SaleOptOutNotice                Notice
	TargetedAdvertisingOptOutNotice Notice
	SaleOptOut                      OptOut
	TargetedAdvertisingOptOut       OptOut
	SensitiveDataProcessing         UsDeSensitiveDataProcessing
	KnownChildSensitiveDataConsents UsDeKnownChildSensitiveDataConsents
	AdditionalDataProcessingConsent Consent
	MspaCoveredTransaction          bool
	MspaOptOutOptionMode            MspaMode
	MspaServiceProviderMode         MspaMode
}

type UsDeSensitiveDataProcessing struct {
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

type UsDeKnownChildSensitiveDataConsents struct {
	ProcessSensitiveDataFromKnownChild Consent
	SellPersonalDataFrom13To16         Consent
	ProcessPersonalDataFrom13To16      Consent
	SellPersonalDataFrom16To17         Consent
	ProcessPersonalDataFrom16To17      Consent
}

func decodeUsDe(raw string) (Section, error) {
	s := &UsDe{}
	gpc, err := decodeUsSegments(raw, s.Core.decode)
	if err != nil {
		return nil, err
	}
	s.Gpc = gpc
	return s, nil
}

func (c *UsDeCore) decode(r *bitutils.BitReader) error {
	if err := readSectionVersion(r, 1); err != nil {
		return err
	}

	u := &usReader{r: r}
	c.ProcessingNotice = u.notice()
	c.SaleOptOutNotice = u.notice()
	c.TargetedAdvertisingOptOutNotice = u.notice()
	c.SaleOptOut = u.optOut()
	c.TargetedAdvertisingOptOut = u.optOut()
	c.SensitiveDataProcessing = UsDeSensitiveDataProcessing{
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
	c.KnownChildSensitiveDataConsents = UsDeKnownChildSensitiveDataConsents{
		ProcessSensitiveDataFromKnownChild: u.consent(),
		SellPersonalDataFrom13To16:         u.consent(),
		ProcessPersonalDataFrom13To16:      u.consent(),
		SellPersonalDataFrom16To17:         u.consent(),
		ProcessPersonalDataFrom16To17:      u.consent(),
	}
	c.AdditionalDataProcessingConsent = u.consent()
	c.MspaCoveredTransaction = u.coveredTransaction()
	c.MspaOptOutOptionMode = u.mspaMode()
	c.MspaServiceProviderMode = u.mspaMode()
	return u.err
}
