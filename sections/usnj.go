package sections

import (
	"github.com/prebid/go-gpp/bitutils"
	"github.com/prebid/go-gpp/constants"
)

// UsNj is the New Jersey section.
type UsNj struct {
	Core UsNjCore
	Gpc  *bool
}

func (s *UsNj) ID() constants.SectionID {
	return constants.SectionUsNj
}

type UsNjCore struct {
	ProcessingNotice                Notice
	SaleOptOutNotice                Notice
	TargetedAdvertisingOptOutNotice Notice
	SaleOptOut                      OptOut
	TargetedAdvertisingOptOut       OptOut
	SensitiveDataProcessing         UsNjSensitiveDataProcessing
	KnownChildSensitiveDataConsents UsNjKnownChildSensitiveDataConsents
	AdditionalDataProcessingConsent Consent
	MspaCoveredTransaction          bool
	MspaOptOutOptionMode            MspaMode
	MspaServiceProviderMode         MspaMode
}

type UsNjSensitiveDataProcessing struct {
	RacialOrEthnicOrigin           Consent
	ReligiousBeliefs               Consent
	HealthData                     Consent
	SexLifeOrSexualOrientation     Consent
	CitizenshipOrImmigrationStatus Consent
	GeneticUniqueIdentification    Consent
	BiometricUniqueIdentification  Consent
	PreciseGeolocationData         Consent
	TransgenderOrNonbinaryStatus   Consent
	FinancialData                  Consent
}

type UsNjKnownChildSensitiveDataConsents struct {
	ProcessSensitiveDataFromKnownChild Consent
	SellPersonalDataFrom13To16         Consent
	ProcessPersonalDataFrom13To16      Consent
	SellPersonalDataFrom16To17         Consent
	ProcessPersonalDataFrom16To17      Consent
}

func decodeUsNj(raw string) (Section, error) {
	s := &UsNj{}
	gpc, err := decodeUsSegments(raw, s.Core.decode)
	if err != nil {
		return nil, err
	}
	s.Gpc = gpc
	return s, nil
}

func (c *UsNjCore) decode(r *bitutils.BitReader) error {
	if err := readSectionVersion(r, 1); err != nil {
		return err
	}

	u := &usReader{r: r}
	c.ProcessingNotice = u.notice()
	c.SaleOptOutNotice = u.notice()
	c.TargetedAdvertisingOptOutNotice = u.notice()
	c.SaleOptOut = u.optOut()
	c.TargetedAdvertisingOptOut = u.optOut()
	c.SensitiveDataProcessing = UsNjSensitiveDataProcessing{
		RacialOrEthnicOrigin:           u.consent(),
		ReligiousBeliefs:               u.consent(),
		HealthData:                     u.consent(),
		SexLifeOrSexualOrientation:     u.consent(),
		CitizenshipOrImmigrationStatus: u.consent(),
		GeneticUniqueIdentification:    u.consent(),
		BiometricUniqueIdentification:  u.consent(),
		PreciseGeolocationData:         u.consent(),
		TransgenderOrNonbinaryStatus:   u.consent(),
		FinancialData:                  u.consent(),
	}
	c.KnownChildSensitiveDataConsents = UsNjKnownChildSensitiveDataConsents{
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
