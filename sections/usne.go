package sections

import (
	"github.com/prebid/go-gpp/bitutils"
	"github.com/prebid/go-gpp/constants"
)

// UsNe is the Nebraska section.
type UsNe struct {
	Core UsNeCore
	Gpc  *bool
}

func (s *UsNe) ID() constants.SectionID {
	return constants.SectionUsNe
}

type UsNeCore struct {
	ProcessingNotice                Notice
	SaleOptOutNotice                Notice
	TargetedAdvertisingOptOutNotice Notice
	SaleOptOut                      OptOut
	TargetedAdvertisingOptOut       OptOut
	SensitiveDataProcessing         UsNeSensitiveDataProcessing
	KnownChildSensitiveDataConsents Consent
	AdditionalDataProcessingConsent Consent
	MspaCoveredTransaction          bool
	MspaOptOutOptionMode            MspaMode
	MspaServiceProviderMode         MspaMode
}

type UsNeSensitiveDataProcessing struct {
	RacialOrEthnicOrigin           Consent
	ReligiousBeliefs               Consent
	HealthData                     Consent
	SexualOrientation              Consent
	CitizenshipOrImmigrationStatus Consent
	GeneticUniqueIdentification    Consent
	BiometricUniqueIdentification  Consent
	PreciseGeolocationData         Consent
}

func decodeUsNe(raw string) (Section, error) {
	s := &UsNe{}
	gpc, err := decodeUsSegments(raw, s.Core.decode)
	if err != nil {
		return nil, err
	}
	s.Gpc = gpc
	return s, nil
}

func (c *UsNeCore) decode(r *bitutils.BitReader) error {
	if err := readSectionVersion(r, 1); err != nil {
		return err
	}

	u := &usReader{r: r}
	c.ProcessingNotice = u.notice()
	c.SaleOptOutNotice = u.notice()
	c.TargetedAdvertisingOptOutNotice = u.notice()
	c.SaleOptOut = u.optOut()
	c.TargetedAdvertisingOptOut = u.optOut()
	c.SensitiveDataProcessing = UsNeSensitiveDataProcessing{
		RacialOrEthnicOrigin:           u.consent(),
		ReligiousBeliefs:               u.consent(),
		HealthData:                     u.consent(),
		SexualOrientation:              u.consent(),
		CitizenshipOrImmigrationStatus: u.consent(),
		GeneticUniqueIdentification:    u.consent(),
		BiometricUniqueIdentification:  u.consent(),
		PreciseGeolocationData:         u.consent(),
	}
	c.KnownChildSensitiveDataConsents = u.consent()
	c.AdditionalDataProcessingConsent = u.consent()
	c.MspaCoveredTransaction = u.coveredTransaction()
	c.MspaOptOutOptionMode = u.mspaMode()
	c.MspaServiceProviderMode = u.mspaMode()
	return u.err
}
