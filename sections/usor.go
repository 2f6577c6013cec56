package sections

import (
	"github.com/prebid/go-gpp/bitutils"
	"github.com/prebid/go-gpp/constants"
)

// UsOr is the Oregon section.
type UsOr struct {
	Core UsOrCore
	Gpc  *bool
}

func (s *UsOr) ID() constants.SectionID {
	return constants.SectionUsOr
}

type UsOrCore struct {
	ProcessingNotice                Notice
	SaleOptOutNotice                Notice
	TargetedAdvertisingOptOutNotice Notice
	SaleOptOut                      OptOut
	TargetedAdvertisingOptOut       OptOut
	SensitiveDataProcessing         UsOrSensitiveDataProcessing
	KnownChildSensitiveDataConsents UsOrKnownChildSensitiveDataConsents
	AdditionalDataProcessingConsent Consent
	MspaCoveredTransaction          bool
	MspaOptOutOptionMode            MspaMode
	MspaServiceProviderMode         MspaMode
}

type UsOrSensitiveDataProcessing struct {
	RacialOrEthnicOrigin           Consent
	ReligiousBeliefs               Consent
	HealthData                     Consent
	SexLifeOrSexualOrientation     Consent
	TransgenderOrNonbinaryStatus   Consent
	CitizenshipOrImmigrationStatus Consent
	NationalOrigin                 Consent
	CrimeVictimStatus              Consent
	GeneticData                    Consent
	BiometricData                  Consent
	PreciseGeolocationData         Consent
}

type UsOrKnownChildSensitiveDataConsents struct {
	ProcessSensitiveDataFromKnownChild Consent
	SellPersonalDataFrom13To16         Consent
	ProcessPersonalDataFrom13To16      Consent
}

func decodeUsOr(raw string) (Section, error) {
	s := &UsOr{}
	gpc, err := decodeUsSegments(raw, s.Core.decode)
	if err != nil {
		return nil, err
	}
	s.Gpc = gpc
	return s, nil
}

func (c *UsOrCore) decode(r *bitutils.BitReader) error {
	if err := readSectionVersion(r, 1); err != nil {
		return err
	}

	u := &usReader{r: r}
	c.ProcessingNotice = u.notice()
	c.SaleOptOutNotice = u.notice()
	c.TargetedAdvertisingOptOutNotice = u.notice()
	c.SaleOptOut = u.optOut()
	c.TargetedAdvertisingOptOut = u.optOut()
	c.SensitiveDataProcessing = UsOrSensitiveDataProcessing{
		RacialOrEthnicOrigin:           u.consent(),
		ReligiousBeliefs:               u.consent(),
		HealthData:                     u.consent(),
		SexLifeOrSexualOrientation:     u.consent(),
		TransgenderOrNonbinaryStatus:   u.consent(),
		CitizenshipOrImmigrationStatus: u.consent(),
		NationalOrigin:                 u.consent(),
		CrimeVictimStatus:              u.consent(),
		GeneticData:                    u.consent(),
		BiometricData:                  u.consent(),
		PreciseGeolocationData:         u.consent(),
	}
	c.KnownChildSensitiveDataConsents = UsOrKnownChildSensitiveDataConsents{
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
