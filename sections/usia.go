package sections

import (
	"github.com/prebid/go-gpp/bitutils"
	"github.com/prebid/go-gpp/constants"
)

// UsIa is the Iowa section.
type UsIa struct {
	Core UsIaCore
	Gpc  *bool
}

func (s *UsIa) ID() constants.SectionID {
	return constants.SectionUsIa
}

type UsIaCore struct {
	ProcessingNotice                Notice
	SaleOptOutNotice                Notice
	TargetedAdvertisingOptOutNotice Notice
	SensitiveDataOptOutNotice       Notice
	SaleOptOut                      OptOut
	TargetedAdvertisingOptOut       OptOut
	SensitiveDataProcessing         UsIaSensitiveDataProcessing
	KnownChildSensitiveDataConsents Consent
	MspaCoveredTransaction          bool
	MspaOptOutOptionMode            MspaMode
	MspaServiceProviderMode         MspaMode
}

type UsIaSensitiveDataProcessing struct {
	RacialOrEthnicOrigin          Consent
	ReligiousBeliefs              Consent
	HealthData                    Consent
	SexualOrientation             Consent
	CitizenshipStatus             Consent
	GeneticUniqueIdentification   Consent
	BiometricUniqueIdentification Consent
	PreciseGeolocationData        Consent
}

func decodeUsIa(raw string) (Section, error) {
	s := &UsIa{}
	gpc, err := decodeUsSegments(raw, s.Core.decode)
	if err != nil {
		return nil, err
	}
	s.Gpc = gpc
	return s, nil
}

func (c *UsIaCore) decode(r *bitutils.BitReader) error {
	if err := readSectionVersion(r, 1); err != nil {
		return err
	}

	u := &usReader{r: r}
	c.ProcessingNotice = u.notice()
	c.SaleOptOutNotice = u.notice()
	c.TargetedAdvertisingOptOutNotice = u.notice()
	c.SensitiveDataOptOutNotice = u.notice()
	c.SaleOptOut = u.optOut()
	c.TargetedAdvertisingOptOut = u.optOut()
	c.SensitiveDataProcessing = UsIaSensitiveDataProcessing{
		RacialOrEthnicOrigin:          u.consent(),
		ReligiousBeliefs:              u.consent(),
		HealthData:                    u.consent(),
		SexualOrientation:             u.consent(),
		CitizenshipStatus:             u.consent(),
		GeneticUniqueIdentification:   u.consent(),
		BiometricUniqueIdentification: u.consent(),
		PreciseGeolocationData:        u.consent(),
	}
	c.KnownChildSensitiveDataConsents = u.consent()
	c.MspaCoveredTransaction = u.coveredTransaction()
	c.MspaOptOutOptionMode = u.mspaMode()
	c.MspaServiceProviderMode = u.mspaMode()
	return u.err
}
