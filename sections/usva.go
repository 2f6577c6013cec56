package sections

import (
	"github.com/prebid/go-gpp/bitutils"
	"github.com/prebid/go-gpp/constants"
)

// UsVa is the Virginia section. It has no GPC segment.
type UsVa struct {
	Core UsVaCore
}

func (s *UsVa) ID() constants.SectionID {
	return constants.SectionUsVa
}

type UsVaCore struct {
	SharingNotice                   Notice
	SaleOptOutNotice                Notice
	TargetedAdvertisingOptOutNotice Notice
	SaleOptOut                      OptOut
	TargetedAdvertisingOptOut       OptOut
	SensitiveDataProcessing         UsVaSensitiveDataProcessing
	KnownChildSensitiveDataConsents Consent
	MspaCoveredTransaction          bool
	MspaOptOutOptionMode            MspaMode
	MspaServiceProviderMode         MspaMode
}

type UsVaSensitiveDataProcessing struct {
	RacialOrEthnicOrigin            Consent
	ReligiousOrPhilosophicalBeliefs Consent
	HealthDiagnosisData             Consent
	SexLifeOrSexualOrientation      Consent
	CitizenshipOrImmigrationStatus  Consent
	GeneticUniqueIdentification     Consent
	BiometricUniqueIdentification   Consent
	PreciseGeolocationData          Consent
}

func decodeUsVa(raw string) (Section, error) {
	r, err := newSegmentReader(raw)
	if err != nil {
		return nil, err
	}

	s := &UsVa{}
	if err := s.Core.decode(r); err != nil {
		return nil, err
	}
	if err := checkZeroPadding(r); err != nil {
		return nil, err
	}
	return s, nil
}

func (c *UsVaCore) decode(r *bitutils.BitReader) error {
	if err := readSectionVersion(r, 1); err != nil {
		return err
	}

	u := &usReader{r: r}
	c.SharingNotice = u.notice()
	c.SaleOptOutNotice = u.notice()
	c.TargetedAdvertisingOptOutNotice = u.notice()
	c.SaleOptOut = u.optOut()
	c.TargetedAdvertisingOptOut = u.optOut()
	c.SensitiveDataProcessing = UsVaSensitiveDataProcessing{
		RacialOrEthnicOrigin:            u.consent(),
		ReligiousOrPhilosophicalBeliefs: u.consent(),
		HealthDiagnosisData:             u.consent(),
		SexLifeOrSexualOrientation:      u.consent(),
		CitizenshipOrImmigrationStatus:  u.consent(),
		GeneticUniqueIdentification:     u.consent(),
		BiometricUniqueIdentification:   u.consent(),
		PreciseGeolocationData:          u.consent(),
	}
	c.KnownChildSensitiveDataConsents = u.consent()
	c.MspaCoveredTransaction = u.coveredTransaction()
	c.MspaOptOutOptionMode = u.mspaMode()
	c.MspaServiceProviderMode = u.mspaMode()
	return u.err
}
