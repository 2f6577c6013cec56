package sections

import (
	"github.com/prebid/go-gpp/bitutils"
	"github.com/prebid/go-gpp/constants"
)

// UsCo is the Colorado section.
type UsCo struct {
	Core UsCoCore
	Gpc  *bool
}

func (s *UsCo) ID() constants.SectionID {
	return constants.SectionUsCo
}

type UsCoCore struct {
	SharingNotice                   Notice
	SaleOptOutNotice                Notice
	TargetedAdvertisingOptOutNotice Notice
	SaleOptOut                      OptOut
	TargetedAdvertisingOptOut       OptOut
	SensitiveDataProcessing         UsCoSensitiveDataProcessing
	KnownChildSensitiveDataConsents Consent
	MspaCoveredTransaction          bool
	MspaOptOutOptionMode            MspaMode
	MspaServiceProviderMode         MspaMode
}

type UsCoSensitiveDataProcessing struct {
	RacialOrEthnicOrigin          Consent
	ReligiousBeliefs              Consent
	HealthConditionOrDiagnosis    Consent
	SexLifeOrSexualOrientation    Consent
	CitizenshipData               Consent
	GeneticUniqueIdentification   Consent
	BiometricUniqueIdentification Consent
}

func decodeUsCo(raw string) (Section, error) {
	s := &UsCo{}
	gpc, err := decodeUsSegments(raw, s.Core.decode)
	if err != nil {
		return nil, err
	}
	s.Gpc = gpc
	return s, nil
}

func (c *UsCoCore) decode(r *bitutils.BitReader) error {
	if err := readSectionVersion(r, 1); err != nil {
		return err
	}

	u := &usReader{r: r}
	c.SharingNotice = u.notice()
	c.SaleOptOutNotice = u.notice()
	c.TargetedAdvertisingOptOutNotice = u.notice()
	c.SaleOptOut = u.optOut()
	c.TargetedAdvertisingOptOut = u.optOut()
	c.SensitiveDataProcessing = UsCoSensitiveDataProcessing{
		RacialOrEthnicOrigin:          u.consent(),
		ReligiousBeliefs:              u.consent(),
		HealthConditionOrDiagnosis:    u.consent(),
		SexLifeOrSexualOrientation:    u.consent(),
		CitizenshipData:               u.consent(),
		GeneticUniqueIdentification:   u.consent(),
		BiometricUniqueIdentification: u.consent(),
	}
	c.KnownChildSensitiveDataConsents = u.consent()
	c.MspaCoveredTransaction = u.coveredTransaction()
	c.MspaOptOutOptionMode = u.mspaMode()
	c.MspaServiceProviderMode = u.mspaMode()
	return u.err
}
