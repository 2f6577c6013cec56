package sections

import (
	"github.com/prebid/go-gpp/bitutils"
	"github.com/prebid/go-gpp/constants"
)

// UsCt is the Connecticut section.
type UsCt struct {
	Core UsCtCore
	Gpc  *bool
}

func (s *UsCt) ID() constants.SectionID {
	return constants.SectionUsCt
}

// Validate checks the MSPA consistency rules the section is subject to.
func (s *UsCt) Validate() []error {
	return validateMspaCore(
		s.Core.SaleOptOutNotice, s.Core.SaleOptOut,
		s.Core.TargetedAdvertisingOptOutNotice, s.Core.TargetedAdvertisingOptOut,
		s.Core.MspaOptOutOptionMode, s.Core.MspaServiceProviderMode,
	)
}

type UsCtCore struct {
	SharingNotice                   Notice
	SaleOptOutNotice                Notice
	TargetedAdvertisingOptOutNotice Notice
	SaleOptOut                      OptOut
	TargetedAdvertisingOptOut       OptOut
	SensitiveDataProcessing         UsCtSensitiveDataProcessing
	KnownChildSensitiveDataConsents UsCtKnownChildSensitiveDataConsents
	MspaCoveredTransaction          bool
	MspaOptOutOptionMode            MspaMode
	MspaServiceProviderMode         MspaMode
}

type UsCtSensitiveDataProcessing struct {
	RacialOrEthnicOrigin           Consent
	ReligiousBeliefs               Consent
	HealthConditionOrDiagnosis     Consent
	SexLifeOrSexualOrientation     Consent
	CitizenshipOrImmigrationStatus Consent
	GeneticUniqueIdentification    Consent
	BiometricUniqueIdentification  Consent
	PreciseGeolocationData         Consent
}

type UsCtKnownChildSensitiveDataConsents struct {
	ProcessSensitiveDataFromKnownChild Consent
	SellPersonalDataFrom13To16         Consent
	ProcessPersonalDataFrom13To16      Consent
}

func decodeUsCt(raw string) (Section, error) {
	s := &UsCt{}
	gpc, err := decodeUsSegments(raw, s.Core.decode)
	if err != nil {
		return nil, err
	}
	s.Gpc = gpc
	return s, nil
}

func (c *UsCtCore) decode(r *bitutils.BitReader) error {
	if err := readSectionVersion(r, 1); err != nil {
		return err
	}

	u := &usReader{r: r}
	c.SharingNotice = u.notice()
	c.SaleOptOutNotice = u.notice()
	c.TargetedAdvertisingOptOutNotice = u.notice()
	c.SaleOptOut = u.optOut()
	c.TargetedAdvertisingOptOut = u.optOut()
	c.SensitiveDataProcessing = UsCtSensitiveDataProcessing{
		RacialOrEthnicOrigin:           u.consent(),
		ReligiousBeliefs:               u.consent(),
		HealthConditionOrDiagnosis:     u.consent(),
		SexLifeOrSexualOrientation:     u.consent(),
		CitizenshipOrImmigrationStatus: u.consent(),
		GeneticUniqueIdentification:    u.consent(),
		BiometricUniqueIdentification:  u.consent(),
		PreciseGeolocationData:         u.consent(),
	}
	c.KnownChildSensitiveDataConsents = UsCtKnownChildSensitiveDataConsents{
		ProcessSensitiveDataFromKnownChild: u.consent(),
		SellPersonalDataFrom13To16:         u.consent(),
		ProcessPersonalDataFrom13To16:      u.consent(),
	}
	c.MspaCoveredTransaction = u.coveredTransaction()
	c.MspaOptOutOptionMode = u.mspaMode()
	c.MspaServiceProviderMode = u.mspaMode()
	return u.err
}
