package sections

import (
	"github.com/prebid/go-gpp/bitutils"
	"github.com/prebid/go-gpp/constants"
)

// UsMt is the Montana section.
type UsMt struct {
	Core UsMtCore
	Gpc  *bool
}

func (s *UsMt) ID() constants.SectionID {
	return constants.SectionUsMt
}

type UsMtCore struct {
	SharingNotice                   Notice
	SaleOptOutNotice                Notice
	TargetedAdvertisingOptOutNotice Notice
	SaleOptOut                      OptOut
	TargetedAdvertisingOptOut       OptOut
	SensitiveDataProcessing         UsMtSensitiveDataProcessing
	KnownChildSensitiveDataConsents UsMtKnownChildSensitiveDataConsents
	MspaCoveredTransaction          bool
	MspaOptOutOptionMode            MspaMode
	MspaServiceProviderMode         MspaMode
}

type UsMtSensitiveDataProcessing struct {
	RacialOrEthnicOrigin           Consent
	ReligiousBeliefs               Consent
	HealthConditionOrDiagnosis     Consent
	SexLifeOrSexualOrientation     Consent
	CitizenshipOrImmigrationStatus Consent
	GeneticUniqueIdentification    Consent
	BiometricUniqueIdentification  Consent
	PreciseGeolocationData         Consent
}

type UsMtKnownChildSensitiveDataConsents struct {
	ProcessSensitiveDataFromKnownChild Consent
	SellPersonalDataFrom13To16         Consent
	ProcessPersonalDataFrom13To16      Consent
}

func decodeUsMt(raw string) (Section, error) {
	s := &UsMt{}
	gpc, err := decodeUsSegments(raw, s.Core.decode)
	if err != nil {
		return nil, err
	}
	s.Gpc = gpc
	return s, nil
}

func (c *UsMtCore) decode(r *bitutils.BitReader) error {
	if err := readSectionVersion(r, 1); err != nil {
		return err
	}

	u := &usReader{r: r}
	c.SharingNotice = u.notice()
	c.SaleOptOutNotice = u.notice()
	c.TargetedAdvertisingOptOutNotice = u.notice()
	c.SaleOptOut = u.optOut()
	c.TargetedAdvertisingOptOut = u.optOut()
	c.SensitiveDataProcessing = UsMtSensitiveDataProcessing{
		RacialOrEthnicOrigin:           u.consent(),
		ReligiousBeliefs:               u.consent(),
		HealthConditionOrDiagnosis:     u.consent(),
		SexLifeOrSexualOrientation:     u.consent(),
		CitizenshipOrImmigrationStatus: u.consent(),
		GeneticUniqueIdentification:    u.consent(),
		BiometricUniqueIdentification:  u.consent(),
		PreciseGeolocationData:         u.consent(),
	}
	c.KnownChildSensitiveDataConsents = UsMtKnownChildSensitiveDataConsents{
		ProcessSensitiveDataFromKnownChild: u.consent(),
		SellPersonalDataFrom13To16:         u.consent(),
		ProcessPersonalDataFrom13To16:      u.consent(),
	}
	c.MspaCoveredTransaction = u.coveredTransaction()
	c.MspaOptOutOptionMode = u.mspaMode()
	c.MspaServiceProviderMode = u.mspaMode()
	return u.err
}
