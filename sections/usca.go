package sections

import (
	"github.com/prebid/go-gpp/bitutils"
	"github.com/prebid/go-gpp/constants"
)

// UsCa is the California section. Its sensitive data fields are opt-outs
// where the other states use consents.
type UsCa struct {
	Core UsCaCore
	Gpc  *bool
}

func (s *UsCa) ID() constants.SectionID {
	return constants.SectionUsCa
}

type UsCaCore struct {
	SaleOptOutNotice                Notice
	SharingOptOutNotice             Notice
	SensitiveDataLimitUseNotice     Notice
	SaleOptOut                      OptOut
	SharingOptOut                   OptOut
	SensitiveDataProcessing         UsCaSensitiveDataProcessing
	KnownChildSensitiveDataConsents UsCaKnownChildSensitiveDataConsents
	PersonalDataConsent             Consent
	MspaCoveredTransaction          bool
	MspaOptOutOptionMode            MspaMode
	MspaServiceProviderMode         MspaMode
}

type UsCaSensitiveDataProcessing struct {
	IdentificationDocuments       OptOut
	FinancialData                 OptOut
	PreciseGeolocation            OptOut
	OriginBeliefsOrUnion          OptOut
	MailEmailOrTextMessages       OptOut
	GeneticData                   OptOut
	BiometricUniqueIdentification OptOut
	HealthData                    OptOut
	SexLifeOrSexualOrientation    OptOut
}

type UsCaKnownChildSensitiveDataConsents struct {
	SellPersonalInformation  Consent
	SharePersonalInformation Consent
}

func decodeUsCa(raw string) (Section, error) {
	s := &UsCa{}
	gpc, err := decodeUsSegments(raw, s.Core.decode)
	if err != nil {
		return nil, err
	}
	s.Gpc = gpc
	return s, nil
}

func (c *UsCaCore) decode(r *bitutils.BitReader) error {
	if err := readSectionVersion(r, 1); err != nil {
		return err
	}

	u := &usReader{r: r}
	c.SaleOptOutNotice = u.notice()
	c.SharingOptOutNotice = u.notice()
	c.SensitiveDataLimitUseNotice = u.notice()
	c.SaleOptOut = u.optOut()
	c.SharingOptOut = u.optOut()
	c.SensitiveDataProcessing = UsCaSensitiveDataProcessing{
		IdentificationDocuments:       u.optOut(),
		FinancialData:                 u.optOut(),
		PreciseGeolocation:            u.optOut(),
		OriginBeliefsOrUnion:          u.optOut(),
		MailEmailOrTextMessages:       u.optOut(),
		GeneticData:                   u.optOut(),
		BiometricUniqueIdentification: u.optOut(),
		HealthData:                    u.optOut(),
		SexLifeOrSexualOrientation:    u.optOut(),
	}
	c.KnownChildSensitiveDataConsents = UsCaKnownChildSensitiveDataConsents{
		SellPersonalInformation:  u.consent(),
		SharePersonalInformation: u.consent(),
	}
	c.PersonalDataConsent = u.consent()
	c.MspaCoveredTransaction = u.coveredTransaction()
	c.MspaOptOutOptionMode = u.mspaMode()
	c.MspaServiceProviderMode = u.mspaMode()
	return u.err
}
