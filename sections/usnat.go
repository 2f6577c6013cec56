package sections

import (
	"fmt"

	"github.com/prebid/go-gpp/bitutils"
	"github.com/prebid/go-gpp/constants"
	"github.com/prebid/go-gpp/errortypes"
)

// UsNat is the national US privacy section. Its core segment exists in two
// versions with different sensitive data and known child lists; exactly one
// of V1 and V2 is set.
type UsNat struct {
	Version uint8
	V1      *UsNatCoreV1
	V2      *UsNatCoreV2
	Gpc     *bool
}

func (s *UsNat) ID() constants.SectionID {
	return constants.SectionUsNat
}

type UsNatCoreV1 struct {
	SharingNotice                       Notice
	SaleOptOutNotice                    Notice
	SharingOptOutNotice                 Notice
	TargetedAdvertisingOptOutNotice     Notice
	SensitiveDataProcessingOptOutNotice Notice
	SensitiveDataLimitUseNotice         Notice
	SaleOptOut                          OptOut
	SharingOptOut                       OptOut
	TargetedAdvertisingOptOut           OptOut
	SensitiveDataProcessing             UsNatSensitiveDataProcessingV1
	KnownChildSensitiveDataConsents     UsNatKnownChildSensitiveDataConsentsV1
	PersonalDataConsent                 Consent
	MspaCoveredTransaction              bool
	MspaOptOutOptionMode                MspaMode
	MspaServiceProviderMode             MspaMode
}

type UsNatSensitiveDataProcessingV1 struct {
	RacialOrEthnicOrigin            Consent
	ReligiousOrPhilosophicalBeliefs Consent
	HealthData                      Consent
	SexLifeOrSexualOrientation      Consent
	CitizenshipOrImmigrationStatus  Consent
	GeneticUniqueIdentification     Consent
	BiometricUniqueIdentification   Consent
	PreciseGeolocationData          Consent
	IdentificationDocuments         Consent
	FinancialData                   Consent
	UnionMembership                 Consent
	MailEmailOrTextMessages         Consent
}

type UsNatKnownChildSensitiveDataConsentsV1 struct {
	From13To16 Consent
	Under13    Consent
}

type UsNatCoreV2 struct {
	SharingNotice                       Notice
	SaleOptOutNotice                    Notice
	SharingOptOutNotice                 Notice
	TargetedAdvertisingOptOutNotice     Notice
	SensitiveDataProcessingOptOutNotice Notice
	SensitiveDataLimitUseNotice         Notice
	SaleOptOut                          OptOut
	SharingOptOut                       OptOut
	TargetedAdvertisingOptOut           OptOut
	SensitiveDataProcessing             UsNatSensitiveDataProcessingV2
	KnownChildSensitiveDataConsents     UsNatKnownChildSensitiveDataConsentsV2
	PersonalDataConsent                 Consent
	MspaCoveredTransaction              bool
	MspaOptOutOptionMode                MspaMode
	MspaServiceProviderMode             MspaMode
}

type UsNatSensitiveDataProcessingV2 struct {
	RacialOrEthnicOrigin            Consent
	ReligiousOrPhilosophicalBeliefs Consent
	HealthData                      Consent
	SexLifeOrSexualOrientation      Consent
	CitizenshipOrImmigrationStatus  Consent
	GeneticUniqueIdentification     Consent
	BiometricUniqueIdentification   Consent
	PreciseGeolocationData          Consent
	IdentificationDocuments         Consent
	FinancialAccountData            Consent
	UnionMembership                 Consent
	MailEmailOrTextMessages         Consent
	GeneralHealthData               Consent
	CrimeVictimStatus               Consent
	NationalOrigin                  Consent
	TransgenderOrNonbinaryStatus    Consent
}

type UsNatKnownChildSensitiveDataConsentsV2 struct {
	ProcessSensitiveDataFrom13To16 Consent
	ProcessSensitiveDataUnder13    Consent
	ProcessPersonalDataFrom16To17  Consent
}

func decodeUsNat(raw string) (Section, error) {
	s := &UsNat{}

	gpc, err := decodeUsSegments(raw, func(r *bitutils.BitReader) error {
		version, err := r.ReadUint(6)
		if err != nil {
			return err
		}
		s.Version = uint8(version)

		switch version {
		case 1:
			s.V1 = &UsNatCoreV1{}
			return s.V1.decode(r)
		case 2:
			s.V2 = &UsNatCoreV2{}
			return s.V2.decode(r)
		}
		return &errortypes.MalformedSection{
			Message: fmt.Sprintf("unknown segment version %d, expected 1 or 2", version),
		}
	})
	if err != nil {
		return nil, err
	}
	s.Gpc = gpc
	return s, nil
}

func (c *UsNatCoreV1) decode(r *bitutils.BitReader) error {
	u := &usReader{r: r}

	c.SharingNotice = u.notice()
	c.SaleOptOutNotice = u.notice()
	c.SharingOptOutNotice = u.notice()
	c.TargetedAdvertisingOptOutNotice = u.notice()
	c.SensitiveDataProcessingOptOutNotice = u.notice()
	c.SensitiveDataLimitUseNotice = u.notice()
	c.SaleOptOut = u.optOut()
	c.SharingOptOut = u.optOut()
	c.TargetedAdvertisingOptOut = u.optOut()
	c.SensitiveDataProcessing = UsNatSensitiveDataProcessingV1{
		RacialOrEthnicOrigin:            u.consent(),
		ReligiousOrPhilosophicalBeliefs: u.consent(),
		HealthData:                      u.consent(),
		SexLifeOrSexualOrientation:      u.consent(),
		CitizenshipOrImmigrationStatus:  u.consent(),
		GeneticUniqueIdentification:     u.consent(),
		BiometricUniqueIdentification:   u.consent(),
		PreciseGeolocationData:          u.consent(),
		IdentificationDocuments:         u.consent(),
		FinancialData:                   u.consent(),
		UnionMembership:                 u.consent(),
		MailEmailOrTextMessages:         u.consent(),
	}
	c.KnownChildSensitiveDataConsents = UsNatKnownChildSensitiveDataConsentsV1{
		From13To16: u.consent(),
		Under13:    u.consent(),
	}
	c.PersonalDataConsent = u.consent()
	c.MspaCoveredTransaction = u.coveredTransaction()
	c.MspaOptOutOptionMode = u.mspaMode()
	c.MspaServiceProviderMode = u.mspaMode()
	return u.err
}

func (c *UsNatCoreV2) decode(r *bitutils.BitReader) error {
	u := &usReader{r: r}

	c.SharingNotice = u.notice()
	c.SaleOptOutNotice = u.notice()
	c.SharingOptOutNotice = u.notice()
	c.TargetedAdvertisingOptOutNotice = u.notice()
	c.SensitiveDataProcessingOptOutNotice = u.notice()
	c.SensitiveDataLimitUseNotice = u.notice()
	c.SaleOptOut = u.optOut()
	c.SharingOptOut = u.optOut()
	c.TargetedAdvertisingOptOut = u.optOut()
	c.SensitiveDataProcessing = UsNatSensitiveDataProcessingV2{
		RacialOrEthnicOrigin:            u.consent(),
		ReligiousOrPhilosophicalBeliefs: u.consent(),
		HealthData:                      u.consent(),
		SexLifeOrSexualOrientation:      u.consent(),
		CitizenshipOrImmigrationStatus:  u.consent(),
		GeneticUniqueIdentification:     u.consent(),
		BiometricUniqueIdentification:   u.consent(),
		PreciseGeolocationData:          u.consent(),
		IdentificationDocuments:         u.consent(),
		FinancialAccountData:            u.consent(),
		UnionMembership:                 u.consent(),
		MailEmailOrTextMessages:         u.consent(),
		GeneralHealthData:               u.consent(),
		CrimeVictimStatus:               u.consent(),
		NationalOrigin:                  u.consent(),
		TransgenderOrNonbinaryStatus:    u.consent(),
	}
	c.KnownChildSensitiveDataConsents = UsNatKnownChildSensitiveDataConsentsV2{
		ProcessSensitiveDataFrom13To16: u.consent(),
		ProcessSensitiveDataUnder13:    u.consent(),
		ProcessPersonalDataFrom16To17:  u.consent(),
	}
	c.PersonalDataConsent = u.consent()
	c.MspaCoveredTransaction = u.coveredTransaction()
	c.MspaOptOutOptionMode = u.mspaMode()
	c.MspaServiceProviderMode = u.mspaMode()
	return u.err
}
