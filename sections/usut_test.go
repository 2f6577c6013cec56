package sections

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prebid/go-gpp/constants"
	"github.com/prebid/go-gpp/errortypes"
)

func TestDecodeUsUt(t *testing.T) {
	section, err := Decode(constants.SectionUsUt, "BVVVVVmA")
	require.NoError(t, err)

	s, ok := section.(*UsUt)
	require.True(t, ok)
	assert.Equal(t, constants.SectionUsUt, s.ID())

	expected := UsUtCore{
		SharingNotice:                       NoticeProvided,
		SaleOptOutNotice:                    NoticeProvided,
		TargetedAdvertisingOptOutNotice:     NoticeProvided,
		SensitiveDataProcessingOptOutNotice: NoticeProvided,
		SaleOptOut:                          OptOutOptedOut,
		TargetedAdvertisingOptOut:           OptOutOptedOut,
		SensitiveDataProcessing: UsUtSensitiveDataProcessing{
			RacialOrEthnicOrigin:           ConsentNo,
			ReligiousBeliefs:               ConsentNo,
			SexualOrientation:              ConsentNo,
			CitizenshipOrImmigrationStatus: ConsentNo,
			HealthData:                     ConsentNo,
			GeneticUniqueIdentification:    ConsentNo,
			BiometricUniqueIdentification:  ConsentNo,
			SpecificGeolocationData:        ConsentNo,
		},
		KnownChildSensitiveDataConsents: ConsentNo,
		MspaCoveredTransaction:          false,
		MspaOptOutOptionMode:            MspaYes,
		MspaServiceProviderMode:         MspaNo,
	}
	assert.Equal(t, expected, s.Core)
	assert.Empty(t, s.Validate())
}

func TestDecodeUsUtNotApplicable(t *testing.T) {
	section, err := Decode(constants.SectionUsUt, "BAAAAAQA")
	require.NoError(t, err)

	s := section.(*UsUt)
	assert.Equal(t, NoticeNotApplicable, s.Core.SharingNotice)
	assert.Equal(t, OptOutNotApplicable, s.Core.SaleOptOut)
	assert.Equal(t, ConsentNotApplicable, s.Core.SensitiveDataProcessing.HealthData)
	assert.True(t, s.Core.MspaCoveredTransaction)
	assert.Equal(t, MspaNotApplicable, s.Core.MspaOptOutOptionMode)
	assert.Equal(t, MspaNotApplicable, s.Core.MspaServiceProviderMode)
	assert.Empty(t, s.Validate())
}

func TestDecodeUsUtNoGpcSegment(t *testing.T) {
	// Utah has no optional segments
	_, err := Decode(constants.SectionUsUt, "BVVVVVmA.YA")
	require.Error(t, err)
	assert.IsType(t, &errortypes.MalformedInput{}, err)
}

func TestUsUtValidate(t *testing.T) {
	s := &UsUt{Core: UsUtCore{
		SaleOptOutNotice:        NoticeProvided,
		SaleOptOut:              OptOutNotApplicable,
		MspaOptOutOptionMode:    MspaYes,
		MspaServiceProviderMode: MspaYes,
	}}

	errs := s.Validate()
	require.Len(t, errs, 3)
	assert.EqualError(t, errs[0], "SaleOptOutNotice (1) conflicts with SaleOptOut (0)")
	assert.EqualError(t, errs[1], "MspaServiceProviderMode (1) conflicts with MspaOptOutOptionMode (1)")
	assert.EqualError(t, errs[2], "MspaServiceProviderMode (1) conflicts with SaleOptOutNotice (1)")
}
