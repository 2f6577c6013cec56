package sections

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xorcare/pointer"

	"github.com/prebid/go-gpp/constants"
	"github.com/prebid/go-gpp/errortypes"
)

func TestDecodeUsCt(t *testing.T) {
	section, err := Decode(constants.SectionUsCt, "BVVVVVVg")
	require.NoError(t, err)

	s, ok := section.(*UsCt)
	require.True(t, ok)
	assert.Equal(t, constants.SectionUsCt, s.ID())
	assert.Nil(t, s.Gpc)

	expected := UsCtCore{
		SharingNotice:                   NoticeProvided,
		SaleOptOutNotice:                NoticeProvided,
		TargetedAdvertisingOptOutNotice: NoticeProvided,
		SaleOptOut:                      OptOutOptedOut,
		TargetedAdvertisingOptOut:       OptOutOptedOut,
		SensitiveDataProcessing: UsCtSensitiveDataProcessing{
			RacialOrEthnicOrigin:           ConsentNo,
			ReligiousBeliefs:               ConsentNo,
			HealthConditionOrDiagnosis:     ConsentNo,
			SexLifeOrSexualOrientation:     ConsentNo,
			CitizenshipOrImmigrationStatus: ConsentNo,
			GeneticUniqueIdentification:    ConsentNo,
			BiometricUniqueIdentification:  ConsentNo,
			PreciseGeolocationData:         ConsentNo,
		},
		KnownChildSensitiveDataConsents: UsCtKnownChildSensitiveDataConsents{
			ProcessSensitiveDataFromKnownChild: ConsentNo,
			SellPersonalDataFrom13To16:         ConsentNo,
			ProcessPersonalDataFrom13To16:      ConsentNo,
		},
		MspaCoveredTransaction:  true,
		MspaOptOutOptionMode:    MspaYes,
		MspaServiceProviderMode: MspaNo,
	}
	assert.Equal(t, expected, s.Core)
	assert.Empty(t, s.Validate())
}

func TestDecodeUsCtNotApplicable(t *testing.T) {
	section, err := Decode(constants.SectionUsCt, "BAAAAAEA")
	require.NoError(t, err)

	s := section.(*UsCt)
	assert.Equal(t, NoticeNotApplicable, s.Core.SharingNotice)
	assert.Equal(t, OptOutNotApplicable, s.Core.SaleOptOut)
	assert.Equal(t, ConsentNotApplicable, s.Core.SensitiveDataProcessing.ReligiousBeliefs)
	assert.True(t, s.Core.MspaCoveredTransaction)
	assert.Equal(t, MspaNotApplicable, s.Core.MspaOptOutOptionMode)
	assert.Equal(t, MspaNotApplicable, s.Core.MspaServiceProviderMode)
	assert.Empty(t, s.Validate())
}

func TestDecodeUsCtGpc(t *testing.T) {
	section, err := Decode(constants.SectionUsCt, "BVVVVVVg.YA")
	require.NoError(t, err)

	s := section.(*UsCt)
	assert.Equal(t, pointer.Bool(true), s.Gpc)
}

func TestDecodeUsCtErrors(t *testing.T) {
	tests := []struct {
		description string
		input       string
		expected    error
	}{
		{
			description: "empty string",
			input:       "",
			expected:    &errortypes.TruncatedInput{},
		},
		{
			description: "wrong version",
			input:       "CVVVVVVg",
			expected:    &errortypes.MalformedSection{},
		},
		{
			description: "unknown segment type",
			input:       "BVVVVVVg.AA",
			expected:    &errortypes.MalformedSection{},
		},
	}

	for _, test := range tests {
		_, err := Decode(constants.SectionUsCt, test.input)
		require.Error(t, err, test.description)
		assert.IsType(t, test.expected, err, test.description)
	}
}
