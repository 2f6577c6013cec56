package sections

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prebid/go-gpp/constants"
	"github.com/prebid/go-gpp/errortypes"
)

func TestDecodeUspV1(t *testing.T) {
	tests := []struct {
		input    string
		expected UspV1
	}{
		{
			input: "1YN-",
			expected: UspV1{
				OptOutNotice:           FlagYes,
				OptOutSale:             FlagNo,
				LspaCoveredTransaction: FlagNotApplicable,
			},
		},
		{
			input: "1NNN",
			expected: UspV1{
				OptOutNotice:           FlagNo,
				OptOutSale:             FlagNo,
				LspaCoveredTransaction: FlagNo,
			},
		},
		{
			input: "1---",
			expected: UspV1{
				OptOutNotice:           FlagNotApplicable,
				OptOutSale:             FlagNotApplicable,
				LspaCoveredTransaction: FlagNotApplicable,
			},
		},
	}

	for _, test := range tests {
		section, err := Decode(constants.SectionUspV1, test.input)
		require.NoError(t, err, test.input)

		s, ok := section.(*UspV1)
		require.True(t, ok, test.input)
		assert.Equal(t, constants.SectionUspV1, s.ID())
		assert.Equal(t, test.expected, *s, test.input)
	}
}

func TestDecodeUspV1Errors(t *testing.T) {
	for _, input := range []string{"", "1", "1N", "1YN", "1YN-N", "2YN-", "ZYN-", "1AN-", "1Y1-", "1YNX"} {
		_, err := Decode(constants.SectionUspV1, input)
		require.Error(t, err, input)
		assert.IsType(t, &errortypes.MalformedSection{}, err, input)
	}
}
