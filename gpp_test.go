package gpp

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prebid/go-gpp/constants"
	"github.com/prebid/go-gpp/errortypes"
	"github.com/prebid/go-gpp/sections"
)

func TestParseHeader(t *testing.T) {
	tests := []struct {
		input    string
		expected []constants.SectionID
	}{
		{
			input:    "DBABM~CPXxRfAPXxRfAAfKABENB-CgAAAAAAAAAAYgAAAAAAAA",
			expected: []constants.SectionID{constants.SectionTcfEuV2},
		},
		{
			input:    "DBACNY~CPXxRfAPXxRfAAfKABENB-CgAAAAAAAAAAYgAAAAAAAA~1YN-",
			expected: []constants.SectionID{constants.SectionTcfEuV2, constants.SectionUspV1},
		},
		{
			input:    "DBABjw~BPXuQIAPXuQIAAfKABENB-CgAAAAAAAAAAAAAAAA.YAAAAAAAAAA~1YNN",
			expected: []constants.SectionID{constants.SectionTcfCaV1, constants.SectionUspV1},
		},
	}

	for _, test := range tests {
		c, err := Parse(test.input)
		require.NoError(t, err, test.input)
		assert.Equal(t, uint8(1), c.Version, test.input)
		assert.Equal(t, test.expected, c.SectionTypes, test.input)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		description string
		input       string
		expected    error
	}{
		{
			description: "empty string",
			input:       "",
			expected:    &errortypes.MalformedInput{},
		},
		{
			description: "empty segment",
			input:       "not~valid~~base64!!",
			expected:    &errortypes.MalformedInput{},
		},
		{
			description: "a bare TCF string is not a GPP string",
			input:       "CPXxRfAPXxRfAAfKABENB-CgAAAAAAAAAAYgAAAAAAAA",
			expected:    &errortypes.MalformedInput{},
		},
		{
			description: "header version 2",
			input:       "DCABM~BAAA",
			expected:    &errortypes.UnsupportedVersion{},
		},
		{
			description: "header version 0",
			input:       "DAABM~BAAA",
			expected:    &errortypes.MalformedInput{},
		},
		{
			description: "two ids but one segment",
			input:       "DBACNY~BVVVVVVg",
			expected:    &errortypes.MalformedInput{},
		},
		{
			description: "one id but two segments",
			input:       "DBABM~BVVVVVVg~1YN-",
			expected:    &errortypes.MalformedInput{},
		},
		{
			description: "invalid base64 in the header",
			input:       "DBAB!~1YN-",
			expected:    &errortypes.MalformedInput{},
		},
		{
			description: "truncated header",
			input:       "D~1YN-",
			expected:    &errortypes.TruncatedInput{},
		},
	}

	for _, test := range tests {
		_, err := Parse(test.input)
		require.Error(t, err, test.description)
		assert.IsType(t, test.expected, err, test.description)
	}
}

func TestSectionRaw(t *testing.T) {
	c, err := Parse("DBABjw~BPXuQIAPXuQIAAfKABENB-CgAAAAAAAAAAAAAAAA.YAAAAAAAAAA~1YNN")
	require.NoError(t, err)

	raw, ok := c.Section(constants.SectionUspV1)
	assert.True(t, ok)
	assert.Equal(t, "1YNN", raw)

	raw, ok = c.Section(constants.SectionTcfCaV1)
	assert.True(t, ok)
	assert.Equal(t, "BPXuQIAPXuQIAAfKABENB-CgAAAAAAAAAAAAAAAA.YAAAAAAAAAA", raw)

	_, ok = c.Section(constants.SectionTcfEuV2)
	assert.False(t, ok)
}

func TestDecodeSection(t *testing.T) {
	c, err := Parse("DBABM~CPXxRfAPXxRfAAfKABENB-CgAAAAAAAAAAYgAAAAAAAA")
	require.NoError(t, err)

	section, err := c.DecodeSection(constants.SectionTcfEuV2)
	require.NoError(t, err)

	s, ok := section.(*sections.TcfEuV2)
	require.True(t, ok)
	assert.Equal(t, uint16(31), s.Core.CmpID)
	assert.Equal(t, "EN", s.Core.ConsentLanguage)
}

func TestDecodeSectionNotPresent(t *testing.T) {
	c, err := Parse("DBABM~CPXxRfAPXxRfAAfKABENB-CgAAAAAAAAAAYgAAAAAAAA")
	require.NoError(t, err)

	_, err = c.DecodeSection(constants.SectionUspV1)
	require.Error(t, err)
	assert.IsType(t, &errortypes.SectionNotPresent{}, err)
}

func TestDecodeSectionUnsupported(t *testing.T) {
	// the header declares the signal integrity section, id 4
	c, err := Parse("DBABW~BAAA")
	require.NoError(t, err)
	require.Equal(t, []constants.SectionID{constants.SectionSignalIntegrity}, c.SectionTypes)

	_, err = c.DecodeSection(constants.SectionSignalIntegrity)
	require.Error(t, err)
	assert.IsType(t, &errortypes.UnsupportedSection{}, err)
}

func TestDecodeSectionCached(t *testing.T) {
	c, err := Parse("DBABM~CPXxRfAPXxRfAAfKABENB-CgAAAAAAAAAAYgAAAAAAAA")
	require.NoError(t, err)

	first, err := c.DecodeSection(constants.SectionTcfEuV2)
	require.NoError(t, err)
	second, err := c.DecodeSection(constants.SectionTcfEuV2)
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestDecodeSectionFailureCached(t *testing.T) {
	// parse succeeds, the truncated section fails only when decoded
	c, err := Parse("DBABM~CPX")
	require.NoError(t, err)

	_, err1 := c.DecodeSection(constants.SectionTcfEuV2)
	require.Error(t, err1)
	assert.IsType(t, &errortypes.TruncatedInput{}, err1)

	_, err2 := c.DecodeSection(constants.SectionTcfEuV2)
	assert.Same(t, err1, err2)
}

func TestDecodeAll(t *testing.T) {
	c, err := Parse("DBABjw~BPXuQIAPXuQIAAfKABENB-CgAAAAAAAAAAAAAAAA.YAAAAAAAAAA~1YNN")
	require.NoError(t, err)

	results := c.DecodeAll()
	require.Len(t, results, 2)

	ca := results[constants.SectionTcfCaV1]
	require.NoError(t, ca.Err)
	assert.IsType(t, &sections.TcfCaV1{}, ca.Section)

	usp := results[constants.SectionUspV1]
	require.NoError(t, usp.Err)
	s, ok := usp.Section.(*sections.UspV1)
	require.True(t, ok)
	assert.Equal(t, sections.FlagYes, s.OptOutNotice)
	assert.Equal(t, sections.FlagNo, s.OptOutSale)
	assert.Equal(t, sections.FlagNo, s.LspaCoveredTransaction)
}

func TestDecodeAllPartialFailure(t *testing.T) {
	c, err := Parse("DBACNY~CPX~1YN-")
	require.NoError(t, err)

	results := c.DecodeAll()
	require.Len(t, results, 2)

	assert.Error(t, results[constants.SectionTcfEuV2].Err)
	assert.Nil(t, results[constants.SectionTcfEuV2].Section)

	require.NoError(t, results[constants.SectionUspV1].Err)
	assert.NotNil(t, results[constants.SectionUspV1].Section)
}

func TestDecodeSectionConcurrent(t *testing.T) {
	c, err := Parse("DBABjw~BPXuQIAPXuQIAAfKABENB-CgAAAAAAAAAAAAAAAA.YAAAAAAAAAA~1YNN")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, id := range c.SectionTypes {
				section, err := c.DecodeSection(id)
				assert.NoError(t, err)
				assert.NotNil(t, section)
			}
		}()
	}
	wg.Wait()
}
