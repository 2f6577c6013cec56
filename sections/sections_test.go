package sections

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prebid/go-gpp/bitutils"
	"github.com/prebid/go-gpp/constants"
	"github.com/prebid/go-gpp/errortypes"
)

const base64Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

// segment encodes a string of literal binary digits as one base64 segment,
// zero-filling up to a character boundary.
func segment(bits string) string {
	bits = strings.ReplaceAll(bits, " ", "")
	for len(bits)%6 != 0 {
		bits += "0"
	}

	var sb strings.Builder
	for i := 0; i < len(bits); i += 6 {
		var val int
		for _, c := range bits[i : i+6] {
			val = val<<1 | int(c-'0')
		}
		sb.WriteByte(base64Alphabet[val])
	}
	return sb.String()
}

func TestSegmentHelper(t *testing.T) {
	assert.Equal(t, "DBABM", segment("000011 000001 000000 000001 001100 00"))
	assert.Equal(t, "BA", segment("000001"))
}

func TestDecodeUnsupportedSection(t *testing.T) {
	for _, id := range []constants.SectionID{
		constants.SectionGppHeader,
		constants.SectionSignalIntegrity,
		constants.SectionID(100),
	} {
		assert.False(t, Supported(id), id)

		_, err := Decode(id, "BAAAAAEA")
		require.Error(t, err, id)
		assert.IsType(t, &errortypes.UnsupportedSection{}, err, id)
	}
}

func TestDecodeSupportedSections(t *testing.T) {
	supported := []constants.SectionID{
		constants.SectionTcfEuV1,
		constants.SectionTcfEuV2,
		constants.SectionTcfCaV1,
		constants.SectionUspV1,
		constants.SectionUsNat,
		constants.SectionUsCa,
		constants.SectionUsVa,
		constants.SectionUsCo,
		constants.SectionUsUt,
		constants.SectionUsCt,
		constants.SectionUsFl,
		constants.SectionUsMt,
		constants.SectionUsOr,
		constants.SectionUsTx,
		constants.SectionUsDe,
		constants.SectionUsIa,
		constants.SectionUsNe,
		constants.SectionUsNh,
		constants.SectionUsNj,
		constants.SectionUsTn,
	}
	for _, id := range supported {
		assert.True(t, Supported(id), id)
	}
}

func TestDecodeSegmentedDuplicateType(t *testing.T) {
	// two GPC segments on a Connecticut string
	_, err := Decode(constants.SectionUsCt, "BVVVVVVg.YA.YA")
	require.Error(t, err)
	assert.IsType(t, &errortypes.MalformedSection{}, err)
	assert.Contains(t, err.Error(), "duplicate segment type")
}

func TestDecodeNonZeroPadding(t *testing.T) {
	// a Virginia core with a set bit after the final field
	raw := segment("000001" + strings.Repeat("00", 14) + "01 00 00" + "1")
	_, err := Decode(constants.SectionUsVa, raw)
	require.Error(t, err)
	assert.IsType(t, &errortypes.MalformedSection{}, err)
	assert.Contains(t, err.Error(), "padding")
}

func TestDecodeInvalidBase64(t *testing.T) {
	_, err := Decode(constants.SectionUsVa, "BAAA!AAA")
	require.Error(t, err)
	assert.IsType(t, &errortypes.MalformedInput{}, err)
}

// assertIDs compares an id set against the ids it should contain.
func assertIDs(t *testing.T, expected []uint16, set bitutils.IDSet, msgAndArgs ...interface{}) {
	t.Helper()
	require.NotNil(t, set, msgAndArgs...)
	assert.Equal(t, expected, set.IDs(), msgAndArgs...)
}
