package bitutils

import (
	"fmt"

	"github.com/prebid/go-gpp/errortypes"
)

// DecodeBase64URL decodes an unpadded URL-safe base64 string into bytes,
// 6 bits per character. The standard library decoder is unsuitable here:
// GPP segments may be any length in characters, including lengths that are
// impossible for byte-aligned base64, so the final partial byte is
// zero-filled instead of rejected.
func DecodeBase64URL(s string) ([]byte, error) {
	out := make([]byte, 0, (len(s)*6+7)/8)

	var acc uint
	var accBits uint
	for i := 0; i < len(s); i++ {
		val, ok := base64Value(s[i])
		if !ok {
			return nil, &errortypes.MalformedInput{
				Message: fmt.Sprintf("invalid base64 byte %q at offset %d", s[i], i),
			}
		}

		acc = acc<<6 | uint(val)
		accBits += 6
		if accBits >= 8 {
			accBits -= 8
			out = append(out, byte(acc>>accBits))
		}
	}
	if accBits > 0 {
		out = append(out, byte(acc<<(8-accBits)))
	}
	return out, nil
}

func base64Value(b byte) (uint8, bool) {
	switch {
	case b >= 'A' && b <= 'Z':
		return b - 'A', true
	case b >= 'a' && b <= 'z':
		return b - 'a' + 26, true
	case b >= '0' && b <= '9':
		return b - '0' + 52, true
	case b == '-':
		return 62, true
	case b == '_':
		return 63, true
	}
	return 0, false
}
