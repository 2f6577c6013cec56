package bitutils

import (
	"fmt"
	"time"

	"github.com/prebid/go-gpp/errortypes"
)

// BitReader is a cursor over a byte slice which reads MSB-first, without any
// alignment requirements. Reads past the end of the data fail with
// errortypes.TruncatedInput; they never wrap or zero-fill.
type BitReader struct {
	data []byte
	pos  uint
}

func NewBitReader(data []byte) *BitReader {
	return &BitReader{data: data}
}

// Position returns the number of bits consumed so far.
func (r *BitReader) Position() uint {
	return r.pos
}

// RemainingBits returns the number of unread bits left in the data.
func (r *BitReader) RemainingBits() uint {
	return uint(len(r.data))*8 - r.pos
}

// IsByteAligned reports whether the cursor sits on a byte boundary.
func (r *BitReader) IsByteAligned() bool {
	return r.pos%8 == 0
}

func (r *BitReader) checkBits(n uint) error {
	if r.pos+n > uint(len(r.data))*8 {
		return &errortypes.TruncatedInput{
			Message: fmt.Sprintf("expected %d bits at bit %d, but the data ends at bit %d", n, r.pos, len(r.data)*8),
		}
	}
	return nil
}

// ReadUint reads the next n bits (1 to 64) as an unsigned integer.
func (r *BitReader) ReadUint(n uint) (uint64, error) {
	if n < 1 || n > 64 {
		return 0, fmt.Errorf("bitutils: ReadUint supports 1 to 64 bits, got %d", n)
	}
	if err := r.checkBits(n); err != nil {
		return 0, err
	}

	var val uint64
	for i := uint(0); i < n; i++ {
		bit := r.pos + i
		val = val<<1 | uint64(r.data[bit/8]>>(7-bit%8)&1)
	}
	r.pos += n
	return val, nil
}

func (r *BitReader) ReadBool() (bool, error) {
	val, err := r.ReadUint(1)
	return val == 1, err
}

// Skip advances the cursor by n bits without decoding them.
func (r *BitReader) Skip(n uint) error {
	if err := r.checkBits(n); err != nil {
		return err
	}
	r.pos += n
	return nil
}

// ReadChar6 reads a single 6-bit character, mapping 0 to 'A' through 25 to 'Z'.
func (r *BitReader) ReadChar6() (byte, error) {
	val, err := r.ReadUint(6)
	if err != nil {
		return 0, err
	}
	return byte(val) + 'A', nil
}

// ReadString reads a string made of chars 6-bit characters.
func (r *BitReader) ReadString(chars uint) (string, error) {
	buf := make([]byte, chars)
	for i := range buf {
		c, err := r.ReadChar6()
		if err != nil {
			return "", err
		}
		buf[i] = c
	}
	return string(buf), nil
}

// ReadFixedBitfield reads n flags, one bit each.
func (r *BitReader) ReadFixedBitfield(n uint) ([]bool, error) {
	if err := r.checkBits(n); err != nil {
		return nil, err
	}

	bits := make([]bool, n)
	for i := range bits {
		val, err := r.ReadUint(1)
		if err != nil {
			return nil, err
		}
		bits[i] = val == 1
	}
	return bits, nil
}

// ReadDatetime reads a 36-bit count of deciseconds since the Unix epoch.
func (r *BitReader) ReadDatetime() (time.Time, error) {
	val, err := r.ReadUint(36)
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(int64(val/10), int64(val%10)*int64(100*time.Millisecond)).UTC(), nil
}
