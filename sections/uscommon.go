package sections

import (
	"fmt"

	"github.com/prebid/go-gpp/bitutils"
	"github.com/prebid/go-gpp/errortypes"
	"github.com/prebid/go-gpp/util/ptrutil"
)

// Two-bit enums shared by the US state sections. Value 0 always means the
// field is not applicable; the unused fourth value falls back to it.

type Notice uint8

const (
	NoticeNotApplicable Notice = iota
	NoticeProvided
	NoticeNotProvided
)

type OptOut uint8

const (
	OptOutNotApplicable OptOut = iota
	OptOutOptedOut
	OptOutDidNotOptOut
)

type Consent uint8

const (
	ConsentNotApplicable Consent = iota
	ConsentNo
	ConsentYes
)

type MspaMode uint8

const (
	MspaNotApplicable MspaMode = iota
	MspaYes
	MspaNo
)

func readNotice(r *bitutils.BitReader) (Notice, error) {
	val, err := r.ReadUint(2)
	if err != nil || val > 2 {
		return NoticeNotApplicable, err
	}
	return Notice(val), nil
}

func readOptOut(r *bitutils.BitReader) (OptOut, error) {
	val, err := r.ReadUint(2)
	if err != nil || val > 2 {
		return OptOutNotApplicable, err
	}
	return OptOut(val), nil
}

func readConsent(r *bitutils.BitReader) (Consent, error) {
	val, err := r.ReadUint(2)
	if err != nil || val > 2 {
		return ConsentNotApplicable, err
	}
	return Consent(val), nil
}

func readMspaMode(r *bitutils.BitReader) (MspaMode, error) {
	val, err := r.ReadUint(2)
	if err != nil || val > 2 {
		return MspaNotApplicable, err
	}
	return MspaMode(val), nil
}

// readMspaCoveredTransaction reads the only US field with no not-applicable
// value: 1 means covered, 2 means not covered.
func readMspaCoveredTransaction(r *bitutils.BitReader) (bool, error) {
	val, err := r.ReadUint(2)
	if err != nil {
		return false, err
	}
	switch val {
	case 1:
		return true, nil
	case 2:
		return false, nil
	}
	return false, &errortypes.MalformedSection{
		Message: fmt.Sprintf("mspa covered transaction must be 1 or 2, got %d", val),
	}
}

// usReader wraps a BitReader with a sticky error so the state cores can be
// written as flat lists of field assignments. After the first failure every
// further read returns the zero value.
type usReader struct {
	r   *bitutils.BitReader
	err error
}

func (u *usReader) notice() Notice {
	if u.err != nil {
		return NoticeNotApplicable
	}
	val, err := readNotice(u.r)
	u.err = err
	return val
}

func (u *usReader) optOut() OptOut {
	if u.err != nil {
		return OptOutNotApplicable
	}
	val, err := readOptOut(u.r)
	u.err = err
	return val
}

func (u *usReader) consent() Consent {
	if u.err != nil {
		return ConsentNotApplicable
	}
	val, err := readConsent(u.r)
	u.err = err
	return val
}

func (u *usReader) mspaMode() MspaMode {
	if u.err != nil {
		return MspaNotApplicable
	}
	val, err := readMspaMode(u.r)
	u.err = err
	return val
}

func (u *usReader) coveredTransaction() bool {
	if u.err != nil {
		return false
	}
	val, err := readMspaCoveredTransaction(u.r)
	u.err = err
	return val
}

const gpcSegmentType = 1

// decodeUsSegments decodes a US section string: the core segment, decoded by
// core, optionally followed by a GPC segment holding a single flag.
func decodeUsSegments(raw string, core func(*bitutils.BitReader) error) (*bool, error) {
	var gpc *bool
	err := decodeSegmented(raw, 2, core, func(segmentType uint8, r *bitutils.BitReader) error {
		if segmentType != gpcSegmentType {
			return unknownSegmentType(segmentType)
		}
		val, err := r.ReadBool()
		if err != nil {
			return err
		}
		gpc = ptrutil.ToPtr(val)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return gpc, nil
}
