package sections

import (
	"fmt"

	"github.com/prebid/go-gpp/constants"
	"github.com/prebid/go-gpp/errortypes"
)

const uspV1Version = '1'

// Flag is one character of a US Privacy string.
type Flag uint8

const (
	FlagNotApplicable Flag = iota
	FlagYes
	FlagNo
)

// UspV1 is the legacy US Privacy section. Unlike every other section it is
// made of plain characters, not base64.
type UspV1 struct {
	OptOutNotice           Flag
	OptOutSale             Flag
	LspaCoveredTransaction Flag
}

func (s *UspV1) ID() constants.SectionID {
	return constants.SectionUspV1
}

func decodeUspV1(raw string) (Section, error) {
	if len(raw) != 4 {
		return nil, &errortypes.MalformedSection{
			Message: fmt.Sprintf("a US Privacy string has 4 characters, got %d", len(raw)),
		}
	}
	if raw[0] != uspV1Version {
		return nil, &errortypes.MalformedSection{
			Message: fmt.Sprintf("unknown US Privacy version %q", raw[0]),
		}
	}

	s := &UspV1{}
	var err error
	if s.OptOutNotice, err = uspFlag(raw[1]); err != nil {
		return nil, err
	}
	if s.OptOutSale, err = uspFlag(raw[2]); err != nil {
		return nil, err
	}
	if s.LspaCoveredTransaction, err = uspFlag(raw[3]); err != nil {
		return nil, err
	}
	return s, nil
}

func uspFlag(c byte) (Flag, error) {
	switch c {
	case 'Y':
		return FlagYes, nil
	case 'N':
		return FlagNo, nil
	case '-':
		return FlagNotApplicable, nil
	}
	return 0, &errortypes.MalformedSection{
		Message: fmt.Sprintf("invalid US Privacy character %q, expected Y, N or -", c),
	}
}
