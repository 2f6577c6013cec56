package sections

import "fmt"

// ValidationError reports two decoded fields whose values cannot legally
// appear together under the MSPA.
type ValidationError struct {
	Field1 string
	Value1 uint8
	Field2 string
	Value2 uint8
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s (%d) conflicts with %s (%d)", e.Field1, e.Value1, e.Field2, e.Value2)
}

func validationError(field1 string, val1 uint8, field2 string, val2 uint8) error {
	return &ValidationError{Field1: field1, Value1: val1, Field2: field2, Value2: val2}
}

// A notice and its opt-out must be absent together, or the opt-out must be
// answered whenever the notice was provided, or opted out when it wasn't.
func noticeAndOptOutOk(notice Notice, optOut OptOut) bool {
	return notice == NoticeNotApplicable && optOut == OptOutNotApplicable ||
		notice == NoticeProvided && optOut != OptOutNotApplicable ||
		notice == NoticeNotProvided && optOut == OptOutOptedOut
}

// validateMspaCore holds the consistency rules shared by the state sections
// which define validation: sale and targeted advertising notice pairs, plus
// the service provider mode against the opt-out mode and sale notice.
func validateMspaCore(
	saleOptOutNotice Notice, saleOptOut OptOut,
	targetedAdvertisingOptOutNotice Notice, targetedAdvertisingOptOut OptOut,
	mspaOptOutOptionMode, mspaServiceProviderMode MspaMode,
) []error {
	var errs []error

	if !noticeAndOptOutOk(saleOptOutNotice, saleOptOut) {
		errs = append(errs, validationError(
			"SaleOptOutNotice", uint8(saleOptOutNotice),
			"SaleOptOut", uint8(saleOptOut)))
	}
	if !noticeAndOptOutOk(targetedAdvertisingOptOutNotice, targetedAdvertisingOptOut) {
		errs = append(errs, validationError(
			"TargetedAdvertisingOptOutNotice", uint8(targetedAdvertisingOptOutNotice),
			"TargetedAdvertisingOptOut", uint8(targetedAdvertisingOptOut)))
	}

	switch mspaServiceProviderMode {
	case MspaNotApplicable:
		if saleOptOutNotice != NoticeNotApplicable {
			errs = append(errs, validationError(
				"MspaServiceProviderMode", uint8(mspaServiceProviderMode),
				"SaleOptOutNotice", uint8(saleOptOutNotice)))
		}
	case MspaYes:
		if mspaOptOutOptionMode != MspaNo {
			errs = append(errs, validationError(
				"MspaServiceProviderMode", uint8(mspaServiceProviderMode),
				"MspaOptOutOptionMode", uint8(mspaOptOutOptionMode)))
		}
		if saleOptOutNotice != NoticeNotApplicable {
			errs = append(errs, validationError(
				"MspaServiceProviderMode", uint8(mspaServiceProviderMode),
				"SaleOptOutNotice", uint8(saleOptOutNotice)))
		}
	case MspaNo:
		if mspaOptOutOptionMode != MspaYes {
			errs = append(errs, validationError(
				"MspaServiceProviderMode", uint8(mspaServiceProviderMode),
				"MspaOptOutOptionMode", uint8(mspaOptOutOptionMode)))
		}
	}

	return errs
}
