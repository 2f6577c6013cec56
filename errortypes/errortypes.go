package errortypes

// MalformedInput should be used when the GPP string container itself cannot be read:
// bad delimiter structure, an empty segment, an invalid base64 byte, or a header
// whose declared section ids do not line up with the segments actually present.
type MalformedInput struct {
	Message string
}

func (err *MalformedInput) Error() string {
	return err.Message
}

func (err *MalformedInput) Code() int {
	return MalformedInputErrorCode
}

func (err *MalformedInput) Severity() Severity {
	return SeverityFatal
}

// UnsupportedVersion should be used when the header encodes a GPP version newer than
// this build recognizes. The rest of the string is not guessed at.
type UnsupportedVersion struct {
	Message string
}

func (err *UnsupportedVersion) Error() string {
	return err.Message
}

func (err *UnsupportedVersion) Code() int {
	return UnsupportedVersionErrorCode
}

func (err *UnsupportedVersion) Severity() Severity {
	return SeverityFatal
}

// SectionNotPresent should be used when a section id is requested but the header of
// the given string never declared it. This is a valid request against the wrong
// string, not a decoding failure.
type SectionNotPresent struct {
	Message string
}

func (err *SectionNotPresent) Error() string {
	return err.Message
}

func (err *SectionNotPresent) Code() int {
	return SectionNotPresentErrorCode
}

func (err *SectionNotPresent) Severity() Severity {
	return SeverityWarning
}

// UnsupportedSection should be used when a section id is present in the string but
// this build has no decoder registered for it. Distinct from SectionNotPresent so
// callers can tell "not in this string" from "not in this implementation".
type UnsupportedSection struct {
	Message string
}

func (err *UnsupportedSection) Error() string {
	return err.Message
}

func (err *UnsupportedSection) Code() int {
	return UnsupportedSectionErrorCode
}

func (err *UnsupportedSection) Severity() Severity {
	return SeverityWarning
}

// TruncatedInput should be used when a bit-level read runs past the end of a
// segment's payload. Reads never wrap or zero-fill; they fail with this error.
type TruncatedInput struct {
	Message string
}

func (err *TruncatedInput) Error() string {
	return err.Message
}

func (err *TruncatedInput) Code() int {
	return TruncatedInputErrorCode
}

func (err *TruncatedInput) Severity() Severity {
	return SeverityFatal
}

// MalformedSection should be used when a section payload is internally inconsistent:
// out-of-order range entries, an unknown segment type or version, a field value the
// wire format does not allow, or non-zero trailing padding.
type MalformedSection struct {
	Message string
}

func (err *MalformedSection) Error() string {
	return err.Message
}

func (err *MalformedSection) Code() int {
	return MalformedSectionErrorCode
}

func (err *MalformedSection) Severity() Severity {
	return SeverityFatal
}
