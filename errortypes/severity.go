package errortypes

// Severity represents the severity level of a decoding error.
type Severity int

const (
	// SeverityUnknown represents an unknown severity level.
	SeverityUnknown Severity = iota

	// SeverityFatal represents an error which prevents the section, or the whole
	// string, from being decoded at all.
	SeverityFatal

	// SeverityWarning represents a recoverable condition: the request was valid but
	// cannot be answered by this string or this build.
	SeverityWarning
)

func isFatal(err error) bool {
	s, ok := err.(Coder)
	return !ok || s.Severity() == SeverityFatal
}

// IsWarning returns true if an error is labeled with a Severity of SeverityWarning.
func IsWarning(err error) bool {
	s, ok := err.(Coder)
	return ok && s.Severity() == SeverityWarning
}

// ContainsFatalError checks if the error list contains a fatal error.
func ContainsFatalError(errors []error) bool {
	for _, err := range errors {
		if isFatal(err) {
			return true
		}
	}

	return false
}
