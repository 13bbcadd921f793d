package lint

import "strings"

// Severity indicates the importance of a diagnostic.
type Severity int

// Severity levels, most severe first.
const (
	// SeverityFatal stops the whole run as soon as it is reported.
	SeverityFatal Severity = iota
	// SeverityError indicates a convention violation that must be fixed.
	SeverityError
	// SeverityWarning indicates a potential issue that should be reviewed.
	SeverityWarning
)

// String returns the string representation of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityFatal:
		return "fatal"
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// ParseSeverity converts a string to a Severity value.
// Returns the severity and true if valid, or SeverityError and false if invalid.
func ParseSeverity(s string) (Severity, bool) {
	switch strings.ToLower(s) {
	case "fatal", "critical":
		return SeverityFatal, true
	case "error":
		return SeverityError, true
	case "warning", "warn":
		return SeverityWarning, true
	default:
		return SeverityError, false
	}
}
