package diag

import "strings"

//go:generate enumer -type=Severity -trimprefix=Severity -transform=lower -json -text -yaml

// Severity represents the importance of a diagnostic.
type Severity int

const (
	// SeverityUnknown represents an unset severity. Consumers treat it as
	// SeverityWarning.
	SeverityUnknown Severity = iota

	// SeverityError indicates a problem that makes the config invalid.
	SeverityError

	// SeverityWarning indicates a likely mistake that the terminal would
	// still tolerate.
	SeverityWarning

	// SeverityInfo indicates an advisory finding.
	SeverityInfo

	// SeverityHint indicates the least intrusive finding, e.g. a
	// deprecation notice.
	SeverityHint
)

// ParseSeverity maps a configuration string to a Severity,
// case-insensitively. Unrecognized strings fall back to SeverityWarning
// rather than failing, so a bad setting never disables diagnostics.
func ParseSeverity(s string) Severity {
	sev, err := SeverityString(strings.ToLower(strings.TrimSpace(s)))
	if err != nil || sev == SeverityUnknown {
		return SeverityWarning
	}

	return sev
}

// OrDefault returns the severity itself, or fallback when unset.
func (i Severity) OrDefault(fallback Severity) Severity {
	if i == SeverityUnknown {
		return fallback
	}

	return i
}
