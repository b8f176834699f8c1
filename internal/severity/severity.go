// Package severity provides the severity levels attached to violations
// reported while converting an OpenAPI 2.0 document.
//
// The levels are ordered from least to most severe:
// Info < Warning < Error
package severity

import "fmt"

// Severity indicates how serious a reported violation is.
type Severity int

const (
	// SeverityError indicates a problem that makes part of the output unreliable.
	SeverityError Severity = iota

	// SeverityWarning indicates a non-fatal problem in the source document,
	// such as a malformed vendor extension or a type name collision.
	SeverityWarning

	// SeverityInfo indicates informational messages about processing choices.
	SeverityInfo
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Rank orders severities from least (0) to most severe.
func (s Severity) Rank() int {
	switch s {
	case SeverityInfo:
		return 0
	case SeverityWarning:
		return 1
	case SeverityError:
		return 2
	default:
		return -1
	}
}

// MarshalText encodes the severity as its string name.
func (s Severity) MarshalText() ([]byte, error) {
	if s.Rank() < 0 {
		return nil, fmt.Errorf("unknown severity %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText decodes a severity name produced by MarshalText.
func (s *Severity) UnmarshalText(text []byte) error {
	switch string(text) {
	case "info":
		*s = SeverityInfo
	case "warning":
		*s = SeverityWarning
	case "error":
		*s = SeverityError
	default:
		return fmt.Errorf("unknown severity %q", text)
	}
	return nil
}
