// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels used to prioritize errors in logs.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow covers bad user input such as malformed numbers
	SeverityLow Severity = iota

	// SeverityMedium is the default for errors without a specific code
	SeverityMedium

	// SeverityHigh covers failures the caller cannot fix by changing input
	SeverityHigh

	// SeverityCritical makes the process unusable
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// SeverityFromCode determines the default severity for a code
func SeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityHigh
	case CodeConfigError, CodeInvalidConfig, CodeNotFound:
		return SeverityMedium
	case CodeInvalidInput, CodeValidationFailed, CodeInvalidFormat,
		CodeValueOutOfRange, CodeParseError, CodeInvalidPattern:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
