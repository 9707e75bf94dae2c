// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across strutil. Codes classify
//              failures for callers and for structured log output.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial code set

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Validation and parsing
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
	CodeValueOutOfRange  Code = "VALUE_OUT_OF_RANGE"

	// Text utilities
	CodeParseError     Code = "STRUTIL_PARSE_ERROR"
	CodeInvalidPattern Code = "STRUTIL_INVALID_PATTERN"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeValidationFailed, CodeInvalidFormat, CodeValueOutOfRange, CodeInvalidInput:
		return "validation"
	case CodeParseError, CodeInvalidPattern:
		return "strutil"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}

// ExitCode maps the error code to a process exit status for the CLI
func (c Code) ExitCode() int {
	switch c.Category() {
	case "validation", "strutil":
		return 2
	case "configuration":
		return 3
	default:
		return 1
	}
}
