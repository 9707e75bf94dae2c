// File: errors.go
// Title: Standard Error Constructors
// Description: Provides the error builder and the standard constructors
//              every strutil package uses instead of fmt.Errorf or
//              errors.New, so that failures always carry a module, an
//              operation, a code and a severity.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package errors

import (
	"fmt"

	strerror "github.com/msto63/strutil/core/error"
)

// Module identifiers for error categorization
const (
	ModuleStrutil = "strutil"
	ModuleConfig  = "config"
	ModuleLog     = "log"
	ModuleCLI     = "cli"
)

// ErrorBuilder provides a fluent interface for building standardized errors
type ErrorBuilder struct {
	module    string
	operation string
	message   string
	cause     error
	details   map[string]interface{}
	severity  strerror.Severity
	code      strerror.Code

	severitySet bool
}

// NewErrorBuilder creates a new error builder for the specified module
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{
		module:   module,
		details:  make(map[string]interface{}),
		severity: strerror.SeverityMedium,
		code:     strerror.CodeUnknown,
	}
}

// Operation sets the operation name for the error
func (eb *ErrorBuilder) Operation(operation string) *ErrorBuilder {
	eb.operation = operation
	return eb
}

// Message sets the error message
func (eb *ErrorBuilder) Message(message string) *ErrorBuilder {
	eb.message = message
	return eb
}

// Messagef sets the error message with formatting
func (eb *ErrorBuilder) Messagef(format string, args ...interface{}) *ErrorBuilder {
	eb.message = fmt.Sprintf(format, args...)
	return eb
}

// Cause sets the underlying cause of the error
func (eb *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	eb.cause = cause
	return eb
}

// Detail adds a detail key-value pair to the error
func (eb *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	eb.details[key] = value
	return eb
}

// Severity sets the error severity
func (eb *ErrorBuilder) Severity(severity strerror.Severity) *ErrorBuilder {
	eb.severity = severity
	eb.severitySet = true
	return eb
}

// Code sets the error code
func (eb *ErrorBuilder) Code(code strerror.Code) *ErrorBuilder {
	eb.code = code
	return eb
}

// Build creates the final error
func (eb *ErrorBuilder) Build() *strerror.Error {
	message := eb.message
	if message == "" {
		if eb.operation != "" {
			message = fmt.Sprintf("%s.%s failed", eb.module, eb.operation)
		} else {
			message = fmt.Sprintf("%s operation failed", eb.module)
		}
	}

	var err *strerror.Error
	if eb.cause != nil {
		err = strerror.Wrap(eb.cause, message)
	} else {
		err = strerror.New(message)
	}

	err.WithDetail("module", eb.module)
	if eb.operation != "" {
		err.WithOperation(eb.module + "." + eb.operation).WithDetail("operation", eb.operation)
	}

	err.WithDetails(eb.details)
	if eb.code != strerror.CodeUnknown {
		err.WithCode(eb.code)
	}
	if eb.severitySet {
		err.WithSeverity(eb.severity)
	}
	return err
}

// InvalidInput creates a standardized invalid input error
func InvalidInput(module, operation string, input interface{}, expected string) *strerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("invalid input for %s.%s", module, operation).
		Code(strerror.CodeInvalidInput).
		Detail("input", input).
		Detail("expected", expected).
		Severity(strerror.SeverityLow).
		Build()
}

// InvalidFormat creates a standardized format error
func InvalidFormat(module, operation string, input interface{}, expectedFormat string) *strerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("invalid format in %s.%s", module, operation).
		Code(strerror.CodeInvalidFormat).
		Detail("input", input).
		Detail("expected_format", expectedFormat).
		Severity(strerror.SeverityLow).
		Build()
}

// OutOfRange creates a standardized out of range error
func OutOfRange(module, field string, value, min, max interface{}) *strerror.Error {
	return NewErrorBuilder(module).
		Operation("validate_" + field).
		Messagef("validation failed: %s out of range", field).
		Code(strerror.CodeValueOutOfRange).
		Detail("field", field).
		Detail("value", value).
		Detail("min", min).
		Detail("max", max).
		Severity(strerror.SeverityLow).
		Build()
}

// NotFound creates a standardized not found error
func NotFound(module, operation string, identifier interface{}) *strerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("not found: %v", identifier).
		Code(strerror.CodeNotFound).
		Detail("identifier", identifier).
		Severity(strerror.SeverityMedium).
		Build()
}

// OperationFailed wraps cause as a failure of module.operation
func OperationFailed(module, operation string, cause error) *strerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s.%s operation failed", module, operation).
		Cause(cause).
		Code(strerror.CodeInternal).
		Severity(strerror.SeverityHigh).
		Build()
}

// ParseFailed reports text that could not be converted to the target type
func ParseFailed(operation, input, targetType string, cause error) *strerror.Error {
	return NewErrorBuilder(ModuleStrutil).
		Operation(operation).
		Messagef("cannot parse %q as %s", input, targetType).
		Cause(cause).
		Code(strerror.CodeParseError).
		Detail("input", input).
		Detail("type", targetType).
		Severity(strerror.SeverityLow).
		Build()
}

// InvalidPattern reports a regular expression that failed to compile
func InvalidPattern(operation, pattern string, cause error) *strerror.Error {
	return NewErrorBuilder(ModuleStrutil).
		Operation(operation).
		Messagef("invalid pattern %q", pattern).
		Cause(cause).
		Code(strerror.CodeInvalidPattern).
		Detail("pattern", pattern).
		Severity(strerror.SeverityLow).
		Build()
}

// ConfigError reports a configuration file that could not be read or parsed
func ConfigError(operation, path string, cause error) *strerror.Error {
	return NewErrorBuilder(ModuleConfig).
		Operation(operation).
		Messagef("cannot load configuration from %s", path).
		Cause(cause).
		Code(strerror.CodeConfigError).
		Detail("path", path).
		Build()
}

// InvalidConfig reports a configuration value that failed validation
func InvalidConfig(key string, value interface{}, reason string) *strerror.Error {
	return NewErrorBuilder(ModuleConfig).
		Operation("validate").
		Messagef("invalid configuration value for %s: %s", key, reason).
		Code(strerror.CodeInvalidConfig).
		Detail("key", key).
		Detail("value", value).
		Build()
}
