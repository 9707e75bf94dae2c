// Package errors provides the standard error constructors for all strutil
// packages.
//
// Every failure produced inside this repository goes through one of the
// constructors below, so that it carries the originating module and
// operation as details along with a code from package core/error:
//
//	ParseFailed     STRUTIL_PARSE_ERROR      malformed numeric/boolean text
//	InvalidPattern  STRUTIL_INVALID_PATTERN  regular expression did not compile
//	ConfigError     CONFIG_ERROR             configuration file unreadable
//	InvalidConfig   INVALID_CONFIG           configuration value rejected
//	InvalidInput    INVALID_INPUT            bad argument to an operation
//
// For one-off cases use NewErrorBuilder:
//
//	return errors.NewErrorBuilder(errors.ModuleCLI).
//	    Operation("encode").
//	    Messagef("unknown encoding %q", name).
//	    Code(strerror.CodeInvalidInput).
//	    Build()
package errors
