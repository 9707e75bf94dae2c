// Package error provides the structured error type used by all strutil
// packages.
//
// Errors carry a Code, a Severity, a map of details and the operation
// that produced them:
//
//	err := strerror.New("cannot parse value").
//	    WithCode(strerror.CodeParseError).
//	    WithOperation("strutil.ParseString").
//	    WithDetail("input", text)
//
// Wrap keeps the cause reachable through errors.Unwrap, and HasCode walks
// the whole chain. Most callers should build errors through the
// constructors in package core/errors instead of using this package
// directly.
package error
