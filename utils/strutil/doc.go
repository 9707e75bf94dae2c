// Package strutil provides byte-oriented string utilities: ASCII case
// mapping, predicates, trimming, substring replacement, splitting and
// joining, token list cleanup, random and repeated string generation,
// truncation and escaped previews, hex and binary encoding, and generic
// scalar conversion.
//
// All functions treat strings as byte sequences. Case mapping and the
// whitespace set (space, \t, \n, \r, \f, \v) are ASCII only; other bytes
// pass through untouched.
//
// # In place and copy variants
//
// Mutating operations take a pointer and have a Copy counterpart that
// leaves its argument alone:
//
//	s := "  hello  "
//	strutil.Trim(&s)              // s == "hello"
//	t := strutil.TrimCopy("  x ") // "x"
//
//	msg := "This is $name."
//	ok := strutil.ReplaceFirst(&msg, "$name", "Jon") // true, msg == "This is Jon."
//
// Replacement functions return false, and leave the text unchanged, when
// nothing was replaced.
//
// # Splitting
//
// Literal splits always yield one more token than there are delimiters:
//
//	strutil.SplitChar("a;b;;c", ';') // ["a" "b" "" "c"]
//	strutil.Split("", ">=")          // [""]
//
// Regex splitting goes through the Matcher interface, which
// *regexp.Regexp satisfies:
//
//	re := regexp.MustCompile(`[,;.?]+`)
//	strutil.RegexSplit("abc,abcd;abce.abcf?", re) // ["abc" "abcd" "abce" "abcf"]
//
// # Errors
//
// Only parsing and pattern compilation can fail. Their errors come from
// the strutil error system with the codes STRUTIL_PARSE_ERROR and
// STRUTIL_INVALID_PATTERN:
//
//	n, err := strutil.ParseString[int]("12x")
//	if strerror.HasCode(err, strerror.CodeParseError) { ... }
//
// # Concurrency
//
// Functions hold no shared state except the random source and an internal
// cache of anchored patterns used by Matches, both safe for concurrent
// use. Callers must not share a buffer passed to an in-place function
// with another goroutine during the call.
package strutil
