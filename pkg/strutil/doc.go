// Package strutil provides stateless helper functions for transforming,
// sanitizing and validating strings.
//
// The functions are grouped conceptually into several areas:
//
//   - Case conversion – Title Case, camelCase, snake_case, kebab-case,
//     PascalCase, full upper/lower folds and first-letter capitalization.
//     Word boundaries for the multi-word conversions are single ASCII
//     spaces, so consecutive spaces survive the round-trip unchanged.
//
//   - Formatting – slug generation, human-readable expansion of
//     identifier-style strings, whitespace normalisation and rune-safe
//     truncation.
//
//   - Sanitization – HTML tag stripping, HTML entity escaping and removal
//     of non-alphanumeric characters.
//
//   - Validation – boolean checks for e-mail addresses, URLs and canonical
//     UUIDs. These report a verdict and never return an error for a
//     well-typed but invalid value.
//
//   - Structural checks – AreBracketsBalanced verifies paired delimiters
//     with a single left-to-right scan.
//
// Every function is a pure transformation: inputs are never modified,
// nothing is retained between calls and all helpers are safe for
// concurrent use. For convenience the higher-order Apply and Compose
// helpers allow transformation pipelines:
//
//	clean := strutil.Compose(
//	    strutil.NormalizeWhitespace,
//	    strutil.LowerCase,
//	)
//
//	safe := clean("  Mixed CASE   Input\n") // "mixed case input"
package strutil
