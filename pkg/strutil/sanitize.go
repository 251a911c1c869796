package strutil

import "strings"

// htmlEscaper covers the five characters with HTML significance. A single
// replacer pass cannot double-escape, which is equivalent to applying the
// rules in sequence with the ampersand rule first.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// StripHTML removes HTML tags from a string. Anything between a "<" and the
// next ">" is dropped; entities and malformed markup are left untouched.
func StripHTML(s string) string {
	return htmlTagRegex.ReplaceAllString(s, "")
}

// EscapeHTML escapes the characters &, <, >, double and single quote so the
// result can be embedded in HTML without being interpreted as markup.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// StripNonAlphanumeric removes every character that is not an ASCII letter,
// digit or space, then trims the result.
func StripNonAlphanumeric(s string) string {
	return strings.TrimSpace(nonAlphanumericRegex.ReplaceAllString(s, ""))
}
