package strutil

import "strings"

var humanSeparatorReplacer = strings.NewReplacer("_", " ", "-", " ")

// Slugify creates a URL-safe slug from the input string. The input is
// lowercased and trimmed, runs of whitespace or hyphens collapse into a
// single hyphen, and any remaining character that is not a word character
// or a hyphen is stripped.
//
//	Slugify("  Hello,   World!  ") // "hello-world"
func Slugify(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	s = slugSeparatorRegex.ReplaceAllString(s, "-")
	return slugInvalidRegex.ReplaceAllString(s, "")
}

// ToHumanReadable expands identifier-style strings into readable text: a
// space is inserted between a lowercase letter and the uppercase letter
// that follows it, underscores and hyphens become spaces, runs of spaces
// collapse into one, and the result is trimmed.
//
//	ToHumanReadable("userLogin_count") // "user Login count"
func ToHumanReadable(s string) string {
	s = camelBoundaryRegex.ReplaceAllString(s, "$1 $2")
	s = humanSeparatorReplacer.Replace(s)
	s = multiSpaceRegex.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// NormalizeWhitespace replaces every run of whitespace characters (spaces,
// tabs, newlines) with a single space and trims the result.
func NormalizeWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// Truncate shortens a string to at most max runes. Strings within the limit
// are returned unchanged; a non-positive limit yields an empty string.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
