package strutil

import (
	"net/url"

	"github.com/google/uuid"
)

// IsValidEmail reports whether a string looks like an e-mail address:
// a local part, an "@", and a domain containing at least one dot, with no
// whitespace or additional "@" anywhere. It is a format check, not a
// deliverability guarantee.
func IsValidEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// IsValidURL reports whether a string parses as an absolute URL with a
// scheme and either a host ("https://example.com") or an opaque part
// ("mailto:user@example.com"). Relative references, plain words and bare
// scheme prefixes like "http://" are rejected.
func IsValidURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" {
		return false
	}
	return u.Host != "" || u.Opaque != ""
}

// IsValidUUID reports whether a string is a canonically formatted UUID:
// hex groups of 8-4-4-4-12 separated by hyphens, case-insensitive, with a
// version between 1 and 5 and the RFC 4122 variant. Braced, URN-prefixed
// and hyphenless forms are rejected.
func IsValidUUID(s string) bool {
	// Fast rejection: check length and hyphen positions before parsing
	if len(s) != 36 {
		return false
	}
	if s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return false
	}

	id, err := uuid.Parse(s)
	if err != nil {
		return false
	}
	if v := id.Version(); v < 1 || v > 5 {
		return false
	}
	return id.Variant() == uuid.RFC4122
}
