package strutil

import "regexp"

// Pre-compiled regular expressions for performance
var (
	// Whitespace normalization
	whitespaceRegex = regexp.MustCompile(`\s+`)
	multiSpaceRegex = regexp.MustCompile(` {2,}`)

	// Slug generation
	slugSeparatorRegex = regexp.MustCompile(`[\s-]+`)
	slugInvalidRegex   = regexp.MustCompile(`[^\w-]`)

	// HTML stripping
	htmlTagRegex = regexp.MustCompile(`<[^>]*>`)

	// Alphanumeric filtering (ASCII letters, digits and spaces survive)
	nonAlphanumericRegex = regexp.MustCompile(`[^a-zA-Z0-9 ]`)

	// Email validation: local@domain.tld with no spaces or extra @
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// camelCase word boundary (lowercase letter followed by uppercase)
	camelBoundaryRegex = regexp.MustCompile(`([a-z])([A-Z])`)
)
