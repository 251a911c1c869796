package strutil

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// UpperCase converts a string to uppercase using Unicode simple case mapping.
func UpperCase(s string) string {
	return strings.ToUpper(s)
}

// LowerCase converts a string to lowercase using Unicode simple case mapping.
func LowerCase(s string) string {
	return strings.ToLower(s)
}

// CapitalizeFirst uppercases the first character of a string and leaves the
// rest unchanged. An empty string is returned as-is.
func CapitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

// UncapitalizeFirst lowercases the first character of a string and leaves the
// rest unchanged. An empty string is returned as-is.
func UncapitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[size:]
}

// TitleCase lowercases the input and uppercases the first letter of every
// word. Words are separated by single ASCII spaces; runs of spaces produce
// empty words that pass through unchanged.
//
//	TitleCase("hello world") // "Hello World"
func TitleCase(s string) string {
	words := strings.Split(strings.ToLower(s), " ")
	for i, word := range words {
		words[i] = CapitalizeFirst(word)
	}
	return strings.Join(words, " ")
}

// CamelCase converts a space-separated string to camelCase: the first word
// stays lowercase, every following word is capitalized, and the separators
// are removed.
//
//	CamelCase("hello world") // "helloWorld"
func CamelCase(s string) string {
	words := strings.Split(strings.ToLower(s), " ")
	for i := 1; i < len(words); i++ {
		words[i] = CapitalizeFirst(words[i])
	}
	return strings.Join(words, "")
}

// PascalCase converts a space-separated string to PascalCase: every word is
// capitalized and the separators are removed.
//
//	PascalCase("hello world") // "HelloWorld"
func PascalCase(s string) string {
	words := strings.Split(strings.ToLower(s), " ")
	for i, word := range words {
		words[i] = CapitalizeFirst(word)
	}
	return strings.Join(words, "")
}

// SnakeCase lowercases the input and replaces every ASCII space with an
// underscore. Runs of spaces yield runs of underscores.
//
//	SnakeCase("Hello World") // "hello_world"
func SnakeCase(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), " ", "_")
}

// KebabCase lowercases the input and replaces every ASCII space with a
// hyphen. Runs of spaces yield runs of hyphens.
//
//	KebabCase("Hello World") // "hello-world"
func KebabCase(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), " ", "-")
}
