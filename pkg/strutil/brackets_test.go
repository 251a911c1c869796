package strutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lennert-vangeert/utilities/pkg/strutil"
)

func TestAreBracketsBalanced(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{
			name:     "empty string is balanced",
			input:    "",
			expected: true,
		},
		{
			name:     "text without delimiters is balanced",
			input:    "plain text",
			expected: true,
		},
		{
			name:     "nested mixed pairs",
			input:    "(a[b]{c})",
			expected: true,
		},
		{
			name:     "interleaved pairs are unbalanced",
			input:    "(a[b)]",
			expected: false,
		},
		{
			name:     "angle brackets pair up",
			input:    "<div>",
			expected: true,
		},
		{
			name:     "unclosed opener",
			input:    "(",
			expected: false,
		},
		{
			name:     "closer without opener",
			input:    ")",
			expected: false,
		},
		{
			name:     "matched double quotes",
			input:    `say "hi" twice`,
			expected: true,
		},
		{
			name:     "apostrophe counts as unclosed quote",
			input:    "it's",
			expected: false,
		},
		{
			name:     "paired apostrophes balance out",
			input:    "it''s",
			expected: true,
		},
		{
			name:     "backticks pair up",
			input:    "`code`",
			expected: true,
		},
		{
			name:     "interleaved quote kinds do not nest",
			input:    `'"'`,
			expected: false,
		},
		{
			name:     "quotes wrapping brackets",
			input:    `"(ok)"`,
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, strutil.AreBracketsBalanced(tt.input))
		})
	}
}
