package strutil

// bracketPairs maps every opening delimiter to its expected closer. The
// quote delimiters are symmetric: the same character opens and closes.
var bracketPairs = map[rune]rune{
	'(':  ')',
	'{':  '}',
	'[':  ']',
	'<':  '>',
	'\'': '\'',
	'"':  '"',
	'`':  '`',
}

var bracketClosers = map[rune]struct{}{
	')':  {},
	'}':  {},
	']':  {},
	'>':  {},
	'\'': {},
	'"':  {},
	'`':  {},
}

// AreBracketsBalanced reports whether every (), {}, [], <> and quote
// delimiter in the string is properly closed. The scan keeps a stack of
// expected closers: an opener pushes, a closer must match the top of the
// stack or the whole string is unbalanced.
//
// Because quote characters open and close themselves, each occurrence of
// ', " or ` alternates between push and pop, so quotes are balanced by
// parity rather than by nesting: an apostrophe inside a word counts as an
// unclosed quote.
//
//	AreBracketsBalanced("(a[b]{c})") // true
//	AreBracketsBalanced("(a[b)]")    // false
//	AreBracketsBalanced("it's")      // false
func AreBracketsBalanced(s string) bool {
	var stack []rune
	for _, r := range s {
		if len(stack) > 0 && stack[len(stack)-1] == r {
			stack = stack[:len(stack)-1]
			continue
		}
		if closer, ok := bracketPairs[r]; ok {
			stack = append(stack, closer)
			continue
		}
		if _, ok := bracketClosers[r]; ok {
			return false
		}
	}
	return len(stack) == 0
}
