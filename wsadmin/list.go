package wsadmin

import "strings"

// asciiSpace is the trailing whitespace ToList removes.
const asciiSpace = " \t\r\n\v\f"

// ToList converts a list printed by wsadmin into its tokens.
//
// A bracketed value such as "[a b c]" is split on single spaces, anything
// else is split into lines. Trailing whitespace, including the '\r' left by
// Windows line endings, is removed and empty tokens are dropped. ToList never
// fails and always returns a non-nil slice.
func ToList(s string) []string {
	var parts []string
	if len(s) > 0 && s[0] == '[' && s[len(s)-1] == ']' {
		parts = strings.Split(s[1:len(s)-1], " ")
	} else {
		parts = strings.Split(s, "\n")
	}

	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimRight(part, asciiSpace)
		if part == "" {
			continue
		}
		tokens = append(tokens, part)
	}
	return tokens
}

// FormatList renders tokens in the bracketed form accepted by ToList.
func FormatList(tokens []string) string {
	return "[" + strings.Join(tokens, " ") + "]"
}

// FormatLines renders tokens one per line.
func FormatLines(tokens []string) string {
	return strings.Join(tokens, "\n")
}
