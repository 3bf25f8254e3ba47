package domain

import (
	"strings"
)

// Tokenize splits message content on single spaces. Consecutive spaces produce empty tokens, there is no
// quoting or escaping.
func Tokenize(content string) []string {
	return strings.Split(content, " ")
}

// StripPrefix removes prefix from the start of token, comparing case-insensitively.
func StripPrefix(token, prefix string) (string, bool) {
	if len(token) < len(prefix) || !strings.EqualFold(token[:len(prefix)], prefix) {
		return "", false
	}

	return token[len(prefix):], true
}
