// Package strings normalizes text typed by users or read back from editors.
package strings

import "strings"

// NormalizeKeyword trims and lowercases identifier-like input such as a
// priority, a sort key or an ID prefix.
func NormalizeKeyword(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// NormalizeWhitespace collapses runs of whitespace into single spaces.
func NormalizeWhitespace(value string) string {
	return strings.Join(strings.Fields(value), " ")
}

// NormalizeNewlines replaces CRLF and CR with LF.
func NormalizeNewlines(value string) string {
	if !strings.ContainsRune(value, '\r') {
		return value
	}
	value = strings.ReplaceAll(value, "\r\n", "\n")
	return strings.ReplaceAll(value, "\r", "\n")
}

// NormalizeBlock returns multi-line text with LF line endings and without
// trailing newlines. Leading indentation is kept.
func NormalizeBlock(value string) string {
	return strings.TrimRight(NormalizeNewlines(value), "\n")
}

// IsBlank reports whether value holds nothing but whitespace.
func IsBlank(value string) bool {
	return strings.TrimSpace(value) == ""
}
