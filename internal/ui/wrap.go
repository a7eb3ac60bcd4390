package ui

import (
	"strings"

	internalstrings "github.com/al-prieto/todo-list-app/internal/strings"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
)

// Wrap word-wraps paragraphs of plain text to width columns and indents
// every line. Paragraphs are separated by blank lines.
func Wrap(value string, width, spaces int) string {
	value = strings.TrimSpace(internalstrings.NormalizeNewlines(value))
	if value == "" {
		return ""
	}
	wrapWidth := max(width-spaces, 1)

	var wrapped []string
	for _, paragraph := range splitParagraphs(value) {
		normalized := internalstrings.NormalizeWhitespace(paragraph)
		if normalized == "" {
			continue
		}
		wrapped = append(wrapped, wordwrap.String(normalized, wrapWidth))
	}
	out := strings.Join(wrapped, "\n\n")
	if spaces <= 0 {
		return out
	}
	return indent.String(out, uint(spaces))
}

func splitParagraphs(value string) []string {
	var paragraphs []string
	var current []string
	for _, line := range strings.Split(value, "\n") {
		if strings.TrimSpace(line) == "" {
			if len(current) > 0 {
				paragraphs = append(paragraphs, strings.Join(current, " "))
				current = nil
			}
			continue
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		paragraphs = append(paragraphs, strings.Join(current, " "))
	}
	return paragraphs
}
