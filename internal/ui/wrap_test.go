package ui

import (
	"strings"
	"testing"
)

func TestWrap(t *testing.T) {
	got := Wrap("the quick brown fox jumps over the lazy dog", 20, 2)

	expected := "  the quick brown\n  fox jumps over the\n  lazy dog"
	if got != expected {
		t.Fatalf("Wrap() = %q, want %q", got, expected)
	}
}

func TestWrapKeepsParagraphs(t *testing.T) {
	got := Wrap("first\nline\n\n\nsecond   para", 80, 0)

	if got != "first line\n\nsecond para" {
		t.Fatalf("Wrap() = %q", got)
	}
}

func TestWrapBlank(t *testing.T) {
	if got := Wrap(" \n\r\n ", 80, 4); got != "" {
		t.Fatalf("Wrap() = %q, want empty", got)
	}
}

func TestWrapLongWord(t *testing.T) {
	word := strings.Repeat("x", 30)
	if got := Wrap(word, 10, 0); got != word {
		t.Fatalf("long words are not split, got %q", got)
	}
}

func TestStylesPlainWithoutTerminal(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	if got := CompletedMark(true); got != "[x]" {
		t.Errorf("CompletedMark(true) = %q", got)
	}
	if got := CompletedMark(false); got != "[ ]" {
		t.Errorf("CompletedMark(false) = %q", got)
	}
	if got := Title("Buy milk", true); got != "Buy milk" {
		t.Errorf("Title() = %q", got)
	}
	if got := Label("Due:"); got != "Due:" {
		t.Errorf("Label() = %q", got)
	}
}
