package ui

import (
	"strings"
	"testing"
)

func TestTruncateTableCellCountsRunes(t *testing.T) {
	value := strings.Repeat("a", tableCellMaxWidth-1) + "é"

	got := TruncateTableCell(value)

	if got != value {
		t.Fatalf("expected value to remain untruncated, got %q", got)
	}
}

func TestTruncateTableCellNormalizesLineBreaks(t *testing.T) {
	got := TruncateTableCell("Hello\nWorld\r\nAgain\tTab")

	if got != "Hello World Again Tab" {
		t.Fatalf("expected line breaks to normalize, got %q", got)
	}
}

func TestTruncateTableCellIgnoresANSICodes(t *testing.T) {
	value := "\x1b[1m\x1b[36m" + strings.Repeat("a", tableCellMaxWidth) + "\x1b[0m"

	got := TruncateTableCell(value)

	if got != value {
		t.Fatalf("expected value to remain untruncated, got %q", got)
	}
}

func TestTruncateTableCellAddsEllipsis(t *testing.T) {
	got := TruncateTableCell(strings.Repeat("b", tableCellMaxWidth+10))

	if !strings.HasSuffix(got, tableCellEllipsis) {
		t.Fatalf("expected ellipsis, got %q", got)
	}
	if len(got) != tableCellMaxWidth {
		t.Fatalf("expected %d columns, got %d", tableCellMaxWidth, len(got))
	}
}

func TestFormatTable(t *testing.T) {
	builder := NewTableBuilder([]string{"ID", "NAME", "TASKS"}, 2)
	builder.AddRow("0abc", "Inbox", "1")
	builder.AddRow("1", "Home\nstuff", "12")

	expected := "" +
		"ID    NAME        TASKS\n" +
		"0abc  Inbox       1\n" +
		"1     Home stuff  12\n"
	if got := builder.String(); got != expected {
		t.Fatalf("unexpected table:\n%s\nwant:\n%s", got, expected)
	}
}

func TestFormatTableIgnoresANSIWidth(t *testing.T) {
	rows := [][]string{{"\x1b[1mab\x1b[0m", "x"}, {"abc", "y"}}

	got := FormatTable([]string{"A", "B"}, rows)

	expected := "A    B\n\x1b[1mab\x1b[0m   x\nabc  y\n"
	if got != expected {
		t.Fatalf("got %q, want %q", got, expected)
	}
}
