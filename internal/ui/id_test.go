package ui

import "testing"

func TestPrefixLength(t *testing.T) {
	tests := []struct {
		name   string
		length map[string]int
		id     string
		want   int
	}{
		{
			name:   "case insensitive lookup",
			length: map[string]int{"0abc123": 4},
			id:     "0ABC123",
			want:   4,
		},
		{
			name:   "missing id",
			length: map[string]int{"0abc123": 4},
			id:     "",
			want:   0,
		},
		{
			name:   "unknown id",
			length: map[string]int{"0abc123": 4},
			id:     "zzz",
			want:   0,
		},
		{
			name:   "nil map",
			length: nil,
			id:     "0abc123",
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PrefixLength(tt.length, tt.id); got != tt.want {
				t.Fatalf("PrefixLength() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestHighlightID_PlainWithoutTerminal(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	if got := HighlightID("0abc123", 3); got != "0abc123" {
		t.Fatalf("HighlightID() = %q, want plain id", got)
	}
	if got := HighlightID("", 3); got != "" {
		t.Fatalf("HighlightID(\"\") = %q", got)
	}
}
