package ids

import (
	"sort"
	"testing"

	"github.com/google/uuid"
)

func TestNew(t *testing.T) {
	id := New()

	if len(id) != Length {
		t.Fatalf("expected ID length %d, got %d: %q", Length, len(id), id)
	}

	for _, c := range id {
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'v')) {
			t.Errorf("ID contains invalid character %q: %q", c, id)
		}
	}
}

func TestNew_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 10000; i++ {
		id := New()
		if seen[id] {
			t.Fatalf("duplicate ID after %d iterations: %q", i, id)
		}
		seen[id] = true
	}
}

func TestNew_SortsByCreation(t *testing.T) {
	generated := make([]string, 0, 500)
	for i := 0; i < 500; i++ {
		generated = append(generated, New())
	}

	if !sort.StringsAreSorted(generated) {
		t.Fatal("expected IDs to sort in creation order")
	}
}

func TestEncode_PreservesOrder(t *testing.T) {
	low := uuid.UUID{0x01}
	high := uuid.UUID{0x02}

	if Encode(low) >= Encode(high) {
		t.Fatalf("expected %q < %q", Encode(low), Encode(high))
	}
}
