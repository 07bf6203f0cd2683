package idgen

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestRecordID_IsUUID(t *testing.T) {
	id, err := RecordID()
	if err != nil {
		t.Fatalf("RecordID error: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("expected uuid, got %q: %v", id, err)
	}
}

func TestBookingID_Shape(t *testing.T) {
	seen := map[string]struct{}{}
	for i := 0; i < 500; i++ {
		id, err := BookingID()
		if err != nil {
			t.Fatalf("BookingID error: %v", err)
		}
		if !strings.HasPrefix(id, BookingPrefix) {
			t.Fatalf("missing prefix: %q", id)
		}
		body := strings.TrimPrefix(id, BookingPrefix)
		if len(body) != BookingLength {
			t.Fatalf("expected %d random chars, got %q", BookingLength, body)
		}
		for _, r := range body {
			if !strings.ContainsRune(Alphabet, r) {
				t.Fatalf("unexpected rune %q in %q", r, id)
			}
		}
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = struct{}{}
	}
}
