package matchdomain

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestGenerateTimeSlots(t *testing.T) {
	want := []string{"08:00", "09:30", "11:00", "12:30", "14:00", "15:30", "17:00", "18:30", "20:00", "21:30"}
	if diff := cmp.Diff(want, GenerateTimeSlots()); diff != "" {
		t.Fatalf("slots mismatch (-want +got):\n%s", diff)
	}
}

func TestIsValidSlot(t *testing.T) {
	if !IsValidSlot("09:30") {
		t.Fatal("09:30 should be a slot")
	}
	if IsValidSlot("09:00") || IsValidSlot("23:00") {
		t.Fatal("off-grid times should be rejected")
	}
}

func TestParseDateAndToday(t *testing.T) {
	if _, err := ParseDate("2026-10-17"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := ParseDate("17/10/2026"); err == nil {
		t.Fatal("expected error for wrong layout")
	}
	now := time.Date(2026, 10, 17, 23, 30, 0, 0, time.UTC)
	if got := Today(now); got != "2026-10-17" {
		t.Fatalf("expected 2026-10-17, got %s", got)
	}
}
