package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateRoundTripJSON(t *testing.T) {
	d := NewDate(2026, 7, 14)

	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `"2026-07-14"` {
		t.Fatalf("expected \"2026-07-14\", got %s", data)
	}

	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back != d {
		t.Fatalf("round trip mismatch: %v != %v", back, d)
	}
}

func TestParseDateRejectsGarbage(t *testing.T) {
	if _, err := ParseDate("14/07/2026"); err == nil {
		t.Fatal("expected error for non-ISO date")
	}
	if _, err := ParseDate(""); err == nil {
		t.Fatal("expected error for empty date")
	}
}

func TestDateOrdering(t *testing.T) {
	a := NewDate(2026, 7, 14)
	b := NewDate(2026, 7, 15)

	if !a.Before(b) {
		t.Fatal("a should be before b")
	}
	if !b.After(a) {
		t.Fatal("b should be after a")
	}
	if a.Before(a) || a.After(a) {
		t.Fatal("a date is neither before nor after itself")
	}
}

func TestDateAddDaysCrossesMonth(t *testing.T) {
	d := NewDate(2026, 1, 30).AddDays(3)
	if d != NewDate(2026, 2, 2) {
		t.Fatalf("expected 2026-02-02, got %v", d)
	}
}

func TestDateOfUsesUTC(t *testing.T) {
	// 23:30 in UTC-5 is the next day in UTC
	loc := time.FixedZone("UTC-5", -5*3600)
	instant := time.Date(2026, 7, 14, 23, 30, 0, 0, loc)

	if got := DateOf(instant); got != NewDate(2026, 7, 15) {
		t.Fatalf("expected UTC date 2026-07-15, got %v", got)
	}
}

func TestDaysUntil(t *testing.T) {
	a := NewDate(2026, 7, 14)
	b := NewDate(2026, 7, 18)

	if got := a.DaysUntil(b); got != 4 {
		t.Fatalf("expected 4, got %d", got)
	}
	if got := b.DaysUntil(a); got != -4 {
		t.Fatalf("expected -4, got %d", got)
	}
}
