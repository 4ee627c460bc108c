package utils

import (
	"net/http/httptest"
	"testing"
)

func TestParseQueryOptionsDefaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/suggestions/i1", nil)

	opts := ParseQueryOptions(r)
	if opts.Page != 1 {
		t.Errorf("expected default page 1, got %d", opts.Page)
	}
	if opts.Limit != 10 {
		t.Errorf("expected default limit 10, got %d", opts.Limit)
	}
	if opts.Status != "" || opts.Search != "" {
		t.Errorf("expected empty status and search, got %q / %q", opts.Status, opts.Search)
	}
}

func TestParseQueryOptionsReadsAllParams(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/itineraries?page=3&limit=25&status=pending&search=paris", nil)

	opts := ParseQueryOptions(r)
	if opts.Page != 3 || opts.Limit != 25 {
		t.Errorf("expected page 3 limit 25, got %d / %d", opts.Page, opts.Limit)
	}
	if opts.Status != "pending" {
		t.Errorf("expected status pending, got %q", opts.Status)
	}
	if opts.Search != "paris" {
		t.Errorf("expected search paris, got %q", opts.Search)
	}
}

func TestParseQueryOptionsRejectsBadNumbers(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/itineraries?page=-2&limit=abc", nil)

	opts := ParseQueryOptions(r)
	if opts.Page != 1 {
		t.Errorf("negative page must fall back to 1, got %d", opts.Page)
	}
	if opts.Limit != 10 {
		t.Errorf("unparsable limit must fall back to 10, got %d", opts.Limit)
	}
}

func TestParseDateRangeEndFallsBackToStart(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/events/nearby?startDate=2026-07-14", nil)

	start, end, err := ParseDateRange(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if start.String() != "2026-07-14" || end.String() != "2026-07-14" {
		t.Errorf("expected both bounds 2026-07-14, got %s / %s", start, end)
	}
}

func TestParseDateRangeInvalidStart(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/events/nearby?startDate=July+14", nil)

	if _, _, err := ParseDateRange(r); err == nil {
		t.Fatal("expected error for malformed start date")
	}
}
