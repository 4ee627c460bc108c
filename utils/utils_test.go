package utils

import (
	"reflect"
	"testing"
)

func TestContains(t *testing.T) {
	statuses := []string{"pending", "accepted", "rejected"}

	if !Contains(statuses, "accepted") {
		t.Error("expected accepted to be found")
	}
	if Contains(statuses, "Accepted") {
		t.Error("lookup must be case sensitive")
	}
	if Contains(nil, "pending") {
		t.Error("nil slice contains nothing")
	}
}

func TestContainsIgnoreCase(t *testing.T) {
	if !ContainsIgnoreCase("Walking tour of Montmartre", "TOUR") {
		t.Error("expected case-insensitive substring match")
	}
	if ContainsIgnoreCase("Louvre visit", "park") {
		t.Error("unexpected match")
	}
}

func TestSplitTags(t *testing.T) {
	got := SplitTags(" Music, food ,music,, ART ")
	want := []string{"music", "food", "art"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	if got := SplitTags(""); len(got) != 0 {
		t.Errorf("empty input must yield no tags, got %v", got)
	}
}

func TestGenerateRandomStringLength(t *testing.T) {
	s := GenerateRandomString(12)
	if len(s) != 12 {
		t.Errorf("expected 12 characters, got %d", len(s))
	}
}
