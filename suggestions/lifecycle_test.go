package suggestions

import (
	"errors"
	"testing"
	"time"

	"wayfare/models"
)

func pendingSuggestion() *models.Suggestion {
	return &models.Suggestion{
		SuggestionID: "s1",
		Status:       models.StatusPending,
		ExpiresAt:    time.Now().Add(24 * time.Hour),
	}
}

func TestAcceptPending(t *testing.T) {
	s := pendingSuggestion()
	now := time.Now()

	if err := Accept(s, nil, now); err != nil {
		t.Fatalf("accept: %v", err)
	}
	if s.Status != models.StatusAccepted {
		t.Fatalf("expected accepted, got %s", s.Status)
	}
	if s.UserResponse == nil || s.UserResponse.Action != "accepted" {
		t.Fatalf("unexpected user response: %+v", s.UserResponse)
	}
	if !s.UserResponse.Timestamp.Equal(now) {
		t.Fatal("response timestamp not recorded")
	}
}

func TestAcceptWithModifiedPlan(t *testing.T) {
	s := pendingSuggestion()
	plan := []models.Activity{{Name: "Covered market instead", Time: models.Morning}}

	if err := Accept(s, plan, time.Now()); err != nil {
		t.Fatalf("accept: %v", err)
	}
	if s.Status != models.StatusModified {
		t.Fatalf("expected modified, got %s", s.Status)
	}
	if len(s.UserResponse.ModifiedPlan) != 1 {
		t.Fatal("modified plan not recorded")
	}
}

func TestRejectPending(t *testing.T) {
	s := pendingSuggestion()

	if err := Reject(s, "prefer the original plan", time.Now()); err != nil {
		t.Fatalf("reject: %v", err)
	}
	if s.Status != models.StatusRejected {
		t.Fatalf("expected rejected, got %s", s.Status)
	}
	if s.UserResponse.Feedback != "prefer the original plan" {
		t.Fatal("feedback not recorded")
	}
}

func TestResolvedStatesAreTerminal(t *testing.T) {
	for _, status := range []models.SuggestionStatus{
		models.StatusAccepted,
		models.StatusRejected,
		models.StatusModified,
	} {
		s := pendingSuggestion()
		s.Status = status

		if err := Accept(s, nil, time.Now()); !errors.Is(err, ErrInvalidTransition) {
			t.Errorf("accept on %s: expected ErrInvalidTransition, got %v", status, err)
		}
		if err := Reject(s, "", time.Now()); !errors.Is(err, ErrInvalidTransition) {
			t.Errorf("reject on %s: expected ErrInvalidTransition, got %v", status, err)
		}
		if s.Status != status {
			t.Errorf("status must not change on failed transition, got %s", s.Status)
		}
	}
}

func TestExpiredSuggestionRejectsResponses(t *testing.T) {
	s := pendingSuggestion()
	s.ExpiresAt = time.Now().Add(-time.Minute)

	if err := Accept(s, nil, time.Now()); !errors.Is(err, ErrExpired) {
		t.Fatalf("expected ErrExpired, got %v", err)
	}
	if err := Reject(s, "", time.Now()); !errors.Is(err, ErrExpired) {
		t.Fatalf("expected ErrExpired, got %v", err)
	}
	if s.Status != models.StatusPending {
		t.Fatal("expired suggestion must stay pending in storage")
	}
}
