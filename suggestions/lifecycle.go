package suggestions

import (
	"errors"
	"time"

	"wayfare/models"
)

var (
	// ErrInvalidTransition marks a response to a suggestion that has
	// already been resolved.
	ErrInvalidTransition = errors.New("suggestion is not pending")

	// ErrExpired marks a response arriving after the suggestion's TTL.
	ErrExpired = errors.New("suggestion has expired")
)

// Accept resolves a pending suggestion. A non-empty modified plan marks
// it modified instead of accepted. Resolved and expired suggestions
// reject further transitions; both states are terminal.
func Accept(s *models.Suggestion, modifiedPlan []models.Activity, now time.Time) error {
	if !s.IsPending() {
		return ErrInvalidTransition
	}
	if s.Expired(now) {
		return ErrExpired
	}

	action := "accepted"
	s.Status = models.StatusAccepted
	if len(modifiedPlan) > 0 {
		action = "modified"
		s.Status = models.StatusModified
	}

	s.UserResponse = &models.UserResponse{
		Action:       action,
		ModifiedPlan: modifiedPlan,
		Timestamp:    now,
	}
	return nil
}

// Reject resolves a pending suggestion as declined, keeping any feedback
// the traveler gave.
func Reject(s *models.Suggestion, feedback string, now time.Time) error {
	if !s.IsPending() {
		return ErrInvalidTransition
	}
	if s.Expired(now) {
		return ErrExpired
	}

	s.Status = models.StatusRejected
	s.UserResponse = &models.UserResponse{
		Action:    "rejected",
		Feedback:  feedback,
		Timestamp: now,
	}
	return nil
}
