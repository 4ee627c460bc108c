package utils

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"wayfare/globals"
	"wayfare/middleware"
)

func signedToken(t *testing.T, claims *middleware.Claims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(globals.JwtSecret)
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return tok
}

func TestGetUserIDFromRequest(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/itineraries", nil)
	r = r.WithContext(context.WithValue(r.Context(), globals.UserIDKey, "u42"))

	if got := GetUserIDFromRequest(r); got != "u42" {
		t.Errorf("expected u42, got %q", got)
	}

	bare := httptest.NewRequest("GET", "/api/itineraries", nil)
	if got := GetUserIDFromRequest(bare); got != "" {
		t.Errorf("expected empty user id without auth context, got %q", got)
	}
}

func TestGetUsernameFromRequest(t *testing.T) {
	tok := signedToken(t, &middleware.Claims{
		Username: "ada",
		UserID:   "u42",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	r := httptest.NewRequest("GET", "/api/itineraries/i1/export", nil)
	r.Header.Set("Authorization", "Bearer "+tok)

	if got := GetUsernameFromRequest(r); got != "ada" {
		t.Errorf("expected ada, got %q", got)
	}
}

func TestGetUsernameFromRequestBadToken(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/itineraries/i1/export", nil)
	r.Header.Set("Authorization", "Bearer not-a-jwt")

	if got := GetUsernameFromRequest(r); got != "" {
		t.Errorf("expected empty username for garbage token, got %q", got)
	}

	bare := httptest.NewRequest("GET", "/api/itineraries/i1/export", nil)
	if got := GetUsernameFromRequest(bare); got != "" {
		t.Errorf("expected empty username without header, got %q", got)
	}
}
