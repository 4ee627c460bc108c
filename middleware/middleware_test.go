package middleware

import (
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"

	"wayfare/globals"
)

func issueToken(t *testing.T, claims *Claims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(globals.JwtSecret)
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return tok
}

func TestAuthenticateStoresUserIDAndRoles(t *testing.T) {
	tok := issueToken(t, &Claims{
		Username: "ada",
		UserID:   "u42",
		Role:     []string{"traveler", "editor"},
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	var gotUserID string
	var gotRoles []string
	handler := Authenticate(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		gotUserID, _ = r.Context().Value(globals.UserIDKey).(string)
		gotRoles, _ = r.Context().Value(globals.RoleKey).([]string)
		w.WriteHeader(http.StatusOK)
	})

	r := httptest.NewRequest("GET", "/api/itineraries", nil)
	r.Header.Set("Authorization", "Bearer "+tok)
	w := httptest.NewRecorder()
	handler(w, r, nil)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if gotUserID != "u42" {
		t.Errorf("expected user id u42 in context, got %q", gotUserID)
	}
	if !reflect.DeepEqual(gotRoles, []string{"traveler", "editor"}) {
		t.Errorf("expected roles in context, got %v", gotRoles)
	}
}

func TestAuthenticateRejectsMissingAndMalformedTokens(t *testing.T) {
	handler := Authenticate(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		t.Error("handler must not run without a valid token")
	})

	for _, header := range []string{"", "Token abc", "Bearer bogus"} {
		r := httptest.NewRequest("GET", "/api/itineraries", nil)
		if header != "" {
			r.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		handler(w, r, nil)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("header %q: expected 401, got %d", header, w.Code)
		}
	}
}

func TestOptionalAuthPassesThroughWithoutToken(t *testing.T) {
	called := false
	handler := OptionalAuth(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		called = true
		if id, _ := r.Context().Value(globals.UserIDKey).(string); id != "" {
			t.Errorf("expected no user id without token, got %q", id)
		}
	})

	r := httptest.NewRequest("GET", "/api/events/nearby", nil)
	w := httptest.NewRecorder()
	handler(w, r, nil)

	if !called {
		t.Error("expected handler to run")
	}
}
