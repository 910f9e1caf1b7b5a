package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/leonguyen52/sprout-track-sub004/internal/httputil"
	"github.com/leonguyen52/sprout-track-sub004/pkg/auth"
	"github.com/leonguyen52/sprout-track-sub004/pkg/domain"
)

func testSessionService() *auth.SessionService {
	return auth.NewSessionService(auth.SessionConfig{
		JWTSecret:      []byte("test-secret"),
		AccessTokenTTL: time.Minute,
	})
}

func issueTestToken(t *testing.T, svc *auth.SessionService, familyID uuid.UUID) string {
	t.Helper()
	token, _, err := svc.IssueToken(&domain.Family{ID: familyID, Slug: "test-family"})
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}
	return token
}

func claimCheck(t *testing.T, wantFamilyID uuid.UUID, called *bool) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		familyID, ok := GetFamilyID(r.Context())
		if !ok {
			t.Error("family ID missing from context")
		}
		if familyID != wantFamilyID {
			t.Errorf("family ID = %v, want %v", familyID, wantFamilyID)
		}
		if _, ok := GetClaims(r.Context()); !ok {
			t.Error("claims missing from context")
		}
	})
}

func TestAuthBearerHeader(t *testing.T) {
	svc := testSessionService()
	familyID := uuid.New()
	token := issueTestToken(t, svc, familyID)

	var called bool
	handler := Auth(svc)(claimCheck(t, familyID, &called))

	req := httptest.NewRequest(http.MethodGet, "/api/family", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if !called {
		t.Fatalf("handler not reached, status %d", rec.Code)
	}
}

func TestAuthCookieFallback(t *testing.T) {
	svc := testSessionService()
	familyID := uuid.New()
	token := issueTestToken(t, svc, familyID)

	var called bool
	handler := Auth(svc)(claimCheck(t, familyID, &called))

	req := httptest.NewRequest(http.MethodGet, "/api/family", nil)
	rec := httptest.NewRecorder()
	httputil.SetAccessTokenCookie(rec, token, time.Minute, httputil.DefaultCookieConfig())
	req.Header.Set("Cookie", rec.Header().Get("Set-Cookie"))

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if !called {
		t.Fatalf("handler not reached, status %d", rec.Code)
	}
}

func TestAuthRejectsMissingToken(t *testing.T) {
	handler := Auth(testSessionService())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler reached without a token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/family", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestAuthRejectsInvalidToken(t *testing.T) {
	handler := Auth(testSessionService())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler reached with an invalid token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/family", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestAuthRejectsWrongSecret(t *testing.T) {
	other := auth.NewSessionService(auth.SessionConfig{JWTSecret: []byte("other-secret")})
	token := issueTestToken(t, other, uuid.New())

	handler := Auth(testSessionService())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler reached with a foreign token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/family", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}
