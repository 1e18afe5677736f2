package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/AbelAliasAbraham/ToDo-List-Using-React-and-Node.js/internal/token"
)

func newProtectedRouter(signer *token.Signer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", Auth(signer), func(c *gin.Context) {
		c.String(http.StatusOK, UserID(c).String())
	})
	return router
}

func TestAuthRejectsMissingToken(t *testing.T) {
	router := newProtectedRouter(token.NewSigner("test-secret"))

	for _, header := range []string{"", "   ", "Bearer ", "Bearer    "} {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("header %q: status = %d, want 401", header, rec.Code)
		}
	}
}

func TestAuthRejectsInvalidToken(t *testing.T) {
	router := newProtectedRouter(token.NewSigner("test-secret"))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "not-a-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestAuthRejectsExpiredToken(t *testing.T) {
	raw := issueExpired(t, "test-secret")

	router := newProtectedRouter(token.NewSigner("test-secret"))
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", raw)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestAuthPassesVerifiedIdentity(t *testing.T) {
	signer := token.NewSigner("test-secret")
	router := newProtectedRouter(signer)

	userID := uuid.New()
	raw, err := signer.Issue(userID)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	for _, header := range []string{raw, "Bearer " + raw} {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		if rec.Body.String() != userID.String() {
			t.Errorf("handler saw user %q, want %q", rec.Body.String(), userID)
		}
	}
}

// issueExpired signs a token whose validity window has already closed.
func issueExpired(t *testing.T, secret string) string {
	t.Helper()

	past := token.NewSignerWithClock(secret, func() time.Time {
		return time.Now().Add(-2 * time.Hour)
	})
	raw, err := past.Issue(uuid.New())
	if err != nil {
		t.Fatalf("issue expired token: %v", err)
	}
	return raw
}
