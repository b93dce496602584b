package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"blockpress/internal/auth"
	"blockpress/internal/httputil"
)

func okHandler(t *testing.T) (http.Handler, *string) {
	t.Helper()
	var subject string
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		subject = httputil.GetSubject(r)
		w.WriteHeader(http.StatusOK)
	})
	return h, &subject
}

func TestAuthNilVerifierPassesThrough(t *testing.T) {
	inner, _ := okHandler(t)
	h := Auth(nil)(inner)

	req := httptest.NewRequest(http.MethodPost, "/api/convert", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestAuthRejectsMissingToken(t *testing.T) {
	inner, _ := okHandler(t)
	h := Auth(auth.NewSecretVerifier("s3cret"))(inner)

	req := httptest.NewRequest(http.MethodPost, "/api/convert", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestAuthSkipsHealth(t *testing.T) {
	inner, _ := okHandler(t)
	h := Auth(auth.NewSecretVerifier("s3cret"))(inner)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestAuthAcceptsValidTokenAndSetsSubject(t *testing.T) {
	inner, subject := okHandler(t)
	h := Auth(auth.NewSecretVerifier("s3cret"))(inner)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "editor-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte("s3cret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/convert", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if *subject != "editor-1" {
		t.Errorf("subject = %q, want editor-1", *subject)
	}
}

func TestRequestLogAssignsID(t *testing.T) {
	var gotID string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = httputil.GetRequestID(r)
		w.WriteHeader(http.StatusNoContent)
	})
	h := RequestLog(slog.New(slog.NewTextHandler(io.Discard, nil)))(inner)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if gotID == "" {
		t.Error("request ID was not set")
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", rec.Code)
	}
}
