package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"blockpress/internal/converter"
	"blockpress/internal/service"
)

func newTestHandler() *ConvertHandler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.NewConvertService(nil, nil, converter.Options{AutoParagraph: true}, logger)
	return NewConvertHandler(svc, logger)
}

func postConvert(t *testing.T, h *ConvertHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/convert", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Convert(rec, req)
	return rec
}

func TestConvertEndpoint(t *testing.T) {
	h := newTestHandler()

	rec := postConvert(t, h, `{"html":"<h2>Title</h2>"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var result service.ConvertResult
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !strings.Contains(result.Blocks, "wp:heading") {
		t.Errorf("blocks = %q, want a heading block", result.Blocks)
	}
}

func TestConvertEndpointBadJSON(t *testing.T) {
	h := newTestHandler()

	rec := postConvert(t, h, `{"html":`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("content type = %q", ct)
	}
}

func TestConvertEndpointEmptyHTML(t *testing.T) {
	h := newTestHandler()

	rec := postConvert(t, h, `{"html":""}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", rec.Code)
	}
}

func TestHealthEndpoint(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	Health(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "ok") {
		t.Errorf("body = %q", rec.Body.String())
	}
}
