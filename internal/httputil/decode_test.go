package httputil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	t.Run("valid body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"ok"}`))
		rec := httptest.NewRecorder()
		var p payload
		if !DecodeJSON(rec, req, &p) {
			t.Fatalf("DecodeJSON failed: %s", rec.Body.String())
		}
		if p.Name != "ok" {
			t.Errorf("Name = %q, want %q", p.Name, "ok")
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{not json`))
		rec := httptest.NewRecorder()
		var p payload
		if DecodeJSON(rec, req, &p) {
			t.Fatal("DecodeJSON accepted malformed JSON")
		}
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("oversized body", func(t *testing.T) {
		body := `{"name":"` + strings.Repeat("x", 64) + `"}`
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		rec := httptest.NewRecorder()
		req.Body = http.MaxBytesReader(rec, req.Body, 16)

		var p payload
		if DecodeJSON(rec, req, &p) {
			t.Fatal("DecodeJSON accepted a body over the limit")
		}
		if rec.Code != http.StatusRequestEntityTooLarge {
			t.Errorf("status = %d, want 413", rec.Code)
		}
		var env Envelope
		if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if env.Success || env.Error == "" {
			t.Errorf("envelope = %+v, want failure with message", env)
		}
	})
}
