package httputil

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
)

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) Envelope {
	t.Helper()
	var env Envelope
	if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return env
}

func TestOK(t *testing.T) {
	rec := httptest.NewRecorder()
	OK(rec, 201, map[string]string{"name": "test"})

	if rec.Code != 201 {
		t.Errorf("status = %d, want 201", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	env := decodeEnvelope(t, rec)
	if !env.Success || env.Error != "" || env.Data == nil {
		t.Errorf("envelope = %+v", env)
	}
}

func TestError(t *testing.T) {
	rec := httptest.NewRecorder()
	Error(rec, 404, "not found")

	if rec.Code != 404 {
		t.Errorf("status = %d, want 404", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env.Success || env.Error != "not found" {
		t.Errorf("envelope = %+v", env)
	}
}

func TestFailAnswers200(t *testing.T) {
	rec := httptest.NewRecorder()
	Fail(rec, "upstream rejected the request")

	if rec.Code != 200 {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env.Success {
		t.Error("failure envelope reports success")
	}
	if env.Error != "upstream rejected the request" {
		t.Errorf("error = %q", env.Error)
	}
}
