package notify

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/leonguyen52/sprout-track-sub004/internal/httputil"
	"github.com/leonguyen52/sprout-track-sub004/internal/notification"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func postTest(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/notify/test", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Test(rec, req)
	return rec
}

func envelopeOf(t *testing.T, rec *httptest.ResponseRecorder) httputil.Envelope {
	t.Helper()
	var env httputil.Envelope
	if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return env
}

func TestTestValidation(t *testing.T) {
	h := NewHandler(discardLogger(), notification.NewPushClient(discardLogger(), "http://example.com"), "http://example.com")

	tests := []struct {
		name string
		body string
	}{
		{"bad json", "{"},
		{"missing api key", `{"notificationTitle":"Reminder","type":"FEED"}`},
		{"missing title", `{"hermesApiKey":"k","type":"FEED"}`},
		{"unknown type", `{"hermesApiKey":"k","notificationTitle":"Reminder","type":"BATH"}`},
		{"empty type", `{"hermesApiKey":"k","notificationTitle":"Reminder"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postTest(t, h, tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestTestNoEndpointConfigured(t *testing.T) {
	h := NewHandler(discardLogger(), notification.NewPushClient(discardLogger(), ""), "")

	rec := postTest(t, h, `{"hermesApiKey":"k","notificationTitle":"Reminder","type":"FEED"}`)
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}

func TestTestUpstreamFailureAnswers200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid api key", http.StatusUnauthorized)
	}))
	defer server.Close()

	h := NewHandler(discardLogger(), notification.NewPushClient(discardLogger(), server.URL), server.URL)

	rec := postTest(t, h, `{"hermesApiKey":"bad","notificationTitle":"Reminder","type":"DIAPER"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	env := envelopeOf(t, rec)
	if env.Success {
		t.Error("upstream failure reported as success")
	}
	if env.Error == "" {
		t.Error("upstream failure carries no error message")
	}
}

func TestTestSuccess(t *testing.T) {
	var received notification.PushNotification
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("decode payload: %v", err)
		}
	}))
	defer server.Close()

	h := NewHandler(discardLogger(), notification.NewPushClient(discardLogger(), server.URL), server.URL)

	rec := postTest(t, h, `{"hermesApiKey":"k","notificationTitle":"Feed time","type":"FEED"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if env := envelopeOf(t, rec); !env.Success {
		t.Errorf("envelope = %+v", env)
	}
	if received.APIKey != "k" || received.Title != "Feed time" {
		t.Errorf("payload = %+v", received)
	}
	if received.Message == "" {
		t.Error("test notification has no message body")
	}
}

func TestTestEndpointOverride(t *testing.T) {
	var hit bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hit = true
	}))
	defer server.Close()

	h := NewHandler(discardLogger(), notification.NewPushClient(discardLogger(), ""), "")

	body := `{"hermesApiKey":"k","hermesApiEndpoint":"` + server.URL + `","notificationTitle":"Reminder","type":"FEED"}`
	rec := postTest(t, h, body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !hit {
		t.Error("request endpoint was not used")
	}
}
