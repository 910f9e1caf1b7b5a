package notify

import (
	"log/slog"
	"net/http"

	"github.com/leonguyen52/sprout-track-sub004/internal/httputil"
	"github.com/leonguyen52/sprout-track-sub004/internal/notification"
)

// Handler handles push notification test requests.
type Handler struct {
	logger          *slog.Logger
	push            *notification.PushClient
	defaultEndpoint string
}

// NewHandler creates a new notify handler. defaultEndpoint backs requests
// that do not name their own endpoint.
func NewHandler(logger *slog.Logger, push *notification.PushClient, defaultEndpoint string) *Handler {
	return &Handler{
		logger:          logger,
		push:            push,
		defaultEndpoint: defaultEndpoint,
	}
}

// TestRequest represents a push notification test request.
type TestRequest struct {
	HermesAPIKey      string `json:"hermesApiKey"`
	HermesAPIEndpoint string `json:"hermesApiEndpoint,omitempty"`
	NotificationTitle string `json:"notificationTitle"`
	Type              string `json:"type"`
}

var testMessages = map[string]string{
	"FEED":   "This is a test feed reminder.",
	"DIAPER": "This is a test diaper reminder.",
}

// Test sends a test notification through the push service so users can
// verify their reminder settings.
// POST /api/notify/test
//
// An upstream delivery failure answers 200 with success:false so the
// settings page can show the provider error verbatim. Only local problems
// (bad request, no endpoint configured) use error status codes.
func (h *Handler) Test(w http.ResponseWriter, r *http.Request) {
	var req TestRequest
	if !httputil.DecodeJSON(w, r, &req) {
		return
	}
	if req.HermesAPIKey == "" {
		httputil.Error(w, http.StatusBadRequest, "hermesApiKey is required")
		return
	}
	if req.NotificationTitle == "" {
		httputil.Error(w, http.StatusBadRequest, "notificationTitle is required")
		return
	}
	message, ok := testMessages[req.Type]
	if !ok {
		httputil.Error(w, http.StatusBadRequest, "type must be FEED or DIAPER")
		return
	}
	if req.HermesAPIEndpoint == "" && h.defaultEndpoint == "" {
		httputil.Error(w, http.StatusInternalServerError, "no push endpoint configured")
		return
	}

	err := h.push.Send(r.Context(), req.HermesAPIEndpoint, notification.PushNotification{
		APIKey:  req.HermesAPIKey,
		Title:   req.NotificationTitle,
		Message: message,
	})
	if err != nil {
		h.logger.Warn("test notification failed", "type", req.Type, "error", err)
		httputil.Fail(w, err.Error())
		return
	}

	httputil.OK(w, http.StatusOK, map[string]string{"message": "test notification sent"})
}
