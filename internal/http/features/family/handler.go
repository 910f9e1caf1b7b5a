package family

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/leonguyen52/sprout-track-sub004/internal/http/middleware"
	"github.com/leonguyen52/sprout-track-sub004/internal/httputil"
	"github.com/leonguyen52/sprout-track-sub004/internal/notification"
	"github.com/leonguyen52/sprout-track-sub004/internal/setup"
	"github.com/leonguyen52/sprout-track-sub004/pkg/domain"
	"github.com/leonguyen52/sprout-track-sub004/pkg/repository"
)

// Handler handles family endpoints.
type Handler struct {
	logger       *slog.Logger
	families     *repository.FamiliesRepository
	setupService *setup.Service
	dispatcher   *notification.Dispatcher
	appBaseURL   string
}

// NewHandler creates a new family handler.
func NewHandler(
	logger *slog.Logger,
	families *repository.FamiliesRepository,
	setupService *setup.Service,
	dispatcher *notification.Dispatcher,
	appBaseURL string,
) *Handler {
	return &Handler{
		logger:       logger,
		families:     families,
		setupService: setupService,
		dispatcher:   dispatcher,
		appBaseURL:   appBaseURL,
	}
}

// GetBySlug handles slug lookups used by the frontend routing guard.
// GET /api/family/by-slug/{slug}
//
// An unused slug answers 200 with success:false rather than 404 so the
// browser console stays free of error noise during setup slug checks.
func (h *Handler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	family, err := h.families.GetBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, domain.ErrFamilyNotFound) {
			httputil.JSON(w, http.StatusOK, httputil.Envelope{Success: false})
			return
		}
		h.logger.Error("slug lookup failed", "slug", slug, "error", err)
		httputil.Error(w, http.StatusInternalServerError, "lookup failed")
		return
	}

	httputil.OK(w, http.StatusOK, family)
}

// Get returns the authenticated family.
// GET /api/family
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	familyID, ok := middleware.GetFamilyID(r.Context())
	if !ok {
		httputil.Error(w, http.StatusUnauthorized, "missing authorization")
		return
	}

	family, err := h.families.GetByID(r.Context(), familyID)
	if err != nil {
		if errors.Is(err, domain.ErrFamilyNotFound) {
			httputil.Error(w, http.StatusNotFound, "family not found")
			return
		}
		h.logger.Error("family lookup failed", "family_id", familyID, "error", err)
		httputil.Error(w, http.StatusInternalServerError, "lookup failed")
		return
	}

	httputil.OK(w, http.StatusOK, family)
}

// InviteRequest represents an invitation request.
type InviteRequest struct {
	Email string `json:"email,omitempty"`
}

// InviteResponse carries the one-time setup link.
type InviteResponse struct {
	Token     string `json:"token"`
	SetupURL  string `json:"setupUrl"`
	ExpiresAt string `json:"expiresAt"`
	EmailSent bool   `json:"emailSent"`
}

// Invite creates a single-use setup invitation and, when an email address
// is given, sends the setup link through the email dispatcher.
// POST /api/family/invite
func (h *Handler) Invite(w http.ResponseWriter, r *http.Request) {
	var req InviteRequest
	if r.Body != nil && r.ContentLength != 0 {
		if !httputil.DecodeJSON(w, r, &req) {
			return
		}
	}

	rawToken, invite, err := h.setupService.CreateInvite(r.Context())
	if err != nil {
		h.logger.Error("failed to create invite", "error", err)
		httputil.Error(w, http.StatusInternalServerError, "failed to create invitation")
		return
	}

	setupURL := fmt.Sprintf("%s/setup?token=%s", h.appBaseURL, rawToken)
	resp := InviteResponse{
		Token:     rawToken,
		SetupURL:  setupURL,
		ExpiresAt: invite.ExpiresAt.Format(time.RFC3339),
	}

	if req.Email != "" {
		msg := notification.InviteMessage(req.Email, setupURL, invite.ExpiresAt)
		result := h.dispatcher.Send(r.Context(), msg)
		resp.EmailSent = result.Success
		if !result.Success {
			h.logger.Warn("invite email not sent", "to", req.Email, "error", result.Error)
		}
	}

	httputil.OK(w, http.StatusCreated, resp)
}
