package auth

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/leonguyen52/sprout-track-sub004/internal/httputil"
	"github.com/leonguyen52/sprout-track-sub004/pkg/auth"
	"github.com/leonguyen52/sprout-track-sub004/pkg/domain"
	"github.com/leonguyen52/sprout-track-sub004/pkg/repository"
)

// Handler handles family PIN authentication.
type Handler struct {
	logger         *slog.Logger
	families       *repository.FamiliesRepository
	settings       *repository.SettingsRepository
	sessionService *auth.SessionService
	cookieConfig   httputil.CookieConfig
}

// NewHandler creates a new auth handler.
func NewHandler(
	logger *slog.Logger,
	families *repository.FamiliesRepository,
	settings *repository.SettingsRepository,
	sessionService *auth.SessionService,
) *Handler {
	return &Handler{
		logger:         logger,
		families:       families,
		settings:       settings,
		sessionService: sessionService,
		cookieConfig:   httputil.DefaultCookieConfig(),
	}
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Slug string `json:"slug"`
	PIN  string `json:"pin"`
}

// LoginResponse carries the issued token.
type LoginResponse struct {
	Token     string    `json:"token,omitempty"`
	TokenType string    `json:"tokenType"`
	ExpiresAt time.Time `json:"expiresAt"`
	FamilyID  string    `json:"familyId"`
	Slug      string    `json:"slug"`
}

// Login handles family login with slug and security PIN.
// POST /api/auth/login
//
// For web clients: sets an HttpOnly cookie and omits the token from the body.
// For mobile clients (X-Client-Type: mobile): returns the token in the body.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !httputil.DecodeJSON(w, r, &req) {
		return
	}

	if req.Slug == "" || req.PIN == "" {
		httputil.Error(w, http.StatusBadRequest, "slug and pin are required")
		return
	}

	family, err := h.families.GetBySlug(r.Context(), req.Slug)
	if err != nil {
		if errors.Is(err, domain.ErrFamilyNotFound) {
			// Same answer as a wrong PIN so this endpoint does not reveal which slugs exist.
			httputil.Error(w, http.StatusUnauthorized, "invalid family or PIN")
			return
		}
		h.logger.Error("login lookup failed", "slug", req.Slug, "error", err)
		httputil.Error(w, http.StatusInternalServerError, "login failed")
		return
	}

	settings, err := h.settings.GetByFamilyID(r.Context(), family.ID)
	if err != nil {
		h.logger.Error("settings lookup failed", "family_id", family.ID, "error", err)
		httputil.Error(w, http.StatusInternalServerError, "login failed")
		return
	}

	if !auth.VerifyPin(req.PIN, settings.SecurityPinHash) {
		httputil.Error(w, http.StatusUnauthorized, "invalid family or PIN")
		return
	}

	if !family.IsActive {
		httputil.Error(w, http.StatusForbidden, "family account is inactive")
		return
	}

	token, expiresAt, err := h.sessionService.IssueToken(family)
	if err != nil {
		h.logger.Error("token issuance failed", "family_id", family.ID, "error", err)
		httputil.Error(w, http.StatusInternalServerError, "login failed")
		return
	}

	resp := LoginResponse{
		TokenType: "Bearer",
		ExpiresAt: expiresAt,
		FamilyID:  family.ID.String(),
		Slug:      family.Slug,
	}

	if r.Header.Get("X-Client-Type") == "mobile" {
		resp.Token = token
	} else {
		httputil.SetAccessTokenCookie(w, token, h.sessionService.AccessTokenTTL(), h.cookieConfig)
	}

	httputil.OK(w, http.StatusOK, resp)
}

// Logout clears the access token cookie.
// POST /api/auth/logout
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	httputil.ClearAccessTokenCookie(w, h.cookieConfig)
	httputil.OK(w, http.StatusOK, nil)
}
