package setup

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/leonguyen52/sprout-track-sub004/internal/httputil"
	"github.com/leonguyen52/sprout-track-sub004/internal/setup"
	"github.com/leonguyen52/sprout-track-sub004/pkg/domain"
)

// Handler handles the family setup endpoint.
type Handler struct {
	logger       *slog.Logger
	setupService *setup.Service
}

// NewHandler creates a new setup handler.
func NewHandler(logger *slog.Logger, setupService *setup.Service) *Handler {
	return &Handler{
		logger:       logger,
		setupService: setupService,
	}
}

// StartRequest represents a setup request.
type StartRequest struct {
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Token string `json:"token,omitempty"`
	PIN   string `json:"pin,omitempty"`
}

// Start handles family creation.
// POST /api/setup/start
//
// Without a token, permitted only in first-run mode (zero families exist).
// With a token, the invitation is consumed in the same transaction as the
// family insert.
func (h *Handler) Start(w http.ResponseWriter, r *http.Request) {
	var req StartRequest
	if !httputil.DecodeJSON(w, r, &req) {
		return
	}

	if strings.TrimSpace(req.Name) == "" || req.Slug == "" {
		httputil.Error(w, http.StatusBadRequest, "name and slug are required")
		return
	}
	if err := domain.ValidateSlug(req.Slug); err != nil {
		httputil.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	family, err := h.setupService.Start(r.Context(), setup.StartParams{
		Name:  req.Name,
		Slug:  req.Slug,
		Token: req.Token,
		PIN:   req.PIN,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidPin):
			httputil.Error(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrSetupForbidden):
			httputil.Error(w, http.StatusForbidden, "setup requires an invitation")
		case errors.Is(err, domain.ErrInviteNotFound):
			httputil.Error(w, http.StatusNotFound, "invitation not found")
		case errors.Is(err, domain.ErrInviteExpired):
			httputil.Error(w, http.StatusForbidden, "invitation expired")
		case errors.Is(err, domain.ErrInviteConsumed):
			httputil.Error(w, http.StatusConflict, "invitation already used")
		case errors.Is(err, domain.ErrSlugTaken):
			httputil.Error(w, http.StatusConflict, "this URL is already taken")
		default:
			h.logger.Error("setup failed", "slug", req.Slug, "error", err)
			httputil.Error(w, http.StatusInternalServerError, "setup failed")
		}
		return
	}

	h.logger.Info("family created", "family_id", family.ID, "slug", family.Slug)
	httputil.OK(w, http.StatusCreated, family)
}
