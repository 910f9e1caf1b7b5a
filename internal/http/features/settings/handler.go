package settings

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/leonguyen52/sprout-track-sub004/internal/http/middleware"
	"github.com/leonguyen52/sprout-track-sub004/internal/httputil"
	"github.com/leonguyen52/sprout-track-sub004/pkg/auth"
	"github.com/leonguyen52/sprout-track-sub004/pkg/domain"
	"github.com/leonguyen52/sprout-track-sub004/pkg/repository"
)

// Handler handles family settings and the email provider configuration.
type Handler struct {
	logger      *slog.Logger
	settings    *repository.SettingsRepository
	emailConfig *repository.EmailConfigRepository
}

// NewHandler creates a new settings handler.
func NewHandler(
	logger *slog.Logger,
	settings *repository.SettingsRepository,
	emailConfig *repository.EmailConfigRepository,
) *Handler {
	return &Handler{
		logger:      logger,
		settings:    settings,
		emailConfig: emailConfig,
	}
}

// Get returns the family's settings.
// GET /api/settings
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	familyID, _ := middleware.GetFamilyID(r.Context())

	settings, err := h.settings.GetByFamilyID(r.Context(), familyID)
	if err != nil {
		if errors.Is(err, domain.ErrSettingsNotFound) {
			httputil.Error(w, http.StatusNotFound, "settings not found")
			return
		}
		h.logger.Error("settings lookup failed", "family_id", familyID, "error", err)
		httputil.Error(w, http.StatusInternalServerError, "failed to load settings")
		return
	}
	httputil.OK(w, http.StatusOK, settings)
}

// UpdateRequest carries unit preference changes. Empty fields keep the
// current value.
type UpdateRequest struct {
	DefaultBottleUnit string `json:"defaultBottleUnit,omitempty"`
	DefaultSolidsUnit string `json:"defaultSolidsUnit,omitempty"`
	DefaultHeightUnit string `json:"defaultHeightUnit,omitempty"`
	DefaultWeightUnit string `json:"defaultWeightUnit,omitempty"`
	DefaultTempUnit   string `json:"defaultTempUnit,omitempty"`
}

// Update changes unit preferences.
// PUT /api/settings
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	familyID, _ := middleware.GetFamilyID(r.Context())

	var req UpdateRequest
	if !httputil.DecodeJSON(w, r, &req) {
		return
	}

	settings, err := h.settings.GetByFamilyID(r.Context(), familyID)
	if err != nil {
		if errors.Is(err, domain.ErrSettingsNotFound) {
			httputil.Error(w, http.StatusNotFound, "settings not found")
			return
		}
		h.logger.Error("settings lookup failed", "family_id", familyID, "error", err)
		httputil.Error(w, http.StatusInternalServerError, "failed to load settings")
		return
	}

	if req.DefaultBottleUnit != "" {
		settings.DefaultBottleUnit = req.DefaultBottleUnit
	}
	if req.DefaultSolidsUnit != "" {
		settings.DefaultSolidsUnit = req.DefaultSolidsUnit
	}
	if req.DefaultHeightUnit != "" {
		settings.DefaultHeightUnit = req.DefaultHeightUnit
	}
	if req.DefaultWeightUnit != "" {
		settings.DefaultWeightUnit = req.DefaultWeightUnit
	}
	if req.DefaultTempUnit != "" {
		settings.DefaultTempUnit = req.DefaultTempUnit
	}

	if err := h.settings.Update(r.Context(), settings); err != nil {
		h.logger.Error("settings update failed", "family_id", familyID, "error", err)
		httputil.Error(w, http.StatusInternalServerError, "failed to update settings")
		return
	}
	httputil.OK(w, http.StatusOK, settings)
}

// ChangePinRequest carries a PIN change.
type ChangePinRequest struct {
	CurrentPIN string `json:"currentPin"`
	NewPIN     string `json:"newPin"`
}

// ChangePin replaces the family security PIN after verifying the current one.
// PUT /api/settings/pin
func (h *Handler) ChangePin(w http.ResponseWriter, r *http.Request) {
	familyID, _ := middleware.GetFamilyID(r.Context())

	var req ChangePinRequest
	if !httputil.DecodeJSON(w, r, &req) {
		return
	}
	if err := auth.ValidatePin(req.NewPIN); err != nil {
		httputil.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	settings, err := h.settings.GetByFamilyID(r.Context(), familyID)
	if err != nil {
		h.logger.Error("settings lookup failed", "family_id", familyID, "error", err)
		httputil.Error(w, http.StatusInternalServerError, "failed to change PIN")
		return
	}
	if !auth.VerifyPin(req.CurrentPIN, settings.SecurityPinHash) {
		httputil.Error(w, http.StatusUnauthorized, "current PIN is incorrect")
		return
	}

	hash, err := auth.HashPin(req.NewPIN)
	if err != nil {
		h.logger.Error("pin hashing failed", "family_id", familyID, "error", err)
		httputil.Error(w, http.StatusInternalServerError, "failed to change PIN")
		return
	}
	if err := h.settings.UpdatePinHash(r.Context(), familyID, hash); err != nil {
		h.logger.Error("pin update failed", "family_id", familyID, "error", err)
		httputil.Error(w, http.StatusInternalServerError, "failed to change PIN")
		return
	}
	httputil.OK(w, http.StatusOK, nil)
}

// EmailConfigResponse is the stored email configuration with credentials
// reduced to presence flags.
type EmailConfigResponse struct {
	*domain.EmailConfig
	HasSendGridKey  bool `json:"hasSendGridKey"`
	HasSMTPPassword bool `json:"hasSmtpPassword"`
}

// GetEmailConfig returns the active email provider configuration.
// GET /api/settings/email
func (h *Handler) GetEmailConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.emailConfig.Get(r.Context())
	if err != nil {
		if errors.Is(err, domain.ErrEmailConfigNotFound) {
			httputil.Error(w, http.StatusNotFound, "email is not configured")
			return
		}
		h.logger.Error("email config lookup failed", "error", err)
		httputil.Error(w, http.StatusInternalServerError, "failed to load email configuration")
		return
	}

	httputil.OK(w, http.StatusOK, EmailConfigResponse{
		EmailConfig:     cfg,
		HasSendGridKey:  cfg.SendGridAPIKey != "",
		HasSMTPPassword: cfg.SMTPPassword != "",
	})
}

// EmailConfigRequest replaces the email provider configuration. Omitted
// credentials keep their stored values so clients never have to echo
// secrets back.
type EmailConfigRequest struct {
	Provider       domain.EmailProvider `json:"provider"`
	SendGridAPIKey string               `json:"sendGridApiKey,omitempty"`
	SMTPHost       string               `json:"smtpHost,omitempty"`
	SMTPPort       int                  `json:"smtpPort,omitempty"`
	SMTPUser       string               `json:"smtpUser,omitempty"`
	SMTPPassword   string               `json:"smtpPassword,omitempty"`
	FromAddress    string               `json:"fromAddress"`
	FromName       string               `json:"fromName,omitempty"`
}

// UpdateEmailConfig replaces the active email provider configuration.
// PUT /api/settings/email
func (h *Handler) UpdateEmailConfig(w http.ResponseWriter, r *http.Request) {
	var req EmailConfigRequest
	if !httputil.DecodeJSON(w, r, &req) {
		return
	}
	if !domain.ValidEmailProvider(req.Provider) {
		httputil.Error(w, http.StatusBadRequest, "invalid email provider")
		return
	}
	if req.FromAddress == "" {
		httputil.Error(w, http.StatusBadRequest, "fromAddress is required")
		return
	}

	cfg := &domain.EmailConfig{
		Provider:       req.Provider,
		SendGridAPIKey: req.SendGridAPIKey,
		SMTPHost:       req.SMTPHost,
		SMTPPort:       req.SMTPPort,
		SMTPUser:       req.SMTPUser,
		SMTPPassword:   req.SMTPPassword,
		FromAddress:    req.FromAddress,
		FromName:       req.FromName,
	}

	if existing, err := h.emailConfig.Get(r.Context()); err == nil {
		if cfg.SendGridAPIKey == "" {
			cfg.SendGridAPIKey = existing.SendGridAPIKey
		}
		if cfg.SMTPPassword == "" {
			cfg.SMTPPassword = existing.SMTPPassword
		}
	} else if !errors.Is(err, domain.ErrEmailConfigNotFound) {
		h.logger.Error("email config lookup failed", "error", err)
		httputil.Error(w, http.StatusInternalServerError, "failed to save email configuration")
		return
	}

	if err := h.emailConfig.Upsert(r.Context(), cfg); err != nil {
		h.logger.Error("email config save failed", "error", err)
		httputil.Error(w, http.StatusInternalServerError, "failed to save email configuration")
		return
	}

	httputil.OK(w, http.StatusOK, EmailConfigResponse{
		EmailConfig:     cfg,
		HasSendGridKey:  cfg.SendGridAPIKey != "",
		HasSMTPPassword: cfg.SMTPPassword != "",
	})
}
