package babies

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/leonguyen52/sprout-track-sub004/internal/http/middleware"
	"github.com/leonguyen52/sprout-track-sub004/internal/httputil"
	"github.com/leonguyen52/sprout-track-sub004/pkg/domain"
)

// BabyStore is the slice of the babies repository the handler uses.
type BabyStore interface {
	Create(ctx context.Context, baby *domain.Baby) error
	GetByID(ctx context.Context, familyID, id uuid.UUID) (*domain.Baby, error)
	ListByFamily(ctx context.Context, familyID uuid.UUID) ([]*domain.Baby, error)
	Update(ctx context.Context, baby *domain.Baby) error
	Delete(ctx context.Context, familyID, id uuid.UUID) error
}

// Handler handles baby CRUD endpoints.
type Handler struct {
	logger *slog.Logger
	babies BabyStore
}

// NewHandler creates a new babies handler.
func NewHandler(logger *slog.Logger, babies BabyStore) *Handler {
	return &Handler{logger: logger, babies: babies}
}

// BabyRequest represents a create/update request.
type BabyRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	BirthDate string `json:"birthDate"` // YYYY-MM-DD
	Gender    string `json:"gender,omitempty"`
	Inactive  bool   `json:"inactive,omitempty"`
}

func (req *BabyRequest) validate() (time.Time, error) {
	if req.FirstName == "" {
		return time.Time{}, errors.New("firstName is required")
	}
	if req.BirthDate == "" {
		return time.Time{}, errors.New("birthDate is required")
	}
	birthDate, err := time.Parse("2006-01-02", req.BirthDate)
	if err != nil {
		return time.Time{}, errors.New("birthDate must be in YYYY-MM-DD format")
	}
	return birthDate, nil
}

// List lists the family's babies.
// GET /api/babies
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	familyID, _ := middleware.GetFamilyID(r.Context())

	babies, err := h.babies.ListByFamily(r.Context(), familyID)
	if err != nil {
		h.logger.Error("failed to list babies", "family_id", familyID, "error", err)
		httputil.Error(w, http.StatusInternalServerError, "failed to list babies")
		return
	}
	if babies == nil {
		babies = []*domain.Baby{}
	}
	httputil.OK(w, http.StatusOK, babies)
}

// Create creates a baby.
// POST /api/babies
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	familyID, _ := middleware.GetFamilyID(r.Context())

	var req BabyRequest
	if !httputil.DecodeJSON(w, r, &req) {
		return
	}
	birthDate, err := req.validate()
	if err != nil {
		httputil.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	now := time.Now()
	baby := &domain.Baby{
		ID:        uuid.New(),
		FamilyID:  familyID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		BirthDate: birthDate,
		Gender:    req.Gender,
		Inactive:  req.Inactive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := h.babies.Create(r.Context(), baby); err != nil {
		h.logger.Error("failed to create baby", "family_id", familyID, "error", err)
		httputil.Error(w, http.StatusInternalServerError, "failed to create baby")
		return
	}

	httputil.OK(w, http.StatusCreated, baby)
}

// Get retrieves a baby.
// GET /api/babies/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	familyID, _ := middleware.GetFamilyID(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid baby id")
		return
	}

	baby, err := h.babies.GetByID(r.Context(), familyID, id)
	if err != nil {
		if errors.Is(err, domain.ErrBabyNotFound) {
			httputil.Error(w, http.StatusNotFound, "baby not found")
			return
		}
		h.logger.Error("failed to get baby", "family_id", familyID, "error", err)
		httputil.Error(w, http.StatusInternalServerError, "failed to get baby")
		return
	}
	httputil.OK(w, http.StatusOK, baby)
}

// Update updates a baby.
// PUT /api/babies/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	familyID, _ := middleware.GetFamilyID(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid baby id")
		return
	}

	var req BabyRequest
	if !httputil.DecodeJSON(w, r, &req) {
		return
	}
	birthDate, err := req.validate()
	if err != nil {
		httputil.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	baby := &domain.Baby{
		ID:        id,
		FamilyID:  familyID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		BirthDate: birthDate,
		Gender:    req.Gender,
		Inactive:  req.Inactive,
	}
	if err := h.babies.Update(r.Context(), baby); err != nil {
		if errors.Is(err, domain.ErrBabyNotFound) {
			httputil.Error(w, http.StatusNotFound, "baby not found")
			return
		}
		h.logger.Error("failed to update baby", "family_id", familyID, "error", err)
		httputil.Error(w, http.StatusInternalServerError, "failed to update baby")
		return
	}
	// Re-read so the response carries the stored timestamps.
	updated, err := h.babies.GetByID(r.Context(), familyID, id)
	if err != nil {
		h.logger.Error("failed to get baby", "family_id", familyID, "error", err)
		httputil.Error(w, http.StatusInternalServerError, "failed to update baby")
		return
	}
	httputil.OK(w, http.StatusOK, updated)
}

// Delete deletes a baby and its logs.
// DELETE /api/babies/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	familyID, _ := middleware.GetFamilyID(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid baby id")
		return
	}

	if err := h.babies.Delete(r.Context(), familyID, id); err != nil {
		if errors.Is(err, domain.ErrBabyNotFound) {
			httputil.Error(w, http.StatusNotFound, "baby not found")
			return
		}
		h.logger.Error("failed to delete baby", "family_id", familyID, "error", err)
		httputil.Error(w, http.StatusInternalServerError, "failed to delete baby")
		return
	}
	httputil.OK(w, http.StatusOK, nil)
}
