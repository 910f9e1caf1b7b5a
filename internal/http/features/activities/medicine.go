package activities

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/leonguyen52/sprout-track-sub004/internal/http/middleware"
	"github.com/leonguyen52/sprout-track-sub004/internal/httputil"
	"github.com/leonguyen52/sprout-track-sub004/pkg/domain"
)

// MedicineLogRequest represents a medicine log create/update request.
type MedicineLogRequest struct {
	BabyID string  `json:"babyId"`
	Time   string  `json:"time"`
	Name   string  `json:"name"`
	Dose   float64 `json:"dose"`
	Unit   string  `json:"unit"`
	Note   *string `json:"note,omitempty"`
}

func (req *MedicineLogRequest) toLog(familyID uuid.UUID) (*domain.MedicineLog, error) {
	babyID, err := uuid.Parse(req.BabyID)
	if err != nil {
		return nil, errInvalidBabyID
	}
	at, err := parseTime("time", req.Time)
	if err != nil {
		return nil, err
	}
	if req.Name == "" {
		return nil, errors.New("name is required")
	}
	if req.Dose <= 0 {
		return nil, errors.New("dose must be positive")
	}
	if req.Unit == "" {
		return nil, errors.New("unit is required")
	}
	return &domain.MedicineLog{
		FamilyID: familyID,
		BabyID:   babyID,
		Time:     at,
		Name:     req.Name,
		Dose:     req.Dose,
		Unit:     req.Unit,
		Note:     req.Note,
	}, nil
}

// ListMedicineLogs lists medicine logs.
// GET /api/medicine-log
func (h *Handler) ListMedicineLogs(w http.ResponseWriter, r *http.Request) {
	familyID, _ := middleware.GetFamilyID(r.Context())

	filter, err := parseLogFilter(r)
	if err != nil {
		httputil.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	logs, err := h.medicines.List(r.Context(), familyID, filter)
	if err != nil {
		h.writeLogError(w, err, "list medicine logs")
		return
	}
	if logs == nil {
		logs = []*domain.MedicineLog{}
	}
	httputil.OK(w, http.StatusOK, logs)
}

// CreateMedicineLog creates a medicine log.
// POST /api/medicine-log
func (h *Handler) CreateMedicineLog(w http.ResponseWriter, r *http.Request) {
	familyID, _ := middleware.GetFamilyID(r.Context())

	var req MedicineLogRequest
	if !httputil.DecodeJSON(w, r, &req) {
		return
	}
	log, err := req.toLog(familyID)
	if err != nil {
		httputil.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	now := time.Now()
	log.ID = uuid.New()
	log.CreatedAt = now
	log.UpdatedAt = now
	if err := h.medicines.Create(r.Context(), log); err != nil {
		h.writeLogError(w, err, "create medicine log")
		return
	}
	httputil.OK(w, http.StatusCreated, log)
}

// GetMedicineLog retrieves a medicine log.
// GET /api/medicine-log/{id}
func (h *Handler) GetMedicineLog(w http.ResponseWriter, r *http.Request) {
	familyID, _ := middleware.GetFamilyID(r.Context())

	id, err := parseID(r)
	if err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid log id")
		return
	}
	log, err := h.medicines.GetByID(r.Context(), familyID, id)
	if err != nil {
		h.writeLogError(w, err, "get medicine log")
		return
	}
	httputil.OK(w, http.StatusOK, log)
}

// UpdateMedicineLog updates a medicine log.
// PUT /api/medicine-log/{id}
func (h *Handler) UpdateMedicineLog(w http.ResponseWriter, r *http.Request) {
	familyID, _ := middleware.GetFamilyID(r.Context())

	id, err := parseID(r)
	if err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid log id")
		return
	}
	var req MedicineLogRequest
	if !httputil.DecodeJSON(w, r, &req) {
		return
	}
	log, err := req.toLog(familyID)
	if err != nil {
		httputil.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	log.ID = id
	if err := h.medicines.Update(r.Context(), log); err != nil {
		h.writeLogError(w, err, "update medicine log")
		return
	}
	updated, err := h.medicines.GetByID(r.Context(), familyID, id)
	if err != nil {
		h.writeLogError(w, err, "update medicine log")
		return
	}
	httputil.OK(w, http.StatusOK, updated)
}

// DeleteMedicineLog deletes a medicine log.
// DELETE /api/medicine-log/{id}
func (h *Handler) DeleteMedicineLog(w http.ResponseWriter, r *http.Request) {
	familyID, _ := middleware.GetFamilyID(r.Context())

	id, err := parseID(r)
	if err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid log id")
		return
	}
	if err := h.medicines.Delete(r.Context(), familyID, id); err != nil {
		h.writeLogError(w, err, "delete medicine log")
		return
	}
	httputil.OK(w, http.StatusOK, nil)
}
