package activities

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/leonguyen52/sprout-track-sub004/internal/http/middleware"
	"github.com/leonguyen52/sprout-track-sub004/internal/httputil"
	"github.com/leonguyen52/sprout-track-sub004/pkg/domain"
)

// DiaperLogRequest represents a diaper log create/update request.
type DiaperLogRequest struct {
	BabyID    string            `json:"babyId"`
	Time      string            `json:"time"`
	Type      domain.DiaperType `json:"type"`
	Condition *string           `json:"condition,omitempty"`
	Color     *string           `json:"color,omitempty"`
	Note      *string           `json:"note,omitempty"`
}

func (req *DiaperLogRequest) toLog(familyID uuid.UUID) (*domain.DiaperLog, error) {
	babyID, err := uuid.Parse(req.BabyID)
	if err != nil {
		return nil, errInvalidBabyID
	}
	at, err := parseTime("time", req.Time)
	if err != nil {
		return nil, err
	}
	if !domain.ValidDiaperType(req.Type) {
		return nil, errInvalidLogType
	}
	return &domain.DiaperLog{
		FamilyID:  familyID,
		BabyID:    babyID,
		Time:      at,
		Type:      req.Type,
		Condition: req.Condition,
		Color:     req.Color,
		Note:      req.Note,
	}, nil
}

// ListDiaperLogs lists diaper logs.
// GET /api/diaper-log
func (h *Handler) ListDiaperLogs(w http.ResponseWriter, r *http.Request) {
	familyID, _ := middleware.GetFamilyID(r.Context())

	filter, err := parseLogFilter(r)
	if err != nil {
		httputil.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	logs, err := h.diapers.List(r.Context(), familyID, filter)
	if err != nil {
		h.writeLogError(w, err, "list diaper logs")
		return
	}
	if logs == nil {
		logs = []*domain.DiaperLog{}
	}
	httputil.OK(w, http.StatusOK, logs)
}

// CreateDiaperLog creates a diaper log.
// POST /api/diaper-log
func (h *Handler) CreateDiaperLog(w http.ResponseWriter, r *http.Request) {
	familyID, _ := middleware.GetFamilyID(r.Context())

	var req DiaperLogRequest
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
	if err := h.diapers.Create(r.Context(), log); err != nil {
		h.writeLogError(w, err, "create diaper log")
		return
	}
	httputil.OK(w, http.StatusCreated, log)
}

// GetDiaperLog retrieves a diaper log.
// GET /api/diaper-log/{id}
func (h *Handler) GetDiaperLog(w http.ResponseWriter, r *http.Request) {
	familyID, _ := middleware.GetFamilyID(r.Context())

	id, err := parseID(r)
	if err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid log id")
		return
	}
	log, err := h.diapers.GetByID(r.Context(), familyID, id)
	if err != nil {
		h.writeLogError(w, err, "get diaper log")
		return
	}
	httputil.OK(w, http.StatusOK, log)
}

// UpdateDiaperLog updates a diaper log.
// PUT /api/diaper-log/{id}
func (h *Handler) UpdateDiaperLog(w http.ResponseWriter, r *http.Request) {
	familyID, _ := middleware.GetFamilyID(r.Context())

	id, err := parseID(r)
	if err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid log id")
		return
	}
	var req DiaperLogRequest
	if !httputil.DecodeJSON(w, r, &req) {
		return
	}
	log, err := req.toLog(familyID)
	if err != nil {
		httputil.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	log.ID = id
	if err := h.diapers.Update(r.Context(), log); err != nil {
		h.writeLogError(w, err, "update diaper log")
		return
	}
	updated, err := h.diapers.GetByID(r.Context(), familyID, id)
	if err != nil {
		h.writeLogError(w, err, "update diaper log")
		return
	}
	httputil.OK(w, http.StatusOK, updated)
}

// DeleteDiaperLog deletes a diaper log.
// DELETE /api/diaper-log/{id}
func (h *Handler) DeleteDiaperLog(w http.ResponseWriter, r *http.Request) {
	familyID, _ := middleware.GetFamilyID(r.Context())

	id, err := parseID(r)
	if err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid log id")
		return
	}
	if err := h.diapers.Delete(r.Context(), familyID, id); err != nil {
		h.writeLogError(w, err, "delete diaper log")
		return
	}
	httputil.OK(w, http.StatusOK, nil)
}
