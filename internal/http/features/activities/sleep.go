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

// SleepLogRequest represents a sleep log create/update request. EndTime is
// omitted while the session is ongoing.
type SleepLogRequest struct {
	BabyID    string           `json:"babyId"`
	StartTime string           `json:"startTime"`
	EndTime   *string          `json:"endTime,omitempty"`
	Type      domain.SleepType `json:"type"`
	Location  *string          `json:"location,omitempty"`
	Quality   *string          `json:"quality,omitempty"`
	Note      *string          `json:"note,omitempty"`
}

func (req *SleepLogRequest) toLog(familyID uuid.UUID) (*domain.SleepLog, error) {
	babyID, err := uuid.Parse(req.BabyID)
	if err != nil {
		return nil, errInvalidBabyID
	}
	start, err := parseTime("startTime", req.StartTime)
	if err != nil {
		return nil, err
	}
	if !domain.ValidSleepType(req.Type) {
		return nil, errInvalidLogType
	}

	var end *time.Time
	if req.EndTime != nil && *req.EndTime != "" {
		t, err := time.Parse(time.RFC3339, *req.EndTime)
		if err != nil {
			return nil, errors.New("endTime must be an RFC 3339 timestamp")
		}
		if t.Before(start) {
			return nil, errors.New("endTime must not be before startTime")
		}
		end = &t
	}

	return &domain.SleepLog{
		FamilyID:  familyID,
		BabyID:    babyID,
		StartTime: start,
		EndTime:   end,
		Type:      req.Type,
		Location:  req.Location,
		Quality:   req.Quality,
		Note:      req.Note,
	}, nil
}

// ListSleepLogs lists sleep logs.
// GET /api/sleep-log
func (h *Handler) ListSleepLogs(w http.ResponseWriter, r *http.Request) {
	familyID, _ := middleware.GetFamilyID(r.Context())

	filter, err := parseLogFilter(r)
	if err != nil {
		httputil.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	logs, err := h.sleeps.List(r.Context(), familyID, filter)
	if err != nil {
		h.writeLogError(w, err, "list sleep logs")
		return
	}
	if logs == nil {
		logs = []*domain.SleepLog{}
	}
	httputil.OK(w, http.StatusOK, logs)
}

// CreateSleepLog creates a sleep log.
// POST /api/sleep-log
func (h *Handler) CreateSleepLog(w http.ResponseWriter, r *http.Request) {
	familyID, _ := middleware.GetFamilyID(r.Context())

	var req SleepLogRequest
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
	if err := h.sleeps.Create(r.Context(), log); err != nil {
		h.writeLogError(w, err, "create sleep log")
		return
	}
	httputil.OK(w, http.StatusCreated, log)
}

// GetSleepLog retrieves a sleep log.
// GET /api/sleep-log/{id}
func (h *Handler) GetSleepLog(w http.ResponseWriter, r *http.Request) {
	familyID, _ := middleware.GetFamilyID(r.Context())

	id, err := parseID(r)
	if err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid log id")
		return
	}
	log, err := h.sleeps.GetByID(r.Context(), familyID, id)
	if err != nil {
		h.writeLogError(w, err, "get sleep log")
		return
	}
	httputil.OK(w, http.StatusOK, log)
}

// UpdateSleepLog updates a sleep log. Clients end an ongoing session by
// sending the same log back with endTime set.
// PUT /api/sleep-log/{id}
func (h *Handler) UpdateSleepLog(w http.ResponseWriter, r *http.Request) {
	familyID, _ := middleware.GetFamilyID(r.Context())

	id, err := parseID(r)
	if err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid log id")
		return
	}
	var req SleepLogRequest
	if !httputil.DecodeJSON(w, r, &req) {
		return
	}
	log, err := req.toLog(familyID)
	if err != nil {
		httputil.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	log.ID = id
	if err := h.sleeps.Update(r.Context(), log); err != nil {
		h.writeLogError(w, err, "update sleep log")
		return
	}
	updated, err := h.sleeps.GetByID(r.Context(), familyID, id)
	if err != nil {
		h.writeLogError(w, err, "update sleep log")
		return
	}
	httputil.OK(w, http.StatusOK, updated)
}

// DeleteSleepLog deletes a sleep log.
// DELETE /api/sleep-log/{id}
func (h *Handler) DeleteSleepLog(w http.ResponseWriter, r *http.Request) {
	familyID, _ := middleware.GetFamilyID(r.Context())

	id, err := parseID(r)
	if err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid log id")
		return
	}
	if err := h.sleeps.Delete(r.Context(), familyID, id); err != nil {
		h.writeLogError(w, err, "delete sleep log")
		return
	}
	httputil.OK(w, http.StatusOK, nil)
}
