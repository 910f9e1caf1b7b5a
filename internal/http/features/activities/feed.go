package activities

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/leonguyen52/sprout-track-sub004/internal/http/middleware"
	"github.com/leonguyen52/sprout-track-sub004/internal/httputil"
	"github.com/leonguyen52/sprout-track-sub004/pkg/domain"
)

// FeedLogRequest represents a feed log create/update request.
type FeedLogRequest struct {
	BabyID string          `json:"babyId"`
	Time   string          `json:"time"`
	Type   domain.FeedType `json:"type"`
	Amount *float64        `json:"amount,omitempty"`
	Unit   *string         `json:"unit,omitempty"`
	Side   *string         `json:"side,omitempty"`
	Food   *string         `json:"food,omitempty"`
	Note   *string         `json:"note,omitempty"`
}

func (req *FeedLogRequest) toLog(familyID uuid.UUID) (*domain.FeedLog, error) {
	babyID, err := uuid.Parse(req.BabyID)
	if err != nil {
		return nil, errInvalidBabyID
	}
	at, err := parseTime("time", req.Time)
	if err != nil {
		return nil, err
	}
	if !domain.ValidFeedType(req.Type) {
		return nil, errInvalidLogType
	}
	return &domain.FeedLog{
		FamilyID: familyID,
		BabyID:   babyID,
		Time:     at,
		Type:     req.Type,
		Amount:   req.Amount,
		Unit:     req.Unit,
		Side:     req.Side,
		Food:     req.Food,
		Note:     req.Note,
	}, nil
}

// ListFeedLogs lists feed logs.
// GET /api/feed-log
func (h *Handler) ListFeedLogs(w http.ResponseWriter, r *http.Request) {
	familyID, _ := middleware.GetFamilyID(r.Context())

	filter, err := parseLogFilter(r)
	if err != nil {
		httputil.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	logs, err := h.feeds.List(r.Context(), familyID, filter)
	if err != nil {
		h.writeLogError(w, err, "list feed logs")
		return
	}
	if logs == nil {
		logs = []*domain.FeedLog{}
	}
	httputil.OK(w, http.StatusOK, logs)
}

// CreateFeedLog creates a feed log.
// POST /api/feed-log
func (h *Handler) CreateFeedLog(w http.ResponseWriter, r *http.Request) {
	familyID, _ := middleware.GetFamilyID(r.Context())

	var req FeedLogRequest
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
	if err := h.feeds.Create(r.Context(), log); err != nil {
		h.writeLogError(w, err, "create feed log")
		return
	}
	httputil.OK(w, http.StatusCreated, log)
}

// GetFeedLog retrieves a feed log.
// GET /api/feed-log/{id}
func (h *Handler) GetFeedLog(w http.ResponseWriter, r *http.Request) {
	familyID, _ := middleware.GetFamilyID(r.Context())

	id, err := parseID(r)
	if err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid log id")
		return
	}
	log, err := h.feeds.GetByID(r.Context(), familyID, id)
	if err != nil {
		h.writeLogError(w, err, "get feed log")
		return
	}
	httputil.OK(w, http.StatusOK, log)
}

// UpdateFeedLog updates a feed log.
// PUT /api/feed-log/{id}
func (h *Handler) UpdateFeedLog(w http.ResponseWriter, r *http.Request) {
	familyID, _ := middleware.GetFamilyID(r.Context())

	id, err := parseID(r)
	if err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid log id")
		return
	}
	var req FeedLogRequest
	if !httputil.DecodeJSON(w, r, &req) {
		return
	}
	log, err := req.toLog(familyID)
	if err != nil {
		httputil.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	log.ID = id
	if err := h.feeds.Update(r.Context(), log); err != nil {
		h.writeLogError(w, err, "update feed log")
		return
	}
	// Re-read so the response carries the stored timestamps.
	updated, err := h.feeds.GetByID(r.Context(), familyID, id)
	if err != nil {
		h.writeLogError(w, err, "update feed log")
		return
	}
	httputil.OK(w, http.StatusOK, updated)
}

// DeleteFeedLog deletes a feed log.
// DELETE /api/feed-log/{id}
func (h *Handler) DeleteFeedLog(w http.ResponseWriter, r *http.Request) {
	familyID, _ := middleware.GetFamilyID(r.Context())

	id, err := parseID(r)
	if err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid log id")
		return
	}
	if err := h.feeds.Delete(r.Context(), familyID, id); err != nil {
		h.writeLogError(w, err, "delete feed log")
		return
	}
	httputil.OK(w, http.StatusOK, nil)
}
