package activities

import (
	"errors"
	"net/http"

	"github.com/leonguyen52/sprout-track-sub004/internal/http/middleware"
	"github.com/leonguyen52/sprout-track-sub004/internal/httputil"
	"github.com/leonguyen52/sprout-track-sub004/pkg/domain"
)

// LastActivities is the status summary shown on a baby's dashboard card.
// Any entry is nil when the baby has no log of that kind yet.
type LastActivities struct {
	LastFeed   *domain.FeedLog   `json:"lastFeed"`
	LastDiaper *domain.DiaperLog `json:"lastDiaper"`
	LastSleep  *domain.SleepLog  `json:"lastSleep"`
}

// GetLastActivities returns the most recent feed, diaper and sleep entries
// for a baby.
// GET /api/babies/{id}/last-activities
func (h *Handler) GetLastActivities(w http.ResponseWriter, r *http.Request) {
	familyID, _ := middleware.GetFamilyID(r.Context())

	babyID, err := parseID(r)
	if err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid baby id")
		return
	}

	var summary LastActivities

	feed, err := h.feeds.Latest(r.Context(), familyID, babyID)
	if err != nil && !errors.Is(err, domain.ErrLogNotFound) {
		h.writeLogError(w, err, "load last activities")
		return
	}
	summary.LastFeed = feed

	diaper, err := h.diapers.Latest(r.Context(), familyID, babyID)
	if err != nil && !errors.Is(err, domain.ErrLogNotFound) {
		h.writeLogError(w, err, "load last activities")
		return
	}
	summary.LastDiaper = diaper

	sleep, err := h.sleeps.Latest(r.Context(), familyID, babyID)
	if err != nil && !errors.Is(err, domain.ErrLogNotFound) {
		h.writeLogError(w, err, "load last activities")
		return
	}
	summary.LastSleep = sleep

	httputil.OK(w, http.StatusOK, summary)
}
