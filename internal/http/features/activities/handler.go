package activities

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/leonguyen52/sprout-track-sub004/internal/httputil"
	"github.com/leonguyen52/sprout-track-sub004/pkg/domain"
	"github.com/leonguyen52/sprout-track-sub004/pkg/repository"
)

// Store interfaces cover the slice of each repository the handler uses.

type FeedLogStore interface {
	Create(ctx context.Context, log *domain.FeedLog) error
	GetByID(ctx context.Context, familyID, id uuid.UUID) (*domain.FeedLog, error)
	List(ctx context.Context, familyID uuid.UUID, filter repository.LogFilter) ([]*domain.FeedLog, error)
	Latest(ctx context.Context, familyID, babyID uuid.UUID) (*domain.FeedLog, error)
	Update(ctx context.Context, log *domain.FeedLog) error
	Delete(ctx context.Context, familyID, id uuid.UUID) error
}

type DiaperLogStore interface {
	Create(ctx context.Context, log *domain.DiaperLog) error
	GetByID(ctx context.Context, familyID, id uuid.UUID) (*domain.DiaperLog, error)
	List(ctx context.Context, familyID uuid.UUID, filter repository.LogFilter) ([]*domain.DiaperLog, error)
	Latest(ctx context.Context, familyID, babyID uuid.UUID) (*domain.DiaperLog, error)
	Update(ctx context.Context, log *domain.DiaperLog) error
	Delete(ctx context.Context, familyID, id uuid.UUID) error
}

type SleepLogStore interface {
	Create(ctx context.Context, log *domain.SleepLog) error
	GetByID(ctx context.Context, familyID, id uuid.UUID) (*domain.SleepLog, error)
	List(ctx context.Context, familyID uuid.UUID, filter repository.LogFilter) ([]*domain.SleepLog, error)
	Latest(ctx context.Context, familyID, babyID uuid.UUID) (*domain.SleepLog, error)
	Update(ctx context.Context, log *domain.SleepLog) error
	Delete(ctx context.Context, familyID, id uuid.UUID) error
}

type MedicineLogStore interface {
	Create(ctx context.Context, log *domain.MedicineLog) error
	GetByID(ctx context.Context, familyID, id uuid.UUID) (*domain.MedicineLog, error)
	List(ctx context.Context, familyID uuid.UUID, filter repository.LogFilter) ([]*domain.MedicineLog, error)
	Update(ctx context.Context, log *domain.MedicineLog) error
	Delete(ctx context.Context, familyID, id uuid.UUID) error
}

type MeasurementStore interface {
	Create(ctx context.Context, m *domain.Measurement) error
	GetByID(ctx context.Context, familyID, id uuid.UUID) (*domain.Measurement, error)
	List(ctx context.Context, familyID uuid.UUID, filter repository.LogFilter) ([]*domain.Measurement, error)
	Update(ctx context.Context, m *domain.Measurement) error
	Delete(ctx context.Context, familyID, id uuid.UUID) error
}

// Handler handles activity log endpoints for all log types.
type Handler struct {
	logger       *slog.Logger
	feeds        FeedLogStore
	diapers      DiaperLogStore
	sleeps       SleepLogStore
	medicines    MedicineLogStore
	measurements MeasurementStore
}

// NewHandler creates a new activities handler.
func NewHandler(
	logger *slog.Logger,
	feeds FeedLogStore,
	diapers DiaperLogStore,
	sleeps SleepLogStore,
	medicines MedicineLogStore,
	measurements MeasurementStore,
) *Handler {
	return &Handler{
		logger:       logger,
		feeds:        feeds,
		diapers:      diapers,
		sleeps:       sleeps,
		medicines:    medicines,
		measurements: measurements,
	}
}

var (
	errInvalidBabyID  = errors.New("invalid babyId")
	errInvalidLogType = errors.New("invalid type")
)

// parseLogFilter reads the common list query parameters:
// babyId (uuid), from/to (RFC 3339), limit (int).
func parseLogFilter(r *http.Request) (repository.LogFilter, error) {
	var filter repository.LogFilter
	q := r.URL.Query()

	if v := q.Get("babyId"); v != "" {
		babyID, err := uuid.Parse(v)
		if err != nil {
			return filter, errors.New("invalid babyId")
		}
		filter.BabyID = &babyID
	}
	if v := q.Get("from"); v != "" {
		from, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return filter, errors.New("from must be an RFC 3339 timestamp")
		}
		filter.From = &from
	}
	if v := q.Get("to"); v != "" {
		to, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return filter, errors.New("to must be an RFC 3339 timestamp")
		}
		filter.To = &to
	}
	if v := q.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit <= 0 {
			return filter, errors.New("limit must be a positive integer")
		}
		filter.Limit = limit
	}
	return filter, nil
}

// parseID extracts the {id} URL parameter.
func parseID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "id"))
}

// parseTime parses a required RFC 3339 timestamp field.
func parseTime(field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, errors.New(field + " is required")
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, errors.New(field + " must be an RFC 3339 timestamp")
	}
	return t, nil
}

// writeLogError maps repository errors from a single-log operation.
func (h *Handler) writeLogError(w http.ResponseWriter, err error, action string) {
	if errors.Is(err, domain.ErrLogNotFound) {
		httputil.Error(w, http.StatusNotFound, "log not found")
		return
	}
	h.logger.Error("activity log operation failed", "action", action, "error", err)
	httputil.Error(w, http.StatusInternalServerError, "failed to "+action)
}
