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

// MeasurementRequest represents a measurement create/update request.
type MeasurementRequest struct {
	BabyID string                 `json:"babyId"`
	Time   string                 `json:"time"`
	Type   domain.MeasurementType `json:"type"`
	Value  float64                `json:"value"`
	Unit   string                 `json:"unit"`
	Note   *string                `json:"note,omitempty"`
}

func (req *MeasurementRequest) toMeasurement(familyID uuid.UUID) (*domain.Measurement, error) {
	babyID, err := uuid.Parse(req.BabyID)
	if err != nil {
		return nil, errInvalidBabyID
	}
	at, err := parseTime("time", req.Time)
	if err != nil {
		return nil, err
	}
	if !domain.ValidMeasurementType(req.Type) {
		return nil, errInvalidLogType
	}
	if req.Value <= 0 {
		return nil, errors.New("value must be positive")
	}
	if req.Unit == "" {
		return nil, errors.New("unit is required")
	}
	return &domain.Measurement{
		FamilyID: familyID,
		BabyID:   babyID,
		Time:     at,
		Type:     req.Type,
		Value:    req.Value,
		Unit:     req.Unit,
		Note:     req.Note,
	}, nil
}

// ListMeasurements lists measurements.
// GET /api/measurement-log
func (h *Handler) ListMeasurements(w http.ResponseWriter, r *http.Request) {
	familyID, _ := middleware.GetFamilyID(r.Context())

	filter, err := parseLogFilter(r)
	if err != nil {
		httputil.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	logs, err := h.measurements.List(r.Context(), familyID, filter)
	if err != nil {
		h.writeLogError(w, err, "list measurements")
		return
	}
	if logs == nil {
		logs = []*domain.Measurement{}
	}
	httputil.OK(w, http.StatusOK, logs)
}

// CreateMeasurement creates a measurement.
// POST /api/measurement-log
func (h *Handler) CreateMeasurement(w http.ResponseWriter, r *http.Request) {
	familyID, _ := middleware.GetFamilyID(r.Context())

	var req MeasurementRequest
	if !httputil.DecodeJSON(w, r, &req) {
		return
	}
	m, err := req.toMeasurement(familyID)
	if err != nil {
		httputil.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	now := time.Now()
	m.ID = uuid.New()
	m.CreatedAt = now
	m.UpdatedAt = now
	if err := h.measurements.Create(r.Context(), m); err != nil {
		h.writeLogError(w, err, "create measurement")
		return
	}
	httputil.OK(w, http.StatusCreated, m)
}

// GetMeasurement retrieves a measurement.
// GET /api/measurement-log/{id}
func (h *Handler) GetMeasurement(w http.ResponseWriter, r *http.Request) {
	familyID, _ := middleware.GetFamilyID(r.Context())

	id, err := parseID(r)
	if err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid log id")
		return
	}
	m, err := h.measurements.GetByID(r.Context(), familyID, id)
	if err != nil {
		h.writeLogError(w, err, "get measurement")
		return
	}
	httputil.OK(w, http.StatusOK, m)
}

// UpdateMeasurement updates a measurement.
// PUT /api/measurement-log/{id}
func (h *Handler) UpdateMeasurement(w http.ResponseWriter, r *http.Request) {
	familyID, _ := middleware.GetFamilyID(r.Context())

	id, err := parseID(r)
	if err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid log id")
		return
	}
	var req MeasurementRequest
	if !httputil.DecodeJSON(w, r, &req) {
		return
	}
	m, err := req.toMeasurement(familyID)
	if err != nil {
		httputil.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	m.ID = id
	if err := h.measurements.Update(r.Context(), m); err != nil {
		h.writeLogError(w, err, "update measurement")
		return
	}
	updated, err := h.measurements.GetByID(r.Context(), familyID, id)
	if err != nil {
		h.writeLogError(w, err, "update measurement")
		return
	}
	httputil.OK(w, http.StatusOK, updated)
}

// DeleteMeasurement deletes a measurement.
// DELETE /api/measurement-log/{id}
func (h *Handler) DeleteMeasurement(w http.ResponseWriter, r *http.Request) {
	familyID, _ := middleware.GetFamilyID(r.Context())

	id, err := parseID(r)
	if err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid log id")
		return
	}
	if err := h.measurements.Delete(r.Context(), familyID, id); err != nil {
		h.writeLogError(w, err, "delete measurement")
		return
	}
	httputil.OK(w, http.StatusOK, nil)
}
