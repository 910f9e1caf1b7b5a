package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/leonguyen52/sprout-track-sub004/pkg/domain"
)

// MeasurementsRepository handles measurement persistence.
type MeasurementsRepository struct {
	db *sql.DB
}

// NewMeasurementsRepository creates a new measurements repository.
func NewMeasurementsRepository(db *sql.DB) *MeasurementsRepository {
	return &MeasurementsRepository{db: db}
}

const measurementColumns = `id, family_id, baby_id, time, type, value, unit, note, created_at, updated_at`

func scanMeasurement(row interface{ Scan(...any) error }) (*domain.Measurement, error) {
	m := &domain.Measurement{}
	err := row.Scan(
		&m.ID, &m.FamilyID, &m.BabyID, &m.Time,
		&m.Type, &m.Value, &m.Unit, &m.Note,
		&m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// Create creates a measurement.
func (r *MeasurementsRepository) Create(ctx context.Context, m *domain.Measurement) error {
	query := `
		INSERT INTO measurements (` + measurementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.db.ExecContext(ctx, query,
		m.ID, m.FamilyID, m.BabyID, m.Time,
		m.Type, m.Value, m.Unit, m.Note,
		m.CreatedAt, m.UpdatedAt,
	)
	return err
}

// GetByID retrieves a measurement by ID within a family.
func (r *MeasurementsRepository) GetByID(ctx context.Context, familyID, id uuid.UUID) (*domain.Measurement, error) {
	query := `SELECT ` + measurementColumns + ` FROM measurements WHERE id = $1 AND family_id = $2`
	m, err := scanMeasurement(r.db.QueryRowContext(ctx, query, id, familyID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrLogNotFound
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

// List lists measurements for a family, newest first.
func (r *MeasurementsRepository) List(ctx context.Context, familyID uuid.UUID, filter LogFilter) ([]*domain.Measurement, error) {
	clause, filterArgs := filter.where("time")
	query := `SELECT ` + measurementColumns + ` FROM measurements WHERE family_id = $1` + clause
	args := append([]any{familyID}, filterArgs...)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var measurements []*domain.Measurement
	for rows.Next() {
		m, err := scanMeasurement(rows)
		if err != nil {
			return nil, err
		}
		measurements = append(measurements, m)
	}
	return measurements, rows.Err()
}

// Update updates a measurement.
func (r *MeasurementsRepository) Update(ctx context.Context, m *domain.Measurement) error {
	query := `
		UPDATE measurements
		SET baby_id = $3, time = $4, type = $5, value = $6, unit = $7,
		    note = $8, updated_at = $9
		WHERE id = $1 AND family_id = $2
	`
	result, err := r.db.ExecContext(ctx, query,
		m.ID, m.FamilyID, m.BabyID, m.Time,
		m.Type, m.Value, m.Unit, m.Note, time.Now(),
	)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrLogNotFound
	}
	return nil
}

// Delete deletes a measurement.
func (r *MeasurementsRepository) Delete(ctx context.Context, familyID, id uuid.UUID) error {
	query := `DELETE FROM measurements WHERE id = $1 AND family_id = $2`
	result, err := r.db.ExecContext(ctx, query, id, familyID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrLogNotFound
	}
	return nil
}
