package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/leonguyen52/sprout-track-sub004/pkg/domain"
)

// MedicineLogsRepository handles medicine log persistence.
type MedicineLogsRepository struct {
	db *sql.DB
}

// NewMedicineLogsRepository creates a new medicine logs repository.
func NewMedicineLogsRepository(db *sql.DB) *MedicineLogsRepository {
	return &MedicineLogsRepository{db: db}
}

const medicineLogColumns = `id, family_id, baby_id, time, name, dose, unit, note, created_at, updated_at`

func scanMedicineLog(row interface{ Scan(...any) error }) (*domain.MedicineLog, error) {
	log := &domain.MedicineLog{}
	err := row.Scan(
		&log.ID, &log.FamilyID, &log.BabyID, &log.Time,
		&log.Name, &log.Dose, &log.Unit, &log.Note,
		&log.CreatedAt, &log.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return log, nil
}

// Create creates a medicine log.
func (r *MedicineLogsRepository) Create(ctx context.Context, log *domain.MedicineLog) error {
	query := `
		INSERT INTO medicine_logs (` + medicineLogColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.db.ExecContext(ctx, query,
		log.ID, log.FamilyID, log.BabyID, log.Time,
		log.Name, log.Dose, log.Unit, log.Note,
		log.CreatedAt, log.UpdatedAt,
	)
	return err
}

// GetByID retrieves a medicine log by ID within a family.
func (r *MedicineLogsRepository) GetByID(ctx context.Context, familyID, id uuid.UUID) (*domain.MedicineLog, error) {
	query := `SELECT ` + medicineLogColumns + ` FROM medicine_logs WHERE id = $1 AND family_id = $2`
	log, err := scanMedicineLog(r.db.QueryRowContext(ctx, query, id, familyID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrLogNotFound
	}
	if err != nil {
		return nil, err
	}
	return log, nil
}

// List lists medicine logs for a family, newest first.
func (r *MedicineLogsRepository) List(ctx context.Context, familyID uuid.UUID, filter LogFilter) ([]*domain.MedicineLog, error) {
	clause, filterArgs := filter.where("time")
	query := `SELECT ` + medicineLogColumns + ` FROM medicine_logs WHERE family_id = $1` + clause
	args := append([]any{familyID}, filterArgs...)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []*domain.MedicineLog
	for rows.Next() {
		log, err := scanMedicineLog(rows)
		if err != nil {
			return nil, err
		}
		logs = append(logs, log)
	}
	return logs, rows.Err()
}

// Update updates a medicine log.
func (r *MedicineLogsRepository) Update(ctx context.Context, log *domain.MedicineLog) error {
	query := `
		UPDATE medicine_logs
		SET baby_id = $3, time = $4, name = $5, dose = $6, unit = $7,
		    note = $8, updated_at = $9
		WHERE id = $1 AND family_id = $2
	`
	result, err := r.db.ExecContext(ctx, query,
		log.ID, log.FamilyID, log.BabyID, log.Time,
		log.Name, log.Dose, log.Unit, log.Note, time.Now(),
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

// Delete deletes a medicine log.
func (r *MedicineLogsRepository) Delete(ctx context.Context, familyID, id uuid.UUID) error {
	query := `DELETE FROM medicine_logs WHERE id = $1 AND family_id = $2`
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
