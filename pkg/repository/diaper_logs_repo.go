package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/leonguyen52/sprout-track-sub004/pkg/domain"
)

// DiaperLogsRepository handles diaper log persistence.
type DiaperLogsRepository struct {
	db *sql.DB
}

// NewDiaperLogsRepository creates a new diaper logs repository.
func NewDiaperLogsRepository(db *sql.DB) *DiaperLogsRepository {
	return &DiaperLogsRepository{db: db}
}

const diaperLogColumns = `id, family_id, baby_id, time, type, condition, color, note, created_at, updated_at`

func scanDiaperLog(row interface{ Scan(...any) error }) (*domain.DiaperLog, error) {
	log := &domain.DiaperLog{}
	err := row.Scan(
		&log.ID, &log.FamilyID, &log.BabyID, &log.Time, &log.Type,
		&log.Condition, &log.Color, &log.Note,
		&log.CreatedAt, &log.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return log, nil
}

// Create creates a diaper log.
func (r *DiaperLogsRepository) Create(ctx context.Context, log *domain.DiaperLog) error {
	query := `
		INSERT INTO diaper_logs (` + diaperLogColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.db.ExecContext(ctx, query,
		log.ID, log.FamilyID, log.BabyID, log.Time, log.Type,
		log.Condition, log.Color, log.Note,
		log.CreatedAt, log.UpdatedAt,
	)
	return err
}

// GetByID retrieves a diaper log by ID within a family.
func (r *DiaperLogsRepository) GetByID(ctx context.Context, familyID, id uuid.UUID) (*domain.DiaperLog, error) {
	query := `SELECT ` + diaperLogColumns + ` FROM diaper_logs WHERE id = $1 AND family_id = $2`
	log, err := scanDiaperLog(r.db.QueryRowContext(ctx, query, id, familyID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrLogNotFound
	}
	if err != nil {
		return nil, err
	}
	return log, nil
}

// List lists diaper logs for a family, newest first.
func (r *DiaperLogsRepository) List(ctx context.Context, familyID uuid.UUID, filter LogFilter) ([]*domain.DiaperLog, error) {
	clause, filterArgs := filter.where("time")
	query := `SELECT ` + diaperLogColumns + ` FROM diaper_logs WHERE family_id = $1` + clause
	args := append([]any{familyID}, filterArgs...)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []*domain.DiaperLog
	for rows.Next() {
		log, err := scanDiaperLog(rows)
		if err != nil {
			return nil, err
		}
		logs = append(logs, log)
	}
	return logs, rows.Err()
}

// Latest returns the most recent diaper log for a baby, or ErrLogNotFound.
func (r *DiaperLogsRepository) Latest(ctx context.Context, familyID, babyID uuid.UUID) (*domain.DiaperLog, error) {
	query := `
		SELECT ` + diaperLogColumns + ` FROM diaper_logs
		WHERE family_id = $1 AND baby_id = $2
		ORDER BY time DESC LIMIT 1
	`
	log, err := scanDiaperLog(r.db.QueryRowContext(ctx, query, familyID, babyID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrLogNotFound
	}
	if err != nil {
		return nil, err
	}
	return log, nil
}

// Update updates a diaper log.
func (r *DiaperLogsRepository) Update(ctx context.Context, log *domain.DiaperLog) error {
	query := `
		UPDATE diaper_logs
		SET baby_id = $3, time = $4, type = $5, condition = $6, color = $7,
		    note = $8, updated_at = $9
		WHERE id = $1 AND family_id = $2
	`
	result, err := r.db.ExecContext(ctx, query,
		log.ID, log.FamilyID, log.BabyID, log.Time, log.Type,
		log.Condition, log.Color, log.Note, time.Now(),
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

// Delete deletes a diaper log.
func (r *DiaperLogsRepository) Delete(ctx context.Context, familyID, id uuid.UUID) error {
	query := `DELETE FROM diaper_logs WHERE id = $1 AND family_id = $2`
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
