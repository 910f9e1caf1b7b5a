package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/leonguyen52/sprout-track-sub004/pkg/domain"
)

// SleepLogsRepository handles sleep log persistence. Sleep logs are ranged:
// the range is filtered on start_time and end_time stays NULL while the
// session is ongoing.
type SleepLogsRepository struct {
	db *sql.DB
}

// NewSleepLogsRepository creates a new sleep logs repository.
func NewSleepLogsRepository(db *sql.DB) *SleepLogsRepository {
	return &SleepLogsRepository{db: db}
}

const sleepLogColumns = `id, family_id, baby_id, start_time, end_time, type, location, quality, note, created_at, updated_at`

func scanSleepLog(row interface{ Scan(...any) error }) (*domain.SleepLog, error) {
	log := &domain.SleepLog{}
	err := row.Scan(
		&log.ID, &log.FamilyID, &log.BabyID, &log.StartTime, &log.EndTime,
		&log.Type, &log.Location, &log.Quality, &log.Note,
		&log.CreatedAt, &log.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return log, nil
}

// Create creates a sleep log.
func (r *SleepLogsRepository) Create(ctx context.Context, log *domain.SleepLog) error {
	query := `
		INSERT INTO sleep_logs (` + sleepLogColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.db.ExecContext(ctx, query,
		log.ID, log.FamilyID, log.BabyID, log.StartTime, log.EndTime,
		log.Type, log.Location, log.Quality, log.Note,
		log.CreatedAt, log.UpdatedAt,
	)
	return err
}

// GetByID retrieves a sleep log by ID within a family.
func (r *SleepLogsRepository) GetByID(ctx context.Context, familyID, id uuid.UUID) (*domain.SleepLog, error) {
	query := `SELECT ` + sleepLogColumns + ` FROM sleep_logs WHERE id = $1 AND family_id = $2`
	log, err := scanSleepLog(r.db.QueryRowContext(ctx, query, id, familyID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrLogNotFound
	}
	if err != nil {
		return nil, err
	}
	return log, nil
}

// List lists sleep logs for a family, newest first by start time.
func (r *SleepLogsRepository) List(ctx context.Context, familyID uuid.UUID, filter LogFilter) ([]*domain.SleepLog, error) {
	clause, filterArgs := filter.where("start_time")
	query := `SELECT ` + sleepLogColumns + ` FROM sleep_logs WHERE family_id = $1` + clause
	args := append([]any{familyID}, filterArgs...)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []*domain.SleepLog
	for rows.Next() {
		log, err := scanSleepLog(rows)
		if err != nil {
			return nil, err
		}
		logs = append(logs, log)
	}
	return logs, rows.Err()
}

// Latest returns the most recent sleep log for a baby, or ErrLogNotFound.
// An ongoing session sorts first so the status view can show it.
func (r *SleepLogsRepository) Latest(ctx context.Context, familyID, babyID uuid.UUID) (*domain.SleepLog, error) {
	query := `
		SELECT ` + sleepLogColumns + ` FROM sleep_logs
		WHERE family_id = $1 AND baby_id = $2
		ORDER BY end_time IS NULL DESC, start_time DESC LIMIT 1
	`
	log, err := scanSleepLog(r.db.QueryRowContext(ctx, query, familyID, babyID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrLogNotFound
	}
	if err != nil {
		return nil, err
	}
	return log, nil
}

// Update updates a sleep log.
func (r *SleepLogsRepository) Update(ctx context.Context, log *domain.SleepLog) error {
	query := `
		UPDATE sleep_logs
		SET baby_id = $3, start_time = $4, end_time = $5, type = $6,
		    location = $7, quality = $8, note = $9, updated_at = $10
		WHERE id = $1 AND family_id = $2
	`
	result, err := r.db.ExecContext(ctx, query,
		log.ID, log.FamilyID, log.BabyID, log.StartTime, log.EndTime,
		log.Type, log.Location, log.Quality, log.Note, time.Now(),
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

// Delete deletes a sleep log.
func (r *SleepLogsRepository) Delete(ctx context.Context, familyID, id uuid.UUID) error {
	query := `DELETE FROM sleep_logs WHERE id = $1 AND family_id = $2`
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
