package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/leonguyen52/sprout-track-sub004/pkg/domain"
)

// FeedLogsRepository handles feed log persistence.
type FeedLogsRepository struct {
	db *sql.DB
}

// NewFeedLogsRepository creates a new feed logs repository.
func NewFeedLogsRepository(db *sql.DB) *FeedLogsRepository {
	return &FeedLogsRepository{db: db}
}

const feedLogColumns = `id, family_id, baby_id, time, type, amount, unit, side, food, note, created_at, updated_at`

func scanFeedLog(row interface{ Scan(...any) error }) (*domain.FeedLog, error) {
	log := &domain.FeedLog{}
	err := row.Scan(
		&log.ID, &log.FamilyID, &log.BabyID, &log.Time, &log.Type,
		&log.Amount, &log.Unit, &log.Side, &log.Food, &log.Note,
		&log.CreatedAt, &log.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return log, nil
}

// Create creates a feed log.
func (r *FeedLogsRepository) Create(ctx context.Context, log *domain.FeedLog) error {
	query := `
		INSERT INTO feed_logs (` + feedLogColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.db.ExecContext(ctx, query,
		log.ID, log.FamilyID, log.BabyID, log.Time, log.Type,
		log.Amount, log.Unit, log.Side, log.Food, log.Note,
		log.CreatedAt, log.UpdatedAt,
	)
	return err
}

// GetByID retrieves a feed log by ID within a family.
func (r *FeedLogsRepository) GetByID(ctx context.Context, familyID, id uuid.UUID) (*domain.FeedLog, error) {
	query := `SELECT ` + feedLogColumns + ` FROM feed_logs WHERE id = $1 AND family_id = $2`
	log, err := scanFeedLog(r.db.QueryRowContext(ctx, query, id, familyID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrLogNotFound
	}
	if err != nil {
		return nil, err
	}
	return log, nil
}

// List lists feed logs for a family, newest first.
func (r *FeedLogsRepository) List(ctx context.Context, familyID uuid.UUID, filter LogFilter) ([]*domain.FeedLog, error) {
	clause, filterArgs := filter.where("time")
	query := `SELECT ` + feedLogColumns + ` FROM feed_logs WHERE family_id = $1` + clause
	args := append([]any{familyID}, filterArgs...)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []*domain.FeedLog
	for rows.Next() {
		log, err := scanFeedLog(rows)
		if err != nil {
			return nil, err
		}
		logs = append(logs, log)
	}
	return logs, rows.Err()
}

// Latest returns the most recent feed log for a baby, or ErrLogNotFound.
func (r *FeedLogsRepository) Latest(ctx context.Context, familyID, babyID uuid.UUID) (*domain.FeedLog, error) {
	query := `
		SELECT ` + feedLogColumns + ` FROM feed_logs
		WHERE family_id = $1 AND baby_id = $2
		ORDER BY time DESC LIMIT 1
	`
	log, err := scanFeedLog(r.db.QueryRowContext(ctx, query, familyID, babyID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrLogNotFound
	}
	if err != nil {
		return nil, err
	}
	return log, nil
}

// Update updates a feed log.
func (r *FeedLogsRepository) Update(ctx context.Context, log *domain.FeedLog) error {
	query := `
		UPDATE feed_logs
		SET baby_id = $3, time = $4, type = $5, amount = $6, unit = $7,
		    side = $8, food = $9, note = $10, updated_at = $11
		WHERE id = $1 AND family_id = $2
	`
	result, err := r.db.ExecContext(ctx, query,
		log.ID, log.FamilyID, log.BabyID, log.Time, log.Type,
		log.Amount, log.Unit, log.Side, log.Food, log.Note, time.Now(),
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

// Delete deletes a feed log.
func (r *FeedLogsRepository) Delete(ctx context.Context, familyID, id uuid.UUID) error {
	query := `DELETE FROM feed_logs WHERE id = $1 AND family_id = $2`
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
