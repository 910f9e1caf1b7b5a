package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/leonguyen52/sprout-track-sub004/pkg/domain"
)

// EmailConfigRepository handles the stored email provider configuration.
// A single row holds the active configuration; Upsert replaces it.
type EmailConfigRepository struct {
	db *sql.DB
}

// NewEmailConfigRepository creates a new email config repository.
func NewEmailConfigRepository(db *sql.DB) *EmailConfigRepository {
	return &EmailConfigRepository{db: db}
}

// Get retrieves the active email configuration.
func (r *EmailConfigRepository) Get(ctx context.Context) (*domain.EmailConfig, error) {
	query := `
		SELECT id, provider, sendgrid_api_key, smtp_host, smtp_port,
		       smtp_user, smtp_password, from_address, from_name, updated_at
		FROM email_config
		ORDER BY updated_at DESC
		LIMIT 1
	`
	cfg := &domain.EmailConfig{}
	err := r.db.QueryRowContext(ctx, query).Scan(
		&cfg.ID, &cfg.Provider, &cfg.SendGridAPIKey, &cfg.SMTPHost, &cfg.SMTPPort,
		&cfg.SMTPUser, &cfg.SMTPPassword, &cfg.FromAddress, &cfg.FromName,
		&cfg.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrEmailConfigNotFound
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Upsert replaces the active email configuration.
func (r *EmailConfigRepository) Upsert(ctx context.Context, cfg *domain.EmailConfig) error {
	if cfg.ID == uuid.Nil {
		cfg.ID = uuid.New()
	}
	cfg.UpdatedAt = time.Now()

	return Tx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM email_config`); err != nil {
			return err
		}
		query := `
			INSERT INTO email_config (id, provider, sendgrid_api_key, smtp_host,
				smtp_port, smtp_user, smtp_password, from_address, from_name, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		`
		_, err := tx.ExecContext(ctx, query,
			cfg.ID, cfg.Provider, cfg.SendGridAPIKey, cfg.SMTPHost,
			cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword,
			cfg.FromAddress, cfg.FromName, cfg.UpdatedAt,
		)
		return err
	})
}
