package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/leonguyen52/sprout-track-sub004/pkg/domain"
)

// SettingsRepository handles family settings persistence.
type SettingsRepository struct {
	db *sql.DB
}

// NewSettingsRepository creates a new settings repository.
func NewSettingsRepository(db *sql.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Create creates a settings row.
func (r *SettingsRepository) Create(ctx context.Context, settings *domain.Settings) error {
	return r.CreateTx(ctx, r.db, settings)
}

// CreateTx creates a settings row within a transaction.
func (r *SettingsRepository) CreateTx(ctx context.Context, q Querier, settings *domain.Settings) error {
	query := `
		INSERT INTO settings (id, family_id, security_pin_hash,
			default_bottle_unit, default_solids_unit, default_height_unit,
			default_weight_unit, default_temp_unit, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := q.ExecContext(ctx, query,
		settings.ID, settings.FamilyID, settings.SecurityPinHash,
		settings.DefaultBottleUnit, settings.DefaultSolidsUnit, settings.DefaultHeightUnit,
		settings.DefaultWeightUnit, settings.DefaultTempUnit,
		settings.CreatedAt, settings.UpdatedAt,
	)
	return err
}

// GetByFamilyID retrieves the settings row for a family.
func (r *SettingsRepository) GetByFamilyID(ctx context.Context, familyID uuid.UUID) (*domain.Settings, error) {
	query := `
		SELECT id, family_id, security_pin_hash,
		       default_bottle_unit, default_solids_unit, default_height_unit,
		       default_weight_unit, default_temp_unit, created_at, updated_at
		FROM settings
		WHERE family_id = $1
	`
	settings := &domain.Settings{}
	err := r.db.QueryRowContext(ctx, query, familyID).Scan(
		&settings.ID, &settings.FamilyID, &settings.SecurityPinHash,
		&settings.DefaultBottleUnit, &settings.DefaultSolidsUnit, &settings.DefaultHeightUnit,
		&settings.DefaultWeightUnit, &settings.DefaultTempUnit,
		&settings.CreatedAt, &settings.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrSettingsNotFound
	}
	if err != nil {
		return nil, err
	}
	return settings, nil
}

// Update updates the unit preferences for a family.
func (r *SettingsRepository) Update(ctx context.Context, settings *domain.Settings) error {
	query := `
		UPDATE settings
		SET default_bottle_unit = $2, default_solids_unit = $3,
		    default_height_unit = $4, default_weight_unit = $5,
		    default_temp_unit = $6, updated_at = $7
		WHERE family_id = $1
	`
	result, err := r.db.ExecContext(ctx, query,
		settings.FamilyID,
		settings.DefaultBottleUnit, settings.DefaultSolidsUnit,
		settings.DefaultHeightUnit, settings.DefaultWeightUnit,
		settings.DefaultTempUnit, time.Now(),
	)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrSettingsNotFound
	}
	return nil
}

// UpdatePinHash replaces the security PIN hash for a family.
func (r *SettingsRepository) UpdatePinHash(ctx context.Context, familyID uuid.UUID, pinHash string) error {
	query := `
		UPDATE settings
		SET security_pin_hash = $2, updated_at = NOW()
		WHERE family_id = $1
	`
	result, err := r.db.ExecContext(ctx, query, familyID, pinHash)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrSettingsNotFound
	}
	return nil
}
