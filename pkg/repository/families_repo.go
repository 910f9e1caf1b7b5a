package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/leonguyen52/sprout-track-sub004/pkg/domain"
)

// FamiliesRepository handles family persistence.
type FamiliesRepository struct {
	db *sql.DB
}

// NewFamiliesRepository creates a new families repository.
func NewFamiliesRepository(db *sql.DB) *FamiliesRepository {
	return &FamiliesRepository{db: db}
}

// Create creates a new family.
func (r *FamiliesRepository) Create(ctx context.Context, family *domain.Family) error {
	return r.CreateTx(ctx, r.db, family)
}

// CreateTx creates a new family within a transaction. The families.slug
// unique constraint is the single arbiter for concurrent setups racing on
// the same slug.
func (r *FamiliesRepository) CreateTx(ctx context.Context, q Querier, family *domain.Family) error {
	query := `
		INSERT INTO families (id, name, slug, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := q.ExecContext(ctx, query,
		family.ID, family.Name, family.Slug, family.IsActive,
		family.CreatedAt, family.UpdatedAt,
	)
	if err != nil && IsUniqueViolation(err) {
		return domain.ErrSlugTaken
	}
	return err
}

// GetByID retrieves a family by ID.
func (r *FamiliesRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Family, error) {
	query := `
		SELECT id, name, slug, is_active, created_at, updated_at, deleted_at
		FROM families
		WHERE id = $1 AND deleted_at IS NULL
	`
	family := &domain.Family{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&family.ID, &family.Name, &family.Slug, &family.IsActive,
		&family.CreatedAt, &family.UpdatedAt, &family.DeletedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrFamilyNotFound
	}
	if err != nil {
		return nil, err
	}
	return family, nil
}

// GetBySlug retrieves a family by slug.
func (r *FamiliesRepository) GetBySlug(ctx context.Context, slug string) (*domain.Family, error) {
	query := `
		SELECT id, name, slug, is_active, created_at, updated_at, deleted_at
		FROM families
		WHERE slug = $1 AND deleted_at IS NULL
	`
	family := &domain.Family{}
	err := r.db.QueryRowContext(ctx, query, slug).Scan(
		&family.ID, &family.Name, &family.Slug, &family.IsActive,
		&family.CreatedAt, &family.UpdatedAt, &family.DeletedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrFamilyNotFound
	}
	if err != nil {
		return nil, err
	}
	return family, nil
}

// Count returns the number of families, including inactive ones. The setup
// flow uses it to gate first-run mode.
func (r *FamiliesRepository) Count(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM families WHERE deleted_at IS NULL`
	var count int
	err := r.db.QueryRowContext(ctx, query).Scan(&count)
	return count, err
}

// Update updates a family's name and active flag.
func (r *FamiliesRepository) Update(ctx context.Context, family *domain.Family) error {
	query := `
		UPDATE families
		SET name = $2, is_active = $3, updated_at = $4
		WHERE id = $1 AND deleted_at IS NULL
	`
	result, err := r.db.ExecContext(ctx, query,
		family.ID, family.Name, family.IsActive, time.Now(),
	)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrFamilyNotFound
	}
	return nil
}

// SoftDelete soft deletes a family.
func (r *FamiliesRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE families
		SET deleted_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrFamilyNotFound
	}
	return nil
}
