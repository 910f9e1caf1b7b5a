package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/leonguyen52/sprout-track-sub004/pkg/domain"
)

// BabiesRepository handles baby persistence. All reads and writes are
// scoped by family ID so one family can never touch another family's rows.
type BabiesRepository struct {
	db *sql.DB
}

// NewBabiesRepository creates a new babies repository.
func NewBabiesRepository(db *sql.DB) *BabiesRepository {
	return &BabiesRepository{db: db}
}

// Create creates a new baby.
func (r *BabiesRepository) Create(ctx context.Context, baby *domain.Baby) error {
	query := `
		INSERT INTO babies (id, family_id, first_name, last_name, birth_date,
			gender, inactive, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.ExecContext(ctx, query,
		baby.ID, baby.FamilyID, baby.FirstName, baby.LastName, baby.BirthDate,
		baby.Gender, baby.Inactive, baby.CreatedAt, baby.UpdatedAt,
	)
	return err
}

// GetByID retrieves a baby by ID within a family.
func (r *BabiesRepository) GetByID(ctx context.Context, familyID, id uuid.UUID) (*domain.Baby, error) {
	query := `
		SELECT id, family_id, first_name, last_name, birth_date,
		       gender, inactive, created_at, updated_at
		FROM babies
		WHERE id = $1 AND family_id = $2
	`
	baby := &domain.Baby{}
	err := r.db.QueryRowContext(ctx, query, id, familyID).Scan(
		&baby.ID, &baby.FamilyID, &baby.FirstName, &baby.LastName, &baby.BirthDate,
		&baby.Gender, &baby.Inactive, &baby.CreatedAt, &baby.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrBabyNotFound
	}
	if err != nil {
		return nil, err
	}
	return baby, nil
}

// ListByFamily lists a family's babies, active first, oldest first.
func (r *BabiesRepository) ListByFamily(ctx context.Context, familyID uuid.UUID) ([]*domain.Baby, error) {
	query := `
		SELECT id, family_id, first_name, last_name, birth_date,
		       gender, inactive, created_at, updated_at
		FROM babies
		WHERE family_id = $1
		ORDER BY inactive, birth_date
	`
	rows, err := r.db.QueryContext(ctx, query, familyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var babies []*domain.Baby
	for rows.Next() {
		baby := &domain.Baby{}
		if err := rows.Scan(
			&baby.ID, &baby.FamilyID, &baby.FirstName, &baby.LastName, &baby.BirthDate,
			&baby.Gender, &baby.Inactive, &baby.CreatedAt, &baby.UpdatedAt,
		); err != nil {
			return nil, err
		}
		babies = append(babies, baby)
	}
	return babies, rows.Err()
}

// Update updates a baby.
func (r *BabiesRepository) Update(ctx context.Context, baby *domain.Baby) error {
	query := `
		UPDATE babies
		SET first_name = $3, last_name = $4, birth_date = $5,
		    gender = $6, inactive = $7, updated_at = $8
		WHERE id = $1 AND family_id = $2
	`
	result, err := r.db.ExecContext(ctx, query,
		baby.ID, baby.FamilyID, baby.FirstName, baby.LastName, baby.BirthDate,
		baby.Gender, baby.Inactive, time.Now(),
	)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrBabyNotFound
	}
	return nil
}

// Delete permanently deletes a baby and, via foreign key cascades, its logs.
func (r *BabiesRepository) Delete(ctx context.Context, familyID, id uuid.UUID) error {
	query := `DELETE FROM babies WHERE id = $1 AND family_id = $2`
	result, err := r.db.ExecContext(ctx, query, id, familyID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrBabyNotFound
	}
	return nil
}
