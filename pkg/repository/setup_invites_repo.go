package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/leonguyen52/sprout-track-sub004/pkg/domain"
)

// SetupInvitesRepository handles setup invitation persistence.
type SetupInvitesRepository struct {
	db *sql.DB
}

// NewSetupInvitesRepository creates a new setup invites repository.
func NewSetupInvitesRepository(db *sql.DB) *SetupInvitesRepository {
	return &SetupInvitesRepository{db: db}
}

// Create creates a new setup invite.
func (r *SetupInvitesRepository) Create(ctx context.Context, invite *domain.SetupInvite) error {
	query := `
		INSERT INTO setup_invites (id, token_hash, family_id, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.ExecContext(ctx, query,
		invite.ID, invite.TokenHash, invite.FamilyID,
		invite.CreatedAt, invite.ExpiresAt,
	)
	return err
}

// GetByTokenHash retrieves a setup invite by token hash.
func (r *SetupInvitesRepository) GetByTokenHash(ctx context.Context, tokenHash string) (*domain.SetupInvite, error) {
	query := `
		SELECT id, token_hash, family_id, created_at, expires_at
		FROM setup_invites
		WHERE token_hash = $1
	`
	invite := &domain.SetupInvite{}
	err := r.db.QueryRowContext(ctx, query, tokenHash).Scan(
		&invite.ID, &invite.TokenHash, &invite.FamilyID,
		&invite.CreatedAt, &invite.ExpiresAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrInviteNotFound
	}
	if err != nil {
		return nil, err
	}
	return invite, nil
}

// BindFamilyTx binds an invite to a family within a transaction. The
// family_id IS NULL guard makes consumption first-writer-wins: a second
// attempt affects zero rows and reports the invite as already used.
func (r *SetupInvitesRepository) BindFamilyTx(ctx context.Context, q Querier, inviteID, familyID uuid.UUID) error {
	query := `
		UPDATE setup_invites
		SET family_id = $2
		WHERE id = $1 AND family_id IS NULL
	`
	result, err := q.ExecContext(ctx, query, inviteID, familyID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrInviteConsumed
	}
	return nil
}

// DeleteExpired removes unconsumed invites past their expiry.
func (r *SetupInvitesRepository) DeleteExpired(ctx context.Context) (int64, error) {
	query := `DELETE FROM setup_invites WHERE family_id IS NULL AND expires_at < NOW()`
	result, err := r.db.ExecContext(ctx, query)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
