package setup

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/leonguyen52/sprout-track-sub004/pkg/auth"
	"github.com/leonguyen52/sprout-track-sub004/pkg/domain"
	"github.com/leonguyen52/sprout-track-sub004/pkg/repository"
)

const inviteTokenLen = 32

// Config holds setup flow configuration.
type Config struct {
	// InviteTTL is how long a setup invitation stays valid.
	InviteTTL time.Duration
	// DefaultPIN seeds the family security PIN when the setup request does
	// not provide one.
	DefaultPIN string
}

// FamilyStore is the slice of the families repository the setup flow needs.
type FamilyStore interface {
	Count(ctx context.Context) (int, error)
	CreateTx(ctx context.Context, q repository.Querier, family *domain.Family) error
}

// SettingsStore creates the settings row alongside a new family.
type SettingsStore interface {
	CreateTx(ctx context.Context, q repository.Querier, settings *domain.Settings) error
}

// InviteStore manages setup invitation rows.
type InviteStore interface {
	Create(ctx context.Context, invite *domain.SetupInvite) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*domain.SetupInvite, error)
	BindFamilyTx(ctx context.Context, q repository.Querier, inviteID, familyID uuid.UUID) error
}

// Service orchestrates family creation: the first-run gate, invitation
// consumption, and the atomic family+settings insert.
type Service struct {
	config   Config
	families FamilyStore
	settings SettingsStore
	invites  InviteStore

	// runTx wraps the family, settings and invite writes in one
	// transaction. Replaceable in tests.
	runTx func(ctx context.Context, fn func(tx *sql.Tx) error) error
}

// NewService creates a setup service.
func NewService(
	config Config,
	db *sql.DB,
	families FamilyStore,
	settings SettingsStore,
	invites InviteStore,
) *Service {
	if config.InviteTTL == 0 {
		config.InviteTTL = 7 * 24 * time.Hour
	}
	return &Service{
		config:   config,
		families: families,
		settings: settings,
		invites:  invites,
		runTx: func(ctx context.Context, fn func(tx *sql.Tx) error) error {
			return repository.Tx(ctx, db, fn)
		},
	}
}

// StartParams are the inputs to the setup flow.
type StartParams struct {
	Name  string
	Slug  string
	Token string
	PIN   string
}

// Start creates a family with its settings row, consuming the invitation
// token when one is supplied. Without a token it is permitted only while
// zero families exist. All writes happen in one transaction; a failure at
// any step leaves no partial state.
func (s *Service) Start(ctx context.Context, params StartParams) (*domain.Family, error) {
	name := strings.TrimSpace(params.Name)
	if name == "" {
		return nil, fmt.Errorf("family name is required")
	}
	if err := domain.ValidateSlug(params.Slug); err != nil {
		return nil, err
	}

	var invite *domain.SetupInvite
	if params.Token != "" {
		found, err := s.invites.GetByTokenHash(ctx, auth.HashToken(params.Token))
		if err != nil {
			return nil, err
		}
		if found.IsConsumed() {
			return nil, domain.ErrInviteConsumed
		}
		if !found.IsValid() {
			return nil, domain.ErrInviteExpired
		}
		invite = found
	} else {
		count, err := s.families.Count(ctx)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, domain.ErrSetupForbidden
		}
	}

	pin := params.PIN
	if pin == "" {
		pin = s.config.DefaultPIN
	}
	if err := auth.ValidatePin(pin); err != nil {
		return nil, err
	}
	pinHash, err := auth.HashPin(pin)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	family := &domain.Family{
		ID:        uuid.New(),
		Name:      name,
		Slug:      params.Slug,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	settings := domain.DefaultSettings(family.ID, pinHash)

	// Slug uniqueness is re-checked by the families.slug constraint inside
	// this transaction: of two concurrent setups racing on one slug,
	// exactly one insert succeeds.
	err = s.runTx(ctx, func(tx *sql.Tx) error {
		if err := s.families.CreateTx(ctx, tx, family); err != nil {
			return err
		}
		if err := s.settings.CreateTx(ctx, tx, settings); err != nil {
			return err
		}
		if invite != nil {
			return s.invites.BindFamilyTx(ctx, tx, invite.ID, family.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return family, nil
}

// CreateInvite creates a setup invitation and returns the raw token. The
// raw value is shown once; only its hash is stored.
func (s *Service) CreateInvite(ctx context.Context) (string, *domain.SetupInvite, error) {
	rawToken, err := auth.GenerateToken(inviteTokenLen)
	if err != nil {
		return "", nil, fmt.Errorf("generate invite token: %w", err)
	}

	now := time.Now()
	invite := &domain.SetupInvite{
		ID:        uuid.New(),
		TokenHash: auth.HashToken(rawToken),
		CreatedAt: now,
		ExpiresAt: now.Add(s.config.InviteTTL),
	}
	if err := s.invites.Create(ctx, invite); err != nil {
		return "", nil, err
	}

	return rawToken, invite, nil
}
