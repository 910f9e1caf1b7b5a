package setup

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/leonguyen52/sprout-track-sub004/pkg/auth"
	"github.com/leonguyen52/sprout-track-sub004/pkg/domain"
	"github.com/leonguyen52/sprout-track-sub004/pkg/repository"
)

type fakeFamilyStore struct {
	count     int
	countErr  error
	createErr error
	created   []*domain.Family
}

func (f *fakeFamilyStore) Count(ctx context.Context) (int, error) {
	return f.count, f.countErr
}

func (f *fakeFamilyStore) CreateTx(ctx context.Context, q repository.Querier, family *domain.Family) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, family)
	return nil
}

type fakeSettingsStore struct {
	created []*domain.Settings
}

func (f *fakeSettingsStore) CreateTx(ctx context.Context, q repository.Querier, settings *domain.Settings) error {
	f.created = append(f.created, settings)
	return nil
}

type boundInvite struct {
	inviteID uuid.UUID
	familyID uuid.UUID
}

type fakeInviteStore struct {
	invite  *domain.SetupInvite
	getErr  error
	bindErr error
	created []*domain.SetupInvite
	bound   []boundInvite
}

func (f *fakeInviteStore) Create(ctx context.Context, invite *domain.SetupInvite) error {
	f.created = append(f.created, invite)
	return nil
}

func (f *fakeInviteStore) GetByTokenHash(ctx context.Context, tokenHash string) (*domain.SetupInvite, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.invite, nil
}

func (f *fakeInviteStore) BindFamilyTx(ctx context.Context, q repository.Querier, inviteID, familyID uuid.UUID) error {
	if f.bindErr != nil {
		return f.bindErr
	}
	f.bound = append(f.bound, boundInvite{inviteID: inviteID, familyID: familyID})
	return nil
}

type txRecorder struct {
	calls  int
	failed bool
}

func newTestService(families *fakeFamilyStore, settings *fakeSettingsStore, invites *fakeInviteStore, rec *txRecorder) *Service {
	return &Service{
		config:   Config{InviteTTL: 7 * 24 * time.Hour, DefaultPIN: "111222"},
		families: families,
		settings: settings,
		invites:  invites,
		runTx: func(ctx context.Context, fn func(tx *sql.Tx) error) error {
			rec.calls++
			if err := fn(nil); err != nil {
				rec.failed = true
				return err
			}
			return nil
		},
	}
}

func validParams() StartParams {
	return StartParams{Name: "Smith Family", Slug: "smith-family"}
}

func TestStartFirstRun(t *testing.T) {
	families := &fakeFamilyStore{count: 0}
	settings := &fakeSettingsStore{}
	invites := &fakeInviteStore{}
	rec := &txRecorder{}
	svc := newTestService(families, settings, invites, rec)

	family, err := svc.Start(context.Background(), validParams())
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if family.Slug != "smith-family" || !family.IsActive {
		t.Errorf("family = %+v", family)
	}
	if rec.calls != 1 {
		t.Errorf("transaction runs = %d, want 1", rec.calls)
	}
	if len(families.created) != 1 || len(settings.created) != 1 {
		t.Fatalf("created %d families, %d settings; want 1 each", len(families.created), len(settings.created))
	}
	if settings.created[0].FamilyID != family.ID {
		t.Error("settings row not bound to the new family")
	}
	if !auth.VerifyPin("111222", settings.created[0].SecurityPinHash) {
		t.Error("default PIN not hashed into settings")
	}
	if len(invites.bound) != 0 {
		t.Error("invite bound without a token")
	}
}

func TestStartBlockedOnceFamilyExists(t *testing.T) {
	families := &fakeFamilyStore{count: 1}
	rec := &txRecorder{}
	svc := newTestService(families, &fakeSettingsStore{}, &fakeInviteStore{}, rec)

	_, err := svc.Start(context.Background(), validParams())
	if !errors.Is(err, domain.ErrSetupForbidden) {
		t.Fatalf("error = %v, want ErrSetupForbidden", err)
	}
	if rec.calls != 0 {
		t.Error("transaction started despite the first-run gate")
	}
	if len(families.created) != 0 {
		t.Error("family created despite the first-run gate")
	}
}

func TestStartWithInviteBindsIt(t *testing.T) {
	invite := &domain.SetupInvite{ID: uuid.New(), ExpiresAt: time.Now().Add(time.Hour)}
	families := &fakeFamilyStore{count: 5}
	invites := &fakeInviteStore{invite: invite}
	rec := &txRecorder{}
	svc := newTestService(families, &fakeSettingsStore{}, invites, rec)

	params := validParams()
	params.Token = "raw-invite-token"
	family, err := svc.Start(context.Background(), params)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if len(invites.bound) != 1 {
		t.Fatalf("bound %d invites, want 1", len(invites.bound))
	}
	if invites.bound[0].inviteID != invite.ID || invites.bound[0].familyID != family.ID {
		t.Errorf("bound = %+v", invites.bound[0])
	}
	if rec.calls != 1 {
		t.Errorf("transaction runs = %d, want 1; bind must share the insert transaction", rec.calls)
	}
}

func TestStartInviteErrors(t *testing.T) {
	consumedFamily := uuid.New()

	tests := []struct {
		name    string
		invites *fakeInviteStore
		wantErr error
	}{
		{
			"not found",
			&fakeInviteStore{getErr: domain.ErrInviteNotFound},
			domain.ErrInviteNotFound,
		},
		{
			"expired",
			&fakeInviteStore{invite: &domain.SetupInvite{ID: uuid.New(), ExpiresAt: time.Now().Add(-time.Hour)}},
			domain.ErrInviteExpired,
		},
		{
			"consumed",
			&fakeInviteStore{invite: &domain.SetupInvite{
				ID:        uuid.New(),
				FamilyID:  &consumedFamily,
				ExpiresAt: time.Now().Add(time.Hour),
			}},
			domain.ErrInviteConsumed,
		},
		{
			// A consumed invite answers "already used" even when it has
			// also expired.
			"consumed and expired",
			&fakeInviteStore{invite: &domain.SetupInvite{
				ID:        uuid.New(),
				FamilyID:  &consumedFamily,
				ExpiresAt: time.Now().Add(-time.Hour),
			}},
			domain.ErrInviteConsumed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			families := &fakeFamilyStore{}
			rec := &txRecorder{}
			svc := newTestService(families, &fakeSettingsStore{}, tt.invites, rec)

			params := validParams()
			params.Token = "raw-invite-token"
			_, err := svc.Start(context.Background(), params)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if rec.calls != 0 || len(families.created) != 0 {
				t.Error("writes happened for a rejected invite")
			}
		})
	}
}

func TestStartBindFailureAbortsTransaction(t *testing.T) {
	invite := &domain.SetupInvite{ID: uuid.New(), ExpiresAt: time.Now().Add(time.Hour)}
	invites := &fakeInviteStore{invite: invite, bindErr: domain.ErrInviteConsumed}
	rec := &txRecorder{}
	svc := newTestService(&fakeFamilyStore{count: 1}, &fakeSettingsStore{}, invites, rec)

	params := validParams()
	params.Token = "raw-invite-token"
	_, err := svc.Start(context.Background(), params)
	if !errors.Is(err, domain.ErrInviteConsumed) {
		t.Fatalf("error = %v, want ErrInviteConsumed", err)
	}
	// The bind runs inside the same transaction as the inserts, so its
	// failure rolls the family and settings rows back with it.
	if !rec.failed {
		t.Error("transaction did not observe the bind failure")
	}
}

func TestStartSlugConflict(t *testing.T) {
	families := &fakeFamilyStore{count: 0, createErr: domain.ErrSlugTaken}
	rec := &txRecorder{}
	svc := newTestService(families, &fakeSettingsStore{}, &fakeInviteStore{}, rec)

	_, err := svc.Start(context.Background(), validParams())
	if !errors.Is(err, domain.ErrSlugTaken) {
		t.Fatalf("error = %v, want ErrSlugTaken", err)
	}
	if !rec.failed {
		t.Error("transaction did not observe the conflicting insert")
	}
}

func TestStartInvalidPin(t *testing.T) {
	for _, pin := range []string{"12", "abcd", "12345678901"} {
		t.Run(pin, func(t *testing.T) {
			rec := &txRecorder{}
			svc := newTestService(&fakeFamilyStore{}, &fakeSettingsStore{}, &fakeInviteStore{}, rec)

			params := validParams()
			params.PIN = pin
			_, err := svc.Start(context.Background(), params)
			if !errors.Is(err, domain.ErrInvalidPin) {
				t.Fatalf("error = %v, want ErrInvalidPin", err)
			}
			if rec.calls != 0 {
				t.Error("transaction started with an invalid PIN")
			}
		})
	}
}

func TestStartCustomPin(t *testing.T) {
	settings := &fakeSettingsStore{}
	svc := newTestService(&fakeFamilyStore{}, settings, &fakeInviteStore{}, &txRecorder{})

	params := validParams()
	params.PIN = "987654"
	if _, err := svc.Start(context.Background(), params); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if !auth.VerifyPin("987654", settings.created[0].SecurityPinHash) {
		t.Error("provided PIN not hashed into settings")
	}
}

func TestCreateInvite(t *testing.T) {
	invites := &fakeInviteStore{}
	svc := newTestService(&fakeFamilyStore{}, &fakeSettingsStore{}, invites, &txRecorder{})

	rawToken, invite, err := svc.CreateInvite(context.Background())
	if err != nil {
		t.Fatalf("CreateInvite: %v", err)
	}
	if rawToken == "" {
		t.Fatal("empty raw token")
	}
	if len(invites.created) != 1 {
		t.Fatalf("created %d invites, want 1", len(invites.created))
	}
	if invite.TokenHash != auth.HashToken(rawToken) {
		t.Error("stored hash does not match the raw token")
	}
	if invite.TokenHash == rawToken {
		t.Error("raw token stored verbatim")
	}
	if remaining := time.Until(invite.ExpiresAt); remaining < 6*24*time.Hour {
		t.Errorf("ExpiresAt %v does not honor the configured TTL", invite.ExpiresAt)
	}
}
