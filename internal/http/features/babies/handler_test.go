package babies

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/leonguyen52/sprout-track-sub004/internal/http/middleware"
	"github.com/leonguyen52/sprout-track-sub004/pkg/domain"
)

func TestBabyRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     BabyRequest
		want    time.Time
		wantErr bool
	}{
		{
			"valid",
			BabyRequest{FirstName: "Alma", BirthDate: "2024-03-01"},
			time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			false,
		},
		{
			"missing first name",
			BabyRequest{BirthDate: "2024-03-01"},
			time.Time{},
			true,
		},
		{
			"missing birth date",
			BabyRequest{FirstName: "Alma"},
			time.Time{},
			true,
		},
		{
			"timestamp instead of date",
			BabyRequest{FirstName: "Alma", BirthDate: "2024-03-01T00:00:00Z"},
			time.Time{},
			true,
		},
		{
			"garbage date",
			BabyRequest{FirstName: "Alma", BirthDate: "March 1st"},
			time.Time{},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.req.validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("birthDate = %v, want %v", got, tt.want)
			}
		})
	}
}

// fakeBabyStore keeps one row and stamps updatedAt on writes, the way the
// database does.
type fakeBabyStore struct {
	stored *domain.Baby
	now    time.Time
}

func (f *fakeBabyStore) Create(ctx context.Context, baby *domain.Baby) error {
	f.stored = baby
	return nil
}

func (f *fakeBabyStore) GetByID(ctx context.Context, familyID, id uuid.UUID) (*domain.Baby, error) {
	if f.stored == nil || f.stored.ID != id || f.stored.FamilyID != familyID {
		return nil, domain.ErrBabyNotFound
	}
	row := *f.stored
	return &row, nil
}

func (f *fakeBabyStore) ListByFamily(ctx context.Context, familyID uuid.UUID) ([]*domain.Baby, error) {
	return nil, nil
}

func (f *fakeBabyStore) Update(ctx context.Context, baby *domain.Baby) error {
	if f.stored == nil || f.stored.ID != baby.ID || f.stored.FamilyID != baby.FamilyID {
		return domain.ErrBabyNotFound
	}
	createdAt := f.stored.CreatedAt
	row := *baby
	row.CreatedAt = createdAt
	row.UpdatedAt = f.now
	f.stored = &row
	return nil
}

func (f *fakeBabyStore) Delete(ctx context.Context, familyID, id uuid.UUID) error {
	return domain.ErrBabyNotFound
}

func TestUpdateReturnsStoredRow(t *testing.T) {
	familyID := uuid.New()
	babyID := uuid.New()
	createdAt := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	updatedAt := time.Date(2024, 4, 1, 10, 0, 0, 0, time.UTC)

	store := &fakeBabyStore{
		stored: &domain.Baby{
			ID:        babyID,
			FamilyID:  familyID,
			FirstName: "Alma",
			BirthDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			CreatedAt: createdAt,
			UpdatedAt: createdAt,
		},
		now: updatedAt,
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewHandler(logger, store)

	body := `{"firstName":"Alma","lastName":"Smith","birthDate":"2024-03-01"}`
	req := httptest.NewRequest(http.MethodPut, "/api/babies/"+babyID.String(), strings.NewReader(body))
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", babyID.String())
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	ctx = context.WithValue(ctx, middleware.FamilyIDKey, familyID)
	rec := httptest.NewRecorder()
	h.Update(rec, req.WithContext(ctx))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Success bool        `json:"success"`
		Data    domain.Baby `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Data.LastName != "Smith" {
		t.Errorf("LastName = %q, want %q", resp.Data.LastName, "Smith")
	}
	if !resp.Data.CreatedAt.Equal(createdAt) {
		t.Errorf("CreatedAt = %v, want the original %v", resp.Data.CreatedAt, createdAt)
	}
	if !resp.Data.UpdatedAt.Equal(updatedAt) {
		t.Errorf("UpdatedAt = %v, want the stored %v", resp.Data.UpdatedAt, updatedAt)
	}
}
