package domain

import (
	"time"

	"github.com/google/uuid"
)

// SetupInvite is a single-use invitation credential. It is created before
// any family exists for it, and binds to a family exactly once when the
// setup flow consumes it.
type SetupInvite struct {
	ID        uuid.UUID  `json:"id"`
	TokenHash string     `json:"-"`
	FamilyID  *uuid.UUID `json:"familyId,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	ExpiresAt time.Time  `json:"expiresAt"`
}

// IsConsumed reports whether the invite has already been bound to a family.
func (i *SetupInvite) IsConsumed() bool {
	return i.FamilyID != nil
}

// IsValid reports whether the invite can still be consumed.
func (i *SetupInvite) IsValid() bool {
	return i.FamilyID == nil && time.Now().Before(i.ExpiresAt)
}
