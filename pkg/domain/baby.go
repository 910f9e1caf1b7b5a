package domain

import (
	"time"

	"github.com/google/uuid"
)

// Baby is a child tracked by a family. Inactive hides a baby from the
// default views without touching its logs; deletion removes the logs too.
type Baby struct {
	ID        uuid.UUID `json:"id"`
	FamilyID  uuid.UUID `json:"familyId"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	BirthDate time.Time `json:"birthDate"`
	Gender    string    `json:"gender,omitempty"`
	Inactive  bool      `json:"inactive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
