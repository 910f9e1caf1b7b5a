package domain

import (
	"time"

	"github.com/google/uuid"
)

// Settings holds per-family display preferences and the security PIN hash.
// Exactly one row exists per family, created in the same transaction as the
// family itself.
type Settings struct {
	ID                uuid.UUID `json:"id"`
	FamilyID          uuid.UUID `json:"familyId"`
	SecurityPinHash   string    `json:"-"`
	DefaultBottleUnit string    `json:"defaultBottleUnit"`
	DefaultSolidsUnit string    `json:"defaultSolidsUnit"`
	DefaultHeightUnit string    `json:"defaultHeightUnit"`
	DefaultWeightUnit string    `json:"defaultWeightUnit"`
	DefaultTempUnit   string    `json:"defaultTempUnit"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// DefaultSettings returns the settings row created alongside a new family.
func DefaultSettings(familyID uuid.UUID, pinHash string) *Settings {
	now := time.Now()
	return &Settings{
		ID:                uuid.New(),
		FamilyID:          familyID,
		SecurityPinHash:   pinHash,
		DefaultBottleUnit: "OZ",
		DefaultSolidsUnit: "TBSP",
		DefaultHeightUnit: "IN",
		DefaultWeightUnit: "LB",
		DefaultTempUnit:   "F",
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}
