package domain

import (
	"time"

	"github.com/google/uuid"
)

// FeedType identifies how a baby was fed.
type FeedType string

const (
	FeedBreast FeedType = "BREAST"
	FeedBottle FeedType = "BOTTLE"
	FeedSolids FeedType = "SOLIDS"
)

// ValidFeedType reports whether t is a known feed type.
func ValidFeedType(t FeedType) bool {
	switch t {
	case FeedBreast, FeedBottle, FeedSolids:
		return true
	}
	return false
}

// FeedLog records a single feeding.
type FeedLog struct {
	ID        uuid.UUID `json:"id"`
	FamilyID  uuid.UUID `json:"familyId"`
	BabyID    uuid.UUID `json:"babyId"`
	Time      time.Time `json:"time"`
	Type      FeedType  `json:"type"`
	Amount    *float64  `json:"amount,omitempty"`
	Unit      *string   `json:"unit,omitempty"`
	Side      *string   `json:"side,omitempty"`
	Food      *string   `json:"food,omitempty"`
	Note      *string   `json:"note,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DiaperType identifies the contents of a diaper change.
type DiaperType string

const (
	DiaperWet   DiaperType = "WET"
	DiaperDirty DiaperType = "DIRTY"
	DiaperBoth  DiaperType = "BOTH"
)

// ValidDiaperType reports whether t is a known diaper type.
func ValidDiaperType(t DiaperType) bool {
	switch t {
	case DiaperWet, DiaperDirty, DiaperBoth:
		return true
	}
	return false
}

// DiaperLog records a diaper change.
type DiaperLog struct {
	ID        uuid.UUID  `json:"id"`
	FamilyID  uuid.UUID  `json:"familyId"`
	BabyID    uuid.UUID  `json:"babyId"`
	Time      time.Time  `json:"time"`
	Type      DiaperType `json:"type"`
	Condition *string    `json:"condition,omitempty"`
	Color     *string    `json:"color,omitempty"`
	Note      *string    `json:"note,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// SleepType distinguishes naps from night sleep.
type SleepType string

const (
	SleepNap   SleepType = "NAP"
	SleepNight SleepType = "NIGHT"
)

// ValidSleepType reports whether t is a known sleep type.
func ValidSleepType(t SleepType) bool {
	return t == SleepNap || t == SleepNight
}

// SleepLog records a sleep session. EndTime is nil while the session is
// ongoing.
type SleepLog struct {
	ID        uuid.UUID  `json:"id"`
	FamilyID  uuid.UUID  `json:"familyId"`
	BabyID    uuid.UUID  `json:"babyId"`
	StartTime time.Time  `json:"startTime"`
	EndTime   *time.Time `json:"endTime,omitempty"`
	Type      SleepType  `json:"type"`
	Location  *string    `json:"location,omitempty"`
	Quality   *string    `json:"quality,omitempty"`
	Note      *string    `json:"note,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// Ongoing reports whether the sleep session has not ended yet.
func (s *SleepLog) Ongoing() bool {
	return s.EndTime == nil
}

// Duration returns the session length. ok is false while the session is
// ongoing.
func (s *SleepLog) Duration() (d time.Duration, ok bool) {
	if s.EndTime == nil {
		return 0, false
	}
	return s.EndTime.Sub(s.StartTime), true
}

// MedicineLog records a medicine dose.
type MedicineLog struct {
	ID        uuid.UUID `json:"id"`
	FamilyID  uuid.UUID `json:"familyId"`
	BabyID    uuid.UUID `json:"babyId"`
	Time      time.Time `json:"time"`
	Name      string    `json:"name"`
	Dose      float64   `json:"dose"`
	Unit      string    `json:"unit"`
	Note      *string   `json:"note,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// MeasurementType identifies what was measured.
type MeasurementType string

const (
	MeasurementHeight      MeasurementType = "HEIGHT"
	MeasurementWeight      MeasurementType = "WEIGHT"
	MeasurementTemperature MeasurementType = "TEMPERATURE"
	MeasurementHead        MeasurementType = "HEAD"
)

// ValidMeasurementType reports whether t is a known measurement type.
func ValidMeasurementType(t MeasurementType) bool {
	switch t {
	case MeasurementHeight, MeasurementWeight, MeasurementTemperature, MeasurementHead:
		return true
	}
	return false
}

// Measurement records a point-in-time measurement.
type Measurement struct {
	ID        uuid.UUID       `json:"id"`
	FamilyID  uuid.UUID       `json:"familyId"`
	BabyID    uuid.UUID       `json:"babyId"`
	Time      time.Time       `json:"time"`
	Type      MeasurementType `json:"type"`
	Value     float64         `json:"value"`
	Unit      string          `json:"unit"`
	Note      *string         `json:"note,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}
