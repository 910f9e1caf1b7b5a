package domain

import (
	"testing"
	"time"
)

func TestValidFeedType(t *testing.T) {
	for _, valid := range []FeedType{FeedBreast, FeedBottle, FeedSolids} {
		if !ValidFeedType(valid) {
			t.Errorf("ValidFeedType(%q) = false", valid)
		}
	}
	for _, invalid := range []FeedType{"", "breast", "FORMULA"} {
		if ValidFeedType(invalid) {
			t.Errorf("ValidFeedType(%q) = true", invalid)
		}
	}
}

func TestValidDiaperType(t *testing.T) {
	for _, valid := range []DiaperType{DiaperWet, DiaperDirty, DiaperBoth} {
		if !ValidDiaperType(valid) {
			t.Errorf("ValidDiaperType(%q) = false", valid)
		}
	}
	if ValidDiaperType("DRY") {
		t.Error(`ValidDiaperType("DRY") = true`)
	}
}

func TestValidMeasurementType(t *testing.T) {
	for _, valid := range []MeasurementType{MeasurementHeight, MeasurementWeight, MeasurementTemperature, MeasurementHead} {
		if !ValidMeasurementType(valid) {
			t.Errorf("ValidMeasurementType(%q) = false", valid)
		}
	}
	if ValidMeasurementType("LENGTH") {
		t.Error(`ValidMeasurementType("LENGTH") = true`)
	}
}

func TestSleepLogOngoingAndDuration(t *testing.T) {
	start := time.Date(2024, 3, 1, 20, 0, 0, 0, time.UTC)

	log := SleepLog{StartTime: start, Type: SleepNight}
	if !log.Ongoing() {
		t.Error("session without end time not reported as ongoing")
	}
	if _, ok := log.Duration(); ok {
		t.Error("ongoing session returned a duration")
	}

	end := start.Add(9 * time.Hour)
	log.EndTime = &end
	if log.Ongoing() {
		t.Error("ended session reported as ongoing")
	}
	d, ok := log.Duration()
	if !ok || d != 9*time.Hour {
		t.Errorf("Duration() = %v, %v; want 9h, true", d, ok)
	}
}
