// ABOUTME: ManualHeartRateEntry model for user-entered HR overrides.
// ABOUTME: Positive manual values take precedence over device-derived fields.
package models

import (
	"time"

	"github.com/google/uuid"
)

// ManualHeartRateEntry holds user-entered heart rate values for one day.
// Fields left at zero are treated as absent; only values > 0 override the
// device-derived fields of the same meaning.
type ManualHeartRateEntry struct {
	ID            uuid.UUID `json:"id" yaml:"id"`
	Date          Date      `json:"date" yaml:"date"`
	RestingHR     float64   `json:"resting_hr,omitempty" yaml:"resting_hr,omitempty"`
	MinHR         float64   `json:"min_hr,omitempty" yaml:"min_hr,omitempty"`
	MaxHR         float64   `json:"max_hr,omitempty" yaml:"max_hr,omitempty"`
	AvgHRSleeping float64   `json:"avg_hr_sleeping,omitempty" yaml:"avg_hr_sleeping,omitempty"`
	AvgHRAwake    float64   `json:"avg_hr_awake,omitempty" yaml:"avg_hr_awake,omitempty"`
	HRV           float64   `json:"hrv,omitempty" yaml:"hrv,omitempty"`
	Calories      float64   `json:"calories,omitempty" yaml:"calories,omitempty"`
	CreatedAt     time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" yaml:"updated_at"`
}

// NewManualHeartRateEntry creates an entry for a date with generated UUID.
func NewManualHeartRateEntry(date Date) *ManualHeartRateEntry {
	now := time.Now()
	return &ManualHeartRateEntry{
		ID:        uuid.New(),
		Date:      date,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ApplyTo returns a copy of the record with the entry's positive values
// overriding the matching device-derived fields. The input record is never
// mutated. A nil entry or nil record passes through unchanged.
func (e *ManualHeartRateEntry) ApplyTo(r *DailyRecord) *DailyRecord {
	if e == nil || r == nil {
		return r
	}
	out := r.Clone()
	if e.RestingHR > 0 {
		out.RestingHR = Float(e.RestingHR)
	}
	if e.HRV > 0 {
		out.HRV = Float(e.HRV)
	}
	if e.Calories > 0 {
		out.CaloriesBurned = Float(e.Calories)
	}
	return out
}
