// ABOUTME: UserProfile model with scoring baselines and targets.
// ABOUTME: Immutable input to the scoring engine per invocation.
package models

import "time"

// Profile defaults used when the user has not configured a value.
const (
	DefaultBaselineHRV      = 35.0 // ms
	DefaultBaselineRHR      = 60.0 // bpm
	DefaultTargetSleepHours = 8.0
	DefaultMaxHeartRate     = 190.0
)

// defaultBirthYearOffset puts the fallback birthdate 35 years back, so a
// profile with no DOB still yields a plausible chronological age.
const defaultBirthYearOffset = 35

// UserProfile carries the per-user inputs the scoring formulas need.
type UserProfile struct {
	DateOfBirth      *Date    `json:"date_of_birth,omitempty" yaml:"date_of_birth,omitempty"`
	TargetSleepHours *float64 `json:"target_sleep_hours,omitempty" yaml:"target_sleep_hours,omitempty"`
	BaselineRHR      *float64 `json:"baseline_rhr,omitempty" yaml:"baseline_rhr,omitempty"`
	BaselineHRV      *float64 `json:"baseline_hrv,omitempty" yaml:"baseline_hrv,omitempty"`
	MaxHeartRate     *float64 `json:"max_heart_rate,omitempty" yaml:"max_heart_rate,omitempty"`
}

// AgeAt returns the user's age in whole years on the given date, using the
// default birthdate fallback when no DOB is configured.
func (p *UserProfile) AgeAt(on Date) int {
	dob := Date{Year: on.Year - defaultBirthYearOffset, Month: time.January, Day: 1}
	if p != nil && p.DateOfBirth != nil {
		dob = *p.DateOfBirth
	}
	age := on.Year - dob.Year
	if on.Month < dob.Month || (on.Month == dob.Month && on.Day < dob.Day) {
		age--
	}
	if age < 0 {
		age = 0
	}
	return age
}

// HRVBaseline returns the configured HRV baseline or the default.
func (p *UserProfile) HRVBaseline() float64 {
	if p != nil && p.BaselineHRV != nil && *p.BaselineHRV > 0 {
		return *p.BaselineHRV
	}
	return DefaultBaselineHRV
}

// RHRBaseline returns the configured RHR baseline or the default.
func (p *UserProfile) RHRBaseline() float64 {
	if p != nil && p.BaselineRHR != nil && *p.BaselineRHR > 0 {
		return *p.BaselineRHR
	}
	return DefaultBaselineRHR
}

// MaxHR returns the configured max heart rate, falling back to 220-age
// when a DOB is present and to the global default otherwise.
func (p *UserProfile) MaxHR(on Date) float64 {
	if p != nil && p.MaxHeartRate != nil && *p.MaxHeartRate > 0 {
		return *p.MaxHeartRate
	}
	if p != nil && p.DateOfBirth != nil {
		return 220 - float64(p.AgeAt(on))
	}
	return DefaultMaxHeartRate
}

// TargetSleepMinutes returns the sleep target in minutes.
func (p *UserProfile) TargetSleepMinutes() float64 {
	hours := DefaultTargetSleepHours
	if p != nil && p.TargetSleepHours != nil && *p.TargetSleepHours > 0 {
		hours = *p.TargetSleepHours
	}
	return hours * 60
}
