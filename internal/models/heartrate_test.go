// ABOUTME: Tests for manual heart rate override precedence.
// ABOUTME: Verifies only positive values override and originals stay intact.
package models

import (
	"testing"
	"time"
)

func TestApplyToOverridesPositiveValues(t *testing.T) {
	r := NewDailyRecord(Date{2025, time.January, 10})
	r.RestingHR = Float(58)
	r.HRV = Float(42)
	r.CaloriesBurned = Float(2200)

	e := NewManualHeartRateEntry(r.Date)
	e.RestingHR = 55
	e.HRV = 0 // absent, must not override

	out := e.ApplyTo(r)

	if *out.RestingHR != 55 {
		t.Errorf("RestingHR = %v, want manual 55", *out.RestingHR)
	}
	if *out.HRV != 42 {
		t.Errorf("HRV = %v, want device 42 (zero manual value ignored)", *out.HRV)
	}
	if *out.CaloriesBurned != 2200 {
		t.Errorf("CaloriesBurned = %v, want 2200", *out.CaloriesBurned)
	}

	// Original untouched
	if *r.RestingHR != 58 {
		t.Errorf("original record mutated: RestingHR = %v", *r.RestingHR)
	}
}

func TestApplyToNilEntry(t *testing.T) {
	r := NewDailyRecord(Date{2025, time.January, 10})
	r.HRV = Float(42)

	var e *ManualHeartRateEntry
	out := e.ApplyTo(r)
	if out != r {
		t.Error("nil entry should pass the record through unchanged")
	}
}

func TestProfileAge(t *testing.T) {
	dob := Date{1990, time.June, 15}
	p := &UserProfile{DateOfBirth: &dob}

	if age := p.AgeAt(Date{2025, time.June, 14}); age != 34 {
		t.Errorf("age before birthday = %d, want 34", age)
	}
	if age := p.AgeAt(Date{2025, time.June, 15}); age != 35 {
		t.Errorf("age on birthday = %d, want 35", age)
	}
}

func TestProfileBaselines(t *testing.T) {
	var p *UserProfile
	if p.HRVBaseline() != DefaultBaselineHRV {
		t.Errorf("nil profile HRV baseline = %v, want default", p.HRVBaseline())
	}
	if p.RHRBaseline() != DefaultBaselineRHR {
		t.Errorf("nil profile RHR baseline = %v, want default", p.RHRBaseline())
	}

	p = &UserProfile{BaselineHRV: Float(50), BaselineRHR: Float(55)}
	if p.HRVBaseline() != 50 || p.RHRBaseline() != 55 {
		t.Error("configured baselines should win over defaults")
	}
}

func TestProfileMaxHR(t *testing.T) {
	on := Date{2025, time.January, 1}

	p := &UserProfile{MaxHeartRate: Float(185)}
	if p.MaxHR(on) != 185 {
		t.Errorf("configured MaxHR = %v, want 185", p.MaxHR(on))
	}

	dob := Date{1985, time.January, 1}
	p = &UserProfile{DateOfBirth: &dob}
	if p.MaxHR(on) != 180 {
		t.Errorf("age-derived MaxHR = %v, want 180", p.MaxHR(on))
	}

	p = &UserProfile{}
	if p.MaxHR(on) != DefaultMaxHeartRate {
		t.Errorf("default MaxHR = %v, want %v", p.MaxHR(on), DefaultMaxHeartRate)
	}
}
