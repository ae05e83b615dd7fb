// ABOUTME: Daily score orchestration: overlays, fallbacks, and assembly.
// ABOUTME: Single source of truth for which formula feeds each indicator.
package scoring

import (
	"github.com/harperreed/vitals/internal/models"
)

// Recovery score provenance labels.
const (
	SourceDevice  = "device"
	SourcePrimary = "primary"
	SourceProxy   = "proxy"
)

// rhrBaselineDays is the trailing window for the proxy RHR baseline.
const rhrBaselineDays = 7

// Input carries everything one day's scores are computed from. All
// pointers may be nil; the engine degrades instead of failing.
type Input struct {
	Record   *models.DailyRecord
	Previous *models.DailyRecord
	History  []*models.DailyRecord
	Profile  *models.UserProfile
	Manual   *models.ManualHeartRateEntry

	// SubjectiveEnergy is an optional 1-10 self report feeding readiness.
	SubjectiveEnergy *float64
}

// DailyScores holds every derived indicator for one day. Nil means no
// data; presentation layers render their own "No Data" sentinel.
type DailyScores struct {
	Date models.Date `json:"date"`

	Sleep          *int     `json:"sleep,omitempty"`
	Recovery       *int     `json:"recovery,omitempty"`
	RecoverySource string   `json:"recovery_source,omitempty"`
	Strain         *float64 `json:"strain,omitempty"`
	Readiness      *int     `json:"readiness,omitempty"`
	Activity       *int     `json:"activity,omitempty"`
	ActivityLevel  string   `json:"activity_level,omitempty"`
	Stress         *int     `json:"stress,omitempty"`

	// Two coexisting metabolic age models, deliberately kept apart.
	MetabolicAge          *int `json:"metabolic_age,omitempty"`
	BiomarkerMetabolicAge *int `json:"biomarker_metabolic_age,omitempty"`
}

// ComputeDailyScores derives every indicator for the day described by in.
// Device-recorded scores take precedence over computed ones; computed
// formulas fill the gaps. Pure with respect to its inputs: records are
// never mutated and identical inputs always yield identical scores.
func ComputeDailyScores(in Input) *DailyScores {
	if in.Record == nil {
		return &DailyScores{}
	}

	r := in.Manual.ApplyTo(in.Record)
	out := &DailyScores{Date: r.Date}

	// Sleep: device score wins, formula fills in.
	if r.SleepScore != nil {
		out.Sleep = intPtr(roundInt(*r.SleepScore))
	} else {
		out.Sleep = SleepScore(r.SleepDuration, r.DeepSleep, r.RemSleep, r.WakeEvents,
			in.Profile.TargetSleepMinutes())
	}

	var previousStrain *float64
	if in.Previous != nil {
		previousStrain = in.Previous.StrainScore
	}

	// Recovery: device value, then the HRV primary formula, then the
	// sleep-based proxy. The primary and proxy paths never blend.
	switch {
	case r.RecoveryScore != nil:
		out.Recovery = intPtr(roundInt(*r.RecoveryScore))
		out.RecoverySource = SourceDevice
	case r.HRV != nil:
		out.Recovery = RecoveryScore(r.HRV, r.RestingHR, floatOf(out.Sleep), previousStrain,
			in.Profile.HRVBaseline(), in.Profile.RHRBaseline())
		out.RecoverySource = SourcePrimary
	case r.SleepDuration != nil:
		baseline := TrailingRHRBaseline(in.History, r.Date)
		out.Recovery = ProxyRecoveryScore(r.SleepDuration, r.DeepSleep, r.RemSleep,
			r.Steps, r.CaloriesBurned, r.RestingHR, baseline)
		out.RecoverySource = SourceProxy
	}

	// Strain: device value, else derived from manual HR data when the
	// entry carries an awake average. Active minutes are approximated
	// from active calories at a moderate 8 kcal/min burn rate.
	if r.StrainScore != nil {
		out.Strain = floatPtr(*r.StrainScore)
	} else if in.Manual != nil && in.Manual.AvgHRAwake > 0 {
		var activeMinutes *float64
		if r.ActiveCalories != nil {
			activeMinutes = floatPtr(*r.ActiveCalories / 8)
		}
		var peakHR *float64
		if in.Manual.MaxHR > 0 {
			peakHR = floatPtr(in.Manual.MaxHR)
		}
		out.Strain = StrainScore(floatPtr(in.Manual.AvgHRAwake), peakHR, activeMinutes,
			in.Profile.MaxHR(r.Date))
	}

	if r.Steps != nil || r.CaloriesBurned != nil {
		out.Activity = ActivityScore(r.Steps, r.CaloriesBurned)
		out.ActivityLevel = ActivityLevelStatus(float64(*out.Activity))
	}

	if r.StressLevel != nil {
		out.Stress = intPtr(roundInt(*r.StressLevel))
	} else {
		out.Stress = StressScore(r.RestingHR, r.HRV, floatOf(out.Sleep), floatOf(out.Recovery))
	}

	out.Readiness = ReadinessScore(floatOf(out.Recovery), floatOf(out.Sleep), out.Strain,
		in.SubjectiveEnergy)

	age := in.Profile.AgeAt(r.Date)
	out.MetabolicAge = MetabolicAge(age, r.RestingHR, r.HRV, r.BodyFat, r.BMR, r.Weight)
	out.BiomarkerMetabolicAge = BiomarkerMetabolicAge(age, r.HRV,
		floatOf(out.Recovery), floatOf(out.Sleep), r.VO2Max, r.BodyFat, r.RestingHR)

	return out
}

// TrailingRHRBaseline averages resting HR over the 7 days before date.
// Returns nil when no prior resting HR exists in the window.
func TrailingRHRBaseline(history []*models.DailyRecord, date models.Date) *float64 {
	start := date.AddDays(-rhrBaselineDays)
	var sum float64
	var n int
	for _, rec := range history {
		if rec == nil || rec.RestingHR == nil {
			continue
		}
		if rec.Date.Before(date) && !rec.Date.Before(start) {
			sum += *rec.RestingHR
			n++
		}
	}
	if n == 0 {
		return nil
	}
	return floatPtr(sum / float64(n))
}

// floatOf converts an optional int score to an optional float64.
func floatOf(v *int) *float64 {
	if v == nil {
		return nil
	}
	return floatPtr(float64(*v))
}
