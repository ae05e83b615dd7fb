// ABOUTME: DailyRecord model with independently-nullable biometric fields.
// ABOUTME: Defines the Field enum, units map, and per-field accessors.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Field names a single biometric column of a DailyRecord.
type Field string

const (
	// Sleep
	FieldSleepScore    Field = "sleep_score"
	FieldSleepDuration Field = "sleep_duration"
	FieldDeepSleep     Field = "deep_sleep"
	FieldRemSleep      Field = "rem_sleep"
	FieldLightSleep    Field = "light_sleep"
	FieldWakeEvents    Field = "wake_events"

	// Recovery
	FieldRecoveryScore Field = "recovery_score"
	FieldStrainScore   Field = "strain_score"
	FieldRestingHR     Field = "resting_hr"
	FieldHRV           Field = "hrv"

	// Body composition
	FieldWeight          Field = "weight"
	FieldBodyFat         Field = "body_fat"
	FieldMuscleMass      Field = "muscle_mass"
	FieldVisceralFat     Field = "visceral_fat"
	FieldSubcutaneousFat Field = "subcutaneous_fat"
	FieldBMR             Field = "bmr"
	FieldMetabolicAge    Field = "metabolic_age"

	// Activity
	FieldSteps          Field = "steps"
	FieldDistance       Field = "distance"
	FieldCaloriesBurned Field = "calories_burned"
	FieldActiveCalories Field = "active_calories"
	FieldVO2Max         Field = "vo2_max"

	// Vitals
	FieldBPSystolic       Field = "bp_systolic"
	FieldBPDiastolic      Field = "bp_diastolic"
	FieldOxygenSaturation Field = "oxygen_saturation"
	FieldStressLevel      Field = "stress_level"
)

// FieldUnits maps fields to their display units.
var FieldUnits = map[Field]string{
	FieldSleepScore:       "pts",
	FieldSleepDuration:    "min",
	FieldDeepSleep:        "min",
	FieldRemSleep:         "min",
	FieldLightSleep:       "min",
	FieldWakeEvents:       "events",
	FieldRecoveryScore:    "pts",
	FieldStrainScore:      "pts",
	FieldRestingHR:        "bpm",
	FieldHRV:              "ms",
	FieldWeight:           "kg",
	FieldBodyFat:          "%",
	FieldMuscleMass:       "kg",
	FieldVisceralFat:      "level",
	FieldSubcutaneousFat:  "%",
	FieldBMR:              "kcal",
	FieldMetabolicAge:     "years",
	FieldSteps:            "steps",
	FieldDistance:         "km",
	FieldCaloriesBurned:   "kcal",
	FieldActiveCalories:   "kcal",
	FieldVO2Max:           "ml/kg/min",
	FieldBPSystolic:       "mmHg",
	FieldBPDiastolic:      "mmHg",
	FieldOxygenSaturation: "%",
	FieldStressLevel:      "pts",
}

// AllFields lists every valid record field.
var AllFields = []Field{
	FieldSleepScore, FieldSleepDuration, FieldDeepSleep, FieldRemSleep,
	FieldLightSleep, FieldWakeEvents,
	FieldRecoveryScore, FieldStrainScore, FieldRestingHR, FieldHRV,
	FieldWeight, FieldBodyFat, FieldMuscleMass, FieldVisceralFat,
	FieldSubcutaneousFat, FieldBMR, FieldMetabolicAge,
	FieldSteps, FieldDistance, FieldCaloriesBurned, FieldActiveCalories,
	FieldVO2Max,
	FieldBPSystolic, FieldBPDiastolic, FieldOxygenSaturation, FieldStressLevel,
}

// IsValidField checks if a string is a valid field name.
func IsValidField(s string) bool {
	for _, f := range AllFields {
		if string(f) == s {
			return true
		}
	}
	return false
}

// DailyRecord holds one day of imported biometrics. Every metric field is
// independently nullable; importers populate whatever their source device
// reports and leave the rest nil.
type DailyRecord struct {
	ID   uuid.UUID `json:"id" yaml:"id"`
	Date Date      `json:"date" yaml:"date"`

	SleepScore    *float64 `json:"sleep_score,omitempty" yaml:"sleep_score,omitempty"`
	SleepDuration *float64 `json:"sleep_duration,omitempty" yaml:"sleep_duration,omitempty"`
	DeepSleep     *float64 `json:"deep_sleep,omitempty" yaml:"deep_sleep,omitempty"`
	RemSleep      *float64 `json:"rem_sleep,omitempty" yaml:"rem_sleep,omitempty"`
	LightSleep    *float64 `json:"light_sleep,omitempty" yaml:"light_sleep,omitempty"`
	WakeEvents    *float64 `json:"wake_events,omitempty" yaml:"wake_events,omitempty"`

	RecoveryScore *float64 `json:"recovery_score,omitempty" yaml:"recovery_score,omitempty"`
	StrainScore   *float64 `json:"strain_score,omitempty" yaml:"strain_score,omitempty"`
	RestingHR     *float64 `json:"resting_hr,omitempty" yaml:"resting_hr,omitempty"`
	HRV           *float64 `json:"hrv,omitempty" yaml:"hrv,omitempty"`

	Weight          *float64 `json:"weight,omitempty" yaml:"weight,omitempty"`
	BodyFat         *float64 `json:"body_fat,omitempty" yaml:"body_fat,omitempty"`
	MuscleMass      *float64 `json:"muscle_mass,omitempty" yaml:"muscle_mass,omitempty"`
	VisceralFat     *float64 `json:"visceral_fat,omitempty" yaml:"visceral_fat,omitempty"`
	SubcutaneousFat *float64 `json:"subcutaneous_fat,omitempty" yaml:"subcutaneous_fat,omitempty"`
	BMR             *float64 `json:"bmr,omitempty" yaml:"bmr,omitempty"`
	MetabolicAge    *float64 `json:"metabolic_age,omitempty" yaml:"metabolic_age,omitempty"`

	Steps          *float64 `json:"steps,omitempty" yaml:"steps,omitempty"`
	Distance       *float64 `json:"distance,omitempty" yaml:"distance,omitempty"`
	CaloriesBurned *float64 `json:"calories_burned,omitempty" yaml:"calories_burned,omitempty"`
	ActiveCalories *float64 `json:"active_calories,omitempty" yaml:"active_calories,omitempty"`
	VO2Max         *float64 `json:"vo2_max,omitempty" yaml:"vo2_max,omitempty"`

	BPSystolic       *float64 `json:"bp_systolic,omitempty" yaml:"bp_systolic,omitempty"`
	BPDiastolic      *float64 `json:"bp_diastolic,omitempty" yaml:"bp_diastolic,omitempty"`
	OxygenSaturation *float64 `json:"oxygen_saturation,omitempty" yaml:"oxygen_saturation,omitempty"`
	StressLevel      *float64 `json:"stress_level,omitempty" yaml:"stress_level,omitempty"`

	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at"`
}

// NewDailyRecord creates an empty record for a date with generated UUID.
func NewDailyRecord(date Date) *DailyRecord {
	now := time.Now()
	return &DailyRecord{
		ID:        uuid.New(),
		Date:      date,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Value returns a pointer to the named field's value, or nil when the
// field is unset or unknown.
func (r *DailyRecord) Value(f Field) *float64 {
	if r == nil {
		return nil
	}
	switch f {
	case FieldSleepScore:
		return r.SleepScore
	case FieldSleepDuration:
		return r.SleepDuration
	case FieldDeepSleep:
		return r.DeepSleep
	case FieldRemSleep:
		return r.RemSleep
	case FieldLightSleep:
		return r.LightSleep
	case FieldWakeEvents:
		return r.WakeEvents
	case FieldRecoveryScore:
		return r.RecoveryScore
	case FieldStrainScore:
		return r.StrainScore
	case FieldRestingHR:
		return r.RestingHR
	case FieldHRV:
		return r.HRV
	case FieldWeight:
		return r.Weight
	case FieldBodyFat:
		return r.BodyFat
	case FieldMuscleMass:
		return r.MuscleMass
	case FieldVisceralFat:
		return r.VisceralFat
	case FieldSubcutaneousFat:
		return r.SubcutaneousFat
	case FieldBMR:
		return r.BMR
	case FieldMetabolicAge:
		return r.MetabolicAge
	case FieldSteps:
		return r.Steps
	case FieldDistance:
		return r.Distance
	case FieldCaloriesBurned:
		return r.CaloriesBurned
	case FieldActiveCalories:
		return r.ActiveCalories
	case FieldVO2Max:
		return r.VO2Max
	case FieldBPSystolic:
		return r.BPSystolic
	case FieldBPDiastolic:
		return r.BPDiastolic
	case FieldOxygenSaturation:
		return r.OxygenSaturation
	case FieldStressLevel:
		return r.StressLevel
	default:
		return nil
	}
}

// SetValue assigns the named field. Unknown fields are ignored.
func (r *DailyRecord) SetValue(f Field, v *float64) {
	switch f {
	case FieldSleepScore:
		r.SleepScore = v
	case FieldSleepDuration:
		r.SleepDuration = v
	case FieldDeepSleep:
		r.DeepSleep = v
	case FieldRemSleep:
		r.RemSleep = v
	case FieldLightSleep:
		r.LightSleep = v
	case FieldWakeEvents:
		r.WakeEvents = v
	case FieldRecoveryScore:
		r.RecoveryScore = v
	case FieldStrainScore:
		r.StrainScore = v
	case FieldRestingHR:
		r.RestingHR = v
	case FieldHRV:
		r.HRV = v
	case FieldWeight:
		r.Weight = v
	case FieldBodyFat:
		r.BodyFat = v
	case FieldMuscleMass:
		r.MuscleMass = v
	case FieldVisceralFat:
		r.VisceralFat = v
	case FieldSubcutaneousFat:
		r.SubcutaneousFat = v
	case FieldBMR:
		r.BMR = v
	case FieldMetabolicAge:
		r.MetabolicAge = v
	case FieldSteps:
		r.Steps = v
	case FieldDistance:
		r.Distance = v
	case FieldCaloriesBurned:
		r.CaloriesBurned = v
	case FieldActiveCalories:
		r.ActiveCalories = v
	case FieldVO2Max:
		r.VO2Max = v
	case FieldBPSystolic:
		r.BPSystolic = v
	case FieldBPDiastolic:
		r.BPDiastolic = v
	case FieldOxygenSaturation:
		r.OxygenSaturation = v
	case FieldStressLevel:
		r.StressLevel = v
	}
}

// Merge copies every non-nil field from other into r. Existing values are
// overwritten only where other has a value.
func (r *DailyRecord) Merge(other *DailyRecord) {
	for _, f := range AllFields {
		if v := other.Value(f); v != nil {
			r.SetValue(f, Float(*v))
		}
	}
	r.UpdatedAt = time.Now()
}

// Clone returns a deep copy of the record.
func (r *DailyRecord) Clone() *DailyRecord {
	c := *r
	for _, f := range AllFields {
		if v := r.Value(f); v != nil {
			c.SetValue(f, Float(*v))
		}
	}
	return &c
}

// Float returns a pointer to v, for building records with literal values.
func Float(v float64) *float64 {
	return &v
}
