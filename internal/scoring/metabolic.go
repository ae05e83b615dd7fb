// ABOUTME: Two metabolic age models: linear-continuous and banded-discrete.
// ABOUTME: They are exposed under distinct names and never mixed or averaged.
package scoring

import "math"

// Metabolic age bounds for the two models.
const (
	metabolicAgeMin = 18
	metabolicAgeMax = 80

	biomarkerAgeMin = 25
	biomarkerAgeMax = 80
)

// expectedRHR is the age-expected resting heart rate in bpm.
func expectedRHR(age int) float64 {
	return 60 + float64(age-25)/10
}

// expectedHRV is the age-expected HRV in ms; it declines with age but
// never below 20.
func expectedHRV(age int) float64 {
	return math.Max(20, 55-float64(age)/3)
}

// idealBodyFat returns the ideal body fat percentage for an age.
func idealBodyFat(age int) float64 {
	if age < 30 {
		return 12
	}
	return 15
}

// MetabolicAge is the linear-continuous model: chronological age adjusted
// proportionally by each biomarker's distance from its age-expected value.
// Terms for missing inputs are skipped. Result is clamped to [18, 80].
func MetabolicAge(age int, restingHR, hrv, bodyFat, bmr, weight *float64) *int {
	ma := float64(age)

	if restingHR != nil {
		ma += (*restingHR - expectedRHR(age)) / 5
	}
	if hrv != nil {
		ma -= (*hrv - expectedHRV(age)) / 3
	}
	if bodyFat != nil {
		ma += (*bodyFat - idealBodyFat(age)) / 2
	}
	if bmr != nil && weight != nil {
		expectedBMR := *weight * 22
		ma -= (*bmr - expectedBMR) / 100
	}

	return intPtr(roundInt(clamp(ma, metabolicAgeMin, metabolicAgeMax)))
}

// BiomarkerMetabolicAge is the banded-discrete model: chronological age
// shifted by independent per-biomarker year deltas at fixed thresholds.
// It computes different values than MetabolicAge from the same inputs;
// the two must never be blended in one display. Clamped to [25, 80].
func BiomarkerMetabolicAge(age int, hrv, recoveryScore, sleepScore, vo2Max, bodyFat, restingHR *float64) *int {
	ma := float64(age)

	if hrv != nil {
		switch {
		case *hrv < 30:
			ma += 5
		case *hrv < 40:
			ma += 3
		case *hrv < 45:
			ma += 1
		case *hrv >= 50:
			ma -= 2
		}
	}
	if recoveryScore != nil {
		switch {
		case *recoveryScore < 40:
			ma += 4
		case *recoveryScore < 55:
			ma += 2
		case *recoveryScore < 65:
			ma += 1
		case *recoveryScore >= 80:
			ma -= 2
		}
	}
	if sleepScore != nil {
		switch {
		case *sleepScore < 50:
			ma += 3.5
		case *sleepScore < 65:
			ma += 2
		case *sleepScore < 75:
			ma += 0.5
		case *sleepScore >= 85:
			ma -= 1.5
		}
	}
	if vo2Max != nil {
		switch {
		case *vo2Max < 30:
			ma += 4
		case *vo2Max < 38:
			ma += 2
		case *vo2Max < 45:
			ma += 1
		case *vo2Max >= 50:
			ma -= 3
		}
	}
	if bodyFat != nil {
		switch {
		case *bodyFat > 30:
			ma += 4
		case *bodyFat > 25:
			ma += 2.5
		case *bodyFat > 20:
			ma += 1
		case *bodyFat < 15:
			ma -= 1.5
		}
	}
	if restingHR != nil {
		switch {
		case *restingHR > 70:
			ma += 3
		case *restingHR > 62:
			ma += 1
		case *restingHR < 52:
			ma -= 2
		}
	}

	return intPtr(roundInt(clamp(ma, biomarkerAgeMin, biomarkerAgeMax)))
}
