// ABOUTME: Pure composite score formulas over daily biometric inputs.
// ABOUTME: Every formula clamps its output and tolerates missing inputs.
package scoring

import "math"

// Formula constants. Band edges and weights live here so a change is a
// one-line edit instead of a hunt through call sites.
const (
	optimalSleepMinutes = 480.0
	sleepDurationSlope  = 5.0 // minutes of deviation per point lost

	deepSleepBandLow  = 15.0
	deepSleepBandHigh = 20.0
	remSleepBandLow   = 20.0
	remSleepBandHigh  = 25.0
	stagePenaltySlope = 2.0
	wakeEventPenalty  = 10.0

	sleepWeightDuration = 0.4
	sleepWeightStages   = 0.4
	sleepWeightWake     = 0.2

	recoveryWeightHRV         = 0.4
	recoveryWeightRHR         = 0.2
	recoveryWeightSleep       = 0.2
	recoveryWeightStrain      = 0.1
	recoveryWeightConsistency = 0.1
	consistencyBonus          = 100.0

	maxStrain = 21.0

	stepsBandLow     = 3000.0
	stepsBandHigh    = 12000.0
	caloriesBandLow  = 200.0
	caloriesBandHigh = 800.0

	neutralComponent = 50.0
)

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// roundInt rounds to the nearest integer.
func roundInt(v float64) int {
	return int(math.Round(v))
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

// SleepScore computes a 0-100 sleep quality score from duration (minutes),
// stage minutes, and wake event count. Returns nil without a duration.
// Stage distribution falls back to a neutral component when stages are
// absent; missing wake events count as zero wakes.
func SleepScore(duration, deepSleep, remSleep, wakeEvents *float64, optimalMinutes float64) *int {
	if duration == nil {
		return nil
	}
	if optimalMinutes <= 0 {
		optimalMinutes = optimalSleepMinutes
	}

	durationScore := clamp(100-math.Abs(*duration-optimalMinutes)/sleepDurationSlope, 0, 100)

	stageScore := neutralComponent * 2
	if deepSleep != nil && remSleep != nil && *duration > 0 {
		deepPct := *deepSleep / *duration * 100
		remPct := *remSleep / *duration * 100
		stageScore = stageBandPoints(deepPct, deepSleepBandLow, deepSleepBandHigh) +
			stageBandPoints(remPct, remSleepBandLow, remSleepBandHigh)
	}

	wakeScore := 100.0
	if wakeEvents != nil {
		wakeScore = math.Max(0, 100-wakeEventPenalty**wakeEvents)
	}

	total := sleepWeightDuration*durationScore +
		sleepWeightStages*stageScore +
		sleepWeightWake*wakeScore
	return intPtr(roundInt(clamp(total, 0, 100)))
}

// stageBandPoints awards up to 50 points for a stage percentage, with a
// linear penalty of 2 points per percent of deviation from the band
// midpoint once outside the optimal band.
func stageBandPoints(pct, low, high float64) float64 {
	if pct >= low && pct <= high {
		return 50
	}
	mid := (low + high) / 2
	return math.Max(0, 50-stagePenaltySlope*math.Abs(pct-mid))
}

// RecoveryScore computes the primary 0-100 recovery score. HRV is the
// anchor input: without it callers must use ProxyRecoveryScore instead,
// so a nil HRV returns nil here. Other missing components degrade to
// neutral defaults.
func RecoveryScore(hrv, restingHR, sleepScore, previousStrain *float64, hrvBaseline, rhrBaseline float64) *int {
	if hrv == nil {
		return nil
	}
	if hrvBaseline <= 0 {
		hrvBaseline = 35
	}
	if rhrBaseline <= 0 {
		rhrBaseline = 60
	}

	hrvComponent := clamp(*hrv/hrvBaseline*100, 0, 100)

	rhrComponent := neutralComponent
	if restingHR != nil {
		rhrComponent = clamp(100-(*restingHR-rhrBaseline)*2, 0, 100)
	}

	sleepComponent := neutralComponent
	if sleepScore != nil {
		sleepComponent = *sleepScore
	}

	// No strain on record yesterday reads as fully rested.
	strainComponent := 100.0
	if previousStrain != nil {
		strainComponent = math.Max(0, 100-(*previousStrain-10)*5)
	}

	total := recoveryWeightHRV*hrvComponent +
		recoveryWeightRHR*rhrComponent +
		recoveryWeightSleep*sleepComponent +
		recoveryWeightStrain*strainComponent +
		recoveryWeightConsistency*consistencyBonus
	return intPtr(roundInt(clamp(total, 0, 100)))
}

// StrainScore computes a 0-21 cardiovascular strain score from average
// heart rate, peak heart rate, and active minutes. Returns nil without an
// average HR and active minutes. A missing peak HR means no intensity
// boost (factor 1).
func StrainScore(avgHR, maxHR, activeMinutes *float64, userMaxHR float64) *float64 {
	if avgHR == nil || activeMinutes == nil {
		return nil
	}
	if userMaxHR <= 0 {
		userMaxHR = 190
	}

	zonePoints := hrZonePoints(*avgHR / userMaxHR)
	durationFactor := math.Min(2, *activeMinutes/60)
	intensityFactor := 1.0
	if maxHR != nil {
		intensityFactor = math.Min(1.5, *maxHR/userMaxHR)
	}

	strain := clamp(zonePoints*durationFactor*intensityFactor, 0, maxStrain)
	return floatPtr(math.Round(strain*10) / 10)
}

// hrZonePoints maps the avg-HR fraction of max HR to zone points 0-4.
func hrZonePoints(fraction float64) float64 {
	switch {
	case fraction >= 0.9:
		return 4
	case fraction >= 0.8:
		return 3
	case fraction >= 0.7:
		return 2
	case fraction >= 0.6:
		return 1
	default:
		return 0
	}
}

// ActivityScore computes a 0-100 activity score where higher means more
// rested: low step and calorie counts score high. Each component falls
// back to a neutral 50 when its input is missing.
func ActivityScore(steps, caloriesBurned *float64) *int {
	return intPtr(roundInt(activityScoreValue(steps, caloriesBurned)))
}

// activityScoreValue is the unrounded form, shared with the proxy formula.
func activityScoreValue(steps, caloriesBurned *float64) float64 {
	stepsComponent := neutralComponent
	if steps != nil {
		stepsComponent = restBandScore(*steps, stepsBandLow, stepsBandHigh)
	}
	caloriesComponent := neutralComponent
	if caloriesBurned != nil {
		caloriesComponent = restBandScore(*caloriesBurned, caloriesBandLow, caloriesBandHigh)
	}
	return 0.5*stepsComponent + 0.5*caloriesComponent
}

// restBandScore interpolates 100 down to 50 across [low, high].
func restBandScore(v, low, high float64) float64 {
	switch {
	case v < low:
		return 100
	case v > high:
		return 50
	default:
		return 100 - (v-low)/(high-low)*50
	}
}

// ReadinessScore combines recovery, sleep, and strain into a 0-100
// training readiness score, with an optional self-reported energy term
// (1-10 scale) added only when supplied.
func ReadinessScore(recovery, sleep, strain, subjectiveEnergy *float64) *int {
	if recovery == nil && sleep == nil && strain == nil {
		return nil
	}

	recoveryComponent := neutralComponent
	if recovery != nil {
		recoveryComponent = *recovery
	}
	sleepComponent := neutralComponent
	if sleep != nil {
		sleepComponent = *sleep
	}
	strainComponent := 100.0
	if strain != nil {
		strainComponent = math.Max(0, 100-*strain*5)
	}

	total := 0.4*recoveryComponent + 0.3*sleepComponent + 0.2*strainComponent
	if subjectiveEnergy != nil {
		total += 0.1 * (*subjectiveEnergy / 10 * 100)
	}
	return intPtr(roundInt(clamp(total, 0, 100)))
}

// StressScore starts at a neutral 50 and shifts by banded deltas for each
// biomarker that is present. Returns nil when no biomarker is available.
func StressScore(restingHR, hrv, sleepScore, recoveryScore *float64) *int {
	if restingHR == nil && hrv == nil && sleepScore == nil && recoveryScore == nil {
		return nil
	}

	score := 50.0
	if hrv != nil {
		switch {
		case *hrv > 50:
			score -= 20
		case *hrv >= 40:
			score -= 10
		case *hrv < 25:
			score += 20
		case *hrv < 35:
			score += 10
		}
	}
	if restingHR != nil {
		switch {
		case *restingHR > 75:
			score += 15
		case *restingHR > 65:
			score += 5
		case *restingHR < 55:
			score -= 10
		}
	}
	if sleepScore != nil {
		switch {
		case *sleepScore >= 85:
			score -= 15
		case *sleepScore < 50:
			score += 15
		case *sleepScore < 65:
			score += 5
		}
	}
	if recoveryScore != nil {
		switch {
		case *recoveryScore >= 80:
			score -= 15
		case *recoveryScore < 40:
			score += 15
		case *recoveryScore < 60:
			score += 5
		}
	}
	return intPtr(roundInt(clamp(score, 0, 100)))
}
