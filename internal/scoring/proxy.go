// ABOUTME: Fallback recovery estimation for days without HRV data.
// ABOUTME: Blends sleep, activity, and an RHR-vs-baseline adjustment.
package scoring

import "math"

// Proxy formula weights and defaults.
const (
	proxyWeightSleep    = 0.5
	proxyWeightActivity = 0.3
	proxyWeightRHR      = 0.2

	proxySleepWeightDuration = 0.6
	proxySleepWeightStages   = 0.4
	proxyStagesFallback      = 70.0

	defaultRHRAdjustment = 75.0
)

// ProxyRecoveryScore estimates recovery when HRV is unavailable but sleep
// duration is known. It is a substitute for RecoveryScore, never blended
// with it. rhrBaseline is the trailing 7-day resting HR average from the
// caller's history; pass nil when no history exists.
func ProxyRecoveryScore(sleepDuration, deepSleep, remSleep, steps, caloriesBurned, restingHR, rhrBaseline *float64) *int {
	if sleepDuration == nil {
		return nil
	}

	durationPart := math.Min(100, *sleepDuration/optimalSleepMinutes*100)
	stagesPart := proxyStagesFallback
	if deepSleep != nil && remSleep != nil && *sleepDuration > 0 {
		dur := *sleepDuration
		stagesPart = math.Min(100, (*deepSleep+*remSleep)/dur*100)
	}
	sleepComponent := proxySleepWeightDuration*durationPart + proxySleepWeightStages*stagesPart

	activityComponent := activityScoreValue(steps, caloriesBurned)

	rhrAdjustment := defaultRHRAdjustment
	if restingHR != nil && rhrBaseline != nil {
		diff := *restingHR - *rhrBaseline
		switch {
		case diff < 0:
			rhrAdjustment = 100
		case diff >= 10:
			rhrAdjustment = 50
		default:
			rhrAdjustment = 100 - diff*5
		}
	}

	total := proxyWeightSleep*sleepComponent +
		proxyWeightActivity*activityComponent +
		proxyWeightRHR*rhrAdjustment
	return intPtr(roundInt(clamp(total, 0, 100)))
}

// ActivityLevelStatus classifies an activity score into a training load
// label. High scores mean light days because the score rewards rest.
func ActivityLevelStatus(activityScore float64) string {
	switch {
	case activityScore >= 90:
		return "Light (rest day)"
	case activityScore >= 70:
		return "Moderate"
	case activityScore >= 50:
		return "High strain"
	default:
		return "Very intense"
	}
}
