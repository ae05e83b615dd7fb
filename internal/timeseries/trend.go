// ABOUTME: Trend series construction with forward-fill imputation.
// ABOUTME: Classifies direction using a per-field polarity table.
package timeseries

import (
	"math"

	"github.com/harperreed/vitals/internal/models"
)

// Trend direction labels. Positive-polarity fields move between improving
// and declining; negative-polarity fields (where up is worse) between
// increasing and decreasing.
const (
	DirectionImproving  = "improving"
	DirectionDeclining  = "declining"
	DirectionIncreasing = "increasing"
	DirectionDecreasing = "decreasing"
	DirectionStable     = "stable"
)

// stableBandPct is the percent-change threshold below which a trend is
// reported as stable.
const stableBandPct = 0.5

// oldestSearchExtension is how many records beyond the nominal window the
// oldest-value lookup may scan before giving up, so sparse series don't
// produce false "no data" results.
const oldestSearchExtension = 30

// Standard trend windows in days.
const (
	WindowWeek    = 7
	WindowMonth   = 30
	WindowQuarter = 90
)

// fieldPolarity records whether a rising value is good (true) or bad
// (false) per field. Polarity is declared, never inferred from data.
var fieldPolarity = map[models.Field]bool{
	models.FieldSleepScore:       true,
	models.FieldSleepDuration:    true,
	models.FieldDeepSleep:        true,
	models.FieldRemSleep:         true,
	models.FieldLightSleep:       true,
	models.FieldWakeEvents:       false,
	models.FieldRecoveryScore:    true,
	models.FieldStrainScore:      false,
	models.FieldRestingHR:        false,
	models.FieldHRV:              true,
	models.FieldWeight:           false,
	models.FieldBodyFat:          false,
	models.FieldMuscleMass:       true,
	models.FieldVisceralFat:      false,
	models.FieldSubcutaneousFat:  false,
	models.FieldBMR:              true,
	models.FieldMetabolicAge:     false,
	models.FieldSteps:            true,
	models.FieldDistance:         true,
	models.FieldCaloriesBurned:   true,
	models.FieldActiveCalories:   true,
	models.FieldVO2Max:           true,
	models.FieldBPSystolic:       false,
	models.FieldBPDiastolic:      false,
	models.FieldOxygenSaturation: true,
	models.FieldStressLevel:      false,
}

// TrendResult summarizes one field's movement over a window.
type TrendResult struct {
	Field         models.Field `json:"field"`
	OrderedValues []float64    `json:"ordered_values"`
	LatestValue   *float64     `json:"latest_value,omitempty"`
	OldestValue   *float64     `json:"oldest_value,omitempty"`
	Change        float64      `json:"change"`
	Direction     string       `json:"direction"`
	HasData       bool         `json:"has_data"`
}

// BuildTrend emits the field's values for the most recent windowSize
// records, chronologically ascending, forward-filling gaps from the last
// known value. Days before the first known value are omitted, so the
// result may be shorter than the window but never longer. Values are
// never interpolated backward or fabricated.
func BuildTrend(field models.Field, records []*models.DailyRecord, windowSize int) []float64 {
	ordered := normalize(records)
	if windowSize > 0 && len(ordered) > windowSize {
		ordered = ordered[len(ordered)-windowSize:]
	}

	var out []float64
	var last *float64
	for _, r := range ordered {
		if v := r.Value(field); v != nil {
			last = v
		}
		if last != nil {
			out = append(out, *last)
		}
	}
	return out
}

// ClassifyTrend compares the newest value against the oldest in the
// series. Fewer than two points means no classification (HasData false).
// Within ±0.5% the trend is stable; beyond it the direction label comes
// from the field's polarity.
func ClassifyTrend(field models.Field, values []float64) TrendResult {
	res := TrendResult{Field: field, OrderedValues: values, Direction: DirectionStable}
	if len(values) < 2 {
		return res
	}

	oldest := values[0]
	latest := values[len(values)-1]
	res.OldestValue = models.Float(oldest)
	res.LatestValue = models.Float(latest)
	res.Change = latest - oldest
	res.HasData = true
	res.Direction = direction(field, oldest, latest)
	return res
}

// direction maps a change to its polarity-aware label.
func direction(field models.Field, oldest, latest float64) string {
	change := latest - oldest
	pct := math.Inf(1)
	if oldest != 0 {
		pct = math.Abs(change) / math.Abs(oldest) * 100
	} else if change == 0 {
		pct = 0
	}
	if pct <= stableBandPct {
		return DirectionStable
	}

	higherIsBetter, ok := fieldPolarity[field]
	if !ok {
		higherIsBetter = true
	}
	if higherIsBetter {
		if change > 0 {
			return DirectionImproving
		}
		return DirectionDeclining
	}
	if change > 0 {
		return DirectionIncreasing
	}
	return DirectionDecreasing
}

// BuildTrendResult builds the trend series for a window and classifies
// it. When the window itself holds no valid value, the oldest-value
// lookup extends up to 30 records further back so a sparse series still
// reports its last known level (with HasData false, since a single
// borrowed point cannot be classified).
func BuildTrendResult(field models.Field, records []*models.DailyRecord, windowSize int) TrendResult {
	values := BuildTrend(field, records, windowSize)
	res := ClassifyTrend(field, values)
	if len(values) > 0 {
		if res.OldestValue == nil {
			// Single point: report it without classifying.
			res.OldestValue = models.Float(values[0])
			res.LatestValue = models.Float(values[len(values)-1])
		}
		return res
	}

	// Window empty: search beyond it for the most recent earlier value.
	ordered := normalize(records)
	start := len(ordered) - windowSize
	if windowSize <= 0 || start < 0 {
		start = 0
	}
	floor := start - oldestSearchExtension
	if floor < 0 {
		floor = 0
	}
	for i := start - 1; i >= floor; i-- {
		if v := ordered[i].Value(field); v != nil {
			res.OldestValue = models.Float(*v)
			res.LatestValue = models.Float(*v)
			break
		}
	}
	return res
}
