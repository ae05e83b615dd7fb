// ABOUTME: Tests for record and per-field resolution.
// ABOUTME: Covers exact match, nearest fallback, and never-look-forward.
package timeseries

import (
	"testing"
	"time"

	"github.com/harperreed/vitals/internal/models"
)

func day(d int) models.Date {
	return models.Date{Year: 2025, Month: time.January, Day: d}
}

func recordOn(d int) *models.DailyRecord {
	return models.NewDailyRecord(day(d))
}

func TestResolveExactMatch(t *testing.T) {
	records := []*models.DailyRecord{recordOn(8), recordOn(10), recordOn(12)}
	got := Resolve(day(10), records)
	if got == nil || !got.Date.Equal(day(10)) {
		t.Errorf("Resolve = %v, want record for day 10", got)
	}
}

func TestResolveNearest(t *testing.T) {
	records := []*models.DailyRecord{recordOn(5), recordOn(14)}
	got := Resolve(day(12), records)
	if got == nil || !got.Date.Equal(day(14)) {
		t.Errorf("Resolve = %v, want nearest record (day 14)", got)
	}
}

func TestResolveNearestTiePrefersPrior(t *testing.T) {
	records := []*models.DailyRecord{recordOn(8), recordOn(12)}
	got := Resolve(day(10), records)
	if got == nil || !got.Date.Equal(day(8)) {
		t.Errorf("Resolve tie = %v, want prior record (day 8)", got)
	}
}

func TestResolveEmptyHistory(t *testing.T) {
	if got := Resolve(day(10), nil); got != nil {
		t.Errorf("Resolve on empty history = %v, want nil", got)
	}
}

func TestResolveToleratesUnsortedAndDuplicates(t *testing.T) {
	older := recordOn(10)
	older.Weight = models.Float(80)
	newer := recordOn(10)
	newer.Weight = models.Float(81)

	// Unsorted, duplicate dates: last in caller order wins.
	records := []*models.DailyRecord{recordOn(12), older, recordOn(5), newer}
	got := Resolve(day(10), records)
	if got == nil || got.Weight == nil || *got.Weight != 81 {
		t.Errorf("Resolve duplicate dates = %v, want last-write (81)", got)
	}
}

func TestResolveFieldExact(t *testing.T) {
	r := recordOn(10)
	r.HRV = models.Float(44)
	res := ResolveField(models.FieldHRV, day(10), []*models.DailyRecord{r})

	if res.Value == nil || *res.Value != 44 {
		t.Errorf("Value = %v, want 44", res.Value)
	}
	if res.IsFallback {
		t.Error("exact match should not be flagged as fallback")
	}
}

func TestResolveFieldFallsBackToPriorDate(t *testing.T) {
	old := recordOn(6)
	old.Weight = models.Float(82)
	current := recordOn(10) // exists, but has no weight
	current.HRV = models.Float(44)

	res := ResolveField(models.FieldWeight, day(10), []*models.DailyRecord{old, current})
	if res.Value == nil || *res.Value != 82 {
		t.Errorf("Value = %v, want 82 from day 6", res.Value)
	}
	if !res.IsFallback || !res.FallbackDate.Equal(day(6)) {
		t.Errorf("fallback tag = %v/%v, want true/day 6", res.IsFallback, res.FallbackDate)
	}
}

func TestResolveFieldNeverLooksForward(t *testing.T) {
	future := recordOn(15)
	future.Weight = models.Float(82)

	res := ResolveField(models.FieldWeight, day(10), []*models.DailyRecord{future})
	if res.Value != nil {
		t.Errorf("Value = %v, want nil: fallback must not come from a later date", *res.Value)
	}
}

func TestResolveFieldPerFieldIndependence(t *testing.T) {
	weighIn := recordOn(4)
	weighIn.Weight = models.Float(82)
	hrvDay := recordOn(7)
	hrvDay.HRV = models.Float(44)
	current := recordOn(10)
	current.Steps = models.Float(9000)

	records := []*models.DailyRecord{weighIn, hrvDay, current}
	fields := []models.Field{models.FieldWeight, models.FieldHRV, models.FieldSteps}
	out := ResolveFields(fields, day(10), records)

	if !out[0].FallbackDate.Equal(day(4)) {
		t.Errorf("weight fallback date = %v, want day 4", out[0].FallbackDate)
	}
	if !out[1].FallbackDate.Equal(day(7)) {
		t.Errorf("hrv fallback date = %v, want day 7", out[1].FallbackDate)
	}
	if out[2].IsFallback {
		t.Error("steps resolved on the requested date should not be fallback")
	}
}

func TestResolveFieldDoesNotMutate(t *testing.T) {
	r := recordOn(10)
	r.HRV = models.Float(44)
	records := []*models.DailyRecord{r}

	res := ResolveField(models.FieldHRV, day(10), records)
	*res.Value = 999

	if *r.HRV != 44 {
		t.Errorf("resolution aliased the record: HRV = %v", *r.HRV)
	}
}
