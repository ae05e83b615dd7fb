// ABOUTME: Record and per-field resolution against sparse daily history.
// ABOUTME: Exact-date match first, then most-recent-prior fallback per field.
package timeseries

import (
	"sort"

	"github.com/harperreed/vitals/internal/models"
)

// FieldResolution is the result of resolving one field for one date.
// IsFallback marks a value borrowed from an earlier day; FallbackDate says
// which one. Two fields resolved for the same view may come from two
// different historical dates.
type FieldResolution struct {
	Field        models.Field `json:"field"`
	Value        *float64     `json:"value,omitempty"`
	IsFallback   bool         `json:"is_fallback"`
	FallbackDate models.Date  `json:"fallback_date,omitzero"`
}

// normalize returns records sorted ascending by date with duplicate dates
// collapsed last-write-wins in the caller's ordering. The input slice and
// its records are never mutated.
func normalize(records []*models.DailyRecord) []*models.DailyRecord {
	byDate := make(map[models.Date]*models.DailyRecord, len(records))
	for _, r := range records {
		if r == nil {
			continue
		}
		byDate[r.Date] = r
	}
	out := make([]*models.DailyRecord, 0, len(byDate))
	for _, r := range byDate {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

// Resolve returns the record for the requested date, or the
// chronologically nearest record when none exists for that date. Ties
// between an earlier and a later record go to the earlier one, keeping
// the bias consistent with per-field fallback. Returns nil for an empty
// history. Never mutates its inputs.
func Resolve(date models.Date, records []*models.DailyRecord) *models.DailyRecord {
	ordered := normalize(records)
	if len(ordered) == 0 {
		return nil
	}

	var best *models.DailyRecord
	bestDist := 0
	for _, r := range ordered {
		if r.Date.Equal(date) {
			return r
		}
		dist := r.Date.DaysBetween(date)
		if dist < 0 {
			dist = -dist
		}
		if best == nil || dist < bestDist {
			best = r
			bestDist = dist
		}
	}
	return best
}

// ResolveField resolves one field for a date: the exact-date value when
// present, otherwise the most recent value on or before the date. The
// fallback never comes from a date after the requested one.
func ResolveField(field models.Field, date models.Date, records []*models.DailyRecord) FieldResolution {
	res := FieldResolution{Field: field}
	ordered := normalize(records)

	// Scan newest-first among records not after the requested date.
	for i := len(ordered) - 1; i >= 0; i-- {
		r := ordered[i]
		if r.Date.After(date) {
			continue
		}
		v := r.Value(field)
		if v == nil {
			continue
		}
		res.Value = models.Float(*v)
		if !r.Date.Equal(date) {
			res.IsFallback = true
			res.FallbackDate = r.Date
		}
		return res
	}
	return res
}

// ResolveFields resolves several fields at once for the same date.
func ResolveFields(fields []models.Field, date models.Date, records []*models.DailyRecord) []FieldResolution {
	out := make([]FieldResolution, 0, len(fields))
	for _, f := range fields {
		out = append(out, ResolveField(f, date, records))
	}
	return out
}
