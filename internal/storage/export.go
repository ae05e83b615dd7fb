// ABOUTME: Backup export and import for daily biometric data.
// ABOUTME: Supports JSON, YAML, and Markdown export formats.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/harperreed/vitals/internal/datalock"
	"github.com/harperreed/vitals/internal/models"
	"gopkg.in/yaml.v3"
)

// ExportData represents the full backup format for vitals data.
type ExportData struct {
	Version    string                         `json:"version" yaml:"version"`
	ExportedAt time.Time                      `json:"exported_at" yaml:"exported_at"`
	Tool       string                         `json:"tool" yaml:"tool"`
	Records    []*models.DailyRecord          `json:"records" yaml:"records"`
	HeartRate  []*models.ManualHeartRateEntry `json:"heart_rate,omitempty" yaml:"heart_rate,omitempty"`
	Profile    *models.UserProfile            `json:"profile,omitempty" yaml:"profile,omitempty"`
	Lock       *datalock.State                `json:"lock,omitempty" yaml:"lock,omitempty"`
}

// GetAllData retrieves everything for export.
func (d *DB) GetAllData() (*ExportData, error) {
	records, err := d.ListDailyRecords(0)
	if err != nil {
		return nil, fmt.Errorf("export records: %w", err)
	}
	entries, err := d.listManualHeartRates()
	if err != nil {
		return nil, fmt.Errorf("export heart rate: %w", err)
	}
	profile, err := d.GetProfile()
	if err != nil {
		return nil, fmt.Errorf("export profile: %w", err)
	}
	lock, err := d.GetLockState()
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("export lock state: %w", err)
	}

	return &ExportData{
		Version:    "1.0",
		ExportedAt: time.Now(),
		Tool:       "vitals",
		Records:    records,
		HeartRate:  entries,
		Profile:    profile,
		Lock:       lock,
	}, nil
}

// ImportData imports a backup through the repository's write paths, so
// the data lock applies. Records on protected dates are counted as
// skipped rather than failing the import.
func (d *DB) ImportData(data *ExportData) (*ImportResult, error) {
	return Import(d, data)
}

// Import is the backend-independent import routine. Every item goes
// through the repository's own write paths so lock enforcement and merge
// semantics apply regardless of backend.
func Import(repo Repository, data *ExportData) (*ImportResult, error) {
	result := &ImportResult{}

	for _, r := range data.Records {
		if r == nil {
			continue
		}
		err := repo.SaveDailyRecord(r)
		switch {
		case err == nil:
			result.Imported++
		case errors.Is(err, datalock.ErrDateLocked):
			result.SkippedLocked++
		default:
			return result, fmt.Errorf("import record %s: %w", r.Date, err)
		}
	}

	for _, e := range data.HeartRate {
		if e == nil {
			continue
		}
		err := repo.SaveManualHeartRate(e)
		switch {
		case err == nil:
			result.Imported++
		case errors.Is(err, datalock.ErrDateLocked):
			result.SkippedLocked++
		default:
			return result, fmt.Errorf("import heart rate %s: %w", e.Date, err)
		}
	}

	if data.Profile != nil {
		if err := repo.SaveProfile(data.Profile); err != nil {
			return result, fmt.Errorf("import profile: %w", err)
		}
	}

	// A backup's lock state is only restored onto an unlocked store;
	// overwriting an active lock could move it backward.
	if data.Lock != nil && data.Lock.Enabled {
		current, err := repo.GetLockState()
		if err != nil && !errors.Is(err, ErrNotFound) {
			return result, fmt.Errorf("import lock state: %w", err)
		}
		if current == nil || !current.Enabled {
			if err := repo.SaveLockState(data.Lock); err != nil {
				return result, fmt.Errorf("import lock state: %w", err)
			}
		}
	}

	return result, nil
}

// ExportJSON exports all data as JSON.
func (d *DB) ExportJSON() ([]byte, error) {
	data, err := d.GetAllData()
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(data, "", "  ")
}

// ExportYAML exports all data as YAML.
func (d *DB) ExportYAML() ([]byte, error) {
	data, err := d.GetAllData()
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(data)
}

// ExportMarkdown exports a human-readable report: one section per day,
// newest first, listing only the fields that day actually has.
func (d *DB) ExportMarkdown() ([]byte, error) {
	data, err := d.GetAllData()
	if err != nil {
		return nil, err
	}
	return RenderMarkdown(data), nil
}

// RenderMarkdown formats export data as a Markdown report.
func RenderMarkdown(data *ExportData) []byte {
	var b strings.Builder
	b.WriteString("# Vitals Export\n\n")
	b.WriteString(fmt.Sprintf("Exported: %s\n\n", data.ExportedAt.Format("2006-01-02 15:04")))

	records := make([]*models.DailyRecord, len(data.Records))
	copy(records, data.Records)
	sort.Slice(records, func(i, j int) bool {
		return records[i].Date.After(records[j].Date)
	})

	for _, r := range records {
		b.WriteString(fmt.Sprintf("## %s\n\n", r.Date))
		for _, f := range models.AllFields {
			if v := r.Value(f); v != nil {
				b.WriteString(fmt.Sprintf("- %s: %.2f %s\n", f, *v, models.FieldUnits[f]))
			}
		}
		b.WriteString("\n")
	}

	return []byte(b.String())
}
