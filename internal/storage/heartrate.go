// ABOUTME: Manual heart rate entry CRUD for SQLite storage.
// ABOUTME: One entry per date, upserted, protected by the data lock.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/vitals/internal/datalock"
	"github.com/harperreed/vitals/internal/models"
)

// SaveManualHeartRate upserts the entry for its date. Entries for
// lock-protected dates are rejected.
func (d *DB) SaveManualHeartRate(e *models.ManualHeartRateEntry) error {
	guard, err := guardFor(d)
	if err != nil {
		return fmt.Errorf("save manual heart rate: %w", err)
	}
	if guard.IsProtected(e.Date) {
		return fmt.Errorf("save manual heart rate %s: %w", e.Date, datalock.ErrDateLocked)
	}

	if e.ID == (uuid.UUID{}) {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	e.UpdatedAt = time.Now()

	query := `
		INSERT OR REPLACE INTO manual_heart_rate
			(id, date, resting_hr, min_hr, max_hr, avg_hr_sleeping, avg_hr_awake, hrv, calories, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = d.db.Exec(query,
		e.ID.String(), e.Date.String(),
		e.RestingHR, e.MinHR, e.MaxHR, e.AvgHRSleeping, e.AvgHRAwake, e.HRV, e.Calories,
		e.CreatedAt.Format(time.RFC3339), e.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("save manual heart rate: %w", err)
	}
	return nil
}

// GetManualHeartRate retrieves the entry for an exact date.
func (d *DB) GetManualHeartRate(date models.Date) (*models.ManualHeartRateEntry, error) {
	query := `
		SELECT id, date, resting_hr, min_hr, max_hr, avg_hr_sleeping, avg_hr_awake, hrv, calories, created_at, updated_at
		FROM manual_heart_rate
		WHERE date = ?
	`
	var e models.ManualHeartRateEntry
	var idStr, dateStr, createdAt, updatedAt string

	err := d.db.QueryRow(query, date.String()).Scan(
		&idStr, &dateStr,
		&e.RestingHR, &e.MinHR, &e.MaxHR, &e.AvgHRSleeping, &e.AvgHRAwake, &e.HRV, &e.Calories,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("manual heart rate %s: %w", date, ErrNotFound)
		}
		return nil, fmt.Errorf("get manual heart rate: %w", err)
	}

	e.ID, _ = uuid.Parse(idStr)
	e.Date, _ = models.ParseDate(dateStr)
	e.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	e.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return &e, nil
}

// listManualHeartRates retrieves all entries, most recent first. Used by
// the backup exporter.
func (d *DB) listManualHeartRates() ([]*models.ManualHeartRateEntry, error) {
	query := `
		SELECT id, date, resting_hr, min_hr, max_hr, avg_hr_sleeping, avg_hr_awake, hrv, calories, created_at, updated_at
		FROM manual_heart_rate
		ORDER BY date DESC
	`
	rows, err := d.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list manual heart rates: %w", err)
	}
	defer rows.Close()

	var entries []*models.ManualHeartRateEntry
	for rows.Next() {
		var e models.ManualHeartRateEntry
		var idStr, dateStr, createdAt, updatedAt string
		err := rows.Scan(
			&idStr, &dateStr,
			&e.RestingHR, &e.MinHR, &e.MaxHR, &e.AvgHRSleeping, &e.AvgHRAwake, &e.HRV, &e.Calories,
			&createdAt, &updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan manual heart rate: %w", err)
		}
		e.ID, _ = uuid.Parse(idStr)
		e.Date, _ = models.ParseDate(dateStr)
		e.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		e.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}
