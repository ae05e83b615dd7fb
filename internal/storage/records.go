// ABOUTME: Daily record CRUD for SQLite storage with lock enforcement.
// ABOUTME: Column order is driven by models.AllFields for queries and scans.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/vitals/internal/datalock"
	"github.com/harperreed/vitals/internal/models"
)

// metricColumnNames returns the metric column names in canonical order.
// Field names are already valid snake_case identifiers.
func metricColumnNames() []string {
	names := make([]string, len(models.AllFields))
	for i, f := range models.AllFields {
		names[i] = string(f)
	}
	return names
}

// SaveDailyRecord merges the record into any existing row for the same
// date. Non-nil incoming fields overwrite; existing values survive
// otherwise. Writes to dates protected by the data lock are rejected
// with datalock.ErrDateLocked.
func (d *DB) SaveDailyRecord(r *models.DailyRecord) error {
	guard, err := guardFor(d)
	if err != nil {
		return fmt.Errorf("save daily record: %w", err)
	}
	if guard.IsProtected(r.Date) {
		return fmt.Errorf("save daily record %s: %w", r.Date, datalock.ErrDateLocked)
	}

	existing, err := d.GetDailyRecord(r.Date)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("save daily record: %w", err)
	}

	row := r
	if existing != nil {
		existing.Merge(r)
		row = existing
	}
	if row.ID == (uuid.UUID{}) {
		row.ID = uuid.New()
	}
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now()
	}
	row.UpdatedAt = time.Now()

	cols := metricColumnNames()
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(cols)+4), ", ")
	query := fmt.Sprintf(`
		INSERT OR REPLACE INTO daily_records (id, date, %s, created_at, updated_at)
		VALUES (%s)
	`, metricColumns(), placeholders)

	args := make([]interface{}, 0, len(cols)+4)
	args = append(args, row.ID.String(), row.Date.String())
	for _, f := range models.AllFields {
		args = append(args, row.Value(f))
	}
	args = append(args, row.CreatedAt.Format(time.RFC3339), row.UpdatedAt.Format(time.RFC3339))

	if _, err := d.db.Exec(query, args...); err != nil {
		return fmt.Errorf("save daily record: %w", err)
	}
	return nil
}

// GetDailyRecord retrieves the record for an exact date.
func (d *DB) GetDailyRecord(date models.Date) (*models.DailyRecord, error) {
	query := fmt.Sprintf(`
		SELECT id, date, %s, created_at, updated_at
		FROM daily_records
		WHERE date = ?
	`, metricColumns())
	r, err := scanDailyRecord(d.db.QueryRow(query, date.String()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("daily record %s: %w", date, ErrNotFound)
		}
		return nil, err
	}
	return r, nil
}

// ListDailyRecords retrieves records sorted by date descending (most
// recent first). A limit of 0 returns everything.
func (d *DB) ListDailyRecords(limit int) ([]*models.DailyRecord, error) {
	query := fmt.Sprintf(`
		SELECT id, date, %s, created_at, updated_at
		FROM daily_records
		ORDER BY date DESC
	`, metricColumns())
	var args []interface{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list daily records: %w", err)
	}
	defer rows.Close()

	var records []*models.DailyRecord
	for rows.Next() {
		r, err := scanDailyRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// rowScanner abstracts *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanDailyRecord scans one row in canonical column order.
func scanDailyRecord(row rowScanner) (*models.DailyRecord, error) {
	var r models.DailyRecord
	var idStr, dateStr, createdAt, updatedAt string
	values := make([]sql.NullFloat64, len(models.AllFields))

	dest := make([]interface{}, 0, len(values)+4)
	dest = append(dest, &idStr, &dateStr)
	for i := range values {
		dest = append(dest, &values[i])
	}
	dest = append(dest, &createdAt, &updatedAt)

	if err := row.Scan(dest...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan daily record: %w", err)
	}

	r.ID, _ = uuid.Parse(idStr)
	r.Date, _ = models.ParseDate(dateStr)
	for i, f := range models.AllFields {
		if values[i].Valid {
			r.SetValue(f, models.Float(values[i].Float64))
		}
	}
	r.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	r.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)

	return &r, nil
}
