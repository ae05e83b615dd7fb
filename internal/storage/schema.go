// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: Tables for daily records, manual heart rate, profile, lock state.
package storage

import "strings"

// metricColumns builds the comma-joined list of nullable metric columns,
// in models.AllFields order. Queries and scans share this ordering.
func metricColumns() string {
	return strings.Join(metricColumnNames(), ", ")
}

// initSchema creates or updates the database schema.
func (d *DB) initSchema() error {
	var cols strings.Builder
	for _, name := range metricColumnNames() {
		cols.WriteString("\t\t" + name + " REAL,\n")
	}

	schema := `
	CREATE TABLE IF NOT EXISTS daily_records (
		id TEXT PRIMARY KEY,
		date TEXT NOT NULL UNIQUE,
` + cols.String() + `		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS manual_heart_rate (
		id TEXT PRIMARY KEY,
		date TEXT NOT NULL UNIQUE,
		resting_hr REAL NOT NULL DEFAULT 0,
		min_hr REAL NOT NULL DEFAULT 0,
		max_hr REAL NOT NULL DEFAULT 0,
		avg_hr_sleeping REAL NOT NULL DEFAULT 0,
		avg_hr_awake REAL NOT NULL DEFAULT 0,
		hrv REAL NOT NULL DEFAULT 0,
		calories REAL NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS profile (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		data TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS lock_state (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		enabled INTEGER NOT NULL DEFAULT 0,
		lock_date TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_daily_records_date ON daily_records(date DESC);
	CREATE INDEX IF NOT EXISTS idx_manual_hr_date ON manual_heart_rate(date DESC);
	`

	_, err := d.db.Exec(schema)
	return err
}
