// ABOUTME: Repository interface for daily biometric storage.
// ABOUTME: Defines the contract shared by the SQLite and Charm KV backends.
package storage

import (
	"errors"

	"github.com/harperreed/vitals/internal/datalock"
	"github.com/harperreed/vitals/internal/models"
)

// ErrNotFound marks a missing record, entry, or singleton row.
var ErrNotFound = errors.New("not found")

// ImportResult reports the outcome of a bulk import. SkippedLocked counts
// records rejected by the data lock; the import itself still succeeds.
type ImportResult struct {
	Imported      int `json:"imported"`
	SkippedLocked int `json:"skipped_locked"`
}

// Repository defines the storage interface for daily biometric data.
// Every record write path consults the persisted data lock; writes to
// protected dates fail with datalock.ErrDateLocked and leave existing
// values untouched.
type Repository interface {
	// Daily record operations. Save merges into any existing record for
	// the same date (non-nil incoming fields win).
	SaveDailyRecord(r *models.DailyRecord) error
	GetDailyRecord(date models.Date) (*models.DailyRecord, error)
	ListDailyRecords(limit int) ([]*models.DailyRecord, error)

	// Manual heart rate operations, one entry per date.
	SaveManualHeartRate(e *models.ManualHeartRateEntry) error
	GetManualHeartRate(date models.Date) (*models.ManualHeartRateEntry, error)

	// Profile (singleton).
	GetProfile() (*models.UserProfile, error)
	SaveProfile(p *models.UserProfile) error

	// Data lock state (singleton).
	GetLockState() (*datalock.State, error)
	SaveLockState(s *datalock.State) error

	// Backup export/import.
	GetAllData() (*ExportData, error)
	ImportData(data *ExportData) (*ImportResult, error)

	// Lifecycle
	Close() error
}

// lockStateReader is the slice of Repository the guard loader needs.
type lockStateReader interface {
	GetLockState() (*datalock.State, error)
}

// guardFor loads the persisted lock state into a Guard. Shared by both
// backends so the write-path check stays identical.
func guardFor(repo lockStateReader) (*datalock.Guard, error) {
	state, err := repo.GetLockState()
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return datalock.NewGuard(nil), nil
		}
		return nil, err
	}
	return datalock.NewGuard(state), nil
}
