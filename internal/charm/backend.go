// ABOUTME: Repository implementation backed by the Charm KV store.
// ABOUTME: Records are keyed by date; profile and lock state are singletons.
package charm

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/vitals/internal/datalock"
	"github.com/harperreed/vitals/internal/models"
	"github.com/harperreed/vitals/internal/storage"
)

// Store adapts a Charm KV client to the storage.Repository interface,
// giving vitals data the same cloud sync as the SQLite backend's local
// file would otherwise lack.
type Store struct {
	client *Client
}

var _ storage.Repository = (*Store)(nil)

// OpenStore opens the cloud-synced store using the global Charm client.
func OpenStore() (*Store, error) {
	c, err := GetClient()
	if err != nil {
		return nil, fmt.Errorf("open charm store: %w", err)
	}
	return &Store{client: c}, nil
}

// NewStore wraps an existing client. Used by tests.
func NewStore(c *Client) *Store {
	return &Store{client: c}
}

func (s *Store) Close() error {
	return s.client.Close()
}

func (s *Store) guard() (*datalock.Guard, error) {
	state, err := s.GetLockState()
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return datalock.NewGuard(nil), nil
		}
		return nil, err
	}
	return datalock.NewGuard(state), nil
}

// SaveDailyRecord merges the record into any existing record for the same
// date. Writes to lock-protected dates are rejected.
func (s *Store) SaveDailyRecord(r *models.DailyRecord) error {
	guard, err := s.guard()
	if err != nil {
		return fmt.Errorf("save daily record: %w", err)
	}
	if guard.IsProtected(r.Date) {
		return fmt.Errorf("save daily record %s: %w", r.Date, datalock.ErrDateLocked)
	}

	existing, err := s.GetDailyRecord(r.Date)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
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

	data, err := marshalJSON(row)
	if err != nil {
		return fmt.Errorf("marshal daily record: %w", err)
	}
	return s.client.set(recordPrefix+row.Date.String(), data)
}

// GetDailyRecord retrieves the record for an exact date.
func (s *Store) GetDailyRecord(date models.Date) (*models.DailyRecord, error) {
	data, err := s.client.get(recordPrefix + date.String())
	if err != nil {
		return nil, fmt.Errorf("get daily record: %w", err)
	}
	if data == nil {
		return nil, fmt.Errorf("daily record %s: %w", date, storage.ErrNotFound)
	}
	r, err := unmarshalJSON[models.DailyRecord](data)
	if err != nil {
		return nil, fmt.Errorf("unmarshal daily record: %w", err)
	}
	return r, nil
}

// ListDailyRecords retrieves records sorted by date descending. A limit of
// 0 returns everything.
func (s *Store) ListDailyRecords(limit int) ([]*models.DailyRecord, error) {
	allData, err := s.client.listByPrefix(recordPrefix)
	if err != nil {
		return nil, fmt.Errorf("list daily records: %w", err)
	}

	var records []*models.DailyRecord
	for _, data := range allData {
		r, err := unmarshalJSON[models.DailyRecord](data)
		if err != nil {
			continue // Skip invalid entries
		}
		records = append(records, r)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Date.After(records[j].Date)
	})

	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

// SaveManualHeartRate upserts the entry for its date, subject to the lock.
func (s *Store) SaveManualHeartRate(e *models.ManualHeartRateEntry) error {
	guard, err := s.guard()
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

	data, err := marshalJSON(e)
	if err != nil {
		return fmt.Errorf("marshal manual heart rate: %w", err)
	}
	return s.client.set(heartRatePrefix+e.Date.String(), data)
}

// GetManualHeartRate retrieves the entry for an exact date.
func (s *Store) GetManualHeartRate(date models.Date) (*models.ManualHeartRateEntry, error) {
	data, err := s.client.get(heartRatePrefix + date.String())
	if err != nil {
		return nil, fmt.Errorf("get manual heart rate: %w", err)
	}
	if data == nil {
		return nil, fmt.Errorf("manual heart rate %s: %w", date, storage.ErrNotFound)
	}
	e, err := unmarshalJSON[models.ManualHeartRateEntry](data)
	if err != nil {
		return nil, fmt.Errorf("unmarshal manual heart rate: %w", err)
	}
	return e, nil
}

// GetProfile returns the stored profile, or an empty one if unset.
func (s *Store) GetProfile() (*models.UserProfile, error) {
	data, err := s.client.get(profileKey)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if data == nil {
		return &models.UserProfile{}, nil
	}
	p, err := unmarshalJSON[models.UserProfile](data)
	if err != nil {
		return nil, fmt.Errorf("unmarshal profile: %w", err)
	}
	return p, nil
}

// SaveProfile stores the user profile.
func (s *Store) SaveProfile(p *models.UserProfile) error {
	data, err := marshalJSON(p)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	return s.client.set(profileKey, data)
}

// GetLockState returns the persisted data lock state.
func (s *Store) GetLockState() (*datalock.State, error) {
	data, err := s.client.get(lockStateKey)
	if err != nil {
		return nil, fmt.Errorf("get lock state: %w", err)
	}
	if data == nil {
		return nil, fmt.Errorf("lock state: %w", storage.ErrNotFound)
	}
	state, err := unmarshalJSON[datalock.State](data)
	if err != nil {
		return nil, fmt.Errorf("unmarshal lock state: %w", err)
	}
	return state, nil
}

// SaveLockState persists the data lock state.
func (s *Store) SaveLockState(state *datalock.State) error {
	data, err := marshalJSON(state)
	if err != nil {
		return fmt.Errorf("marshal lock state: %w", err)
	}
	return s.client.set(lockStateKey, data)
}

// GetAllData retrieves everything for export.
func (s *Store) GetAllData() (*storage.ExportData, error) {
	records, err := s.ListDailyRecords(0)
	if err != nil {
		return nil, fmt.Errorf("export records: %w", err)
	}

	hrData, err := s.client.listByPrefix(heartRatePrefix)
	if err != nil {
		return nil, fmt.Errorf("export heart rate: %w", err)
	}
	var entries []*models.ManualHeartRateEntry
	for _, data := range hrData {
		e, err := unmarshalJSON[models.ManualHeartRateEntry](data)
		if err != nil {
			continue
		}
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})

	profile, err := s.GetProfile()
	if err != nil {
		return nil, fmt.Errorf("export profile: %w", err)
	}
	lock, err := s.GetLockState()
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("export lock state: %w", err)
	}

	return &storage.ExportData{
		Version:    "1.0",
		ExportedAt: time.Now(),
		Tool:       "vitals",
		Records:    records,
		HeartRate:  entries,
		Profile:    profile,
		Lock:       lock,
	}, nil
}

// ImportData imports a backup through the store's write paths, so the
// data lock applies to cloud-synced data as well.
func (s *Store) ImportData(data *storage.ExportData) (*storage.ImportResult, error) {
	return storage.Import(s, data)
}
