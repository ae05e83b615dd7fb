// ABOUTME: Profile and data lock state persistence for SQLite storage.
// ABOUTME: Both are singleton rows; the profile is stored as JSON.
package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/harperreed/vitals/internal/datalock"
	"github.com/harperreed/vitals/internal/models"
)

// GetProfile returns the stored user profile, or an empty profile when
// none has been saved yet.
func (d *DB) GetProfile() (*models.UserProfile, error) {
	var data string
	err := d.db.QueryRow("SELECT data FROM profile WHERE id = 1").Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &models.UserProfile{}, nil
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}

	var p models.UserProfile
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	return &p, nil
}

// SaveProfile stores the user profile.
func (d *DB) SaveProfile(p *models.UserProfile) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	_, err = d.db.Exec("INSERT OR REPLACE INTO profile (id, data) VALUES (1, ?)", string(data))
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

// GetLockState returns the persisted data lock state.
func (d *DB) GetLockState() (*datalock.State, error) {
	var enabled int
	var lockDate sql.NullString
	err := d.db.QueryRow("SELECT enabled, lock_date FROM lock_state WHERE id = 1").Scan(&enabled, &lockDate)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("lock state: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("get lock state: %w", err)
	}

	state := &datalock.State{Enabled: enabled != 0}
	if lockDate.Valid && lockDate.String != "" {
		date, err := models.ParseDate(lockDate.String)
		if err != nil {
			return nil, fmt.Errorf("decode lock date: %w", err)
		}
		state.LockDate = date
	}
	return state, nil
}

// SaveLockState persists the data lock state.
func (d *DB) SaveLockState(s *datalock.State) error {
	enabled := 0
	if s.Enabled {
		enabled = 1
	}
	var lockDate interface{}
	if !s.LockDate.IsZero() {
		lockDate = s.LockDate.String()
	}
	_, err := d.db.Exec("INSERT OR REPLACE INTO lock_state (id, enabled, lock_date) VALUES (1, ?, ?)",
		enabled, lockDate)
	if err != nil {
		return fmt.Errorf("save lock state: %w", err)
	}
	return nil
}
