// ABOUTME: Tests for the SQLite Repository implementation.
// ABOUTME: Covers record merge-upsert, lock enforcement, singletons.
package storage

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/harperreed/vitals/internal/datalock"
	"github.com/harperreed/vitals/internal/models"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "vitals.db")
	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	return db
}

func day(d int) models.Date {
	return models.Date{Year: 2025, Month: time.January, Day: d}
}

func TestSaveAndGetDailyRecord(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	r := models.NewDailyRecord(day(10))
	r.HRV = models.Float(44)
	r.Weight = models.Float(82.5)

	if err := db.SaveDailyRecord(r); err != nil {
		t.Fatalf("SaveDailyRecord failed: %v", err)
	}

	got, err := db.GetDailyRecord(day(10))
	if err != nil {
		t.Fatalf("GetDailyRecord failed: %v", err)
	}
	if got.HRV == nil || *got.HRV != 44 {
		t.Errorf("HRV = %v, want 44", got.HRV)
	}
	if got.Weight == nil || *got.Weight != 82.5 {
		t.Errorf("Weight = %v, want 82.5", got.Weight)
	}
	if got.Steps != nil {
		t.Errorf("Steps = %v, want nil", got.Steps)
	}
	if !got.Date.Equal(day(10)) {
		t.Errorf("Date = %v, want day 10", got.Date)
	}
}

func TestGetDailyRecordNotFound(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	_, err := db.GetDailyRecord(day(10))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestSaveDailyRecordMerges(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	first := models.NewDailyRecord(day(10))
	first.HRV = models.Float(44)
	if err := db.SaveDailyRecord(first); err != nil {
		t.Fatalf("first save failed: %v", err)
	}

	second := models.NewDailyRecord(day(10))
	second.Weight = models.Float(82.5)
	second.HRV = models.Float(46)
	if err := db.SaveDailyRecord(second); err != nil {
		t.Fatalf("second save failed: %v", err)
	}

	got, err := db.GetDailyRecord(day(10))
	if err != nil {
		t.Fatalf("GetDailyRecord failed: %v", err)
	}
	if *got.HRV != 46 {
		t.Errorf("HRV = %v, want updated 46", *got.HRV)
	}
	if got.Weight == nil || *got.Weight != 82.5 {
		t.Errorf("Weight = %v, want merged 82.5", got.Weight)
	}
}

func TestListDailyRecordsOrderAndLimit(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	for _, d := range []int{12, 10, 14} {
		r := models.NewDailyRecord(day(d))
		r.Steps = models.Float(float64(d) * 1000)
		if err := db.SaveDailyRecord(r); err != nil {
			t.Fatalf("SaveDailyRecord failed: %v", err)
		}
	}

	all, err := db.ListDailyRecords(0)
	if err != nil {
		t.Fatalf("ListDailyRecords failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("len = %d, want 3", len(all))
	}
	if !all[0].Date.Equal(day(14)) {
		t.Errorf("first = %v, want newest (day 14)", all[0].Date)
	}

	limited, err := db.ListDailyRecords(2)
	if err != nil {
		t.Fatalf("ListDailyRecords with limit failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("limited len = %d, want 2", len(limited))
	}
}

func TestDataLockRejectsProtectedWrites(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	original := models.NewDailyRecord(day(10))
	original.Weight = models.Float(82)
	if err := db.SaveDailyRecord(original); err != nil {
		t.Fatalf("SaveDailyRecord failed: %v", err)
	}

	if err := db.SaveLockState(&datalock.State{Enabled: true, LockDate: day(15)}); err != nil {
		t.Fatalf("SaveLockState failed: %v", err)
	}

	// Write to a protected date is rejected, existing values preserved
	update := models.NewDailyRecord(day(10))
	update.Weight = models.Float(70)
	err := db.SaveDailyRecord(update)
	if !errors.Is(err, datalock.ErrDateLocked) {
		t.Errorf("err = %v, want ErrDateLocked", err)
	}
	got, _ := db.GetDailyRecord(day(10))
	if *got.Weight != 82 {
		t.Errorf("Weight = %v, want original 82 preserved", *got.Weight)
	}

	// Write past the lock date proceeds
	future := models.NewDailyRecord(day(20))
	future.Weight = models.Float(81)
	if err := db.SaveDailyRecord(future); err != nil {
		t.Errorf("write to unprotected date failed: %v", err)
	}
}

func TestDataLockProtectsManualHeartRate(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if err := db.SaveLockState(&datalock.State{Enabled: true, LockDate: day(15)}); err != nil {
		t.Fatalf("SaveLockState failed: %v", err)
	}

	e := models.NewManualHeartRateEntry(day(10))
	e.RestingHR = 55
	if err := db.SaveManualHeartRate(e); !errors.Is(err, datalock.ErrDateLocked) {
		t.Errorf("err = %v, want ErrDateLocked", err)
	}

	later := models.NewManualHeartRateEntry(day(20))
	later.RestingHR = 55
	if err := db.SaveManualHeartRate(later); err != nil {
		t.Errorf("unprotected entry failed: %v", err)
	}
}

func TestManualHeartRateUpsert(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	e := models.NewManualHeartRateEntry(day(10))
	e.RestingHR = 58
	if err := db.SaveManualHeartRate(e); err != nil {
		t.Fatalf("SaveManualHeartRate failed: %v", err)
	}

	e2 := models.NewManualHeartRateEntry(day(10))
	e2.RestingHR = 56
	e2.HRV = 48
	if err := db.SaveManualHeartRate(e2); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	got, err := db.GetManualHeartRate(day(10))
	if err != nil {
		t.Fatalf("GetManualHeartRate failed: %v", err)
	}
	if got.RestingHR != 56 || got.HRV != 48 {
		t.Errorf("entry = %+v, want resting 56 hrv 48", got)
	}
}

func TestProfileRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	// Unset profile reads as empty
	p, err := db.GetProfile()
	if err != nil {
		t.Fatalf("GetProfile failed: %v", err)
	}
	if p.DateOfBirth != nil {
		t.Error("fresh profile should be empty")
	}

	dob := day(1)
	p = &models.UserProfile{
		DateOfBirth:  &dob,
		BaselineHRV:  models.Float(42),
		MaxHeartRate: models.Float(188),
	}
	if err := db.SaveProfile(p); err != nil {
		t.Fatalf("SaveProfile failed: %v", err)
	}

	got, err := db.GetProfile()
	if err != nil {
		t.Fatalf("GetProfile failed: %v", err)
	}
	if got.DateOfBirth == nil || !got.DateOfBirth.Equal(dob) {
		t.Errorf("DateOfBirth = %v, want %v", got.DateOfBirth, dob)
	}
	if got.BaselineHRV == nil || *got.BaselineHRV != 42 {
		t.Errorf("BaselineHRV = %v, want 42", got.BaselineHRV)
	}
}

func TestLockStateRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if _, err := db.GetLockState(); !errors.Is(err, ErrNotFound) {
		t.Errorf("fresh lock state err = %v, want ErrNotFound", err)
	}

	if err := db.SaveLockState(&datalock.State{Enabled: true, LockDate: day(15)}); err != nil {
		t.Fatalf("SaveLockState failed: %v", err)
	}

	got, err := db.GetLockState()
	if err != nil {
		t.Fatalf("GetLockState failed: %v", err)
	}
	if !got.Enabled || !got.LockDate.Equal(day(15)) {
		t.Errorf("lock state = %+v, want enabled at day 15", got)
	}
}
