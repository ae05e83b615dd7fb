// ABOUTME: CLI commands for the data lock.
// ABOUTME: Handles set, status, and off against the persisted lock state.
package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/vitals/internal/datalock"
	"github.com/harperreed/vitals/internal/models"
	"github.com/harperreed/vitals/internal/storage"
	"github.com/spf13/cobra"
)

var lockCmd = &cobra.Command{
	Use:   "lock",
	Short: "Protect historical records from edits",
	Long: `The data lock protects records on or before a boundary date from any
write: adds, imports, and manual heart rate entries all refuse protected
dates. While the lock is active its date can only move forward; disable
it first to move backward.`,
}

var lockSetCmd = &cobra.Command{
	Use:   "set <date>",
	Short: "Enable the lock at a boundary date",
	Long: `Enable the data lock. Records dated on or before <date> become
read-only. While the lock is active, a new date must be strictly later
than the current one.

Examples:
  vitals lock set 2025-01-15
  vitals lock set 2025-02-01    # Forward move, allowed
  vitals lock off               # Required before moving backward`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := models.ParseDate(args[0])
		if err != nil {
			return err
		}

		guard, err := loadGuard()
		if err != nil {
			return err
		}
		if err := guard.SetLock(date); err != nil {
			return err
		}
		if err := saveGuard(guard); err != nil {
			return err
		}

		count, err := protectedCount(guard)
		if err != nil {
			return err
		}
		color.Green("✓ Data lock set at %s", date)
		fmt.Printf("  %d record(s) protected\n", count)
		return nil
	},
}

var lockStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the lock state and protected record count",
	RunE: func(cmd *cobra.Command, args []string) error {
		guard, err := loadGuard()
		if err != nil {
			return err
		}

		if !guard.Locked() {
			fmt.Println("Data lock is disabled.")
			return nil
		}

		count, err := protectedCount(guard)
		if err != nil {
			return err
		}
		fmt.Printf("Data lock is %s\n", color.GreenString("active"))
		fmt.Printf("  Boundary:  %s\n", guard.LockDate())
		fmt.Printf("  Protected: %d record(s)\n", count)
		return nil
	},
}

var lockOffCmd = &cobra.Command{
	Use:   "off",
	Short: "Disable the lock",
	RunE: func(cmd *cobra.Command, args []string) error {
		guard, err := loadGuard()
		if err != nil {
			return err
		}
		if !guard.Locked() {
			fmt.Println("Data lock is already disabled.")
			return nil
		}

		guard.Unlock()
		if err := saveGuard(guard); err != nil {
			return err
		}
		color.Green("✓ Data lock disabled")
		return nil
	},
}

// loadGuard builds a Guard from the persisted lock state.
func loadGuard() (*datalock.Guard, error) {
	state, err := repo.GetLockState()
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return datalock.NewGuard(nil), nil
		}
		return nil, fmt.Errorf("failed to load lock state: %w", err)
	}
	return datalock.NewGuard(state), nil
}

func saveGuard(guard *datalock.Guard) error {
	state := guard.State()
	if err := repo.SaveLockState(&state); err != nil {
		return fmt.Errorf("failed to save lock state: %w", err)
	}
	return nil
}

func protectedCount(guard *datalock.Guard) (int, error) {
	records, err := repo.ListDailyRecords(0)
	if err != nil {
		return 0, fmt.Errorf("failed to list records: %w", err)
	}
	return guard.ProtectedCount(records), nil
}

func init() {
	lockCmd.AddCommand(lockSetCmd)
	lockCmd.AddCommand(lockStatusCmd)
	lockCmd.AddCommand(lockOffCmd)
	rootCmd.AddCommand(lockCmd)
}
