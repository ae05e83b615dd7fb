// ABOUTME: Root Cobra command for vitals CLI.
// ABOUTME: Handles storage lifecycle via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/harperreed/vitals/internal/config"
	"github.com/harperreed/vitals/internal/storage"
	"github.com/spf13/cobra"
)

var (
	repo storage.Repository
)

var rootCmd = &cobra.Command{
	Use:   "vitals",
	Short: "Daily biometric tracker with computed wellness scores",
	Long: `Vitals tracks daily biometric records and derives wellness scores from them.

WHAT IT TRACKS:

  Sleep      sleep_duration, deep_sleep, rem_sleep, light_sleep, wake_events
  Heart      resting_hr, hrv, bp_systolic, bp_diastolic, oxygen_saturation
  Body       weight, body_fat, muscle_mass, visceral_fat, bmr
  Activity   steps, distance, calories_burned, active_calories, vo2_max

WHAT IT COMPUTES:

  Sleep, recovery, strain, readiness, activity, and stress scores plus two
  metabolic age estimates, derived from each day's record. Recovery falls
  back to a sleep-based proxy when no HRV reading exists.

QUICK START:

  $ vitals record add hrv=45 weight=82.5     # Log today's readings
  $ vitals score                             # Today's computed scores
  $ vitals trend hrv --window 30             # 30-day HRV trend
  $ vitals record show --date 2025-01-10     # Values with fallbacks

DATA LOCK:

  Protect historical records from accidental edits. The lock date only
  moves forward while active.

  $ vitals lock set 2025-01-15    # Protect records on or before Jan 15
  $ vitals lock status            # Show protected record count
  $ vitals lock off               # Disable protection

MCP INTEGRATION:

  Run 'vitals mcp' to start the Model Context Protocol server for use with
  Claude Desktop or other MCP-compatible AI assistants. Add to your Claude
  config:

  {
    "mcpServers": {
      "vitals": { "command": "vitals", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Records are stored in SQLite at ~/.local/share/vitals/vitals.db by
  default. Set "backend": "charm" in ~/.config/vitals/config.json to use
  the cloud-synced Charm KV store instead.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip storage init for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		repo, err = cfg.OpenStorage()
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if repo != nil {
			return repo.Close()
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
