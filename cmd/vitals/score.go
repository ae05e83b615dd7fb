// ABOUTME: CLI command for computed daily wellness scores.
// ABOUTME: Assembles scoring input from storage and prints each indicator.
package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/vitals/internal/models"
	"github.com/harperreed/vitals/internal/scoring"
	"github.com/harperreed/vitals/internal/storage"
	"github.com/harperreed/vitals/internal/timeseries"
	"github.com/spf13/cobra"
)

var (
	scoreDate   string
	scoreEnergy float64
)

var scoreCmd = &cobra.Command{
	Use:     "score",
	Aliases: []string{"sc"},
	Short:   "Show computed wellness scores for a day",
	Long: `Show the computed wellness scores for a date.

Sleep, recovery, strain, readiness, activity, and stress are derived from
the day's record. Device-reported scores take precedence over computed
ones. Recovery uses the HRV formula when an HRV reading exists and falls
back to a sleep-based proxy otherwise; the source is shown next to the
score. Two independent metabolic age estimates are reported: one from
resting physiology and one from biomarker bands.

Examples:
  vitals score
  vitals score --date 2025-01-10
  vitals score --energy 7`,
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := resolveDate(scoreDate)
		if err != nil {
			return err
		}

		scores, err := computeScores(date)
		if err != nil {
			return err
		}

		bold := color.New(color.Bold)
		faint := color.New(color.Faint)
		fmt.Printf("%s\n", bold.Sprintf("Scores for %s", date))
		if !scores.Date.IsZero() && !scores.Date.Equal(date) {
			fmt.Println(faint.Sprintf("no record for %s; scoring nearest record %s", date, scores.Date))
		}
		fmt.Println()

		printIntScore("Sleep", scores.Sleep, "")
		source := ""
		if scores.RecoverySource != "" {
			source = faint.Sprintf("  (%s)", scores.RecoverySource)
		}
		printIntScore("Recovery", scores.Recovery, source)
		if scores.Strain != nil {
			fmt.Printf("  %s %8.1f\n", padRight("Strain", 18), *scores.Strain)
		} else {
			fmt.Printf("  %s %s\n", padRight("Strain", 18), faint.Sprint("No Data"))
		}
		printIntScore("Readiness", scores.Readiness, "")
		level := ""
		if scores.ActivityLevel != "" {
			level = faint.Sprintf("  (%s)", scores.ActivityLevel)
		}
		printIntScore("Activity", scores.Activity, level)
		printIntScore("Stress", scores.Stress, "")

		fmt.Println()
		printIntScore("Metabolic age", scores.MetabolicAge, faint.Sprint("  (physiology)"))
		printIntScore("Biomarker age", scores.BiomarkerMetabolicAge, faint.Sprint("  (biomarker bands)"))

		return nil
	},
}

// computeScores gathers the day's inputs and runs the scoring engine.
// A date with no record of its own scores the chronologically nearest
// record instead; the resulting Date says which day was scored.
func computeScores(date models.Date) (*scoring.DailyScores, error) {
	history, err := repo.ListDailyRecords(0)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}

	record := timeseries.Resolve(date, history)
	var previous *models.DailyRecord
	scoredDate := date
	if record != nil {
		scoredDate = record.Date
		prevDate := record.Date.AddDays(-1)
		for _, r := range history {
			if r.Date.Equal(prevDate) {
				previous = r
				break
			}
		}
	}

	profile, err := repo.GetProfile()
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	manual, err := repo.GetManualHeartRate(scoredDate)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to load manual heart rate: %w", err)
	}

	var energy *float64
	if scoreEnergy > 0 {
		energy = models.Float(scoreEnergy)
	}

	return scoring.ComputeDailyScores(scoring.Input{
		Record:           record,
		Previous:         previous,
		History:          history,
		Profile:          profile,
		Manual:           manual,
		SubjectiveEnergy: energy,
	}), nil
}

func printIntScore(label string, v *int, suffix string) {
	if v != nil {
		fmt.Printf("  %s %8d%s\n", padRight(label, 18), *v, suffix)
		return
	}
	fmt.Printf("  %s %s\n", padRight(label, 18), color.New(color.Faint).Sprint("No Data"))
}

func init() {
	scoreCmd.Flags().StringVar(&scoreDate, "date", "", "date (YYYY-MM-DD), defaults to today")
	scoreCmd.Flags().Float64Var(&scoreEnergy, "energy", 0, "subjective energy (1-10) feeding readiness")
	rootCmd.AddCommand(scoreCmd)
}
