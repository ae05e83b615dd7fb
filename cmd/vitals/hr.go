// ABOUTME: CLI command for manual heart rate entries.
// ABOUTME: Positive values override device-derived fields for the day.
package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/vitals/internal/datalock"
	"github.com/harperreed/vitals/internal/models"
	"github.com/spf13/cobra"
)

var (
	hrDate        string
	hrResting     float64
	hrMin         float64
	hrMax         float64
	hrAvgSleeping float64
	hrAvgAwake    float64
	hrHRV         float64
	hrCalories    float64
)

var hrCmd = &cobra.Command{
	Use:   "hr",
	Short: "Record manual heart rate values for a day",
	Long: `Record manually measured heart rate values. One entry exists per date;
repeated calls update it. Positive values override the matching
device-derived fields when scores are computed; zero means "not measured"
and leaves the device value alone.

Examples:
  vitals hr --resting 55 --hrv 48
  vitals hr --resting 55 --max 160 --avg-awake 80 --date 2025-01-10`,
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := resolveDate(hrDate)
		if err != nil {
			return err
		}

		if hrResting == 0 && hrMin == 0 && hrMax == 0 && hrAvgSleeping == 0 &&
			hrAvgAwake == 0 && hrHRV == 0 && hrCalories == 0 {
			return fmt.Errorf("no values provided; see 'vitals hr --help'")
		}

		e := models.NewManualHeartRateEntry(date)
		e.RestingHR = hrResting
		e.MinHR = hrMin
		e.MaxHR = hrMax
		e.AvgHRSleeping = hrAvgSleeping
		e.AvgHRAwake = hrAvgAwake
		e.HRV = hrHRV
		e.Calories = hrCalories

		if err := repo.SaveManualHeartRate(e); err != nil {
			if errors.Is(err, datalock.ErrDateLocked) {
				return fmt.Errorf("date %s is protected by the data lock (see 'vitals lock status')", date)
			}
			return fmt.Errorf("failed to save manual heart rate: %w", err)
		}

		color.Green("✓ Recorded manual heart rate for %s", date)
		faint := color.New(color.Faint)
		printHRValue(faint, "resting", hrResting, "bpm")
		printHRValue(faint, "min", hrMin, "bpm")
		printHRValue(faint, "max", hrMax, "bpm")
		printHRValue(faint, "avg sleeping", hrAvgSleeping, "bpm")
		printHRValue(faint, "avg awake", hrAvgAwake, "bpm")
		printHRValue(faint, "hrv", hrHRV, "ms")
		printHRValue(faint, "calories", hrCalories, "kcal")
		return nil
	},
}

func printHRValue(faint *color.Color, label string, v float64, unit string) {
	if v > 0 {
		fmt.Printf("  %s %.0f %s\n", faint.Sprint(padRight(label, 14)), v, unit)
	}
}

func init() {
	hrCmd.Flags().StringVar(&hrDate, "date", "", "date (YYYY-MM-DD), defaults to today")
	hrCmd.Flags().Float64Var(&hrResting, "resting", 0, "resting heart rate (bpm)")
	hrCmd.Flags().Float64Var(&hrMin, "min", 0, "minimum heart rate (bpm)")
	hrCmd.Flags().Float64Var(&hrMax, "max", 0, "maximum heart rate (bpm)")
	hrCmd.Flags().Float64Var(&hrAvgSleeping, "avg-sleeping", 0, "average sleeping heart rate (bpm)")
	hrCmd.Flags().Float64Var(&hrAvgAwake, "avg-awake", 0, "average awake heart rate (bpm)")
	hrCmd.Flags().Float64Var(&hrHRV, "hrv", 0, "heart rate variability (ms)")
	hrCmd.Flags().Float64Var(&hrCalories, "calories", 0, "calories burned (kcal)")
	rootCmd.AddCommand(hrCmd)
}
