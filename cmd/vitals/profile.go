// ABOUTME: CLI commands for the user profile.
// ABOUTME: Profile values feed baselines and age-dependent formulas.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/vitals/internal/models"
	"github.com/spf13/cobra"
)

var (
	profileBirthDate   string
	profileTargetSleep float64
	profileBaselineRHR float64
	profileBaselineHRV float64
	profileMaxHR       float64
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage the user profile",
	Long: `The profile holds personal baselines used by the score formulas:
date of birth (for age-dependent estimates), target sleep duration,
resting HR and HRV baselines, and maximum heart rate. Unset values fall
back to population defaults.`,
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set profile values",
	Long: `Set one or more profile values. Only the flags you pass change.

Examples:
  vitals profile set --birth-date 1990-05-12
  vitals profile set --baseline-hrv 42 --baseline-rhr 54
  vitals profile set --target-sleep 7.5 --max-hr 188`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := repo.GetProfile()
		if err != nil {
			return fmt.Errorf("failed to load profile: %w", err)
		}

		changed := 0
		if profileBirthDate != "" {
			dob, err := models.ParseDate(profileBirthDate)
			if err != nil {
				return err
			}
			p.DateOfBirth = &dob
			changed++
		}
		if profileTargetSleep > 0 {
			p.TargetSleepHours = models.Float(profileTargetSleep)
			changed++
		}
		if profileBaselineRHR > 0 {
			p.BaselineRHR = models.Float(profileBaselineRHR)
			changed++
		}
		if profileBaselineHRV > 0 {
			p.BaselineHRV = models.Float(profileBaselineHRV)
			changed++
		}
		if profileMaxHR > 0 {
			p.MaxHeartRate = models.Float(profileMaxHR)
			changed++
		}
		if changed == 0 {
			return fmt.Errorf("no values provided; see 'vitals profile set --help'")
		}

		if err := repo.SaveProfile(p); err != nil {
			return fmt.Errorf("failed to save profile: %w", err)
		}
		color.Green("✓ Updated %d profile value(s)", changed)
		return nil
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := repo.GetProfile()
		if err != nil {
			return fmt.Errorf("failed to load profile: %w", err)
		}

		faint := color.New(color.Faint)
		printProfileDate("Birth date", p.DateOfBirth, faint)
		printProfileValue("Target sleep", p.TargetSleepHours, "h", faint)
		printProfileValue("Baseline RHR", p.BaselineRHR, "bpm", faint)
		printProfileValue("Baseline HRV", p.BaselineHRV, "ms", faint)
		printProfileValue("Max heart rate", p.MaxHeartRate, "bpm", faint)
		return nil
	},
}

func printProfileDate(label string, d *models.Date, faint *color.Color) {
	if d != nil {
		fmt.Printf("  %s %s\n", padRight(label, 16), d)
		return
	}
	fmt.Printf("  %s %s\n", padRight(label, 16), faint.Sprint("not set"))
}

func printProfileValue(label string, v *float64, unit string, faint *color.Color) {
	if v != nil {
		fmt.Printf("  %s %.1f %s\n", padRight(label, 16), *v, unit)
		return
	}
	fmt.Printf("  %s %s\n", padRight(label, 16), faint.Sprint("not set (default)"))
}

func init() {
	profileSetCmd.Flags().StringVar(&profileBirthDate, "birth-date", "", "date of birth (YYYY-MM-DD)")
	profileSetCmd.Flags().Float64Var(&profileTargetSleep, "target-sleep", 0, "target sleep (hours)")
	profileSetCmd.Flags().Float64Var(&profileBaselineRHR, "baseline-rhr", 0, "resting HR baseline (bpm)")
	profileSetCmd.Flags().Float64Var(&profileBaselineHRV, "baseline-hrv", 0, "HRV baseline (ms)")
	profileSetCmd.Flags().Float64Var(&profileMaxHR, "max-hr", 0, "maximum heart rate (bpm)")

	profileCmd.AddCommand(profileSetCmd)
	profileCmd.AddCommand(profileShowCmd)
	rootCmd.AddCommand(profileCmd)
}
