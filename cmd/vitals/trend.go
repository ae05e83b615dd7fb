// ABOUTME: CLI command for metric trends over a window.
// ABOUTME: Prints the forward-filled series and a direction label.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/vitals/internal/models"
	"github.com/harperreed/vitals/internal/timeseries"
	"github.com/spf13/cobra"
)

var trendWindow int

var trendCmd = &cobra.Command{
	Use:     "trend <field>",
	Aliases: []string{"t"},
	Short:   "Show a metric's trend over a window",
	Long: `Show the trend for a metric over the most recent records.

The series is chronologically ascending with gaps forward-filled from the
last known value. The direction compares newest against oldest: within
±0.5% the trend is stable; beyond that the label follows the metric's
polarity (an HRV rise is improving, a resting HR rise is increasing).

Examples:
  vitals trend hrv
  vitals trend weight --window 30
  vitals trend resting_hr --window 90`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		if !models.IsValidField(name) {
			return fmt.Errorf("unknown field: %s\nValid fields: %s", name, fieldNames())
		}
		field := models.Field(name)

		records, err := repo.ListDailyRecords(0)
		if err != nil {
			return fmt.Errorf("failed to list records: %w", err)
		}

		res := timeseries.BuildTrendResult(field, records, trendWindow)

		bold := color.New(color.Bold)
		faint := color.New(color.Faint)
		fmt.Printf("%s %s\n\n", bold.Sprintf("%s trend", field), faint.Sprintf("(last %d records)", trendWindow))

		if res.OldestValue == nil {
			fmt.Println("  No data.")
			return nil
		}

		for _, v := range res.OrderedValues {
			fmt.Printf("  %8.2f %s\n", v, models.FieldUnits[field])
		}
		if len(res.OrderedValues) == 0 {
			// Single value borrowed from before the window.
			fmt.Printf("  %8.2f %s %s\n", *res.LatestValue, models.FieldUnits[field],
				faint.Sprint("(last known, outside window)"))
		}

		fmt.Println()
		if !res.HasData {
			fmt.Printf("  %s\n", faint.Sprint("Not enough data to classify a direction."))
			return nil
		}
		fmt.Printf("  Change: %+.2f %s  Direction: %s\n",
			res.Change, models.FieldUnits[field], directionLabel(res.Direction))
		return nil
	},
}

// directionLabel colors the direction for terminal output.
func directionLabel(dir string) string {
	switch dir {
	case timeseries.DirectionImproving, timeseries.DirectionDecreasing:
		return color.GreenString(dir)
	case timeseries.DirectionDeclining, timeseries.DirectionIncreasing:
		return color.YellowString(dir)
	default:
		return dir
	}
}

func init() {
	trendCmd.Flags().IntVarP(&trendWindow, "window", "w", timeseries.WindowWeek, "window size in records (7, 30, 90, ...)")
	rootCmd.AddCommand(trendCmd)
}
