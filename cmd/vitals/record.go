// ABOUTME: CLI commands for daily biometric records.
// ABOUTME: Handles add (field=value pairs), show with fallbacks, and list.
package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/vitals/internal/datalock"
	"github.com/harperreed/vitals/internal/models"
	"github.com/harperreed/vitals/internal/timeseries"
	"github.com/spf13/cobra"
)

var (
	recordDate  string
	showDate    string
	listLimit   int
	showAll     bool
	showMetrics []string
)

var recordCmd = &cobra.Command{
	Use:     "record",
	Aliases: []string{"r"},
	Short:   "Manage daily biometric records",
}

var recordAddCmd = &cobra.Command{
	Use:     "add <field>=<value> [<field>=<value> ...]",
	Aliases: []string{"a"},
	Short:   "Add metric values to a day's record",
	Long: `Add metric values to a day's record. Values merge into any existing
record for the same date; fields you don't mention keep their values.

Examples:
  vitals record add hrv=45 resting_hr=55
  vitals record add weight=82.5 --date 2025-01-10
  vitals record add sleep_duration=465 deep_sleep=95 rem_sleep=110`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := resolveDate(recordDate)
		if err != nil {
			return err
		}

		values, err := parseFieldValues(args)
		if err != nil {
			return err
		}

		r := models.NewDailyRecord(date)
		for f, v := range values {
			r.SetValue(f, models.Float(v))
		}

		if err := repo.SaveDailyRecord(r); err != nil {
			if errors.Is(err, datalock.ErrDateLocked) {
				return fmt.Errorf("date %s is protected by the data lock (see 'vitals lock status')", date)
			}
			return fmt.Errorf("failed to save record: %w", err)
		}

		color.Green("✓ Recorded %d value(s) for %s", len(values), date)
		faint := color.New(color.Faint)
		for _, f := range models.AllFields {
			if v, ok := values[f]; ok {
				fmt.Printf("  %s %.2f %s\n", faint.Sprint(padRight(string(f), 18)), v, models.FieldUnits[f])
			}
		}
		return nil
	},
}

var recordShowCmd = &cobra.Command{
	Use:     "show",
	Aliases: []string{"s"},
	Short:   "Show a day's values, falling back to prior days per field",
	Long: `Show metric values for a date. Fields missing on that date fall back to
the most recent earlier record that has them, independently per field.
Fallback values are marked with the date they came from.

Examples:
  vitals record show
  vitals record show --date 2025-01-10
  vitals record show -m weight -m hrv
  vitals record show --all`,
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := resolveDate(showDate)
		if err != nil {
			return err
		}

		fields := models.AllFields
		if len(showMetrics) > 0 {
			fields = make([]models.Field, 0, len(showMetrics))
			for _, name := range showMetrics {
				if !models.IsValidField(name) {
					return fmt.Errorf("unknown field: %s", name)
				}
				fields = append(fields, models.Field(name))
			}
		}

		records, err := repo.ListDailyRecords(0)
		if err != nil {
			return fmt.Errorf("failed to list records: %w", err)
		}

		resolutions := timeseries.ResolveFields(fields, date, records)

		fmt.Printf("%s\n\n", color.New(color.Bold).Sprintf("Values for %s", date))
		faint := color.New(color.Faint)
		shown := 0
		for _, res := range resolutions {
			if res.Value == nil {
				if showAll {
					fmt.Printf("  %s %s\n", padRight(string(res.Field), 18), faint.Sprint("no data"))
				}
				continue
			}
			origin := ""
			if res.IsFallback {
				origin = faint.Sprintf("  (from %s)", res.FallbackDate)
			}
			fmt.Printf("  %s %8.2f %s%s\n",
				padRight(string(res.Field), 18), *res.Value, models.FieldUnits[res.Field], origin)
			shown++
		}
		if shown == 0 && !showAll {
			fmt.Println("  No data.")
		}
		return nil
	},
}

var recordListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "List recent daily records",
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := repo.ListDailyRecords(listLimit)
		if err != nil {
			return fmt.Errorf("failed to list records: %w", err)
		}
		if len(records) == 0 {
			fmt.Println("No records found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, r := range records {
			fmt.Printf("%s  %s\n", r.Date, faint.Sprintf("%d field(s)", countFields(r)))
		}
		return nil
	},
}

// parseFieldValues parses field=value arguments into a field map.
func parseFieldValues(args []string) (map[models.Field]float64, error) {
	values := make(map[models.Field]float64, len(args))
	for _, arg := range args {
		name, raw, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, fmt.Errorf("expected <field>=<value>, got %q", arg)
		}
		if !models.IsValidField(name) {
			return nil, fmt.Errorf("unknown field: %s\nValid fields: %s", name, fieldNames())
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: %q", name, raw)
		}
		values[models.Field(name)] = v
	}
	return values, nil
}

// resolveDate parses a --date flag value, defaulting to today.
func resolveDate(s string) (models.Date, error) {
	if s == "" {
		return models.Today(), nil
	}
	date, err := models.ParseDate(s)
	if err != nil {
		return models.Date{}, err
	}
	return date, nil
}

// countFields counts the non-nil metric fields on a record.
func countFields(r *models.DailyRecord) int {
	n := 0
	for _, f := range models.AllFields {
		if r.Value(f) != nil {
			n++
		}
	}
	return n
}

func fieldNames() string {
	names := make([]string, len(models.AllFields))
	for i, f := range models.AllFields {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func init() {
	recordAddCmd.Flags().StringVar(&recordDate, "date", "", "date (YYYY-MM-DD), defaults to today")
	recordShowCmd.Flags().StringVar(&showDate, "date", "", "date (YYYY-MM-DD), defaults to today")
	recordShowCmd.Flags().StringArrayVarP(&showMetrics, "metric", "m", nil, "limit output to specific fields")
	recordShowCmd.Flags().BoolVar(&showAll, "all", false, "include fields with no data")
	recordListCmd.Flags().IntVarP(&listLimit, "limit", "n", 20, "max number of results")

	recordCmd.AddCommand(recordAddCmd)
	recordCmd.AddCommand(recordShowCmd)
	recordCmd.AddCommand(recordListCmd)
	rootCmd.AddCommand(recordCmd)
}
