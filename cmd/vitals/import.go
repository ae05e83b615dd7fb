// ABOUTME: CLI command for importing a vitals backup.
// ABOUTME: Goes through normal write paths, so the data lock applies.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/vitals/internal/storage"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a backup file",
	Long: `Import a JSON or YAML backup produced by 'vitals export'. The format is
detected from the file extension. Records merge into existing data through
the normal write paths, so the data lock applies: records on protected
dates are skipped and counted, not failed.

Examples:
  vitals import backup.json
  vitals import backup.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		var data storage.ExportData
		switch {
		case strings.HasSuffix(path, ".yaml"), strings.HasSuffix(path, ".yml"):
			err = yaml.Unmarshal(raw, &data)
		default:
			err = json.Unmarshal(raw, &data)
		}
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}

		result, err := repo.ImportData(&data)
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		color.Green("✓ Imported %d item(s)", result.Imported)
		if result.SkippedLocked > 0 {
			fmt.Printf("  %d item(s) skipped: protected by the data lock\n", result.SkippedLocked)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
