// ABOUTME: CLI command for exporting all vitals data.
// ABOUTME: Supports JSON, YAML, and Markdown to stdout or a file.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/harperreed/vitals/internal/storage"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all data",
	Long: `Export every record, manual heart rate entry, the profile, and the lock
state. JSON and YAML exports round-trip through 'vitals import'; the
Markdown export is a human-readable report.

Examples:
  vitals export > backup.json
  vitals export --format yaml -o backup.yaml
  vitals export --format markdown -o report.md`,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := repo.GetAllData()
		if err != nil {
			return fmt.Errorf("failed to export: %w", err)
		}

		var out []byte
		switch exportFormat {
		case "json":
			out, err = json.MarshalIndent(data, "", "  ")
		case "yaml":
			out, err = yaml.Marshal(data)
		case "markdown", "md":
			out = storage.RenderMarkdown(data)
		default:
			return fmt.Errorf("unknown format: %s (json, yaml, markdown)", exportFormat)
		}
		if err != nil {
			return fmt.Errorf("failed to encode export: %w", err)
		}

		if exportOutput == "" {
			fmt.Print(string(out))
			return nil
		}
		if err := os.WriteFile(exportOutput, out, 0600); err != nil {
			return fmt.Errorf("failed to write %s: %w", exportOutput, err)
		}
		color.Green("✓ Exported %d record(s) to %s", len(data.Records), exportOutput)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "export format (json, yaml, markdown)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default stdout)")
	rootCmd.AddCommand(exportCmd)
}
