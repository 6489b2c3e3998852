package cmd

import (
	"fmt"
	"os"

	"github.com/inovacc/rostr/internal/store"
	"github.com/spf13/cobra"
)

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the roster to CSV or XLSX",
	Long: `Write the full roster to a spreadsheet file. The default target is the
configured export file; --format xlsx swaps the extension unless --output
is given.

Examples:
  rostr export
  rostr export --format xlsx
  rostr export --format csv --output /tmp/roster.csv`,
	RunE: func(cmd *cobra.Command, args []string) error {
		roster, err := openRoster()
		if err != nil {
			return err
		}

		students := roster.Students()

		out := exportOutput
		if out == "" {
			out = defaultExportPath(cfg.ExportFile, exportFormat)
		}

		switch exportFormat {
		case "csv":
			err = store.ExportCSVFile(out, students)
		case "xlsx":
			err = store.ExportXLSXFile(out, students)
		default:
			return fmt.Errorf("unsupported format %q (use csv or xlsx)", exportFormat)
		}

		if err != nil {
			return fmt.Errorf("export %s: %w", exportFormat, err)
		}

		log.Info().Int("students", len(students)).Str("path", out).Msg("roster exported")
		_, _ = fmt.Fprintf(os.Stdout, "Exported %d students to %s\n", len(students), out)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "Export format: csv or xlsx")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (defaults to the configured export file)")
}
