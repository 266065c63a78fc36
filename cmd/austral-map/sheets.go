package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/FranCalveyra/austral-map-v2/internal/export"
	"github.com/FranCalveyra/austral-map-v2/internal/records"
	"github.com/FranCalveyra/austral-map-v2/pkg/types"
)

var sheetsCmd = &cobra.Command{
	Use:   "sheets <workbook.xlsx>",
	Short: "Dump every sheet as a JSON array of records",
	Long: `Sheets writes one JSON file per sheet. The first row supplies the keys;
every following non-blank row becomes an object with numbers typed and empty
cells as null. No plan-specific interpretation is applied.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSheets,
}

func runSheets(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	input := cfg.Sheets.Input
	if len(args) == 1 {
		input = args[0]
	}
	w := cmd.OutOrStdout()

	wb, err := openWorkbook(cmd.Context(), input, cfg.Office, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	for _, sheet := range wb.Sheets {
		recs := records.FromSheet(sheet)
		path := filepath.Join(cfg.Sheets.OutputDir, export.FileName(sheet.Name, types.OutputJSON))
		if err := export.Write(path, recs, types.OutputJSON); err != nil {
			return err
		}
		fmt.Fprintf(w, "Generado: %s (%d filas)\n", path, len(recs))
	}
	return nil
}

func init() {
	sheetsCmd.Flags().String("input", defaultPlanWorkbook, "workbook used when no argument is given")
	sheetsCmd.Flags().String("out-dir", "docs/planes_json", "directory for the generated files")

	mustBind("sheets.input", sheetsCmd.Flags().Lookup("input"))
	mustBind("sheets.output_dir", sheetsCmd.Flags().Lookup("out-dir"))

	rootCmd.AddCommand(sheetsCmd)
}
