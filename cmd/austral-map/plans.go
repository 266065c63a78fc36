package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/FranCalveyra/austral-map-v2/internal/catalog"
	"github.com/FranCalveyra/austral-map-v2/internal/export"
	"github.com/FranCalveyra/austral-map-v2/internal/plan"
	"github.com/FranCalveyra/austral-map-v2/pkg/types"
)

// defaultPlanWorkbook is the workbook produced by the plan PDF extraction.
const defaultPlanWorkbook = "docs/planes_pdf/planes_parseados.xlsx"

var plansCmd = &cobra.Command{
	Use:   "plans [workbook.xlsx]",
	Short: "Convert every study-plan sheet into the course schema",
	Long: `Plans reads a workbook with one study plan per sheet and writes one file
per sheet into --out-dir, named after the sheet with spaces replaced by
underscores. Each course carries its year, semester, credits, its direct
prerequisites, and the courses that depend on it up to two levels deep.

Sheets without the code, course, correlatives and credits columns are
skipped. With --db the converted plans are also written to a SQLite catalog.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlans,
}

func runPlans(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	input := cfg.Plans.Input
	if len(args) == 1 {
		input = args[0]
	}
	summary, _ := cmd.Flags().GetBool("summary")
	w := cmd.OutOrStdout()

	format, err := export.ParseFormat(string(cfg.Plans.Format))
	if err != nil {
		return err
	}

	wb, err := openWorkbook(cmd.Context(), input, cfg.Office, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	var store *catalog.Store
	if cfg.Plans.DB != "" {
		store, err = catalog.Open(cfg.Plans.DB)
		if err != nil {
			return err
		}
		defer store.Close()
	}

	results := plan.Parser{Logger: logger}.ConvertWorkbook(wb)
	var rows [][]string
	written := 0
	for _, r := range results {
		fmt.Fprintf(w, "Procesando hoja: %s\n", r.Sheet)
		if r.Err != nil {
			fmt.Fprintf(w, "  omitida: %v\n", r.Err)
			rows = append(rows, []string{r.Sheet, "-", "skipped"})
			continue
		}

		path := filepath.Join(cfg.Plans.OutputDir, export.FileName(r.Sheet, format))
		if err := export.Write(path, r.Courses, format); err != nil {
			return err
		}
		fmt.Fprintf(w, "Generado: %s\n", path)

		if store != nil {
			if err := store.WritePlan(cmd.Context(), export.PlanName(path), r.Courses); err != nil {
				return fmt.Errorf("writing %s to catalog: %w", r.Sheet, err)
			}
		}
		rows = append(rows, []string{r.Sheet, strconv.Itoa(len(r.Courses)), path})
		written++
	}

	if summary {
		printPlanSummary(w, rows)
	}
	if written == 0 && len(results) > 0 {
		return fmt.Errorf("no sheet in %s could be converted", input)
	}
	return nil
}

func printPlanSummary(w io.Writer, rows [][]string) {
	fmt.Fprintln(w, renderTable(
		[]string{"Sheet", "Courses", "Output"},
		rows,
		[]columnAlignment{alignLeft, alignRight, alignLeft},
	))
}

func init() {
	plansCmd.Flags().String("input", defaultPlanWorkbook, "plan workbook used when no argument is given")
	plansCmd.Flags().String("out-dir", "docs/planes_json", "directory for the generated plan files")
	plansCmd.Flags().String("format", string(types.OutputJSON), "output format: json or yaml")
	plansCmd.Flags().String("db", "", "also write the plans to this SQLite catalog")
	plansCmd.Flags().Bool("summary", false, "print a per-sheet summary table")

	mustBind("plans.input", plansCmd.Flags().Lookup("input"))
	mustBind("plans.output_dir", plansCmd.Flags().Lookup("out-dir"))
	mustBind("plans.format", plansCmd.Flags().Lookup("format"))
	mustBind("plans.db", plansCmd.Flags().Lookup("db"))

	rootCmd.AddCommand(plansCmd)
}
