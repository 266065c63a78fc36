package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/FranCalveyra/austral-map-v2/internal/export"
	"github.com/FranCalveyra/austral-map-v2/internal/transcript"
	"github.com/FranCalveyra/austral-map-v2/pkg/types"
)

var studentCmd = &cobra.Command{
	Use:   "student <file.xls|file.xlsx>",
	Short: "Convert a student's academic record into course JSON",
	Long: `Student reads the first sheet of an academic-record export, keeps the
courses listed under the year modules ("1er. Año" to "5to. Año"), and
classifies each one as APROBADA, DESAPROBADA, EN_FINAL, CURSANDO or
DISPONIBLE from its grade and origin cells.

Legacy .xls files that the native reader rejects are re-encoded with
LibreOffice (soffice or libreoffice on PATH, or --office-bin).`,
	Args: cobra.ExactArgs(1),
	RunE: runStudent,
}

func runStudent(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	summary, _ := cmd.Flags().GetBool("summary")
	w := cmd.OutOrStdout()

	wb, err := openWorkbook(cmd.Context(), args[0], cfg.Office, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	sheet, err := wb.First()
	if err != nil {
		return err
	}

	tr := transcript.Parser{Logger: logger}.Parse(sheet.Rows)
	if err := export.Write(cfg.Student.Output, tr, types.OutputJSON); err != nil {
		return err
	}

	fmt.Fprintf(w, "Wrote %d courses for '%s' → %s\n", len(tr.Courses), tr.StudentName, cfg.Student.Output)
	if summary {
		printStatusSummary(w, tr)
	}
	return nil
}

var statusOrder = []types.Status{
	types.StatusAprobada,
	types.StatusEnFinal,
	types.StatusCursando,
	types.StatusDesaprobada,
	types.StatusDisponible,
}

// printStatusSummary prints a count of courses per status, skipping empty ones.
func printStatusSummary(w io.Writer, tr types.Transcript) {
	counts := make(map[types.Status]int)
	for _, c := range tr.Courses {
		counts[c.Status]++
	}

	var rows [][]string
	for _, s := range statusOrder {
		if counts[s] == 0 {
			continue
		}
		rows = append(rows, []string{string(s), strconv.Itoa(counts[s])})
	}
	rows = append(rows, []string{"TOTAL", strconv.Itoa(len(tr.Courses))})

	fmt.Fprintln(w, renderTable([]string{"Status", "Courses"}, rows, []columnAlignment{alignLeft, alignRight}))
}

func init() {
	studentCmd.Flags().StringP("output", "o", "output.json", "JSON file to write")
	studentCmd.Flags().Bool("summary", false, "print a per-status course count")

	mustBind("student.output", studentCmd.Flags().Lookup("output"))

	rootCmd.AddCommand(studentCmd)
}
