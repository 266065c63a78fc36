package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/FranCalveyra/austral-map-v2/internal/catalog"
	"github.com/FranCalveyra/austral-map-v2/internal/export"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog <plan.json>...",
	Short: "Load generated plan files into a SQLite catalog",
	Long: `Catalog reads plan files produced by the plans command (JSON or YAML)
and writes them to a SQLite database: one row per course and one row per
prerequisite relation. Each plan is named after its file and replaces any
earlier copy of the same plan.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCatalog,
}

func runCatalog(cmd *cobra.Command, args []string) error {
	dbPath, _ := cmd.Flags().GetString("db")
	w := cmd.OutOrStdout()
	ctx := cmd.Context()

	store, err := catalog.Open(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	var rows [][]string
	for _, path := range args {
		courses, err := export.ReadCourses(path)
		if err != nil {
			return err
		}
		name := export.PlanName(path)
		if err := store.WritePlan(ctx, name, courses); err != nil {
			return fmt.Errorf("writing %s: %w", name, err)
		}
		nc, nr, err := store.Counts(ctx, name)
		if err != nil {
			return err
		}
		rows = append(rows, []string{name, strconv.Itoa(nc), strconv.Itoa(nr)})
	}

	fmt.Fprintln(w, renderTable(
		[]string{"Plan", "Courses", "Requirements"},
		rows,
		[]columnAlignment{alignLeft, alignRight, alignRight},
	))
	fmt.Fprintf(w, "Catalog written to %s\n", dbPath)
	return nil
}

func init() {
	catalogCmd.Flags().String("db", "docs/planes.db", "SQLite catalog file")

	rootCmd.AddCommand(catalogCmd)
}
