package history

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	dbpkg "github.com/cmorrow/flexfield/pkg/db"
	"github.com/urfave/cli/v2"
)

// ListAction prints the most recent analysis runs as a table.
func ListAction(c *cli.Context) error {
	database, err := dbpkg.Open()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	limit := c.Int("limit")
	runs, err := database.ListRuns(limit)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded")
		return nil
	}

	// Print table header
	fmt.Printf("%-6s %-20s %-12s %-30s %s\n",
		"ID", "Created", "Size", "Elements", "File")
	fmt.Println(strings.Repeat("-", 110))

	// Print each run
	for _, r := range runs {
		fmt.Printf("%-6d %-20s %-12d %-30s %s\n",
			r.RunID,
			r.CreatedAt.Format("2006-01-02 15:04:05"),
			r.FileSizeBytes,
			r.ElementSpec,
			r.FilePath,
		)
	}

	fmt.Printf("\nTotal: %d runs\n", len(runs))
	fmt.Printf("\nTip: Use 'flexfield history show <id>' to see details\n")

	return nil
}

// ShowAction prints one run's stored summary: the run header, the per-element
// bucket counts, and the per-field table. With no argument it shows the
// latest run.
func ShowAction(c *cli.Context) error {
	database, err := dbpkg.Open()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	runID, err := resolveRunID(c, database)
	if err != nil {
		return err
	}

	run, err := database.GetRunByID(runID)
	if err != nil {
		return err
	}

	elements, err := database.GetRunElements(runID)
	if err != nil {
		return err
	}

	fields, err := database.GetRunFields(runID)
	if err != nil {
		return err
	}

	renderRun(os.Stdout, run, elements, fields)
	return nil
}

// renderRun prints one run's header, per-element bucket counts, and per-field
// table. Field fractions use the element's occurrence count as denominator so
// they read the same as the original analyze report.
func renderRun(w io.Writer, run *dbpkg.Run, elements []dbpkg.RunElement, fields []dbpkg.RunField) {
	fmt.Fprintf(w, "Run %d\n", run.RunID)
	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintf(w, "Created:   %s\n", run.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "File:      %s\n", run.FilePath)
	fmt.Fprintf(w, "Size:      %d bytes\n", run.FileSizeBytes)
	fmt.Fprintf(w, "Hash:      %s\n", run.FileHash)
	fmt.Fprintf(w, "Elements:  %s\n", run.ElementSpec)

	// Per-element bucket counts
	fmt.Fprintf(w, "\nElements (%d):\n", len(elements))
	fmt.Fprintln(w, strings.Repeat("-", 60))
	fmt.Fprintf(w, "%-24s %-12s %-8s %-10s %s\n",
		"Type", "Occurrences", "Always", "Sometimes", "Rarely")
	occurrences := make(map[string]int, len(elements))
	for _, e := range elements {
		occurrences[e.ElementType] = e.Occurrences
		fmt.Fprintf(w, "%-24s %-12d %-8d %-10d %d\n",
			e.ElementType, e.Occurrences, e.AlwaysCount, e.SometimesCount, e.RarelyCount)
	}

	// Per-field stats, grouped by element type
	if len(fields) > 0 {
		fmt.Fprintf(w, "\nFields (%d):\n", len(fields))
		fmt.Fprintln(w, strings.Repeat("-", 60))
		currentType := ""
		for _, f := range fields {
			if f.ElementType != currentType {
				currentType = f.ElementType
				fmt.Fprintf(w, "\n%s:\n", currentType)
			}
			fmt.Fprintf(w, "  %-40s %5.1f%%  (%d/%d)\n",
				f.Field, f.NonEmptyPct, f.NonEmpty, occurrences[f.ElementType])
		}
	}
}

// resolveRunID returns the run id argument, or the latest run when omitted.
func resolveRunID(c *cli.Context, database *dbpkg.DB) (int64, error) {
	if c.NArg() == 0 {
		return database.LatestRunID()
	}

	arg := c.Args().First()
	runID, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid run id: %s", arg)
	}
	return runID, nil
}
