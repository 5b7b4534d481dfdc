package analyze

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/cmorrow/flexfield/internal/common"
	"github.com/cmorrow/flexfield/models"
	"github.com/cmorrow/flexfield/pkg/db"
	"github.com/cmorrow/flexfield/pkg/extract"
	"github.com/cmorrow/flexfield/pkg/presence"
	"github.com/cmorrow/flexfield/pkg/report"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

// AnalyzeAction runs the field-presence report: read the input file once,
// then extract, aggregate, categorize, and print per element type. The run is
// recorded in the history database unless --no-history is set; history
// failures never block the report itself.
func AnalyzeAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	if c.NArg() == 0 {
		return fmt.Errorf("input file required\nUsage: flexfield analyze <file.xml>")
	}
	path := c.Args().First()

	elements, err := resolveElements(c)
	if err != nil {
		return err
	}

	// The one fatal failure mode: an unreadable input file.
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}
	doc := string(data)
	logger.Info("analyzing input", "file", path, "size_bytes", len(data), "elements", len(elements))

	reports := make([]report.Element, 0, len(elements))
	for _, elemType := range elements {
		occurrences := extract.Elements(doc, elemType)
		stats := presence.Analyze(occurrences)
		always, sometimes, rarely := presence.Categorize(stats)
		reports = append(reports, report.Build(elemType, len(occurrences), always, sometimes, rarely))
	}

	switch c.String("format") {
	case "", "text":
		fmt.Printf("Reading %s...\n", path)
		for _, e := range reports {
			report.RenderText(os.Stdout, e)
		}
	case "yaml":
		outputData, err := yaml.Marshal(reports)
		if err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		fmt.Print(string(outputData))
	default:
		return fmt.Errorf("unknown format: %s (use: text or yaml)", c.String("format"))
	}

	if !c.Bool("no-history") {
		if err := recordRun(path, data, elements, reports); err != nil {
			logger.Warn("failed to record run history", "error", err)
		}
	}

	return nil
}

// TagsAction surveys a file for self-closing elements of any tag name and
// prints the distinct names with occurrence counts.
func TagsAction(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("input file required\nUsage: flexfield tags <file.xml>")
	}
	path := c.Args().First()

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	tags := extract.TagNames(string(data))
	if len(tags) == 0 {
		fmt.Println("No self-closing elements found")
		return nil
	}

	fmt.Printf("%-40s %s\n", "Element", "Count")
	fmt.Println(strings.Repeat("-", 52))
	for _, t := range tags {
		fmt.Printf("%-40s %d\n", t.Name, t.Count)
	}
	fmt.Printf("\nTotal: %d distinct element types\n", len(tags))

	return nil
}

// resolveElements picks the element types to analyze. Precedence: --elements
// flag, then the config file's elements list, then the built-in defaults.
func resolveElements(c *cli.Context) ([]string, error) {
	if c.IsSet("elements") {
		var elements []string
		for _, e := range strings.Split(c.String("elements"), ",") {
			e = strings.TrimSpace(e)
			if e != "" {
				elements = append(elements, e)
			}
		}
		if len(elements) == 0 {
			return nil, fmt.Errorf("no element types given via --elements flag")
		}
		return elements, nil
	}

	configPath := c.String("config")
	cfg, err := models.LoadConfig(configPath)
	if err != nil {
		// The default config path is allowed to be absent; an explicit
		// --config path is not.
		if errors.Is(err, os.ErrNotExist) && !c.IsSet("config") {
			return models.DefaultElements, nil
		}
		return nil, err
	}

	if len(cfg.Elements) > 0 {
		return cfg.Elements, nil
	}
	return models.DefaultElements, nil
}

// recordRun stores the run header plus per-element and per-field rows.
func recordRun(path string, data []byte, elements []string, reports []report.Element) error {
	database, err := db.Open()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	runID, err := database.InsertRun(path, common.ContentHash(data), int64(len(data)), strings.Join(elements, ","))
	if err != nil {
		return err
	}

	for _, e := range reports {
		if err := database.InsertRunElement(runID, db.RunElement{
			ElementType:    e.Type,
			Occurrences:    e.Total,
			AlwaysCount:    len(e.Always),
			SometimesCount: len(e.Sometimes),
			RarelyCount:    len(e.Rarely),
		}); err != nil {
			return err
		}

		for _, tier := range [][]report.Field{e.Always, e.Sometimes, e.Rarely} {
			for _, f := range tier {
				if err := database.InsertRunField(runID, db.RunField{
					ElementType: e.Type,
					Field:       f.Name,
					Present:     f.Present,
					NonEmpty:    f.NonEmpty,
					NonEmptyPct: f.NonEmptyPct,
				}); err != nil {
					return err
				}
			}
		}
	}

	return nil
}
