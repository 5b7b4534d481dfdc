package main

import (
	"log"
	"os"

	"github.com/cmorrow/flexfield/internal/analyze"
	"github.com/cmorrow/flexfield/internal/history"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "flexfield",
		Usage: "field-presence statistics for IB FLEX XML exports",
		Commands: []*cli.Command{
			{
				Name:      "analyze",
				Usage:     "report which attributes are always, sometimes, or rarely present",
				ArgsUsage: "<file.xml>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "elements",
						Usage: "comma-separated element types to analyze (default: Trade,OpenPosition,CashTransaction,CorporateAction)",
					},
					&cli.StringFlag{
						Name:  "config",
						Value: "flexfield.yaml",
						Usage: "YAML config file",
					},
					&cli.StringFlag{
						Name:  "format",
						Value: "text",
						Usage: "output format: text or yaml",
					},
					&cli.BoolFlag{
						Name:  "no-history",
						Usage: "skip recording the run in the history database",
					},
					&cli.BoolFlag{
						Name:  "quiet",
						Usage: "only log errors",
					},
				},
				Action: analyze.AnalyzeAction,
			},
			{
				Name:      "tags",
				Usage:     "list distinct self-closing element types found in a file",
				ArgsUsage: "<file.xml>",
				Action:    analyze.TagsAction,
			},
			{
				Name:  "history",
				Usage: "inspect past analysis runs",
				Subcommands: []*cli.Command{
					{
						Name:  "list",
						Usage: "list recent runs",
						Flags: []cli.Flag{
							&cli.IntFlag{
								Name:  "limit",
								Value: 20,
								Usage: "maximum number of runs to list",
							},
						},
						Action: history.ListAction,
					},
					{
						Name:      "show",
						Usage:     "show one run's stored statistics (latest when omitted)",
						ArgsUsage: "[run-id]",
						Action:    history.ShowAction,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
