package main

import (
	"fmt"
	"os"

	convertcmd "github.com/cookparse/cookparse/internal/convert"
	"github.com/cookparse/cookparse/internal/history"
	"github.com/cookparse/cookparse/internal/scrape"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "cookparse",
		Usage: "Scrape recipe pages and annotate US measurements with metric equivalents",
		Commands: []*cli.Command{
			{
				Name:   "scrape",
				Usage:  "Fetch recipe URLs, extract recipes, and convert measurements",
				Action: scrape.ScrapeAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "urls",
						Usage: "Comma-separated list of recipe URLs to scrape",
					},
					&cli.IntFlag{
						Name:  "workers",
						Value: 4,
						Usage: "Number of concurrent scrape workers",
					},
					&cli.StringFlag{
						Name:  "output-dir",
						Value: "recipes",
						Usage: "Directory for recipe output files and the HTML cache",
					},
					&cli.StringFlag{
						Name:  "format",
						Value: "json",
						Usage: "Output file format: json or yaml",
					},
					&cli.StringFlag{
						Name:  "max-age",
						Value: "24h",
						Usage: "Maximum age of cached HTML before refetching (Go duration)",
					},
					&cli.BoolFlag{
						Name:  "force-fetch",
						Usage: "Ignore cached HTML and always fetch from the network",
					},
					&cli.BoolFlag{
						Name:  "no-convert",
						Usage: "Skip measurement conversion and store recipes as extracted",
					},
					&cli.BoolFlag{
						Name:  "force-convert",
						Usage: "Convert measurements even when the page is not detected as English",
					},
					&cli.BoolFlag{
						Name:  "quiet",
						Usage: "Only log errors",
					},
				},
			},
			{
				Name:   "convert",
				Usage:  "Run the measurement engine over ad-hoc text lines",
				Action: convertcmd.ConvertAction,
				Flags: []cli.Flag{
					&cli.StringSliceFlag{
						Name:  "ingredient",
						Usage: "Ingredient line to annotate (repeatable); stdin is read when no flags are given",
					},
					&cli.StringSliceFlag{
						Name:  "instruction",
						Usage: "Instruction line to annotate (repeatable)",
					},
				},
			},
			{
				Name:   "history",
				Usage:  "List stored recipes and past scrapes from the local database",
				Action: history.HistoryAction,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "limit",
						Value: 20,
						Usage: "Maximum number of rows to list",
					},
					&cli.StringFlag{
						Name:  "url",
						Usage: "Only show history for this URL",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
