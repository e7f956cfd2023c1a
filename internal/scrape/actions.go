package scrape

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cookparse/cookparse/internal/common"
	"github.com/cookparse/cookparse/models"
	"github.com/cookparse/cookparse/pkg/analytics"
	"github.com/cookparse/cookparse/pkg/caching"
	"github.com/cookparse/cookparse/pkg/db"
	"github.com/cookparse/cookparse/pkg/storage"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

func ScrapeAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	startTime := time.Now()

	var maxAge time.Duration
	var err error
	if c.Bool("force-fetch") {
		maxAge = 0
	} else {
		maxAge, err = time.ParseDuration(c.String("max-age"))
		if err != nil {
			logger.Error("invalid max-age duration", "error", err)
			os.Exit(2)
		}
	}

	config := &models.ScrapeConfig{
		URLs:         []string{},
		WorkerCount:  c.Int("workers"),
		OutputDir:    c.String("output-dir"),
		Format:       strings.ToLower(c.String("format")),
		NoConvert:    c.Bool("no-convert"),
		ForceConvert: c.Bool("force-convert"),
	}

	if config.Format != "json" && config.Format != "yaml" {
		fmt.Fprintf(os.Stderr, "Error: unknown output format %q (expected json or yaml)\n", config.Format)
		os.Exit(1)
	}
	if config.NoConvert && config.ForceConvert {
		fmt.Fprintln(os.Stderr, "Error: Cannot use both --no-convert and --force-convert flags")
		os.Exit(1)
	}

	if c.IsSet("urls") {
		config.URLs = strings.Split(c.String("urls"), ",")
	}

	if len(config.URLs) == 0 {
		fmt.Fprintln(os.Stderr, "Error: No URLs provided")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, `  cookparse scrape --urls "https://example.com/recipe,https://example.org/cake"`)
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Need help? Run: cookparse scrape --help")
		os.Exit(1)
	}

	// Sanitize and validate all URLs before processing (fail fast)
	sanitizedURLs, invalidURLs := common.SanitizeAndValidateURLs(config.URLs)
	if len(invalidURLs) > 0 {
		fmt.Fprintf(os.Stderr, "Error: %d URL(s) are malformed (even after cleanup):\n", len(invalidURLs))
		for _, badURL := range invalidURLs {
			fmt.Fprintf(os.Stderr, "  - %s\n", badURL)
		}
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Note: URLs are auto-cleaned (whitespace trimmed, trailing punctuation removed, markdown links extracted)")
		os.Exit(1)
	}
	config.URLs = sanitizedURLs

	cache, err := caching.New(filepath.Join(config.OutputDir, ".cache"), maxAge)
	if err != nil {
		logger.Error("failed to initialize HTML cache", "error", err)
		os.Exit(2)
	}

	store, err := storage.New(config.OutputDir)
	if err != nil {
		logger.Error("failed to initialize recipe storage", "error", err)
		os.Exit(2)
	}

	database, err := db.Open()
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(2)
	}
	defer database.Close()

	allResults, finalCounts, runErr := run(logger, config, cache, store, database, c.Bool("force-fetch"))

	stats := Stats{
		TotalURLs:        len(config.URLs),
		TotalTimeSeconds: time.Since(startTime).Seconds(),
	}
	summaries := make([]ResultSummary, 0, len(allResults))
	for _, r := range allResults {
		summary := BuildSummary(r)
		summaries = append(summaries, summary)
		if r.Error != nil {
			stats.Failed++
		} else {
			stats.Successful++
		}
		if r.CacheHit {
			stats.CacheHits++
		}
	}

	finalOutput := FinalOutput{
		Status:         "success",
		Results:        summaries,
		Stats:          stats,
		TopIngredients: analytics.Top(finalCounts, 25),
	}
	if runErr != nil {
		finalOutput.Status = "partial_failure"
		if stats.Successful == 0 {
			finalOutput.Status = "failed"
		}
	}

	yamlBytes, err := yaml.Marshal(&finalOutput)
	if err != nil {
		return fmt.Errorf("failed to marshal run summary: %w", err)
	}
	fmt.Print(string(yamlBytes))

	if runErr != nil && stats.Successful == 0 {
		os.Exit(1)
	}
	return nil
}
