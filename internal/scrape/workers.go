package scrape

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/cookparse/cookparse/models"
	"github.com/cookparse/cookparse/pkg/analytics"
	"github.com/cookparse/cookparse/pkg/caching"
	"github.com/cookparse/cookparse/pkg/convert"
	"github.com/cookparse/cookparse/pkg/db"
	"github.com/cookparse/cookparse/pkg/fetcher"
	"github.com/cookparse/cookparse/pkg/language"
	"github.com/cookparse/cookparse/pkg/scraper"
	"github.com/cookparse/cookparse/pkg/storage"
)

func run(logger *slog.Logger, config *models.ScrapeConfig, cache *caching.Cache, store *storage.Storage, database *db.DB, forceFetch bool) ([]Result, map[string]int, error) {
	f := fetcher.New()
	s := scraper.New()
	detector := language.New()

	logger.Info("Starting concurrent scrape phase", "url_count", len(config.URLs), "workers", config.WorkerCount, "force_fetch", forceFetch)
	var wg sync.WaitGroup
	jobs := make(chan Job, len(config.URLs))
	results := make(chan Result, len(config.URLs))

	for w := 1; w <= config.WorkerCount; w++ {
		wg.Add(1)
		go worker(w, logger, config, cache, f, s, detector, store, database, &wg, jobs, results, forceFetch)
	}

	for _, rawURL := range config.URLs {
		jobs <- Job{URL: rawURL}
	}
	close(jobs)

	wg.Wait()
	close(results)
	logger.Info("All scrape workers finished")

	allResults := make([]Result, 0, len(config.URLs))
	var runErr error
	for result := range results {
		allResults = append(allResults, result)
		if result.Error != nil {
			runErr = fmt.Errorf("one or more jobs failed")
		}
	}

	intermediate := []map[string]int{}
	for _, result := range allResults {
		if result.IngredientCounts != nil {
			intermediate = append(intermediate, result.IngredientCounts)
		}
	}
	finalCounts := analytics.Merge(intermediate)

	return allResults, finalCounts, runErr
}

func worker(id int, logger *slog.Logger, config *models.ScrapeConfig, cache *caching.Cache, f *fetcher.Fetcher, s *scraper.Scraper, detector *language.Detector, store *storage.Storage, database *db.DB, wg *sync.WaitGroup, jobs <-chan Job, results chan<- Result, forceFetch bool) {
	defer wg.Done()
	for job := range jobs {
		logger.Info("Worker started job", "worker_id", id, "url", job.URL)
		started := time.Now()

		var rawHTML []byte
		var cacheHit bool

		if !forceFetch {
			rawHTML, cacheHit = cache.Get(job.URL)
		}

		if cacheHit {
			logger.Info("Raw HTML found in cache, using it", "worker_id", id, "url", job.URL)
		} else {
			logger.Info("Raw HTML not cached or stale, fetching from network", "worker_id", id, "url", job.URL)
			fetched, err := f.GetHTML(job.URL)
			if err != nil {
				logger.Error("Error fetching HTML", "worker_id", id, "url", job.URL, "error", err)
				recordFailure(logger, database, job.URL, err.Error(), false, time.Since(started))
				results <- Result{URL: job.URL, Error: err, ErrorType: "fetch_error", Duration: time.Since(started)}
				continue
			}
			rawHTML = fetched

			if err := cache.Set(job.URL, rawHTML); err != nil {
				logger.Warn("Failed to write cache entry", "url", job.URL, "error", err)
			}
		}

		processHTML(id, logger, job.URL, rawHTML, cacheHit, started, config, s, detector, store, database, results)
	}
}

func processHTML(id int, logger *slog.Logger, url string, rawHTML []byte, cacheHit bool, started time.Time, config *models.ScrapeConfig, s *scraper.Scraper, detector *language.Detector, store *storage.Storage, database *db.DB, results chan<- Result) {
	result := Result{URL: url, CacheHit: cacheHit}

	raw, err := s.Scrape(url, rawHTML)
	if err != nil {
		logger.Error("Error extracting recipe", "worker_id", id, "url", url, "error", err)
		result.Error = err
		result.ErrorType = "extract_error"
		result.Duration = time.Since(started)
		recordFailure(logger, database, url, err.Error(), cacheHit, result.Duration)
		results <- result
		return
	}

	result.Language = detector.Detect(raw.ToPlainText())
	english := result.Language == "en" || result.Language == ""

	var recipe models.NormalizedRecipe
	switch {
	case config.NoConvert:
		recipe = convert.Passthrough(*raw)
	case english || config.ForceConvert:
		recipe = convert.Recipe(*raw)
		result.Converted = true
	default:
		logger.Info("Non-English recipe, skipping unit conversion", "worker_id", id, "url", url, "language", result.Language)
		recipe = convert.Passthrough(*raw)
	}
	result.Recipe = &recipe

	result.IngredientCounts = analytics.IngredientCounts(recipe.Ingredients)

	path, err := store.SaveRecipe(&recipe, config.Format)
	if err != nil {
		logger.Error("Error saving recipe", "worker_id", id, "url", url, "error", err)
		result.Error = err
		result.ErrorType = "save_error"
		result.Duration = time.Since(started)
		recordFailure(logger, database, url, err.Error(), cacheHit, result.Duration)
		results <- result
		return
	}
	result.FilePath = path
	result.Duration = time.Since(started)

	if database != nil {
		if _, err := database.UpsertRecipe(&recipe, result.Language, result.Converted); err != nil {
			logger.Warn("Failed to upsert recipe to DB", "url", url, "error", err)
		}
		if err := database.RecordScrape(url, "success", "", cacheHit, result.Duration); err != nil {
			logger.Warn("Failed to record scrape to DB", "url", url, "error", err)
		}
	}

	results <- result
	logger.Info("Worker finished processing", "worker_id", id, "url", url, "title", recipe.Title, "converted", result.Converted)
}

func recordFailure(logger *slog.Logger, database *db.DB, url, errMsg string, cacheHit bool, duration time.Duration) {
	if database == nil {
		return
	}
	if err := database.RecordScrape(url, "failed", errMsg, cacheHit, duration); err != nil {
		logger.Warn("Failed to record failed scrape to DB", "url", url, "error", err)
	}
}
