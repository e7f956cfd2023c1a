package scrape

import (
	"time"

	"github.com/cookparse/cookparse/models"
	"github.com/cookparse/cookparse/pkg/analytics"
)

type Job struct {
	URL string
}

// Result holds the outcome of a processed job.
type Result struct {
	URL              string
	FilePath         string
	Recipe           *models.NormalizedRecipe
	Language         string
	Converted        bool
	CacheHit         bool
	Duration         time.Duration
	Error            error
	ErrorType        string
	IngredientCounts map[string]int
}

// ResultSummary is the per-URL section of the run summary.
type ResultSummary struct {
	URL              string `yaml:"url"`
	Status           string `yaml:"status"`
	Error            string `yaml:"error,omitempty"`
	FilePath         string `yaml:"file_path,omitempty"`
	Title            string `yaml:"title,omitempty"`
	Language         string `yaml:"language,omitempty"`
	Converted        bool   `yaml:"converted"`
	CacheHit         bool   `yaml:"cache_hit"`
	IngredientCount  int    `yaml:"ingredient_count,omitempty"`
	InstructionCount int    `yaml:"instruction_count,omitempty"`
	DurationMS       int64  `yaml:"duration_ms"`
}

// Stats provides summary statistics for the run.
type Stats struct {
	TotalURLs        int     `yaml:"total_urls"`
	Successful       int     `yaml:"successful"`
	Failed           int     `yaml:"failed"`
	CacheHits        int     `yaml:"cache_hits"`
	TotalTimeSeconds float64 `yaml:"total_time_seconds"`
}

// FinalOutput is the structured YAML output for the entire run.
type FinalOutput struct {
	Status         string                `yaml:"status"`
	Results        []ResultSummary       `yaml:"results"`
	Stats          Stats                 `yaml:"stats"`
	TopIngredients []analytics.TermCount `yaml:"top_ingredients,omitempty"`
}
