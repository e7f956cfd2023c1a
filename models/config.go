// Package models defines data structures shared across the scrape pipeline.
package models

// ScrapeConfig holds runtime configuration for scrape operations.
// All values come from CLI flags, not external config files.
type ScrapeConfig struct {
	URLs         []string
	WorkerCount  int
	OutputDir    string
	Format       string
	NoConvert    bool
	ForceConvert bool
}
