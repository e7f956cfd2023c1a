package db

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/cookparse/cookparse/models"
)

// RecipeRow is one stored recipe plus its bookkeeping columns.
type RecipeRow struct {
	ID               int64     `json:"id" yaml:"id"`
	URL              string    `json:"url" yaml:"url"`
	Domain           string    `json:"domain" yaml:"domain"`
	Title            string    `json:"title" yaml:"title"`
	Language         string    `json:"language,omitempty" yaml:"language,omitempty"`
	Converted        bool      `json:"converted" yaml:"converted"`
	IngredientCount  int       `json:"ingredient_count" yaml:"ingredient_count"`
	InstructionCount int       `json:"instruction_count" yaml:"instruction_count"`
	FetchedAt        time.Time `json:"fetched_at" yaml:"fetched_at"`
}

// ScrapeRow is one scrape attempt.
type ScrapeRow struct {
	ID         int64     `json:"id" yaml:"id"`
	URL        string    `json:"url" yaml:"url"`
	Status     string    `json:"status" yaml:"status"`
	Error      string    `json:"error,omitempty" yaml:"error,omitempty"`
	CacheHit   bool      `json:"cache_hit" yaml:"cache_hit"`
	DurationMS int64     `json:"duration_ms" yaml:"duration_ms"`
	StartedAt  time.Time `json:"started_at" yaml:"started_at"`
}

// UpsertRecipe stores a normalized recipe, replacing any previous scrape of
// the same URL, and returns the recipe_id.
func (db *DB) UpsertRecipe(recipe *models.NormalizedRecipe, lang string, converted bool) (int64, error) {
	payload, err := json.Marshal(recipe)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal recipe: %w", err)
	}

	domain := ""
	if parsed, err := url.Parse(recipe.URL); err == nil {
		domain = parsed.Host
	}

	var existingID int64
	err = db.QueryRow("SELECT recipe_id FROM recipes WHERE url = ?", recipe.URL).Scan(&existingID)
	if err == nil {
		_, err = db.Exec(`
			UPDATE recipes
			SET domain = ?, title = ?, language = ?, converted = ?,
			    ingredient_count = ?, instruction_count = ?, payload = ?,
			    fetched_at = CURRENT_TIMESTAMP
			WHERE recipe_id = ?
		`, domain, recipe.Title, lang, converted,
			len(recipe.Ingredients), len(recipe.Instructions), string(payload), existingID)
		if err != nil {
			return 0, fmt.Errorf("failed to update recipe: %w", err)
		}
		return existingID, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("failed to check existing recipe: %w", err)
	}

	result, err := db.Exec(`
		INSERT INTO recipes (url, domain, title, language, converted,
		                     ingredient_count, instruction_count, payload)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, recipe.URL, domain, recipe.Title, lang, converted,
		len(recipe.Ingredients), len(recipe.Instructions), string(payload))
	if err != nil {
		return 0, fmt.Errorf("failed to insert recipe: %w", err)
	}

	recipeID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get recipe ID: %w", err)
	}
	return recipeID, nil
}

// GetRecipeByURL loads a stored recipe payload. sql.ErrNoRows is passed
// through so callers can distinguish "never scraped" from real failures.
func (db *DB) GetRecipeByURL(rawURL string) (*models.NormalizedRecipe, error) {
	var payload string
	err := db.QueryRow("SELECT payload FROM recipes WHERE url = ?", rawURL).Scan(&payload)
	if err != nil {
		return nil, err
	}

	var recipe models.NormalizedRecipe
	if err := json.Unmarshal([]byte(payload), &recipe); err != nil {
		return nil, fmt.Errorf("failed to unmarshal recipe payload: %w", err)
	}
	return &recipe, nil
}

// ListRecipes returns stored recipes newest first, up to limit.
func (db *DB) ListRecipes(limit int) ([]RecipeRow, error) {
	rows, err := db.Query(`
		SELECT recipe_id, url, domain, title, language, converted,
		       ingredient_count, instruction_count, fetched_at
		FROM recipes
		ORDER BY fetched_at DESC, recipe_id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	defer rows.Close()

	var recipes []RecipeRow
	for rows.Next() {
		var r RecipeRow
		if err := rows.Scan(&r.ID, &r.URL, &r.Domain, &r.Title, &r.Language,
			&r.Converted, &r.IngredientCount, &r.InstructionCount, &r.FetchedAt); err != nil {
			return nil, fmt.Errorf("failed to scan recipe row: %w", err)
		}
		recipes = append(recipes, r)
	}
	return recipes, rows.Err()
}

// RecordScrape records one scrape attempt.
func (db *DB) RecordScrape(rawURL, status, errorMessage string, cacheHit bool, duration time.Duration) error {
	_, err := db.Exec(`
		INSERT INTO scrapes (url, status, error_message, cache_hit, duration_ms)
		VALUES (?, ?, ?, ?, ?)
	`, rawURL, status, errorMessage, cacheHit, duration.Milliseconds())
	if err != nil {
		return fmt.Errorf("failed to record scrape: %w", err)
	}
	return nil
}

// ListScrapes returns scrape attempts newest first, optionally filtered to
// one URL. An empty url matches everything.
func (db *DB) ListScrapes(rawURL string, limit int) ([]ScrapeRow, error) {
	rows, err := db.Query(`
		SELECT scrape_id, url, status, COALESCE(error_message, ''), cache_hit,
		       COALESCE(duration_ms, 0), started_at
		FROM scrapes
		WHERE (? = '' OR url = ?)
		ORDER BY started_at DESC, scrape_id DESC
		LIMIT ?
	`, rawURL, rawURL, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list scrapes: %w", err)
	}
	defer rows.Close()

	var scrapes []ScrapeRow
	for rows.Next() {
		var s ScrapeRow
		if err := rows.Scan(&s.ID, &s.URL, &s.Status, &s.Error, &s.CacheHit,
			&s.DurationMS, &s.StartedAt); err != nil {
			return nil, fmt.Errorf("failed to scan scrape row: %w", err)
		}
		scrapes = append(scrapes, s)
	}
	return scrapes, rows.Err()
}
