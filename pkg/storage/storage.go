// Package storage writes scraped recipes to disk as JSON or YAML.
package storage

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cookparse/cookparse/models"
)

type Storage struct {
	dir string
}

// New creates the output directory if needed.
func New(dir string) (*Storage, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	return &Storage{dir: dir}, nil
}

// SaveRecipe writes one recipe document and returns its path. Format is
// "json" or "yaml"; anything else is an error before any file is touched.
func (s *Storage) SaveRecipe(recipe *models.NormalizedRecipe, format string) (string, error) {
	var (
		data []byte
		err  error
		ext  string
	)
	switch format {
	case "json":
		data, err = json.MarshalIndent(recipe, "", "  ")
		ext = "json"
	case "yaml", "yml":
		data, err = yaml.Marshal(recipe)
		ext = "yaml"
	default:
		return "", fmt.Errorf("unknown output format: %s", format)
	}
	if err != nil {
		return "", fmt.Errorf("failed to marshal recipe: %w", err)
	}

	path := filepath.Join(s.dir, fmt.Sprintf("%s.%s", FileStem(recipe.URL), ext))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("error saving file: %w", err)
	}
	return path, nil
}

// FileStem derives a filesystem-friendly name from a recipe URL, combining
// host and path so recipes from different sites never collide.
func FileStem(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		safe := strings.TrimPrefix(strings.TrimPrefix(rawURL, "https://"), "http://")
		return sanitizeStem(safe)
	}

	host := strings.ReplaceAll(parsed.Host, ".", "_")
	path := strings.Trim(parsed.Path, "/")
	if path == "" {
		return sanitizeStem(host)
	}
	path = strings.ReplaceAll(path, "/", "-")
	path = strings.ReplaceAll(path, ".", "_")
	return sanitizeStem(host + "-" + path)
}

func sanitizeStem(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, s)
}
