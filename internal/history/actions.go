// Package history lists stored recipes and past scrape runs from the
// local database.
package history

import (
	"fmt"

	dbpkg "github.com/cookparse/cookparse/pkg/db"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

type output struct {
	Recipes []dbpkg.RecipeRow `yaml:"recipes"`
	Scrapes []dbpkg.ScrapeRow `yaml:"scrapes"`
}

func HistoryAction(c *cli.Context) error {
	database, err := dbpkg.Open()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	limit := c.Int("limit")
	url := c.String("url")

	recipes, err := database.ListRecipes(limit)
	if err != nil {
		return fmt.Errorf("failed to list recipes: %w", err)
	}

	scrapes, err := database.ListScrapes(url, limit)
	if err != nil {
		return fmt.Errorf("failed to list scrapes: %w", err)
	}

	if url != "" {
		// Narrow the recipe list to the requested URL as well.
		filtered := recipes[:0]
		for _, r := range recipes {
			if r.URL == url {
				filtered = append(filtered, r)
			}
		}
		recipes = filtered
	}

	if len(recipes) == 0 && len(scrapes) == 0 {
		fmt.Println("No history found")
		return nil
	}

	yamlBytes, err := yaml.Marshal(output{Recipes: recipes, Scrapes: scrapes})
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}
	fmt.Print(string(yamlBytes))
	return nil
}
