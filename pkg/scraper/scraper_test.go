package scraper

import (
	"errors"
	"reflect"
	"testing"
)

const jsonldPage = `<!DOCTYPE html>
<html><head>
<title>Some Food Blog</title>
<script type="application/ld+json">
{
  "@context": "https://schema.org",
  "@graph": [
    {"@type": "WebSite", "name": "Some Food Blog"},
    {
      "@type": ["Recipe", "NewsArticle"],
      "name": "Classic Pancakes",
      "description": "Fluffy pancakes from scratch.",
      "image": {"@type": "ImageObject", "url": "https://example.com/pancakes.jpg"},
      "recipeYield": ["4", "4 servings"],
      "prepTime": "PT10M",
      "cookTime": "PT20M",
      "totalTime": "PT1H30M",
      "recipeIngredient": ["2 cups flour", "1 tsp baking soda"],
      "recipeInstructions": [
        {"@type": "HowToSection", "name": "Batter", "itemListElement": [
          {"@type": "HowToStep", "text": "Whisk the dry ingredients."}
        ]},
        {"@type": "HowToStep", "text": "Cook on a hot griddle."}
      ]
    }
  ]
}
</script>
</head><body><h1>ignored</h1></body></html>`

func TestScrapeJSONLD(t *testing.T) {
	recipe, err := New().Scrape("https://example.com/pancakes", []byte(jsonldPage))
	if err != nil {
		t.Fatalf("Scrape() error = %v", err)
	}

	if recipe.Title != "Classic Pancakes" {
		t.Errorf("title = %q", recipe.Title)
	}
	if recipe.Description != "Fluffy pancakes from scratch." {
		t.Errorf("description = %q", recipe.Description)
	}
	if recipe.Image != "https://example.com/pancakes.jpg" {
		t.Errorf("image = %q", recipe.Image)
	}
	if recipe.Servings != "4" {
		t.Errorf("servings = %q", recipe.Servings)
	}
	if recipe.PrepTime != "10 mins" || recipe.CookTime != "20 mins" || recipe.TotalTime != "1 hr 30 mins" {
		t.Errorf("times = %q %q %q", recipe.PrepTime, recipe.CookTime, recipe.TotalTime)
	}
	wantIngredients := []string{"2 cups flour", "1 tsp baking soda"}
	if !reflect.DeepEqual(recipe.Ingredients, wantIngredients) {
		t.Errorf("ingredients = %q", recipe.Ingredients)
	}
	wantInstructions := []string{"Whisk the dry ingredients.", "Cook on a hot griddle."}
	if !reflect.DeepEqual(recipe.Instructions, wantInstructions) {
		t.Errorf("instructions = %q", recipe.Instructions)
	}
}

const heuristicsPage = `<!DOCTYPE html>
<html><head>
<title>Heuristic Soup</title>
<meta property="og:title" content="Grandma's Soup">
<meta property="og:image" content="https://example.com/soup.jpg">
<meta name="description" content="A soup found without structured data.">
</head><body>
<ul>
  <li itemprop="recipeIngredient">1 cup lentils</li>
  <li itemprop="recipeIngredient">2 quarts stock</li>
</ul>
<div itemprop="recipeInstructions">
  <li>Simmer for an hour.</li>
  <li>Season and serve.</li>
</div>
<span itemprop="recipeYield">6 bowls</span>
</body></html>`

func TestScrapeHeuristicsFallback(t *testing.T) {
	recipe, err := New().Scrape("https://example.com/soup", []byte(heuristicsPage))
	if err != nil {
		t.Fatalf("Scrape() error = %v", err)
	}

	if recipe.Title != "Grandma's Soup" {
		t.Errorf("title = %q, want og:title to win", recipe.Title)
	}
	if recipe.Image != "https://example.com/soup.jpg" {
		t.Errorf("image = %q", recipe.Image)
	}
	if recipe.Servings != "6 bowls" {
		t.Errorf("servings = %q", recipe.Servings)
	}
	wantIngredients := []string{"1 cup lentils", "2 quarts stock"}
	if !reflect.DeepEqual(recipe.Ingredients, wantIngredients) {
		t.Errorf("ingredients = %q", recipe.Ingredients)
	}
	wantInstructions := []string{"Simmer for an hour.", "Season and serve."}
	if !reflect.DeepEqual(recipe.Instructions, wantInstructions) {
		t.Errorf("instructions = %q", recipe.Instructions)
	}
}

// A page with no JSON-LD and no og:title must take its title verbatim
// from the title tag; readability only fills in when the document itself
// has nothing, so its cleaned-up title (site suffix stripped) never
// shadows the tag.
func TestScrapeTitleTagBeatsReadability(t *testing.T) {
	page := `<!DOCTYPE html>
<html><head><title>Pumpkin Pie - The Food Blog</title></head>
<body>
<article>
<h1>Pumpkin Pie</h1>
<p>A classic holiday dessert with a flaky crust and spiced filling.</p>
<ul>
<li class="ingredient">1 can pumpkin puree</li>
<li class="ingredient">2 eggs</li>
</ul>
</article>
</body></html>`

	recipe, err := New().Scrape("https://example.com/pumpkin-pie", []byte(page))
	if err != nil {
		t.Fatalf("Scrape() error = %v", err)
	}
	if recipe.Title != "Pumpkin Pie - The Food Blog" {
		t.Errorf("title = %q, want the raw title tag", recipe.Title)
	}
}

func TestScrapeNoTitle(t *testing.T) {
	_, err := New().Scrape("https://example.com/empty", []byte(`<html><body><p>nothing here</p></body></html>`))
	if !errors.Is(err, ErrNoTitle) {
		t.Errorf("error = %v, want ErrNoTitle", err)
	}
}

func TestPrettyDuration(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"PT10M", "10 mins"},
		{"PT1M", "1 min"},
		{"PT1H", "1 hr"},
		{"PT1H30M", "1 hr 30 mins"},
		{"P1DT2H", "1 day 2 hrs"},
		{"PT45S", "45 secs"},
		{"overnight", "overnight"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := prettyDuration(tt.in); got != tt.want {
			t.Errorf("prettyDuration(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
