// Package scraper extracts structured recipe data from recipe web pages.
// JSON-LD is the preferred source; meta tags, microdata/CSS heuristics and
// readability enrichment fill in whatever it misses.
package scraper

import (
	"bytes"
	"errors"
	"net/url"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"

	"github.com/cookparse/cookparse/models"
)

// ErrNoTitle is returned when no source yields a recipe title; a page
// without even a title is treated as not being a recipe page.
var ErrNoTitle = errors.New("no title found")

type Scraper struct{}

func New() *Scraper {
	return &Scraper{}
}

// Scrape parses raw HTML into a RawRecipe. It never fails on missing
// optional fields; only an unparseable document or a page with no title
// from any candidate source is an error.
func (s *Scraper) Scrape(rawURL string, html []byte) (*models.RawRecipe, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil, err
	}

	ld := extractJSONLD(doc)
	if ld == nil {
		ld = &ldRecipe{}
	}
	article := readabilityArticle(rawURL, html)

	recipe := &models.RawRecipe{URL: rawURL}

	recipe.Title = firstNonEmpty([]fieldSource{
		{name: "json-ld", get: func() string { return ld.Name }},
		{name: "og:title", get: func() string { return metaContent(doc, `meta[property="og:title"]`) }},
		{name: "title-tag", get: func() string { return normalizeText(doc.Find("title").First().Text()) }},
		{name: "first-h1", get: func() string { return normalizeText(doc.Find("h1").First().Text()) }},
		{name: "readability", get: func() string { return article.Title }},
	})
	if recipe.Title == "" {
		return nil, ErrNoTitle
	}

	recipe.Description = firstNonEmpty([]fieldSource{
		{name: "json-ld", get: func() string { return ld.Description }},
		{name: "og:description", get: func() string { return metaContent(doc, `meta[property="og:description"]`) }},
		{name: "meta-description", get: func() string { return metaContent(doc, `meta[name="description"]`) }},
		{name: "readability", get: func() string { return article.Excerpt }},
	})

	recipe.Image = firstNonEmpty([]fieldSource{
		{name: "json-ld", get: func() string { return ld.Image }},
		{name: "og:image", get: func() string { return metaContent(doc, `meta[property="og:image"]`) }},
		{name: "readability", get: func() string { return article.Image }},
	})

	recipe.Servings = firstNonEmpty([]fieldSource{
		{name: "json-ld", get: func() string { return ld.Yield }},
		{name: "microdata", get: func() string {
			return normalizeText(doc.Find(`[itemprop="recipeYield"]`).First().Text())
		}},
	})

	recipe.PrepTime = prettyDuration(ld.PrepTime)
	recipe.CookTime = prettyDuration(ld.CookTime)
	recipe.TotalTime = prettyDuration(ld.TotalTime)

	recipe.Ingredients = firstNonEmptyList([]listSource{
		{name: "json-ld", get: func() []string { return ld.Ingredients }},
		{name: "heuristics", get: func() []string { return selectLines(doc, ingredientSelectors) }},
	})

	recipe.Instructions = firstNonEmptyList([]listSource{
		{name: "json-ld", get: func() []string { return ld.Instructions }},
		{name: "heuristics", get: func() []string { return selectLines(doc, instructionSelectors) }},
	})

	return recipe, nil
}

// readabilityArticle runs go-readability for metadata enrichment. Failures
// just mean empty enrichment fields; extraction carries on without them.
func readabilityArticle(rawURL string, html []byte) readability.Article {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return readability.Article{}
	}
	readabilityParser := readability.NewParser()
	article, err := readabilityParser.Parse(bytes.NewReader(html), parsedURL)
	if err != nil {
		return readability.Article{}
	}
	return article
}
