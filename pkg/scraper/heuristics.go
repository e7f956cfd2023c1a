package scraper

import (
	"bufio"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// fieldSource is one candidate origin for a scalar recipe field. Sources
// are tried in declaration order, first non-empty value wins.
type fieldSource struct {
	name string
	get  func() string
}

func firstNonEmpty(sources []fieldSource) string {
	for _, src := range sources {
		if v := strings.TrimSpace(src.get()); v != "" {
			return v
		}
	}
	return ""
}

// listSource is the sequence-valued counterpart of fieldSource.
type listSource struct {
	name string
	get  func() []string
}

func firstNonEmptyList(sources []listSource) []string {
	for _, src := range sources {
		if lines := src.get(); len(lines) > 0 {
			return lines
		}
	}
	return nil
}

func metaContent(doc *goquery.Document, selector string) string {
	content, _ := doc.Find(selector).First().Attr("content")
	return content
}

// ingredientSelectors are tried in order when a page has no usable
// JSON-LD. Microdata first, then the class names recipe plugins emit.
var ingredientSelectors = []string{
	`[itemprop="recipeIngredient"]`,
	`[itemprop="ingredients"]`,
	`.recipe-ingredient`,
	`.ingredient`,
	`li[class*="ingredient"]`,
}

var instructionSelectors = []string{
	`[itemprop="recipeInstructions"] li`,
	`[itemprop="recipeInstructions"]`,
	`.recipe-instruction`,
	`.instruction`,
	`li[class*="instruction"]`,
	`li[class*="direction"]`,
}

// selectLines collects the normalized text of every element matched by the
// first selector that yields anything.
func selectLines(doc *goquery.Document, selectors []string) []string {
	for _, selector := range selectors {
		var lines []string
		doc.Find(selector).Each(func(i int, s *goquery.Selection) {
			if text := normalizeText(s.Text()); text != "" {
				lines = append(lines, text)
			}
		})
		if len(lines) > 0 {
			return lines
		}
	}
	return nil
}

// normalizeText collapses a string to single-space-separated lines with
// edge whitespace trimmed.
func normalizeText(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			b.WriteString(line)
			b.WriteString(" ")
		}
	}
	return strings.TrimSpace(b.String())
}
