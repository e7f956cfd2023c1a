package scraper

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ldRecipe is the subset of a schema.org Recipe node the scraper uses,
// already flattened out of JSON-LD's many shape variants.
type ldRecipe struct {
	Name         string
	Description  string
	Image        string
	Yield        string
	PrepTime     string
	CookTime     string
	TotalTime    string
	Ingredients  []string
	Instructions []string
}

// extractJSONLD walks every ld+json script in the document and returns the
// first schema.org Recipe node found, handling top-level objects, arrays
// and @graph containers. Returns nil when no recipe node exists.
func extractJSONLD(doc *goquery.Document) *ldRecipe {
	var recipe *ldRecipe

	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(i int, s *goquery.Selection) bool {
		var payload any
		if err := json.Unmarshal([]byte(s.Text()), &payload); err != nil {
			return true // malformed block, keep looking
		}
		node := findRecipeNode(payload)
		if node == nil {
			return true
		}
		recipe = flattenRecipeNode(node)
		return false
	})

	return recipe
}

func findRecipeNode(v any) map[string]any {
	switch n := v.(type) {
	case map[string]any:
		if isRecipeType(n["@type"]) {
			return n
		}
		if graph, ok := n["@graph"]; ok {
			return findRecipeNode(graph)
		}
	case []any:
		for _, item := range n {
			if r := findRecipeNode(item); r != nil {
				return r
			}
		}
	}
	return nil
}

// isRecipeType handles @type as both a string and a list ("@type":
// ["Recipe","NewsArticle"] is common on publisher sites).
func isRecipeType(v any) bool {
	switch t := v.(type) {
	case string:
		return t == "Recipe"
	case []any:
		for _, item := range t {
			if s, ok := item.(string); ok && s == "Recipe" {
				return true
			}
		}
	}
	return false
}

func flattenRecipeNode(node map[string]any) *ldRecipe {
	return &ldRecipe{
		Name:         ldText(node["name"]),
		Description:  ldText(node["description"]),
		Image:        ldImage(node["image"]),
		Yield:        ldText(node["recipeYield"]),
		PrepTime:     ldText(node["prepTime"]),
		CookTime:     ldText(node["cookTime"]),
		TotalTime:    ldText(node["totalTime"]),
		Ingredients:  ldStrings(node["recipeIngredient"]),
		Instructions: ldInstructions(node["recipeInstructions"]),
	}
}

// ldText coerces a JSON-LD value to a plain string: strings pass through,
// numbers are formatted, lists yield their first textual element.
func ldText(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case []any:
		for _, item := range t {
			if s := ldText(item); s != "" {
				return s
			}
		}
	}
	return ""
}

// ldImage handles the three image shapes in the wild: a bare URL string,
// an ImageObject with a url field, or a list of either.
func ldImage(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case map[string]any:
		if s := ldText(t["url"]); s != "" {
			return s
		}
		return ldText(t["@id"])
	case []any:
		for _, item := range t {
			if s := ldImage(item); s != "" {
				return s
			}
		}
	}
	return ""
}

func ldStrings(v any) []string {
	list, ok := v.([]any)
	if !ok {
		if s := ldText(v); s != "" {
			return []string{s}
		}
		return nil
	}
	var out []string
	for _, item := range list {
		if s := ldText(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// ldInstructions flattens recipeInstructions: plain strings, HowToStep
// objects (text or name) and HowToSection groups whose itemListElement
// nests more steps, all in document order.
func ldInstructions(v any) []string {
	var out []string
	var walk func(any)
	walk = func(v any) {
		switch t := v.(type) {
		case string:
			if s := strings.TrimSpace(t); s != "" {
				out = append(out, s)
			}
		case []any:
			for _, item := range t {
				walk(item)
			}
		case map[string]any:
			if items, ok := t["itemListElement"]; ok {
				walk(items)
				return
			}
			if s := ldText(t["text"]); s != "" {
				out = append(out, s)
				return
			}
			if s := ldText(t["name"]); s != "" {
				out = append(out, s)
			}
		}
	}
	walk(v)
	return out
}
