// Package analytics aggregates ingredient term frequencies across a batch
// of scraped recipes, for the run summary's "most common ingredients" view.
package analytics

import (
	"sort"
	"strings"
)

// noiseWords are tokens that appear constantly in ingredient lines but say
// nothing about the ingredient itself: units, amounts, preparation words
// and a small core of English stopwords.
var noiseWords = map[string]struct{}{
	// units, imperial and metric
	"cup": {}, "cups": {}, "tablespoon": {}, "tablespoons": {}, "tbsp": {},
	"teaspoon": {}, "teaspoons": {}, "tsp": {}, "ounce": {}, "ounces": {},
	"oz": {}, "pound": {}, "pounds": {}, "lb": {}, "lbs": {}, "pint": {},
	"pints": {}, "quart": {}, "quarts": {}, "gallon": {}, "gallons": {},
	"inch": {}, "inches": {}, "ml": {}, "milliliter": {}, "milliliters": {},
	"l": {}, "liter": {}, "liters": {}, "g": {}, "gram": {}, "grams": {},
	"kg": {}, "kilogram": {}, "kilograms": {}, "mg": {}, "cm": {}, "mm": {},

	// amounts and vague quantities
	"pinch": {}, "dash": {}, "handful": {}, "half": {}, "quarter": {},
	"small": {}, "medium": {}, "large": {}, "extra": {},

	// preparation words
	"chopped": {}, "diced": {}, "minced": {}, "sliced": {}, "grated": {},
	"melted": {}, "softened": {}, "peeled": {}, "crushed": {}, "ground": {},
	"fresh": {}, "freshly": {}, "finely": {}, "roughly": {}, "thinly": {},
	"divided": {}, "packed": {}, "sifted": {}, "drained": {}, "rinsed": {},
	"optional": {}, "taste": {}, "serving": {}, "plus": {}, "more": {},

	// core stopwords
	"a": {}, "an": {}, "and": {}, "as": {}, "at": {}, "but": {},
	"for": {}, "from": {}, "in": {}, "into": {}, "of": {}, "on": {},
	"or": {}, "the": {}, "to": {}, "with": {}, "about": {}, "your": {},
}

// IngredientCounts tokenizes one recipe's ingredient lines into a term
// frequency map, dropping units, numbers and noise words. This is the
// per-recipe map phase; Merge is the reduce.
func IngredientCounts(ingredients []string) map[string]int {
	frequencies := make(map[string]int)

	for _, line := range ingredients {
		for _, word := range strings.Fields(strings.ToLower(line)) {
			word = strings.TrimFunc(word, func(r rune) bool {
				return ('a' > r || r > 'z') && ('0' > r || r > '9')
			})
			if word == "" || isNumeric(word) {
				continue
			}
			if _, noise := noiseWords[word]; noise {
				continue
			}
			frequencies[word]++
		}
	}

	return frequencies
}

// Merge aggregates per-recipe frequency maps into one.
func Merge(intermediate []map[string]int) map[string]int {
	final := make(map[string]int)
	for _, counts := range intermediate {
		for word, count := range counts {
			final[word] += count
		}
	}
	return final
}

// TermCount is one entry of a Top result.
type TermCount struct {
	Term  string `json:"term" yaml:"term"`
	Count int    `json:"count" yaml:"count"`
}

// Top returns the n most frequent terms, ties broken alphabetically so
// output is stable across runs.
func Top(counts map[string]int, n int) []TermCount {
	all := make([]TermCount, 0, len(counts))
	for term, count := range counts {
		all = append(all, TermCount{Term: term, Count: count})
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].Count != all[j].Count {
			return all[i].Count > all[j].Count
		}
		return all[i].Term < all[j].Term
	})

	if n > len(all) {
		n = len(all)
	}
	return all[:n]
}

func isNumeric(word string) bool {
	for _, r := range word {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
