package models

import "strings"

// RawRecipe is the extraction stage's output: recipe fields as they appear
// on the page, before any measurement annotation. All scalar fields are
// optional and may be empty.
type RawRecipe struct {
	URL          string   `json:"url"`
	Title        string   `json:"title"`
	Description  string   `json:"description,omitempty"`
	Image        string   `json:"image,omitempty"`
	Servings     string   `json:"servings,omitempty"`
	PrepTime     string   `json:"prep_time,omitempty"`
	CookTime     string   `json:"cook_time,omitempty"`
	TotalTime    string   `json:"total_time,omitempty"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
}

// NormalizedRecipe mirrors RawRecipe with ingredients and instructions
// replaced by their metric-annotated forms. Scalar fields pass through
// unchanged from the raw recipe.
type NormalizedRecipe struct {
	URL          string   `json:"url"`
	Title        string   `json:"title"`
	Description  string   `json:"description,omitempty"`
	Image        string   `json:"image,omitempty"`
	Servings     string   `json:"servings,omitempty"`
	PrepTime     string   `json:"prep_time,omitempty"`
	CookTime     string   `json:"cook_time,omitempty"`
	TotalTime    string   `json:"total_time,omitempty"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
}

// ToPlainText concatenates the recipe's readable text, one line per entry.
// Used for language detection and ingredient analytics.
func (r *RawRecipe) ToPlainText() string {
	var sb strings.Builder

	sb.WriteString(r.Title)
	sb.WriteString("\n")
	if r.Description != "" {
		sb.WriteString(r.Description)
		sb.WriteString("\n")
	}
	for _, line := range r.Ingredients {
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	for _, line := range r.Instructions {
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	return sb.String()
}
