package convert

import "github.com/cookparse/cookparse/models"

// Recipe runs the measurement engine over a raw recipe: ingredients
// through the ingredient annotator, instructions through the temperature
// annotator, everything else passed through untouched. The function is
// pure; the input is never mutated and nil slices are tolerated.
func Recipe(raw models.RawRecipe) models.NormalizedRecipe {
	return models.NormalizedRecipe{
		URL:          raw.URL,
		Title:        raw.Title,
		Description:  raw.Description,
		Image:        raw.Image,
		Servings:     raw.Servings,
		PrepTime:     raw.PrepTime,
		CookTime:     raw.CookTime,
		TotalTime:    raw.TotalTime,
		Ingredients:  annotateAll(raw.Ingredients, AnnotateIngredient),
		Instructions: annotateAll(raw.Instructions, AnnotateTemperatures),
	}
}

// Passthrough wraps a raw recipe without annotating anything, for recipes
// the engine should not touch (e.g. non-English pages).
func Passthrough(raw models.RawRecipe) models.NormalizedRecipe {
	return models.NormalizedRecipe{
		URL:          raw.URL,
		Title:        raw.Title,
		Description:  raw.Description,
		Image:        raw.Image,
		Servings:     raw.Servings,
		PrepTime:     raw.PrepTime,
		CookTime:     raw.CookTime,
		TotalTime:    raw.TotalTime,
		Ingredients:  raw.Ingredients,
		Instructions: raw.Instructions,
	}
}

func annotateAll(lines []string, annotate func(string) string) []string {
	if lines == nil {
		return nil
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = annotate(line)
	}
	return out
}
