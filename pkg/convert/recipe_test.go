package convert

import (
	"reflect"
	"testing"

	"github.com/cookparse/cookparse/models"
)

func TestRecipe(t *testing.T) {
	raw := models.RawRecipe{
		URL:       "https://example.com/pancakes",
		Title:     "Buttermilk Pancakes",
		Servings:  "4",
		PrepTime:  "10 mins",
		CookTime:  "20 mins",
		TotalTime: "30 mins",
		Ingredients: []string{
			"2 cups flour",
			"200 g flour",
			"salt to taste",
		},
		Instructions: []string{
			"Preheat oven to 350°F",
			"Mix everything together",
		},
	}

	got := Recipe(raw)

	wantIngredients := []string{
		"2 cups flour (473 ml)",
		"200 g flour",
		"salt to taste",
	}
	wantInstructions := []string{
		"Preheat oven to 350°F (177°C)",
		"Mix everything together",
	}

	if !reflect.DeepEqual(got.Ingredients, wantIngredients) {
		t.Errorf("ingredients = %q, want %q", got.Ingredients, wantIngredients)
	}
	if !reflect.DeepEqual(got.Instructions, wantInstructions) {
		t.Errorf("instructions = %q, want %q", got.Instructions, wantInstructions)
	}

	// Scalars pass through untouched.
	if got.Title != raw.Title || got.Servings != raw.Servings ||
		got.PrepTime != raw.PrepTime || got.CookTime != raw.CookTime ||
		got.TotalTime != raw.TotalTime || got.URL != raw.URL {
		t.Errorf("scalar fields changed: %+v", got)
	}

	// Input slices must not be mutated.
	if raw.Ingredients[0] != "2 cups flour" {
		t.Error("input ingredient slice was mutated")
	}
}

func TestRecipeNilSequences(t *testing.T) {
	got := Recipe(models.RawRecipe{Title: "Empty"})
	if got.Ingredients != nil || got.Instructions != nil {
		t.Errorf("nil sequences should stay nil, got %+v", got)
	}
	if got.Title != "Empty" {
		t.Errorf("title = %q, want Empty", got.Title)
	}
}

func TestPassthrough(t *testing.T) {
	raw := models.RawRecipe{
		Title:        "Crêpes",
		Ingredients:  []string{"2 cups farine"},
		Instructions: []string{"Cuire à 350°F"},
	}
	got := Passthrough(raw)
	if !reflect.DeepEqual(got.Ingredients, raw.Ingredients) ||
		!reflect.DeepEqual(got.Instructions, raw.Instructions) {
		t.Errorf("passthrough altered text: %+v", got)
	}
}
