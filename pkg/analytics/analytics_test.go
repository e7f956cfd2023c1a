package analytics

import (
	"reflect"
	"testing"
)

func TestIngredientCounts(t *testing.T) {
	counts := IngredientCounts([]string{
		"2 cups all-purpose flour",
		"1 cup flour, sifted",
		"1 tsp vanilla extract",
		"salt to taste",
	})

	if counts["flour"] != 2 {
		t.Errorf("flour count = %d, want 2", counts["flour"])
	}
	if counts["vanilla"] != 1 || counts["extract"] != 1 {
		t.Errorf("vanilla/extract counts = %d/%d", counts["vanilla"], counts["extract"])
	}
	for _, noise := range []string{"cups", "cup", "tsp", "2", "1", "to", "taste", "sifted"} {
		if counts[noise] != 0 {
			t.Errorf("noise token %q counted %d times", noise, counts[noise])
		}
	}
}

func TestMergeAndTop(t *testing.T) {
	merged := Merge([]map[string]int{
		{"flour": 2, "butter": 1},
		{"flour": 1, "sugar": 3},
	})

	want := map[string]int{"flour": 3, "butter": 1, "sugar": 3}
	if !reflect.DeepEqual(merged, want) {
		t.Fatalf("Merge() = %v, want %v", merged, want)
	}

	top := Top(merged, 2)
	wantTop := []TermCount{{Term: "flour", Count: 3}, {Term: "sugar", Count: 3}}
	if !reflect.DeepEqual(top, wantTop) {
		t.Errorf("Top() = %v, want %v (count then alphabetical)", top, wantTop)
	}

	if got := Top(merged, 10); len(got) != 3 {
		t.Errorf("Top() with large n returned %d entries, want 3", len(got))
	}
}
