package language

import "testing"

func TestIsEnglish(t *testing.T) {
	d := New()

	english := "Preheat the oven and whisk the flour, sugar and baking soda together in a large bowl."
	if !d.IsEnglish(english) {
		t.Errorf("expected English: %q", english)
	}

	french := "Préchauffez le four et mélangez la farine, le sucre et le beurre dans un grand saladier."
	if d.IsEnglish(french) {
		t.Errorf("expected non-English: %q", french)
	}
}

func TestDetectCode(t *testing.T) {
	d := New()
	got := d.Detect("Mezcle la harina con el azúcar y hornee durante treinta minutos en el horno caliente.")
	if got != "es" {
		t.Errorf("Detect() = %q, want es", got)
	}
}
