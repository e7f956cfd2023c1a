package units

import (
	"math"
	"testing"
)

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want float64
		ok   bool
	}{
		{name: "plain integer", in: "2", want: 2, ok: true},
		{name: "plain decimal", in: "2.5", want: 2.5, ok: true},
		{name: "bare decimal point", in: ".5", want: 0.5, ok: true},
		{name: "ascii fraction", in: "1/2", want: 0.5, ok: true},
		{name: "ascii fraction with spaces", in: "3 / 4", want: 0.75, ok: true},
		{name: "mixed number", in: "1 1/2", want: 1.5, ok: true},
		{name: "vulgar fraction", in: "½", want: 0.5, ok: true},
		{name: "mixed vulgar fraction", in: "1 ½", want: 1.5, ok: true},
		{name: "vulgar fraction attached", in: "2½", want: 2.5, ok: true},
		{name: "eighth glyph", in: "⅛", want: 0.125, ok: true},
		{name: "five sixths glyph rounded constant", in: "⅚", want: 0.833, ok: true},
		{name: "third glyph rounded constant", in: "⅓", want: 0.333, ok: true},
		{name: "empty", in: "", ok: false},
		{name: "whitespace only", in: "   ", ok: false},
		{name: "words", in: "a pinch", ok: false},
		{name: "leading text before number", in: "about 2", ok: false},
		{name: "range with hyphen", in: "1-2", ok: false},
		{name: "zero denominator", in: "1/0", ok: false},
		{name: "negative", in: "-2", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseQuantity(tt.in)
			if ok != tt.ok {
				t.Fatalf("ParseQuantity(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			}
			if ok && math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ParseQuantity(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseQuantityFirstGlyphWins(t *testing.T) {
	// Malformed input with two glyphs: the first entry in the fraction
	// table ("½") is honored, the other glyph is ignored as leftover text.
	got, ok := ParseQuantity("½⅓")
	if !ok {
		t.Fatal("expected a parse")
	}
	if math.Abs(got-0.5) > 1e-9 {
		t.Errorf("got %v, want 0.5", got)
	}
}
