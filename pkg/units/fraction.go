// Package units implements quantity parsing and imperial-to-metric
// conversion tables for recipe measurements. All functions are pure and
// degrade to "no result" on unparseable input rather than returning errors.
package units

import (
	"regexp"
	"strconv"
	"strings"
)

// vulgarFraction pairs a unicode fraction glyph with its decimal value,
// rounded to three places. Declaration order matters: when a fragment
// contains more than one glyph, the first entry in this table wins.
type vulgarFraction struct {
	glyph string
	value float64
}

var vulgarFractions = []vulgarFraction{
	{"½", 0.5},
	{"⅓", 0.333},
	{"⅔", 0.667},
	{"¼", 0.25},
	{"¾", 0.75},
	{"⅕", 0.2},
	{"⅖", 0.4},
	{"⅗", 0.6},
	{"⅘", 0.8},
	{"⅙", 0.167},
	{"⅚", 0.833},
	{"⅛", 0.125},
	{"⅜", 0.375},
	{"⅝", 0.625},
	{"⅞", 0.875},
}

// IsFractionGlyph reports whether r is one of the recognized vulgar
// fraction glyphs.
func IsFractionGlyph(r rune) bool {
	return strings.ContainsRune(GlyphRunes(), r)
}

// GlyphRunes returns all recognized fraction glyphs as one string, in
// table order. Useful for building character classes.
func GlyphRunes() string {
	var sb strings.Builder
	for _, vf := range vulgarFractions {
		sb.WriteString(vf.glyph)
	}
	return sb.String()
}

// slashFractionRe matches an ASCII fraction like "1/2" or "3 / 4".
var slashFractionRe = regexp.MustCompile(`(\d+)\s*/\s*(\d+)`)

// ParseQuantity parses free-form quantity text: a unicode vulgar fraction
// with optional leading whole number ("1 ½"), an ASCII fraction with
// optional leading whole number ("1 1/2"), or a plain decimal ("2.5").
// The second return value is false when the text is not numeric.
func ParseQuantity(text string) (float64, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, false
	}

	for _, vf := range vulgarFractions {
		if strings.Contains(text, vf.glyph) {
			rest := strings.Replace(text, vf.glyph, "", 1)
			return wholePart(rest) + vf.value, true
		}
	}

	if m := slashFractionRe.FindStringSubmatch(text); m != nil {
		num, _ := strconv.Atoi(m[1])
		den, _ := strconv.Atoi(m[2])
		if den == 0 {
			return 0, false
		}
		rest := strings.Replace(text, m[0], "", 1)
		return wholePart(rest) + float64(num)/float64(den), true
	}

	v, err := strconv.ParseFloat(text, 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

// wholePart parses the leading whole number left over after a fraction has
// been stripped out. Empty or non-numeric leftovers count as zero.
func wholePart(text string) float64 {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0
	}
	n, err := strconv.Atoi(text)
	if err != nil || n < 0 {
		return 0
	}
	return float64(n)
}
