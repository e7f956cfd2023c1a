// Package convert implements the measurement-annotation engine: it scans
// ingredient and instruction text for imperial quantities and appends
// parenthetical metric equivalents. Original text is never removed or
// reordered; unparseable input comes back unchanged.
package convert

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/cookparse/cookparse/pkg/units"
)

// embeddedLengthRe matches an in-sentence length mention like "1-inch",
// "2.5 inches", "1/2-inch" or "½-inch", terminated at a word boundary.
// Spellings come from the length table, longest first so "inches" beats
// "inch" at the same offset.
var embeddedLengthRe = regexp.MustCompile(
	`(?i)(\d+(?:[./]\d+)?|[` + units.GlyphRunes() + `])[-\s]*(` +
		strings.Join(units.LengthSpellings(), "|") + `)\b`)

// AnnotateIngredient annotates one ingredient line. A leading
// quantity+unit prefix gets a metric equivalent appended to the full line;
// embedded length mentions anywhere in the line each get one appended in
// place. Lines that already lead with a metric unit are returned as-is.
func AnnotateIngredient(line string) string {
	working := line

	if quantity, unit, ok := leadingPrefix(line); ok {
		if units.IsMetric(unit) {
			return line
		}
		if value, parsed := units.ParseQuantity(quantity); parsed {
			if domain, factor := units.Lookup(unit); domain != units.DomainNone {
				working = line + " (" + units.FormatMetric(domain, value*factor) + ")"
			}
		}
	}

	return annotateEmbeddedLengths(working)
}

// leadingPrefix splits off a quantity expression and unit token from the
// start of a line. The quantity scanner accepts digits, fraction glyphs,
// whitespace, slash, dot and hyphen and must see at least one digit or
// glyph; the unit scanner then accepts letters and periods. Both phases
// must consume something for the prefix to count.
func leadingPrefix(line string) (quantity, unit string, ok bool) {
	i := len(line)
	numeral := false
	for idx, r := range line {
		if unicode.IsDigit(r) || units.IsFractionGlyph(r) {
			numeral = true
			continue
		}
		if strings.ContainsRune(" \t/.-", r) {
			continue
		}
		i = idx
		break
	}
	if !numeral {
		return "", "", false
	}
	quantity = line[:i]

	j := i
	for j < len(line) {
		c := line[j]
		if c != '.' && !(c >= 'a' && c <= 'z') && !(c >= 'A' && c <= 'Z') {
			break
		}
		j++
	}
	if j == i {
		return "", "", false
	}
	return quantity, line[i:j], true
}

// annotateEmbeddedLengths appends a metric equivalent after every embedded
// length mention. A mention is skipped when the line already wraps that
// exact text in parentheses, or when a parenthetical already follows it
// (which is what keeps repeated runs from stacking annotations).
func annotateEmbeddedLengths(line string) string {
	matches := embeddedLengthRe.FindAllStringSubmatchIndex(line, -1)
	if matches == nil {
		return line
	}

	var sb strings.Builder
	last := 0
	for _, m := range matches {
		start, end := m[0], m[1]
		sb.WriteString(line[last:end])
		last = end

		if strings.Contains(line, "("+line[start:end]+")") {
			continue
		}
		if strings.HasPrefix(strings.TrimLeft(line[end:], " "), "(") {
			continue
		}

		value, ok := units.ParseQuantity(line[m[2]:m[3]])
		if !ok {
			continue
		}
		factor, ok := units.LengthFactor(line[m[4]:m[5]])
		if !ok {
			continue
		}
		sb.WriteString(" (" + units.FormatLength(value*factor) + ")")
	}
	sb.WriteString(line[last:])
	return sb.String()
}
