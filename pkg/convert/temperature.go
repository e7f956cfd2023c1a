package convert

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	// fahrenheitRe matches "350F", "350 F" and "350°F". The F is uppercase
	// only so prose like "350 for" never triggers a conversion.
	fahrenheitRe = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*°?\s*F\b`)

	// degreesRe matches "350 degrees" and "350 degrees Fahrenheit". A bare
	// "degrees" with no scale named is read as Fahrenheit, the US recipe
	// convention.
	degreesRe = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*degrees?(?:\s+fahrenheit)?\b`)
)

// AnnotateTemperatures appends an integer Celsius equivalent after every
// Fahrenheit mention in the text. Each mention is annotated independently;
// numbers with no Fahrenheit marker are left alone.
func AnnotateTemperatures(text string) string {
	text = annotateFahrenheit(text, fahrenheitRe)
	return annotateFahrenheit(text, degreesRe)
}

func annotateFahrenheit(text string, re *regexp.Regexp) string {
	matches := re.FindAllStringSubmatchIndex(text, -1)
	if matches == nil {
		return text
	}

	var sb strings.Builder
	last := 0
	for _, m := range matches {
		sb.WriteString(text[last:m[1]])
		last = m[1]

		f, err := strconv.ParseFloat(text[m[2]:m[3]], 64)
		if err != nil {
			continue
		}
		c := int(math.Round((f - 32) * 5 / 9))
		fmt.Fprintf(&sb, " (%d°C)", c)
	}
	sb.WriteString(text[last:])
	return sb.String()
}
