package units

import (
	"sort"
	"strings"
)

// Domain identifies which measurement table a unit spelling belongs to.
type Domain int

const (
	DomainNone Domain = iota
	DomainVolume
	DomainWeight
	DomainLength
)

// Conversion factors into each domain's metric base unit:
// Volume -> milliliters, Weight -> grams, Length -> centimeters.
// The tables are closed; spellings not listed here never convert.

var volumeToML = map[string]float64{
	"tsp":         4.929,
	"tsps":        4.929,
	"teaspoon":    4.929,
	"teaspoons":   4.929,
	"tbsp":        14.787,
	"tbsps":       14.787,
	"tbs":         14.787,
	"tablespoon":  14.787,
	"tablespoons": 14.787,
	"cup":         236.588,
	"cups":        236.588,
	"pint":        473.176,
	"pints":       473.176,
	"pt":          473.176,
	"quart":       946.353,
	"quarts":      946.353,
	"qt":          946.353,
	"qts":         946.353,
	"gallon":      3785.41,
	"gallons":     3785.41,
	"gal":         3785.41,
}

var weightToG = map[string]float64{
	"oz":     28.3495,
	"ounce":  28.3495,
	"ounces": 28.3495,
	"lb":     453.592,
	"lbs":    453.592,
	"pound":  453.592,
	"pounds": 453.592,
}

var lengthToCM = map[string]float64{
	// Bare "in" is deliberately absent: it collides with the preposition.
	"inch":   2.54,
	"inches": 2.54,
	"ft":     30.48,
	"foot":   30.48,
	"feet":   30.48,
}

// metricUnits lists spellings already in metric units; a leading quantity
// carrying one of these is never converted.
var metricUnits = map[string]struct{}{
	"ml": {}, "milliliter": {}, "milliliters": {},
	"l": {}, "liter": {}, "liters": {}, "litre": {}, "litres": {},
	"g": {}, "gram": {}, "grams": {},
	"kg": {}, "kilogram": {}, "kilograms": {},
	"mg": {}, "milligram": {}, "milligrams": {},
	"cm": {}, "centimeter": {}, "centimeters": {},
	"mm": {}, "millimeter": {}, "millimeters": {},
	"m": {}, "meter": {}, "meters": {},
	"°c": {},
}

// NormalizeUnit lowercases a unit token and strips one trailing period,
// so "Oz." and "oz" hit the same table entry.
func NormalizeUnit(token string) string {
	token = strings.ToLower(strings.TrimSpace(token))
	return strings.TrimSuffix(token, ".")
}

// IsMetric reports whether the (raw) unit token is already metric.
func IsMetric(token string) bool {
	_, ok := metricUnits[NormalizeUnit(token)]
	return ok
}

// Lookup resolves a unit token against the Volume, Weight and Length
// tables in that order. Domains are mutually exclusive by construction,
// so first match wins. Unknown tokens return DomainNone.
func Lookup(token string) (Domain, float64) {
	key := NormalizeUnit(token)
	if f, ok := volumeToML[key]; ok {
		return DomainVolume, f
	}
	if f, ok := weightToG[key]; ok {
		return DomainWeight, f
	}
	if f, ok := lengthToCM[key]; ok {
		return DomainLength, f
	}
	return DomainNone, 0
}

// LengthSpellings returns the length-table spellings sorted longest first,
// for building the embedded-measurement scanner's pattern.
func LengthSpellings() []string {
	spellings := make([]string, 0, len(lengthToCM))
	for s := range lengthToCM {
		spellings = append(spellings, s)
	}
	// Longest first so "inches" is preferred over "inch" at the same offset.
	sort.Slice(spellings, func(i, j int) bool {
		if len(spellings[i]) != len(spellings[j]) {
			return len(spellings[i]) > len(spellings[j])
		}
		return spellings[i] < spellings[j]
	})
	return spellings
}

// LengthFactor returns the centimeter factor for a length spelling.
func LengthFactor(token string) (float64, bool) {
	f, ok := lengthToCM[NormalizeUnit(token)]
	return f, ok
}
