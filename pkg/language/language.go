// Package language decides whether recipe text is English. Unit spellings
// in the conversion tables are English-only, so non-English recipes are
// passed through without annotation.
package language

import (
	"strings"

	"github.com/pemistahl/lingua-go"
)

// Detector wraps a lingua detector restricted to the languages recipe
// sites commonly publish in; a small candidate set keeps detection cheap
// and accurate on short ingredient-style text.
type Detector struct {
	detector lingua.LanguageDetector
}

func New() *Detector {
	languages := []lingua.Language{
		lingua.English,
		lingua.Spanish,
		lingua.French,
		lingua.German,
		lingua.Italian,
		lingua.Portuguese,
		lingua.Dutch,
	}
	return &Detector{
		detector: lingua.NewLanguageDetectorBuilder().
			FromLanguages(languages...).
			Build(),
	}
}

// Detect returns the ISO 639-1 code of the detected language, or "" when
// the text carries too little signal to classify.
func (d *Detector) Detect(text string) string {
	lang, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return ""
	}
	return strings.ToLower(lang.IsoCode639_1().String())
}

// IsEnglish reports whether the text reads as English. Undetectable text
// counts as English so the engine still runs on terse or mixed input;
// mis-annotating is harmless, silently skipping conversion is not.
func (d *Detector) IsEnglish(text string) bool {
	lang, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return true
	}
	return lang == lingua.English
}
