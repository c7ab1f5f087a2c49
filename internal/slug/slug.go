// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package slug turns display text into identifier-safe tokens. Slugs are
// lower-case ASCII letters and digits separated by single hyphens.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultReplacements are the characters turned into a space before
// slugging, so "l'eau" becomes "l-eau" rather than "leau".
var DefaultReplacements = map[rune]string{
	'\'': " ",
	'’':  " ",
	'/':  " ",
}

// ligatures covers letters that have no canonical decomposition.
var ligatures = strings.NewReplacer(
	"œ", "oe",
	"æ", "ae",
	"ß", "ss",
	"ø", "o",
	"đ", "d",
	"ł", "l",
)

// Slugger produces slugs with a fixed set of character replacements.
type Slugger struct {
	replacements map[rune]string
}

// New returns a Slugger applying replacements on top of the defaults.
// A replacement for a default character overrides it.
func New(replacements map[rune]string) *Slugger {
	merged := make(map[rune]string, len(DefaultReplacements)+len(replacements))
	for r, s := range DefaultReplacements {
		merged[r] = s
	}
	for r, s := range replacements {
		merged[r] = s
	}
	return &Slugger{replacements: merged}
}

var defaultSlugger = New(nil)

// Slugify slugs text with the default replacements.
func Slugify(text string) string {
	return defaultSlugger.Slugify(text)
}

// Slugify lower-cases text, applies the replacements, folds diacritics,
// and collapses every run of non-alphanumerics into one hyphen.
func (s *Slugger) Slugify(text string) string {
	var replaced strings.Builder
	replaced.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		if rep, ok := s.replacements[r]; ok {
			replaced.WriteString(rep)
			continue
		}
		replaced.WriteRune(r)
	}

	folded := foldASCII(replaced.String())

	var b strings.Builder
	b.Grow(len(folded))
	pendingDash := false
	for _, r := range folded {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
			continue
		}
		pendingDash = true
	}
	return b.String()
}

// Fold lower-cases text and strips diacritics, leaving punctuation and
// spacing in place. The matcher compares labels and filenames in this form.
func Fold(text string) string {
	return foldASCII(strings.ToLower(text))
}

func foldASCII(text string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, text)
	if err != nil {
		out = text
	}
	return ligatures.Replace(out)
}
