// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple word", "Animaux", "animaux"},
		{"accents folded", "Café Noir", "cafe-noir"},
		{"apostrophe becomes separator", "L'eau", "l-eau"},
		{"typographic apostrophe", "J’ai faim", "j-ai-faim"},
		{"slash becomes separator", "Oui/Non", "oui-non"},
		{"punctuation collapsed", "Bonjour !!  ça va ?", "bonjour-ca-va"},
		{"leading and trailing trimmed", "  --Chat--  ", "chat"},
		{"ligature", "Œuf", "oeuf"},
		{"digits kept", "Grille 2", "grille-2"},
		{"empty", "", ""},
		{"only punctuation", "?!", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.input))
		})
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	inputs := []string{"Café Noir", "L'heure du goûter", "a/b/c", "déjà-vu", "Grille n°3"}
	for _, in := range inputs {
		once := Slugify(in)
		assert.Equal(t, once, Slugify(once), "input %q", in)
	}
}

func TestSlugifyCaseStable(t *testing.T) {
	assert.Equal(t, Slugify("café noir"), Slugify("Café Noir"))
	assert.Equal(t, Slugify("ANIMAUX"), Slugify("animaux"))
}

func TestSluggerCustomReplacements(t *testing.T) {
	s := New(map[rune]string{'&': " et "})
	assert.Equal(t, "pain-et-beurre", s.Slugify("Pain & Beurre"))
	assert.Equal(t, "l-eau", s.Slugify("L'eau"), "defaults still apply")
}

func TestFold(t *testing.T) {
	assert.Equal(t, "chat noir", Fold("Chat Noir"))
	assert.Equal(t, "ecole", Fold("École"))
	assert.Equal(t, "l'oeuf", Fold("L'Œuf"))
}
