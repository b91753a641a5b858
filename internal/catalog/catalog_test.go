package catalog

import (
	"strings"
	"testing"
)

func TestDrones(t *testing.T) {
	t.Run("names are non-empty and case-insensitively distinct", func(t *testing.T) {
		seen := make(map[string]bool)
		for _, d := range Drones() {
			if strings.TrimSpace(d.Name) == "" {
				t.Errorf("drone %d has an empty name", d.ID)
			}
			lower := strings.ToLower(d.Name)
			if seen[lower] {
				t.Errorf("duplicate drone name: %s", d.Name)
			}
			seen[lower] = true
		}
	})

	t.Run("names never collide with comparison separators", func(t *testing.T) {
		// A name containing a trigger word or the connector would be
		// split apart during hint extraction and become unresolvable.
		forbidden := append([]string{"and"}, ComparisonTriggers...)
		for _, d := range Drones() {
			lower := strings.ToLower(d.Name)
			for _, word := range forbidden {
				for _, nameWord := range strings.Fields(lower) {
					if nameWord == word {
						t.Errorf("drone name %q contains separator word %q", d.Name, word)
					}
				}
			}
		}
	})

	t.Run("flagship entries are present with their prices", func(t *testing.T) {
		if Drones()[0].Name != "HAWK 2.O" || Drones()[0].Price != 14999 {
			t.Errorf("first entry = %s (₹%d), want HAWK 2.O (₹14999)", Drones()[0].Name, Drones()[0].Price)
		}
		found := false
		for _, d := range Drones() {
			if d.Name == "VIRAJ 2.O" {
				found = true
				if d.Price != 500000 {
					t.Errorf("VIRAJ 2.O price = %d, want 500000", d.Price)
				}
			}
		}
		if !found {
			t.Error("VIRAJ 2.O missing from catalog")
		}
	})
}

func TestKeywords(t *testing.T) {
	t.Run("phrases are non-empty and unique", func(t *testing.T) {
		seen := make(map[string]bool)
		for _, entry := range Keywords() {
			if entry.Phrase == "" {
				t.Error("empty keyword phrase")
			}
			if entry.Response == "" {
				t.Errorf("keyword %q has an empty response", entry.Phrase)
			}
			if seen[entry.Phrase] {
				t.Errorf("duplicate keyword phrase: %q", entry.Phrase)
			}
			seen[entry.Phrase] = true
		}
	})

	t.Run("includes the drone types phrase", func(t *testing.T) {
		if _, ok := Keywords().Response("drone types"); !ok {
			t.Error("keyword table must include \"drone types\"")
		}
	})
}

func TestVocabulary(t *testing.T) {
	words := make(map[string]bool)
	for _, w := range Vocabulary() {
		words[w] = true
	}

	t.Run("covers triggers and the connector", func(t *testing.T) {
		for _, w := range append([]string{"and"}, ComparisonTriggers...) {
			if !words[w] {
				t.Errorf("vocabulary missing %q", w)
			}
		}
	})

	t.Run("covers every catalog name word", func(t *testing.T) {
		for _, d := range Drones() {
			for _, w := range strings.Fields(strings.ToLower(d.Name)) {
				if !words[w] {
					t.Errorf("vocabulary missing name word %q", w)
				}
			}
		}
	})

	t.Run("is lowercase and deduplicated", func(t *testing.T) {
		seen := make(map[string]bool)
		for _, w := range Vocabulary() {
			if w != strings.ToLower(w) {
				t.Errorf("vocabulary word %q is not lowercase", w)
			}
			if seen[w] {
				t.Errorf("duplicate vocabulary word %q", w)
			}
			seen[w] = true
		}
	})
}
