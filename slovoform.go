// Package slovoform resolves requested grammatical word-forms using a
// dictionary built from an OpenCorpora-style plain-text morphology
// dictionary, without applying any grammar rules of its own.
//
// Words in a sentence may carry an inline attribute spec, e.g.
// "кот{NOUN,sing,datv}"; Morph replaces each annotated word with the
// stored form matching the requested attributes, or leaves the word
// unchanged when none fits.
package slovoform

import (
	"sort"
	"strings"
)

// Morpher holds the dictionary and the tag registry built from the
// input lines. Both are frozen after construction, so all methods are
// safe for concurrent use.
type Morpher struct {
	// words maps lowercased lemma → its stored forms.
	words map[string]*Word

	// tags assigns a prime to every attribute token encoded while
	// building, and serves read-only lookups afterwards.
	tags *tagRegistry

	// formCount counts stored forms across all words.
	formCount int
}

// New builds a Morpher from the raw dictionary line sequence.
func New(lines []string) (*Morpher, error) {
	m := &Morpher{
		words: make(map[string]*Word),
		tags:  newTagRegistry(),
	}
	if err := m.addLines(lines); err != nil {
		return nil, err
	}
	return m, nil
}

// Word looks up the entry for lemma (case-insensitive).
// Returns nil for unknown lemmas.
func (m *Morpher) Word(lemma string) *Word {
	return m.words[strings.ToLower(lemma)]
}

// Words returns all known lemmas, sorted.
func (m *Morpher) Words() []string {
	out := make([]string, 0, len(m.words))
	for lemma := range m.words {
		out = append(out, lemma)
	}
	sort.Strings(out)
	return out
}

// Prime returns the prime assigned to the attribute token tag.
func (m *Morpher) Prime(tag string) (uint32, bool) {
	return m.tags.prime(tag)
}

// Tags returns all registered attribute tokens in assignment order.
func (m *Morpher) Tags() []string {
	out := make([]string, len(m.tags.order))
	copy(out, m.tags.order)
	return out
}

// WordCount returns the number of known lemmas.
func (m *Morpher) WordCount() int {
	return len(m.words)
}

// FormCount returns the number of stored forms across all lemmas.
func (m *Morpher) FormCount() int {
	return m.formCount
}

// TagCount returns the number of registered attribute tokens.
func (m *Morpher) TagCount() int {
	return len(m.tags.order)
}
