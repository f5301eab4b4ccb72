package slovoform

import (
	"fmt"
	"strings"
)

// lineMode is the parser state: dictionary lines are either headword
// headers or inflection lines, and a group marker decides which.
type lineMode int

const (
	// modeInflection attaches lines to the current headword.
	modeInflection lineMode = iota
	// modeHeader treats the next non-blank line as a headword header.
	modeHeader
)

// addLines runs the dictionary parser over the raw line sequence.
//
// The format is OpenCorpora-style: a line starting with an ASCII digit
// is a lexeme group marker carrying no data of its own; the line after
// it is a header "lemma<TAB>POS attr1,attr2,...", and every following
// line until the next marker is an inflection
// "surfaceForm<TAB>POS attr1,attr2,..." of that lemma. Lines are
// folded to lowercase; blank lines are skipped in any state.
//
// A header for a new lemma only creates its entry: the headword's own
// tags are not encoded and no form is stored for it. A repeated header
// (homonymous lexemes share one surface string) does encode its tags
// and records the headword under that code in the existing entry.
// Inflection lines store their form under the encoded code unless the
// code is already taken (first write wins).
func (m *Morpher) addLines(lines []string) error {
	mode := modeInflection
	current := ""

	for i, raw := range lines {
		line := strings.ToLower(raw)
		if strings.TrimSpace(line) == "" {
			continue
		}
		if line[0] >= '0' && line[0] <= '9' {
			mode = modeHeader
			continue
		}

		surface, attrs, _ := strings.Cut(line, "\t")

		switch mode {
		case modeHeader:
			mode = modeInflection
			current = surface
			w, seen := m.words[surface]
			if !seen {
				m.words[surface] = newWord(surface)
				continue
			}
			if w.add(m.tags.encode(splitTags(attrs)), surface) {
				m.formCount++
			}

		case modeInflection:
			if current == "" {
				return fmt.Errorf("dictionary line %d: inflected form %q before any headword", i+1, surface)
			}
			if m.words[current].add(m.tags.encode(splitTags(attrs)), surface) {
				m.formCount++
			}
		}
	}
	return nil
}
