package slovoform

import "strings"

// Morph resolves every annotated token of sentence and returns the
// rebuilt sentence. The whole input is folded to lowercase first, so
// output is always lowercase. Empty and whitespace-only input yields
// an empty string.
//
// Tokens are separated by spaces and tabs. A token without braces
// passes through verbatim; "word{POS,attr1,attr2}" replaces word with
// the dictionary form matching the spec. An empty "{}" passes the bare
// word through, and a spec naming any unknown attribute resolves with
// the unconstrained code instead of failing. Output tokens are joined
// with single spaces.
func (m *Morpher) Morph(sentence string) string {
	if strings.TrimSpace(sentence) == "" {
		return ""
	}
	sentence = strings.ToLower(sentence)

	tokens := strings.FieldsFunc(sentence, func(r rune) bool {
		return r == ' ' || r == '\t'
	})
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = m.morphToken(tok)
	}
	return strings.Join(out, " ")
}

// morphToken resolves a single token. The spec runs from the first "{"
// to the matching "}" (or to the end of the token when unclosed);
// anything after the closing brace is dropped.
func (m *Morpher) morphToken(tok string) string {
	word, rest, found := strings.Cut(tok, "{")
	if !found {
		return tok
	}
	spec := rest
	if i := strings.IndexByte(rest, '}'); i >= 0 {
		spec = rest[:i]
	}
	if spec == "" {
		return word
	}
	return m.MorphWord(word, m.tags.lookup(splitTags(spec)))
}
