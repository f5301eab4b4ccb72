package slovoform

import "strings"

// TagCode is the numeric code of a grammatical attribute multiset: the
// product of the primes assigned to its member tokens. The product is
// 32-bit unsigned and wraps around for very large multisets.
//
// Because every token owns a distinct prime, code(a) divides code(b)
// exactly when a's attributes form a sub-multiset of b's, and the
// quotient is prime exactly when b carries one extra attribute.
type TagCode uint32

// tagRegistry assigns a prime number to every distinct attribute token.
type tagRegistry struct {
	// primes maps lowercased token → its prime.
	primes map[string]uint32
	// order records tokens in assignment order.
	order []string
	// max is the highest prime assigned so far.
	max uint32
}

func newTagRegistry() *tagRegistry {
	return &tagRegistry{primes: make(map[string]uint32)}
}

// assign returns the prime for tok, registering the next free prime on
// first sighting. Tokens are folded to lowercase. Assigned entries
// never change.
func (r *tagRegistry) assign(tok string) uint32 {
	tok = strings.ToLower(tok)
	if p, ok := r.primes[tok]; ok {
		return p
	}
	var p uint32
	if len(r.primes) == 0 {
		p = 2
	} else {
		p = nextPrimeAfter(r.max)
	}
	r.primes[tok] = p
	r.order = append(r.order, tok)
	r.max = p
	return p
}

// encode computes the build-time code of tokens, assigning primes to
// unseen ones. Duplicate tokens multiply the product again.
func (r *tagRegistry) encode(tokens []string) TagCode {
	code := TagCode(1)
	for _, tok := range tokens {
		code *= TagCode(r.assign(tok))
	}
	return code
}

// lookup computes the code of tokens without touching the registry.
// Any token missing from the registry forces the whole code to 1
// ("unconstrained") rather than failing.
func (r *tagRegistry) lookup(tokens []string) TagCode {
	code := TagCode(1)
	for _, tok := range tokens {
		p, ok := r.primes[strings.ToLower(tok)]
		if !ok {
			return 1
		}
		code *= TagCode(p)
	}
	return code
}

// prime returns the prime assigned to tok, if any.
func (r *tagRegistry) prime(tok string) (uint32, bool) {
	p, ok := r.primes[strings.ToLower(tok)]
	return p, ok
}

// splitTags splits an attribute field on commas and spaces, dropping
// empty pieces. Dictionary fields and inline specs both use this form.
func splitTags(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' '
	})
}

// SpecCode encodes an inline attribute spec the way sentence resolution
// does: tokens are looked up only, and any unregistered token forces
// the whole code to 1.
func (m *Morpher) SpecCode(tags []string) TagCode {
	return m.tags.lookup(tags)
}

// DecodeTags factors code back into its attribute tokens, in prime
// assignment order. The second result is false when a residue remains
// that no registered prime divides (a foreign or wrapped code).
func (m *Morpher) DecodeTags(code TagCode) ([]string, bool) {
	if code == 0 {
		return nil, false
	}
	var tags []string
	for _, tag := range m.tags.order {
		p := TagCode(m.tags.primes[tag])
		for code%p == 0 {
			tags = append(tags, tag)
			code /= p
		}
		if code == 1 {
			break
		}
	}
	return tags, code == 1
}
