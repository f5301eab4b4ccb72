package slovoform

import (
	"runtime"
	"strings"
	"sync"
)

// MorphWord returns the stored form of word for the requested tag code,
// or word unchanged when nothing fits. It never fails: unknown words
// and unmatched codes both fall back to the input.
//
// Resolution order: an exact code hit wins; otherwise the stored forms
// are scanned in dictionary order and the first whose code is a
// multiple of the requested one with a prime quotient is taken (its
// tag set is the requested one plus exactly one extra attribute).
// Supersets further away are not considered, and no "best" match is
// chosen among several qualifying forms.
func (m *Morpher) MorphWord(word string, code TagCode) string {
	w := m.words[strings.ToLower(word)]
	if w == nil {
		return word
	}
	if i, ok := w.byCode[code]; ok {
		return w.forms[i].Text
	}
	if code == 0 {
		// A wrapped-around product; nothing can match it.
		return word
	}
	for _, f := range w.forms {
		if f.Code%code == 0 && isPrime(uint32(f.Code/code)) {
			return f.Text
		}
	}
	return word
}

// MorphList resolves a batch of sentences, splitting the work across
// the available CPUs. Result order matches the input order.
func (m *Morpher) MorphList(sentences []string) []string {
	out := make([]string, len(sentences))

	workers := runtime.NumCPU()
	if workers > len(sentences) {
		workers = len(sentences)
	}
	if workers <= 1 {
		for i, s := range sentences {
			out[i] = m.Morph(s)
		}
		return out
	}

	chunk := (len(sentences) + workers - 1) / workers
	var wg sync.WaitGroup
	for start := 0; start < len(sentences); start += chunk {
		end := start + chunk
		if end > len(sentences) {
			end = len(sentences)
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				out[i] = m.Morph(sentences[i])
			}
		}(start, end)
	}
	wg.Wait()
	return out
}
