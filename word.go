package slovoform

// Form is one stored inflected form keyed by its tag code.
type Form struct {
	// Code is the tag code the form was registered under.
	Code TagCode
	// Text is the surface form.
	Text string
}

// Word holds the inflected forms registered for one lemma. Forms keep
// their dictionary (insertion) order, which nearest-match resolution
// depends on.
type Word struct {
	// lemma is the lowercased headword.
	lemma string
	// forms stores the forms in insertion order.
	forms []Form
	// byCode maps tag code → index into forms.
	byCode map[TagCode]int
}

func newWord(lemma string) *Word {
	return &Word{lemma: lemma, byCode: make(map[TagCode]int)}
}

// add stores text under code. The first form seen for a code wins;
// later duplicates are ignored and reported false.
func (w *Word) add(code TagCode, text string) bool {
	if _, ok := w.byCode[code]; ok {
		return false
	}
	w.byCode[code] = len(w.forms)
	w.forms = append(w.forms, Form{Code: code, Text: text})
	return true
}

// Lemma returns the headword this entry belongs to.
func (w *Word) Lemma() string {
	return w.lemma
}

// Len returns the number of stored forms.
func (w *Word) Len() int {
	return len(w.forms)
}

// Forms returns the stored forms in dictionary order.
func (w *Word) Forms() []Form {
	out := make([]Form, len(w.forms))
	copy(out, w.forms)
	return out
}

// Form returns the form stored for exactly code.
func (w *Word) Form(code TagCode) (string, bool) {
	i, ok := w.byCode[code]
	if !ok {
		return "", false
	}
	return w.forms[i].Text, true
}
