package slovoform

import "testing"

func TestTagRegistryAssign(t *testing.T) {
	r := newTagRegistry()
	tags := []string{"noun", "anim", "masc", "sing", "nomn", "gent", "datv", "accs"}
	want := []uint32{2, 3, 5, 7, 11, 13, 17, 19}
	for i, tag := range tags {
		if got := r.assign(tag); got != want[i] {
			t.Errorf("assign(%q) = %d, want %d", tag, got, want[i])
		}
	}

	// Re-assigning keeps the original prime; comparison is case-insensitive.
	if got := r.assign("NOUN"); got != 2 {
		t.Errorf("assign(%q) = %d, want 2", "NOUN", got)
	}
	if got := len(r.order); got != len(tags) {
		t.Errorf("registry holds %d tokens, want %d", got, len(tags))
	}
}

func TestTagRegistryEncode(t *testing.T) {
	r := newTagRegistry()
	tests := []struct {
		tokens []string
		want   TagCode
	}{
		{[]string{"noun"}, 2},
		{[]string{"noun", "sing"}, 6},
		{[]string{"sing", "noun"}, 6},
		{[]string{"noun", "noun"}, 4}, // duplicates multiply again
		{[]string{"noun", "sing", "datv"}, 30},
		{nil, 1},
	}
	for _, tt := range tests {
		if got := r.encode(tt.tokens); got != tt.want {
			t.Errorf("encode(%q) = %d, want %d", tt.tokens, got, tt.want)
		}
	}
}

func TestTagRegistryLookup(t *testing.T) {
	r := newTagRegistry()
	r.encode([]string{"noun", "sing"})

	if got := r.lookup([]string{"noun", "sing"}); got != 6 {
		t.Errorf("lookup(noun,sing) = %d, want 6", got)
	}
	if got := r.lookup([]string{"NOUN"}); got != 2 {
		t.Errorf("lookup(NOUN) = %d, want 2", got)
	}
	// Any unknown token forces the whole code to 1.
	if got := r.lookup([]string{"noun", "plur"}); got != 1 {
		t.Errorf("lookup(noun,plur) = %d, want 1", got)
	}
	if got := r.lookup(nil); got != 1 {
		t.Errorf("lookup(nil) = %d, want 1", got)
	}
	// Lookups never register tokens.
	if _, ok := r.prime("plur"); ok {
		t.Error("lookup registered an unknown token")
	}
	// Same tokens, same code.
	if a, b := r.lookup([]string{"sing", "noun"}), r.lookup([]string{"sing", "noun"}); a != b {
		t.Errorf("lookup is not deterministic: %d vs %d", a, b)
	}
}

func TestSplitTags(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"noun sing,nomn", []string{"noun", "sing", "nomn"}},
		{"noun,sing,nomn", []string{"noun", "sing", "nomn"}},
		{"noun  sing, nomn", []string{"noun", "sing", "nomn"}},
		{"", nil},
		{" , ", nil},
	}
	for _, tt := range tests {
		got := splitTags(tt.in)
		if len(got) != len(tt.want) {
			t.Errorf("splitTags(%q) = %q, want %q", tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("splitTags(%q)[%d] = %q, want %q", tt.in, i, got[i], tt.want[i])
			}
		}
	}
}

func TestSpecCode(t *testing.T) {
	m := newTestMorpher(t, []string{
		"1",
		"кот\tNOUN anim",
		"кота\tNOUN anim,masc,gent",
	})
	// The inflection line assigns noun=2, anim=3, masc=5, gent=7.
	if got := m.SpecCode([]string{"NOUN", "anim", "masc", "gent"}); got != 210 {
		t.Errorf("SpecCode = %d, want 210", got)
	}
	if got := m.SpecCode([]string{"noun", "plur"}); got != 1 {
		t.Errorf("SpecCode with unknown token = %d, want 1", got)
	}
}

func TestDecodeTags(t *testing.T) {
	m := newTestMorpher(t, []string{
		"1",
		"кот\tNOUN anim",
		"кота\tNOUN anim,masc,gent",
	})
	tests := []struct {
		code TagCode
		want []string
		ok   bool
	}{
		{210, []string{"noun", "anim", "masc", "gent"}, true},
		{4, []string{"noun", "noun"}, true},
		{1, nil, true},
		{11, nil, false}, // no registered prime divides 11
		{0, nil, false},
	}
	for _, tt := range tests {
		got, ok := m.DecodeTags(tt.code)
		if ok != tt.ok || len(got) != len(tt.want) {
			t.Errorf("DecodeTags(%d) = %q, %v; want %q, %v", tt.code, got, ok, tt.want, tt.ok)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("DecodeTags(%d)[%d] = %q, want %q", tt.code, i, got[i], tt.want[i])
			}
		}
	}
}
