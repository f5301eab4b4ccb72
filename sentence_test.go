package slovoform

import "testing"

func TestMorphSentence(t *testing.T) {
	m := newTestMorpher(t, catDict)
	tests := []struct {
		in   string
		want string
	}{
		{"кот{NOUN,sing,datv}", "коту"},
		{"кот{NOUN,sing,gent}", "кот"},
		{"дай кот{NOUN,sing,datv} молока", "дай коту молока"},
		{"КОТ{NOUN,SING,DATV}", "коту"},
		{"Кот спит", "кот спит"},
		{"кот{}", "кот"},
		{"кот", "кот"},
		{"", ""},
		{"   \t ", ""},
		{"кот\tспит", "кот спит"},
		{"кот  спит", "кот спит"},
		// Unclosed spec runs to the end of the token.
		{"кот{NOUN,sing,datv", "коту"},
		// Anything after the closing brace is dropped.
		{"кот{NOUN,sing,datv},", "коту"},
		// Unknown attribute degrades to the unconstrained code.
		{"кот{NOUN,sing,plur}", "кот"},
		{"пёс{NOUN,sing,datv}", "пёс"},
	}
	for _, tt := range tests {
		if got := m.Morph(tt.in); got != tt.want {
			t.Errorf("Morph(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMorphSentenceMultipleSpecs(t *testing.T) {
	m := newTestMorpher(t, []string{
		"1",
		"стол\tNOUN inan",
		"столу\tNOUN inan,datv",
		"2",
		"кот\tNOUN anim",
		"коту\tNOUN anim,datv",
		"3",
	})
	in := "кот{NOUN,anim,datv} и стол{NOUN,inan,datv}"
	if got, want := m.Morph(in), "коту и столу"; got != want {
		t.Errorf("Morph(%q) = %q, want %q", in, got, want)
	}
}

var benchSink string

func BenchmarkMorph(b *testing.B) {
	m, err := New(catDict)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSink = m.Morph("дай кот{NOUN,sing,datv} молока")
	}
}
