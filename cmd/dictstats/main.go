// Command dictstats prints summary statistics for a dictionary file:
// word, form and tag counts, the tag registry with its primes, and
// optionally lemma groups sharing a Snowball stem.
package main

import (
	"flag"
	"fmt"
	"log"
	"sort"

	"github.com/kljensen/snowball"

	"github.com/ruslingua/slovoform"
)

func main() {
	dictPath := flag.String("dict", "", "path to the dictionary file")
	cp1251 := flag.Bool("cp1251", false, "dictionary file is Windows-1251 encoded")
	stems := flag.Bool("stems", false, "group lemmas by Snowball russian stem")
	top := flag.Int("top", 20, "number of stem groups to print")
	flag.Parse()

	if *dictPath == "" {
		log.Fatal("missing -dict flag")
	}

	var opts []slovoform.OpenOption
	if *cp1251 {
		opts = append(opts, slovoform.WithWindows1251())
	}
	m, err := slovoform.Open(*dictPath, opts...)
	if err != nil {
		log.Fatalf("failed to load dictionary: %v", err)
	}

	fmt.Printf("words: %d\n", m.WordCount())
	fmt.Printf("forms: %d\n", m.FormCount())
	fmt.Printf("tags:  %d\n", m.TagCount())

	fmt.Println("\ntag registry:")
	for _, tag := range m.Tags() {
		p, _ := m.Prime(tag)
		fmt.Printf("  %-12s %d\n", tag, p)
	}

	printFormDistribution(m)

	if *stems {
		printStemGroups(m, *top)
	}
}

// printFormDistribution reports how many lemmas store how many forms.
func printFormDistribution(m *slovoform.Morpher) {
	dist := make(map[int]int)
	for _, lemma := range m.Words() {
		dist[m.Word(lemma).Len()]++
	}
	sizes := make([]int, 0, len(dist))
	for n := range dist {
		sizes = append(sizes, n)
	}
	sort.Ints(sizes)

	fmt.Println("\nforms per word:")
	for _, n := range sizes {
		fmt.Printf("  %3d forms: %d words\n", n, dist[n])
	}
}

// printStemGroups lists the largest groups of lemmas sharing a stem,
// which usually flags related lexemes or duplicated entries.
func printStemGroups(m *slovoform.Morpher, top int) {
	groups := make(map[string][]string)
	for _, lemma := range m.Words() {
		stem, err := snowball.Stem(lemma, "russian", false)
		if err != nil {
			continue
		}
		groups[stem] = append(groups[stem], lemma)
	}

	type group struct {
		stem   string
		lemmas []string
	}
	shared := make([]group, 0)
	for stem, lemmas := range groups {
		if len(lemmas) > 1 {
			shared = append(shared, group{stem, lemmas})
		}
	}
	sort.Slice(shared, func(i, j int) bool {
		if len(shared[i].lemmas) != len(shared[j].lemmas) {
			return len(shared[i].lemmas) > len(shared[j].lemmas)
		}
		return shared[i].stem < shared[j].stem
	})

	fmt.Printf("\ndistinct stems: %d, shared by several lemmas: %d\n", len(groups), len(shared))
	for i, g := range shared {
		if i >= top {
			break
		}
		fmt.Printf("  %-12s %v\n", g.stem, g.lemmas)
	}
}
