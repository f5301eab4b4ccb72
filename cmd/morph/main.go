// Command morph resolves annotated sentences against a dictionary.
//
// Sentences come from the command line, or from stdin when no
// arguments are given:
//
//	morph -dict dict.txt "кот{NOUN,sing,datv} спит"
//	morph -dict dict.txt < sentences.txt
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ruslingua/slovoform"
)

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: morph -dict dict.txt [sentence ...]

Resolves annotated sentences against the dictionary. Sentences are read
from the arguments, or line by line from stdin when none are given.

Options:
`)
	flag.PrintDefaults()
}

func main() {
	dictPath := flag.String("dict", "", "path to the dictionary file")
	cp1251 := flag.Bool("cp1251", false, "dictionary file is Windows-1251 encoded")
	flag.Usage = usage
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

	if flag.NArg() > 0 {
		for _, s := range m.MorphList(flag.Args()) {
			fmt.Println(s)
		}
		return
	}

	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		fmt.Println(m.Morph(sc.Text()))
	}
	if err := sc.Err(); err != nil {
		log.Fatalf("read stdin: %v", err)
	}
}
