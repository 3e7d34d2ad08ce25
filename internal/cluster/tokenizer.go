package cluster

import (
	"strings"
	"unicode"

	"github.com/kljensen/snowball/english"
)

// stopWords are common English words that add noise to job descriptions.
var stopWords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "as": true, "at": true,
	"be": true, "but": true, "by": true, "for": true, "from": true,
	"has": true, "have": true, "in": true, "into": true, "is": true,
	"it": true, "its": true, "of": true, "on": true, "or": true,
	"our": true, "that": true, "the": true, "their": true, "they": true,
	"this": true, "to": true, "was": true, "we": true, "were": true,
	"will": true, "with": true, "you": true, "your": true,
}

// tokenize lowercases the text, splits it into letter/digit runs, drops
// stop words and single characters, and stems what is left.
func tokenize(text string) []string {
	var tokens []string
	var word strings.Builder

	flush := func() {
		w := word.String()
		word.Reset()
		if len(w) < 2 || stopWords[w] {
			return
		}
		tokens = append(tokens, english.Stem(w, true))
	}

	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			word.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()

	return tokens
}
