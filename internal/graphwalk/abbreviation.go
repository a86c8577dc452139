package graphwalk

import "strings"

// Words dropped before abbreviating a term.
var stopWords = map[string]bool{
	"a":    true,
	"an":   true,
	"and":  true,
	"by":   true,
	"for":  true,
	"in":   true,
	"of":   true,
	"on":   true,
	"or":   true,
	"the":  true,
	"to":   true,
	"with": true,
}

const maxAbbreviationLen = 8

// Abbreviate derives the deterministic short form of a term: drop stop
// words, title-case each remaining word, keep its first letter and first
// vowel but drop later vowels, then truncate.
func Abbreviate(term string) string {
	var b strings.Builder
	for _, word := range strings.Fields(term) {
		if stopWords[strings.ToLower(word)] {
			continue
		}
		b.WriteString(abbreviateWord(titleWord(word)))
	}
	out := b.String()
	if len(out) > maxAbbreviationLen {
		out = out[:maxAbbreviationLen]
	}
	return out
}

func abbreviateWord(word string) string {
	if word == "" {
		return word
	}
	var b strings.Builder
	b.WriteByte(word[0])
	vowelKept := false
	for i := 1; i < len(word); i++ {
		if isVowel(word[i]) {
			if vowelKept {
				continue
			}
			vowelKept = true
		}
		b.WriteByte(word[i])
	}
	return b.String()
}

func isVowel(c byte) bool {
	switch c | 0x20 {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}
