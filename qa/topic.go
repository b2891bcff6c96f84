package qa

import (
	"strings"
	"unicode"
)

// stopWords are frequent words excluded from topic overlap.
var stopWords = map[string]struct{}{
	"what": {}, "which": {}, "where": {}, "when": {}, "that": {}, "this": {},
	"with": {}, "from": {}, "about": {}, "they": {}, "their": {}, "there": {},
}

// minTokenLen is the shortest word that counts towards topic overlap.
const minTokenLen = 4

// Tokens returns the set of significant words in text: lowercased words of
// at least four ASCII letters, excluding stop words. A word is a maximal run
// of letters, digits and underscores, so "abc123" and "naïve" yield nothing.
func Tokens(text string) map[string]struct{} {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !isWordRune(r)
	})

	tokens := make(map[string]struct{})
	for _, w := range words {
		if len(w) < minTokenLen || !isASCIIAlpha(w) {
			continue
		}
		if _, stop := stopWords[w]; stop {
			continue
		}
		tokens[w] = struct{}{}
	}
	return tokens
}

// TopicOverlap returns the number of significant words shared by the
// question and the context.
func TopicOverlap(question, context string) int {
	q := Tokens(question)
	if len(q) == 0 {
		return 0
	}
	n := 0
	for w := range Tokens(context) {
		if _, ok := q[w]; ok {
			n++
		}
	}
	return n
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

func isASCIIAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 'a' || c > 'z' {
			return false
		}
	}
	return true
}
