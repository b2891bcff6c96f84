package qa

import (
	"regexp"
	"strings"
)

// listPrefixes mark questions that ask for an enumeration.
var listPrefixes = []string{"list ", "list all ", "what are ", "which "}

// listItemRe matches a bullet ("-", "•", "*") or numbered ("12.") marker
// followed by whitespace at the start of a line.
var listItemRe = regexp.MustCompile(`^(?:[-•*]|\p{Nd}+\.)[\s\p{Zs}]`)

// IsListQuestion reports whether question asks for an enumeration.
func IsListQuestion(question string) bool {
	q := strings.TrimSpace(strings.ToLower(question))
	for _, p := range listPrefixes {
		if strings.HasPrefix(q, p) {
			return true
		}
	}
	return false
}

// ExtractListItems returns the bullet and numbered lines of context,
// trimmed but otherwise verbatim (markers included), without duplicates,
// in order of first occurrence.
func ExtractListItems(context string) []string {
	var items []string
	seen := make(map[string]bool)
	for _, line := range strings.Split(context, "\n") {
		line = strings.TrimSpace(line)
		if !listItemRe.MatchString(line) || seen[line] {
			continue
		}
		seen[line] = true
		items = append(items, line)
	}
	return items
}
