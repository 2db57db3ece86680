package catalog

import (
	"sort"
	"strings"
	"unicode"
)

// Fixed menu section ordering. Categories outside this list sort after it,
// lexicographically.
var preferredOrder = []string{"Starters", "Main Courses", "Desserts", "Beverages"}

// NormalizeCategory trims the name and title-cases each word so that
// near-duplicates collapse to one canonical form ("soups " -> "Soups").
// An empty or whitespace-only name normalizes to "".
func NormalizeCategory(name string) string {
	words := strings.Fields(strings.ToLower(name))
	if len(words) == 0 {
		return ""
	}
	for i, w := range words {
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// OrderCategories applies the display ordering: preferred sections first, in
// their fixed order, then everything else sorted lexicographically.
func OrderCategories(categories []string) []string {
	present := make(map[string]bool, len(categories))
	for _, c := range categories {
		present[c] = true
	}

	out := make([]string, 0, len(categories))
	for _, p := range preferredOrder {
		if present[p] {
			out = append(out, p)
			delete(present, p)
		}
	}

	rest := make([]string, 0, len(present))
	for c := range present {
		rest = append(rest, c)
	}
	sort.Strings(rest)

	return append(out, rest...)
}

func dedupeCategories(categories []string) []string {
	seen := make(map[string]bool, len(categories))
	out := make([]string, 0, len(categories))
	for _, c := range categories {
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}
