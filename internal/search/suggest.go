package search

import (
	"github.com/sahilm/fuzzy"

	"portfolio/internal/searchindex"
)

// MaxSuggestions bounds the titles returned by Suggest.
const MaxSuggestions = 3

type titleSource []searchindex.Entry

func (t titleSource) String(i int) string { return t[i].Title }
func (t titleSource) Len() int            { return len(t) }

// Suggest returns entry titles that fuzzily match query, best first. It is a
// "did you mean" hint for queries with no substring results and plays no
// part in Match.
func Suggest(entries []searchindex.Entry, query string) []string {
	if query == "" || len(entries) == 0 {
		return nil
	}

	matches := fuzzy.FindFrom(query, titleSource(entries))

	var titles []string
	seen := make(map[string]bool)
	for _, m := range matches {
		title := entries[m.Index].Title
		if seen[title] {
			continue
		}
		seen[title] = true
		titles = append(titles, title)
		if len(titles) == MaxSuggestions {
			break
		}
	}
	return titles
}
