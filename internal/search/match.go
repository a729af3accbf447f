// Package search matches queries against a loaded search index and drives
// the open/close and keyboard selection state of a search session.
package search

import (
	"strings"

	"portfolio/internal/searchindex"
)

// Result is one row of a search: a whole entry, or one of its sections.
type Result struct {
	Entry *searchindex.Entry
	// Section is nil for whole-entry matches.
	Section    *searchindex.Section
	Breadcrumb []string
}

// URL returns the navigation target of the result.
func (r Result) URL() string {
	if r.Section == nil {
		return r.Entry.URL
	}
	return r.Entry.URL + "#" + r.Section.ID
}

// Title returns the text a result row is labelled with.
func (r Result) Title() string {
	if r.Section == nil {
		return r.Entry.Title
	}
	return r.Section.Title
}

// Snippet returns a short excerpt for display.
func (r Result) Snippet() string {
	text := r.Entry.Description
	if r.Section != nil {
		text = r.Section.Content
	}
	return clip(text, snippetLen)
}

const snippetLen = 160

// Match returns the results for query over entries. An empty or blank query
// lists the Page entries only. Otherwise every entry whose title,
// description or content contains the lowercased query matches, followed by
// each of its sections whose title or content does. Surrounding spaces are
// part of the query. Results keep index order; nothing is ranked. entries
// is not modified.
func Match(entries []searchindex.Entry, query string) []Result {
	var results []Result
	if strings.TrimSpace(query) == "" {
		for i := range entries {
			if entries[i].Category == searchindex.CategoryPage {
				results = append(results, Result{Entry: &entries[i]})
			}
		}
		return results
	}

	q := strings.ToLower(query)
	for i := range entries {
		entry := &entries[i]
		if contains(q, entry.Title, entry.Description, entry.Content) {
			results = append(results, Result{Entry: entry})
		}
		for j := range entry.Sections {
			section := &entry.Sections[j]
			if contains(q, section.Title, section.Content) {
				results = append(results, Result{
					Entry:      entry,
					Section:    section,
					Breadcrumb: Breadcrumb(entry, section),
				})
			}
		}
	}
	return results
}

// Breadcrumb returns the path to section: the entry title, the parent
// section title when section is nested under a resolvable parent, and the
// section title.
func Breadcrumb(entry *searchindex.Entry, section *searchindex.Section) []string {
	crumbs := []string{entry.Title}
	if section.Level == searchindex.LevelNested && section.ParentID != "" {
		if parent := entry.SectionByID(section.ParentID); parent != nil {
			crumbs = append(crumbs, parent.Title)
		}
	}
	return append(crumbs, section.Title)
}

func contains(q string, fields ...string) bool {
	for _, f := range fields {
		if f != "" && strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

func clip(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return strings.TrimRight(string(r[:max]), " ") + "..."
}
