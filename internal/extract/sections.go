package extract

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"portfolio/internal/searchindex"
)

// MinSectionLen is the least extracted text, in runes, a section needs to
// be kept.
const MinSectionLen = 20

var headingTag = regexp.MustCompile(`(?i)<(h[23])\s(?:[^>]*?\s)?id\s*=\s*"([^"]+)"[^>]*>\s*([^<]*?)\s*</h[23]\s*>`)

// Marker is a heading boundary in a page source.
type Marker struct {
	Pos   int // byte offset of the opening tag
	Level int
	ID    string
	Title string
}

// Markers lists the h2 and h3 headings that carry an id attribute, in
// source order.
func Markers(source string) []Marker {
	var markers []Marker
	for _, m := range headingTag.FindAllStringSubmatchIndex(source, -1) {
		level := searchindex.LevelTop
		if strings.EqualFold(source[m[2]:m[3]], "h3") {
			level = searchindex.LevelNested
		}
		markers = append(markers, Marker{
			Pos:   m[0],
			Level: level,
			ID:    source[m[4]:m[5]],
			Title: cleanInline(source[m[6]:m[7]]),
		})
	}
	return markers
}

// Sections slices the source between consecutive markers and extracts the
// text of each slice.
func Sections(source string) []searchindex.Section {
	markers := Markers(source)
	texts := make([]string, len(markers))
	for i, m := range markers {
		end := len(source)
		if i+1 < len(markers) {
			end = markers[i+1].Pos
		}
		texts[i] = Text(source[m.Pos:end])
	}
	return assembleSections(markers, texts)
}

// assembleSections turns markers and their extracted texts into sections.
// Short sections and repeated ids are dropped. A level-3 section points at
// the nearest earlier level-2 marker, but only when that marker was kept.
func assembleSections(markers []Marker, texts []string) []searchindex.Section {
	kept := make([]bool, len(markers))
	ids := make(map[string]bool, len(markers))
	var sections []searchindex.Section

	for i, m := range markers {
		text := strings.TrimSpace(texts[i])
		if utf8.RuneCountInString(text) < MinSectionLen || ids[m.ID] {
			continue
		}

		s := searchindex.Section{
			ID:      m.ID,
			Title:   m.Title,
			Content: Truncate(text, SectionCap),
			Level:   m.Level,
		}
		if m.Level == searchindex.LevelNested {
			if p := parentMarker(markers, i); p >= 0 && kept[p] {
				s.ParentID = markers[p].ID
			}
		}

		kept[i] = true
		ids[m.ID] = true
		sections = append(sections, s)
	}
	return sections
}

func parentMarker(markers []Marker, i int) int {
	for j := i - 1; j >= 0; j-- {
		if markers[j].Level == searchindex.LevelTop {
			return j
		}
	}
	return -1
}
