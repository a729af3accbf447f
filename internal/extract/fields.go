package extract

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Length caps, in runes, before the ellipsis is appended.
const (
	ContentCap     = 4000
	SectionCap     = 1000
	DescriptionCap = 220
)

// Ellipsis marks truncated text.
const Ellipsis = "..."

// Untitled is the title of a page with no recognizable title.
const Untitled = "Untitled"

var (
	titleAttr    = regexp.MustCompile(`title\s*=\s*"([^"]+)"`)
	titleField   = regexp.MustCompile(`title:\s*"([^"]+)"`)
	summaryAttr  = regexp.MustCompile(`summary\s*=\s*"([^"]+)"`)
	leadSentence = regexp.MustCompile(`^([^.!?]*[.!?]\s*[^.!?]*[.!?]?)`)
)

// Title returns the layout title attribute, else the metadata title field,
// else Untitled.
func Title(source string) string {
	for _, re := range []*regexp.Regexp{titleAttr, titleField} {
		if m := re.FindStringSubmatch(source); m != nil {
			if t := cleanInline(m[1]); t != "" {
				return t
			}
		}
	}
	return Untitled
}

// Summary returns the summary attribute, or "".
func Summary(source string) string {
	if m := summaryAttr.FindStringSubmatch(source); m != nil {
		return cleanInline(m[1])
	}
	return ""
}

// Description prefers the explicit summary and otherwise takes the first
// one or two sentences of content, capped at DescriptionCap.
func Description(summary, content string) string {
	if summary != "" {
		return summary
	}
	if content == "" {
		return ""
	}
	if m := leadSentence.FindStringSubmatch(content); m != nil && strings.TrimSpace(m[1]) != "" {
		return Truncate(strings.TrimSpace(m[1]), DescriptionCap)
	}
	return Truncate(content, DescriptionCap)
}

// Truncate cuts s to at most max runes and appends Ellipsis. The cut falls
// on a grapheme cluster boundary, so combined characters stay whole.
func Truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}

	var b strings.Builder
	n := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		r := len(g.Runes())
		if n+r > max {
			break
		}
		b.WriteString(g.Str())
		n += r
	}
	return strings.TrimRightFunc(b.String(), unicode.IsSpace) + Ellipsis
}
