package extract

import (
	"regexp"
	"strings"
)

// Paper is one record of the research listing.
type Paper struct {
	Date       string
	DateSort   string
	Headline   string
	Content    string
	Authors    string
	PaperTitle string
	Venue      string
	Link       string
	CodeLink   string
	Category   string
}

// Title is the paper title, falling back to the headline.
func (p Paper) Title() string {
	if p.PaperTitle != "" {
		return p.PaperTitle
	}
	return p.Headline
}

// SearchText joins the searchable fields of the paper.
func (p Paper) SearchText() string {
	var parts []string
	for _, f := range []string{p.Headline, p.Content, p.Authors, p.PaperTitle, p.Venue} {
		if f != "" {
			parts = append(parts, f)
		}
	}
	return strings.Join(parts, " ")
}

var paperFields = map[string]func(*Paper) *string{
	"date":       func(p *Paper) *string { return &p.Date },
	"dateSort":   func(p *Paper) *string { return &p.DateSort },
	"headline":   func(p *Paper) *string { return &p.Headline },
	"content":    func(p *Paper) *string { return &p.Content },
	"authors":    func(p *Paper) *string { return &p.Authors },
	"paperTitle": func(p *Paper) *string { return &p.PaperTitle },
	"venue":      func(p *Paper) *string { return &p.Venue },
	"link":       func(p *Paper) *string { return &p.Link },
	"codeLink":   func(p *Paper) *string { return &p.CodeLink },
	"category":   func(p *Paper) *string { return &p.Category },
}

// fieldPatterns match `name: "value"` with any quote style, wherever the
// field sits in the object.
var fieldPatterns = func() map[string]*regexp.Regexp {
	out := make(map[string]*regexp.Regexp, len(paperFields))
	for name := range paperFields {
		out[name] = regexp.MustCompile(`(?:^|[{,\s])["']?` + name + `["']?\s*:\s*(?:"((?:[^"\\]|\\.)*)"|'((?:[^'\\]|\\.)*)'|` + "`([^`]*)`" + `)`)
	}
	return out
}()

var unescaper = strings.NewReplacer(`\"`, `"`, `\'`, `'`, "\\`", "`", `\n`, " ", `\\`, `\`)

// Papers parses the object literals of the named array declaration in
// source. Fields may appear in any order and any of them may be missing;
// objects with neither a paper title nor a headline are skipped.
func Papers(source, arrayName string) []Paper {
	body, ok := arrayBody(source, arrayName)
	if !ok {
		return nil
	}

	var papers []Paper
	for _, obj := range topLevelObjects(body) {
		var p Paper
		for name, field := range paperFields {
			m := fieldPatterns[name].FindStringSubmatch(obj)
			if m == nil {
				continue
			}
			*field(&p) = cleanInline(unescaper.Replace(m[1] + m[2] + m[3]))
		}
		if p.Title() == "" {
			continue
		}
		papers = append(papers, p)
	}
	return papers
}

// arrayBody returns the text between the brackets of `const name = [ ... ]`.
func arrayBody(source, name string) (string, bool) {
	decl := regexp.MustCompile(`\b(?:const|let|var)\s+` + regexp.QuoteMeta(name) + `\b[^=\n]*=\s*\[`)
	loc := decl.FindStringIndex(source)
	if loc == nil {
		return "", false
	}
	start := loc[1]
	end := matchClose(source, start, '[', ']')
	if end < 0 {
		return "", false
	}
	return source[start:end], true
}

// topLevelObjects splits an array body into its {...} elements.
func topLevelObjects(body string) []string {
	var objects []string
	for i := 0; i < len(body); i++ {
		switch body[i] {
		case '"', '\'', '`':
			i = skipString(body, i)
		case '{':
			end := matchClose(body, i+1, '{', '}')
			if end < 0 {
				return objects
			}
			objects = append(objects, body[i:end+1])
			i = end
		}
	}
	return objects
}

// matchClose finds the closer that balances an opener just before from,
// ignoring brackets inside string literals. It returns -1 if none exists.
func matchClose(s string, from int, open, close byte) int {
	depth := 0
	for i := from; i < len(s); i++ {
		switch s[i] {
		case '"', '\'', '`':
			i = skipString(s, i)
		case open:
			depth++
		case close:
			if depth == 0 {
				return i
			}
			depth--
		}
	}
	return -1
}

// skipString returns the index of the quote closing the literal opened at i.
func skipString(s string, i int) int {
	quote := s[i]
	for j := i + 1; j < len(s); j++ {
		switch s[j] {
		case '\\':
			j++
		case quote:
			return j
		}
	}
	return len(s)
}
