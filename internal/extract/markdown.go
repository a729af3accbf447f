package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"portfolio/internal/searchindex"
)

// Document is what the index needs from a Markdown post.
type Document struct {
	Title    string
	Summary  string
	Content  string // cleaned, not truncated
	Sections []searchindex.Section
}

type postMeta struct {
	Title       string `yaml:"title"`
	Summary     string `yaml:"summary"`
	Description string `yaml:"description"`
}

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
		parser.WithAttribute(),
	),
)

// ParseMarkdown reads front matter and the heading outline of a Markdown
// post. Level 2 and 3 headings become sections; their id is the explicit
// {#id} attribute or the generated one.
func ParseMarkdown(src []byte) (Document, error) {
	var meta postMeta
	body, err := frontmatter.Parse(bytes.NewReader(src), &meta)
	if err != nil {
		return Document{}, fmt.Errorf("failed to parse front matter: %w", err)
	}

	root := markdown.Parser().Parse(text.NewReader(body))
	w := &mdWalker{source: body}
	if err := ast.Walk(root, w.visit); err != nil {
		return Document{}, fmt.Errorf("failed to walk markdown: %w", err)
	}

	texts := make([]string, len(w.sections))
	for i, b := range w.sections {
		texts[i] = cleanProse(b.String())
	}

	doc := Document{
		Title:    cleanInline(meta.Title),
		Summary:  cleanInline(meta.Summary),
		Content:  cleanProse(w.page.String()),
		Sections: assembleSections(w.markers, texts),
	}
	if doc.Title == "" {
		doc.Title = w.title
	}
	if doc.Title == "" {
		doc.Title = Untitled
	}
	if doc.Summary == "" {
		doc.Summary = cleanInline(meta.Description)
	}
	return doc, nil
}

// cleanProse normalizes Markdown text, which needs no code stripping.
func cleanProse(s string) string {
	return DedupSentences(cleanInline(s))
}

type mdWalker struct {
	source   []byte
	title    string
	page     strings.Builder
	markers  []Marker
	sections []*strings.Builder
}

func (w *mdWalker) write(s string) {
	w.page.WriteString(s)
	if n := len(w.sections); n > 0 {
		w.sections[n-1].WriteString(s)
	}
}

func (w *mdWalker) visit(n ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		if n.Type() == ast.TypeBlock {
			w.write(" ")
		}
		return ast.WalkContinue, nil
	}

	switch node := n.(type) {
	case *ast.Heading:
		heading := nodeText(node, w.source)
		switch node.Level {
		case 1:
			if w.title == "" {
				w.title = heading
			}
		case searchindex.LevelTop, searchindex.LevelNested:
			if id := headingID(node); id != "" {
				w.markers = append(w.markers, Marker{Level: node.Level, ID: id, Title: heading})
				w.sections = append(w.sections, &strings.Builder{})
			}
		}
		w.write(heading + " ")
		return ast.WalkSkipChildren, nil

	case *ast.FencedCodeBlock, *ast.CodeBlock, *ast.HTMLBlock, *ast.RawHTML:
		return ast.WalkSkipChildren, nil

	case *ast.Text:
		w.write(string(node.Segment.Value(w.source)))
		if node.SoftLineBreak() || node.HardLineBreak() {
			w.write(" ")
		}

	case *ast.String:
		w.write(string(node.Value))
	}
	return ast.WalkContinue, nil
}

func headingID(h *ast.Heading) string {
	v, ok := h.AttributeString("id")
	if !ok {
		return ""
	}
	switch id := v.(type) {
	case []byte:
		return string(id)
	case string:
		return id
	}
	return ""
}

// nodeText concatenates the text below n.
func nodeText(n ast.Node, source []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch v := node.(type) {
		case *ast.Text:
			b.Write(v.Segment.Value(source))
			if v.SoftLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(v.Value)
		}
		return ast.WalkContinue, nil
	})
	return cleanInline(b.String())
}
