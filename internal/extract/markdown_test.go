package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/internal/searchindex"
)

const markdownPost = "---\n" +
	"title: Markdown Post\n" +
	"summary: Written in Markdown.\n" +
	"---\n\n" +
	"Intro paragraph that sits before any heading in the post.\n\n" +
	"## Getting Started {#start}\n\n" +
	"First steps with the tool are\ndescribed in this section.\n\n" +
	"### Install\n\n" +
	"Run the installer and follow the prompts on screen.\n\n" +
	"```go\ncode that must be ignored\n```\n\n" +
	"## Tiny\n\nOk.\n"

func TestParseMarkdown(t *testing.T) {
	doc, err := ParseMarkdown([]byte(markdownPost))
	require.NoError(t, err)

	assert.Equal(t, "Markdown Post", doc.Title)
	assert.Equal(t, "Written in Markdown.", doc.Summary)
	assert.Contains(t, doc.Content, "Intro paragraph that sits before any heading in the post.")
	assert.Contains(t, doc.Content, "First steps with the tool are described in this section.")
	assert.NotContains(t, doc.Content, "must be ignored")

	want := []searchindex.Section{
		{ID: "start", Title: "Getting Started", Content: "Getting Started First steps with the tool are described in this section.", Level: 2},
		{ID: "install", Title: "Install", Content: "Install Run the installer and follow the prompts on screen.", Level: 3, ParentID: "start"},
	}
	assert.Equal(t, want, doc.Sections)
}

func TestParseMarkdown_NoFrontMatter(t *testing.T) {
	doc, err := ParseMarkdown([]byte("# Heading One\n\nBody text that is long enough to keep.\n"))
	require.NoError(t, err)
	assert.Equal(t, "Heading One", doc.Title)
	assert.Empty(t, doc.Summary)
	assert.Empty(t, doc.Sections)
}

func TestParseMarkdown_Untitled(t *testing.T) {
	doc, err := ParseMarkdown([]byte("Just a paragraph without any heading.\n"))
	require.NoError(t, err)
	assert.Equal(t, Untitled, doc.Title)
}
