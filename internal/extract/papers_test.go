package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const newspaper = `"use client";

export default function Newspaper() {
  const newsItems = [
    {
      date: "Nov 2025",
      dateSort: "2025-11",
      headline: "Study finds [brackets] in \"quotes\"",
      content: "Body text.",
      authors: "A. Author & B. Author",
      paperTitle: "Detecting Things",
      venue: "EMNLP 2025",
      link: "#",
      category: "Research",
    },
    {
      venue: 'Workshop',
      headline: "Only a headline",
      date: "Oct 2025",
    },
    {
      date: "Sep 2025",
      link: "https://example.com",
    },
  ];
  return <div>{newsItems.length}</div>;
}
`

func TestPapers(t *testing.T) {
	papers := Papers(newspaper, "newsItems")
	require.Len(t, papers, 2)

	first := papers[0]
	assert.Equal(t, "Nov 2025", first.Date)
	assert.Equal(t, "2025-11", first.DateSort)
	assert.Equal(t, `Study finds [brackets] in "quotes"`, first.Headline)
	assert.Equal(t, "Detecting Things", first.Title())
	assert.Equal(t, "Research", first.Category)
	assert.Equal(t, `Study finds [brackets] in "quotes" Body text. A. Author & B. Author Detecting Things EMNLP 2025`, first.SearchText())

	second := papers[1]
	assert.Equal(t, "Only a headline", second.Title())
	assert.Equal(t, "Workshop", second.Venue)
	assert.Equal(t, "Only a headline Workshop", second.SearchText())
}

func TestPapers_Missing(t *testing.T) {
	assert.Nil(t, Papers(newspaper, "otherItems"))
	assert.Nil(t, Papers("const newsItems = [ { headline: \"unterminated\" }", "newsItems"))
	assert.Nil(t, Papers("", "newsItems"))
}

func TestMatchClose(t *testing.T) {
	s := `[a, "]", ['x'], ` + "`]`" + `] tail`
	assert.Equal(t, len(s)-len(" tail")-1, matchClose(s, 1, '[', ']'))
	assert.Equal(t, -1, matchClose("[unclosed", 1, '[', ']'))
}
