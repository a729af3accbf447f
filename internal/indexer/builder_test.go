package indexer

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"portfolio/internal/searchindex"
	"portfolio/internal/site"
)

const testPost = `export default function Post() {
  return (
    <BlogPostLayout title="Cooperation in Games" summary="How moderators help agents.">
      <h2 id="intro">Introduction</h2>
      <p>Large language models struggle to cooperate in repeated games.</p>
      <h3 id="setup">Setup</h3>
      <p>We study a moderator that nudges agents toward fair deals.</p>
    </BlogPostLayout>
  );
}
`

const testMarkdownPost = `---
title: Notes on Evaluation
summary: Short notes.
---

## Metrics {#metrics}

Accuracy alone hides many interesting failure modes in practice.
`

const testContactPage = `export default function Contact() {
  return (
    <main>
      <h1>Get in touch</h1>
      <p>I am always happy to talk about research collaborations.</p>
    </main>
  );
}
`

const testNewspaper = `export default function Newspaper() {
  const newsItems = [
    {
      date: "Nov 2025",
      headline: "Paper accepted at EMNLP",
      content: "Our moderation study was accepted.",
      paperTitle: "Moderating Agents",
      venue: "EMNLP 2025",
    },
  ];
  return null;
}
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}

func newTestSite(t *testing.T) (site.Layout, []site.Page) {
	t.Helper()
	layout := site.NewLayout(t.TempDir())

	writeFile(t, filepath.Join(layout.BlogDir, "cooperation", "page.tsx"), testPost)
	writeFile(t, filepath.Join(layout.BlogDir, "evaluation", "page.md"), testMarkdownPost)
	writeFile(t, filepath.Join(layout.BlogDir, "_template", "page.tsx"), testPost)
	writeFile(t, filepath.Join(layout.BlogDir, "drafts", "notes.txt"), "not a post")
	writeFile(t, filepath.Join(layout.AppDir, "contact", "page.tsx"), testContactPage)
	writeFile(t, filepath.Join(layout.AppDir, "research", "page.tsx"), testContactPage)
	writeFile(t, filepath.Join(layout.Root, "src", "components", "Newspaper.tsx"), testNewspaper)

	pages := []site.Page{
		{
			Name:   "Research",
			File:   "research/page.tsx",
			URL:    "/research",
			Papers: &site.PaperSource{File: "src/components/Newspaper.tsx", Array: "newsItems"},
		},
		{Name: "Contact", File: "contact/page.tsx", URL: "/contact", Title: "Contact"},
		{Name: "Missing", File: "missing/page.tsx", URL: "/missing"},
	}
	return layout, pages
}

func TestBuilder_Build(t *testing.T) {
	layout, pages := newTestSite(t)
	builder := NewBuilder(layout, pages)

	entries, stats, err := builder.Build(context.Background())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	wantURLs := []string{"/blog/cooperation", "/blog/evaluation", "/research", "/contact", "/research"}
	if len(entries) != len(wantURLs) {
		t.Fatalf("Build() returned %d entries, want %d: %+v", len(entries), len(wantURLs), entries)
	}
	for i, want := range wantURLs {
		if entries[i].URL != want {
			t.Errorf("entries[%d].URL = %q, want %q", i, entries[i].URL, want)
		}
	}

	post := entries[0]
	if post.Category != searchindex.CategoryBlog {
		t.Errorf("post category = %q, want Blog", post.Category)
	}
	if post.Title != "Cooperation in Games" {
		t.Errorf("post title = %q", post.Title)
	}
	if post.Description != "How moderators help agents." {
		t.Errorf("post description = %q", post.Description)
	}
	if len(post.Sections) != 2 || post.Sections[1].ParentID != "intro" {
		t.Errorf("post sections = %+v", post.Sections)
	}

	if entries[1].Title != "Notes on Evaluation" {
		t.Errorf("markdown post title = %q", entries[1].Title)
	}

	if entries[3].Title != "Contact" || entries[3].Category != searchindex.CategoryPage {
		t.Errorf("contact entry = %+v", entries[3])
	}
	if entries[3].Sections != nil {
		t.Errorf("static pages carry no sections, got %+v", entries[3].Sections)
	}

	paper := entries[4]
	if paper.Category != searchindex.CategoryResearch {
		t.Errorf("paper category = %q, want Research", paper.Category)
	}
	if paper.Title != "Moderating Agents" {
		t.Errorf("paper title = %q", paper.Title)
	}
	if paper.Description != "Our moderation study was accepted." {
		t.Errorf("paper description = %q", paper.Description)
	}

	if stats.Entries != 5 {
		t.Errorf("stats.Entries = %d, want 5", stats.Entries)
	}
	if stats.Skipped != 1 {
		t.Errorf("stats.Skipped = %d, want 1", stats.Skipped)
	}
	if stats.ByCategory[searchindex.CategoryBlog] != 2 {
		t.Errorf("stats.ByCategory[Blog] = %d, want 2", stats.ByCategory[searchindex.CategoryBlog])
	}
}

func TestBuilder_Build_ExcludesReserved(t *testing.T) {
	layout, pages := newTestSite(t)

	entries, _, err := NewBuilder(layout, pages).Build(context.Background())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	for _, e := range entries {
		if strings.Contains(e.URL, "_template") || strings.Contains(e.URL, "drafts") {
			t.Errorf("unexpected entry for %s", e.URL)
		}
	}
}

func TestBuilder_Build_NoBlogDir(t *testing.T) {
	layout := site.NewLayout(t.TempDir())

	entries, _, err := NewBuilder(layout, nil).Build(context.Background())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Build() returned %d entries, want 0", len(entries))
	}
}

func TestBuilder_Build_ContextCancellation(t *testing.T) {
	layout, pages := newTestSite(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := NewBuilder(layout, pages).Build(ctx)
	if err != context.Canceled {
		t.Errorf("Build() error = %v, want context.Canceled", err)
	}
}

func TestBuilder_Run(t *testing.T) {
	layout, pages := newTestSite(t)
	builder := NewBuilder(layout, pages)

	var out bytes.Buffer
	if _, err := builder.Run(context.Background(), &out); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	wantLine := "Search index generated with 5 entries -> " + layout.IndexFile + "\n"
	if out.String() != wantLine {
		t.Errorf("Run() output = %q, want %q", out.String(), wantLine)
	}

	first, err := os.ReadFile(layout.IndexFile)
	if err != nil {
		t.Fatalf("failed to read index: %v", err)
	}
	if err := searchindex.Validate(first); err != nil {
		t.Errorf("written index is invalid: %v", err)
	}

	out.Reset()
	if _, err := builder.Run(context.Background(), &out); err != nil {
		t.Fatalf("second Run() error = %v", err)
	}
	second, err := os.ReadFile(layout.IndexFile)
	if err != nil {
		t.Fatalf("failed to read index: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Error("rebuilding an unchanged site should produce identical output")
	}
}
