// Package indexer builds the site search index from page sources.
package indexer

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"portfolio/internal/contextutil"
	"portfolio/internal/extract"
	"portfolio/internal/searchindex"
	"portfolio/internal/site"
)

// Builder turns a site checkout into search index entries.
type Builder struct {
	layout site.Layout
	pages  []site.Page
}

// NewBuilder creates a Builder for the site at layout using the given
// static page list.
func NewBuilder(layout site.Layout, pages []site.Page) *Builder {
	return &Builder{
		layout: layout,
		pages:  pages,
	}
}

// Build collects entries in output order: blog posts, static pages, then
// research papers. A file that cannot be read or parsed never fails the
// build; it is logged and degraded.
func (b *Builder) Build(ctx context.Context) ([]searchindex.Entry, BuildStats, error) {
	logger := contextutil.LoggerFromContext(ctx)
	var skipped int

	posts, err := site.ScanPosts(ctx, b.layout.BlogDir)
	if err != nil {
		if ctx.Err() != nil {
			return nil, BuildStats{}, ctx.Err()
		}
		logger.WarnContext(ctx, "failed to scan blog posts", "dir", b.layout.BlogDir, "error", err)
	}

	var entries []searchindex.Entry
	for _, post := range posts {
		entry, ok := b.postEntry(ctx, post)
		if !ok {
			skipped++
			continue
		}
		entries = append(entries, entry)
	}

	var papers []searchindex.Entry
	for _, page := range b.pages {
		if err := ctx.Err(); err != nil {
			return nil, BuildStats{}, err
		}

		if entry, ok := b.pageEntry(ctx, page); ok {
			entries = append(entries, entry)
		} else {
			skipped++
		}
		if page.Papers != nil {
			papers = append(papers, b.paperEntries(ctx, page)...)
		}
	}
	entries = append(entries, papers...)

	stats := computeBuildStats(entries)
	stats.Skipped = skipped
	return entries, stats, nil
}

// Run builds the index, writes it to the layout's index file and reports
// the entry count on out.
func (b *Builder) Run(ctx context.Context, out io.Writer) (BuildStats, error) {
	logger := contextutil.LoggerFromContext(ctx)

	entries, stats, err := b.Build(ctx)
	if err != nil {
		return stats, err
	}
	if err := searchindex.Write(b.layout.IndexFile, entries); err != nil {
		return stats, err
	}

	logger.InfoContext(ctx, "search index built",
		"entries", stats.Entries,
		"blog", stats.ByCategory[searchindex.CategoryBlog],
		"pages", stats.ByCategory[searchindex.CategoryPage],
		"research", stats.ByCategory[searchindex.CategoryResearch],
		"sections", stats.Sections,
		"skipped", stats.Skipped,
		"content_min", stats.Content.Min,
		"content_max", stats.Content.Max,
		"content_mean", stats.Content.Mean,
		"content_p95", stats.Content.P95,
	)

	if _, err := fmt.Fprintf(out, "Search index generated with %d entries -> %s\n", len(entries), b.layout.IndexFile); err != nil {
		return stats, err
	}
	return stats, nil
}

func (b *Builder) postEntry(ctx context.Context, post site.PostFile) (searchindex.Entry, bool) {
	logger := contextutil.LoggerFromContext(ctx)

	raw, err := os.ReadFile(post.AbsPath)
	if err != nil {
		logger.WarnContext(ctx, "skipping unreadable post", "path", post.AbsPath, "error", err)
		return searchindex.Entry{}, false
	}

	entry := searchindex.Entry{
		URL:      post.URL(),
		Category: searchindex.CategoryBlog,
	}

	if post.Format == site.FormatMarkdown {
		doc, err := extract.ParseMarkdown(raw)
		if err != nil {
			logger.WarnContext(ctx, "failed to parse markdown post", "path", post.AbsPath, "error", err)
			entry.Title = extract.Untitled
			return entry, true
		}
		entry.Title = doc.Title
		entry.Description = extract.Description(doc.Summary, doc.Content)
		entry.Content = extract.Truncate(doc.Content, extract.ContentCap)
		entry.Sections = doc.Sections
		return entry, true
	}

	source := string(raw)
	content := extract.Text(source)
	entry.Title = extract.Title(source)
	entry.Description = extract.Description(extract.Summary(source), content)
	entry.Content = extract.Truncate(content, extract.ContentCap)
	entry.Sections = extract.Sections(source)
	return entry, true
}

func (b *Builder) pageEntry(ctx context.Context, page site.Page) (searchindex.Entry, bool) {
	logger := contextutil.LoggerFromContext(ctx)
	path := filepath.Join(b.layout.AppDir, filepath.FromSlash(page.File))

	raw, err := os.ReadFile(path)
	if err != nil || len(raw) == 0 {
		logger.WarnContext(ctx, "skipping unreadable page", "page", page.Name, "path", path, "error", err)
		return searchindex.Entry{}, false
	}

	source := string(raw)
	content := extract.Text(source)
	title := page.Title
	if title == "" {
		title = extract.Title(source)
	}

	return searchindex.Entry{
		Title:       title,
		URL:         page.URL,
		Description: extract.Description(extract.Summary(source), content),
		Category:    searchindex.CategoryPage,
		Content:     extract.Truncate(content, extract.ContentCap),
	}, true
}

func (b *Builder) paperEntries(ctx context.Context, page site.Page) []searchindex.Entry {
	logger := contextutil.LoggerFromContext(ctx)
	path := filepath.Join(b.layout.Root, filepath.FromSlash(page.Papers.File))

	raw, err := os.ReadFile(path)
	if err != nil {
		logger.WarnContext(ctx, "skipping unreadable paper listing", "path", path, "error", err)
		return nil
	}

	papers := extract.Papers(string(raw), page.Papers.Array)
	entries := make([]searchindex.Entry, 0, len(papers))
	for _, p := range papers {
		entries = append(entries, searchindex.Entry{
			Title:       p.Title(),
			URL:         page.URL,
			Description: p.Content,
			Category:    searchindex.CategoryResearch,
			Content:     extract.Truncate(p.SearchText(), extract.ContentCap),
		})
	}
	logger.DebugContext(ctx, "papers extracted", "path", path, "count", len(entries))
	return entries
}
