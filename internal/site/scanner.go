// Package site knows the on-disk layout of the portfolio site: where blog
// posts live and which static pages get indexed.
package site

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ReservedPrefix marks blog directories that hold templates or examples
// and must never be indexed.
const ReservedPrefix = "_"

// Format is the source format of a post.
type Format string

const (
	FormatTSX      Format = "tsx"
	FormatMarkdown Format = "markdown"
)

// postFiles are the page files a post directory may contain, by priority.
var postFiles = []struct {
	name   string
	format Format
}{
	{"page.tsx", FormatTSX},
	{"page.mdx", FormatMarkdown},
	{"page.md", FormatMarkdown},
}

// PostFile is a blog post found during scanning.
type PostFile struct {
	Slug    string // directory name, e.g. "llm-moderation-cooperation"
	AbsPath string
	Format  Format
}

// URL is the route the post is served at.
func (p PostFile) URL() string {
	return "/blog/" + p.Slug
}

// ScanPosts lists the post directories directly below blogDir in name
// order. A missing blogDir yields no posts and no error.
func ScanPosts(ctx context.Context, blogDir string) ([]PostFile, error) {
	entries, err := os.ReadDir(blogDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read blog directory %s: %w", blogDir, err)
	}

	var posts []PostFile
	for _, entry := range entries {
		select {
		case <-ctx.Done():
			return posts, ctx.Err()
		default:
		}

		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ReservedPrefix) {
			continue
		}

		dir := filepath.Join(blogDir, entry.Name())
		for _, pf := range postFiles {
			path := filepath.Join(dir, pf.name)
			info, err := os.Stat(path)
			if err != nil || !info.Mode().IsRegular() {
				continue
			}
			posts = append(posts, PostFile{
				Slug:    entry.Name(),
				AbsPath: path,
				Format:  pf.format,
			})
			break
		}
	}

	return posts, nil
}
