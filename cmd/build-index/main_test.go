package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRun_IgnoresUnrelatedSettings(t *testing.T) {
	root := t.TempDir()
	post := filepath.Join(root, "src", "app", "blog", "hello")
	if err := os.MkdirAll(post, 0755); err != nil {
		t.Fatalf("failed to create post dir: %v", err)
	}
	source := `<BlogPostLayout title="Hello World" summary="A first post.">
  <p>This is the first post on the site.</p>
</BlogPostLayout>`
	if err := os.WriteFile(filepath.Join(post, "page.tsx"), []byte(source), 0644); err != nil {
		t.Fatalf("failed to write post: %v", err)
	}
	t.Chdir(root)

	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("CONTRIBUTIONS_CACHE_TTL", "soon")
	t.Setenv("CONTRIBUTIONS_CACHE_SIZE", "many")
	t.Setenv("UPSTREAM_RPS", "fast")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("build-index error = %v", err)
	}

	line := out.String()
	if !strings.HasPrefix(line, "Search index generated with 1 entries -> ") {
		t.Errorf("stdout = %q, want the summary line", line)
	}
	if !strings.HasSuffix(line, filepath.Join("public", "search-index.json")+"\n") {
		t.Errorf("stdout = %q, want the index path", line)
	}
	if _, err := os.Stat(filepath.Join(root, "public", "search-index.json")); err != nil {
		t.Errorf("index file not written: %v", err)
	}
}

func TestRun_RejectsArguments(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"extra"})
	if err := cmd.ExecuteContext(context.Background()); err == nil {
		t.Error("build-index with arguments expected error, got nil")
	}
}
