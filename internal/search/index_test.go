package search

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/internal/searchindex"
)

func TestLoadEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "search-index.json")
	require.NoError(t, searchindex.Write(path, scenarioIndex()))

	entries := LoadEntries(context.Background(), nil, path)
	assert.Len(t, entries, 2)
}

func TestLoadEntries_Degrades(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusInternalServerError)
	}))
	defer srv.Close()

	assert.Empty(t, LoadEntries(context.Background(), srv.Client(), srv.URL+"/search-index.json"))
	assert.Empty(t, LoadEntries(context.Background(), nil, filepath.Join(t.TempDir(), "missing.json")))

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0644))
	entries := LoadEntries(context.Background(), nil, bad)
	assert.Empty(t, entries)
	assert.Empty(t, Match(entries, "research"))
}

func TestIndex_Reload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "search-index.json")
	idx := NewIndex(path, nil)
	ctx := context.Background()

	assert.Empty(t, idx.Entries())
	assert.Error(t, idx.Reload(ctx))
	assert.Error(t, idx.Snapshot().Err)

	require.NoError(t, searchindex.Write(path, scenarioIndex()))
	require.NoError(t, idx.Reload(ctx))
	assert.Len(t, idx.Entries(), 2)
	assert.Len(t, idx.Search("transformers"), 1)

	old := idx.Snapshot()
	require.NoError(t, os.WriteFile(path, []byte("[broken"), 0644))
	assert.Error(t, idx.Reload(ctx))
	assert.Same(t, old, idx.Snapshot())
}
