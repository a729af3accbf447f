package search

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	"portfolio/internal/contextutil"
	"portfolio/internal/searchindex"
)

// LoadEntries loads the index from a file path or URL. Any failure is logged
// and yields an empty index.
func LoadEntries(ctx context.Context, client *http.Client, source string) []searchindex.Entry {
	entries, err := searchindex.Load(ctx, client, source)
	if err != nil {
		contextutil.LoggerFromContext(ctx).WarnContext(ctx, "search index unavailable", "source", source, "error", err)
		return nil
	}
	return entries
}

// Snapshot is one loaded version of the index.
type Snapshot struct {
	Entries  []searchindex.Entry
	LoadedAt time.Time
	// Err is the error of the load that produced an empty snapshot.
	Err error
}

// Index serves the current snapshot to concurrent readers and swaps in a
// new one on Reload. A snapshot's entries are never modified.
type Index struct {
	source string
	client *http.Client
	cur    atomic.Pointer[Snapshot]
}

// NewIndex creates an Index over source with an empty snapshot. Call Reload
// to load it.
func NewIndex(source string, client *http.Client) *Index {
	idx := &Index{source: source, client: client}
	idx.cur.Store(&Snapshot{})
	return idx
}

// Source returns the path or URL the index is loaded from.
func (i *Index) Source() string { return i.source }

// Snapshot returns the current snapshot.
func (i *Index) Snapshot() *Snapshot { return i.cur.Load() }

// Entries returns the entries of the current snapshot.
func (i *Index) Entries() []searchindex.Entry { return i.cur.Load().Entries }

// Reload loads the source again. On failure the previous snapshot stays in
// place when it had entries, otherwise an empty snapshot carrying the error
// replaces it.
func (i *Index) Reload(ctx context.Context) error {
	logger := contextutil.LoggerFromContext(ctx)

	entries, err := searchindex.Load(ctx, i.client, i.source)
	if err != nil {
		logger.WarnContext(ctx, "failed to reload search index", "source", i.source, "error", err)
		if prev := i.cur.Load(); len(prev.Entries) == 0 {
			i.cur.Store(&Snapshot{LoadedAt: time.Now(), Err: err})
		}
		return err
	}

	i.cur.Store(&Snapshot{Entries: entries, LoadedAt: time.Now()})
	logger.InfoContext(ctx, "search index loaded", "source", i.source, "entries", len(entries))
	return nil
}

// Search runs Match against the current snapshot.
func (i *Index) Search(query string) []Result {
	return Match(i.Entries(), query)
}
