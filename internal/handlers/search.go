package handlers

import (
	"errors"
	"io/fs"
	"net/http"
	"os"

	"portfolio/internal/contextutil"
	"portfolio/internal/search"
	"portfolio/internal/searchindex"
)

// IndexReader exposes the currently served index.
type IndexReader interface {
	Entries() []searchindex.Entry
}

// SearchHandler handles HTTP requests for site search.
type SearchHandler struct {
	index IndexReader
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(index IndexReader) *SearchHandler {
	return &SearchHandler{index: index}
}

// SearchResult is one result row.
type SearchResult struct {
	Title      string   `json:"title"`
	URL        string   `json:"url"`
	Category   string   `json:"category"`
	Breadcrumb []string `json:"breadcrumb,omitempty"`
	Snippet    string   `json:"snippet,omitempty"`
	SectionID  string   `json:"sectionId,omitempty"`
}

// SearchResponse is the response of GET /api/search.
type SearchResponse struct {
	Query   string         `json:"query"`
	Results []SearchResult `json:"results"`
	// Suggestions are only set when there are no results.
	Suggestions []string `json:"suggestions,omitempty"`
}

// ServeHTTP handles GET /api/search?q=QUERY.
func (h *SearchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodGet {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed", "")
		return
	}

	query := r.URL.Query().Get("q")
	entries := h.index.Entries()
	matches := search.Match(entries, query)

	resp := SearchResponse{
		Query:   query,
		Results: make([]SearchResult, 0, len(matches)),
	}
	for _, m := range matches {
		row := SearchResult{
			Title:      m.Title(),
			URL:        m.URL(),
			Category:   string(m.Entry.Category),
			Breadcrumb: m.Breadcrumb,
			Snippet:    m.Snippet(),
		}
		if m.Section != nil {
			row.SectionID = m.Section.ID
		}
		resp.Results = append(resp.Results, row)
	}
	if len(matches) == 0 {
		resp.Suggestions = search.Suggest(entries, query)
	}

	logger.DebugContext(ctx, "search served", "query", query, "results", len(resp.Results))
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		logger.ErrorContext(ctx, "failed to encode search response", "error", err)
	}
}

// IndexFileHandler serves the generated index file.
type IndexFileHandler struct {
	path string
}

// NewIndexFileHandler creates a handler serving the file at path.
func NewIndexFileHandler(path string) *IndexFileHandler {
	return &IndexFileHandler{path: path}
}

// ServeHTTP handles GET /search-index.json.
func (h *IndexFileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	f, err := os.Open(h.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			writeError(w, http.StatusNotFound, "Search index not built", "")
			return
		}
		logger.ErrorContext(ctx, "failed to open search index", "path", h.path, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to read search index", "")
		return
	}
	defer func() {
		_ = f.Close()
	}()

	info, err := f.Stat()
	if err != nil {
		logger.ErrorContext(ctx, "failed to stat search index", "path", h.path, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to read search index", "")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache")
	http.ServeContent(w, r, "search-index.json", info.ModTime(), f)
}
