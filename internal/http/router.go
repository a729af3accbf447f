package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"portfolio/internal/handlers"
	"portfolio/internal/service"
)

// SearchIndex is the served index: its entries and load state.
type SearchIndex interface {
	handlers.IndexReader
	handlers.SnapshotReader
}

// Deps holds dependencies for the HTTP router.
type Deps struct {
	ContributionsService service.ContributionsService
	Index                SearchIndex
	IndexPath            string          // file served at /search-index.json
	DB                   handlers.Pinger // nil when the persistent cache is off
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(LoggerMiddleware)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)

	// Add CORS middleware
	r.Use(CORS)

	contributionsHandler := handlers.NewContributionsHandler(deps.ContributionsService)
	searchHandler := handlers.NewSearchHandler(deps.Index)
	healthHandler := handlers.NewHealthHandler(deps.Index, deps.DB)

	// Register API routes
	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodGet, "/github-contributions", contributionsHandler)
		r.Method(http.MethodGet, "/search", searchHandler)
		r.Method(http.MethodGet, "/health", healthHandler)
	})

	r.Method(http.MethodGet, "/search-index.json", handlers.NewIndexFileHandler(deps.IndexPath))

	return r
}
