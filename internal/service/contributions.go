package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_calendar_source.go -package=mocks portfolio/internal/service CalendarSource
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_contributions_service.go -package=mocks portfolio/internal/service ContributionsService

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"

	"portfolio/internal/contextutil"
	"portfolio/internal/contributions"
	"portfolio/internal/storage"
)

// CalendarSource fetches a contribution calendar from an upstream.
// This interface is defined from the service layer's perspective (consumer-first).
type CalendarSource interface {
	FetchCalendar(ctx context.Context, username string) (contributions.Calendar, error)
}

// ContributionsService returns contribution calendars.
type ContributionsService interface {
	// GetContributions returns the calendar of username for the calendar year.
	GetContributions(ctx context.Context, username string) (contributions.Calendar, error)
}

// ContributionsConfig tunes caching and upstream rate limiting.
type ContributionsConfig struct {
	CacheSize int
	CacheTTL  time.Duration
	// UpstreamRPS limits upstream calls per second; zero disables the limit.
	UpstreamRPS float64
}

const (
	sourceGraphQL = "graphql"
	sourceScrape  = "scrape"

	// loadTimeout bounds one shared upstream load.
	loadTimeout = 30 * time.Second
)

var githubLogin = regexp.MustCompile(`^[A-Za-z0-9-]{1,39}$`)

// contributionsService implements ContributionsService.
type contributionsService struct {
	primary  CalendarSource
	fallback CalendarSource
	store    storage.ContributionStore
	cache    *expirable.LRU[string, contributions.Calendar]
	limiter  *rate.Limiter
	ttl      time.Duration
	group    singleflight.Group
}

// NewContributionsService creates a ContributionsService. primary is tried
// first when non-nil and any failure falls through to fallback. store may
// be nil to keep the cache in memory only.
func NewContributionsService(primary, fallback CalendarSource, store storage.ContributionStore, cfg ContributionsConfig) ContributionsService {
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = 128
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = time.Hour
	}

	limiter := rate.NewLimiter(rate.Inf, 1)
	if cfg.UpstreamRPS > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.UpstreamRPS), 1)
	}

	return &contributionsService{
		primary:  primary,
		fallback: fallback,
		store:    store,
		cache:    expirable.NewLRU[string, contributions.Calendar](cfg.CacheSize, nil, cfg.CacheTTL),
		limiter:  limiter,
		ttl:      cfg.CacheTTL,
	}
}

// GetContributions serves from the in-memory cache, then the persistent
// cache, then the upstreams.
func (s *contributionsService) GetContributions(ctx context.Context, username string) (contributions.Calendar, error) {
	logger := contextutil.LoggerFromContext(ctx)

	// Business validation
	if username == "" {
		logger.WarnContext(ctx, "empty username in contributions request")
		return contributions.Calendar{}, &ValidationError{
			Field:   "username",
			Message: "is required",
		}
	}
	if !githubLogin.MatchString(username) {
		logger.WarnContext(ctx, "invalid username in contributions request", "username", username)
		return contributions.Calendar{}, &ValidationError{
			Field:   "username",
			Message: "must be 1-39 letters, digits or hyphens",
		}
	}

	key := strings.ToLower(username) + "/" + strconv.Itoa(contributions.CalendarYear)
	if cal, ok := s.cache.Get(key); ok {
		logger.DebugContext(ctx, "contributions served from memory", "username", username)
		return cal, nil
	}

	// The flight outlives any single caller; each caller only waits on its
	// own context.
	flight := s.group.DoChan(key, func() (any, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), loadTimeout)
		defer cancel()
		return s.load(loadCtx, username, key)
	})

	select {
	case <-ctx.Done():
		logger.WarnContext(ctx, "contributions request ended before fetch completed", "username", username, "error", ctx.Err())
		return contributions.Calendar{}, ctx.Err()
	case res := <-flight:
		if res.Err != nil {
			return contributions.Calendar{}, res.Err
		}
		if res.Shared {
			logger.DebugContext(ctx, "contributions fetch shared", "username", username)
		}
		return res.Val.(contributions.Calendar), nil
	}
}

func (s *contributionsService) load(ctx context.Context, username, key string) (contributions.Calendar, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if cal, ok := s.fromStore(ctx, username); ok {
		s.cache.Add(key, cal)
		return cal, nil
	}

	if err := s.limiter.Wait(ctx); err != nil {
		logger.WarnContext(ctx, "upstream rate limit wait failed", "error", err)
		return contributions.Calendar{}, fmt.Errorf("%w: %w", ErrRateLimited, err)
	}

	start := time.Now()
	cal, source, err := s.fetch(ctx, username)
	if err != nil {
		logger.ErrorContext(ctx, "failed to fetch contributions", "username", username, "error", err)
		return contributions.Calendar{}, fmt.Errorf("%w: %w", ErrExternalService, err)
	}

	logger.InfoContext(ctx, "contributions fetched",
		"username", username,
		"source", source,
		"days", len(cal.Contributions),
		"total", cal.Total,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	s.cache.Add(key, cal)
	s.toStore(ctx, username, source, cal)
	return cal, nil
}

func (s *contributionsService) fetch(ctx context.Context, username string) (contributions.Calendar, string, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if s.primary != nil {
		cal, err := s.primary.FetchCalendar(ctx, username)
		if err == nil {
			return cal, sourceGraphQL, nil
		}
		if ctx.Err() != nil {
			return contributions.Calendar{}, "", ctx.Err()
		}
		logger.WarnContext(ctx, "GraphQL fetch failed, falling back to scraping", "username", username, "error", err)
	}

	cal, err := s.fallback.FetchCalendar(ctx, username)
	if err != nil {
		return contributions.Calendar{}, "", WrapError(err, "scraping contributions page")
	}
	return cal, sourceScrape, nil
}

func (s *contributionsService) fromStore(ctx context.Context, username string) (contributions.Calendar, bool) {
	if s.store == nil {
		return contributions.Calendar{}, false
	}
	logger := contextutil.LoggerFromContext(ctx)

	rec, err := s.store.Get(ctx, username, contributions.CalendarYear, s.ttl)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			logger.WarnContext(ctx, "failed to read contributions cache", "username", username, "error", err)
		}
		return contributions.Calendar{}, false
	}

	var cal contributions.Calendar
	if err := json.Unmarshal(rec.Payload, &cal); err != nil {
		logger.WarnContext(ctx, "discarding corrupt contributions cache entry", "username", username, "error", err)
		return contributions.Calendar{}, false
	}
	logger.DebugContext(ctx, "contributions served from database", "username", username, "source", rec.Source)
	return cal, true
}

func (s *contributionsService) toStore(ctx context.Context, username, source string, cal contributions.Calendar) {
	if s.store == nil {
		return
	}
	logger := contextutil.LoggerFromContext(ctx)

	payload, err := json.Marshal(cal)
	if err != nil {
		logger.WarnContext(ctx, "failed to encode contributions for cache", "error", err)
		return
	}
	err = s.store.Put(ctx, storage.ContributionRecord{
		Username: strings.ToLower(username),
		Year:     contributions.CalendarYear,
		Payload:  payload,
		Source:   source,
	})
	if err != nil {
		logger.WarnContext(ctx, "failed to save contributions cache", "username", username, "error", err)
	}
}
