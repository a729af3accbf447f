package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_contribution_store.go -package=mocks portfolio/internal/storage ContributionStore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrNotFound is returned when no fresh cache row exists.
var ErrNotFound = errors.New("not found")

// ContributionStore defines the interface for contribution cache operations.
type ContributionStore interface {
	// Get returns the record for (username, year) fetched within maxAge.
	Get(ctx context.Context, username string, year int, maxAge time.Duration) (ContributionRecord, error)
	// Put inserts or replaces the record for (username, year).
	Put(ctx context.Context, rec ContributionRecord) error
	// DeleteOlderThan removes records fetched before cutoff.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// ContributionRepo provides methods for contribution cache operations.
type ContributionRepo struct {
	db  *sql.DB
	now func() time.Time
}

// Ensure ContributionRepo implements ContributionStore
var _ ContributionStore = (*ContributionRepo)(nil)

// NewContributionRepo creates a new ContributionRepo.
func NewContributionRepo(db *sql.DB) *ContributionRepo {
	return &ContributionRepo{db: db, now: time.Now}
}

// Get returns the cached record, or ErrNotFound when it is missing or older
// than maxAge.
func (r *ContributionRepo) Get(ctx context.Context, username string, year int, maxAge time.Duration) (ContributionRecord, error) {
	var rec ContributionRecord
	var payload string
	err := r.db.QueryRowContext(ctx,
		"SELECT username, year, payload, source, fetched_at FROM contribution_cache WHERE username = ? AND year = ?",
		strings.ToLower(username), year,
	).Scan(&rec.Username, &rec.Year, &payload, &rec.Source, &rec.FetchedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ContributionRecord{}, ErrNotFound
	}
	if err != nil {
		return ContributionRecord{}, fmt.Errorf("failed to query contribution cache: %w", err)
	}

	if r.now().Sub(rec.FetchedAt) > maxAge {
		return ContributionRecord{}, ErrNotFound
	}
	rec.Payload = []byte(payload)
	return rec, nil
}

// Put inserts or replaces a record. A zero FetchedAt is set to now.
func (r *ContributionRepo) Put(ctx context.Context, rec ContributionRecord) error {
	if rec.FetchedAt.IsZero() {
		rec.FetchedAt = r.now()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO contribution_cache (username, year, payload, source, fetched_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(username, year) DO UPDATE SET
			payload = excluded.payload,
			source = excluded.source,
			fetched_at = excluded.fetched_at`,
		strings.ToLower(rec.Username), rec.Year, string(rec.Payload), rec.Source, rec.FetchedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to store contributions: %w", err)
	}
	return nil
}

// DeleteOlderThan removes records fetched before cutoff and returns how many
// were removed.
func (r *ContributionRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM contribution_cache WHERE fetched_at < ?", cutoff.UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to prune contribution cache: %w", err)
	}
	return res.RowsAffected()
}
