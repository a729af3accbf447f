package searchindex

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"github.com/google/renameio"
)

// lockPath returns the lock file guarding writes to the index at path. It
// lives in the temp directory so nothing extra lands in the published
// directory.
func lockPath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	sum := sha256.Sum256([]byte(path))
	return filepath.Join(os.TempDir(), "search-index-"+hex.EncodeToString(sum[:8])+".lock")
}

// Write validates entries and replaces the index file at path in one step.
// Concurrent builders serialize on a lock file keyed by the index path, and
// readers only ever see the previous or the new complete document.
func Write(path string, entries []Entry) error {
	data, err := Encode(entries)
	if err != nil {
		return err
	}
	if err := Validate(data); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create index directory: %w", err)
	}

	lock := flock.New(lockPath(path))
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("failed to acquire index lock: %w", err)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	if err := renameio.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write index %s: %w", path, err)
	}
	return nil
}

// Read loads the index file at path.
func Read(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open index: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()
	return Decode(f)
}

// Fetch loads an index served over HTTP.
func Fetch(ctx context.Context, client *http.Client, url string) ([]Entry, error) {
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch index: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("bad status %d: %s", resp.StatusCode, bytes.TrimSpace(body))
	}
	return Decode(resp.Body)
}

// Load reads the index from a file path or an http(s) URL.
func Load(ctx context.Context, client *http.Client, source string) ([]Entry, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return Fetch(ctx, client, source)
	}
	return Read(source)
}
