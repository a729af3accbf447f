package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"portfolio/internal/search"
	"portfolio/internal/searchindex"
)

type fixedSnapshot struct{ snap *search.Snapshot }

func (f fixedSnapshot) Snapshot() *search.Snapshot { return f.snap }

type fakePinger struct{ err error }

func (f fakePinger) PingContext(context.Context) error { return f.err }

func TestHealthHandler_ServeHTTP(t *testing.T) {
	loaded := &search.Snapshot{Entries: []searchindex.Entry{{Title: "Home"}}, LoadedAt: time.Now()}

	tests := []struct {
		name       string
		method     string
		snap       *search.Snapshot
		db         Pinger
		wantStatus int
		wantChecks map[string]string
	}{
		{
			name:       "healthy",
			method:     http.MethodGet,
			snap:       loaded,
			db:         fakePinger{},
			wantStatus: http.StatusOK,
			wantChecks: map[string]string{"index": "ok", "database": "ok"},
		},
		{
			name:       "no database configured",
			method:     http.MethodGet,
			snap:       loaded,
			wantStatus: http.StatusOK,
			wantChecks: map[string]string{"index": "ok", "database": "disabled"},
		},
		{
			name:       "index failed to load",
			method:     http.MethodGet,
			snap:       &search.Snapshot{LoadedAt: time.Now(), Err: errors.New("missing")},
			db:         fakePinger{},
			wantStatus: http.StatusServiceUnavailable,
			wantChecks: map[string]string{"index": "error", "database": "ok"},
		},
		{
			name:       "index not loaded yet",
			method:     http.MethodGet,
			snap:       &search.Snapshot{},
			db:         fakePinger{},
			wantStatus: http.StatusServiceUnavailable,
			wantChecks: map[string]string{"index": "error", "database": "ok"},
		},
		{
			name:       "database down",
			method:     http.MethodGet,
			snap:       loaded,
			db:         fakePinger{err: errors.New("closed")},
			wantStatus: http.StatusServiceUnavailable,
			wantChecks: map[string]string{"index": "ok", "database": "error"},
		},
		{
			name:       "method not allowed",
			method:     http.MethodPost,
			snap:       loaded,
			wantStatus: http.StatusMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHealthHandler(fixedSnapshot{tt.snap}, tt.db)

			req := httptest.NewRequest(tt.method, "/api/health", nil)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("ServeHTTP() status = %v, want %v", w.Code, tt.wantStatus)
			}
			if tt.wantChecks == nil {
				return
			}

			var resp HealthResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			for k, v := range tt.wantChecks {
				if resp.Checks[k] != v {
					t.Errorf("checks[%s] = %q, want %q", k, resp.Checks[k], v)
				}
			}
			if (tt.wantStatus == http.StatusOK) != (len(resp.Issues) == 0) {
				t.Errorf("issues = %v for status %d", resp.Issues, tt.wantStatus)
			}
		})
	}
}
