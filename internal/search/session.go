package search

import "portfolio/internal/searchindex"

// Navigator is called with the URL of a selected result.
type Navigator func(url string)

// Session holds the state of one search box: whether it is open, the
// current query, its results and the highlighted row. It is not safe for
// concurrent use; it is driven by a single input loop.
type Session struct {
	entries  []searchindex.Entry
	navigate Navigator

	open    bool
	query   string
	results []Result
	active  int
}

// NewSession creates a closed session over entries. navigate may be nil.
func NewSession(entries []searchindex.Entry, navigate Navigator) *Session {
	s := &Session{
		entries:  entries,
		navigate: navigate,
	}
	s.results = Match(entries, "")
	return s
}

// IsOpen reports whether the session is open.
func (s *Session) IsOpen() bool { return s.open }

// Query returns the current query.
func (s *Session) Query() string { return s.query }

// Results returns the results for the current query.
func (s *Session) Results() []Result { return s.results }

// ActiveIndex returns the highlighted row.
func (s *Session) ActiveIndex() int { return s.active }

// Active returns the highlighted result, if any.
func (s *Session) Active() (Result, bool) {
	if s.active < 0 || s.active >= len(s.results) {
		return Result{}, false
	}
	return s.results[s.active], true
}

// Open opens the session.
func (s *Session) Open() { s.open = true }

// Close closes the session and resets the query and cursor.
func (s *Session) Close() {
	s.open = false
	s.SetQuery("")
}

// Toggle opens a closed session and closes an open one.
func (s *Session) Toggle() {
	if s.open {
		s.Close()
		return
	}
	s.Open()
}

// SetQuery replaces the query, recomputes results and moves the cursor to
// the first row.
func (s *Session) SetQuery(q string) {
	s.query = q
	s.results = Match(s.entries, q)
	s.active = 0
}

// MoveUp moves the cursor up one row, stopping at the first.
func (s *Session) MoveUp() {
	if s.active > 0 {
		s.active--
	}
}

// MoveDown moves the cursor down one row, stopping at the last.
func (s *Session) MoveDown() {
	if s.active < len(s.results)-1 {
		s.active++
	}
}

// Enter selects the highlighted result: the session navigates to it and
// closes. With no results it does nothing and returns false.
func (s *Session) Enter() (string, bool) {
	r, ok := s.Active()
	if !ok {
		return "", false
	}
	return s.Select(r), true
}

// Select navigates to r and closes the session.
func (s *Session) Select(r Result) string {
	url := r.URL()
	if s.navigate != nil {
		s.navigate(url)
	}
	s.Close()
	return url
}
