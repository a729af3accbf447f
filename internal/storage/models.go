package storage

import "time"

// ContributionRecord is a cached contribution calendar.
type ContributionRecord struct {
	Username  string // lowercased login
	Year      int
	Payload   []byte // JSON calendar
	Source    string // "graphql" or "scrape"
	FetchedAt time.Time
}
