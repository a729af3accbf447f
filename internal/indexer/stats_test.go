package indexer

import (
	"testing"

	"portfolio/internal/searchindex"
)

func TestComputeLengthStats(t *testing.T) {
	tests := []struct {
		name    string
		lengths []int
		want    LengthStats
	}{
		{
			name:    "empty",
			lengths: []int{},
			want:    LengthStats{},
		},
		{
			name:    "single value",
			lengths: []int{10},
			want:    LengthStats{Min: 10, Max: 10, Mean: 10.0, P95: 10},
		},
		{
			name:    "unsorted values",
			lengths: []int{30, 5, 20, 10, 15},
			want:    LengthStats{Min: 5, Max: 30, Mean: 16.0, P95: 30},
		},
		{
			name:    "many values for p95",
			lengths: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20},
			want:    LengthStats{Min: 1, Max: 20, Mean: 10.5, P95: 20},
		},
		{
			name:    "mean rounded",
			lengths: []int{1, 1, 2},
			want:    LengthStats{Min: 1, Max: 2, Mean: 1.33, P95: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := computeLengthStats(tt.lengths); got != tt.want {
				t.Errorf("computeLengthStats() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestComputeBuildStats(t *testing.T) {
	entries := []searchindex.Entry{
		{Category: searchindex.CategoryBlog, Content: "héllo", Sections: []searchindex.Section{{ID: "a"}, {ID: "b"}}},
		{Category: searchindex.CategoryPage, Content: "abc"},
		{Category: searchindex.CategoryResearch},
		{Category: searchindex.CategoryResearch},
	}

	stats := computeBuildStats(entries)
	if stats.Entries != 4 {
		t.Errorf("Entries = %d, want 4", stats.Entries)
	}
	if stats.Sections != 2 {
		t.Errorf("Sections = %d, want 2", stats.Sections)
	}
	if stats.ByCategory[searchindex.CategoryResearch] != 2 {
		t.Errorf("ByCategory[Research] = %d, want 2", stats.ByCategory[searchindex.CategoryResearch])
	}
	if stats.Content.Max != 5 {
		t.Errorf("Content.Max = %d, want 5 (runes, not bytes)", stats.Content.Max)
	}
	if stats.Content.Min != 0 {
		t.Errorf("Content.Min = %d, want 0", stats.Content.Min)
	}
}
