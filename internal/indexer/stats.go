package indexer

import (
	"math"
	"sort"
	"unicode/utf8"

	"portfolio/internal/searchindex"
)

// BuildStats summarizes one index build.
type BuildStats struct {
	// Entries is the number of entries written.
	Entries int `json:"entries"`
	// ByCategory counts entries per category.
	ByCategory map[searchindex.Category]int `json:"by_category"`
	// Sections is the total number of sections across all entries.
	Sections int `json:"sections"`
	// Skipped counts posts and pages that produced no entry.
	Skipped int `json:"skipped"`
	// Content describes entry content lengths in runes.
	Content LengthStats `json:"content"`
}

// LengthStats contains statistics about text lengths.
type LengthStats struct {
	Min  int     `json:"min"`
	Max  int     `json:"max"`
	Mean float64 `json:"mean"`
	P95  int     `json:"p95"`
}

func computeBuildStats(entries []searchindex.Entry) BuildStats {
	stats := BuildStats{
		Entries:    len(entries),
		ByCategory: make(map[searchindex.Category]int),
	}

	lengths := make([]int, 0, len(entries))
	for _, e := range entries {
		stats.ByCategory[e.Category]++
		stats.Sections += len(e.Sections)
		lengths = append(lengths, utf8.RuneCountInString(e.Content))
	}
	stats.Content = computeLengthStats(lengths)
	return stats
}

// computeLengthStats computes min, max, mean, and p95 from lengths.
func computeLengthStats(lengths []int) LengthStats {
	if len(lengths) == 0 {
		return LengthStats{}
	}

	// Sort for percentile calculation
	sorted := make([]int, len(lengths))
	copy(sorted, lengths)
	sort.Ints(sorted)

	sum := 0
	for _, n := range lengths {
		sum += n
	}
	mean := float64(sum) / float64(len(lengths))

	p95Index := int(math.Ceil(float64(len(sorted)) * 0.95))
	if p95Index >= len(sorted) {
		p95Index = len(sorted) - 1
	}

	return LengthStats{
		Min:  sorted[0],
		Max:  sorted[len(sorted)-1],
		Mean: math.Round(mean*100) / 100, // Round to 2 decimal places
		P95:  sorted[p95Index],
	}
}
