// Package contributions fetches a user's GitHub contribution calendar,
// either from the GraphQL API or by scraping the public calendar page.
package contributions

import (
	"errors"
	"sort"
	"strconv"
	"strings"
)

// CalendarYear is the only year whose days are returned.
const CalendarYear = 2025

// ErrNoContributions is returned when a calendar page holds no days for
// CalendarYear.
var ErrNoContributions = errors.New("could not parse contribution data")

// ErrUserNotFound is returned when the upstream has no calendar for the user.
var ErrUserNotFound = errors.New("user not found")

// Day is one calendar cell.
type Day struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
	Level int    `json:"level"`
}

// Calendar is the response body of the contributions endpoint.
type Calendar struct {
	Contributions []Day `json:"contributions"`
	Total         int   `json:"total"`
}

// levels maps the light and dark palette colors to a 0-4 intensity.
var levels = []struct {
	level  int
	colors []string
}{
	{0, []string{"#ebedf0", "#161b22"}},
	{1, []string{"#9be9a8", "#0e4429"}},
	{2, []string{"#40c463", "#006d32"}},
	{3, []string{"#30a14e", "#26a641"}},
	{4, []string{"#216e39", "#39d353"}},
}

// LevelForColor returns the intensity of a calendar color. The color may be
// embedded in a longer attribute value. Unknown colors are level 0.
func LevelForColor(color string) int {
	color = strings.ToLower(color)
	for _, l := range levels {
		for _, c := range l.colors {
			if strings.Contains(color, c) {
				return l.level
			}
		}
	}
	return 0
}

func inYear(date string) bool {
	return strings.HasPrefix(date, strconv.Itoa(CalendarYear)+"-")
}

// newCalendar keeps the days of CalendarYear in date order, first
// occurrence of a date winning, and totals their counts.
func newCalendar(days []Day) Calendar {
	cal := Calendar{Contributions: []Day{}}
	seen := make(map[string]bool, len(days))
	for _, d := range days {
		if !inYear(d.Date) || seen[d.Date] {
			continue
		}
		seen[d.Date] = true
		cal.Contributions = append(cal.Contributions, d)
		cal.Total += d.Count
	}
	sort.SliceStable(cal.Contributions, func(i, j int) bool {
		return cal.Contributions[i].Date < cal.Contributions[j].Date
	})
	return cal
}
