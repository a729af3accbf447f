package contributions

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"
)

// DefaultBaseURL is the public GitHub site.
const DefaultBaseURL = "https://github.com"

const scrapeTimeout = 15 * time.Second

var tooltipCount = regexp.MustCompile(`^\s*(\d[\d,]*|No)\s+contributions?\b`)

// Scraper reads calendars from the public contributions page.
type Scraper struct {
	BaseURL string
}

// NewScraper creates a scraper for the site at baseURL.
func NewScraper(baseURL string) *Scraper {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Scraper{BaseURL: strings.TrimRight(baseURL, "/")}
}

// FetchCalendar scrapes the CalendarYear calendar of username. Cells are
// read from svg rect or table cell markup; a page without any day of
// CalendarYear is ErrNoContributions.
func (s *Scraper) FetchCalendar(ctx context.Context, username string) (Calendar, error) {
	target := fmt.Sprintf("%s/users/%s/contributions", s.BaseURL, url.PathEscape(username))

	c := colly.NewCollector(
		colly.UserAgent("Mozilla/5.0"),
		colly.StdlibContext(ctx),
	)
	c.SetRequestTimeout(scrapeTimeout)

	var days []Day
	c.OnHTML("html", func(e *colly.HTMLElement) {
		counts := make(map[string]int)
		e.ForEach("tool-tip[for]", func(_ int, el *colly.HTMLElement) {
			if n, ok := parseTooltipCount(el.Text); ok {
				counts[el.Attr("for")] = n
			}
		})

		e.ForEach("rect[data-date], td[data-date]", func(_ int, el *colly.HTMLElement) {
			day := Day{Date: el.Attr("data-date")}
			if day.Date == "" {
				return
			}
			if n, err := strconv.Atoi(el.Attr("data-count")); err == nil {
				day.Count = n
			} else if n, ok := counts[el.Attr("id")]; ok {
				day.Count = n
			}
			if lvl, err := strconv.Atoi(el.Attr("data-level")); err == nil {
				day.Level = lvl
			} else {
				day.Level = LevelForColor(el.Attr("fill"))
			}
			days = append(days, day)
		})
	})

	if err := c.Visit(target); err != nil {
		if ctx.Err() != nil {
			return Calendar{}, ctx.Err()
		}
		return Calendar{}, fmt.Errorf("failed to fetch contributions page: %w", err)
	}
	if ctx.Err() != nil {
		return Calendar{}, ctx.Err()
	}

	cal := newCalendar(days)
	if len(cal.Contributions) == 0 {
		return Calendar{}, ErrNoContributions
	}
	return cal, nil
}

func parseTooltipCount(text string) (int, bool) {
	m := tooltipCount.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	if m[1] == "No" {
		return 0, true
	}
	n, err := strconv.Atoi(strings.ReplaceAll(m[1], ",", ""))
	if err != nil {
		return 0, false
	}
	return n, true
}
