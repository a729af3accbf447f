package contributions

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
)

// DefaultGraphQLURL is the GitHub GraphQL endpoint.
const DefaultGraphQLURL = "https://api.github.com/graphql"

const calendarQuery = `query($username: String!, $from: DateTime!, $to: DateTime!) {
  user(login: $username) {
    contributionsCollection(from: $from, to: $to) {
      contributionCalendar {
        totalContributions
        weeks {
          contributionDays {
            date
            contributionCount
            color
          }
        }
      }
    }
  }
}`

// GraphQLClient reads calendars from the GitHub GraphQL API.
type GraphQLClient struct {
	URL    string
	Token  string
	client *http.Client
}

// NewGraphQLClient creates a client authenticating with token.
func NewGraphQLClient(url, token string, client *http.Client) *GraphQLClient {
	if url == "" {
		url = DefaultGraphQLURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &GraphQLClient{
		URL:    url,
		Token:  token,
		client: client,
	}
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type graphQLResponse struct {
	Data struct {
		User *struct {
			ContributionsCollection struct {
				ContributionCalendar *struct {
					TotalContributions int `json:"totalContributions"`
					Weeks              []struct {
						ContributionDays []struct {
							Date              string `json:"date"`
							ContributionCount int    `json:"contributionCount"`
							Color             string `json:"color"`
						} `json:"contributionDays"`
					} `json:"weeks"`
				} `json:"contributionCalendar"`
			} `json:"contributionsCollection"`
		} `json:"user"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// FetchCalendar returns the CalendarYear calendar of username.
func (c *GraphQLClient) FetchCalendar(ctx context.Context, username string) (Calendar, error) {
	year := strconv.Itoa(CalendarYear)
	payload := graphQLRequest{
		Query: calendarQuery,
		Variables: map[string]any{
			"username": username,
			"from":     year + "-01-01T00:00:00Z",
			"to":       year + "-12-31T23:59:59Z",
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return Calendar{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewReader(body))
	if err != nil {
		return Calendar{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.Token))
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return Calendar{}, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return Calendar{}, fmt.Errorf("GraphQL API error: bad status %d: %s", resp.StatusCode, string(raw))
	}

	var out graphQLResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Calendar{}, fmt.Errorf("failed to decode response: %w", err)
	}
	if len(out.Errors) > 0 {
		return Calendar{}, fmt.Errorf("GraphQL error: %s", out.Errors[0].Message)
	}
	if out.Data.User == nil || out.Data.User.ContributionsCollection.ContributionCalendar == nil {
		return Calendar{}, fmt.Errorf("%w: %s", ErrUserNotFound, username)
	}

	var days []Day
	for _, week := range out.Data.User.ContributionsCollection.ContributionCalendar.Weeks {
		for _, d := range week.ContributionDays {
			color := d.Color
			if color == "" {
				color = "#ebedf0"
			}
			days = append(days, Day{
				Date:  d.Date,
				Count: d.ContributionCount,
				Level: LevelForColor(color),
			})
		}
	}
	return newCalendar(days), nil
}
