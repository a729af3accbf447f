package contributions

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const graphQLBody = `{"data":{"user":{"contributionsCollection":{"contributionCalendar":{
  "totalContributions": 99,
  "weeks":[
    {"contributionDays":[
      {"date":"2024-12-31","contributionCount":4,"color":"#40c463"},
      {"date":"2025-01-01","contributionCount":3,"color":"#9be9a8"}
    ]},
    {"contributionDays":[
      {"date":"2025-01-02","contributionCount":12,"color":"#216e39"},
      {"date":"2025-01-03","contributionCount":0,"color":""}
    ]}
  ]}}}}}`

func TestGraphQLClient_FetchCalendar(t *testing.T) {
	var gotAuth string
	var gotVars map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		var req graphQLRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		gotVars = req.Variables
		_, _ = w.Write([]byte(graphQLBody))
	}))
	defer srv.Close()

	client := NewGraphQLClient(srv.URL, "secret", srv.Client())
	cal, err := client.FetchCalendar(context.Background(), "octocat")
	require.NoError(t, err)

	assert.Equal(t, "Bearer secret", gotAuth)
	assert.Equal(t, "octocat", gotVars["username"])
	assert.Equal(t, "2025-01-01T00:00:00Z", gotVars["from"])
	assert.Equal(t, "2025-12-31T23:59:59Z", gotVars["to"])

	assert.Equal(t, []Day{
		{Date: "2025-01-01", Count: 3, Level: 1},
		{Date: "2025-01-02", Count: 12, Level: 4},
		{Date: "2025-01-03", Count: 0, Level: 0},
	}, cal.Contributions)
	assert.Equal(t, 15, cal.Total)
}

func TestGraphQLClient_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		check  func(t *testing.T, err error)
	}{
		{
			name:   "bad status",
			status: http.StatusUnauthorized,
			body:   `{"message":"Bad credentials"}`,
			check: func(t *testing.T, err error) {
				assert.Contains(t, err.Error(), "401")
			},
		},
		{
			name:   "graphql errors",
			status: http.StatusOK,
			body:   `{"errors":[{"message":"Something went wrong"}]}`,
			check: func(t *testing.T, err error) {
				assert.Contains(t, err.Error(), "Something went wrong")
			},
		},
		{
			name:   "unknown user",
			status: http.StatusOK,
			body:   `{"data":{"user":null}}`,
			check: func(t *testing.T, err error) {
				assert.True(t, errors.Is(err, ErrUserNotFound))
			},
		},
		{
			name:   "malformed body",
			status: http.StatusOK,
			body:   `{`,
			check: func(t *testing.T, err error) {
				assert.Contains(t, err.Error(), "decode")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := NewGraphQLClient(srv.URL, "t", srv.Client()).FetchCalendar(context.Background(), "octocat")
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}
